package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-todo-service/internal/agent/api"
)

// requireToken возвращает сохранённый access токен или ошибку, если пользователь
// ещё не логинился.
func requireToken(app *App) (string, error) {
	if app.Creds == nil || app.Creds.AccessToken == "" {
		return "", fmt.Errorf("нет сохранённого токена, выполните: todo login")
	}
	return app.Creds.AccessToken, nil
}

// NewAddCmd создаёт команду добавления задачи.
func NewAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Добавить задачу",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return fmt.Errorf("пустой заголовок задачи")
			}

			client := api.NewClient(app.ServerURL)
			todo, err := client.CreateTodo(title, token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Создана задача #%d: %s\n", todo.ID, todo.Title)
			return nil
		},
	}
}

// NewListCmd создаёт команду вывода списка задач текущего пользователя.
//
// Сервер отдаёт задачи в порядке от новых к старым, команда печатает их как есть.
func NewListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Показать задачи (новые первыми)",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			client := api.NewClient(app.ServerURL)
			todos, err := client.ListTodos(token)
			if err != nil {
				return err
			}

			if len(todos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Задач нет.")
				return nil
			}

			for _, t := range todos {
				mark := " "
				if t.Completed {
					mark = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] #%d %s (%s)\n", mark, t.ID, t.Title, t.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
