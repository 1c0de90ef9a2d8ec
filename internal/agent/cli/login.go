package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-todo-service/internal/agent/api"
	"github.com/IvanChernomyrdin/go-todo-service/internal/agent/config"
)

// NewLoginCmd создаёт команду логина.
//
// После успешного логина access токен сохраняется в локальный файл учётных данных
// и используется остальными командами (add, list).
func NewLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин (получить access токен)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return fmt.Errorf("флаг --email обязателен")
			}
			if password == "" {
				p, err := ReadPassword("Пароль: ")
				if err != nil {
					return err
				}
				password = p
			}

			client := api.NewClient(app.ServerURL)
			tok, err := client.Login(email, password)
			if err != nil {
				return err
			}

			app.Creds = &config.Credentials{AccessToken: tok.AccessToken}
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Логин выполнен, токен сохранён.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email пользователя")
	cmd.Flags().StringVar(&password, "password", "", "пароль (если не задан — будет запрошен)")

	return cmd
}
