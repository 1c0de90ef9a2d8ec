package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-todo-service/internal/agent/api"
	"github.com/IvanChernomyrdin/go-todo-service/internal/agent/config"
)

// NewSignupCmd создаёт команду регистрации нового пользователя.
//
// После успешной регистрации сервер сразу выдаёт access токен; команда сохраняет
// его в локальный файл учётных данных, так что отдельный login не требуется.
func NewSignupCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Регистрация нового пользователя",
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
			tok, err := client.Signup(email, password)
			if err != nil {
				return err
			}

			app.Creds = &config.Credentials{AccessToken: tok.AccessToken}
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Регистрация выполнена, токен сохранён.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email пользователя")
	cmd.Flags().StringVar(&password, "password", "", "пароль (если не задан — будет запрошен)")

	return cmd
}
