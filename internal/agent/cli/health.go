package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-todo-service/internal/agent/api"
)

// NewHealthCmd создаёт команду проверки доступности сервера.
func NewHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Проверить доступность сервера",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(app.ServerURL)
			h, err := client.Health()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Сервер: %s (%s)\n", h.Status, h.Timestamp)
			return nil
		},
	}
}
