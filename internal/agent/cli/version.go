package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCmd создаёт команду вывода версии и даты сборки.
//
// Значения подставляются при сборке через ldflags, по умолчанию — "N/A".
func NewVersionCmd(buildVersion, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Версия и дата сборки",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Build version: %s\n", buildVersion)
			fmt.Fprintf(cmd.OutOrStdout(), "Build date: %s\n", buildDate)
		},
	}
}
