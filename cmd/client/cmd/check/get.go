package check

import (
	"fmt"

	"github.com/spf13/cobra"

	"uptime/cmd/client/cmd/types"
	"uptime/cmd/client/cmd/ui"
)

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Показать проверку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		c, err := app.Check(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка получения проверки: %w", err)
		}

		return ui.JSON(cmd.OutOrStdout(), c)
	},
}
