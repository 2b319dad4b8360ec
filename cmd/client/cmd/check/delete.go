package check

import (
	"fmt"

	"github.com/spf13/cobra"

	"uptime/cmd/client/cmd/types"
	"uptime/cmd/client/cmd/ui"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить проверку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.DeleteCheck(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("ошибка удаления проверки: %w", err)
		}

		ui.Success(cmd.OutOrStdout(), "проверка %s удалена", args[0])
		return nil
	},
}
