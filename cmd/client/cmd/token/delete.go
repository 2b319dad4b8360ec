package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"uptime/cmd/client/cmd/types"
	"uptime/cmd/client/cmd/ui"
)

var DeleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"logout"},
	Short:   "Отозвать токен",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.Logout(cmd.Context(), idArg(args)); err != nil {
			return fmt.Errorf("ошибка отзыва токена: %w", err)
		}

		ui.Success(cmd.OutOrStdout(), "токен отозван")
		return nil
	},
}
