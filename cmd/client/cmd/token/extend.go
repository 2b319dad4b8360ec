package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"uptime/cmd/client/cmd/types"
	"uptime/cmd/client/cmd/ui"
)

var ExtendCmd = &cobra.Command{
	Use:   "extend [id]",
	Short: "Продлить токен",
	Long:  `Продление еще действующего токена. Истекший токен продлить нельзя.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.ExtendToken(cmd.Context(), idArg(args)); err != nil {
			return fmt.Errorf("ошибка продления токена: %w", err)
		}

		ui.Success(cmd.OutOrStdout(), "токен продлен")
		return nil
	},
}
