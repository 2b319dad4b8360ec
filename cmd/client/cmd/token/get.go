package token

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"uptime/cmd/client/cmd/types"
	"uptime/cmd/client/cmd/ui"
)

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Показать токен",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		t, err := app.Token(cmd.Context(), idArg(args))
		if err != nil {
			return fmt.Errorf("ошибка получения токена: %w", err)
		}

		if err := ui.JSON(cmd.OutOrStdout(), t); err != nil {
			return err
		}
		if !t.Valid(time.Now()) {
			ui.Warn(cmd.ErrOrStderr(), "срок действия токена истек")
		}
		return nil
	},
}
