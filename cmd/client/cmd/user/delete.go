package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"uptime/cmd/client/cmd/types"
	"uptime/cmd/client/cmd/ui"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [phone]",
	Short: "Удалить пользователя",
	Long: `Удаление пользователя. Проверки и токены пользователя на сервере
не удаляются.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.DeleteUser(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("ошибка удаления пользователя: %w", err)
		}

		ui.Success(cmd.OutOrStdout(), "пользователь %s удален", args[0])
		return nil
	},
}
