package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"uptime/cmd/client/cmd/types"
	"uptime/cmd/client/cmd/ui"
)

var createPhone string

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Войти и сохранить токен",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		password, err := ui.Password("Пароль: ")
		if err != nil {
			return err
		}

		t, err := app.Login(cmd.Context(), createPhone, password)
		if err != nil {
			return fmt.Errorf("ошибка входа: %w", err)
		}

		ui.Success(cmd.OutOrStdout(), "токен %s действует до %s", t.ID, t.ExpiresAt().Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createPhone, "phone", "", "телефон пользователя")
	_ = CreateCmd.MarkFlagRequired("phone")
}
