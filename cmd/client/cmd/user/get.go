package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"uptime/cmd/client/cmd/types"
	"uptime/cmd/client/cmd/ui"
)

var GetCmd = &cobra.Command{
	Use:   "get [phone]",
	Short: "Показать пользователя",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		u, err := app.User(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка получения пользователя: %w", err)
		}

		return ui.JSON(cmd.OutOrStdout(), struct {
			FirstName    string   `json:"firstName"`
			LastName     string   `json:"lastName"`
			Phone        string   `json:"phone"`
			TOSAgreement bool     `json:"tosAgreement"`
			Checks       []string `json:"checks"`
		}{u.FirstName, u.LastName, u.Phone, u.TOSAgreement, u.Checks})
	},
}
