package user

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"uptime/cmd/client/cmd/types"
	"uptime/cmd/client/cmd/ui"
	"uptime/internal/domain/user"
)

var (
	updateFirstName string
	updateLastName  string
	updatePassword  bool
)

var UpdateCmd = &cobra.Command{
	Use:   "update [phone]",
	Short: "Изменить пользователя",
	Long: `Изменение имени, фамилии или пароля. Нужно передать хотя бы одно поле;
--password запрашивает новый пароль интерактивно.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		phone := args[0]
		req := user.UpdateRequest{Phone: &phone}
		if cmd.Flags().Changed("first-name") {
			req.FirstName = &updateFirstName
		}
		if cmd.Flags().Changed("last-name") {
			req.LastName = &updateLastName
		}
		if updatePassword {
			password, err := ui.Password("Новый пароль: ")
			if err != nil {
				return err
			}
			req.Password = &password
		}

		if req.FirstName == nil && req.LastName == nil && req.Password == nil {
			return errors.New("укажите --first-name, --last-name или --password")
		}

		if err := app.UpdateUser(cmd.Context(), req); err != nil {
			return fmt.Errorf("ошибка изменения пользователя: %w", err)
		}

		ui.Success(cmd.OutOrStdout(), "пользователь %s изменен", phone)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVar(&updateFirstName, "first-name", "", "новое имя")
	UpdateCmd.Flags().StringVar(&updateLastName, "last-name", "", "новая фамилия")
	UpdateCmd.Flags().BoolVar(&updatePassword, "password", false, "сменить пароль")
}
