package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"uptime/cmd/client/cmd/types"
	"uptime/cmd/client/cmd/ui"
	"uptime/internal/domain/user"
)

var (
	createFirstName string
	createLastName  string
	createPhone     string
	createAgree     bool
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Зарегистрировать пользователя",
	Long: `Регистрация нового пользователя. Пароль запрашивается интерактивно
или читается одной строкой из stdin.

Регистрация требует согласия с условиями использования (--tos).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		password, err := ui.Password("Пароль: ")
		if err != nil {
			return err
		}

		req := user.CreateRequest{
			FirstName:    &createFirstName,
			LastName:     &createLastName,
			Phone:        &createPhone,
			Password:     &password,
			TOSAgreement: &createAgree,
		}
		if err := app.Register(cmd.Context(), req); err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		ui.Success(cmd.OutOrStdout(), "пользователь %s зарегистрирован", createPhone)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createFirstName, "first-name", "", "имя")
	CreateCmd.Flags().StringVar(&createLastName, "last-name", "", "фамилия")
	CreateCmd.Flags().StringVar(&createPhone, "phone", "", "телефон, 10 символов")
	CreateCmd.Flags().BoolVar(&createAgree, "tos", false, "согласие с условиями использования")
	_ = CreateCmd.MarkFlagRequired("first-name")
	_ = CreateCmd.MarkFlagRequired("last-name")
	_ = CreateCmd.MarkFlagRequired("phone")
}
