package user

import (
	"github.com/spf13/cobra"
)

// UserCmd - родительская команда для операций с пользователями
var UserCmd = &cobra.Command{
	Use:   "user",
	Short: "Управление пользователями",
	Long:  `Регистрация, просмотр, изменение и удаление пользователя.`,
}
