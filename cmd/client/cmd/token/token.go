package token

import (
	"github.com/spf13/cobra"
)

// TokenCmd - родительская команда для операций с токенами
var TokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Управление токенами",
	Long: `Вход (выпуск токена), просмотр, продление и отзыв токена.

Команды get, extend и delete без аргумента работают с сохраненным токеном.`,
}

func idArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
