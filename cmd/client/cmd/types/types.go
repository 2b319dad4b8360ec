package types

import (
	"errors"

	"github.com/spf13/cobra"

	"uptime/internal/app/client"
)

type ctxKey string

// ClientAppKey ключ контекста команды, под которым root сохраняет *client.App.
const ClientAppKey ctxKey = "app"

var ErrNoApp = errors.New("приложение не инициализировано")

// App достает приложение из контекста команды.
func App(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}
