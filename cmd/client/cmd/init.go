package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"uptime/cmd/client/cmd/check"
	"uptime/cmd/client/cmd/token"
	"uptime/cmd/client/cmd/types"
	"uptime/cmd/client/cmd/ui"
	"uptime/cmd/client/cmd/user"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Проверить доступность сервера",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.Ping(cmd.Context()); err != nil {
			return fmt.Errorf("сервер недоступен: %w", err)
		}

		ui.Success(cmd.OutOrStdout(), "сервер доступен")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)

	rootCmd.AddCommand(user.UserCmd)
	user.UserCmd.AddCommand(user.CreateCmd)
	user.UserCmd.AddCommand(user.GetCmd)
	user.UserCmd.AddCommand(user.UpdateCmd)
	user.UserCmd.AddCommand(user.DeleteCmd)

	rootCmd.AddCommand(token.TokenCmd)
	token.TokenCmd.AddCommand(token.CreateCmd)
	token.TokenCmd.AddCommand(token.GetCmd)
	token.TokenCmd.AddCommand(token.ExtendCmd)
	token.TokenCmd.AddCommand(token.DeleteCmd)

	rootCmd.AddCommand(check.CheckCmd)
	check.CheckCmd.AddCommand(check.CreateCmd)
	check.CheckCmd.AddCommand(check.GetCmd)
	check.CheckCmd.AddCommand(check.UpdateCmd)
	check.CheckCmd.AddCommand(check.DeleteCmd)
}
