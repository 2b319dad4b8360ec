package check

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"uptime/cmd/client/cmd/types"
	"uptime/cmd/client/cmd/ui"
	"uptime/internal/domain/check"
)

var updateFlags checkFlags

var UpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Изменить проверку",
	Long:  `Изменяются только переданные поля. Нужно передать хотя бы одно.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		id := args[0]
		req := check.UpdateRequest{ID: &id}
		changed := false
		flags := cmd.Flags()

		if flags.Changed("protocol") {
			req.Protocol, changed = &updateFlags.protocol, true
		}
		if flags.Changed("url") {
			req.URL, changed = &updateFlags.url, true
		}
		if flags.Changed("method") {
			req.Method, changed = &updateFlags.method, true
		}
		if flags.Changed("code") {
			req.SuccessCodes, changed = updateFlags.codes, true
		}
		if flags.Changed("timeout") {
			timeout := float64(updateFlags.timeout)
			req.TimeoutSeconds, changed = &timeout, true
		}
		if !changed {
			return errors.New("укажите хотя бы одно поле для изменения")
		}

		c, err := app.UpdateCheck(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("ошибка изменения проверки: %w", err)
		}

		return ui.JSON(cmd.OutOrStdout(), c)
	},
}

func init() {
	updateFlags.register(UpdateCmd.Flags())
}
