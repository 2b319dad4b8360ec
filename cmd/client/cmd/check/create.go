package check

import (
	"fmt"

	"github.com/spf13/cobra"

	"uptime/cmd/client/cmd/types"
	"uptime/cmd/client/cmd/ui"
	"uptime/internal/domain/check"
)

var createFlags checkFlags

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать проверку",
	Example: `  uptime-cli check create --protocol https --url example.com --method get \
    --code 200 --code 201 --timeout 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		timeout := float64(createFlags.timeout)
		req := check.CreateRequest{
			Protocol:       &createFlags.protocol,
			URL:            &createFlags.url,
			Method:         &createFlags.method,
			SuccessCodes:   createFlags.codes,
			TimeoutSeconds: &timeout,
		}

		c, err := app.CreateCheck(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("ошибка создания проверки: %w", err)
		}

		return ui.JSON(cmd.OutOrStdout(), c)
	},
}

func init() {
	createFlags.register(CreateCmd.Flags())
	for _, name := range []string{"protocol", "url", "method", "code", "timeout"} {
		_ = CreateCmd.MarkFlagRequired(name)
	}
}
