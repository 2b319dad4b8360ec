package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"uptime/cmd/client/cmd/types"
	"uptime/internal/app/client"
	"uptime/internal/app/client/config"
	"uptime/internal/utils/logger"
)

var (
	cfgFile   string
	serverURL string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "uptime-cli",
	Short: "uptime-cli - клиент API uptime-проверок",
	Long: `uptime-cli управляет пользователями, токенами и uptime-проверками на сервере.

Токен, выпущенный командой "token create", сохраняется локально
и передается в заголовке token при работе с проверками.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	v, err := loadViper(cmd)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log := logger.NewWithLevel(cfg.Env, level)

	app, err := client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

// loadViper читает config.yaml (--config или ~/.uptime) и привязывает флаг --server.
func loadViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".uptime"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if flag := cmd.Flags().Lookup("server"); flag != nil && flag.Changed {
		v.Set("uptime_server", serverURL)
	}

	return v, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "URL сервера, например http://localhost:3000")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный вывод")
}
