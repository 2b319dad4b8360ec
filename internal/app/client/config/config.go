package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerURL = "http://localhost:3000"
	defaultEnv       = "local"
	defaultConfigDir = ".uptime"
	defaultTimeout   = 30 * time.Second
	tokenFile        = "token"
)

type Config struct {
	Env       string
	ServerURL string
	Token     string
	LogLevel  string
	ConfigDir string
	TokenPath string
	Timeout   time.Duration
}

// Load загружает конфигурацию клиента из .env, файла конфигурации viper и окружения.
// v может содержать значения из флагов и файла конфигурации, nil - только окружение.
func Load(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	if v == nil {
		v = viper.New()
	}
	v.AutomaticEnv()
	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("uptime_server", defaultServerURL)
	v.SetDefault("uptime_timeout", defaultTimeout)
	v.SetDefault("log_level", "warn")

	configDir := v.GetString("uptime_config_dir")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		configDir = filepath.Join(home, defaultConfigDir)
	}

	cfg := &Config{
		Env:       v.GetString("app_env"),
		ServerURL: v.GetString("uptime_server"),
		Token:     v.GetString("uptime_token"),
		LogLevel:  v.GetString("log_level"),
		ConfigDir: configDir,
		TokenPath: filepath.Join(configDir, tokenFile),
		Timeout:   v.GetDuration("uptime_timeout"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("UPTIME_SERVER: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("UPTIME_SERVER must start with http:// or https://: got %q", c.ServerURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("UPTIME_TIMEOUT must be positive: got %s", c.Timeout)
	}
	return nil
}
