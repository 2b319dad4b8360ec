package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath          = ".env"
	DevHashingSecret = "thisIsASecret"
	EnvLocal         = "local"
	EnvDev           = "dev"
	EnvProd          = "prod"
)

type Config struct {
	Env     string
	Server  Server
	Storage Storage
	Auth    Auth
	Checks  Checks
	Logger  Logger
}

type Server struct {
	RunAddress      string
	HTTPSAddress    string
	TLSCertFile     string
	TLSKeyFile      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type Storage struct {
	DataDir string
}

type Auth struct {
	HashingSecret string
	TokenTTL      time.Duration
}

type Checks struct {
	MaxChecks int
}

type Logger struct {
	LogLevel string
}

// HTTPSEnabled reports whether the TLS listener should be started.
func (s Server) HTTPSEnabled() bool {
	return s.HTTPSAddress != ""
}

// MustLoad загружает конфигурацию и завершает процесс при ошибке.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	return cfg
}

// Load читает .env (если есть) и переменные окружения.
func Load() (*Config, error) {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = envPath
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", ":3000")
	v.SetDefault("data_dir", ".data")
	v.SetDefault("token_ttl", time.Hour)
	v.SetDefault("max_checks", 5)
	v.SetDefault("log_level", "info")
	v.SetDefault("read_timeout", 10*time.Second)
	v.SetDefault("write_timeout", 10*time.Second)
	v.SetDefault("shutdown_timeout", 5*time.Second)

	cfg := &Config{
		Env: v.GetString("app_env"),
		Server: Server{
			RunAddress:      v.GetString("run_address"),
			HTTPSAddress:    v.GetString("https_address"),
			TLSCertFile:     v.GetString("tls_cert_file"),
			TLSKeyFile:      v.GetString("tls_key_file"),
			ReadTimeout:     v.GetDuration("read_timeout"),
			WriteTimeout:    v.GetDuration("write_timeout"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Storage: Storage{DataDir: v.GetString("data_dir")},
		Auth: Auth{
			HashingSecret: v.GetString("hashing_secret"),
			TokenTTL:      v.GetDuration("token_ttl"),
		},
		Checks: Checks{MaxChecks: v.GetInt("max_checks")},
		Logger: Logger{LogLevel: v.GetString("log_level")},
	}

	if cfg.Auth.HashingSecret == "" && cfg.Env != EnvProd {
		cfg.Auth.HashingSecret = DevHashingSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if !slices.Contains([]string{EnvLocal, EnvDev, EnvProd}, c.Env) {
		return fmt.Errorf("APP_ENV must be one of %s, %s, %s: got %q", EnvLocal, EnvDev, EnvProd, c.Env)
	}
	if c.Auth.HashingSecret == "" {
		return errors.New("HASHING_SECRET is required")
	}
	if c.Env == EnvProd && c.Auth.HashingSecret == DevHashingSecret {
		return errors.New("HASHING_SECRET must be changed in prod")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive: got %s", c.Auth.TokenTTL)
	}
	if c.Checks.MaxChecks < 1 {
		return fmt.Errorf("MAX_CHECKS must be at least 1: got %d", c.Checks.MaxChecks)
	}
	if c.Storage.DataDir == "" {
		return errors.New("DATA_DIR is required")
	}
	if c.Server.HTTPSEnabled() && (c.Server.TLSCertFile == "" || c.Server.TLSKeyFile == "") {
		return errors.New("TLS_CERT_FILE and TLS_KEY_FILE are required when HTTPS_ADDRESS is set")
	}
	return nil
}
