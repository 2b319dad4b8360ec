package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slog"

	"uptime/internal/app/client/config"
	"uptime/internal/domain/check"
	"uptime/internal/domain/token"
	"uptime/internal/domain/user"
)

// ErrNoToken команда требует токен, но он не сохранен и не передан через UPTIME_TOKEN.
var ErrNoToken = errors.New("токен не найден: выполните `uptime-cli token create`")

type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	app := &App{
		config:     cfg,
		log:        log.With(slog.String("component", "client")),
		httpClient: NewHTTPClient(cfg, log),
	}

	if cfg.Token == "" {
		saved, err := app.LoadToken()
		if err != nil && !errors.Is(err, ErrNoToken) {
			return nil, fmt.Errorf("ошибка чтения токена: %w", err)
		}
		app.httpClient.SetToken(saved)
	}

	return app, nil
}

// Ping проверяет соединение с сервером.
func (a *App) Ping(ctx context.Context) error {
	return a.httpClient.Ping(ctx)
}

func (a *App) Register(ctx context.Context, req user.CreateRequest) error {
	return a.httpClient.CreateUser(ctx, req)
}

func (a *App) User(ctx context.Context, phone string) (*user.User, error) {
	return a.httpClient.GetUser(ctx, phone)
}

func (a *App) UpdateUser(ctx context.Context, req user.UpdateRequest) error {
	return a.httpClient.UpdateUser(ctx, req)
}

func (a *App) DeleteUser(ctx context.Context, phone string) error {
	return a.httpClient.DeleteUser(ctx, phone)
}

// Login выпускает токен и сохраняет его для последующих команд.
func (a *App) Login(ctx context.Context, phone, password string) (*token.Token, error) {
	t, err := a.httpClient.CreateToken(ctx, token.CreateRequest{Phone: &phone, Password: &password})
	if err != nil {
		return nil, err
	}

	if err := a.SaveToken(t.ID); err != nil {
		return nil, fmt.Errorf("токен выпущен, но не сохранен: %w", err)
	}

	return t, nil
}

// Token возвращает токен по id, пустой id означает текущий токен.
func (a *App) Token(ctx context.Context, id string) (*token.Token, error) {
	id, err := a.tokenID(id)
	if err != nil {
		return nil, err
	}
	return a.httpClient.GetToken(ctx, id)
}

func (a *App) ExtendToken(ctx context.Context, id string) error {
	id, err := a.tokenID(id)
	if err != nil {
		return err
	}
	return a.httpClient.RenewToken(ctx, id)
}

// Logout удаляет токен на сервере и локальную копию, если удален текущий токен.
func (a *App) Logout(ctx context.Context, id string) error {
	current := a.httpClient.token
	id, err := a.tokenID(id)
	if err != nil {
		return err
	}

	if err := a.httpClient.DeleteToken(ctx, id); err != nil {
		return err
	}

	if id == current {
		return a.ClearToken()
	}
	return nil
}

func (a *App) CreateCheck(ctx context.Context, req check.CreateRequest) (*check.Check, error) {
	if err := a.requireToken(); err != nil {
		return nil, err
	}
	return a.httpClient.CreateCheck(ctx, req)
}

func (a *App) Check(ctx context.Context, id string) (*check.Check, error) {
	if err := a.requireToken(); err != nil {
		return nil, err
	}
	return a.httpClient.GetCheck(ctx, id)
}

func (a *App) UpdateCheck(ctx context.Context, req check.UpdateRequest) (*check.Check, error) {
	if err := a.requireToken(); err != nil {
		return nil, err
	}
	return a.httpClient.UpdateCheck(ctx, req)
}

func (a *App) DeleteCheck(ctx context.Context, id string) error {
	if err := a.requireToken(); err != nil {
		return err
	}
	return a.httpClient.DeleteCheck(ctx, id)
}

// SaveToken сохраняет токен в файл и использует его для следующих запросов.
func (a *App) SaveToken(id string) error {
	if err := os.MkdirAll(filepath.Dir(a.config.TokenPath), 0o700); err != nil {
		return fmt.Errorf("ошибка создания директории: %w", err)
	}
	if err := os.WriteFile(a.config.TokenPath, []byte(id+"\n"), 0o600); err != nil {
		return fmt.Errorf("ошибка записи токена: %w", err)
	}

	a.httpClient.SetToken(id)
	a.log.Debug("token saved", slog.String("path", a.config.TokenPath))
	return nil
}

func (a *App) LoadToken() (string, error) {
	data, err := os.ReadFile(a.config.TokenPath)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}

	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", ErrNoToken
	}
	return id, nil
}

func (a *App) ClearToken() error {
	a.httpClient.SetToken("")
	if err := os.Remove(a.config.TokenPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}
	return nil
}

func (a *App) tokenID(id string) (string, error) {
	if id != "" {
		return id, nil
	}
	if err := a.requireToken(); err != nil {
		return "", err
	}
	return a.httpClient.token, nil
}

func (a *App) requireToken() error {
	if a.httpClient.token == "" {
		return ErrNoToken
	}
	return nil
}
