package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"uptime/internal/app/client/config"
	"uptime/internal/domain/check"
	"uptime/internal/domain/token"
	"uptime/internal/domain/user"
)

const tokenHeader = "token"

// APIError ответ сервера с кодом ошибки.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("сервер вернул статус %d", e.Status)
	}
	return fmt.Sprintf("%s (статус %d)", e.Message, e.Status)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 2,
		},
	}

	return &httpClient{
		client:    client,
		log:       log.With(slog.String("component", "http_client")),
		baseURL:   strings.TrimRight(cfg.ServerURL, "/"),
		token:     cfg.Token,
		userAgent: "uptime-cli/1.0",
	}
}

// SetToken устанавливает токен для запросов к /checks.
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// Ping проверяет доступность сервера.
func (h *httpClient) Ping(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/ping", nil, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) CreateUser(ctx context.Context, req user.CreateRequest) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/users", nil, req)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) GetUser(ctx context.Context, phone string) (*user.User, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/users", url.Values{"phone": {phone}}, nil)
	if err != nil {
		return nil, err
	}

	var u user.User
	if err := h.parseResponse(resp, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (h *httpClient) UpdateUser(ctx context.Context, req user.UpdateRequest) error {
	resp, err := h.doRequest(ctx, http.MethodPut, "/users", nil, req)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) DeleteUser(ctx context.Context, phone string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/users", url.Values{"phone": {phone}}, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) CreateToken(ctx context.Context, req token.CreateRequest) (*token.Token, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/tokens", nil, req)
	if err != nil {
		return nil, err
	}

	var t token.Token
	if err := h.parseResponse(resp, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *httpClient) GetToken(ctx context.Context, id string) (*token.Token, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/tokens", url.Values{"id": {id}}, nil)
	if err != nil {
		return nil, err
	}

	var t token.Token
	if err := h.parseResponse(resp, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *httpClient) RenewToken(ctx context.Context, id string) error {
	extend := true
	resp, err := h.doRequest(ctx, http.MethodPut, "/tokens", nil, token.RenewRequest{ID: &id, Extend: &extend})
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) DeleteToken(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/tokens", url.Values{"id": {id}}, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) CreateCheck(ctx context.Context, req check.CreateRequest) (*check.Check, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/checks", nil, req)
	if err != nil {
		return nil, err
	}

	var c check.Check
	if err := h.parseResponse(resp, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (h *httpClient) GetCheck(ctx context.Context, id string) (*check.Check, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/checks", url.Values{"id": {id}}, nil)
	if err != nil {
		return nil, err
	}

	var c check.Check
	if err := h.parseResponse(resp, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (h *httpClient) UpdateCheck(ctx context.Context, req check.UpdateRequest) (*check.Check, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, "/checks", nil, req)
	if err != nil {
		return nil, err
	}

	var c check.Check
	if err := h.parseResponse(resp, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (h *httpClient) DeleteCheck(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/checks", url.Values{"id": {id}}, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// doRequest выполняет запрос; body сериализуется в JSON, query добавляется к пути.
func (h *httpClient) doRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка сериализации запроса: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	target := h.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.Header.Set(tokenHeader, h.token)
	}

	h.log.Debug("request", slog.String("method", method), slog.String("path", path))

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("сервер недоступен: %w", err)
	}

	return resp, nil
}

// parseResponse декодирует успешный ответ в out или возвращает *APIError.
func (h *httpClient) parseResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode}
		var body struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &body) == nil {
			apiErr.Message = body.Error
			if apiErr.Message == "" {
				apiErr.Message = body.Message
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("ошибка разбора ответа: %w", err)
	}

	return nil
}
