package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"uptime/internal/app/server/config"
	"uptime/internal/infrastructure/storage"
	"uptime/internal/infrastructure/storage/file"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

const (
	adaPhone    = "5551234567"
	adaPassword = "ThisIsAPassword"
)

type testServer struct {
	t       *testing.T
	mux     *chi.Mux
	dataDir string
}

func testConfig() *config.Config {
	return &config.Config{
		Env:    config.EnvDev,
		Auth:   config.Auth{HashingSecret: "thisIsASecret", TokenTTL: time.Hour},
		Checks: config.Checks{MaxChecks: 5},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	dir := t.TempDir()
	cfg.Storage.DataDir = dir

	store, err := file.New(dir, slog.Default(), storage.Collections()...)
	require.NoError(t, err)

	mux, err := New(store, cfg, slog.Default())
	require.NoError(t, err)

	return &testServer{t: t, mux: mux, dataDir: dir}
}

func (s *testServer) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["error"]
}

func (s *testServer) createAda() {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/users", map[string]any{
		"firstName":    "Ada",
		"lastName":     "Lovelace",
		"phone":        adaPhone,
		"password":     adaPassword,
		"tosAgreement": true,
	}, nil)
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
}

func (s *testServer) login(phone, password string) string {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/tokens", map[string]any{"phone": phone, "password": password}, nil)
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[map[string]any](s.t, rec)["id"].(string)
}

func (s *testServer) createCheck(tokenID string) *httptest.ResponseRecorder {
	s.t.Helper()

	return s.do(http.MethodPost, "/checks", map[string]any{
		"protocol":       "https",
		"url":            "example.com",
		"method":         "get",
		"successCodes":   []int{200, 201},
		"timeoutSeconds": 3,
	}, map[string]string{"token": tokenID})
}

func TestPing(t *testing.T) {
	s := newTestServer(t, testConfig())

	rec := s.do(http.MethodGet, "/ping", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/ping/", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouting(t *testing.T) {
	s := newTestServer(t, testConfig())

	rec := s.do(http.MethodGet, "/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Route not found."}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/Users", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPatch, "/users", nil, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/openapi.json", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/checks"`)
}

func TestAdaLovelaceScenario(t *testing.T) {
	s := newTestServer(t, testConfig())
	s.createAda()

	rec := s.do(http.MethodGet, "/users?phone="+adaPhone, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hashedPassword")
	assert.NotContains(t, rec.Body.String(), adaPassword)
	assert.JSONEq(t, `{"firstName":"Ada","lastName":"Lovelace","phone":"5551234567","tosAgreement":true,"checks":[]}`, rec.Body.String())

	onDisk, err := os.ReadFile(filepath.Join(s.dataDir, "users", adaPhone+".json"))
	require.NoError(t, err)
	assert.NotContains(t, string(onDisk), adaPassword)
	assert.Contains(t, string(onDisk), `"hashedPassword"`)

	rec = s.do(http.MethodPost, "/tokens", map[string]any{"phone": adaPhone, "password": adaPassword}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tok := decode[map[string]any](t, rec)
	tokenID := tok["id"].(string)
	assert.Len(t, tokenID, 20)
	assert.Equal(t, adaPhone, tok["phone"])
	assert.Greater(t, tok["expires"].(float64), float64(time.Now().UnixMilli()))

	rec = s.createCheck(tokenID)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	chk := decode[map[string]any](t, rec)
	checkID := chk["id"].(string)
	assert.Len(t, checkID, 20)
	assert.Equal(t, adaPhone, chk["userPhone"])
	assert.Equal(t, float64(3), chk["timeoutSeconds"])

	rec = s.do(http.MethodGet, "/users?phone="+adaPhone, nil, nil)
	assert.Equal(t, []any{checkID}, decode[map[string]any](t, rec)["checks"])

	auth := map[string]string{"token": tokenID}

	rec = s.do(http.MethodGet, "/checks?id="+checkID, nil, auth)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https", decode[map[string]any](t, rec)["protocol"])

	rec = s.do(http.MethodPut, "/checks", map[string]any{"id": checkID, "timeoutSeconds": 5, "method": "post"}, auth)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[map[string]any](t, rec)
	assert.Equal(t, float64(5), updated["timeoutSeconds"])
	assert.Equal(t, "post", updated["method"])
	assert.Equal(t, "example.com", updated["url"])

	rec = s.do(http.MethodGet, "/checks?id="+checkID, nil, auth)
	assert.Equal(t, float64(5), decode[map[string]any](t, rec)["timeoutSeconds"])

	rec = s.do(http.MethodDelete, "/checks?id="+checkID, nil, auth)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/users?phone="+adaPhone, nil, nil)
	assert.Equal(t, []any{}, decode[map[string]any](t, rec)["checks"])

	rec = s.do(http.MethodGet, "/checks?id="+checkID, nil, auth)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	before := tok["expires"].(float64)
	rec = s.do(http.MethodPut, "/tokens", map[string]any{"id": tokenID, "extend": true}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/tokens?id="+tokenID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, decode[map[string]any](t, rec)["expires"].(float64), before)

	rec = s.do(http.MethodDelete, "/tokens?id="+tokenID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/tokens?id="+tokenID, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, "/users?phone="+adaPhone, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/users?phone="+adaPhone, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsers(t *testing.T) {
	s := newTestServer(t, testConfig())
	s.createAda()

	t.Run("duplicate phone conflicts", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/users", map[string]any{
			"firstName": "Augusta", "lastName": "King", "phone": adaPhone,
			"password": "other", "tosAgreement": true,
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "A user with that phone number already exists.", errorMessage(t, rec))
	})

	t.Run("tos must be true", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/users", map[string]any{
			"firstName": "Charles", "lastName": "Babbage", "phone": "5559876543",
			"password": "engine", "tosAgreement": false,
		}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing required fields.", errorMessage(t, rec))
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/users", `{"firstName":`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing required fields.", errorMessage(t, rec))
	})

	t.Run("wrong types", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/users", `{"firstName":1,"lastName":"B","phone":"5559876543","password":"p","tosAgreement":"yes"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing required fields.", errorMessage(t, rec))
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/users", map[string]any{
			"firstName": "Charles", "lastName": "Babbage", "phone": "5559876543",
			"password": "engine", "tosAgreement": true, "nickname": "Charlie",
		}, nil)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("get with bad phone", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/users?phone=123", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		rec := s.do(http.MethodPut, "/users", map[string]any{"phone": adaPhone, "lastName": "King"}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = s.do(http.MethodGet, "/users?phone="+adaPhone, nil, nil)
		assert.Equal(t, "King", decode[map[string]any](t, rec)["lastName"])
	})

	t.Run("update requires a field", func(t *testing.T) {
		rec := s.do(http.MethodPut, "/users", map[string]any{"phone": adaPhone}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing fields to update.", errorMessage(t, rec))
	})

	t.Run("update missing user", func(t *testing.T) {
		rec := s.do(http.MethodPut, "/users", map[string]any{"phone": "5550000000", "firstName": "X"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("password change invalidates old password", func(t *testing.T) {
		rec := s.do(http.MethodPut, "/users", map[string]any{"phone": adaPhone, "password": "NewPassword"}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = s.do(http.MethodPost, "/tokens", map[string]any{"phone": adaPhone, "password": adaPassword}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Password did not match the specified user's stored password.", errorMessage(t, rec))

		s.login(adaPhone, "NewPassword")
	})

	t.Run("delete missing user is a bad request", func(t *testing.T) {
		rec := s.do(http.MethodDelete, "/users?phone=5550000000", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Could not find the specified user.", errorMessage(t, rec))
	})
}

func TestUsers_BodyContentType(t *testing.T) {
	s := newTestServer(t, testConfig())

	ada := `{"firstName":"Ada","lastName":"Lovelace","phone":"` + adaPhone + `","password":"` + adaPassword + `","tosAgreement":true}`
	rec := s.do(http.MethodPost, "/users", ada, map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/users?phone="+adaPhone, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ada", decode[map[string]any](t, rec)["firstName"])

	rec = s.do(http.MethodPut, "/users", `{"phone":"`+adaPhone+`","lastName":"King"}`, map[string]string{"Content-Type": "text/plain"})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/users", "firstName=Ada", map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields.", errorMessage(t, rec))
}

func TestTokens(t *testing.T) {
	s := newTestServer(t, testConfig())
	s.createAda()

	rec := s.do(http.MethodPost, "/tokens", map[string]any{"phone": "5550000000", "password": "x"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, "/tokens", map[string]any{"phone": adaPhone}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/tokens?id=short", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/tokens?id=aaaaaaaaaaaaaaaaaaaa", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPut, "/tokens", map[string]any{"id": "aaaaaaaaaaaaaaaaaaaa", "extend": true}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Specified token does not exist.", errorMessage(t, rec))

	tokenID := s.login(adaPhone, adaPassword)
	rec = s.do(http.MethodPut, "/tokens", map[string]any{"id": tokenID, "extend": false}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodDelete, "/tokens?id=aaaaaaaaaaaaaaaaaaaa", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.TokenTTL = -time.Minute
	s := newTestServer(t, cfg)
	s.createAda()

	tokenID := s.login(adaPhone, adaPassword)

	rec := s.do(http.MethodPut, "/tokens", map[string]any{"id": tokenID, "extend": true}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "The token has already expired and cannot be extended.", errorMessage(t, rec))

	rec = s.createCheck(tokenID)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestChecksAuthorization(t *testing.T) {
	s := newTestServer(t, testConfig())
	s.createAda()
	adaToken := s.login(adaPhone, adaPassword)

	rec := s.createCheck(adaToken)
	require.Equal(t, http.StatusOK, rec.Code)
	checkID := decode[map[string]any](t, rec)["id"].(string)

	rec = s.do(http.MethodPost, "/users", map[string]any{
		"firstName": "Charles", "lastName": "Babbage", "phone": "5559876543",
		"password": "engine", "tosAgreement": true,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	charlesToken := s.login("5559876543", "engine")

	t.Run("get without token", func(t *testing.T) {
		rec := s.do(http.MethodGet, "/checks?id="+checkID, nil, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Missing required token in header, or token is invalid.", errorMessage(t, rec))
	})

	t.Run("foreign token", func(t *testing.T) {
		auth := map[string]string{"token": charlesToken}
		assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/checks?id="+checkID, nil, auth).Code)
		assert.Equal(t, http.StatusForbidden, s.do(http.MethodPut, "/checks", map[string]any{"id": checkID, "url": "evil.com"}, auth).Code)
		assert.Equal(t, http.StatusForbidden, s.do(http.MethodDelete, "/checks?id="+checkID, nil, auth).Code)
	})

	t.Run("create without token", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, s.createCheck("").Code)
		assert.Equal(t, http.StatusForbidden, s.createCheck("aaaaaaaaaaaaaaaaaaaa").Code)
	})

	t.Run("missing check", func(t *testing.T) {
		auth := map[string]string{"token": adaToken}
		missing := "zzzzzzzzzzzzzzzzzzzz"
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/checks?id="+missing, nil, auth).Code)
		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, "/checks", map[string]any{"id": missing, "url": "x.com"}, auth).Code)
		assert.Equal(t, http.StatusBadRequest, s.do(http.MethodDelete, "/checks?id="+missing, nil, auth).Code)
	})

	t.Run("invalid payload", func(t *testing.T) {
		rec := s.do(http.MethodPost, "/checks", map[string]any{
			"protocol": "ftp", "url": "example.com", "method": "get",
			"successCodes": []int{200}, "timeoutSeconds": 3,
		}, map[string]string{"token": adaToken})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = s.do(http.MethodPost, "/checks", map[string]any{
			"protocol": "http", "url": "example.com", "method": "get",
			"successCodes": []int{200}, "timeoutSeconds": 2.5,
		}, map[string]string{"token": adaToken})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestChecksQuota(t *testing.T) {
	cfg := testConfig()
	cfg.Checks.MaxChecks = 2
	s := newTestServer(t, cfg)
	s.createAda()
	tokenID := s.login(adaPhone, adaPassword)

	for i := 0; i < 2; i++ {
		rec := s.createCheck(tokenID)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := s.createCheck(tokenID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "The user already has the maximum number of checks (2)", errorMessage(t, rec))

	rec = s.do(http.MethodGet, "/users?phone="+adaPhone, nil, nil)
	assert.Len(t, decode[map[string]any](t, rec)["checks"], 2)

	entries, err := os.ReadDir(filepath.Join(s.dataDir, "checks"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.True(t, strings.HasSuffix(e.Name(), ".json"))
	}
}
