package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *chi.Mux {
	mux := chi.NewMux()
	mux.Use(TrimSlashes)
	mux.NotFound(NotFound)
	mux.MethodNotAllowed(MethodNotAllowed)
	mux.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.URL.Path))
	})
	return mux
}

func TestTrimSlashes(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{name: "exact", path: "/ping", status: http.StatusOK},
		{name: "trailing slash", path: "/ping/", status: http.StatusOK},
		{name: "double slashes", path: "//ping//", status: http.StatusOK},
		{name: "case sensitive", path: "/Ping", status: http.StatusNotFound},
		{name: "root", path: "/", status: http.StatusNotFound},
		{name: "nested", path: "/ping/extra", status: http.StatusNotFound},
	}

	mux := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://example.com"+tt.path, nil)
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "/ping", rec.Body.String())
			}
		})
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	mux := newRouter()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Route not found."}`, rec.Body.String())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/ping", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestJSONBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		want        string
	}{
		{name: "form encoded", body: `{"a":1}`, contentType: "application/x-www-form-urlencoded", want: "application/json"},
		{name: "text plain", body: `{"a":1}`, contentType: "text/plain", want: "application/json"},
		{name: "missing", body: `{"a":1}`, contentType: "", want: "application/json"},
		{name: "json with charset", body: `{"a":1}`, contentType: "application/json; charset=utf-8", want: "application/json; charset=utf-8"},
		{name: "merge patch", body: `{"a":1}`, contentType: "application/merge-patch+json", want: "application/merge-patch+json"},
		{name: "no body", body: "", contentType: "text/plain", want: "text/plain"},
	}

	var got string
	handler := JSONBody(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Content-Type")
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSharedMiddlewares(t *testing.T) {
	var calls []string
	first := func(ctx huma.Context, next func(huma.Context)) { calls = append(calls, "first"); next(ctx) }
	second := func(ctx huma.Context, next func(huma.Context)) { calls = append(calls, "second"); next(ctx) }

	c := NewContainer(first, second)
	a, b := c.Middlewares(), c.Middlewares()
	require.Len(t, a, 2)
	require.Len(t, b, 2)

	a[0] = nil
	assert.NotNil(t, c.Middlewares()[0])

	c.Middlewares()[1](nil, func(huma.Context) {})
	assert.Equal(t, []string{"second"}, calls)
}
