package middleware

import (
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const notFoundBody = `{"message":"Route not found."}`

// TrimSlashes убирает ведущие и завершающие слэши: "//users/" маршрутизируется как "/users".
func TrimSlashes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := "/" + strings.Trim(r.URL.Path, "/")
		if path != r.URL.Path {
			u := *r.URL
			u.Path = path
			u.RawPath = ""
			r = r.WithContext(r.Context())
			r.URL = &u

			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				rctx.RoutePath = path
			}
		}

		next.ServeHTTP(w, r)
	})
}

// JSONBody помечает тело запроса как JSON, какой бы Content-Type ни прислал клиент.
// curl -d, например, шлет application/x-www-form-urlencoded.
func JSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasBody(r) && !isJSON(r.Header.Get("Content-Type")) {
			r.Header.Set("Content-Type", "application/json")
		}

		next.ServeHTTP(w, r)
	})
}

func hasBody(r *http.Request) bool {
	return r.ContentLength != 0 || len(r.TransferEncoding) > 0
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// NotFound отвечает 404 для путей вне таблицы маршрутов.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, notFoundBody)
}

// MethodNotAllowed отвечает 405 с пустым объектом.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, `{}`)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
