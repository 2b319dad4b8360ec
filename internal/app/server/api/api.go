// Маршруты API:
//
//	GET    /ping
//	POST   /users     GET /users?phone=   PUT /users     DELETE /users?phone=
//	POST   /tokens    GET /tokens?id=     PUT /tokens    DELETE /tokens?id=
//	POST   /checks    GET /checks?id=     PUT /checks    DELETE /checks?id=   (заголовок token)
//
// Любой другой путь отвечает 404, известный путь с чужим методом 405.
package api

import (
	"fmt"

	"uptime/internal/app/server/api/http/apierr"
	checkAPI "uptime/internal/app/server/api/http/check"
	"uptime/internal/app/server/api/http/middleware"
	"uptime/internal/app/server/api/http/middleware/logger"
	pingAPI "uptime/internal/app/server/api/http/ping"
	tokenAPI "uptime/internal/app/server/api/http/token"
	userAPI "uptime/internal/app/server/api/http/user"
	"uptime/internal/app/server/config"
	"uptime/internal/app/server/crypto"
	"uptime/internal/domain/check"
	"uptime/internal/domain/token"
	"uptime/internal/domain/user"
	"uptime/internal/infrastructure/storage/file"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

// Resource ресурс API, который регистрирует свои операции.
type Resource interface {
	SetupRoutes(api huma.API)
}

type Handlers struct {
	Ping  *pingAPI.Handler
	User  *userAPI.Handler
	Token *tokenAPI.Handler
	Check *checkAPI.Handler
}

func (h *Handlers) resources() []Resource {
	return []Resource{h.Ping, h.User, h.Token, h.Check}
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(store *file.Store, cfg *config.Config, log *slog.Logger) (*chi.Mux, error) {
	apierr.Install()

	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.Recoverer, middleware.TrimSlashes, middleware.JSONBody)
	mux.NotFound(middleware.NotFound)
	mux.MethodNotAllowed(middleware.MethodNotAllowed)

	humaConfig := huma.DefaultConfig("Uptime API", "1.0.0")
	humaConfig.DocsPath = ""
	humaConfig.SchemasPath = ""
	humaConfig.CreateHooks = nil
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		checkAPI.TokenScheme: {Type: "apiKey", In: "header", Name: "token"},
	}

	API := humachi.New(mux, humaConfig)

	h, err := handlers(store, cfg, log)
	if err != nil {
		return nil, err
	}
	for _, r := range h.resources() {
		r.SetupRoutes(API)
	}

	return mux, nil
}

func handlers(store *file.Store, cfg *config.Config, log *slog.Logger) (*Handlers, error) {
	hasher, err := crypto.NewHasher(cfg.Auth.HashingSecret)
	if err != nil {
		return nil, fmt.Errorf("init hasher: %w", err)
	}

	middlewares := middleware.NewContainer(logger.New(log).Middleware())

	pingHandler := pingAPI.NewHandler(log, middlewares.Middlewares())

	userRepo := file.NewUserRepository(store, log)
	userService := user.NewService(userRepo, user.NewValidator(), hasher, log)
	userHandler := userAPI.NewHandler(userService, log, middlewares.Middlewares())

	tokenRepo := file.NewTokenRepository(store, log)
	tokenService := token.NewService(tokenRepo, userRepo, hasher, crypto.RandomString, cfg.Auth.TokenTTL, log)
	tokenHandler := tokenAPI.NewHandler(tokenService, log, middlewares.Middlewares())

	checkRepo := file.NewCheckRepository(store, log)
	checkService := check.NewService(checkRepo, userRepo, tokenService, check.NewValidator(), crypto.RandomString, cfg.Checks.MaxChecks, log)
	checkHandler := checkAPI.NewHandler(checkService, log, middlewares.Middlewares())

	return &Handlers{
		Ping:  pingHandler,
		User:  userHandler,
		Token: tokenHandler,
		Check: checkHandler,
	}, nil
}
