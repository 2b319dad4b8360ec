package ping

import (
	"context"

	"uptime/internal/app/server/api/http/response"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.pingOp(), h.ping)
}

func (h *Handler) ping(_ context.Context, _ *Input) (*response.EmptyOutput, error) {
	h.log.Debug("ping request received")

	return response.OK(), nil
}
