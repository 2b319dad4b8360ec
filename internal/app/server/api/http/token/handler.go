package token

import (
	"context"
	"errors"

	"uptime/internal/app/server/api/http/apierr"
	"uptime/internal/app/server/api/http/response"
	"uptime/internal/domain/token"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    token.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service token.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With(slog.String("component", "token_handler")),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.renewOp(), h.renew)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*tokenOutput, error) {
	t, err := h.service.Issue(ctx, input.Body.request())
	switch {
	case err == nil:
		return &tokenOutput{Body: t}, nil
	case errors.Is(err, token.ErrInvalidInput):
		return nil, apierr.BadRequest(apierr.MsgMissingFields)
	case errors.Is(err, token.ErrUserNotFound):
		return nil, apierr.NotFound("Could not find the specified user.")
	case errors.Is(err, token.ErrInvalidCredentials):
		return nil, apierr.BadRequest("Password did not match the specified user's stored password.")
	default:
		h.log.Error("create token", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not create the new token.")
	}
}

func (h *Handler) get(ctx context.Context, input *idInput) (*tokenOutput, error) {
	t, err := h.service.Get(ctx, input.ID)
	switch {
	case err == nil:
		return &tokenOutput{Body: t}, nil
	case errors.Is(err, token.ErrInvalidInput):
		return nil, apierr.BadRequest("Missing required field.")
	case errors.Is(err, token.ErrNotFound):
		return nil, apierr.NotFound("Specified token does not exist.")
	default:
		h.log.Error("read token", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not read the specified token.")
	}
}

func (h *Handler) renew(ctx context.Context, input *renewInput) (*response.EmptyOutput, error) {
	_, err := h.service.Renew(ctx, input.Body.request())
	switch {
	case err == nil:
		return response.OK(), nil
	case errors.Is(err, token.ErrInvalidInput):
		return nil, apierr.BadRequest("Missing required field(s) or field(s) are invalid.")
	case errors.Is(err, token.ErrNotFound):
		return nil, apierr.BadRequest("Specified token does not exist.")
	case errors.Is(err, token.ErrExpired):
		return nil, apierr.BadRequest("The token has already expired and cannot be extended.")
	default:
		h.log.Error("renew token", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not update the token's expiration.")
	}
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*response.EmptyOutput, error) {
	err := h.service.Revoke(ctx, input.ID)
	switch {
	case err == nil:
		return response.OK(), nil
	case errors.Is(err, token.ErrInvalidInput):
		return nil, apierr.BadRequest("Missing required field.")
	case errors.Is(err, token.ErrNotFound):
		return nil, apierr.NotFound("Could not find the specified token.")
	default:
		h.log.Error("delete token", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not delete the specified token.")
	}
}
