package user

import (
	"context"
	"errors"

	"uptime/internal/app/server/api/http/apierr"
	"uptime/internal/app/server/api/http/response"
	"uptime/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With(slog.String("component", "user_handler")),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*response.EmptyOutput, error) {
	err := h.service.Register(ctx, input.Body.request())
	switch {
	case err == nil:
		return response.OK(), nil
	case errors.Is(err, user.ErrInvalidInput):
		return nil, apierr.BadRequest(apierr.MsgMissingFields)
	case errors.Is(err, user.ErrAlreadyExists):
		return nil, apierr.BadRequest("A user with that phone number already exists.")
	case errors.Is(err, user.ErrHashPassword):
		h.log.Error("hash password", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not hash the user's password.")
	default:
		h.log.Error("create user", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not create the new user.")
	}
}

func (h *Handler) get(ctx context.Context, input *phoneInput) (*getOutput, error) {
	u, err := h.service.Get(ctx, input.Phone)
	switch {
	case err == nil:
		return &getOutput{Body: toResponse(u)}, nil
	case errors.Is(err, user.ErrInvalidInput):
		return nil, apierr.BadRequest("Missing required field.")
	case errors.Is(err, user.ErrNotFound):
		return nil, apierr.NotFound("Could not find the specified user.")
	default:
		h.log.Error("read user", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not read the specified user.")
	}
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*response.EmptyOutput, error) {
	err := h.service.Update(ctx, input.Body.request())
	switch {
	case err == nil:
		return response.OK(), nil
	case errors.Is(err, user.ErrInvalidInput):
		return nil, apierr.BadRequest("Missing required field.")
	case errors.Is(err, user.ErrMissingUpdateFields):
		return nil, apierr.BadRequest("Missing fields to update.")
	case errors.Is(err, user.ErrNotFound):
		return nil, apierr.BadRequest("The specified user does not exist.")
	case errors.Is(err, user.ErrHashPassword):
		h.log.Error("hash password", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not hash the user's password.")
	default:
		h.log.Error("update user", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not update the user.")
	}
}

func (h *Handler) delete(ctx context.Context, input *phoneInput) (*response.EmptyOutput, error) {
	err := h.service.Delete(ctx, input.Phone)
	switch {
	case err == nil:
		return response.OK(), nil
	case errors.Is(err, user.ErrInvalidInput):
		return nil, apierr.BadRequest("Missing required field.")
	case errors.Is(err, user.ErrNotFound):
		return nil, apierr.BadRequest("Could not find the specified user.")
	default:
		h.log.Error("delete user", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not delete the specified user.")
	}
}
