package check

import (
	"context"
	"errors"
	"fmt"

	"uptime/internal/app/server/api/http/apierr"
	"uptime/internal/app/server/api/http/response"
	"uptime/internal/domain/check"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    check.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service check.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With(slog.String("component", "check_handler")),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*checkOutput, error) {
	c, err := h.service.Create(ctx, input.Token, input.Body.request())

	var quota *check.QuotaError
	switch {
	case err == nil:
		return &checkOutput{Body: c}, nil
	case errors.Is(err, check.ErrInvalidInput):
		return nil, apierr.BadRequest("Missing required inputs, or inputs are invalid.")
	case errors.Is(err, check.ErrForbidden):
		return nil, apierr.Forbidden()
	case errors.As(err, &quota):
		return nil, apierr.BadRequest(fmt.Sprintf("The user already has the maximum number of checks (%d)", quota.Max))
	case errors.Is(err, check.ErrOwnerUpdate):
		h.log.Error("attach check to user", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not update the user with the new check.")
	default:
		h.log.Error("create check", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not create the new check.")
	}
}

func (h *Handler) get(ctx context.Context, input *idInput) (*checkOutput, error) {
	c, err := h.service.Get(ctx, input.Token, input.ID)
	switch {
	case err == nil:
		return &checkOutput{Body: c}, nil
	case errors.Is(err, check.ErrInvalidInput):
		return nil, apierr.BadRequest("Missing required field.")
	case errors.Is(err, check.ErrNotFound):
		return nil, apierr.NotFound("Could not find the specified check.")
	case errors.Is(err, check.ErrForbidden):
		return nil, apierr.Forbidden()
	default:
		h.log.Error("read check", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not read the specified check.")
	}
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*checkOutput, error) {
	c, err := h.service.Update(ctx, input.Token, input.Body.request())
	switch {
	case err == nil:
		return &checkOutput{Body: c}, nil
	case errors.Is(err, check.ErrInvalidInput):
		return nil, apierr.BadRequest("Missing required field.")
	case errors.Is(err, check.ErrMissingUpdateFields):
		return nil, apierr.BadRequest("Missing fields to update.")
	case errors.Is(err, check.ErrNotFound):
		return nil, apierr.BadRequest("Check ID did not exist.")
	case errors.Is(err, check.ErrForbidden):
		return nil, apierr.Forbidden()
	default:
		h.log.Error("update check", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not update the check.")
	}
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*response.EmptyOutput, error) {
	err := h.service.Delete(ctx, input.Token, input.ID)
	switch {
	case err == nil:
		return response.OK(), nil
	case errors.Is(err, check.ErrInvalidInput):
		return nil, apierr.BadRequest("Missing required field.")
	case errors.Is(err, check.ErrNotFound):
		return nil, apierr.BadRequest("The check ID specified could not be found.")
	case errors.Is(err, check.ErrForbidden):
		return nil, apierr.Forbidden()
	case errors.Is(err, check.ErrOwnerNotFound):
		h.log.Error("find check owner", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not find the user who created the check, so could not remove the check from their list.")
	case errors.Is(err, check.ErrOwnerUpdate):
		h.log.Error("detach check from user", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not update the user.")
	default:
		h.log.Error("delete check", slog.String("error", err.Error()))
		return nil, apierr.Internal("Could not delete the check data.")
	}
}
