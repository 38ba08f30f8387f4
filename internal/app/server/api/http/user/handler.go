package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"ministry/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "user_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.findOp(), h.find)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	u, err := h.service.Create(ctx, user.CreateInput{
		Username: input.Body.Username,
		Password: input.Body.Password,
	})
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &output{Body: u}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*output, error) {
	u, ok, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, toHTTPError(err)
	}
	if !ok {
		return nil, huma.Error404NotFound("User not found")
	}
	return &output{Body: u}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*output, error) {
	u, ok, err := h.service.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, toHTTPError(err)
	}
	if !ok {
		return nil, huma.Error404NotFound("User not found")
	}
	return &output{Body: u}, nil
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, user.ErrUsernameTaken):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, user.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}
