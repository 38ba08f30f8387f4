package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"ministry/internal/domain/material"
)

type Handler struct {
	catalog    material.Servicer
	started    time.Time
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(catalog material.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		catalog:    catalog,
		started:    time.Now(),
		log:        log.With("component", "health_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *struct{}) (*Output, error) {
	h.log.Debug("health check request received")

	items, err := h.catalog.List(ctx)
	if err != nil {
		return nil, huma.Error503ServiceUnavailable("catalog unavailable", err)
	}

	return &Output{
		Body: Response{
			Status:    "OK",
			Materials: len(items),
			Uptime:    time.Since(h.started).Round(time.Second).String(),
		},
	}, nil
}
