// GET    /api/health
// GET    /api/service-materials
// GET    /api/service-materials/{id}
// POST   /api/service-materials/upload
// PATCH  /api/service-materials/{id}
// DELETE /api/service-materials/{id}
// GET    /api/gallery
// POST   /api/users
// GET    /api/users/{id}
// GET    /api/users?username=
// GET    /metrics

package api

import (
	galleryAPI "ministry/internal/app/server/api/http/gallery"
	healthAPI "ministry/internal/app/server/api/http/health"
	materialAPI "ministry/internal/app/server/api/http/material"
	"ministry/internal/app/server/api/http/middleware"
	"ministry/internal/app/server/api/http/middleware/logger"
	"ministry/internal/app/server/api/http/middleware/metrics"
	userAPI "ministry/internal/app/server/api/http/user"
	"ministry/internal/domain/material"
	"ministry/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"
)

type Deps struct {
	Materials    material.Servicer
	Users        user.Servicer
	MaxFileBytes int64
	Registry     *prometheus.Registry
	Log          *slog.Logger
}

type Handlers struct {
	Health   *healthAPI.Handler
	Material *materialAPI.Handler
	Gallery  *galleryAPI.Handler
	User     *userAPI.Handler
}

// New creates a *chi.Mux with every operation registered through huma.
func New(deps Deps) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig("Ministry Service Materials API", "1.0.0")
	API := humachi.New(mux, config)

	m := metrics.New(deps.Registry)
	h := handlers(deps, m)
	h.Health.SetupRoutes(API)
	h.Material.SetupRoutes(API)
	h.Gallery.SetupRoutes(API)
	h.User.SetupRoutes(API)

	mux.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	return mux
}

func handlers(deps Deps, m *metrics.Metrics) *Handlers {
	log := deps.Log
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(deps.Materials, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(m.Middleware())
	materialHandler := materialAPI.NewHandler(deps.Materials, deps.MaxFileBytes, m, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(m.Middleware())
	galleryHandler := galleryAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(m.Middleware())
	userHandler := userAPI.NewHandler(deps.Users, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Material: materialHandler,
		Gallery:  galleryHandler,
		User:     userHandler,
	}
}
