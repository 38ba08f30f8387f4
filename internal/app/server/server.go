package server

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/exp/slog"

	"ministry/internal/app/server/api"
	"ministry/internal/config"
	"ministry/internal/domain/material"
	"ministry/internal/domain/user"
	"ministry/internal/infrastructure/storage/memory"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg       *config.Config
	log       *slog.Logger
	materials *material.Service
	srv       *http.Server
}

// New builds the store, services and router. The catalog is seeded when
// the config asks for it.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	materials := material.NewService(memory.NewMaterialRepository(log), log)
	if cfg.Catalog.Seed {
		rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		if err := materials.Seed(ctx, rng); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}
	users := user.NewService(memory.NewUserRepository(log), log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := api.New(api.Deps{
		Materials:    materials,
		Users:        users,
		MaxFileBytes: cfg.Upload.MaxFileBytes(),
		Registry:     reg,
		Log:          log,
	})

	return &App{
		cfg:       cfg,
		log:       log.With("component", "server"),
		materials: materials,
		srv: &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server started", "addr", a.srv.Addr, "env", a.cfg.Env)
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.log.Info("server stopped")
	return nil
}
