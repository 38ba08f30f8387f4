package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/slog"

	"ministry/internal/app/client/config"
	"ministry/internal/app/client/table"
	"ministry/internal/domain/gallery"
	"ministry/internal/domain/material"
)

// API is the server surface used by the App.
type API interface {
	HealthCheck(ctx context.Context) (HealthStatus, error)
	ListMaterials(ctx context.Context) ([]material.Material, error)
	GetMaterial(ctx context.Context, id int) (material.Material, error)
	UploadMaterial(ctx context.Context, req UploadRequest) (material.Material, error)
	UpdateMaterial(ctx context.Context, id int, req UpdateRequest) (material.Material, error)
	DeleteMaterial(ctx context.Context, id int) error
	Gallery(ctx context.Context) ([]gallery.Item, error)
}

type App struct {
	config *config.Config
	log    *slog.Logger
	api    API
	now    func() time.Time
}

func New(cfg *config.Config, log *slog.Logger) *App {
	return NewWithAPI(cfg, log, NewHTTPClient(cfg, log))
}

func NewWithAPI(cfg *config.Config, log *slog.Logger, api API) *App {
	return &App{
		config: cfg,
		log:    log.With("component", "client_app"),
		api:    api,
		now:    time.Now,
	}
}

func (a *App) CheckConnection(ctx context.Context) (HealthStatus, error) {
	return a.api.HealthCheck(ctx)
}

// MaterialsTable fetches the catalog and loads it into a table sorted
// and paged as requested. An empty sortKey keeps server order.
func (a *App) MaterialsTable(ctx context.Context, sortKey string, desc bool, page, pageSize int) (*table.Table[material.Material], error) {
	items, err := a.api.ListMaterials(ctx)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}

	if pageSize <= 0 {
		pageSize = a.config.PageSize
	}
	tbl := table.New(MaterialColumns(a.now), pageSize)
	tbl.SetRows(items)

	if sortKey != "" {
		dir := table.Asc
		if desc {
			dir = table.Desc
		}
		if err := tbl.SortBy(sortKey, dir); err != nil {
			return nil, err
		}
	}
	tbl.SetPage(page)
	return tbl, nil
}

func (a *App) Material(ctx context.Context, id int) (material.Material, error) {
	return a.api.GetMaterial(ctx, id)
}

// Upload checks the files locally before sending them.
func (a *App) Upload(ctx context.Context, req UploadRequest) (material.Material, error) {
	if req.Name == "" || req.Category == "" {
		return material.Material{}, fmt.Errorf("name and category are required")
	}
	if len(req.Files) == 0 {
		return material.Material{}, fmt.Errorf("at least one file is required")
	}
	for _, path := range req.Files {
		if err := a.checkFile(path); err != nil {
			return material.Material{}, err
		}
	}

	m, err := a.api.UploadMaterial(ctx, req)
	if err != nil {
		return material.Material{}, fmt.Errorf("upload: %w", err)
	}
	a.log.Debug("material uploaded", "id", m.ID)
	return m, nil
}

func (a *App) Update(ctx context.Context, id int, req UpdateRequest) (material.Material, error) {
	if req.Status != nil {
		if err := req.Status.Validate(); err != nil {
			return material.Material{}, err
		}
	}
	if req.File != "" {
		if err := a.checkFile(req.File); err != nil {
			return material.Material{}, err
		}
	}

	m, err := a.api.UpdateMaterial(ctx, id, req)
	if err != nil {
		return material.Material{}, fmt.Errorf("update %d: %w", id, err)
	}
	return m, nil
}

func (a *App) Delete(ctx context.Context, id int) error {
	if err := a.api.DeleteMaterial(ctx, id); err != nil {
		return fmt.Errorf("delete %d: %w", id, err)
	}
	return nil
}

func (a *App) Gallery(ctx context.Context) ([]gallery.Item, error) {
	return a.api.Gallery(ctx)
}

func (a *App) checkFile(path string) error {
	if !material.ExtensionAllowed(path) {
		return fmt.Errorf("%s: file type %q is not allowed", path, filepath.Ext(path))
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if limit := a.config.MaxUploadBytes(); info.Size() > limit {
		return fmt.Errorf("%s exceeds maximum size of %s", path, humanize.IBytes(uint64(limit)))
	}
	return nil
}

type ctxKey struct{}

// WithApp stores app in ctx for command handlers.
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, app)
}

func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(ctxKey{}).(*App)
	if !ok || app == nil {
		return nil, fmt.Errorf("client is not initialized")
	}
	return app, nil
}
