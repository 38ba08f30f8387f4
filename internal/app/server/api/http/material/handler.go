package material

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"ministry/internal/app/server/api/http/middleware/logger"
	"ministry/internal/domain/material"
)

// UploadObserver is notified of every stored upload.
type UploadObserver interface {
	ObserveUpload(size int64)
}

type Handler struct {
	service    material.Servicer
	decoder    *fileDecoder
	uploads    UploadObserver
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service material.Servicer, maxFileBytes int64, uploads UploadObserver, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		decoder:    newFileDecoder(maxFileBytes),
		uploads:    uploads,
		log:        log.With("component", "material_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.uploadOp(), h.upload)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	items, err := h.service.List(ctx)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &listOutput{Body: items}, nil
}

func (h *Handler) get(ctx context.Context, input *idInput) (*output, error) {
	m, ok, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, toHTTPError(err)
	}
	if !ok {
		return nil, huma.Error404NotFound("Service material not found")
	}
	return &output{Body: m}, nil
}

func (h *Handler) upload(ctx context.Context, input *uploadInput) (*output, error) {
	form := &input.RawBody
	defer func() {
		_ = form.RemoveAll()
	}()

	name, _ := formValue(form, "name")
	category, _ := formValue(form, "category")
	if strings.TrimSpace(name) == "" || strings.TrimSpace(category) == "" {
		return nil, huma.Error400BadRequest("Name and category are required")
	}

	headers := formFiles(form)
	if len(headers) == 0 {
		return nil, huma.Error400BadRequest("No files uploaded")
	}

	// Every part is checked, only the first one is stored.
	files := make([]*material.File, 0, len(headers))
	for _, fh := range headers {
		f, err := h.decoder.decode(fh)
		if err != nil {
			requestID, _ := logger.RequestID(ctx)
			h.log.Debug("upload rejected", "request_id", requestID, "file", fh.Filename, "error", err)
			return nil, asHTTPError(err)
		}
		files = append(files, f)
	}

	description, _ := formValue(form, "description")
	m, err := h.service.Create(ctx, material.CreateInput{
		Name:        name,
		Description: description,
		Category:    category,
		File:        files[0],
	})
	if err != nil {
		return nil, toHTTPError(err)
	}

	if h.uploads != nil {
		h.uploads.ObserveUpload(files[0].Size)
	}
	return &output{Body: m}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	form := &input.RawBody
	defer func() {
		_ = form.RemoveAll()
	}()

	var patch material.Patch
	if v, ok := formValue(form, "name"); ok {
		patch.Name = &v
	}
	if v, ok := formValue(form, "description"); ok {
		patch.Description = &v
	}
	if v, ok := formValue(form, "category"); ok {
		patch.Category = &v
	}
	if v, ok := formValue(form, "status"); ok {
		status := material.Status(v)
		patch.Status = &status
	}
	if headers := formFiles(form); len(headers) > 0 {
		f, err := h.decoder.decode(headers[0])
		if err != nil {
			return nil, asHTTPError(err)
		}
		patch.File = f
	}

	m, err := h.service.Update(ctx, input.ID, patch)
	if err != nil {
		return nil, toHTTPError(err)
	}
	if patch.File != nil && h.uploads != nil {
		h.uploads.ObserveUpload(patch.File.Size)
	}
	return &output{Body: m}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	ok, err := h.service.Delete(ctx, input.ID)
	if err != nil {
		return nil, toHTTPError(err)
	}
	if !ok {
		return nil, huma.Error404NotFound("Service material not found")
	}
	return nil, nil
}

func toHTTPError(err error) error {
	var derr *material.DomainError
	switch {
	case errors.Is(err, material.ErrNotFound):
		return huma.Error404NotFound("Service material not found")
	case errors.As(err, &derr):
		return huma.Error400BadRequest(derr.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}

// asHTTPError passes huma status errors through and maps the rest.
func asHTTPError(err error) error {
	var se huma.StatusError
	if errors.As(err, &se) {
		return err
	}
	return toHTTPError(err)
}
