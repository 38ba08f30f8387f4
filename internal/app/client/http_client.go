package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/exp/slog"

	"ministry/internal/app/client/config"
	"ministry/internal/domain/gallery"
	"ministry/internal/domain/material"
)

// APIError is a problem response returned by the server.
type APIError struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (%d): %s", e.Title, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s (%d)", e.Title, e.Status)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type HealthStatus struct {
	Status    string `json:"status"`
	Materials int    `json:"materials"`
	Uptime    string `json:"uptime"`
}

// UploadRequest creates a material from local files. Only the first file
// is stored by the server, the rest are validated.
type UploadRequest struct {
	Name        string
	Category    string
	Description string
	Files       []string
}

// UpdateRequest is a partial update; nil fields are not sent.
type UpdateRequest struct {
	Name        *string
	Description *string
	Category    *string
	Status      *material.Status
	File        string
}

type HTTPClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		log:       log.With("component", "http_client"),
		baseURL:   cfg.BaseURL(),
		userAgent: "Ministry-Client/1.0",
	}
}

func (h *HTTPClient) HealthCheck(ctx context.Context) (HealthStatus, error) {
	var status HealthStatus
	err := h.do(ctx, http.MethodGet, "/api/health", nil, "", &status)
	return status, err
}

func (h *HTTPClient) ListMaterials(ctx context.Context) ([]material.Material, error) {
	var items []material.Material
	if err := h.do(ctx, http.MethodGet, "/api/service-materials", nil, "", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *HTTPClient) GetMaterial(ctx context.Context, id int) (material.Material, error) {
	var m material.Material
	err := h.do(ctx, http.MethodGet, materialPath(id), nil, "", &m)
	return m, err
}

func (h *HTTPClient) UploadMaterial(ctx context.Context, req UploadRequest) (material.Material, error) {
	if len(req.Files) == 0 {
		return material.Material{}, errors.New("at least one file is required")
	}

	fields := map[string]string{
		"name":     req.Name,
		"category": req.Category,
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}

	body, contentType, err := buildForm(fields, "files", req.Files)
	if err != nil {
		return material.Material{}, err
	}

	var m material.Material
	err = h.do(ctx, http.MethodPost, "/api/service-materials/upload", body, contentType, &m)
	return m, err
}

func (h *HTTPClient) UpdateMaterial(ctx context.Context, id int, req UpdateRequest) (material.Material, error) {
	fields := make(map[string]string)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Status != nil {
		fields["status"] = req.Status.String()
	}

	var files []string
	if req.File != "" {
		files = []string{req.File}
	}

	body, contentType, err := buildForm(fields, "file", files)
	if err != nil {
		return material.Material{}, err
	}

	var m material.Material
	err = h.do(ctx, http.MethodPatch, materialPath(id), body, contentType, &m)
	return m, err
}

func (h *HTTPClient) DeleteMaterial(ctx context.Context, id int) error {
	return h.do(ctx, http.MethodDelete, materialPath(id), nil, "", nil)
}

func (h *HTTPClient) Gallery(ctx context.Context) ([]gallery.Item, error) {
	var items []gallery.Item
	if err := h.do(ctx, http.MethodGet, "/api/gallery", nil, "", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func materialPath(id int) string {
	return "/api/service-materials/" + strconv.Itoa(id)
}

func buildForm(fields map[string]string, fileField string, paths []string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", k, err)
		}
	}

	for _, path := range paths {
		if err := addFile(w, fileField, path); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func addFile(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create part for %s: %w", path, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy %s: %w", path, err)
	}
	return nil
}

func (h *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, result any) error {
	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	h.log.Debug("response received", "status", resp.StatusCode, "request_id", resp.Header.Get("X-Request-ID"))

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}
		_ = json.Unmarshal(data, apiErr)
		return apiErr
	}

	if result != nil && len(data) > 0 {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
