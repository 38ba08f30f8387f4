package material

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"ministry/internal/domain/material"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]material.Material, error) {
	args := m.Called(ctx)
	return args.Get(0).([]material.Material), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id int) (material.Material, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(material.Material), args.Bool(1), args.Error(2)
}

func (m *MockService) Create(ctx context.Context, in material.CreateInput) (material.Material, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(material.Material), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int, patch material.Patch) (material.Material, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(material.Material), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type recordingObserver struct {
	sizes []int64
}

func (r *recordingObserver) ObserveUpload(size int64) {
	r.sizes = append(r.sizes, size)
}

type part struct {
	field       string
	filename    string
	contentType string
	content     []byte
}

func newForm(t *testing.T, values map[string]string, parts ...part) multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range values {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+p.field+`"; filename="`+p.filename+`"`)
		if p.contentType != "" {
			h.Set("Content-Type", p.contentType)
		}
		pw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = pw.Write(p.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return *form
}

func newTestHandler(svc material.Servicer, obs UploadObserver) *Handler {
	return NewHandler(svc, 1<<20, obs, slog.Default(), huma.Middlewares{})
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_list(t *testing.T) {
	svc := new(MockService)
	items := []material.Material{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	svc.On("List", mock.Anything).Return(items, nil)

	out, err := newTestHandler(svc, nil).list(context.Background(), &struct{}{})
	require.NoError(t, err)
	assert.Equal(t, items, out.Body)
	svc.AssertExpectations(t)
}

func TestHandler_list_Error(t *testing.T) {
	svc := new(MockService)
	svc.On("List", mock.Anything).Return([]material.Material(nil), errors.New("store down"))

	_, err := newTestHandler(svc, nil).list(context.Background(), &struct{}{})
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
	assert.Contains(t, err.Error(), "store down")
}

func TestHandler_get(t *testing.T) {
	tests := []struct {
		name       string
		found      bool
		err        error
		wantStatus int
	}{
		{name: "found", found: true},
		{name: "missing", wantStatus: http.StatusNotFound},
		{name: "store error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("Get", mock.Anything, 3).Return(material.Material{ID: 3}, tt.found, tt.err)

			out, err := newTestHandler(svc, nil).get(context.Background(), &idInput{ID: 3})
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 3, out.Body.ID)
		})
	}
}

func TestHandler_upload(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

	svc := new(MockService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in material.CreateInput) bool {
		return in.Name == "Banner" &&
			in.Category == "service-banner" &&
			in.Description == "Easter" &&
			in.File != nil &&
			in.File.Name == "banner.png" &&
			in.File.MimeType == "image/png" &&
			in.File.Size == int64(len(png)) &&
			in.File.Data == base64.StdEncoding.EncodeToString(png)
	})).Return(material.Material{ID: 12, Name: "Banner"}, nil)

	obs := &recordingObserver{}
	form := newForm(t,
		map[string]string{"name": "Banner", "category": "service-banner", "description": "Easter"},
		part{field: "files", filename: "banner.png", contentType: "application/octet-stream", content: png},
		part{field: "files", filename: "extra.pdf", contentType: "application/pdf", content: []byte("%PDF-1.4")},
	)

	out, err := newTestHandler(svc, obs).upload(context.Background(), &uploadInput{RawBody: form})
	require.NoError(t, err)
	assert.Equal(t, 12, out.Body.ID)
	assert.Equal(t, []int64{int64(len(png))}, obs.sizes)
	svc.AssertExpectations(t)
}

func TestHandler_upload_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		values     map[string]string
		parts      []part
		wantStatus int
	}{
		{
			name:       "no files",
			values:     map[string]string{"name": "A", "category": "pictures"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing name",
			values:     map[string]string{"category": "pictures"},
			parts:      []part{{field: "file", filename: "a.png", content: []byte("x")}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "blank category",
			values:     map[string]string{"name": "A", "category": "  "},
			parts:      []part{{field: "file", filename: "a.png", content: []byte("x")}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "disallowed extension",
			values:     map[string]string{"name": "A", "category": "pictures"},
			parts:      []part{{field: "files", filename: "run.exe", content: []byte("MZ")}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "second file disallowed",
			values: map[string]string{"name": "A", "category": "pictures"},
			parts: []part{
				{field: "files", filename: "a.png", content: []byte("x")},
				{field: "files", filename: "b.txt", content: []byte("y")},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "file too large",
			values:     map[string]string{"name": "A", "category": "pictures"},
			parts:      []part{{field: "files", filename: "big.mp4", content: make([]byte, 1<<20+1)}},
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			form := newForm(t, tt.values, tt.parts...)

			_, err := newTestHandler(svc, nil).upload(context.Background(), &uploadInput{RawBody: form})
			assert.Equal(t, tt.wantStatus, statusOf(t, err))
			svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_upload_ExtensionIsCaseInsensitive(t *testing.T) {
	svc := new(MockService)
	svc.On("Create", mock.Anything, mock.Anything).Return(material.Material{ID: 1}, nil)

	form := newForm(t,
		map[string]string{"name": "Deck", "category": "announcements"},
		part{field: "file", filename: "DECK.PPTX", contentType: "application/vnd.openxmlformats-officedocument.presentationml.presentation", content: []byte("pk")},
	)

	_, err := newTestHandler(svc, nil).upload(context.Background(), &uploadInput{RawBody: form})
	assert.NoError(t, err)
}

func TestHandler_update(t *testing.T) {
	svc := new(MockService)
	svc.On("Update", mock.Anything, 4, mock.MatchedBy(func(p material.Patch) bool {
		return p.Name == nil &&
			p.Category == nil &&
			p.Description != nil && *p.Description == "" &&
			p.Status != nil && *p.Status == material.StatusUpToDate &&
			p.File != nil && p.File.Name == "notes.pdf"
	})).Return(material.Material{ID: 4, Status: material.StatusUpToDate}, nil)

	obs := &recordingObserver{}
	form := newForm(t,
		map[string]string{"status": "up-to-date", "description": ""},
		part{field: "file", filename: "notes.pdf", contentType: "application/pdf", content: []byte("%PDF-1.7")},
	)

	out, err := newTestHandler(svc, obs).update(context.Background(), &updateInput{ID: 4, RawBody: form})
	require.NoError(t, err)
	assert.Equal(t, material.StatusUpToDate, out.Body.Status)
	assert.Len(t, obs.sizes, 1)
	svc.AssertExpectations(t)
}

func TestHandler_update_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "missing", err: material.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid status", err: &material.DomainError{Err: material.ErrInvalidInput, Field: "status", Message: "unknown status"}, wantStatus: http.StatusBadRequest},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("Update", mock.Anything, 9, mock.Anything).Return(material.Material{}, tt.err)

			form := newForm(t, map[string]string{"status": "done"})
			_, err := newTestHandler(svc, nil).update(context.Background(), &updateInput{ID: 9, RawBody: form})
			assert.Equal(t, tt.wantStatus, statusOf(t, err))
		})
	}
}

func TestHandler_delete(t *testing.T) {
	svc := new(MockService)
	svc.On("Delete", mock.Anything, 1).Return(true, nil)
	svc.On("Delete", mock.Anything, 2).Return(false, nil)

	h := newTestHandler(svc, nil)

	out, err := h.delete(context.Background(), &idInput{ID: 1})
	assert.NoError(t, err)
	assert.Nil(t, out)

	_, err = h.delete(context.Background(), &idInput{ID: 2})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestFileDecoder_decode_Size(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		wantStatus int
	}{
		{name: "at limit", size: 1 << 20},
		{name: "one byte over", size: 1<<20 + 1, wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := newForm(t, nil, part{field: "files", filename: "a.png", content: make([]byte, tt.size)})

			file, err := newFileDecoder(1<<20).decode(form.File["files"][0])
			if tt.wantStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, int64(tt.size), file.Size)
				return
			}

			assert.Equal(t, tt.wantStatus, statusOf(t, err))
			var em *huma.ErrorModel
			require.ErrorAs(t, err, &em)
			assert.Equal(t, "file a.png exceeds the 1.0 MiB limit", em.Detail)
		})
	}
}
