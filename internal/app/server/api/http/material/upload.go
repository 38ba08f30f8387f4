package material

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"

	"ministry/internal/domain/material"
)

const genericMimeType = "application/octet-stream"

type fileDecoder struct {
	maxBytes int64
}

func newFileDecoder(maxBytes int64) *fileDecoder {
	return &fileDecoder{maxBytes: maxBytes}
}

// decode checks the part's extension and declared size, then reads and
// base64-encodes its content.
func (d *fileDecoder) decode(fh *multipart.FileHeader) (*material.File, error) {
	if !material.ExtensionAllowed(fh.Filename) {
		return nil, huma.Error400BadRequest(fmt.Sprintf(
			"file type %q is not allowed", strings.ToLower(filepath.Ext(fh.Filename))))
	}
	if fh.Size > d.maxBytes {
		return nil, d.tooLarge(fh.Filename)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, d.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	if int64(len(data)) > d.maxBytes {
		return nil, d.tooLarge(fh.Filename)
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" || mimeType == genericMimeType {
		mimeType = mimetype.Detect(data).String()
	}

	return &material.File{
		Name:     fh.Filename,
		Size:     int64(len(data)),
		MimeType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}

func (d *fileDecoder) tooLarge(name string) huma.StatusError {
	return huma.NewError(http.StatusRequestEntityTooLarge, fmt.Sprintf(
		"file %s exceeds the %s limit", name, humanize.IBytes(uint64(d.maxBytes))))
}

func formValue(form *multipart.Form, key string) (string, bool) {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// formFiles returns the parts sent under "files" followed by those under "file".
func formFiles(form *multipart.Form) []*multipart.FileHeader {
	var files []*multipart.FileHeader
	files = append(files, form.File["files"]...)
	files = append(files, form.File["file"]...)
	return files
}
