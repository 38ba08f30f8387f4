package material

import (
	"path/filepath"
	"strings"
)

// AllowedExtensions lists the accepted upload file extensions.
var AllowedExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg",
	".mp4", ".mov", ".avi", ".wmv",
	".pdf", ".doc", ".docx", ".ppt", ".pptx", ".xls", ".xlsx",
}

var allowedExtensions = func() map[string]struct{} {
	m := make(map[string]struct{}, len(AllowedExtensions))
	for _, ext := range AllowedExtensions {
		m[ext] = struct{}{}
	}
	return m
}()

// ExtensionAllowed reports whether filename has an accepted extension.
// The check is case-insensitive.
func ExtensionAllowed(filename string) bool {
	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}
