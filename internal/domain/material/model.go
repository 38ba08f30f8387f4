package material

import "time"

// Editor is the display identity last associated with a material upload.
type Editor struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Material is one catalog entry of a reusable service asset.
type Material struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Category    string    `json:"category"`
	Status      Status    `json:"status"`
	Icon        string    `json:"icon"`
	FileName    *string   `json:"fileName"`
	FileSize    *int64    `json:"fileSize"`
	MimeType    *string   `json:"mimeType"`
	FileData    *string   `json:"fileData"` // base64
	Editor      Editor    `json:"editor"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// File is an attached upload, already encoded for storage.
type File struct {
	Name     string
	Size     int64
	MimeType string
	Data     string // base64
}

// CreateInput holds the fields accepted when a material is created.
type CreateInput struct {
	Name        string `validate:"required,max=200"`
	Description string `validate:"max=2000"`
	Category    string `validate:"required,max=100"`
	Status      Status
	File        *File
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Name        *string
	Description *string
	Category    *string
	Status      *Status
	File        *File
}

// IsEmpty reports whether the patch carries no field at all.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Category == nil && p.Status == nil && p.File == nil
}

func (m *Material) attach(f *File) {
	if f == nil {
		return
	}
	name, mimeType, data, size := f.Name, f.MimeType, f.Data, f.Size
	m.FileName = &name
	m.FileSize = &size
	m.MimeType = &mimeType
	m.FileData = &data
}

func strPtr(s string) *string {
	return &s
}
