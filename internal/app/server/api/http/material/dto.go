package material

import (
	"mime/multipart"

	"ministry/internal/domain/material"
)

type listOutput struct {
	Body []material.Material
}

type idInput struct {
	ID int `path:"id" example:"1" doc:"Service material ID"`
}

type output struct {
	Body material.Material
}

// uploadInput is a multipart form with name, category, optional
// description and one or more parts under "files" or "file".
type uploadInput struct {
	RawBody multipart.Form
}

// updateInput is a multipart form with any subset of name, description,
// category, status and an optional replacement "file".
type updateInput struct {
	ID      int `path:"id" example:"1" doc:"Service material ID"`
	RawBody multipart.Form
}
