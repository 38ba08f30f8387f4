package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "users-create",
		Method:        http.MethodPost,
		Path:          "/api/users",
		Summary:       "Create a user",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-get",
		Method:      http.MethodGet,
		Path:        "/api/users/{id}",
		Summary:     "Get a user by id",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-find",
		Method:      http.MethodGet,
		Path:        "/api/users",
		Summary:     "Find a user by name",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}
