package material

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const maxFilesPerRequest = 10

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "service-materials-list",
		Method:      http.MethodGet,
		Path:        "/api/service-materials",
		Summary:     "List service materials",
		Description: "Returns every service material in insertion order.",
		Tags:        []string{"service-materials"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "service-materials-get",
		Method:      http.MethodGet,
		Path:        "/api/service-materials/{id}",
		Summary:     "Get a service material",
		Tags:        []string{"service-materials"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) uploadOp() huma.Operation {
	return huma.Operation{
		OperationID:   "service-materials-upload",
		Method:        http.MethodPost,
		Path:          "/api/service-materials/upload",
		Summary:       "Upload a service material",
		Description:   "Creates a service material from a multipart form. Only the first file is stored.",
		Tags:          []string{"service-materials"},
		DefaultStatus: http.StatusCreated,
		MaxBodyBytes:  h.decoder.maxBytes*maxFilesPerRequest + 1<<20,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID:  "service-materials-update",
		Method:       http.MethodPatch,
		Path:         "/api/service-materials/{id}",
		Summary:      "Update a service material",
		Description:  "Applies a partial update. Omitted fields keep their values.",
		Tags:         []string{"service-materials"},
		MaxBodyBytes: h.decoder.maxBytes + 1<<20,
		Middlewares:  h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "service-materials-delete",
		Method:        http.MethodDelete,
		Path:          "/api/service-materials/{id}",
		Summary:       "Delete a service material",
		Tags:          []string{"service-materials"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
