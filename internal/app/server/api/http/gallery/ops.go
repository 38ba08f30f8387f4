package gallery

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "gallery-list",
		Method:      http.MethodGet,
		Path:        "/api/gallery",
		Summary:     "List gallery items",
		Description: "Returns the fixed media gallery. It is not filtered and does not depend on the catalog.",
		Tags:        []string{"gallery"},
		Middlewares: h.middleware,
	}
}
