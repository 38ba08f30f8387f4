package gallery

import "ministry/internal/domain/gallery"

type listOutput struct {
	Body []gallery.Item
}
