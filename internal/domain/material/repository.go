package material

import "context"

// Repository stores materials and allocates their ids.
type Repository interface {
	List(ctx context.Context) ([]Material, error)
	Get(ctx context.Context, id int) (Material, bool, error)
	// Create assigns the next id to m and stores it.
	Create(ctx context.Context, m Material) (Material, error)
	// Update applies fn to the stored record under the store's write lock.
	// It returns ErrNotFound when id is absent.
	Update(ctx context.Context, id int, fn func(*Material) error) (Material, error)
	Delete(ctx context.Context, id int) (bool, error)
}
