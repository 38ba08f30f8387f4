package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, username, passwordHash string) (User, error)
	Get(ctx context.Context, id int) (User, bool, error)
	FindByUsername(ctx context.Context, username string) (User, bool, error)
}
