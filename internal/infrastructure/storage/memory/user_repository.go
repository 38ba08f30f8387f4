package memory

import (
	"context"
	"sync"

	"ministry/internal/domain/user"

	"golang.org/x/exp/slog"
)

type UserRepository struct {
	mu     sync.RWMutex
	users  map[int]user.User
	nextID int
	log    *slog.Logger
}

func NewUserRepository(log *slog.Logger) *UserRepository {
	return &UserRepository{
		users:  make(map[int]user.User),
		nextID: 1,
		log:    log.With("component", "user_repository"),
	}
}

func (r *UserRepository) Create(_ context.Context, username, passwordHash string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return user.User{}, user.ErrUsernameTaken
		}
	}

	u := user.User{ID: r.nextID, Username: username, Password: passwordHash}
	r.nextID++
	r.users[u.ID] = u
	return u, nil
}

func (r *UserRepository) Get(_ context.Context, id int) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	return u, ok, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, true, nil
		}
	}
	return user.User{}, false, nil
}
