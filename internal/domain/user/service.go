package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, in CreateInput) (User, error)
	Get(ctx context.Context, id int) (User, bool, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
}

type Service struct {
	repo      Repository
	validator *validator.Validate
	log       *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: NewValidator(),
		log:       log.With("component", "user_service"),
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := s.validator.Struct(in); err != nil {
		s.log.Debug("validation failed", "username", in.Username, "error", err)
		return User{}, validationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repo.Create(ctx, in.Username, string(hash))
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user created", "id", u.ID, "username", u.Username)
	return u, nil
}

func (s *Service) Get(ctx context.Context, id int) (User, bool, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (User, bool, error) {
	return s.repo.FindByUsername(ctx, strings.TrimSpace(username))
}
