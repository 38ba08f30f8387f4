package material

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slog"
)

// DefaultEditor is credited on every create; there is no authenticated user.
var DefaultEditor = Editors[0]

// Servicer is the catalog store as seen by the HTTP layer.
type Servicer interface {
	List(ctx context.Context) ([]Material, error)
	Get(ctx context.Context, id int) (Material, bool, error)
	Create(ctx context.Context, in CreateInput) (Material, error)
	Update(ctx context.Context, id int, patch Patch) (Material, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
	log      *slog.Logger
}

type Option func(*Service)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo Repository, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		validate: validator.New(),
		now:      time.Now,
		log:      log.With("component", "material_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns all materials in insertion order.
func (s *Service) List(ctx context.Context) ([]Material, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list materials", "error", err)
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return items, nil
}

// Get returns the material with the given id. A missing id is reported
// through the bool, not as an error.
func (s *Service) Get(ctx context.Context, id int) (Material, bool, error) {
	m, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Error("failed to get material", "id", id, "error", err)
		return Material{}, false, fmt.Errorf("get material: %w", err)
	}
	return m, ok, nil
}

// Create validates in, derives the icon and stores a new material.
func (s *Service) Create(ctx context.Context, in CreateInput) (Material, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)

	if err := s.validate.Struct(in); err != nil {
		return Material{}, validationError(err)
	}

	status := in.Status
	if status == "" {
		status = DefaultStatus
	}
	if err := status.Validate(); err != nil {
		return Material{}, invalid("status", err.Error())
	}

	now := s.now()
	m := Material{
		Name:      in.Name,
		Category:  in.Category,
		Status:    status,
		Icon:      IconFor(in.Category),
		Editor:    DefaultEditor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Description != "" {
		m.Description = strPtr(in.Description)
	}
	m.attach(in.File)

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		s.log.Error("failed to create material", "name", in.Name, "error", err)
		return Material{}, fmt.Errorf("create material: %w", err)
	}

	s.log.Info("material created", "id", created.ID, "category", created.Category)
	return created, nil
}

// Update merges the non-nil fields of patch into the stored material and
// always moves updatedAt forward.
func (s *Service) Update(ctx context.Context, id int, patch Patch) (Material, error) {
	if err := s.normalize(&patch); err != nil {
		return Material{}, err
	}

	updated, err := s.repo.Update(ctx, id, func(m *Material) error {
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Description != nil {
			m.Description = nil
			if *patch.Description != "" {
				m.Description = strPtr(*patch.Description)
			}
		}
		if patch.Category != nil {
			m.Category = *patch.Category
			m.Icon = IconFor(*patch.Category)
		}
		if patch.Status != nil {
			m.Status = *patch.Status
		}
		m.attach(patch.File)

		now := s.now()
		if !now.After(m.UpdatedAt) {
			now = m.UpdatedAt.Add(time.Microsecond)
		}
		m.UpdatedAt = now
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Material{}, ErrNotFound
		}
		s.log.Error("failed to update material", "id", id, "error", err)
		return Material{}, fmt.Errorf("update material: %w", err)
	}

	s.log.Info("material updated", "id", id)
	return updated, nil
}

// Delete removes the material and reports whether it existed.
func (s *Service) Delete(ctx context.Context, id int) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete material", "id", id, "error", err)
		return false, fmt.Errorf("delete material: %w", err)
	}
	if ok {
		s.log.Info("material deleted", "id", id)
	}
	return ok, nil
}

func (s *Service) normalize(p *Patch) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return invalid("name", "name must not be empty")
		}
		p.Name = &name
	}
	if p.Category != nil {
		category := strings.TrimSpace(*p.Category)
		if category == "" {
			return invalid("category", "category must not be empty")
		}
		p.Category = &category
	}
	if p.Description != nil {
		description := strings.TrimSpace(*p.Description)
		p.Description = &description
	}
	if p.Status != nil {
		if err := p.Status.Validate(); err != nil {
			return invalid("status", err.Error())
		}
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &DomainError{Err: ErrInvalidInput, Message: err.Error()}
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return invalid(field, field+" is required")
	case "max":
		return invalid(field, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
	default:
		return invalid(field, fmt.Sprintf("%s is invalid", field))
	}
}
