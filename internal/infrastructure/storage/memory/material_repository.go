package memory

import (
	"context"
	"sync"

	"ministry/internal/domain/material"

	"golang.org/x/exp/slog"
)

// MaterialRepository keeps materials in process memory. Ids come from a
// monotonic counter and are never reused after a delete.
type MaterialRepository struct {
	mu     sync.RWMutex
	items  map[int]material.Material
	order  []int
	nextID int
	log    *slog.Logger
}

func NewMaterialRepository(log *slog.Logger) *MaterialRepository {
	return &MaterialRepository{
		items:  make(map[int]material.Material),
		nextID: 1,
		log:    log.With("component", "material_repository"),
	}
}

func (r *MaterialRepository) List(_ context.Context) ([]material.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]material.Material, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.items[id])
	}
	return result, nil
}

func (r *MaterialRepository) Get(_ context.Context, id int) (material.Material, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[id]
	return m, ok, nil
}

func (r *MaterialRepository) Create(_ context.Context, m material.Material) (material.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++

	r.items[m.ID] = m
	r.order = append(r.order, m.ID)

	r.log.Debug("material stored", "id", m.ID)
	return m, nil
}

func (r *MaterialRepository) Update(_ context.Context, id int, fn func(*material.Material) error) (material.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return material.Material{}, material.ErrNotFound
	}

	if err := fn(&current); err != nil {
		return material.Material{}, err
	}
	current.ID = id

	r.items[id] = current
	return current, nil
}

func (r *MaterialRepository) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}

	delete(r.items, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
