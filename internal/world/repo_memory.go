package world

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repository for tests and early development.
type MemoryRepo struct {
	mu     sync.Mutex
	nextID int
	worlds []World
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{nextID: 1} }

func (r *MemoryRepo) Create(ctx context.Context, w World) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w.ID = r.nextID
	r.nextID++
	r.worlds = append(r.worlds, w)
	return w.ID, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]World, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]World, len(r.worlds))
	copy(out, r.worlds)
	return out, nil
}
