package space

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repository for tests and early development.
type MemoryRepo struct {
	mu     sync.Mutex
	nextID int
	spaces map[int]Space
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1, spaces: map[int]Space{}}
}

func (r *MemoryRepo) Create(ctx context.Context, s Space) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = r.nextID
	if s.MaxOccupancy <= 0 {
		s.MaxOccupancy = DefaultMaxOccupancy
	}
	r.nextID++
	r.spaces[s.ID] = s
	return s.ID, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id int) (Space, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.spaces[id]
	if !ok {
		return Space{}, ErrNotFound
	}
	return s, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Space, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Space, 0, len(r.spaces))
	for _, s := range r.spaces {
		out = append(out, s)
	}
	return out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.spaces[id]; !ok {
		return ErrNotFound
	}
	delete(r.spaces, id)
	return nil
}
