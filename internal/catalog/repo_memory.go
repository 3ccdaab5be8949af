package catalog

import (
	"context"
	"sync"
)

type MemRepository struct {
	mu    sync.RWMutex
	items []Product
	found bool
}

// NewMemRepository starts empty, or pre-seeded when items is non-nil.
func NewMemRepository(items []Product) *MemRepository {
	return &MemRepository{items: items, found: items != nil}
}

func (r *MemRepository) Ping(ctx context.Context) error { return nil }

func (r *MemRepository) Load(ctx context.Context) ([]Product, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.found {
		return nil, false, nil
	}
	out := make([]Product, len(r.items))
	copy(out, r.items)
	return out, true, nil
}

func (r *MemRepository) Save(ctx context.Context, ps []Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]Product, len(ps))
	copy(r.items, ps)
	r.found = true
	return nil
}
