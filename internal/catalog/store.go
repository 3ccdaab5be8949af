package catalog

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrMissingFields is the user-facing notice for an add-product draft
// with a required field absent.
var ErrMissingFields = errors.New("name, price, category and img are required")

// Draft is the admin "add product" input. Stock and Discount default
// to zero when absent.
type Draft struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	Discount int    `json:"discount"`
	Img      string `json:"img"`
	Desc     string `json:"desc"`
	Category string `json:"category"`
}

// Store owns the authoritative product list for the session. Every
// successful mutation is persisted through the repository and then
// announced to subscribers, in that order, before the call returns.
type Store struct {
	mu    sync.RWMutex
	repo  Repository
	log   *zap.Logger
	items []Product
	subs  []func([]Product)
}

func NewStore(repo Repository, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{repo: repo, log: log}
}

// Hydrate loads the persisted catalog, falling back to the built-in
// defaults when nothing usable is stored. Load problems are never
// surfaced to the caller.
func (s *Store) Hydrate(ctx context.Context) {
	items, found, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn("catalog load failed, using defaults", zap.Error(err))
		found = false
	}
	if !found {
		items = DefaultProducts()
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Subscribe registers a catalog-change hook. Hooks run synchronously
// after every successful mutation with a snapshot of the new list.
func (s *Store) Subscribe(fn func([]Product)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Store) Get(id int64) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Add validates the draft, assigns the next id and prepends the new
// product so it appears first. The catalog is untouched when a
// required field is missing.
func (s *Store) Add(ctx context.Context, d Draft) (Product, error) {
	if d.Name == "" || d.Price <= 0 || d.Category == "" || d.Img == "" {
		return Product{}, ErrMissingFields
	}

	s.mu.Lock()
	p := Product{
		ID:       s.nextID(),
		Name:     d.Name,
		Price:    d.Price,
		Stock:    max(d.Stock, 0),
		Discount: clampDiscount(d.Discount),
		Img:      d.Img,
		Desc:     d.Desc,
		Category: d.Category,
	}
	s.items = append([]Product{p}, s.items...)
	snap := s.snapshot()
	s.mu.Unlock()

	s.commit(ctx, snap)
	return p, nil
}

// UpdateStockAndDiscount replaces only those two fields on an existing
// product. A missing id is a silent no-op: nothing is persisted and no
// change is announced.
func (s *Store) UpdateStockAndDiscount(ctx context.Context, id int64, stock, discount int) {
	s.mu.Lock()
	idx := -1
	for i := range s.items {
		if s.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.items[idx].Stock = max(stock, 0)
	s.items[idx].Discount = clampDiscount(discount)
	snap := s.snapshot()
	s.mu.Unlock()

	s.commit(ctx, snap)
}

// commit persists the new list and then notifies subscribers. A save
// failure is logged, never surfaced: durability degrades, the session
// keeps working.
func (s *Store) commit(ctx context.Context, snap []Product) {
	if err := s.repo.Save(ctx, snap); err != nil {
		s.log.Warn("catalog save failed", zap.Error(err))
	}

	s.mu.RLock()
	subs := make([]func([]Product), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// nextID is max(existing ids)+1, or 1 for an empty catalog. Caller
// holds the lock.
func (s *Store) nextID() int64 {
	var maxID int64
	for _, p := range s.items {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

func (s *Store) snapshot() []Product {
	out := make([]Product, len(s.items))
	copy(out, s.items)
	return out
}

func clampDiscount(d int) int {
	return min(max(d, 0), 100)
}
