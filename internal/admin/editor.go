package admin

import (
	"context"
	"sync"

	"TechStore/internal/catalog"
)

// Editor is the single-slot stock/discount edit flow: idle, then
// editing one product, then idle again via Cancel or Save. Opening a
// new edit discards the previous draft without saving it.
type Editor struct {
	mu     sync.Mutex
	active bool
	draft  EditDraft
}

type EditDraft struct {
	ProductID int64
	Stock     int
	Discount  int
}

func NewEditor() *Editor { return &Editor{} }

// Open starts editing a product, replacing any draft already open.
func (e *Editor) Open(p catalog.Product) {
	e.mu.Lock()
	e.active = true
	e.draft = EditDraft{ProductID: p.ID, Stock: p.Stock, Discount: p.Discount}
	e.mu.Unlock()
}

// Set updates the open draft. False when no edit is in progress.
func (e *Editor) Set(stock, discount int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active {
		return false
	}
	e.draft.Stock = stock
	e.draft.Discount = discount
	return true
}

// Cancel discards the draft.
func (e *Editor) Cancel() {
	e.mu.Lock()
	e.active = false
	e.draft = EditDraft{}
	e.mu.Unlock()
}

// Save applies the draft to the catalog and closes the edit. False
// when no edit is in progress.
func (e *Editor) Save(ctx context.Context, store *catalog.Store) bool {
	e.mu.Lock()
	if !e.active {
		e.mu.Unlock()
		return false
	}
	d := e.draft
	e.active = false
	e.draft = EditDraft{}
	e.mu.Unlock()

	store.UpdateStockAndDiscount(ctx, d.ProductID, d.Stock, d.Discount)
	return true
}

// Editing reports the product under edit, if any.
func (e *Editor) Editing() (EditDraft, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft, e.active
}
