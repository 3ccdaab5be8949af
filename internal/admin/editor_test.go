package admin

import (
	"context"
	"testing"

	"TechStore/internal/catalog"
)

func newTestStore(t *testing.T) *catalog.Store {
	t.Helper()

	repo := catalog.NewMemRepository([]catalog.Product{
		{ID: 1, Name: "a", Price: 100, Stock: 2, Discount: 0, Category: "storage", Img: "x"},
		{ID: 2, Name: "b", Price: 200, Stock: 4, Discount: 5, Category: "memory", Img: "y"},
	})
	s := catalog.NewStore(repo, nil)
	s.Hydrate(context.Background())
	return s
}

func TestEditor_SaveAppliesDraft(t *testing.T) {
	store := newTestStore(t)
	e := NewEditor()

	p, _ := store.Get(1)
	e.Open(p)
	if !e.Set(7, 25) {
		t.Fatalf("set on open draft refused")
	}
	if !e.Save(context.Background(), store) {
		t.Fatalf("save on open draft refused")
	}

	got, _ := store.Get(1)
	if got.Stock != 7 || got.Discount != 25 {
		t.Fatalf("stock=%d discount=%d want 7/25", got.Stock, got.Discount)
	}

	if _, active := e.Editing(); active {
		t.Fatalf("editor still active after save")
	}
}

func TestEditor_CancelDiscardsDraft(t *testing.T) {
	store := newTestStore(t)
	e := NewEditor()

	p, _ := store.Get(1)
	e.Open(p)
	e.Set(7, 25)
	e.Cancel()

	if e.Save(context.Background(), store) {
		t.Fatalf("save after cancel applied a draft")
	}

	got, _ := store.Get(1)
	if got.Stock != 2 || got.Discount != 0 {
		t.Fatalf("cancel mutated the catalog: %+v", got)
	}
}

func TestEditor_OpenReplacesUnsavedDraft(t *testing.T) {
	store := newTestStore(t)
	e := NewEditor()

	p1, _ := store.Get(1)
	e.Open(p1)
	e.Set(99, 50) // never saved

	p2, _ := store.Get(2)
	e.Open(p2)

	d, active := e.Editing()
	if !active || d.ProductID != 2 || d.Stock != 4 || d.Discount != 5 {
		t.Fatalf("draft=%+v active=%v", d, active)
	}

	e.Save(context.Background(), store)

	got1, _ := store.Get(1)
	if got1.Stock != 2 || got1.Discount != 0 {
		t.Fatalf("discarded draft leaked into catalog: %+v", got1)
	}
}

func TestEditor_IdleOperationsAreNoops(t *testing.T) {
	store := newTestStore(t)
	e := NewEditor()

	if e.Set(1, 1) {
		t.Fatalf("set while idle succeeded")
	}
	if e.Save(context.Background(), store) {
		t.Fatalf("save while idle succeeded")
	}
	e.Cancel() // harmless
}
