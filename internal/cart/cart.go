package cart

import (
	"errors"
	"sync"

	"TechStore/internal/catalog"
)

// ErrEmptyCart is the user-facing notice for a checkout attempt on an
// empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// Line is one cart entry. Product fields are a snapshot taken at
// add-time: a later price or discount change on the catalog does not
// reprice an existing line, only reconciliation of qty applies.
type Line struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Discount  int    `json:"discount"`
	Img       string `json:"img"`
	Category  string `json:"category"`
	Qty       int    `json:"qty"`
}

// UnitPrice is the discount-aware price of the snapshot.
func (l Line) UnitPrice() int64 {
	return catalog.DiscountedPrice(l.Price, l.Discount)
}

// Cart holds the session's line items in insertion order. New items
// append at the end. The stock ceiling is enforced over time by
// Reconcile, which the catalog store invokes after every mutation.
type Cart struct {
	mu     sync.Mutex
	lookup func(id int64) (catalog.Product, bool)
	lines  []Line
}

func New(lookup func(id int64) (catalog.Product, bool)) *Cart {
	return &Cart{lookup: lookup}
}

// Add puts one unit of the product in the cart. A missing product or
// zero stock is a silent no-op. An existing line grows by one, capped
// at the product's current stock.
func (c *Cart) Add(productID int64) {
	p, ok := c.lookup(productID)
	if !ok || p.Stock == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Qty = min(c.lines[i].Qty+1, p.Stock)
			return
		}
	}

	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Discount:  p.Discount,
		Img:       p.Img,
		Category:  p.Category,
		Qty:       1,
	})
}

// Remove deletes the line unconditionally if present.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// ChangeQty sets a line's quantity, clamped to a minimum of 1. There
// is no stock ceiling here; Reconcile enforces it on the next catalog
// change.
func (c *Cart) ChangeQty(productID int64, qty int) {
	if qty < 1 {
		qty = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Qty = qty
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()
}

// Reconcile re-validates every line against the current catalog:
// lines whose product vanished are dropped, quantities are clamped to
// current stock, and a line clamped below one unit is dropped too.
func (c *Cart) Reconcile(products []catalog.Product) {
	byID := make(map[int64]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.lines[:0]
	for _, ln := range c.lines {
		p, ok := byID[ln.ProductID]
		if !ok {
			continue
		}
		if ln.Qty > p.Stock {
			ln.Qty = p.Stock
		}
		if ln.Qty < 1 {
			continue
		}
		kept = append(kept, ln)
	}
	c.lines = kept
}

func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total sums discount-aware line prices. An empty cart totals zero.
func (c *Cart) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, ln := range c.lines {
		total += ln.UnitPrice() * int64(ln.Qty)
	}
	return total
}
