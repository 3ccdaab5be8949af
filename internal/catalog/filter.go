package catalog

import "strings"

const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 6_000_000
)

// Filter combines a text query, a price range and an optional
// category into a predicate over the catalog.
type Filter struct {
	Query    string
	MinPrice int64
	MaxPrice int64
	Category string
}

func DefaultFilter() Filter {
	return Filter{MinPrice: DefaultMinPrice, MaxPrice: DefaultMaxPrice}
}

// Reset restores the query, price range and category in one step.
func (f *Filter) Reset() {
	*f = DefaultFilter()
}

func (f Filter) Matches(p Product) bool {
	if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Query)) {
		return false
	}
	if p.Price < f.MinPrice || p.Price > f.MaxPrice {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	return true
}

// Apply returns the matching products ranked by attractiveness score.
func (f Filter) Apply(ps []Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	SortByScore(out)
	return out
}
