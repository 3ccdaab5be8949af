package catalog

import "sort"

// discountWeight is the bonus per discount percent in the
// attractiveness score.
const discountWeight = 1000

// Score is the attractiveness heuristic used to order every product
// listing: high price times high stock plus a bonus for any discount.
func Score(p Product) int64 {
	return p.Price*int64(p.Stock) + int64(p.Discount)*discountWeight
}

// SortByScore orders products by descending score, in place. The sort
// is stable so equal scores keep catalog order.
func SortByScore(ps []Product) {
	sort.SliceStable(ps, func(i, j int) bool {
		return Score(ps[i]) > Score(ps[j])
	})
}
