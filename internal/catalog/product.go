package catalog

import "math"

// Product is one sellable item. Prices are whole currency units, no
// minor-unit scaling. Only Stock and Discount change after creation.
type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	Discount int    `json:"discount"`
	Img      string `json:"img"`
	Desc     string `json:"desc,omitempty"`
	Category string `json:"category"`
}

// DiscountedPrice applies a percent discount to a unit price, rounded
// to the nearest whole unit.
func DiscountedPrice(price int64, discount int) int64 {
	if discount == 0 {
		return price
	}
	return int64(math.Round(float64(price) * (1 - float64(discount)/100)))
}

func (p Product) DiscountedPrice() int64 {
	return DiscountedPrice(p.Price, p.Discount)
}

// Categories is the fixed set the storefront navigation offers. Not
// enforced at the data layer.
var Categories = []string{
	"graphics-cards",
	"processors",
	"motherboards",
	"memory",
	"storage",
	"peripherals",
	"monitors",
}
