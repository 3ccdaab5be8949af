package catalog

import "context"

// Repository persists the full product list as one unit. Load reports
// found=false when nothing usable is stored; the Store treats that as
// "use the defaults", never as an error.
type Repository interface {
	Load(ctx context.Context) ([]Product, bool, error)
	Save(ctx context.Context, ps []Product) error
	Ping(ctx context.Context) error
}
