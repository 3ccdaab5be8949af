package catalog

import (
	"context"
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	boltBucket  = "storefront"
	catalogKey  = "catalog"
	boltOpenTTL = 1 * time.Second
)

// BoltRepository keeps the catalog JSON-encoded under a single fixed
// key in a local bbolt file.
type BoltRepository struct {
	db *bolt.DB
}

func OpenBolt(path string) (*BoltRepository, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: boltOpenTTL})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltRepository{db: db}, nil
}

func (r *BoltRepository) Close() error { return r.db.Close() }

func (r *BoltRepository) Ping(ctx context.Context) error {
	return r.db.View(func(tx *bolt.Tx) error { return nil })
}

// Load reports found=false for both a missing key and a value that no
// longer unmarshals; corrupt data degrades to the defaults instead of
// surfacing.
func (r *BoltRepository) Load(ctx context.Context) ([]Product, bool, error) {
	var (
		out   []Product
		found bool
	)

	err := r.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(boltBucket)).Get([]byte(catalogKey))
		if raw == nil {
			return nil
		}
		if jsonErr := json.Unmarshal(raw, &out); jsonErr != nil {
			out = nil
			return nil
		}
		found = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return out, found, nil
}

func (r *BoltRepository) Save(ctx context.Context, ps []Product) error {
	raw, err := json.Marshal(ps)
	if err != nil {
		return err
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(catalogKey), raw)
	})
}
