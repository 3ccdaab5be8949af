package catalog

import (
	"context"
	"path/filepath"
	"testing"

	bolt "go.etcd.io/bbolt"
)

func openTestBolt(t *testing.T) *BoltRepository {
	t.Helper()

	r, err := OpenBolt(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestBoltRepository_MissingKeyIsNotFound(t *testing.T) {
	r := openTestBolt(t)

	ps, found, err := r.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found || ps != nil {
		t.Fatalf("found=%v ps=%v want not found", found, ps)
	}
}

func TestBoltRepository_SaveThenLoad(t *testing.T) {
	r := openTestBolt(t)
	ctx := context.Background()

	want := DefaultProducts()
	if err := r.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found, err := r.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatalf("not found after save")
	}
	if len(got) != len(want) {
		t.Fatalf("len=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("product %d: %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestBoltRepository_CorruptValueDegradesToNotFound(t *testing.T) {
	r := openTestBolt(t)
	ctx := context.Background()

	err := r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(catalogKey), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("corrupt write: %v", err)
	}

	ps, found, err := r.Load(ctx)
	if err != nil {
		t.Fatalf("load must not surface corrupt data: %v", err)
	}
	if found || ps != nil {
		t.Fatalf("found=%v ps=%v want silent not found", found, ps)
	}
}

func TestBoltRepository_SaveOverwritesSingleKey(t *testing.T) {
	r := openTestBolt(t)
	ctx := context.Background()

	if err := r.Save(ctx, DefaultProducts()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := r.Save(ctx, []Product{{ID: 1, Name: "only", Price: 1, Category: "storage", Img: "x"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found, err := r.Load(ctx)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if len(got) != 1 || got[0].Name != "only" {
		t.Fatalf("got=%v", got)
	}
}
