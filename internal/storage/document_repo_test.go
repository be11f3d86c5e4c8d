package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) *DocumentRepo {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	db, err := Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewDocumentRepo(db)
}

func TestDocumentRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, ok, err := repo.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := repo.Set(ctx, "doc", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	raw, ok, err := repo.Get(ctx, "doc")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(raw) != `{"a":1}` {
		t.Fatalf("value=%s", raw)
	}
}

func TestDocumentUpsert(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, "doc", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Set(ctx, "doc", []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	raw, _, err := repo.Get(ctx, "doc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(raw) != "v2" {
		t.Fatalf("value=%s, want v2", raw)
	}
}

func TestDocumentRemove(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, "doc", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Remove(ctx, "doc"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, "doc"); ok {
		t.Fatalf("key should be gone")
	}

	// Removing an absent key is not an error.
	if err := repo.Remove(ctx, "doc"); err != nil {
		t.Fatalf("Remove absent: %v", err)
	}
}
