package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pko841923-dot/Level-System/internal/storage"
)

func newTestService(t *testing.T, opts ...Option) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc, err := NewService(ctx, storage.NewDocumentRepo(db), opts...)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

// fixedClock returns a settable clock option plus the setter.
func fixedClock(start time.Time) (Option, func(time.Time)) {
	cur := start
	return WithClock(func() time.Time { return cur }), func(tm time.Time) { cur = tm }
}

func testContext() context.Context {
	return context.Background()
}

func addQuest(t *testing.T, svc *Service, in QuestInput) *Quest {
	t.Helper()
	if in.Day == "" {
		in.Day = "Monday"
	}
	q, err := svc.CreateQuest(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateQuest: %v", err)
	}
	return q
}

func completeQuest(t *testing.T, svc *Service, id string) *CompleteResult {
	t.Helper()
	res, err := svc.CompleteQuest(context.Background(), id)
	if err != nil {
		t.Fatalf("CompleteQuest: %v", err)
	}
	return res
}
