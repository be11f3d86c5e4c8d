package engine

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pko841923-dot/Level-System/internal/storage"
)

func TestCorruptStateFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	db, err := storage.Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	docs := storage.NewDocumentRepo(db)

	if err := docs.Set(ctx, "character_state", []byte("{not json")); err != nil {
		t.Fatalf("seed corrupt doc: %v", err)
	}

	svc, err := NewService(ctx, docs)
	if err != nil {
		t.Fatalf("NewService on corrupt doc: %v", err)
	}
	if svc.State().Level != 1 || len(svc.State().Stats) != 8 {
		t.Fatalf("expected default template, got level=%d stats=%d", svc.State().Level, len(svc.State().Stats))
	}

	// The corrupt entry is removed so the next save starts clean.
	if _, ok, err := docs.Get(ctx, "character_state"); err != nil || ok {
		t.Fatalf("corrupt doc should be removed: ok=%v err=%v", ok, err)
	}
}

func TestStateSurvivesReload(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	docs := storage.NewDocumentRepo(db)

	svc, err := NewService(ctx, docs)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	q, err := svc.CreateQuest(ctx, QuestInput{Name: "Persist me", XPReward: 20, Day: "Friday"})
	if err != nil {
		t.Fatalf("CreateQuest: %v", err)
	}
	if _, err := svc.CompleteQuest(ctx, q.ID); err != nil {
		t.Fatalf("CompleteQuest: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	db2, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer db2.Close()
	svc2, err := NewService(ctx, storage.NewDocumentRepo(db2))
	if err != nil {
		t.Fatalf("NewService reload: %v", err)
	}
	got, ok := svc2.Quest(q.ID)
	if !ok || !got.Completed {
		t.Fatalf("completed quest did not survive reload")
	}
	if svc2.State().XP == 0 {
		t.Fatalf("XP did not survive reload")
	}
}

func TestMidnightResetReopensWeekdayQuestsOnly(t *testing.T) {
	start := time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC)
	clock, setTime := fixedClock(start)
	svc, cleanup := newTestService(t, clock)
	defer cleanup()
	ctx := testContext()

	q := addQuest(t, svc, QuestInput{Name: "Daily", XPReward: 10})
	ch, err := svc.GenerateWeekly(ctx)
	if err != nil {
		t.Fatalf("GenerateWeekly: %v", err)
	}
	completeQuest(t, svc, q.ID)
	completeQuest(t, svc, ch.ID)

	setTime(start.AddDate(0, 0, 1))
	reopened, err := svc.MidnightReset(ctx)
	if err != nil {
		t.Fatalf("MidnightReset: %v", err)
	}
	if reopened != 1 {
		t.Fatalf("reopened=%d, want 1", reopened)
	}
	if q.Completed {
		t.Fatalf("weekday quest should be reopened")
	}
	if !ch.Completed {
		t.Fatalf("challenge completion must survive the reset")
	}

	// Second sweep on the same date is a no-op.
	completeQuest(t, svc, q.ID)
	reopened, err = svc.MidnightReset(ctx)
	if err != nil {
		t.Fatalf("second MidnightReset: %v", err)
	}
	if reopened != 0 {
		t.Fatalf("same-day sweep reopened %d, want 0", reopened)
	}
	if !q.Completed {
		t.Fatalf("same-day sweep must not touch quests")
	}
}

func TestResetRecreatesDefaults(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := testContext()

	q := addQuest(t, svc, QuestInput{Name: "Doomed", XPReward: 10})
	completeQuest(t, svc, q.ID)

	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if svc.State().XP != 0 || len(svc.State().Quests) != 0 {
		t.Fatalf("reset did not restore defaults")
	}
}

func TestExportYAML(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	q := addQuest(t, svc, QuestInput{Name: "Backup me", XPReward: 10})
	completeQuest(t, svc, q.ID)

	var buf strings.Builder
	if err := svc.Export(&buf); err != nil {
		t.Fatalf("Export: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Backup me") {
		t.Fatalf("export missing quest name:\n%s", out)
	}
	if !strings.Contains(out, "exportedAt:") || !strings.Contains(out, "character:") {
		t.Fatalf("export missing envelope fields:\n%s", out)
	}
}

func TestDefaultExportFilename(t *testing.T) {
	now := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	if got := DefaultExportFilename(now); got != "level-system-backup-2026-01-31.yaml" {
		t.Fatalf("filename=%q", got)
	}
}

func TestRenameCharacter(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := testContext()

	if err := svc.RenameCharacter(ctx, "Ashe"); err != nil {
		t.Fatalf("RenameCharacter: %v", err)
	}
	if svc.State().CharacterName != "Ashe" {
		t.Fatalf("name=%q, want Ashe", svc.State().CharacterName)
	}
	if err := svc.RenameCharacter(ctx, ""); err == nil {
		t.Fatalf("empty name should be rejected")
	}
}
