package engine

import (
	"errors"
	"testing"
)

func TestAddStatUpperCasesAndRejectsDuplicates(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := testContext()

	if err := svc.AddStat(ctx, "  focus "); err != nil {
		t.Fatalf("AddStat: %v", err)
	}
	if _, ok := svc.State().Stats["FOCUS"]; !ok {
		t.Fatalf("stat should be stored upper-cased")
	}

	err := svc.AddStat(ctx, "Focus")
	var dup DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
}

func TestRenameStatCascades(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := testContext()

	q := addQuest(t, svc, QuestInput{Name: "Lift", XPReward: 20, StatBoosts: map[string]int{"STRENGTH": 2}})
	if _, err := svc.GenerateWeekly(ctx); err != nil {
		t.Fatalf("GenerateWeekly: %v", err)
	}

	if err := svc.RenameStat(ctx, "STRENGTH", "POWER"); err != nil {
		t.Fatalf("RenameStat: %v", err)
	}
	if _, ok := svc.State().Stats["STRENGTH"]; ok {
		t.Fatalf("old name still present")
	}
	if q.StatBoosts["POWER"] != 2 {
		t.Fatalf("quest boost did not follow the rename: %v", q.StatBoosts)
	}
	if _, ok := q.StatBoosts["STRENGTH"]; ok {
		t.Fatalf("stale boost key left behind")
	}
	if wc := svc.State().WeeklyChallenge; wc != nil {
		if _, ok := wc.StatBoosts["STRENGTH"]; ok {
			t.Fatalf("challenge boost did not follow the rename")
		}
	}
}

func TestDeleteStatCascadesAndRecomputesLevel(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := testContext()

	svc.state.Stats["WISDOM"] = 120
	svc.state.Level = svc.state.computeLevel()
	q := addQuest(t, svc, QuestInput{Name: "Study", XPReward: 20, StatBoosts: map[string]int{"WISDOM": 3}})

	if err := svc.DeleteStat(ctx, "WISDOM"); err != nil {
		t.Fatalf("DeleteStat: %v", err)
	}
	if _, ok := q.StatBoosts["WISDOM"]; ok {
		t.Fatalf("boost referencing deleted stat left behind")
	}
	if svc.State().Level != 1 {
		t.Fatalf("level=%d, want recomputed 1", svc.State().Level)
	}
}

func TestDeleteLastStatRefused(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := testContext()

	names := make([]string, 0, len(svc.State().Stats))
	for name := range svc.State().Stats {
		names = append(names, name)
	}
	for _, name := range names[:len(names)-1] {
		if err := svc.DeleteStat(ctx, name); err != nil {
			t.Fatalf("DeleteStat(%s): %v", name, err)
		}
	}

	err := svc.DeleteStat(ctx, names[len(names)-1])
	var last LastStatError
	if !errors.As(err, &last) {
		t.Fatalf("expected LastStatError, got %v", err)
	}
	if len(svc.State().Stats) != 1 {
		t.Fatalf("last stat must survive")
	}
}
