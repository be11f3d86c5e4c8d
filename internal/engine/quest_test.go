package engine

import (
	"errors"
	"testing"
)

func TestCreateQuestValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := testContext()

	var verr ValidationError

	_, err := svc.CreateQuest(ctx, QuestInput{Name: "   ", Day: "Monday"})
	if !errors.As(err, &verr) {
		t.Fatalf("blank name: expected ValidationError, got %v", err)
	}

	_, err = svc.CreateQuest(ctx, QuestInput{Name: "X", Day: "Someday"})
	if !errors.As(err, &verr) {
		t.Fatalf("bad day: expected ValidationError, got %v", err)
	}

	_, err = svc.CreateQuest(ctx, QuestInput{Name: "X", Day: "Monday", XPReward: -5})
	if !errors.As(err, &verr) {
		t.Fatalf("negative xp: expected ValidationError, got %v", err)
	}

	_, err = svc.CreateQuest(ctx, QuestInput{Name: "X", Day: "Monday", StatBoosts: map[string]int{"LUCK": 2}})
	if !errors.As(err, &verr) {
		t.Fatalf("unknown stat: expected ValidationError, got %v", err)
	}

	_, err = svc.CreateQuest(ctx, QuestInput{Name: "X", Day: "Monday", Difficulty: DifficultyWeekly})
	if !errors.As(err, &verr) {
		t.Fatalf("challenge difficulty: expected ValidationError, got %v", err)
	}
}

func TestCreateQuestDefaultsDifficulty(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	q := addQuest(t, svc, QuestInput{Name: "Plain", XPReward: 10, Difficulty: "Impossible"})
	if q.Difficulty != DifficultyNormal {
		t.Fatalf("difficulty=%s, want Normal fallback", q.Difficulty)
	}
	if q.ID == "" {
		t.Fatalf("quest should get an id")
	}
}

func TestUpdateAndDeleteQuest(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := testContext()

	q := addQuest(t, svc, QuestInput{Name: "Draft", XPReward: 10, Day: "Tuesday"})

	updated, err := svc.UpdateQuest(ctx, q.ID, QuestInput{
		Name:       "Final",
		XPReward:   25,
		Day:        "Wednesday",
		Difficulty: DifficultyHard,
	})
	if err != nil {
		t.Fatalf("UpdateQuest: %v", err)
	}
	if updated.Name != "Final" || updated.Day != "Wednesday" || updated.Difficulty != DifficultyHard {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := svc.DeleteQuest(ctx, q.ID); err != nil {
		t.Fatalf("DeleteQuest: %v", err)
	}
	if _, ok := svc.Quest(q.ID); ok {
		t.Fatalf("quest still resolvable after delete")
	}

	var nf NotFoundError
	if err := svc.DeleteQuest(ctx, q.ID); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestQuestsForDay(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	addQuest(t, svc, QuestInput{Name: "A", XPReward: 10, Day: "Monday"})
	addQuest(t, svc, QuestInput{Name: "B", XPReward: 10, Day: "Monday"})
	addQuest(t, svc, QuestInput{Name: "C", XPReward: 10, Day: "Sunday"})

	if got := len(svc.State().QuestsForDay("Monday")); got != 2 {
		t.Fatalf("Monday has %d quests, want 2", got)
	}
	if got := len(svc.State().QuestsForDay("Sunday")); got != 1 {
		t.Fatalf("Sunday has %d quests, want 1", got)
	}
	if got := len(svc.State().QuestsForDay("Friday")); got != 0 {
		t.Fatalf("Friday has %d quests, want 0", got)
	}
}

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"mon", "Monday", true},
		{"TUESDAY", "Tuesday", true},
		{"sat", "Saturday", true},
		{"su", "", false},
		{"noday", "", false},
	}
	for _, c := range cases {
		got, ok := ParseWeekday(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("ParseWeekday(%q)=(%q,%v), want (%q,%v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
