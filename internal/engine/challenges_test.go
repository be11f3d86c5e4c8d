package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGenerateWeeklyFromTemplates(t *testing.T) {
	svc, cleanup := newTestService(t, WithRand(rand.New(rand.NewSource(1))))
	defer cleanup()
	ctx := testContext()

	q, err := svc.GenerateWeekly(ctx)
	if err != nil {
		t.Fatalf("GenerateWeekly: %v", err)
	}
	if q.Difficulty != DifficultyWeekly || q.Day != ChallengeLane {
		t.Fatalf("weekly challenge got difficulty=%s day=%s", q.Difficulty, q.Day)
	}
	found := false
	for _, tpl := range weeklyTemplates {
		if tpl.name == q.Name && tpl.xp == q.XPReward {
			found = true
		}
	}
	if !found {
		t.Fatalf("challenge %q not from the weekly pool", q.Name)
	}

	// Rerolling replaces the slot.
	q2, err := svc.GenerateWeekly(ctx)
	if err != nil {
		t.Fatalf("reroll: %v", err)
	}
	if svc.State().WeeklyChallenge != q2 {
		t.Fatalf("reroll did not replace the slot")
	}
}

func TestGenerateMonthlyFromTemplates(t *testing.T) {
	svc, cleanup := newTestService(t, WithRand(rand.New(rand.NewSource(2))))
	defer cleanup()

	q, err := svc.GenerateMonthly(testContext())
	if err != nil {
		t.Fatalf("GenerateMonthly: %v", err)
	}
	if q.Difficulty != DifficultyMonthly {
		t.Fatalf("difficulty=%s, want Monthly", q.Difficulty)
	}
	found := false
	for _, tpl := range monthlyTemplates {
		if tpl.name == q.Name {
			found = true
		}
	}
	if !found {
		t.Fatalf("challenge %q not from the monthly pool", q.Name)
	}
}

func TestChallengeRolledBoostsAreCopies(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := testContext()

	q, err := svc.GenerateWeekly(ctx)
	if err != nil {
		t.Fatalf("GenerateWeekly: %v", err)
	}
	for stat := range q.StatBoosts {
		q.StatBoosts[stat] += 100
	}
	for _, tpl := range weeklyTemplates {
		if tpl.name != q.Name {
			continue
		}
		for stat, v := range tpl.boosts {
			if q.StatBoosts[stat] == v {
				t.Fatalf("template boosts must not alias the rolled challenge")
			}
		}
	}
}

func TestCompleteWeeklyChallengeMultipliers(t *testing.T) {
	svc, cleanup := newTestService(t, WithRand(rand.New(rand.NewSource(1))))
	defer cleanup()

	q, err := svc.GenerateWeekly(testContext())
	if err != nil {
		t.Fatalf("GenerateWeekly: %v", err)
	}
	res := completeQuest(t, svc, q.ID)
	if res.XPGained != q.XPReward*3 {
		t.Fatalf("XPGained=%d, want %d", res.XPGained, q.XPReward*3)
	}
	if res.CoinsGained != 15 {
		t.Fatalf("CoinsGained=%d, want 15", res.CoinsGained)
	}
}

func TestCustomChallengeLifecycle(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := testContext()

	q, err := svc.CreateChallenge(ctx, QuestInput{
		Name:       "No sugar",
		XPReward:   80,
		StatBoosts: map[string]int{"VITALITY": 4},
	})
	if err != nil {
		t.Fatalf("CreateChallenge: %v", err)
	}
	if q.Difficulty != DifficultyWeekly || q.Day != ChallengeLane {
		t.Fatalf("defaults wrong: difficulty=%s day=%s", q.Difficulty, q.Day)
	}

	if _, err := svc.UpdateChallenge(ctx, q.ID, QuestInput{
		Name:       "No sugar, no soda",
		XPReward:   90,
		Difficulty: DifficultyMonthly,
	}); err != nil {
		t.Fatalf("UpdateChallenge: %v", err)
	}
	if q.Name != "No sugar, no soda" || q.Difficulty != DifficultyMonthly {
		t.Fatalf("update not applied: %+v", q)
	}

	if err := svc.DeleteChallenge(ctx, q.ID); err != nil {
		t.Fatalf("DeleteChallenge: %v", err)
	}
	if len(svc.State().CustomChallenges) != 0 {
		t.Fatalf("challenge not removed")
	}

	err = svc.DeleteChallenge(ctx, q.ID)
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCustomChallengeRejectsWeekdayDifficulty(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	_, err := svc.CreateChallenge(testContext(), QuestInput{
		Name:       "Sprint",
		XPReward:   50,
		Difficulty: DifficultyHard,
	})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
