package engine

import (
	"testing"
	"time"
)

func TestStreakAcrossDays(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	clock, setTime := fixedClock(start)
	svc, cleanup := newTestService(t, clock)
	defer cleanup()

	q := addQuest(t, svc, QuestInput{Name: "Journal", XPReward: 10})

	res := completeQuest(t, svc, q.ID)
	if res.Streak != 1 {
		t.Fatalf("day 1 streak=%d, want 1", res.Streak)
	}

	// Second completion on the same day does not increment.
	q2 := addQuest(t, svc, QuestInput{Name: "Walk", XPReward: 10})
	if res := completeQuest(t, svc, q2.ID); res.Streak != 1 {
		t.Fatalf("same-day streak=%d, want 1", res.Streak)
	}

	// Next-day completion increments.
	setTime(start.AddDate(0, 0, 1))
	q3 := addQuest(t, svc, QuestInput{Name: "Stretch", XPReward: 10})
	if res := completeQuest(t, svc, q3.ID); res.Streak != 2 {
		t.Fatalf("day 2 streak=%d, want 2", res.Streak)
	}

	// A gap resets to 1.
	setTime(start.AddDate(0, 0, 4))
	q4 := addQuest(t, svc, QuestInput{Name: "Run", XPReward: 10})
	if res := completeQuest(t, svc, q4.ID); res.Streak != 1 {
		t.Fatalf("post-gap streak=%d, want 1", res.Streak)
	}
}

func TestStreakThresholdBonus(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	clock, setTime := fixedClock(start)
	svc, cleanup := newTestService(t, clock)
	defer cleanup()

	q := addQuest(t, svc, QuestInput{Name: "Daily", XPReward: 10})
	ctx := testContext()

	var coinsBeforeThird int
	for day := 0; day < 3; day++ {
		setTime(start.AddDate(0, 0, day))
		if day == 2 {
			coinsBeforeThird = svc.State().Coins
		}
		if _, err := svc.CompleteQuest(ctx, q.ID); err != nil {
			t.Fatalf("complete day %d: %v", day, err)
		}
		if err := svc.RedoQuest(ctx, q.ID); err != nil {
			t.Fatalf("redo day %d: %v", day, err)
		}
	}

	if svc.State().DailyStreak != 3 {
		t.Fatalf("streak=%d, want 3", svc.State().DailyStreak)
	}
	if !containsInt(svc.State().StreakRewardsClaimed, 3) {
		t.Fatalf("threshold 3 not claimed")
	}
	// quest coins (5) + streak bonus (15)
	if got := svc.State().Coins - coinsBeforeThird; got != 20 {
		t.Fatalf("coin delta on day 3 = %d, want 20", got)
	}

	// Breaking the streak clears the claims so they can be earned again.
	setTime(start.AddDate(0, 0, 10))
	if _, err := svc.CompleteQuest(ctx, q.ID); err != nil {
		t.Fatalf("post-gap complete: %v", err)
	}
	if svc.State().DailyStreak != 1 {
		t.Fatalf("post-gap streak=%d, want 1", svc.State().DailyStreak)
	}
	if len(svc.State().StreakRewardsClaimed) != 0 {
		t.Fatalf("claimed thresholds should reset with the streak")
	}
}
