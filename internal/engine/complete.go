package engine

import (
	"context"

	"github.com/sirupsen/logrus"
)

// CompleteResult reports what a single completion granted directly.
// Streak and milestone bonuses dispensed in the same transition are
// reported through notifications instead.
type CompleteResult struct {
	QuestID     string
	Name        string
	Applied     bool
	XPGained    int
	CoinsGained int
	SPGained    int
	StatGains   map[string]int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Streak      int
}

// CompleteQuest transitions a quest or challenge to completed and applies
// its rewards. Completing an already-completed quest is a no-op
// (Applied=false); rewards are granted exactly once per
// incomplete→complete transition. Mega quests are gated behind at least
// one SS-or-higher stat and fail with a GatingError before any mutation.
func (s *Service) CompleteQuest(ctx context.Context, id string) (*CompleteResult, error) {
	q := s.findQuest(id)
	if q == nil {
		return nil, NotFoundError{Kind: "quest", ID: id}
	}
	if q.Completed {
		return &CompleteResult{QuestID: q.ID, Name: q.Name, LevelBefore: s.state.Level, LevelAfter: s.state.Level, Streak: s.state.DailyStreak}, nil
	}
	if q.Difficulty == DifficultyMega && !s.state.HasSSStat() {
		return nil, GatingError{Quest: q.Name}
	}

	now := s.now()
	levelBefore := s.state.Level

	q.Completed = true
	q.CompletedAt = &now

	mult := MultipliersFor(q.Difficulty)
	xp := int(float64(q.XPReward) * mult.XP)
	coins := int(float64(BaseCoinReward) * mult.Coins)
	sp := 0
	if q.XPReward >= SPRewardStep {
		sp = int(float64(q.XPReward/SPRewardStep) * mult.SP)
	}
	s.state.XP += xp
	s.state.Coins += coins
	s.state.SkillPoints += sp

	// Stat boosts scale with the experience multiplier.
	gains := map[string]int{}
	for stat, boost := range q.StatBoosts {
		cur, ok := s.state.Stats[stat]
		if !ok {
			continue
		}
		boosted := int(float64(boost) * mult.XP)
		next := cur + boosted
		if next > MaxStat {
			next = MaxStat
		}
		s.state.Stats[stat] = next
		gains[stat] = next - cur
	}

	if q.Difficulty == DifficultyMega {
		s.state.MegaQuestsCompleted = append(s.state.MegaQuestsCompleted, q.Name)
	}

	s.state.Level = s.state.computeLevel()

	s.updateStreak(now)
	s.claimStreakRewards()
	if s.state.Level > levelBefore {
		s.claimMilestones()
	}

	// Evaluated synchronously: the state is fully committed by now and
	// the engine accepts no other mutation until this returns.
	s.evaluateAchievements()

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"quest":      q.Name,
		"difficulty": q.Difficulty,
		"xp":         xp,
		"coins":      coins,
		"sp":         sp,
		"level":      s.state.Level,
	}).Info("quest completed")

	return &CompleteResult{
		QuestID:     q.ID,
		Name:        q.Name,
		Applied:     true,
		XPGained:    xp,
		CoinsGained: coins,
		SPGained:    sp,
		StatGains:   gains,
		LevelBefore: levelBefore,
		LevelAfter:  s.state.Level,
		LevelUp:     s.state.Level > levelBefore,
		Streak:      s.state.DailyStreak,
	}, nil
}

// RedoQuest reverts a completion flag so the quest can be done again.
// Rewards already granted are deliberately NOT clawed back; only the
// completed flag and timestamp revert. Redoing an incomplete quest is a
// no-op.
func (s *Service) RedoQuest(ctx context.Context, id string) error {
	q := s.findQuest(id)
	if q == nil {
		return NotFoundError{Kind: "quest", ID: id}
	}
	if !q.Completed {
		return nil
	}
	q.Completed = false
	q.CompletedAt = nil
	return s.persist(ctx)
}
