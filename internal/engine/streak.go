package engine

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// streakThresholds are the streak lengths that grant a one-time bonus.
var streakThresholds = []int{3, 7, 14, 30, 50, 100}

// updateStreak advances the daily streak bookkeeping for a completion at
// the given local time. Multiple completions on the same day do not
// double-increment; a gap of two or more days resets the streak to 1 and
// clears the claimed streak rewards so they can be earned again.
func (s *Service) updateStreak(now time.Time) {
	today := now.Format(dateLayout)
	last := s.state.LastCompletionDate
	if last == today {
		return
	}

	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	switch {
	case last == "":
		s.state.DailyStreak = 1
	case last == yesterday:
		s.state.DailyStreak++
	default:
		s.state.DailyStreak = 1
		s.state.StreakRewardsClaimed = []int{}
	}
	s.state.LastCompletionDate = today
}

// claimStreakRewards dispenses the bonus for every reached threshold not
// yet claimed: coins = 5x the threshold, skill points = threshold/7 + 1.
func (s *Service) claimStreakRewards() {
	for _, threshold := range streakThresholds {
		if s.state.DailyStreak < threshold || containsInt(s.state.StreakRewardsClaimed, threshold) {
			continue
		}
		s.state.StreakRewardsClaimed = append(s.state.StreakRewardsClaimed, threshold)

		coins := threshold * 5
		sp := threshold/7 + 1
		s.state.Coins += coins
		s.state.SkillPoints += sp

		s.notifier.Notify(Notification{
			Kind:        NotificationStreak,
			Icon:        "🔥",
			Title:       fmt.Sprintf("%d Day Streak", threshold),
			Detail:      fmt.Sprintf("+%d Coins, +%d Skill Points", coins, sp),
			Coins:       coins,
			SkillPoints: sp,
		})
	}
}
