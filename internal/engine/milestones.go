package engine

import "fmt"

// levelMilestones are the levels that grant a one-time bonus when first
// reached.
var levelMilestones = []int{5, 10, 15, 20, 25, 30, 40, 50, 75, 100}

// claimMilestones dispenses the bonus for every milestone at or below the
// current level not yet claimed: coins = 10x the level, skill points =
// level/5. Claimed milestones never fire again, however often the level
// is recomputed.
func (s *Service) claimMilestones() {
	for _, milestone := range levelMilestones {
		if s.state.Level < milestone || containsInt(s.state.MilestonesClaimed, milestone) {
			continue
		}
		s.state.MilestonesClaimed = append(s.state.MilestonesClaimed, milestone)

		coins := milestone * 10
		sp := milestone / 5
		s.state.Coins += coins
		s.state.SkillPoints += sp

		s.notifier.Notify(Notification{
			Kind:        NotificationMilestone,
			Icon:        "🏆",
			Title:       fmt.Sprintf("Level %d", milestone),
			Detail:      fmt.Sprintf("+%d Coins, +%d Skill Points", coins, sp),
			Coins:       coins,
			SkillPoints: sp,
		})
	}
}
