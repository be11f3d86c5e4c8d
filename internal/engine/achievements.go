package engine

import (
	"strconv"
	"strings"
)

// Achievement is a catalog entry; unlock state lives in CharacterState.
type Achievement struct {
	ID          string
	Icon        string
	Name        string
	Description string
}

// AchievementStatus pairs a catalog entry with its earned flag for
// rendering.
type AchievementStatus struct {
	Achievement
	Earned bool
}

type achievementDef struct {
	Achievement
	satisfied func(c *CharacterState) bool
}

func def(id, icon, name, desc string, fn func(c *CharacterState) bool) achievementDef {
	return achievementDef{
		Achievement: Achievement{ID: id, Icon: icon, Name: name, Description: desc},
		satisfied:   fn,
	}
}

func questCount(n int) func(c *CharacterState) bool {
	return func(c *CharacterState) bool { return c.CompletedQuestCount() >= n }
}

func xpAtLeast(n int) func(c *CharacterState) bool {
	return func(c *CharacterState) bool { return c.XP >= n }
}

func totalStatsAtLeast(n int) func(c *CharacterState) bool {
	return func(c *CharacterState) bool { return c.TotalStats() >= n }
}

func anyStatTier(match func(Tier) bool) func(c *CharacterState) bool {
	return func(c *CharacterState) bool {
		for _, v := range c.Stats {
			if match(c.StatTier(v)) {
				return true
			}
		}
		return false
	}
}

func statAtLeast(stat string, n int) func(c *CharacterState) bool {
	return func(c *CharacterState) bool { return c.Stats[stat] >= n }
}

func everyStatAtLeast(n int) func(c *CharacterState) bool {
	return func(c *CharacterState) bool {
		if len(c.Stats) == 0 {
			return false
		}
		for _, v := range c.Stats {
			if v < n {
				return false
			}
		}
		return true
	}
}

func coinsAtLeast(n int) func(c *CharacterState) bool {
	return func(c *CharacterState) bool { return c.Coins >= n }
}

func spAtLeast(n int) func(c *CharacterState) bool {
	return func(c *CharacterState) bool { return c.SkillPoints >= n }
}

func anySkillLevel(n int) func(c *CharacterState) bool {
	return func(c *CharacterState) bool {
		for _, sk := range c.Skills {
			if sk.Level >= n {
				return true
			}
		}
		return false
	}
}

func anySkillMaxed(c *CharacterState) bool {
	for _, sk := range c.Skills {
		if sk.Level >= sk.Max {
			return true
		}
	}
	return false
}

func allSkillsMaxed(c *CharacterState) bool {
	if len(c.Skills) == 0 {
		return false
	}
	for _, sk := range c.Skills {
		if sk.Level < sk.Max {
			return false
		}
	}
	return true
}

func unlockedAtLeast(n int) func(c *CharacterState) bool {
	return func(c *CharacterState) bool { return len(c.UnlockedAchievements) >= n }
}

// perStatDefs are the 50/100/200 milestones for the eight named stats.
var perStatDefs = []struct {
	stat      string
	threshold int
	id        string
	icon      string
	name      string
}{
	{"STRENGTH", 50, "strength_novice", "💪", "Strength Novice"},
	{"STRENGTH", 100, "strength_warrior", "⚔️", "Strength Warrior"},
	{"STRENGTH", 200, "strength_titan", "🏔️", "Strength Titan"},
	{"AGILITY", 50, "agility_runner", "🏃", "Agility Runner"},
	{"AGILITY", 100, "agility_ninja", "🥷", "Agility Ninja"},
	{"AGILITY", 200, "agility_flash", "⚡", "Agility Flash"},
	{"VITALITY", 50, "vitality_hardy", "❤️", "Vitality Hardy"},
	{"VITALITY", 100, "vitality_tank", "🛡️", "Vitality Tank"},
	{"VITALITY", 200, "vitality_immortal", "💎", "Vitality Immortal"},
	{"CREATIVITY", 50, "creativity_artist", "🎨", "Creativity Artist"},
	{"CREATIVITY", 100, "creativity_genius", "🧠", "Creativity Genius"},
	{"CREATIVITY", 200, "creativity_visionary", "🌟", "Creativity Visionary"},
	{"LOGIC", 50, "logic_thinker", "🤔", "Logic Thinker"},
	{"LOGIC", 100, "logic_scholar", "📚", "Logic Scholar"},
	{"LOGIC", 200, "logic_mastermind", "🧩", "Logic Mastermind"},
	{"CLARITY", 50, "clarity_focused", "🎯", "Clarity Focused"},
	{"CLARITY", 100, "clarity_zen", "🧘", "Clarity Zen"},
	{"CLARITY", 200, "clarity_enlightened", "✨", "Clarity Enlightened"},
	{"WISDOM", 50, "wisdom_sage", "📜", "Wisdom Sage"},
	{"WISDOM", 100, "wisdom_oracle", "🔮", "Wisdom Oracle"},
	{"WISDOM", 200, "wisdom_ancient", "🏛️", "Wisdom Ancient"},
	{"CHARISMA", 50, "charisma_charming", "😊", "Charisma Charming"},
	{"CHARISMA", 100, "charisma_leader", "👑", "Charisma Leader"},
	{"CHARISMA", 200, "charisma_legend", "🌟", "Charisma Legend"},
}

func achievementCatalog() []achievementDef {
	defs := []achievementDef{
		// Quest milestones
		def("first_steps", "🏆", "First Steps", "Complete your first quest", questCount(1)),
		def("quest_master", "🎯", "Quest Master", "Complete 10 quests", questCount(10)),
		def("quest_veteran", "🎖️", "Quest Veteran", "Complete 25 quests", questCount(25)),
		def("quest_legend", "👑", "Quest Legend", "Complete 50 quests", questCount(50)),
		def("quest_god", "⚡", "Quest God", "Complete 100 quests", questCount(100)),
		def("quest_immortal", "🌟", "Quest Immortal", "Complete 200 quests", questCount(200)),

		// XP milestones
		def("xp_novice", "📈", "XP Novice", "Earn 100 XP", xpAtLeast(100)),
		def("xp_adept", "📊", "XP Adept", "Earn 500 XP", xpAtLeast(500)),
		def("xp_expert", "📋", "XP Expert", "Earn 1000 XP", xpAtLeast(1000)),
		def("xp_master", "📜", "XP Master", "Earn 2500 XP", xpAtLeast(2500)),
		def("xp_grandmaster", "🎓", "XP Grandmaster", "Earn 5000 XP", xpAtLeast(5000)),
		def("xp_legend", "🏅", "XP Legend", "Earn 10000 XP", xpAtLeast(10000)),

		// Stat totals
		def("stat_builder", "💪", "Stat Builder", "Reach 100 total stat points", totalStatsAtLeast(100)),
		def("stat_warrior", "⚔️", "Stat Warrior", "Reach 250 total stat points", totalStatsAtLeast(250)),
		def("stat_champion", "🛡️", "Stat Champion", "Reach 500 total stat points", totalStatsAtLeast(500)),
		def("stat_legend", "👑", "Stat Legend", "Reach 1000 total stat points", totalStatsAtLeast(1000)),
		def("stat_god", "🌟", "Stat God", "Reach 2000 total stat points", totalStatsAtLeast(2000)),

		// Tier ranks
		def("tier_climber", "🔥", "Tier Climber", "Get any stat to A tier", anyStatTier(func(t Tier) bool {
			return strings.HasPrefix(string(t), "A")
		})),
		def("tier_master", "⭐", "Tier Master", "Get any stat to S tier", anyStatTier(func(t Tier) bool {
			return strings.HasPrefix(string(t), "S") && !strings.HasPrefix(string(t), "SS")
		})),
		def("tier_legend", "💎", "Tier Legend", "Get any stat to SS tier", anyStatTier(func(t Tier) bool {
			return strings.HasPrefix(string(t), "SS") && t != "SSS"
		})),
		def("tier_god", "👑", "Tier God", "Get any stat to SSS tier", anyStatTier(func(t Tier) bool {
			return t == "SSS"
		})),

		// Skills
		def("skill_novice", "🎯", "Skill Novice", "Upgrade any skill to level 2", anySkillLevel(2)),
		def("skill_adept", "🎪", "Skill Adept", "Upgrade any skill to level 3", anySkillLevel(3)),
		def("skill_master", "🎖️", "Skill Master", "Max out any skill", anySkillMaxed),
		def("skill_collector", "🏆", "Skill Collector", "Max out all skills", allSkillsMaxed),
	}

	for _, p := range perStatDefs {
		desc := "Get " + p.stat + " to " + strconv.Itoa(p.threshold)
		defs = append(defs, def(p.id, p.icon, p.name, desc, statAtLeast(p.stat, p.threshold)))
	}

	defs = append(defs,
		// Coins
		def("coin_saver", "💰", "Coin Saver", "Collect 100 coins", coinsAtLeast(100)),
		def("coin_hoarder", "💎", "Coin Hoarder", "Collect 500 coins", coinsAtLeast(500)),
		def("coin_tycoon", "🏦", "Coin Tycoon", "Collect 1000 coins", coinsAtLeast(1000)),

		// Skill points
		def("sp_collector", "⭐", "SP Collector", "Collect 10 skill points", spAtLeast(10)),
		def("sp_master", "🎖️", "SP Master", "Collect 25 skill points", spAtLeast(25)),
		def("sp_legend", "👑", "SP Legend", "Collect 50 skill points", spAtLeast(50)),

		// Specials; the breadth pair must stay last so a single pass can
		// count unlocks from the same evaluation.
		def("balanced_warrior", "⚖️", "Balanced Warrior", "Get all stats to 25+", everyStatAtLeast(25)),
		def("perfectionist", "💯", "Perfectionist", "Get all stats to 100+", everyStatAtLeast(100)),
		def("completionist", "🏆", "Completionist", "Unlock 30 achievements", unlockedAtLeast(30)),
		def("achievement_hunter", "🎯", "Achievement Hunter", "Unlock 50 achievements", unlockedAtLeast(50)),
	)

	return defs
}

// Achievements returns the whole catalog with earned flags, in catalog
// order.
func (s *Service) Achievements() []AchievementStatus {
	defs := achievementCatalog()
	out := make([]AchievementStatus, 0, len(defs))
	for _, d := range defs {
		out = append(out, AchievementStatus{Achievement: d.Achievement, Earned: s.state.HasAchievement(d.ID)})
	}
	return out
}

// evaluateAchievements unlocks every newly-satisfied catalog entry. It is
// idempotent and safe to run after any mutation: unlocked ids never
// un-unlock and never re-fire.
func (s *Service) evaluateAchievements() {
	for _, d := range achievementCatalog() {
		if s.state.HasAchievement(d.ID) {
			continue
		}
		if !d.satisfied(s.state) {
			continue
		}
		s.state.UnlockedAchievements = append(s.state.UnlockedAchievements, d.ID)
		s.log.WithField("achievement", d.ID).Info("achievement unlocked")
		s.notifier.Notify(Notification{
			Kind:   NotificationAchievement,
			Icon:   d.Icon,
			Title:  d.Name,
			Detail: d.Description,
		})
	}
}
