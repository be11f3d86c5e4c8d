package engine

import "time"

// Quest is a user-defined recurring task scheduled to a weekday, or a
// challenge scheduled on the virtual Challenge lane.
type Quest struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	XPReward    int            `json:"xpReward" yaml:"xpReward"`
	StatBoosts  map[string]int `json:"statBoosts,omitempty" yaml:"statBoosts,omitempty"`
	Day         string         `json:"day" yaml:"day"`
	Difficulty  Difficulty     `json:"difficulty" yaml:"difficulty"`
	Completed   bool           `json:"completed" yaml:"completed"`
	CompletedAt *time.Time     `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	CreatedAt   time.Time      `json:"createdAt" yaml:"createdAt"`
}

// IsChallenge reports whether the quest lives on the Challenge lane.
func (q *Quest) IsChallenge() bool {
	return q.Day == ChallengeLane
}

// Skill is an upgradable passive with a skill-point cost that grows
// by half (floored) per level.
type Skill struct {
	Level       int    `json:"level" yaml:"level"`
	Max         int    `json:"max" yaml:"max"`
	Cost        int    `json:"cost" yaml:"cost"`
	Description string `json:"description" yaml:"description"`
}

// EquippedCosmetics holds the item id equipped per slot; empty means bare.
type EquippedCosmetics struct {
	Hat       string `json:"hat,omitempty" yaml:"hat,omitempty"`
	Weapon    string `json:"weapon,omitempty" yaml:"weapon,omitempty"`
	Accessory string `json:"accessory,omitempty" yaml:"accessory,omitempty"`
}

// CharacterState is the single source of truth the engine mutates.
// Level is always derived from the stat sum and recomputed after every
// stat change; it is stored only for display continuity.
type CharacterState struct {
	Level         int    `json:"level" yaml:"level"`
	XP            int    `json:"xp" yaml:"xp"`
	Coins         int    `json:"coins" yaml:"coins"`
	SkillPoints   int    `json:"skillPoints" yaml:"skillPoints"`
	CharacterName string `json:"characterName" yaml:"characterName"`

	Stats  map[string]int    `json:"stats" yaml:"stats"`
	Skills map[string]*Skill `json:"skills" yaml:"skills"`

	Quests []*Quest `json:"quests" yaml:"quests"`

	UnlockedAchievements []string `json:"unlockedAchievements" yaml:"unlockedAchievements"`

	DailyStreak          int    `json:"dailyStreak" yaml:"dailyStreak"`
	LastCompletionDate   string `json:"lastCompletionDate,omitempty" yaml:"lastCompletionDate,omitempty"`
	MilestonesClaimed    []int  `json:"milestonesClaimed" yaml:"milestonesClaimed"`
	StreakRewardsClaimed []int  `json:"streakRewardsClaimed" yaml:"streakRewardsClaimed"`

	WeeklyChallenge  *Quest   `json:"weeklyChallenge,omitempty" yaml:"weeklyChallenge,omitempty"`
	MonthlyChallenge *Quest   `json:"monthlyChallenge,omitempty" yaml:"monthlyChallenge,omitempty"`
	CustomChallenges []*Quest `json:"customChallenges" yaml:"customChallenges"`

	MegaQuestsCompleted []string `json:"megaQuestsCompleted" yaml:"megaQuestsCompleted"`

	Cosmetics      EquippedCosmetics `json:"cosmetics" yaml:"cosmetics"`
	OwnedCosmetics []string          `json:"ownedCosmetics" yaml:"ownedCosmetics"`
}

// DefaultState returns the template a fresh character starts from.
func DefaultState() *CharacterState {
	return &CharacterState{
		Level:         1,
		CharacterName: "Hero",
		Stats: map[string]int{
			"STRENGTH": 0, "AGILITY": 0, "VITALITY": 0, "CREATIVITY": 0,
			"LOGIC": 0, "CLARITY": 0, "WISDOM": 0, "CHARISMA": 0,
		},
		Skills: map[string]*Skill{
			"Warrior": {Level: 1, Max: 5, Cost: 1, Description: "Increases STRENGTH and VITALITY gains"},
			"Athlete": {Level: 1, Max: 5, Cost: 1, Description: "Increases AGILITY and VITALITY gains"},
			"Scholar": {Level: 1, Max: 5, Cost: 1, Description: "Increases LOGIC and WISDOM gains"},
			"Artist":  {Level: 1, Max: 5, Cost: 1, Description: "Increases CREATIVITY and CHARISMA gains"},
			"Monk":    {Level: 1, Max: 5, Cost: 1, Description: "Increases CLARITY and WISDOM gains"},
			"Leader":  {Level: 1, Max: 5, Cost: 1, Description: "Increases CHARISMA and LOGIC gains"},
		},
		Quests:               []*Quest{},
		UnlockedAchievements: []string{},
		MilestonesClaimed:    []int{},
		StreakRewardsClaimed: []int{},
		CustomChallenges:     []*Quest{},
		MegaQuestsCompleted:  []string{},
		OwnedCosmetics:       []string{},
	}
}

// TotalStats is the sum of all stat values.
func (c *CharacterState) TotalStats() int {
	total := 0
	for _, v := range c.Stats {
		total += v
	}
	return total
}

// AverageStat is the rounded mean stat value, 0 when no stats exist.
func (c *CharacterState) AverageStat() int {
	if len(c.Stats) == 0 {
		return 0
	}
	return int(float64(c.TotalStats())/float64(len(c.Stats)) + 0.5)
}

// computeLevel derives the level from the stat sum: max(1, sum/10).
func (c *CharacterState) computeLevel() int {
	lvl := c.TotalStats() / 10
	if lvl < 1 {
		lvl = 1
	}
	return lvl
}

// MegaUnlocked reports whether at least one Mega quest has been completed.
func (c *CharacterState) MegaUnlocked() bool {
	return len(c.MegaQuestsCompleted) > 0
}

// StatTier returns the tier of a single stat under the current SSS gate.
func (c *CharacterState) StatTier(value int) Tier {
	return TierFor(value, c.MegaUnlocked())
}

// HasSSStat reports whether any stat sits at tier SS- or above.
func (c *CharacterState) HasSSStat() bool {
	for _, v := range c.Stats {
		if c.StatTier(v).IsSS() {
			return true
		}
	}
	return false
}

// HasAchievement reports whether the achievement id is already unlocked.
func (c *CharacterState) HasAchievement(id string) bool {
	for _, a := range c.UnlockedAchievements {
		if a == id {
			return true
		}
	}
	return false
}

// CompletedQuestCount counts currently-completed weekday quests.
func (c *CharacterState) CompletedQuestCount() int {
	n := 0
	for _, q := range c.Quests {
		if q.Completed {
			n++
		}
	}
	return n
}

// Challenges returns the weekly and monthly slots (when present) followed
// by every custom challenge.
func (c *CharacterState) Challenges() []*Quest {
	var out []*Quest
	if c.WeeklyChallenge != nil {
		out = append(out, c.WeeklyChallenge)
	}
	if c.MonthlyChallenge != nil {
		out = append(out, c.MonthlyChallenge)
	}
	out = append(out, c.CustomChallenges...)
	return out
}

// QuestsForDay returns the weekday quests scheduled on the given day,
// in creation order.
func (c *CharacterState) QuestsForDay(day string) []*Quest {
	var out []*Quest
	for _, q := range c.Quests {
		if q.Day == day {
			out = append(out, q)
		}
	}
	return out
}

// AuraColor maps the average stat to the avatar aura color.
func AuraColor(avgStat int) string {
	switch {
	case avgStat >= 80:
		return "#ff6b6b"
	case avgStat >= 60:
		return "#4ecdc4"
	case avgStat >= 40:
		return "#45b7d1"
	case avgStat >= 20:
		return "#96ceb4"
	default:
		return "#feca57"
	}
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// normalize backfills nil collections after a JSON round trip so the
// engine can mutate them without nil checks.
func (c *CharacterState) normalize() {
	if c.Stats == nil {
		c.Stats = map[string]int{}
	}
	if c.Skills == nil {
		c.Skills = map[string]*Skill{}
	}
	if c.Quests == nil {
		c.Quests = []*Quest{}
	}
	if c.UnlockedAchievements == nil {
		c.UnlockedAchievements = []string{}
	}
	if c.MilestonesClaimed == nil {
		c.MilestonesClaimed = []int{}
	}
	if c.StreakRewardsClaimed == nil {
		c.StreakRewardsClaimed = []int{}
	}
	if c.CustomChallenges == nil {
		c.CustomChallenges = []*Quest{}
	}
	if c.MegaQuestsCompleted == nil {
		c.MegaQuestsCompleted = []string{}
	}
	if c.OwnedCosmetics == nil {
		c.OwnedCosmetics = []string{}
	}
	if c.Level < 1 {
		c.Level = c.computeLevel()
	}
	if c.CharacterName == "" {
		c.CharacterName = "Hero"
	}
}
