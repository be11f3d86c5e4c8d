package engine

// Multipliers scale the experience, coin and skill-point rewards of a
// completion by difficulty.
type Multipliers struct {
	XP    float64
	Coins float64
	SP    float64
}

// BaseCoinReward is the flat coin payout per completion before the
// difficulty multiplier; it does not scale with the quest's XP reward.
const BaseCoinReward = 5

// SPRewardStep is the XP-reward step that grants one skill point.
const SPRewardStep = 20

var difficultyMultipliers = map[Difficulty]Multipliers{
	DifficultyEasy:    {0.7, 0.8, 0.5},
	DifficultyNormal:  {1.0, 1.0, 1.0},
	DifficultyHard:    {1.5, 1.5, 1.5},
	DifficultyWeekly:  {3.0, 3.0, 2.0},
	DifficultyMonthly: {5.0, 5.0, 3.0},
	DifficultyMega:    {10.0, 10.0, 5.0},
}

// MultipliersFor returns the reward multipliers for a difficulty.
// Unknown difficulties fall back to Normal.
func MultipliersFor(d Difficulty) Multipliers {
	if m, ok := difficultyMultipliers[d]; ok {
		return m
	}
	return difficultyMultipliers[DifficultyNormal]
}
