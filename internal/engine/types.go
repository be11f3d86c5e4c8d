package engine

import "strings"

type Difficulty string

const (
	DifficultyEasy    Difficulty = "Easy"
	DifficultyNormal  Difficulty = "Normal"
	DifficultyHard    Difficulty = "Hard"
	DifficultyWeekly  Difficulty = "Weekly"
	DifficultyMonthly Difficulty = "Monthly"
	DifficultyMega    Difficulty = "Mega"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyWeekly, DifficultyMonthly, DifficultyMega:
		return true
	default:
		return false
	}
}

// IsChallengeOnly reports whether the difficulty is reserved for the
// weekly/monthly challenge slots and cannot be used by weekday quests.
func (d Difficulty) IsChallengeOnly() bool {
	return d == DifficultyWeekly || d == DifficultyMonthly
}

// DefaultDifficulty is used when user input is missing/invalid.
const DefaultDifficulty Difficulty = DifficultyNormal

// ParseDifficulty parses user input to a Difficulty.
// Empty or unrecognized input returns DefaultDifficulty.
func ParseDifficulty(input string) Difficulty {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal", "":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	case "weekly":
		return DifficultyWeekly
	case "monthly":
		return DifficultyMonthly
	case "mega":
		return DifficultyMega
	default:
		return DefaultDifficulty
	}
}

// Weekdays is the scheduling cycle, Monday first.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ChallengeLane is the virtual day challenges are scheduled on.
const ChallengeLane = "Challenge"

func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// ParseWeekday parses user input to a canonical weekday name,
// accepting any case and three-letter-or-longer prefixes.
func ParseWeekday(input string) (string, bool) {
	s := strings.TrimSpace(strings.ToLower(input))
	if len(s) < 3 {
		return "", false
	}
	for _, d := range Weekdays {
		l := strings.ToLower(d)
		if s == l || strings.HasPrefix(l, s) {
			return d, true
		}
	}
	return "", false
}
