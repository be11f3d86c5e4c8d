package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pko841923-dot/Level-System/internal/engine"
)

// Level System theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconQuest     = "🗺️"
	IconSparkle   = "✨"
	IconPlus      = "➕"
	IconDone      = "✅"
	IconTrophy    = "🏆"
	IconBolt      = "⚡"
	IconInfo      = "ℹ️"
	IconWarn      = "⚠️"
	IconError     = "🧨"
	IconCoin      = "💰"
	IconStreak    = "🔥"
	IconLoop      = "🔁"
	IconScroll    = "📜"
	IconShop      = "🛒"
	IconChallenge = "🎯"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

var difficultyColors = map[engine.Difficulty]lipgloss.Color{
	engine.DifficultyEasy:    lipgloss.Color("#4CAF50"),
	engine.DifficultyNormal:  lipgloss.Color("#2196F3"),
	engine.DifficultyHard:    lipgloss.Color("#FF9800"),
	engine.DifficultyWeekly:  lipgloss.Color("#9C27B0"),
	engine.DifficultyMonthly: lipgloss.Color("#E91E63"),
	engine.DifficultyMega:    lipgloss.Color("#F44336"),
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// DifficultyText colors a difficulty label with its canonical color.
func DifficultyText(d engine.Difficulty) string {
	c, ok := difficultyColors[d]
	if !ok {
		c = difficultyColors[engine.DifficultyNormal]
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render(string(d))
}

// TierText colors a tier label along the gray-to-gold gradient.
func TierText(t engine.Tier) string {
	c := lipgloss.Color(engine.TierColor(t).Hex())
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render(string(t))
}

// AuraSwatch renders a colored block in the avatar's aura color for the
// given average stat.
func AuraSwatch(avgStat int) string {
	c := lipgloss.Color(engine.AuraColor(avgStat))
	return lipgloss.NewStyle().Foreground(c).Render("██") + fmt.Sprintf(" (avg %d)", avgStat)
}

func CompletionIcon(done bool) string {
	if done {
		return IconDone
	}
	return IconQuest
}
