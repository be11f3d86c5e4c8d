package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pko841923-dot/Level-System/internal/engine"
	"github.com/pko841923-dot/Level-System/internal/ui"
)

// lanes are the board columns: the seven weekdays plus the challenge
// lane.
var lanes = append(append([]string{}, engine.Weekdays...), engine.ChallengeLane)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	lane     int
	selected int

	lastLog string
	err     error
}

type completedMsg struct {
	res *engine.CompleteResult
	err error
}

type redoneMsg struct {
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	m := boardModel{
		ctx:     ctx,
		svc:     svc,
		lastLog: "Loaded.",
	}
	today := svc.Today()
	for i, lane := range lanes {
		if lane == today {
			m.lane = i
		}
	}
	return m
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) laneQuests() []*engine.Quest {
	lane := lanes[m.lane]
	if lane == engine.ChallengeLane {
		return m.svc.Challenges()
	}
	return m.svc.State().QuestsForDay(lane)
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteQuest(m.ctx, id)
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) redoCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return redoneMsg{err: m.svc.RedoQuest(m.ctx, id)}
	}
}

func (m boardModel) clampSelection() boardModel {
	quests := m.laneQuests()
	if m.selected >= len(quests) {
		m.selected = len(quests) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return m
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.res.Applied {
			m.lastLog = "Already completed."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Completed %s: +%d XP, +%d coins, +%d SP", msg.res.Name, msg.res.XPGained, msg.res.CoinsGained, msg.res.SPGained)
		if msg.res.LevelUp {
			m.lastLog += fmt.Sprintf("  %s (%d → %d)", ui.BadgeLevelUp, msg.res.LevelBefore, msg.res.LevelAfter)
		}
		return m, nil
	case redoneMsg:
		if msg.err != nil {
			m.lastLog = "Redo failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = "Reopened. Rewards are kept."
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
			return m.clampSelection(), nil
		case "left", "h":
			if m.lane > 0 {
				m.lane--
				m.selected = 0
			}
			return m, nil
		case "right", "l":
			if m.lane < len(lanes)-1 {
				m.lane++
				m.selected = 0
			}
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.laneQuests())-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			quests := m.laneQuests()
			if m.selected < 0 || m.selected >= len(quests) {
				return m, nil
			}
			q := quests[m.selected]
			if q.Completed {
				m.lastLog = "Already completed."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %s…", q.Name)
			return m, m.completeCmd(q.ID)
		case "u":
			quests := m.laneQuests()
			if m.selected < 0 || m.selected >= len(quests) {
				return m, nil
			}
			q := quests[m.selected]
			if !q.Completed {
				m.lastLog = "Not completed yet."
				return m, nil
			}
			return m, m.redoCmd(q.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	c := m.svc.State()
	return fmt.Sprintf("%s | Level %d | XP %d | %s %d | SP %d | %s %d",
		c.CharacterName, c.Level, c.XP, ui.IconCoin, c.Coins, c.SkillPoints, ui.IconStreak, c.DailyStreak)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Stats"}
	for _, st := range m.svc.Stats() {
		bar := progressBar(st.Progress, 100, 10)
		lines = append(lines, fmt.Sprintf("- %-10s %3d %s %s", st.Name, st.Value, ui.TierText(st.Tier), bar))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ←/→ or h/l: day")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- u: redo")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	lane := lanes[m.lane]
	title := lane
	if lane == m.svc.Today() {
		title += " (today)"
	}
	out := []string{title, ""}

	quests := m.laneQuests()
	if len(quests) == 0 {
		out = append(out, "(empty)")
		return strings.Join(out, "\n")
	}
	for i, q := range quests {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		out = append(out, fmt.Sprintf("%s%s %s [%s] (xp=%d)",
			cursor, ui.CompletionIcon(q.Completed), q.Name, ui.DifficultyText(q.Difficulty), q.XPReward))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
