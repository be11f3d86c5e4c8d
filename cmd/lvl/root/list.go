package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pko841923-dot/Level-System/internal/engine"
	"github.com/pko841923-dot/Level-System/internal/ui"
)

func newListCmd() *cobra.Command {
	var day string
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests (today by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if all {
				for _, d := range engine.Weekdays {
					printDay(out, svc, d)
				}
				printChallenges(out, svc)
				return nil
			}

			target := svc.Today()
			if day != "" {
				parsed, ok := engine.ParseWeekday(day)
				if !ok {
					return fmt.Errorf("unknown day %q", day)
				}
				target = parsed
			}
			printDay(out, svc, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&day, "day", "d", "", "Weekday to list")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "List the whole week plus challenges")

	return cmd
}

func printDay(out io.Writer, svc *engine.Service, day string) {
	title := day
	if day == svc.Today() {
		title += " (today)"
	}
	fmt.Fprintln(out, ui.H2.Render(ui.IconScroll+" "+title))
	quests := svc.State().QuestsForDay(day)
	if len(quests) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("  (empty)"))
		return
	}
	done := 0
	for _, q := range quests {
		if q.Completed {
			done++
		}
		printQuestLine(out, q)
	}
	fmt.Fprintln(out, ui.Dim.Render(fmt.Sprintf("  %d/%d done", done, len(quests))))
}

func printChallenges(out io.Writer, svc *engine.Service) {
	fmt.Fprintln(out, ui.H2.Render(ui.IconChallenge+" Challenges"))
	challenges := svc.Challenges()
	if len(challenges) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("  (none active, try: lvl challenge roll-weekly)"))
		return
	}
	for _, q := range challenges {
		printQuestLine(out, q)
	}
}

func printQuestLine(out io.Writer, q *engine.Quest) {
	fmt.Fprintf(out, "  %s %s [%s] %s %s\n",
		ui.CompletionIcon(q.Completed), q.Name, ui.DifficultyText(q.Difficulty),
		ui.Muted.Render(fmt.Sprintf("xp=%d", q.XPReward)), ui.Dim.Render("("+q.ID[:8]+")"))
}
