package root

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pko841923-dot/Level-System/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a quest or challenge",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteQuest(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !res.Applied {
				fmt.Fprintf(out, "%s %s\n", ui.Muted.Render(ui.IconDone+" Already completed:"), res.Name)
				return nil
			}

			fmt.Fprintf(out, "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Completed"), res.Name,
				ui.Muted.Render(fmt.Sprintf("(+%d XP, +%d coins, +%d SP)", res.XPGained, res.CoinsGained, res.SPGained)))
			if len(res.StatGains) > 0 {
				names := make([]string, 0, len(res.StatGains))
				for name := range res.StatGains {
					names = append(names, name)
				}
				sort.Strings(names)
				parts := make([]string, 0, len(names))
				for _, name := range names {
					parts = append(parts, fmt.Sprintf("%s +%d", name, res.StatGains[name]))
				}
				fmt.Fprintf(out, "%s %s\n", ui.Key.Render("Stats:"), strings.Join(parts, ", "))
			}
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.Muted.Render(fmt.Sprintf("%d → %d", res.LevelBefore, res.LevelAfter)))
			}
			if res.Streak > 1 {
				fmt.Fprintf(out, "%s %s\n", ui.IconStreak, ui.Warn.Render(fmt.Sprintf("%d day streak", res.Streak)))
			}
			return nil
		},
	}

	return cmd
}
