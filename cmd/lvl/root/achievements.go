package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pko841923-dot/Level-System/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show unlocked achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			statuses := svc.Achievements()
			earned := 0
			for _, a := range statuses {
				if a.Earned {
					earned++
				}
			}
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements (%d/%d)", earned, len(statuses))))
			for _, a := range statuses {
				switch {
				case a.Earned:
					fmt.Fprintf(out, "%s %s %s\n", a.Icon, ui.Gold.Render(a.Name), ui.Muted.Render(a.Description))
				case all:
					fmt.Fprintf(out, "🔒 %s %s\n", ui.Muted.Render(a.Name), ui.Dim.Render(a.Description))
				}
			}
			if earned == 0 && !all {
				fmt.Fprintln(out, ui.Muted.Render("(none yet, use --all to see what's out there)"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include locked achievements")

	return cmd
}
