package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pko841923-dot/Level-System/internal/ui"
)

func newSkillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: "List and upgrade skills",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List skills",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				svc, _, cleanup, err := openService(ctx, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				defer cleanup()

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconBolt, fmt.Sprintf("Skills (%d SP)", svc.State().SkillPoints)))
				for _, sk := range svc.Skills() {
					cost := ui.Muted.Render(fmt.Sprintf("(next: %d SP)", sk.Cost))
					if sk.Level >= sk.Max {
						cost = ui.Gold.Render("(maxed)")
					}
					fmt.Fprintf(out, "- %-8s L%d/%d %s %s\n", sk.Name, sk.Level, sk.Max, cost, ui.Muted.Render(sk.Description))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "up <name>",
			Short: "Upgrade a skill with skill points",
			Args: func(cmd *cobra.Command, args []string) error {
				if len(args) != 1 {
					return errors.New("name is required")
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

				upgraded, err := svc.UpgradeSkill(ctx, args[0])
				if err != nil {
					return err
				}
				if !upgraded {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing happened: skill is maxed or skill points do not cover the cost."))
					return nil
				}
				sk := svc.State().Skills[args[0]]
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s to L%d %s\n",
					ui.Good.Render(ui.IconBolt+" Upgraded"), args[0], sk.Level,
					ui.Muted.Render(fmt.Sprintf("(%d SP left)", svc.State().SkillPoints)))
				return nil
			},
		},
	)

	return cmd
}
