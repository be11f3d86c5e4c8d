package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pko841923-dot/Level-System/internal/engine"
	"github.com/pko841923-dot/Level-System/internal/ui"
)

func newChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Weekly, monthly and custom challenges",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List active challenges",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				svc, _, cleanup, err := openService(ctx, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				defer cleanup()

				printChallenges(cmd.OutOrStdout(), svc)
				return nil
			},
		},
		&cobra.Command{
			Use:   "roll-weekly",
			Short: "Roll a new weekly challenge",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				svc, _, cleanup, err := openService(ctx, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				defer cleanup()

				q, err := svc.GenerateWeekly(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Good.Render(ui.IconChallenge+" Weekly:"), q.Name, ui.Muted.Render(q.Description))
				return nil
			},
		},
		&cobra.Command{
			Use:   "roll-monthly",
			Short: "Roll a new monthly challenge",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				svc, _, cleanup, err := openService(ctx, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				defer cleanup()

				q, err := svc.GenerateMonthly(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Good.Render(ui.IconChallenge+" Monthly:"), q.Name, ui.Muted.Render(q.Description))
				return nil
			},
		},
		newChallengeAddCmd(),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a custom challenge",
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

				if err := svc.DeleteChallenge(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("🗑️ Challenge deleted"))
				return nil
			},
		},
	)

	return cmd
}

func newChallengeAddCmd() *cobra.Command {
	var desc string
	var xp int
	var monthly bool
	var boosts []string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a custom challenge",
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

			boostMap, err := parseBoosts(boosts)
			if err != nil {
				return err
			}
			diff := engine.DifficultyWeekly
			if monthly {
				diff = engine.DifficultyMonthly
			}
			q, err := svc.CreateChallenge(ctx, engine.QuestInput{
				Name:        args[0],
				Description: desc,
				XPReward:    xp,
				StatBoosts:  boostMap,
				Difficulty:  diff,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s [%s] %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), q.Name, ui.DifficultyText(q.Difficulty), ui.Muted.Render("("+q.ID[:8]+")"))
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "Challenge description")
	cmd.Flags().IntVar(&xp, "xp", 100, "Base XP reward")
	cmd.Flags().BoolVar(&monthly, "monthly", false, "Monthly instead of weekly")
	cmd.Flags().StringArrayVarP(&boosts, "boost", "b", nil, "Stat boost, STAT=N (repeatable)")

	return cmd
}
