package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pko841923-dot/Level-System/internal/engine"
	"github.com/pko841923-dot/Level-System/internal/ui"
)

func newEditCmd() *cobra.Command {
	var name string
	var desc string
	var xp int
	var day string
	var diff string
	var boosts []string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a quest",
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

			q, ok := svc.Quest(args[0])
			if !ok {
				return engine.NotFoundError{Kind: "quest", ID: args[0]}
			}

			in := engine.QuestInput{
				Name:        q.Name,
				Description: q.Description,
				XPReward:    q.XPReward,
				StatBoosts:  q.StatBoosts,
				Day:         q.Day,
				Difficulty:  q.Difficulty,
			}
			if cmd.Flags().Changed("name") {
				in.Name = name
			}
			if cmd.Flags().Changed("desc") {
				in.Description = desc
			}
			if cmd.Flags().Changed("xp") {
				in.XPReward = xp
			}
			if cmd.Flags().Changed("day") {
				parsed, ok := engine.ParseWeekday(day)
				if !ok {
					return fmt.Errorf("unknown day %q", day)
				}
				in.Day = parsed
			}
			if cmd.Flags().Changed("diff") {
				in.Difficulty = engine.ParseDifficulty(diff)
			}
			if cmd.Flags().Changed("boost") {
				boostMap, err := parseBoosts(boosts)
				if err != nil {
					return err
				}
				in.StatBoosts = boostMap
			}

			updated, err := svc.UpdateQuest(ctx, args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s [%s]\n",
				ui.Good.Render(ui.IconSparkle+" Updated"), updated.Name, ui.Key.Render(updated.Day), ui.DifficultyText(updated.Difficulty))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")
	cmd.Flags().IntVar(&xp, "xp", 0, "New base XP reward")
	cmd.Flags().StringVarP(&day, "day", "d", "", "New weekday")
	cmd.Flags().StringVar(&diff, "diff", "", "New difficulty (Easy|Normal|Hard|Mega)")
	cmd.Flags().StringArrayVarP(&boosts, "boost", "b", nil, "Replace stat boosts, STAT=N (repeatable)")

	return cmd
}
