package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pko841923-dot/Level-System/internal/engine"
	"github.com/pko841923-dot/Level-System/internal/ui"
)

// parseBoosts turns repeated STAT=N flags into a boost map.
func parseBoosts(pairs []string) (map[string]int, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	boosts := make(map[string]int, len(pairs))
	for _, p := range pairs {
		name, raw, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("boost %q must look like STAT=N", p)
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("boost %q must look like STAT=N", p)
		}
		boosts[strings.ToUpper(strings.TrimSpace(name))] = n
	}
	return boosts, nil
}

func newAddCmd() *cobra.Command {
	var desc string
	var xp int
	var day string
	var diff string
	var boosts []string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a quest to a weekday",
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
			target := svc.Today()
			if day != "" {
				parsed, ok := engine.ParseWeekday(day)
				if !ok {
					return fmt.Errorf("unknown day %q", day)
				}
				target = parsed
			}
			q, err := svc.CreateQuest(ctx, engine.QuestInput{
				Name:        args[0],
				Description: desc,
				XPReward:    xp,
				StatBoosts:  boostMap,
				Day:         target,
				Difficulty:  engine.ParseDifficulty(diff),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s [%s] %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), q.Name, ui.Key.Render(q.Day),
				ui.DifficultyText(q.Difficulty), ui.Muted.Render("("+q.ID[:8]+")"))
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "Quest description")
	cmd.Flags().IntVar(&xp, "xp", 10, "Base XP reward")
	cmd.Flags().StringVarP(&day, "day", "d", "", "Weekday (defaults to today)")
	cmd.Flags().StringVar(&diff, "diff", "Normal", "Difficulty (Easy|Normal|Hard|Mega)")
	cmd.Flags().StringArrayVarP(&boosts, "boost", "b", nil, "Stat boost, STAT=N (repeatable)")

	return cmd
}
