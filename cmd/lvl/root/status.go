package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pko841923-dot/Level-System/internal/ui"
)

func newStatusCmd() *cobra.Command {
	var rename string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the character sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			if rename != "" {
				if err := svc.RenameCharacter(ctx, rename); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			c := svc.State()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, c.CharacterName))
			fmt.Fprintln(out, ui.LabelValue("Level", c.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", c.XP))
			fmt.Fprintln(out, ui.LabelValue("Coins", fmt.Sprintf("%s %d", ui.IconCoin, c.Coins)))
			fmt.Fprintln(out, ui.LabelValue("Skill points", c.SkillPoints))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconStreak, c.DailyStreak)))
			fmt.Fprintln(out, ui.LabelValue("Quests done", c.CompletedQuestCount()))
			fmt.Fprintln(out, ui.LabelValue("Aura", ui.AuraSwatch(c.AverageStat())))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
			for _, st := range svc.Stats() {
				fmt.Fprintf(out, "- %-10s %3d %s %s\n", st.Name, st.Value, ui.TierText(st.Tier), ui.Muted.Render(fmt.Sprintf("(%d%% to next)", st.Progress)))
			}
			fmt.Fprintln(out, "")

			if c.MegaUnlocked() {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconBolt+" SSS tier unlocked"))
			} else if c.HasSSStat() {
				fmt.Fprintln(out, ui.Good.Render(ui.IconBolt+" Mega quests unlocked"))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("Mega quests locked: reach SS tier on any stat"))
			}

			equipped := equippedSummary(c.Cosmetics.Hat, c.Cosmetics.Weapon, c.Cosmetics.Accessory)
			if equipped != "" {
				fmt.Fprintln(out, ui.LabelValue("Equipped", equipped))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rename, "rename", "", "Rename the character")

	return cmd
}

func equippedSummary(ids ...string) string {
	var parts []string
	for _, id := range ids {
		if id != "" {
			parts = append(parts, id)
		}
	}
	return strings.Join(parts, ", ")
}
