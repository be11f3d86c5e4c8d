package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pko841923-dot/Level-System/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "lvl",
	Short:         "Level System, a gamified personal progression tracker",
	Long:          "Level System is a local-first CLI/TUI task tracker where completed quests grow an RPG character: XP, coins, skill points, stat tiers, streaks and achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newEditCmd(),
		newDeleteCmd(),
		newDoCmd(),
		newRedoCmd(),
		newListCmd(),
		newStatusCmd(),
		newStatCmd(),
		newSkillCmd(),
		newAchievementsCmd(),
		newChallengeCmd(),
		newShopCmd(),
		newExportCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
