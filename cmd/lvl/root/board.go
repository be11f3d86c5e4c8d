package root

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/sirupsen/logrus"

	"github.com/pko841923-dot/Level-System/internal/jobs"
	"github.com/pko841923-dot/Level-System/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI weekday board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			// Catch up on a missed reset before showing the board.
			if _, err := svc.MidnightReset(ctx); err != nil {
				return err
			}

			sched := jobs.NewScheduler(svc, logrus.StandardLogger())
			if err := sched.Start(ctx, time.Duration(cfg.AutosaveSeconds)*time.Second); err != nil {
				return err
			}
			defer sched.Stop()

			return tui.RunBoard(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
