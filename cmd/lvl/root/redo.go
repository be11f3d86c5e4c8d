package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pko841923-dot/Level-System/internal/ui"
)

func newRedoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redo <id>",
		Short: "Reopen a completed quest",
		Long: `Mark a completed quest as open again so it can be done once more.

Rewards already granted are kept; reopening only clears the completion
flag.`,
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

			if err := svc.RedoQuest(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Warn.Render(ui.IconLoop+" Reopened"), ui.Muted.Render(args[0]), ui.Muted.Render("(rewards kept)"))
			return nil
		},
	}

	return cmd
}
