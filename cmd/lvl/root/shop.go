package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pko841923-dot/Level-System/internal/engine"
	"github.com/pko841923-dot/Level-System/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Spend coins on cosmetics",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Browse the catalog",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				svc, _, cleanup, err := openService(ctx, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				defer cleanup()

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconShop, fmt.Sprintf("Shop (%s %d)", ui.IconCoin, svc.State().Coins)))
				for _, item := range svc.Shop() {
					tag := ui.Muted.Render(fmt.Sprintf("%d coins", item.Price))
					switch {
					case item.Equipped:
						tag = ui.Gold.Render("equipped")
					case item.Owned:
						tag = ui.Good.Render("owned")
					}
					fmt.Fprintf(out, "%s %-14s %-9s %s %s\n",
						item.Icon, item.Name, ui.Dim.Render(string(item.Slot)), tag, ui.Dim.Render("("+item.ID+")"))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "buy <id>",
			Short: "Buy an item",
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

				if err := svc.BuyCosmetic(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Good.Render(ui.IconShop+" Bought"), args[0],
					ui.Muted.Render(fmt.Sprintf("(%d coins left)", svc.State().Coins)))
				return nil
			},
		},
		&cobra.Command{
			Use:   "equip <id>",
			Short: "Equip an owned item",
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

				if err := svc.EquipCosmetic(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSparkle+" Equipped ")+args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "unequip <slot>",
			Short: "Clear a slot (hat|weapon|accessory)",
			Args: func(cmd *cobra.Command, args []string) error {
				if len(args) != 1 {
					return errors.New("slot is required")
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

				slot, err := engine.ParseCosmeticSlot(args[0])
				if err != nil {
					return err
				}
				if err := svc.UnequipCosmetic(ctx, slot); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Cleared "+string(slot)))
				return nil
			},
		},
	)

	return cmd
}
