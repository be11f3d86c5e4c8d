package engine

import (
	"errors"
	"testing"
)

func TestBuyEquipUnequipCosmetic(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := testContext()

	svc.state.Coins = 250

	if err := svc.BuyCosmetic(ctx, "cap"); err != nil {
		t.Fatalf("BuyCosmetic: %v", err)
	}
	if svc.State().Coins != 50 {
		t.Fatalf("coins=%d, want 50", svc.State().Coins)
	}

	if err := svc.EquipCosmetic(ctx, "cap"); err != nil {
		t.Fatalf("EquipCosmetic: %v", err)
	}
	if svc.State().Cosmetics.Hat != "cap" {
		t.Fatalf("hat slot=%q, want cap", svc.State().Cosmetics.Hat)
	}

	if err := svc.UnequipCosmetic(ctx, SlotHat); err != nil {
		t.Fatalf("UnequipCosmetic: %v", err)
	}
	if svc.State().Cosmetics.Hat != "" {
		t.Fatalf("hat slot should be empty")
	}
	// Still owned after unequip.
	if err := svc.EquipCosmetic(ctx, "cap"); err != nil {
		t.Fatalf("re-equip: %v", err)
	}
}

func TestBuyCosmeticGuards(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := testContext()

	// Unaffordable.
	svc.state.Coins = 10
	err := svc.BuyCosmetic(ctx, "crown")
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for unaffordable buy, got %v", err)
	}
	if svc.State().Coins != 10 {
		t.Fatalf("failed buy must not touch coins")
	}

	// Double purchase.
	svc.state.Coins = 1000
	if err := svc.BuyCosmetic(ctx, "crown"); err != nil {
		t.Fatalf("BuyCosmetic: %v", err)
	}
	err = svc.BuyCosmetic(ctx, "crown")
	var dup DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}

	// Unknown item.
	err = svc.BuyCosmetic(ctx, "monocle")
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestEquipRequiresOwnership(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	err := svc.EquipCosmetic(testContext(), "wings")
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestShopCatalog(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	items := svc.Shop()
	if len(items) != 12 {
		t.Fatalf("catalog has %d items, want 12", len(items))
	}
	slots := map[CosmeticSlot]int{}
	for _, item := range items {
		slots[item.Slot]++
		if item.Owned || item.Equipped {
			t.Fatalf("fresh character owns %s", item.ID)
		}
	}
	if slots[SlotHat] != 4 || slots[SlotWeapon] != 4 || slots[SlotAccessory] != 4 {
		t.Fatalf("slot distribution: %v, want 4 each", slots)
	}
}
