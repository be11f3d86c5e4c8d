package engine

import (
	"context"

	"github.com/sirupsen/logrus"
)

// CosmeticSlot is an equipment slot on the character.
type CosmeticSlot string

const (
	SlotHat       CosmeticSlot = "hat"
	SlotWeapon    CosmeticSlot = "weapon"
	SlotAccessory CosmeticSlot = "accessory"
)

// ParseCosmeticSlot parses user input to a CosmeticSlot.
func ParseCosmeticSlot(input string) (CosmeticSlot, error) {
	switch CosmeticSlot(input) {
	case SlotHat, SlotWeapon, SlotAccessory:
		return CosmeticSlot(input), nil
	default:
		return "", ValidationError{Reason: "slot must be hat, weapon or accessory"}
	}
}

// Cosmetic is a purchasable appearance item.
type Cosmetic struct {
	ID    string
	Name  string
	Icon  string
	Slot  CosmeticSlot
	Price int
}

// CosmeticStatus adds ownership and equip state for rendering.
type CosmeticStatus struct {
	Cosmetic
	Owned    bool
	Equipped bool
}

var cosmeticCatalog = []Cosmetic{
	{ID: "crown", Name: "Golden Crown", Icon: "👑", Slot: SlotHat, Price: 500},
	{ID: "cap", Name: "Red Cap", Icon: "🧢", Slot: SlotHat, Price: 200},
	{ID: "helmet", Name: "Knight Helmet", Icon: "⛑️", Slot: SlotHat, Price: 600},
	{ID: "bandana", Name: "Ninja Bandana", Icon: "🥷", Slot: SlotHat, Price: 250},
	{ID: "sword", Name: "Steel Sword", Icon: "⚔️", Slot: SlotWeapon, Price: 300},
	{ID: "axe", Name: "Battle Axe", Icon: "🪓", Slot: SlotWeapon, Price: 450},
	{ID: "bow", Name: "Magic Bow", Icon: "🏹", Slot: SlotWeapon, Price: 350},
	{ID: "staff", Name: "Wizard Staff", Icon: "🪄", Slot: SlotWeapon, Price: 550},
	{ID: "cape", Name: "Purple Cape", Icon: "🦸", Slot: SlotAccessory, Price: 400},
	{ID: "wings", Name: "Angel Wings", Icon: "👼", Slot: SlotAccessory, Price: 800},
	{ID: "shield", Name: "Royal Shield", Icon: "🛡️", Slot: SlotAccessory, Price: 350},
	{ID: "aura", Name: "Fire Aura", Icon: "🔥", Slot: SlotAccessory, Price: 700},
}

func findCosmetic(id string) (Cosmetic, bool) {
	for _, c := range cosmeticCatalog {
		if c.ID == id {
			return c, true
		}
	}
	return Cosmetic{}, false
}

func (s *Service) equippedIn(slot CosmeticSlot) string {
	switch slot {
	case SlotHat:
		return s.state.Cosmetics.Hat
	case SlotWeapon:
		return s.state.Cosmetics.Weapon
	default:
		return s.state.Cosmetics.Accessory
	}
}

func (s *Service) setEquipped(slot CosmeticSlot, id string) {
	switch slot {
	case SlotHat:
		s.state.Cosmetics.Hat = id
	case SlotWeapon:
		s.state.Cosmetics.Weapon = id
	case SlotAccessory:
		s.state.Cosmetics.Accessory = id
	}
}

func (s *Service) ownsCosmetic(id string) bool {
	for _, owned := range s.state.OwnedCosmetics {
		if owned == id {
			return true
		}
	}
	return false
}

// Shop returns the catalog with ownership and equip state, in catalog
// order.
func (s *Service) Shop() []CosmeticStatus {
	out := make([]CosmeticStatus, 0, len(cosmeticCatalog))
	for _, c := range cosmeticCatalog {
		out = append(out, CosmeticStatus{
			Cosmetic: c,
			Owned:    s.ownsCosmetic(c.ID),
			Equipped: s.equippedIn(c.Slot) == c.ID,
		})
	}
	return out
}

// BuyCosmetic purchases an item with coins. Already-owned items cannot be
// bought twice and an unaffordable price leaves state untouched.
func (s *Service) BuyCosmetic(ctx context.Context, id string) error {
	c, ok := findCosmetic(id)
	if !ok {
		return NotFoundError{Kind: "cosmetic", ID: id}
	}
	if s.ownsCosmetic(id) {
		return DuplicateError{Name: id}
	}
	if s.state.Coins < c.Price {
		return ValidationError{Reason: "not enough coins"}
	}

	s.state.Coins -= c.Price
	s.state.OwnedCosmetics = append(s.state.OwnedCosmetics, id)
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"cosmetic": id, "price": c.Price}).Info("cosmetic bought")
	return nil
}

// EquipCosmetic equips an owned item into its slot, replacing whatever
// was there.
func (s *Service) EquipCosmetic(ctx context.Context, id string) error {
	c, ok := findCosmetic(id)
	if !ok {
		return NotFoundError{Kind: "cosmetic", ID: id}
	}
	if !s.ownsCosmetic(id) {
		return ValidationError{Reason: id + " is not owned"}
	}

	s.setEquipped(c.Slot, id)
	return s.persist(ctx)
}

// UnequipCosmetic clears a slot.
func (s *Service) UnequipCosmetic(ctx context.Context, slot CosmeticSlot) error {
	s.setEquipped(slot, "")
	return s.persist(ctx)
}
