package domain

// CosmeticSlot is where a cosmetic is worn
type CosmeticSlot string

const (
	SlotHat    CosmeticSlot = "hat"
	SlotCape   CosmeticSlot = "cape"
	SlotAura   CosmeticSlot = "aura"
	SlotWeapon CosmeticSlot = "weapon"
	SlotPet    CosmeticSlot = "pet"
	SlotFrame  CosmeticSlot = "frame"
)

// CosmeticItem is a catalog entry. Zero-valued requirements mean "no gate".
type CosmeticItem struct {
	ID                  string       `json:"id"`
	Slot                CosmeticSlot `json:"slot"`
	Label               string       `json:"label"`
	Icon                string       `json:"icon"`
	RequiresAchievement string       `json:"requires_achievement,omitempty"`
	RequiresLevel       int          `json:"requires_level,omitempty"`
}

// Gated reports whether the item has any unlock requirement
func (c CosmeticItem) Gated() bool {
	return c.RequiresAchievement != "" || c.RequiresLevel > 0
}
