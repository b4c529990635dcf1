// Package cosmetic holds the static registry of unlockable cosmetics and the
// rules that decide whether a character owns one.
package cosmetic

import (
	"math/rand"
	"slices"

	"github.com/osse101/StudyQuest_Go/internal/achievement"
	"github.com/osse101/StudyQuest_Go/internal/domain"
)

var registry = []domain.CosmeticItem{
	{ID: "hat-basic-cap", Slot: domain.SlotHat, Label: "Basic Cap", Icon: "🧢"},
	{ID: "frame-plain", Slot: domain.SlotFrame, Label: "Plain Frame", Icon: "🖼️"},
	{ID: "hat-graduation", Slot: domain.SlotHat, Label: "Graduation Cap", Icon: "🎓", RequiresAchievement: achievement.FirstQuest},
	{ID: "hat-wizard", Slot: domain.SlotHat, Label: "Wizard Hat", Icon: "🧙", RequiresLevel: 10},
	{ID: "hat-crown", Slot: domain.SlotHat, Label: "Scholar's Crown", Icon: "👑", RequiresLevel: 25, RequiresAchievement: achievement.Streak30},
	{ID: "cape-red", Slot: domain.SlotCape, Label: "Crimson Cape", Icon: "🟥", RequiresLevel: 5},
	{ID: "cape-starry", Slot: domain.SlotCape, Label: "Starry Cape", Icon: "🌌", RequiresLevel: 15},
	{ID: "aura-ember", Slot: domain.SlotAura, Label: "Ember Aura", Icon: "🔥", RequiresAchievement: achievement.Streak7},
	{ID: "aura-inferno", Slot: domain.SlotAura, Label: "Inferno Aura", Icon: "☄️", RequiresAchievement: achievement.Streak30},
	{ID: "aura-zen", Slot: domain.SlotAura, Label: "Zen Aura", Icon: "🪷", RequiresLevel: 8},
	{ID: "weapon-quill", Slot: domain.SlotWeapon, Label: "Golden Quill", Icon: "🪶", RequiresLevel: 3},
	{ID: "weapon-flame-sword", Slot: domain.SlotWeapon, Label: "Flame Sword", Icon: "🗡️", RequiresLevel: 12, RequiresAchievement: achievement.Streak7},
	{ID: "pet-owl", Slot: domain.SlotPet, Label: "Study Owl", Icon: "🦉", RequiresLevel: 6},
	{ID: "pet-dragon", Slot: domain.SlotPet, Label: "Baby Dragon", Icon: "🐉", RequiresLevel: 20},
	{ID: "frame-gold", Slot: domain.SlotFrame, Label: "Gold Frame", Icon: "🏅", RequiresLevel: 30},
}

var byID = func() map[string]domain.CosmeticItem {
	m := make(map[string]domain.CosmeticItem, len(registry))
	for _, item := range registry {
		m[item.ID] = item
	}
	return m
}()

// Lookup returns the cosmetic with the given id
func Lookup(id string) (domain.CosmeticItem, bool) {
	item, ok := byID[id]
	return item, ok
}

// All returns a copy of the registry
func All() []domain.CosmeticItem {
	return slices.Clone(registry)
}

// IsUnlocked reports whether a character owns the cosmetic.
// Explicit unlocks (loot) always win; ungated items are free; otherwise every
// requirement that is set must be met. Unknown ids are never unlocked.
func IsUnlocked(id string, achievements []string, level int, explicitlyUnlocked []string) bool {
	if slices.Contains(explicitlyUnlocked, id) {
		return true
	}
	item, ok := byID[id]
	if !ok {
		return false
	}
	if !item.Gated() {
		return true
	}
	if item.RequiresLevel > 0 && level < item.RequiresLevel {
		return false
	}
	if item.RequiresAchievement != "" && !slices.Contains(achievements, item.RequiresAchievement) {
		return false
	}
	return true
}

// Locked returns every cosmetic the character does not own yet, in registry order
func Locked(achievements []string, level int, explicitlyUnlocked []string) []domain.CosmeticItem {
	var out []domain.CosmeticItem
	for _, item := range registry {
		if !IsUnlocked(item.ID, achievements, level, explicitlyUnlocked) {
			out = append(out, item)
		}
	}
	return out
}

// PickLootCosmetic draws one locked cosmetic uniformly at random.
// Returns false when everything is already unlocked.
func PickLootCosmetic(rng *rand.Rand, achievements []string, level int, explicitlyUnlocked []string) (domain.CosmeticItem, bool) {
	locked := Locked(achievements, level, explicitlyUnlocked)
	if len(locked) == 0 {
		return domain.CosmeticItem{}, false
	}
	return locked[rng.Intn(len(locked))], true
}
