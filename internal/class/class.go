// Package class defines the character class presets chosen at creation.
package class

import (
	"fmt"
	"slices"

	"github.com/osse101/StudyQuest_Go/internal/domain"
)

// Class ids
const (
	Scholar  domain.ClassID = "scholar"
	Athlete  domain.ClassID = "athlete"
	Diplomat domain.ClassID = "diplomat"
	Monk     domain.ClassID = "monk"
	Ranger   domain.ClassID = "ranger"
)

// DefaultStarterWeapon is used when no class and no weapon were chosen
const DefaultStarterWeapon = "wooden-stick"

var presets = []domain.CharacterClass{
	{
		ID:            Scholar,
		DisplayName:   "Scholar",
		Description:   "Lives in the library. Learns fast, tires fast.",
		StatBonus:     map[domain.Stat]int{domain.StatKnowledge: 5, domain.StatFocus: 2},
		StarterWeapon: "tome",
	},
	{
		ID:            Athlete,
		DisplayName:   "Athlete",
		Description:   "Trains body first, books second.",
		StatBonus:     map[domain.Stat]int{domain.StatStrength: 4, domain.StatStamina: 3},
		StarterWeapon: "training-staff",
	},
	{
		ID:            Diplomat,
		DisplayName:   "Diplomat",
		Description:   "Wins fights by talking the boss out of them.",
		StatBonus:     map[domain.Stat]int{domain.StatSocial: 5, domain.StatKnowledge: 2},
		StarterWeapon: "silver-tongue",
	},
	{
		ID:            Monk,
		DisplayName:   "Monk",
		Description:   "Calm mind, steady streaks.",
		StatBonus:     map[domain.Stat]int{domain.StatFocus: 5, domain.StatStamina: 2},
		StarterWeapon: "prayer-beads",
	},
	{
		ID:            Ranger,
		DisplayName:   "Ranger",
		Description:   "A bit of everything, outdoors.",
		StatBonus:     map[domain.Stat]int{domain.StatStamina: 2, domain.StatStrength: 2, domain.StatFocus: 1, domain.StatSocial: 1, domain.StatKnowledge: 1},
		StarterWeapon: "longbow",
	},
}

// Lookup returns the preset for id
func Lookup(id domain.ClassID) (domain.CharacterClass, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return domain.CharacterClass{}, false
}

// All returns every preset in display order
func All() []domain.CharacterClass {
	return slices.Clone(presets)
}

// Validate accepts the empty id (no class) or a known preset
func Validate(id domain.ClassID) error {
	if id == "" {
		return nil
	}
	if _, ok := Lookup(id); !ok {
		return fmt.Errorf("%w: %q", domain.ErrInvalidClass, id)
	}
	return nil
}

// BaseStats returns the starting stat block for a class: baseline everywhere
// plus the class bonus, applied once.
func BaseStats(id domain.ClassID) StatsAndWeapon {
	out := StatsAndWeapon{
		Stats:  domain.NewStatBlock(domain.BaselineStat),
		Weapon: DefaultStarterWeapon,
	}
	p, ok := Lookup(id)
	if !ok {
		return out
	}
	for stat, bonus := range p.StatBonus {
		out.Stats.Add(stat, bonus)
	}
	out.Weapon = p.StarterWeapon
	return out
}

// StatsAndWeapon is the creation-time loadout of a class
type StatsAndWeapon struct {
	Stats  domain.StatBlock
	Weapon string
}
