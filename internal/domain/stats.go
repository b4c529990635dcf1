package domain

import "fmt"

// Stat names one of the five character attributes
type Stat string

const (
	StatStrength  Stat = "strength"
	StatStamina   Stat = "stamina"
	StatKnowledge Stat = "knowledge"
	StatSocial    Stat = "social"
	StatFocus     Stat = "focus"
)

// AllStats lists the stats in display order
var AllStats = []Stat{StatStrength, StatStamina, StatKnowledge, StatSocial, StatFocus}

// ParseStat validates a stat name
func ParseStat(s string) (Stat, error) {
	for _, st := range AllStats {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStat, s)
}

// StatBlock holds the five stat values of a character.
// Every write goes through Set, which clamps to [0, MaxStat].
type StatBlock struct {
	Strength  int `json:"strength"`
	Stamina   int `json:"stamina"`
	Knowledge int `json:"knowledge"`
	Social    int `json:"social"`
	Focus     int `json:"focus"`
}

// NewStatBlock returns a block with every stat at value
func NewStatBlock(value int) StatBlock {
	var b StatBlock
	for _, st := range AllStats {
		b.Set(st, value)
	}
	return b
}

// Get returns the value of a stat (0 for unknown names)
func (b StatBlock) Get(stat Stat) int {
	switch stat {
	case StatStrength:
		return b.Strength
	case StatStamina:
		return b.Stamina
	case StatKnowledge:
		return b.Knowledge
	case StatSocial:
		return b.Social
	case StatFocus:
		return b.Focus
	}
	return 0
}

// Set writes a clamped stat value
func (b *StatBlock) Set(stat Stat, value int) {
	value = ClampStat(value)
	switch stat {
	case StatStrength:
		b.Strength = value
	case StatStamina:
		b.Stamina = value
	case StatKnowledge:
		b.Knowledge = value
	case StatSocial:
		b.Social = value
	case StatFocus:
		b.Focus = value
	}
}

// Add increases a stat by delta and returns the amount actually applied after clamping
func (b *StatBlock) Add(stat Stat, delta int) int {
	before := b.Get(stat)
	b.Set(stat, before+delta)
	return b.Get(stat) - before
}

// ClampStat bounds a stat value to [0, MaxStat]
func ClampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
