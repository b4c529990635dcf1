package domain

// CharacterClass is a creation-time preset that boosts some stats once
type CharacterClass struct {
	ID            ClassID      `json:"id"`
	DisplayName   string       `json:"display_name"`
	Description   string       `json:"description"`
	StatBonus     map[Stat]int `json:"stat_bonus"`
	StarterWeapon string       `json:"starter_weapon"`
}
