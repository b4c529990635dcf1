package domain

// LeaderboardEntry is one ranked character
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	CharacterID string `json:"character_id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	TotalXP     int64  `json:"total_xp"`
	Level       int    `json:"level"`
}
