// Package snapshot encodes characters as versioned JSON documents.
//
// Version 1 is the legacy flat camelCase document written by the old
// browser client, where most fields were optional. Version 2 wraps the
// character in an envelope carrying schema_version. Decode migrates older
// documents once and always returns a fully populated character.
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/leveling"
)

// CurrentSchemaVersion is the version written by Encode
const CurrentSchemaVersion = 2

type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	Character     json.RawMessage `json:"character"`
}

// Encode serializes a character at the current schema version
func Encode(c *domain.Character) ([]byte, error) {
	body, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode character: %w", err)
	}
	return json.Marshal(envelope{SchemaVersion: CurrentSchemaVersion, Character: body})
}

// Decode reads a document of any known version
func Decode(data []byte) (*domain.Character, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode character document: %w", err)
	}

	var c *domain.Character
	switch env.SchemaVersion {
	case 0, 1:
		// v1 documents have no envelope
		legacy, err := decodeV1(data)
		if err != nil {
			return nil, err
		}
		c = migrateV1(legacy)
	case CurrentSchemaVersion:
		c = &domain.Character{}
		if err := json.Unmarshal(env.Character, c); err != nil {
			return nil, fmt.Errorf("failed to decode character: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported character schema version %d", env.SchemaVersion)
	}

	Normalize(c)
	return c, nil
}

// Normalize fills every collection, clamps stats and recomputes the derived
// level. Id collections behave as sets: duplicates are dropped in order.
// An unparseable last activity date is cleared.
func Normalize(c *domain.Character) {
	c.Achievements = uniqueIDs(c.Achievements)
	c.UnlockedCosmetics = uniqueIDs(c.UnlockedCosmetics)
	c.CompletedQuests = uniqueIDs(c.CompletedQuests)
	if c.StatPrestige == nil {
		c.StatPrestige = make(map[domain.Stat]int)
	}
	for _, st := range domain.AllStats {
		c.Stats.Set(st, c.Stats.Get(st))
	}
	if c.TotalXP < 0 {
		c.TotalXP = 0
	}
	if c.StreakDays < 0 {
		c.StreakDays = 0
	}
	if d, err := domain.ParseDate(string(c.LastActivityDate)); err != nil {
		c.LastActivityDate = ""
	} else {
		c.LastActivityDate = d
	}
	c.Level = leveling.XPToLevel(c.TotalXP)
}

// uniqueIDs returns ids without duplicates, keeping first occurrences. Never nil.
func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
