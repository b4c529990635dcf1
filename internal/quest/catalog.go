// Package quest loads the special-quest catalog.
package quest

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/validation"
)

//go:embed quests.json
var defaultQuests []byte

// Config is the on-disk shape of the quest catalog
type Config struct {
	Version       string                `json:"version"`
	SpecialQuests []domain.SpecialQuest `json:"special_quests"`
}

// Catalog is the read-only set of special quests
type Catalog struct {
	quests []domain.SpecialQuest
	byID   map[string]domain.SpecialQuest
}

// LoadCatalog reads the catalog from path, or the built-in catalog when path is empty
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultQuests
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read quest config: %w", err)
		}
	}
	return ParseCatalog(data)
}

var schemas = validation.NewSchemaValidator()

// ParseCatalog builds a catalog from JSON and validates every entry
func ParseCatalog(data []byte) (*Catalog, error) {
	if err := schemas.ValidateBytes(data, validation.SchemaQuests); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse quest config: %w", err)
	}

	c := &Catalog{byID: make(map[string]domain.SpecialQuest, len(cfg.SpecialQuests))}
	for _, q := range cfg.SpecialQuests {
		if q.ID == "" || q.Title == "" {
			return nil, fmt.Errorf("%w: quest missing id or title", domain.ErrInvalidInput)
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate quest id %q", domain.ErrInvalidInput, q.ID)
		}
		if q.XPReward < 0 || q.StatReward < 0 {
			return nil, fmt.Errorf("%w: quest %q has negative reward", domain.ErrInvalidInput, q.ID)
		}
		if q.StatReward > 0 {
			if _, err := domain.ParseStat(string(q.Stat)); err != nil {
				return nil, fmt.Errorf("quest %q: %w", q.ID, err)
			}
		}
		c.quests = append(c.quests, q)
		c.byID[q.ID] = q
	}
	return c, nil
}

// Lookup returns the quest with the given id
func (c *Catalog) Lookup(id string) (domain.SpecialQuest, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// All returns the quests in file order
func (c *Catalog) All() []domain.SpecialQuest {
	return slices.Clone(c.quests)
}
