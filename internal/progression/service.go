// Package progression turns logged activities, quests and prestige resets
// into character progression. Every mutation runs inside one character
// transaction and publishes its domain events after commit.
package progression

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/StudyQuest_Go/internal/boss"
	"github.com/osse101/StudyQuest_Go/internal/class"
	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/event"
	"github.com/osse101/StudyQuest_Go/internal/logger"
	"github.com/osse101/StudyQuest_Go/internal/quest"
	"github.com/osse101/StudyQuest_Go/internal/repository"
	"github.com/osse101/StudyQuest_Go/internal/snapshot"
)

// Service defines the progression business logic
type Service interface {
	// Characters
	CreateCharacter(ctx context.Context, in domain.CreateCharacterInput) (*domain.Character, error)
	ImportCharacter(ctx context.Context, doc []byte) (*domain.Character, error)
	GetCharacter(ctx context.Context, id string) (*domain.Character, error)

	// Progression
	LogActivity(ctx context.Context, characterID, activityID string, opts domain.LogOptions) (*domain.LogResult, error)
	CompleteSpecialQuest(ctx context.Context, characterID, questID, proof string) (*domain.QuestResult, error)
	PrestigeStat(ctx context.Context, characterID string, stat domain.Stat) (*domain.Character, error)

	// Read models
	WeeklyRecap(ctx context.Context, characterID string) (*domain.WeeklyRecap, error)
	Quests() []domain.SpecialQuest

	// Invalidate drops a cached character. Satisfies boss.CacheInvalidator.
	Invalidate(characterID string)
}

// Publisher delivers domain events after a transaction commits
type Publisher interface {
	PublishWithRetry(ctx context.Context, e event.Event)
}

// Config tunes a Service. Zero values fall back to defaults.
type Config struct {
	Location  *time.Location
	CacheSize int
	CacheTTL  time.Duration
}

type service struct {
	repo      repository.Character
	resolver  *boss.Resolver
	quests    *quest.Catalog
	publisher Publisher
	cache     *characterCache
	loc       *time.Location
	now       func() time.Time
}

// NewService creates a new progression service. publisher may be nil.
func NewService(repo repository.Character, resolver *boss.Resolver, quests *quest.Catalog, publisher Publisher, cfg Config) Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:      repo,
		resolver:  resolver,
		quests:    quests,
		publisher: publisher,
		cache:     newCharacterCache(cfg.CacheSize, cfg.CacheTTL),
		loc:       loc,
		now:       time.Now,
	}
}

// CreateCharacter validates the input and stores a new character at baseline
// stats plus its class bonus
func (s *service) CreateCharacter(ctx context.Context, in domain.CreateCharacterInput) (*domain.Character, error) {
	username := strings.TrimSpace(in.Username)
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = username
	}
	if err := validateNames(name, username); err != nil {
		return nil, err
	}
	if err := class.Validate(in.ClassID); err != nil {
		return nil, err
	}

	loadout := class.BaseStats(in.ClassID)
	weapon := strings.TrimSpace(in.StarterWeapon)
	if weapon == "" {
		weapon = loadout.Weapon
	}

	now := s.now().UTC()
	c := &domain.Character{
		ID:                uuid.NewString(),
		Name:              name,
		Username:          username,
		Level:             1,
		Stats:             loadout.Stats,
		Achievements:      []string{},
		UnlockedCosmetics: []string{},
		CompletedQuests:   []string{},
		StatPrestige:      make(map[domain.Stat]int),
		ClassID:           in.ClassID,
		StarterWeapon:     weapon,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.CreateCharacter(ctx, c); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCharacterCreated, "character_id", c.ID, "username", c.Username, "class", c.ClassID)
	s.publish(ctx, event.NewCharacterCreatedEvent(c))
	return c, nil
}

// ImportCharacter stores a character document of any known schema version as
// a new character. The imported character always receives a fresh id and no
// active boss, since bosses are not part of the document.
func (s *service) ImportCharacter(ctx context.Context, doc []byte) (*domain.Character, error) {
	c, err := snapshot.Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	legacyID := c.ID
	c.Username = strings.TrimSpace(c.Username)
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		c.Name = c.Username
	}
	if err := validateNames(c.Name, c.Username); err != nil {
		return nil, err
	}
	if err := class.Validate(c.ClassID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	c.ID = uuid.NewString()
	c.ActiveBossID = ""
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if err := s.repo.CreateCharacter(ctx, c); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCharacterImported, "character_id", c.ID, "legacy_id", legacyID, "total_xp", c.TotalXP)
	s.publish(ctx, event.NewCharacterCreatedEvent(c))
	return c, nil
}

// GetCharacter returns a character, served from cache when possible
func (s *service) GetCharacter(ctx context.Context, id string) (*domain.Character, error) {
	if c, ok := s.cache.Get(id); ok {
		return c, nil
	}
	gen := s.cache.Generation()
	c, err := s.repo.GetCharacter(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Fill(c, gen)
	return c, nil
}

// Quests lists the special quest catalog
func (s *service) Quests() []domain.SpecialQuest {
	return s.quests.All()
}

func (s *service) Invalidate(characterID string) {
	s.cache.Invalidate(characterID)
}

func (s *service) today() domain.Date {
	return domain.DateOf(s.now(), s.loc)
}

func (s *service) publish(ctx context.Context, events ...event.Event) {
	if s.publisher == nil {
		return
	}
	for _, e := range events {
		s.publisher.PublishWithRetry(ctx, e)
	}
}

// commit commits tx and drops the cached character. The lock is released
// inside Commit, so the next read reloads rather than trusting this snapshot.
func (s *service) commit(ctx context.Context, tx repository.CharacterTx, c *domain.Character) error {
	err := tx.Commit(ctx)
	s.cache.Invalidate(c.ID)
	if err != nil {
		return fmt.Errorf("failed to commit character %s: %w", c.ID, err)
	}
	return nil
}

func validateNames(name, username string) error {
	if username == "" || utf8.RuneCountInString(username) > domain.MaxUsernameLength {
		return fmt.Errorf("%w: username must be 1-%d characters", domain.ErrInvalidInput, domain.MaxUsernameLength)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", domain.ErrInvalidInput, domain.MaxNameLength)
	}
	return nil
}

// requireProof trims proof and rejects it when nothing is left
func requireProof(proof string) (string, error) {
	proof = strings.TrimSpace(proof)
	if proof == "" {
		return "", domain.ErrProofRequired
	}
	return proof, nil
}

var _ boss.CacheInvalidator = (Service)(nil)
