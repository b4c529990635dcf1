package boss

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/logger"
	"github.com/osse101/StudyQuest_Go/internal/repository"
)

// Service manages the boss roster of a character
type Service interface {
	AddUserBoss(ctx context.Context, characterID, name string, hp int, setActive bool) (*domain.UserBoss, error)
	DeleteUserBoss(ctx context.Context, characterID, bossID string) error
	SetActiveBossID(ctx context.Context, characterID, bossID string) error
	ListBosses(ctx context.Context, characterID string) ([]domain.UserBoss, error)
}

// CacheInvalidator drops cached copies of a character after a roster change
type CacheInvalidator interface {
	Invalidate(characterID string)
}

type service struct {
	repo     repository.Character
	resolver *Resolver
	cache    CacheInvalidator
	now      func() time.Time
}

// NewService creates a roster service. cache may be nil.
func NewService(repo repository.Character, resolver *Resolver, cache CacheInvalidator) Service {
	return &service{
		repo:     repo,
		resolver: resolver,
		cache:    cache,
		now:      time.Now,
	}
}

// AddUserBoss creates a boss for the character. HP below the minimum is raised to it.
func (s *service) AddUserBoss(ctx context.Context, characterID, name string, hp int, setActive bool) (*domain.UserBoss, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: boss name must be 1-%d characters", domain.ErrInvalidInput, domain.MaxNameLength)
	}
	if hp < domain.MinBossHP {
		hp = domain.MinBossHP
	}

	tx, err := s.repo.BeginCharacterTx(ctx, characterID)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	c, err := tx.GetCharacter(ctx)
	if err != nil {
		return nil, err
	}

	live, err := tx.ListLiveBosses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bosses: %w", err)
	}
	if len(live) >= domain.MaxUserBosses {
		return nil, fmt.Errorf("%w: %d of %d", domain.ErrBossCapacity, len(live), domain.MaxUserBosses)
	}

	b := &domain.UserBoss{
		ID:           uuid.NewString(),
		OwnerID:      characterID,
		Name:         name,
		MaxHP:        hp,
		CurrentHP:    hp,
		XPReward:     XPRewardFor(hp),
		WeaknessStat: s.resolver.RandomWeakness(),
		Loot:         []string{},
		CreatedAt:    s.now().UTC(),
	}
	if err := tx.InsertBoss(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to insert boss: %w", err)
	}

	if setActive {
		c.ActiveBossID = b.ID
		c.UpdatedAt = s.now().UTC()
		if err := tx.UpdateCharacter(ctx, c); err != nil {
			return nil, fmt.Errorf("failed to update character: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit boss creation: %w", err)
	}
	s.invalidate(characterID)

	log.Info("Boss created", "character_id", characterID, "boss_id", b.ID, "max_hp", hp, "weakness", b.WeaknessStat, "active", setActive)
	return b, nil
}

// DeleteUserBoss removes a live boss without rewards and clears the active pointer if needed
func (s *service) DeleteUserBoss(ctx context.Context, characterID, bossID string) error {
	tx, err := s.repo.BeginCharacterTx(ctx, characterID)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	c, err := tx.GetCharacter(ctx)
	if err != nil {
		return err
	}

	b, err := s.liveBoss(ctx, tx, characterID, bossID)
	if err != nil {
		return err
	}

	b.Removed = true
	if err := tx.UpdateBoss(ctx, b); err != nil {
		return fmt.Errorf("failed to update boss: %w", err)
	}

	if c.ActiveBossID == bossID {
		c.ActiveBossID = ""
		c.UpdatedAt = s.now().UTC()
		if err := tx.UpdateCharacter(ctx, c); err != nil {
			return fmt.Errorf("failed to update character: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit boss deletion: %w", err)
	}
	s.invalidate(characterID)

	logger.FromContext(ctx).Info("Boss deleted", "character_id", characterID, "boss_id", bossID)
	return nil
}

// SetActiveBossID points future damage at bossID. An empty id clears the target.
func (s *service) SetActiveBossID(ctx context.Context, characterID, bossID string) error {
	tx, err := s.repo.BeginCharacterTx(ctx, characterID)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	c, err := tx.GetCharacter(ctx)
	if err != nil {
		return err
	}

	if bossID != "" {
		if _, err := s.liveBoss(ctx, tx, characterID, bossID); err != nil {
			return err
		}
	}
	if c.ActiveBossID == bossID {
		return nil
	}

	c.ActiveBossID = bossID
	c.UpdatedAt = s.now().UTC()
	if err := tx.UpdateCharacter(ctx, c); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit active boss: %w", err)
	}
	s.invalidate(characterID)

	logger.FromContext(ctx).Info("Active boss set", "character_id", characterID, "boss_id", bossID)
	return nil
}

// ListBosses returns the live roster
func (s *service) ListBosses(ctx context.Context, characterID string) ([]domain.UserBoss, error) {
	if _, err := s.repo.GetCharacter(ctx, characterID); err != nil {
		return nil, err
	}
	return s.repo.ListBosses(ctx, characterID)
}

// liveBoss loads a boss owned by the character that is still on the roster
func (s *service) liveBoss(ctx context.Context, tx repository.CharacterTx, characterID, bossID string) (*domain.UserBoss, error) {
	b, err := tx.GetBoss(ctx, bossID)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != characterID || b.Removed || b.Defeated {
		return nil, fmt.Errorf("%w: %s", domain.ErrBossNotFound, bossID)
	}
	return b, nil
}

func (s *service) invalidate(characterID string) {
	if s.cache != nil {
		s.cache.Invalidate(characterID)
	}
}
