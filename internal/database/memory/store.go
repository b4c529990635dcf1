// Package memory provides an in-process implementation of repository.Character.
// It backs the unit tests of the service packages and STORE_BACKEND=memory.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/osse101/StudyQuest_Go/internal/concurrency"
	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/repository"
	"github.com/osse101/StudyQuest_Go/internal/snapshot"
)

// Store keeps encoded character documents so every read returns an independent copy
type Store struct {
	mu         sync.RWMutex
	locks      *concurrency.LockManager
	characters map[string][]byte
	usernames  map[string]string
	bosses     map[string]domain.UserBoss
	bossOrder  map[string][]string
	logs       map[string][]domain.ActivityLog
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		locks:      concurrency.NewLockManager(),
		characters: make(map[string][]byte),
		usernames:  make(map[string]string),
		bosses:     make(map[string]domain.UserBoss),
		bossOrder:  make(map[string][]string),
		logs:       make(map[string][]domain.ActivityLog),
	}
}

func usernameKey(username string) string {
	return strings.ToLower(username)
}

// CreateCharacter inserts a new character
func (s *Store) CreateCharacter(ctx context.Context, c *domain.Character) error {
	doc, err := snapshot.Encode(c)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.usernames[usernameKey(c.Username)]; ok {
		return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, c.Username)
	}
	if _, ok := s.characters[c.ID]; ok {
		return fmt.Errorf("%w: duplicate character id", domain.ErrInvalidInput)
	}
	s.characters[c.ID] = doc
	s.usernames[usernameKey(c.Username)] = c.ID
	return nil
}

// GetCharacter returns a decoded copy of the committed character
func (s *Store) GetCharacter(ctx context.Context, id string) (*domain.Character, error) {
	s.mu.RLock()
	doc, ok := s.characters[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}
	return snapshot.Decode(doc)
}

// GetCharacterByUsername matches usernames case-insensitively
func (s *Store) GetCharacterByUsername(ctx context.Context, username string) (*domain.Character, error) {
	s.mu.RLock()
	id, ok := s.usernames[usernameKey(username)]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}
	return s.GetCharacter(ctx, id)
}

// TopCharacters returns characters ordered by total XP, oldest first on ties
func (s *Store) TopCharacters(ctx context.Context, limit int) ([]domain.Character, error) {
	s.mu.RLock()
	docs := make([][]byte, 0, len(s.characters))
	for _, doc := range s.characters {
		docs = append(docs, doc)
	}
	s.mu.RUnlock()

	out := make([]domain.Character, 0, len(docs))
	for _, doc := range docs {
		c, err := snapshot.Decode(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	slices.SortFunc(out, func(a, b domain.Character) int {
		if a.TotalXP != b.TotalXP {
			if a.TotalXP > b.TotalXP {
				return -1
			}
			return 1
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ListBosses returns the live roster in creation order
func (s *Store) ListBosses(ctx context.Context, characterID string) ([]domain.UserBoss, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.liveBossesLocked(characterID, nil), nil
}

// ListActivityLogs returns logs with LocalDate in [from, to], oldest first
func (s *Store) ListActivityLogs(ctx context.Context, characterID string, from, to domain.Date) ([]domain.ActivityLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.ActivityLog
	for _, l := range s.logs[characterID] {
		if l.LocalDate.Before(from) || to.Before(l.LocalDate) {
			continue
		}
		l.Tags = slices.Clone(l.Tags)
		out = append(out, l)
	}
	return out, nil
}

// BeginCharacterTx takes the character's lock. Writes are buffered until Commit.
func (s *Store) BeginCharacterTx(ctx context.Context, characterID string) (repository.CharacterTx, error) {
	if !s.exists(characterID) {
		return nil, domain.ErrCharacterNotFound
	}
	release, err := s.locks.Acquire(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock character: %w", err)
	}
	return &tx{
		store:       s,
		characterID: characterID,
		release:     release,
		bosses:      make(map[string]domain.UserBoss),
	}, nil
}

func (s *Store) exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.characters[id]
	return ok
}

// liveBossesLocked merges committed bosses with pending tx writes. Callers hold s.mu.
func (s *Store) liveBossesLocked(characterID string, pending *tx) []domain.UserBoss {
	out := []domain.UserBoss{}
	ids := s.bossOrder[characterID]
	if pending != nil {
		ids = append(slices.Clone(ids), pending.newBossIDs...)
	}
	for _, id := range ids {
		b, ok := s.bosses[id]
		if pending != nil {
			if staged, found := pending.bosses[id]; found {
				b, ok = staged, true
			}
		}
		if !ok || b.Removed {
			continue
		}
		b.Loot = slices.Clone(b.Loot)
		out = append(out, b)
	}
	return out
}

var _ repository.Character = (*Store)(nil)
