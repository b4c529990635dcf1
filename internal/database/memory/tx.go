package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/repository"
	"github.com/osse101/StudyQuest_Go/internal/snapshot"
)

var errTxClosed = domain.ErrTxClosed

// tx buffers the writes of one locked character
type tx struct {
	store       *Store
	characterID string
	release     func()
	closed      bool

	character  *domain.Character
	logs       []domain.ActivityLog
	bosses     map[string]domain.UserBoss
	newBossIDs []string
}

func (t *tx) Commit(ctx context.Context) error {
	if t.closed {
		return errTxClosed
	}
	defer t.close()

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.character != nil {
		doc, err := snapshot.Encode(t.character)
		if err != nil {
			return err
		}
		old, err := snapshot.Decode(s.characters[t.characterID])
		if err != nil {
			return err
		}
		oldKey, newKey := usernameKey(old.Username), usernameKey(t.character.Username)
		if oldKey != newKey {
			if _, taken := s.usernames[newKey]; taken {
				return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, t.character.Username)
			}
			delete(s.usernames, oldKey)
			s.usernames[newKey] = t.characterID
		}
		s.characters[t.characterID] = doc
	}

	s.logs[t.characterID] = append(s.logs[t.characterID], t.logs...)
	for id, b := range t.bosses {
		s.bosses[id] = b
	}
	s.bossOrder[t.characterID] = append(s.bossOrder[t.characterID], t.newBossIDs...)
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.close()
	return nil
}

func (t *tx) close() {
	t.closed = true
	t.release()
}

func (t *tx) GetCharacter(ctx context.Context) (*domain.Character, error) {
	if t.closed {
		return nil, errTxClosed
	}
	if t.character != nil {
		return t.character.Clone(), nil
	}
	return t.store.GetCharacter(ctx, t.characterID)
}

func (t *tx) UpdateCharacter(ctx context.Context, c *domain.Character) error {
	if t.closed {
		return errTxClosed
	}
	if c.ID != t.characterID {
		return fmt.Errorf("%w: character %s is not locked by this transaction", domain.ErrInvalidInput, c.ID)
	}
	t.character = c.Clone()
	return nil
}

func (t *tx) AppendActivityLog(ctx context.Context, log *domain.ActivityLog) error {
	if t.closed {
		return errTxClosed
	}
	entry := *log
	entry.Tags = slices.Clone(log.Tags)
	t.logs = append(t.logs, entry)
	return nil
}

func (t *tx) SumXPForDate(ctx context.Context, date domain.Date) (int, error) {
	if t.closed {
		return 0, errTxClosed
	}
	t.store.mu.RLock()
	committed := t.store.logs[t.characterID]
	total := 0
	for _, l := range committed {
		if l.LocalDate == date {
			total += l.XPEarned
		}
	}
	t.store.mu.RUnlock()

	for _, l := range t.logs {
		if l.LocalDate == date {
			total += l.XPEarned
		}
	}
	return total, nil
}

func (t *tx) GetBoss(ctx context.Context, bossID string) (*domain.UserBoss, error) {
	if t.closed {
		return nil, errTxClosed
	}
	b, ok := t.bosses[bossID]
	if !ok {
		t.store.mu.RLock()
		b, ok = t.store.bosses[bossID]
		t.store.mu.RUnlock()
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBossNotFound, bossID)
	}
	b.Loot = slices.Clone(b.Loot)
	return &b, nil
}

func (t *tx) ListLiveBosses(ctx context.Context) ([]domain.UserBoss, error) {
	if t.closed {
		return nil, errTxClosed
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return t.store.liveBossesLocked(t.characterID, t), nil
}

func (t *tx) InsertBoss(ctx context.Context, b *domain.UserBoss) error {
	if t.closed {
		return errTxClosed
	}
	if _, ok := t.bosses[b.ID]; ok {
		return fmt.Errorf("%w: duplicate boss id", domain.ErrInvalidInput)
	}
	t.store.mu.RLock()
	_, exists := t.store.bosses[b.ID]
	t.store.mu.RUnlock()
	if exists {
		return fmt.Errorf("%w: duplicate boss id", domain.ErrInvalidInput)
	}

	entry := *b
	entry.OwnerID = t.characterID
	entry.Loot = slices.Clone(b.Loot)
	t.bosses[b.ID] = entry
	t.newBossIDs = append(t.newBossIDs, b.ID)
	return nil
}

func (t *tx) UpdateBoss(ctx context.Context, b *domain.UserBoss) error {
	if t.closed {
		return errTxClosed
	}
	current, err := t.GetBoss(ctx, b.ID)
	if err != nil {
		return err
	}
	if current.OwnerID != t.characterID {
		return fmt.Errorf("%w: %s", domain.ErrBossNotFound, b.ID)
	}
	entry := *b
	entry.OwnerID = t.characterID
	entry.Loot = slices.Clone(b.Loot)
	t.bosses[b.ID] = entry
	return nil
}

var _ repository.CharacterTx = (*tx)(nil)
