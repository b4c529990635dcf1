package repository

import (
	"context"

	"github.com/osse101/StudyQuest_Go/internal/domain"
)

// Character defines the data access interface for characters, their boss
// rosters and their activity history
type Character interface {
	// CreateCharacter inserts a new character. Returns domain.ErrUsernameTaken on a duplicate username.
	CreateCharacter(ctx context.Context, c *domain.Character) error
	// GetCharacter returns domain.ErrCharacterNotFound when the id is unknown
	GetCharacter(ctx context.Context, id string) (*domain.Character, error)
	GetCharacterByUsername(ctx context.Context, username string) (*domain.Character, error)

	// TopCharacters returns characters ordered by total XP descending
	TopCharacters(ctx context.Context, limit int) ([]domain.Character, error)

	// ListBosses returns the live (not removed) roster of a character
	ListBosses(ctx context.Context, characterID string) ([]domain.UserBoss, error)

	// ListActivityLogs returns logs whose local date is within [from, to], oldest first
	ListActivityLogs(ctx context.Context, characterID string, from, to domain.Date) ([]domain.ActivityLog, error)

	// BeginCharacterTx starts a transaction holding an exclusive lock on one character.
	// Returns domain.ErrCharacterNotFound when the id is unknown.
	BeginCharacterTx(ctx context.Context, characterID string) (CharacterTx, error)
}

// CharacterTx extends Tx with the reads and writes of one locked character.
// Nothing is visible to other readers until Commit.
type CharacterTx interface {
	Tx // Commit, Rollback

	// Character operations within transaction
	GetCharacter(ctx context.Context) (*domain.Character, error)
	UpdateCharacter(ctx context.Context, c *domain.Character) error

	// Activity log operations within transaction
	AppendActivityLog(ctx context.Context, log *domain.ActivityLog) error
	SumXPForDate(ctx context.Context, date domain.Date) (int, error)

	// Boss operations within transaction
	GetBoss(ctx context.Context, bossID string) (*domain.UserBoss, error)
	ListLiveBosses(ctx context.Context) ([]domain.UserBoss, error)
	InsertBoss(ctx context.Context, b *domain.UserBoss) error
	UpdateBoss(ctx context.Context, b *domain.UserBoss) error
}
