package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/repository"
	"github.com/osse101/StudyQuest_Go/internal/snapshot"
)

// CharacterRepository implements repository.Character for PostgreSQL.
// Characters are stored as versioned JSONB documents next to the few
// columns that need indexing.
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// CreateCharacter inserts a new character
func (r *CharacterRepository) CreateCharacter(ctx context.Context, c *domain.Character) error {
	id, err := parseCharacterUUID(c.ID)
	if err != nil {
		return err
	}
	doc, err := snapshot.Encode(c)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeCharacter, err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO characters (id, username, total_xp, schema_version, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, c.Username, c.TotalXP, snapshot.CurrentSchemaVersion, doc, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, c.Username)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertCharacter, err)
	}
	return nil
}

// GetCharacter returns a character by id
func (r *CharacterRepository) GetCharacter(ctx context.Context, id string) (*domain.Character, error) {
	characterUUID, err := parseCharacterUUID(id)
	if err != nil {
		return nil, err
	}
	return getCharacter(ctx, r.db, `SELECT `+characterColumns+` FROM characters WHERE id = $1`, characterUUID)
}

// GetCharacterByUsername matches usernames case-insensitively
func (r *CharacterRepository) GetCharacterByUsername(ctx context.Context, username string) (*domain.Character, error) {
	return getCharacter(ctx, r.db, `SELECT `+characterColumns+` FROM characters WHERE lower(username) = lower($1)`, username)
}

// TopCharacters returns characters ordered by total XP, oldest first on ties
func (r *CharacterRepository) TopCharacters(ctx context.Context, limit int) ([]domain.Character, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+characterColumns+` FROM characters ORDER BY total_xp DESC, created_at ASC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTopCharacter, err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Character, error) {
		var doc []byte
		if err := row.Scan(&doc); err != nil {
			return domain.Character{}, err
		}
		c, err := snapshot.Decode(doc)
		if err != nil {
			return domain.Character{}, err
		}
		return *c, nil
	})
}

// ListBosses returns the live roster in creation order
func (r *CharacterRepository) ListBosses(ctx context.Context, characterID string) ([]domain.UserBoss, error) {
	ownerID, err := parseCharacterUUID(characterID)
	if err != nil {
		return nil, err
	}
	return listBosses(ctx, r.db, ownerID)
}

// ListActivityLogs returns logs with local_date in [from, to], oldest first
func (r *CharacterRepository) ListActivityLogs(ctx context.Context, characterID string, from, to domain.Date) ([]domain.ActivityLog, error) {
	id, err := parseCharacterUUID(characterID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+logColumns+` FROM activity_logs
		WHERE character_id = $1 AND local_date BETWEEN $2 AND $3
		ORDER BY logged_at, id`,
		id, from.Time(), to.Time())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLogs, err)
	}
	return pgx.CollectRows(rows, scanActivityLog)
}

// BeginCharacterTx starts a transaction and locks the character row until it ends
func (r *CharacterRepository) BeginCharacterTx(ctx context.Context, characterID string) (repository.CharacterTx, error) {
	id, err := parseCharacterUUID(characterID)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}

	var locked int
	err = tx.QueryRow(ctx, `SELECT 1 FROM characters WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		SafeRollback(ctx, tx)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockCharacter, err)
	}

	return &characterTx{tx: tx, id: id}, nil
}

var _ repository.Character = (*CharacterRepository)(nil)

// touch returns the updated_at value written with a character document
func touch(c *domain.Character) time.Time {
	if c.UpdatedAt.IsZero() {
		return time.Now().UTC()
	}
	return c.UpdatedAt
}
