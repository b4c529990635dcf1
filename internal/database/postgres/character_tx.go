package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/repository"
	"github.com/osse101/StudyQuest_Go/internal/snapshot"
)

// characterTx holds the row lock on one character for the life of a pgx.Tx
type characterTx struct {
	tx pgx.Tx
	id uuid.UUID
}

func (t *characterTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *characterTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *characterTx) GetCharacter(ctx context.Context) (*domain.Character, error) {
	return getCharacter(ctx, t.tx, `SELECT `+characterColumns+` FROM characters WHERE id = $1`, t.id)
}

func (t *characterTx) UpdateCharacter(ctx context.Context, c *domain.Character) error {
	doc, err := snapshot.Encode(c)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeCharacter, err)
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE characters
		SET username = $2, total_xp = $3, schema_version = $4, doc = $5, updated_at = $6
		WHERE id = $1`,
		t.id, c.Username, c.TotalXP, snapshot.CurrentSchemaVersion, doc, touch(c))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, c.Username)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCharacter, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

func (t *characterTx) AppendActivityLog(ctx context.Context, log *domain.ActivityLog) error {
	id, err := uuid.Parse(log.ID)
	if err != nil {
		return fmt.Errorf("%w: invalid log id %q", domain.ErrInvalidInput, log.ID)
	}
	tags := log.Tags
	if tags == nil {
		tags = []string{}
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO activity_logs (id, character_id, activity_id, logged_at, local_date, minutes, proof_url, tags, xp_earned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, t.id, log.ActivityID, log.LoggedAt, log.LocalDate.Time(), log.Minutes, log.ProofURL, tags, log.XPEarned)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAppendLog, err)
	}
	return nil
}

func (t *characterTx) SumXPForDate(ctx context.Context, date domain.Date) (int, error) {
	var total int64
	err := t.tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(xp_earned), 0) FROM activity_logs WHERE character_id = $1 AND local_date = $2`,
		t.id, date.Time()).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToSumDailyXP, err)
	}
	return int(total), nil
}

func (t *characterTx) GetBoss(ctx context.Context, bossID string) (*domain.UserBoss, error) {
	id, err := parseBossUUID(bossID)
	if err != nil {
		return nil, err
	}
	rows, err := t.tx.Query(ctx, `SELECT `+bossColumns+` FROM user_bosses WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetBoss, err)
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBoss)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrBossNotFound, bossID)
		}
		return nil, err
	}
	return &b, nil
}

func (t *characterTx) ListLiveBosses(ctx context.Context) ([]domain.UserBoss, error) {
	return listBosses(ctx, t.tx, t.id)
}

func (t *characterTx) InsertBoss(ctx context.Context, b *domain.UserBoss) error {
	id, err := uuid.Parse(b.ID)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidBossID)
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO user_bosses (`+bossColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		id, t.id, b.Name, b.MaxHP, b.CurrentHP, b.Defeated, b.DefeatedAt, b.XPReward,
		string(b.WeaknessStat), lootOf(b), b.Removed, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertBoss, err)
	}
	return nil
}

func (t *characterTx) UpdateBoss(ctx context.Context, b *domain.UserBoss) error {
	id, err := parseBossUUID(b.ID)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE user_bosses
		SET current_hp = $3, defeated = $4, defeated_at = $5, loot = $6, removed = $7
		WHERE id = $1 AND owner_id = $2`,
		id, t.id, b.CurrentHP, b.Defeated, b.DefeatedAt, lootOf(b), b.Removed)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBoss, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrBossNotFound, ErrMsgBossRowNotAffected)
	}
	return nil
}

func lootOf(b *domain.UserBoss) []string {
	if b.Loot == nil {
		return []string{}
	}
	return b.Loot
}

var _ repository.CharacterTx = (*characterTx)(nil)
