package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/logger"
	"github.com/osse101/StudyQuest_Go/internal/snapshot"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// ---- Common Helper Functions ----

// parseCharacterUUID parses a character ID. Malformed ids cannot exist in the
// table, so they are reported as not found.
func parseCharacterUUID(characterID string) (uuid.UUID, error) {
	u, err := uuid.Parse(characterID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %v", domain.ErrCharacterNotFound, ErrMsgInvalidCharacterID, err)
	}
	return u, nil
}

func parseBossUUID(bossID string) (uuid.UUID, error) {
	u, err := uuid.Parse(bossID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %v", domain.ErrBossNotFound, ErrMsgInvalidBossID, err)
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// ---- End Common Helper Functions ----

const characterColumns = `doc`

// getCharacter reads and decodes one character document
func getCharacter(ctx context.Context, q querier, query string, args ...any) (*domain.Character, error) {
	var doc []byte
	if err := q.QueryRow(ctx, query, args...).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCharacter, err)
	}
	return snapshot.Decode(doc)
}

const bossColumns = `id, owner_id, name, max_hp, current_hp, defeated, defeated_at, xp_reward, weakness_stat, loot, removed, created_at`

func scanBoss(row pgx.CollectableRow) (domain.UserBoss, error) {
	var (
		b        domain.UserBoss
		id       uuid.UUID
		ownerID  uuid.UUID
		weakness string
	)
	err := row.Scan(&id, &ownerID, &b.Name, &b.MaxHP, &b.CurrentHP, &b.Defeated, &b.DefeatedAt,
		&b.XPReward, &weakness, &b.Loot, &b.Removed, &b.CreatedAt)
	if err != nil {
		return domain.UserBoss{}, fmt.Errorf("%s: %w", ErrMsgFailedToScanBossRow, err)
	}
	b.ID = id.String()
	b.OwnerID = ownerID.String()
	b.WeaknessStat = domain.Stat(weakness)
	if b.Loot == nil {
		b.Loot = []string{}
	}
	return b, nil
}

func listBosses(ctx context.Context, q querier, ownerID uuid.UUID) ([]domain.UserBoss, error) {
	rows, err := q.Query(ctx,
		`SELECT `+bossColumns+` FROM user_bosses WHERE owner_id = $1 AND NOT removed ORDER BY created_at, id`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryBosses, err)
	}
	bosses, err := pgx.CollectRows(rows, scanBoss)
	if err != nil {
		return nil, err
	}
	return bosses, nil
}

const logColumns = `id, character_id, activity_id, logged_at, local_date, minutes, proof_url, tags, xp_earned`

func scanActivityLog(row pgx.CollectableRow) (domain.ActivityLog, error) {
	var (
		l           domain.ActivityLog
		id          uuid.UUID
		characterID uuid.UUID
		localDate   time.Time
	)
	err := row.Scan(&id, &characterID, &l.ActivityID, &l.LoggedAt, &localDate, &l.Minutes,
		&l.ProofURL, &l.Tags, &l.XPEarned)
	if err != nil {
		return domain.ActivityLog{}, fmt.Errorf("%s: %w", ErrMsgFailedToScanLogRow, err)
	}
	l.ID = id.String()
	l.CharacterID = characterID.String()
	l.LocalDate = domain.DateOf(localDate, time.UTC)
	return l, nil
}
