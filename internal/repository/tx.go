package repository

import (
	"context"
	"errors"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/logger"
)

// Tx is the commit/rollback half of every store transaction
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback is deferred right after a transaction begins. Once the
// transaction has committed the rollback reports a closed tx, which is expected.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || isTxClosed(err) {
		return
	}
	logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
}

// pgx and the memory store report a closed tx with the same message
func isTxClosed(err error) bool {
	return errors.Is(err, domain.ErrTxClosed) || err.Error() == domain.ErrMsgTxClosed
}

const LogMsgRollbackFailed = "Failed to rollback transaction"
