package sqlbackend

import (
	"context"

	"github.com/braid-db/braid/backend"
	"github.com/braid-db/braid/errs"
)

// Transaction runs fn against a Backend bound to a single Postgres
// transaction. Writes fn performs are visible to fn's own subsequent
// reads (same transaction, read-committed within it); the transaction
// commits only if fn returns nil, otherwise it rolls back and every
// write fn attempted is undone.
func (b *Backend) Transaction(ctx context.Context, fn func(ctx context.Context, tx backend.Backend) error) error {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err)
	}

	txBackend := &Backend{pool: b.pool, db: tx, logger: b.logger}
	if err := fn(ctx, txBackend); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Wrap(err)
	}
	return nil
}
