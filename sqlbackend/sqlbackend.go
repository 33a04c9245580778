// Package sqlbackend implements the object database's transactional SQL
// storage engine on PostgreSQL: the content/register polymorphic pair
// from §4.I, propagated by a row-level trigger, and the save/commit pair
// behind save_parent, with referential integrity delegated entirely to
// foreign keys.
package sqlbackend

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/braid-db/braid/backend"
	"github.com/braid-db/braid/errs"
	"github.com/braid-db/braid/objdb"
)

// duplicateSchemaSQLState is the Postgres SQLSTATE returned by
// CREATE SCHEMA when the schema already exists.
const duplicateSchemaSQLState = "42P06"

// querier is the subset of *pgxpool.Pool and pgx.Tx that reads and
// writes need; it lets Backend run identically against the pool or
// against an open transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Backend stores objects in a PostgreSQL database under the `braid`
// schema. Referential validation is delegated to foreign keys; this
// package performs no existence pre-checks of its own.
type Backend struct {
	pool   *pgxpool.Pool
	db     querier
	logger *slog.Logger
}

var _ backend.Backend = (*Backend)(nil)

// Open connects to dsn, creates the schema and bootstraps the sentinel
// objects if this is a fresh database. If the schema already exists,
// Open still returns a usable *Backend, paired with a
// *errs.Error{Kind: errs.BackendAlreadyInitialized} the caller may
// safely ignore — it signals "nothing to do", not failure.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	b := &Backend{pool: pool, db: pool, logger: logger}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == duplicateSchemaSQLState {
			logger.Debug("sqlbackend schema already exists", "schema", schemaName)
			return b, errs.AlreadyInitialized()
		}
		pool.Close()
		return nil, errs.Wrap(err)
	}

	if err := b.bootstrap(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	logger.Debug("sqlbackend bootstrapped", "schema", schemaName)
	return b, nil
}

// Close releases the underlying connection pool.
func (b *Backend) Close() {
	b.pool.Close()
}

func (b *Backend) bootstrap(ctx context.Context) error {
	if _, err := b.WriteRegister(ctx, objdb.NewRegister()); err != nil {
		return err
	}
	if _, err := b.WriteSaveRegister(ctx, objdb.NewSaveRegister()); err != nil {
		return err
	}
	if _, err := b.WriteCommit(ctx, objdb.RootCommit); err != nil {
		return err
	}
	return nil
}
