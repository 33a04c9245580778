package sqlbackend_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/braid-db/braid/backend"
	"github.com/braid-db/braid/backendtest"
	"github.com/braid-db/braid/errs"
	"github.com/braid-db/braid/objdb"
	"github.com/braid-db/braid/objkind"
	"github.com/braid-db/braid/sqlbackend"
)

// requireDSN skips the test unless BRAID_TEST_POSTGRES_DSN points at a
// live, disposable Postgres instance — these tests create and never drop
// a schema, so the DSN should point at a throwaway database.
func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("BRAID_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("BRAID_TEST_POSTGRES_DSN not set, skipping sqlbackend integration test")
	}
	return dsn
}

// openShared opens the backend against the shared test schema, tolerating
// BackendAlreadyInitialized: every test in this package targets the same
// throwaway database, so only the first Open call in a run actually
// creates the schema and every later call finds it already there.
func openShared(t *testing.T, dsn string) *sqlbackend.Backend {
	t.Helper()
	b, err := sqlbackend.Open(context.Background(), dsn, nil)
	if err != nil {
		var typed *errs.Error
		if errors.As(err, &typed) && typed.Kind == errs.BackendAlreadyInitialized {
			return b
		}
		require.NoError(t, err)
	}
	return b
}

func TestConformance(t *testing.T) {
	dsn := requireDSN(t)
	b := openShared(t, dsn)
	defer b.Close()
	backendtest.Run(t, b)
}

func TestOpenBootstrapsSentinels(t *testing.T) {
	dsn := requireDSN(t)
	ctx := context.Background()
	b := openShared(t, dsn)
	defer b.Close()

	reg, err := b.ReadRegister(ctx, objdb.EmptyRegisterOID)
	require.NoError(t, err)
	require.Equal(t, 0, reg.Len())

	commit, err := b.ReadCommit(ctx, objdb.RootCommitOID)
	require.NoError(t, err)
	require.Equal(t, objdb.EmptyRegisterOID, commit.Register)
}

// TestReopenReportsAlreadyInitialized doesn't assume it runs first: after
// its own first Open call the schema definitely exists, whether that call
// created it or found it already there from an earlier test, so the
// second call must report BackendAlreadyInitialized either way.
func TestReopenReportsAlreadyInitialized(t *testing.T) {
	dsn := requireDSN(t)
	ctx := context.Background()

	b1 := openShared(t, dsn)
	defer b1.Close()

	b2, err := sqlbackend.Open(ctx, dsn, nil)
	require.NotNil(t, b2)
	defer b2.Close()
	require.Error(t, err)

	var typed *errs.Error
	require.True(t, errors.As(err, &typed))
	require.Equal(t, errs.BackendAlreadyInitialized, typed.Kind)
}

func TestWriteRegisterEntryRoundTrip(t *testing.T) {
	dsn := requireDSN(t)
	ctx := context.Background()
	b := openShared(t, dsn)
	defer b.Close()

	contentOID, err := b.WriteContent(ctx, []byte("payload"))
	require.NoError(t, err)

	key, err := objdb.NewRegisterEntryKey("file")
	require.NoError(t, err)
	reg := objdb.NewRegister()
	reg.Set(key, objdb.RegisterEntry{Kind: objkind.Content, Target: contentOID})

	oid, err := b.WriteRegister(ctx, reg)
	require.NoError(t, err)

	got, err := b.ReadRegister(ctx, oid)
	require.NoError(t, err)
	entry, ok := got.Get(key)
	require.True(t, ok)
	require.Equal(t, contentOID, entry.Target)
}

func TestTransactionRollsBackOnError(t *testing.T) {
	dsn := requireDSN(t)
	ctx := context.Background()
	b := openShared(t, dsn)
	defer b.Close()

	wantErr := errors.New("boom")
	var contentOID objdb.OID
	txErr := b.Transaction(ctx, func(ctx context.Context, tx backend.Backend) error {
		oid, err := tx.WriteContent(ctx, []byte("rolled back"))
		require.NoError(t, err)
		contentOID = oid
		return wantErr
	})
	require.ErrorIs(t, txErr, wantErr)

	ok, err := b.Exists(ctx, backend.RefContent, contentOID)
	require.NoError(t, err)
	require.False(t, ok)
}
