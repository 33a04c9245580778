package fsbackend_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/braid-db/braid/backend"
	"github.com/braid-db/braid/backendtest"
	"github.com/braid-db/braid/fsbackend"
	"github.com/braid-db/braid/objdb"
	"github.com/braid-db/braid/objkind"
)

func TestConformance(t *testing.T) {
	backendtest.Run(t, openTestBackend(t))
}

func openTestBackend(t *testing.T) *fsbackend.Backend {
	t.Helper()
	root := filepath.Join(t.TempDir(), "store")
	b, err := fsbackend.Open(root, nil)
	require.NoError(t, err)
	return b
}

func TestOpenBootstrapsSentinels(t *testing.T) {
	ctx := context.Background()
	b := openTestBackend(t)

	reg, err := b.ReadRegister(ctx, objdb.EmptyRegisterOID)
	require.NoError(t, err)
	require.Equal(t, 0, reg.Len())

	sr, err := b.ReadSaveRegister(ctx, objdb.EmptySaveRegisterOID)
	require.NoError(t, err)
	require.Equal(t, 0, sr.Len())

	commit, err := b.ReadCommit(ctx, objdb.RootCommitOID)
	require.NoError(t, err)
	require.Equal(t, objdb.EmptyRegisterOID, commit.Register)
}

func TestWriteContentThenReference(t *testing.T) {
	ctx := context.Background()
	b := openTestBackend(t)

	contentOID, err := b.WriteContent(ctx, []byte("hello, braid"))
	require.NoError(t, err)

	key, err := objdb.NewRegisterEntryKey("hello.txt")
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

	data, err := b.ReadContent(ctx, contentOID)
	require.NoError(t, err)
	require.Equal(t, "hello, braid", string(data))
}

func TestWriteRegisterWithMissingContentFails(t *testing.T) {
	ctx := context.Background()
	b := openTestBackend(t)

	key, err := objdb.NewRegisterEntryKey("ghost")
	require.NoError(t, err)
	reg := objdb.NewRegister()
	reg.Set(key, objdb.RegisterEntry{Kind: objkind.Content, Target: objdb.Hash([]byte("never written"))})

	_, err = b.WriteRegister(ctx, reg)
	require.Error(t, err)
}

func TestWriteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	b := openTestBackend(t)

	oid1, err := b.WriteContent(ctx, []byte("same bytes"))
	require.NoError(t, err)
	oid2, err := b.WriteContent(ctx, []byte("same bytes"))
	require.NoError(t, err)
	require.Equal(t, oid1, oid2)
}

func TestExistsWrongKind(t *testing.T) {
	ctx := context.Background()
	b := openTestBackend(t)

	ok, err := b.Exists(ctx, backend.RefCommit, objdb.EmptyRegisterOID)
	require.Error(t, err)
	require.False(t, ok)
}

func TestListFindsAllBootstrapObjects(t *testing.T) {
	b := openTestBackend(t)
	it, err := b.List()
	require.NoError(t, err)

	var found int
	for it.Next() {
		found++
	}
	require.NoError(t, it.Err())
	require.GreaterOrEqual(t, found, 3)
}
