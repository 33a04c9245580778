// Package backendtest is a conformance suite run against every backend
// implementation, so fsbackend and sqlbackend are held to identical
// behavior for the shared contract in backend.Backend.
package backendtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/braid-db/braid/backend"
	"github.com/braid-db/braid/objdb"
	"github.com/braid-db/braid/objkind"
)

// Run exercises every invariant a conforming Backend must uphold. Call
// it from each backend's own test package, passing a fresh, already
// open-and-bootstrapped instance.
func Run(t *testing.T, b backend.Backend) {
	t.Helper()
	t.Run("SentinelsReadable", func(t *testing.T) { testSentinelsReadable(t, b) })
	t.Run("WriteIsIdempotent", func(t *testing.T) { testWriteIsIdempotent(t, b) })
	t.Run("RegisterRoundTrip", func(t *testing.T) { testRegisterRoundTrip(t, b) })
	t.Run("SaveRegisterRoundTrip", func(t *testing.T) { testSaveRegisterRoundTrip(t, b) })
	t.Run("SaveRoundTrip", func(t *testing.T) { testSaveRoundTrip(t, b) })
	t.Run("CommitRoundTrip", func(t *testing.T) { testCommitRoundTrip(t, b) })
	t.Run("MissingReferenceRejected", func(t *testing.T) { testMissingReferenceRejected(t, b) })
	t.Run("WrongKindReferenceRejected", func(t *testing.T) { testWrongKindReferenceRejected(t, b) })
}

func testSentinelsReadable(t *testing.T, b backend.Backend) {
	ctx := context.Background()

	reg, err := b.ReadRegister(ctx, objdb.EmptyRegisterOID)
	require.NoError(t, err)
	require.Equal(t, 0, reg.Len())

	sr, err := b.ReadSaveRegister(ctx, objdb.EmptySaveRegisterOID)
	require.NoError(t, err)
	require.Equal(t, 0, sr.Len())

	commit, err := b.ReadCommit(ctx, objdb.RootCommitOID)
	require.NoError(t, err)
	require.Equal(t, objdb.EmptyRegisterOID, commit.Register)
	require.Equal(t, objdb.EmptySaveRegisterOID, commit.Saves)
	require.False(t, commit.HasParent)
}

func testWriteIsIdempotent(t *testing.T, b backend.Backend) {
	ctx := context.Background()

	oid1, err := b.WriteContent(ctx, []byte("idempotence probe"))
	require.NoError(t, err)
	oid2, err := b.WriteContent(ctx, []byte("idempotence probe"))
	require.NoError(t, err)
	require.Equal(t, oid1, oid2)

	empty := objdb.NewRegister()
	regOID, err := b.WriteRegister(ctx, empty)
	require.NoError(t, err)
	require.Equal(t, objdb.EmptyRegisterOID, regOID)
}

func testRegisterRoundTrip(t *testing.T, b backend.Backend) {
	ctx := context.Background()

	contentOID, err := b.WriteContent(ctx, []byte("register round trip"))
	require.NoError(t, err)

	keyFoo, err := objdb.NewRegisterEntryKey("foo")
	require.NoError(t, err)
	keyBar, err := objdb.NewRegisterEntryKey("bar")
	require.NoError(t, err)

	reg := objdb.NewRegister()
	reg.Set(keyFoo, objdb.RegisterEntry{Kind: objkind.Content, Target: contentOID})
	reg.Set(keyBar, objdb.RegisterEntry{Kind: objkind.SubRegister, Target: objdb.EmptyRegisterOID})

	oid, err := b.WriteRegister(ctx, reg)
	require.NoError(t, err)

	got, err := b.ReadRegister(ctx, oid)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())

	fooEntry, ok := got.Get(keyFoo)
	require.True(t, ok)
	require.Equal(t, objkind.Content, fooEntry.Kind)
	require.Equal(t, contentOID, fooEntry.Target)

	barEntry, ok := got.Get(keyBar)
	require.True(t, ok)
	require.Equal(t, objkind.SubRegister, barEntry.Kind)
	require.Equal(t, objdb.EmptyRegisterOID, barEntry.Target)
}

func testSaveRegisterRoundTrip(t *testing.T, b backend.Backend) {
	ctx := context.Background()

	contentOID, err := b.WriteContent(ctx, []byte("save payload"))
	require.NoError(t, err)

	save := &objdb.Save{
		Date:       objdb.Epoch(),
		Kind:       objkind.Content,
		Content:    contentOID,
		ParentKind: objkind.ParentCommit,
		Parent:     objdb.RootCommitOID,
		Author:     "alfred@wayne.ent",
	}
	saveOID, err := b.WriteSave(ctx, save)
	require.NoError(t, err)

	key, err := objdb.NewSaveEntryKey("path/to/file")
	require.NoError(t, err)
	sr := objdb.NewSaveRegister()
	sr.Set(key, saveOID)

	oid, err := b.WriteSaveRegister(ctx, sr)
	require.NoError(t, err)

	got, err := b.ReadSaveRegister(ctx, oid)
	require.NoError(t, err)
	entryOID, ok := got.Get(key)
	require.True(t, ok)
	require.Equal(t, saveOID, entryOID)
}

func testSaveRoundTrip(t *testing.T, b backend.Backend) {
	ctx := context.Background()

	contentOID, err := b.WriteContent(ctx, []byte("another save payload"))
	require.NoError(t, err)

	save := &objdb.Save{
		Date:       objdb.Epoch(),
		Kind:       objkind.Executable,
		Content:    contentOID,
		ParentKind: objkind.ParentCommit,
		Parent:     objdb.RootCommitOID,
		Author:     "bruce@wayne.ent",
	}
	oid, err := b.WriteSave(ctx, save)
	require.NoError(t, err)

	got, err := b.ReadSave(ctx, oid)
	require.NoError(t, err)
	require.Equal(t, objkind.Executable, got.Kind)
	require.Equal(t, contentOID, got.Content)
	require.Equal(t, objkind.ParentCommit, got.ParentKind)
	require.Equal(t, objdb.RootCommitOID, got.Parent)
	require.Equal(t, "bruce@wayne.ent", got.Author)
}

func testCommitRoundTrip(t *testing.T, b backend.Backend) {
	ctx := context.Background()

	commit := &objdb.Commit{
		Register:  objdb.EmptyRegisterOID,
		Saves:     objdb.EmptySaveRegisterOID,
		Parent:    objdb.RootCommitOID,
		HasParent: true,
		Date:      objdb.Epoch(),
		Committer: "dick@wayne.ent",
		Summary:   "second commit",
		Body:      "body text",
	}
	oid, err := b.WriteCommit(ctx, commit)
	require.NoError(t, err)

	got, err := b.ReadCommit(ctx, oid)
	require.NoError(t, err)
	require.True(t, got.HasParent)
	require.Equal(t, objdb.RootCommitOID, got.Parent)
	require.Equal(t, "dick@wayne.ent", got.Committer)
	require.Equal(t, "second commit", got.Summary)
	require.Equal(t, "body text", got.Body)
}

func testMissingReferenceRejected(t *testing.T, b backend.Backend) {
	ctx := context.Background()

	ghost := objdb.Hash([]byte("never written, ever"))
	key, err := objdb.NewRegisterEntryKey("ghost")
	require.NoError(t, err)
	reg := objdb.NewRegister()
	reg.Set(key, objdb.RegisterEntry{Kind: objkind.Content, Target: ghost})

	_, err = b.WriteRegister(ctx, reg)
	require.Error(t, err)
}

func testWrongKindReferenceRejected(t *testing.T, b backend.Backend) {
	ctx := context.Background()

	commit := &objdb.Commit{
		// RootCommitOID is a Commit, not a Register: using it as the
		// register field must be rejected.
		Register: objdb.RootCommitOID,
		Saves:    objdb.EmptySaveRegisterOID,
		Date:     objdb.Epoch(),
	}
	_, err := b.WriteCommit(ctx, commit)
	require.Error(t, err)
}
