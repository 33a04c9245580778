package objdb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveRegisterRoundTrip(t *testing.T) {
	sr := NewSaveRegister()
	keyA, err := NewSaveEntryKey("dir/file-a")
	require.NoError(t, err)
	keyB, err := NewSaveEntryKey("file-b")
	require.NoError(t, err)

	sr.Set(keyB, RootCommitOID)
	sr.Set(keyA, EmptyRegisterOID)

	oid, buf, err := sr.Encode()
	require.NoError(t, err)

	got, err := DecodeSaveRegister(buf)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())

	entries := got.Entries()
	require.Equal(t, keyA, entries[0].Key)
	require.Equal(t, keyB, entries[1].Key)

	roundOID, _, err := got.Encode()
	require.NoError(t, err)
	require.Equal(t, oid, roundOID)
}

func TestSaveRegisterEmptyMatchesSentinel(t *testing.T) {
	oid, _, err := NewSaveRegister().Encode()
	require.NoError(t, err)
	require.Equal(t, EmptySaveRegisterOID, oid)
}

func TestSaveEntryKeyAllowsSlash(t *testing.T) {
	_, err := NewSaveEntryKey("a/b/c")
	require.NoError(t, err)
}

func TestRegisterEntryKeyRejectsSlash(t *testing.T) {
	_, err := NewRegisterEntryKey("a/b")
	require.Error(t, err)
}
