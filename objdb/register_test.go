package objdb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/braid-db/braid/objkind"
)

func TestRegisterRoundTrip(t *testing.T) {
	r := NewRegister()
	keyA, err := NewRegisterEntryKey("alpha")
	require.NoError(t, err)
	keyB, err := NewRegisterEntryKey("beta")
	require.NoError(t, err)

	r.Set(keyB, RegisterEntry{Kind: objkind.Content, Target: EmptyRegisterOID})
	r.Set(keyA, RegisterEntry{Kind: objkind.SubRegister, Target: EmptySaveRegisterOID})

	oid, buf, err := r.Encode()
	require.NoError(t, err)
	require.NotEqual(t, ZeroOID, oid)

	got, err := DecodeRegister(buf)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())

	entries := got.Entries()
	require.Equal(t, keyA, entries[0].Key)
	require.Equal(t, keyB, entries[1].Key)

	roundOID, _, err := got.Encode()
	require.NoError(t, err)
	require.Equal(t, oid, roundOID)
}

func TestRegisterEmptyMatchesSentinel(t *testing.T) {
	oid, _, err := NewRegister().Encode()
	require.NoError(t, err)
	require.Equal(t, EmptyRegisterOID, oid)
}

func TestDecodeRegisterWrongKind(t *testing.T) {
	sr := NewSaveRegister()
	_, buf, err := sr.Encode()
	require.NoError(t, err)

	_, err = DecodeRegister(buf)
	require.Error(t, err)
}
