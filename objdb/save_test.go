package objdb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/braid-db/braid/objkind"
)

func TestSaveRoundTrip(t *testing.T) {
	s := &Save{
		Date:       Epoch(),
		Kind:       objkind.Content,
		Content:    EmptyRegisterOID,
		ParentKind: objkind.ParentCommit,
		Parent:     RootCommitOID,
		Author:     "bruce@wayne.ent",
	}

	oid, buf, err := s.Encode()
	require.NoError(t, err)

	got, err := DecodeSave(buf)
	require.NoError(t, err)

	require.True(t, s.Date.Equal(got.Date))
	require.Equal(t, s.Kind, got.Kind)
	require.Equal(t, s.Content, got.Content)
	require.Equal(t, s.ParentKind, got.ParentKind)
	require.Equal(t, s.Parent, got.Parent)
	require.Equal(t, s.Author, got.Author)

	roundOID, _, err := got.Encode()
	require.NoError(t, err)
	require.Equal(t, oid, roundOID)
}

func TestSaveAuthorLongerThanSQLColumnStillRoundTrips(t *testing.T) {
	s := &Save{
		Date:       Epoch(),
		Kind:       objkind.Executable,
		Content:    EmptyRegisterOID,
		ParentKind: objkind.ParentSave,
		Author:     strings.Repeat("a", 256),
	}
	_, buf, err := s.Encode()
	require.NoError(t, err)

	got, err := DecodeSave(buf)
	require.NoError(t, err)
	require.Equal(t, 256, len(got.Author))
}
