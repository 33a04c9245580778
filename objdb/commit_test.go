package objdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCommitRoundTrip(t *testing.T) {
	loc := time.FixedZone("", 1*3600+2*60+3)
	date := FromTime(time.Date(2022, 1, 5, 13, 0, 55, 0, loc))

	c := &Commit{
		Register:  EmptyRegisterOID,
		Saves:     EmptySaveRegisterOID,
		Date:      date,
		Committer: "bruce@wayne.ent",
		Summary:   "This is a summary",
		Body:      "This is a body\nwith multiple lines\nand a trailing newline\n",
	}

	oid, buf, err := c.Encode()
	require.NoError(t, err)

	got, err := DecodeCommit(buf)
	require.NoError(t, err)

	require.Equal(t, c.Register, got.Register)
	require.Equal(t, c.Saves, got.Saves)
	require.False(t, got.HasParent)
	require.False(t, got.HasMerge)
	require.False(t, got.HasRebase)
	require.True(t, c.Date.Equal(got.Date))
	require.Equal(t, c.Committer, got.Committer)
	require.Equal(t, c.Summary, got.Summary)
	require.Equal(t, c.Body, got.Body)

	roundOID, _, err := got.Encode()
	require.NoError(t, err)
	require.Equal(t, oid, roundOID)
}

func TestCommitWithParents(t *testing.T) {
	c := &Commit{
		Register:    EmptyRegisterOID,
		Saves:       EmptySaveRegisterOID,
		Parent:      RootCommitOID,
		HasParent:   true,
		MergeParent: RootCommitOID,
		HasMerge:    true,
		RebaseOf:    RootCommitOID,
		HasRebase:   true,
		Date:        Epoch(),
	}
	_, buf, err := c.Encode()
	require.NoError(t, err)

	got, err := DecodeCommit(buf)
	require.NoError(t, err)
	require.True(t, got.HasParent)
	require.True(t, got.HasMerge)
	require.True(t, got.HasRebase)
	require.Equal(t, RootCommitOID, got.Parent)
	require.Equal(t, RootCommitOID, got.MergeParent)
	require.Equal(t, RootCommitOID, got.RebaseOf)
}

func TestRootCommitOIDStable(t *testing.T) {
	oid, _, err := RootCommit.Encode()
	require.NoError(t, err)
	require.Equal(t, RootCommitOID, oid)
}
