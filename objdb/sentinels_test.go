package objdb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These hex strings are the fixed sentinel OIDs every conforming
// implementation of this object model must reproduce, independent of
// language or codec implementation.
const (
	wantEmptyRegisterOID     = "f9e6bb6e8ebecfff16249b27b55e406353d4f0a1743f50f696ee8b373cd3d38d"
	wantEmptySaveRegisterOID = "aa6c583a340af5c2b6e0e8fca11421b7cf078c8090acb2e53c408741df67b0c1"
	wantRootCommitOID        = "0c2e02b05b4cf25fbb24b60e6a37ea4513528398c6fd18e5b19ee525739f8ad9"
)

func TestSentinelOIDs(t *testing.T) {
	require.Equal(t, wantEmptyRegisterOID, EmptyRegisterOID.String())
	require.Equal(t, wantEmptySaveRegisterOID, EmptySaveRegisterOID.String())
	require.Equal(t, wantRootCommitOID, RootCommitOID.String())
}

func TestRootCommitFields(t *testing.T) {
	require.Equal(t, EmptyRegisterOID, RootCommit.Register)
	require.Equal(t, EmptySaveRegisterOID, RootCommit.Saves)
	require.False(t, RootCommit.HasParent)
	require.False(t, RootCommit.HasMerge)
	require.False(t, RootCommit.HasRebase)
	require.Equal(t, "", RootCommit.Committer)
	require.Equal(t, "", RootCommit.Summary)
	require.Equal(t, "", RootCommit.Body)
}
