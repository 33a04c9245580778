package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsToFS(t *testing.T) {
	t.Setenv("BRAID_BACKEND", "")
	t.Setenv("BRAID_FS_ROOT", "")
	t.Setenv("BRAID_POSTGRES_DSN", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendFS, cfg.Backend)
	require.Equal(t, "./braid-store", cfg.FSRoot)
}

func TestLoadSQLRequiresDSN(t *testing.T) {
	t.Setenv("BRAID_BACKEND", "sql")
	t.Setenv("BRAID_POSTGRES_DSN", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadSQLWithDSN(t *testing.T) {
	t.Setenv("BRAID_BACKEND", "sql")
	t.Setenv("BRAID_POSTGRES_DSN", "postgres://localhost/braid")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendSQL, cfg.Backend)
	require.Equal(t, "postgres://localhost/braid", cfg.PostgresDSN)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("BRAID_BACKEND", "carrier-pigeon")

	_, err := Load()
	require.Error(t, err)
}
