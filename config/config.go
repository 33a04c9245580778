// Package config loads backend configuration from the process
// environment, BRAID_-prefixed, for both the filesystem and SQL engines.
package config

import (
	"fmt"
	"os"
)

// Backend selects which storage engine a braidctl invocation targets.
type Backend string

const (
	BackendFS  Backend = "fs"
	BackendSQL Backend = "sql"
)

// Config is the resolved set of knobs either backend needs to open.
type Config struct {
	// Backend picks the storage engine: "fs" or "sql".
	Backend Backend

	// FSRoot is the filesystem backend's root directory.
	FSRoot string

	// PostgresDSN is the SQL backend's connection string.
	PostgresDSN string
}

// Load reads BRAID_BACKEND, BRAID_FS_ROOT, and BRAID_POSTGRES_DSN from
// the environment, applying "fs" and "./braid-store" as defaults for the
// first two.
func Load() (*Config, error) {
	cfg := &Config{
		Backend: Backend(getEnvDefault("BRAID_BACKEND", string(BackendFS))),
		FSRoot:  getEnvDefault("BRAID_FS_ROOT", "./braid-store"),
	}
	cfg.PostgresDSN = os.Getenv("BRAID_POSTGRES_DSN")

	switch cfg.Backend {
	case BackendFS:
	case BackendSQL:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("config: BRAID_BACKEND=sql requires BRAID_POSTGRES_DSN")
		}
	default:
		return nil, fmt.Errorf("config: unknown BRAID_BACKEND %q (want fs or sql)", cfg.Backend)
	}
	return cfg, nil
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
