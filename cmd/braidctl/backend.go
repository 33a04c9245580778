package main

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/braid-db/braid/backend"
	"github.com/braid-db/braid/config"
	"github.com/braid-db/braid/errs"
	"github.com/braid-db/braid/fsbackend"
	"github.com/braid-db/braid/sqlbackend"
)

// openConfiguredBackend opens whichever backend config.Load selects,
// returning a closer that's a no-op for the filesystem backend.
// BackendAlreadyInitialized isn't treated as fatal here: it is logged at
// Info level and the already-initialized Backend is returned as usable,
// for every subcommand.
func openConfiguredBackend(ctx context.Context) (backend.Backend, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Backend {
	case config.BackendFS:
		b, err := fsbackend.Open(cfg.FSRoot, logger)
		if err != nil {
			return nil, nil, err
		}
		return b, func() {}, nil
	case config.BackendSQL:
		b, err := sqlbackend.Open(ctx, cfg.PostgresDSN, logger)
		if err != nil {
			var typed *errs.Error
			if stderrors.As(err, &typed) && typed.Kind == errs.BackendAlreadyInitialized {
				logger.Info("backend already initialized")
				return b, b.Close, nil
			}
			return nil, nil, err
		}
		return b, b.Close, nil
	default:
		return nil, nil, fmt.Errorf("braidctl: unreachable backend %q", cfg.Backend)
	}
}
