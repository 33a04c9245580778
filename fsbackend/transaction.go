package fsbackend

import (
	"context"

	"github.com/braid-db/braid/backend"
)

// Transaction runs fn directly against b. Every individual write is
// already atomic (temp-file-then-rename) and idempotent, so grouping
// writes needs no extra isolation layer here; what it cannot offer is
// rollback of writes fn already performed before returning an error —
// the filesystem engine's concurrency guarantees stop at per-file
// atomicity (see the Non-goals on store-wide writer concurrency).
func (b *Backend) Transaction(ctx context.Context, fn func(ctx context.Context, tx backend.Backend) error) error {
	return fn(ctx, b)
}
