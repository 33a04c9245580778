// Package fsbackend implements the object database's filesystem storage
// engine: a two-nibble-sharded directory tree with one file per object,
// written atomically via temp-file-then-rename, read via memory-mapping.
package fsbackend

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/braid-db/braid/backend"
	"github.com/braid-db/braid/errs"
	"github.com/braid-db/braid/objdb"
)

// Backend stores objects as files under Root, sharded by the first hex
// byte of each object's OID.
type Backend struct {
	Root   string
	Logger *slog.Logger
}

var _ backend.Backend = (*Backend)(nil)

// Open prepares root for use and bootstraps the sentinel objects (the
// empty Register, the empty SaveRegister, and the root Commit) if they
// are not already present. It is safe to call Open repeatedly against
// the same root.
func Open(root string, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errs.Wrap(fmt.Errorf("fsbackend: create root %s: %w", root, err))
	}
	b := &Backend{Root: root, Logger: logger}
	if err := b.bootstrap(context.Background()); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Backend) bootstrap(ctx context.Context) error {
	if _, err := b.WriteRegister(ctx, objdb.NewRegister()); err != nil {
		return err
	}
	if _, err := b.WriteSaveRegister(ctx, objdb.NewSaveRegister()); err != nil {
		return err
	}
	if _, err := b.WriteCommit(ctx, objdb.RootCommit); err != nil {
		return err
	}
	b.Logger.Debug("fsbackend bootstrapped", "root", b.Root)
	return nil
}

// shardDir is the two-hex-char directory an OID's file lives under.
func shardDir(oid objdb.OID) string {
	return fmt.Sprintf("%02x", oid[0])
}

// fileName is the remaining 62 hex chars after the shard nibble byte.
func fileName(oid objdb.OID) string {
	return oid.String()[2:]
}

func (b *Backend) pathFor(oid objdb.OID) string {
	return filepath.Join(b.Root, shardDir(oid), fileName(oid))
}
