package fsbackend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/braid-db/braid/backend"
	"github.com/braid-db/braid/errs"
	"github.com/braid-db/braid/objdb"
)

// writeAtomic writes buf to path via temp-file-then-rename in the same
// directory, so a crash mid-write never leaves a partial object file.
// Idempotent: if path already exists the write is skipped entirely.
func writeAtomic(path string, buf []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.Wrap(fmt.Errorf("fsbackend: mkdir %s: %w", dir, err))
	}
	tmp, err := os.CreateTemp(dir, ".braid-tmp-*")
	if err != nil {
		return errs.Wrap(fmt.Errorf("fsbackend: create temp file: %w", err))
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(buf); err != nil {
		return errs.Wrap(fmt.Errorf("fsbackend: write temp file: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return errs.Wrap(fmt.Errorf("fsbackend: sync temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		return errs.Wrap(fmt.Errorf("fsbackend: close temp file: %w", err))
	}
	tmp = nil

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errs.Wrap(fmt.Errorf("fsbackend: rename temp file: %w", err))
	}
	return nil
}

// WriteContent stores an opaque content blob keyed by the OID of its raw
// bytes. Content carries no header of its own (§3.1): the digest covers
// exactly the bytes given.
func (b *Backend) WriteContent(ctx context.Context, data []byte) (objdb.OID, error) {
	oid := objdb.Hash(data)
	if err := writeAtomic(b.pathFor(oid), data); err != nil {
		return objdb.OID{}, err
	}
	return oid, nil
}

// WriteRegister validates every entry's target, encodes, and atomically
// persists r.
func (b *Backend) WriteRegister(ctx context.Context, r *objdb.Register) (objdb.OID, error) {
	if err := backend.ValidateRegister(ctx, b.Exists, r); err != nil {
		return objdb.OID{}, err
	}
	oid, buf, err := r.Encode()
	if err != nil {
		return objdb.OID{}, err
	}
	if err := writeAtomic(b.pathFor(oid), buf); err != nil {
		return objdb.OID{}, err
	}
	return oid, nil
}

// WriteSaveRegister validates every entry's Save, encodes, and atomically
// persists sr.
func (b *Backend) WriteSaveRegister(ctx context.Context, sr *objdb.SaveRegister) (objdb.OID, error) {
	if err := backend.ValidateSaveRegister(ctx, b.Exists, sr); err != nil {
		return objdb.OID{}, err
	}
	oid, buf, err := sr.Encode()
	if err != nil {
		return objdb.OID{}, err
	}
	if err := writeAtomic(b.pathFor(oid), buf); err != nil {
		return objdb.OID{}, err
	}
	return oid, nil
}

// WriteSave validates Content and Parent, encodes, and atomically
// persists s.
func (b *Backend) WriteSave(ctx context.Context, s *objdb.Save) (objdb.OID, error) {
	if err := backend.ValidateSave(ctx, b.Exists, s); err != nil {
		return objdb.OID{}, err
	}
	oid, buf, err := s.Encode()
	if err != nil {
		return objdb.OID{}, err
	}
	if err := writeAtomic(b.pathFor(oid), buf); err != nil {
		return objdb.OID{}, err
	}
	return oid, nil
}

// WriteCommit validates Register, Saves, and the optional parent links,
// encodes, and atomically persists c.
func (b *Backend) WriteCommit(ctx context.Context, c *objdb.Commit) (objdb.OID, error) {
	if err := backend.ValidateCommit(ctx, b.Exists, c); err != nil {
		return objdb.OID{}, err
	}
	oid, buf, err := c.Encode()
	if err != nil {
		return objdb.OID{}, err
	}
	if err := writeAtomic(b.pathFor(oid), buf); err != nil {
		return objdb.OID{}, err
	}
	return oid, nil
}
