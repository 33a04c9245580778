package fsbackend

import (
	"context"
	"fmt"
	"os"

	"github.com/braid-db/braid/backend"
	"github.com/braid-db/braid/errs"
	"github.com/braid-db/braid/fsbackend/mmfile"
	"github.com/braid-db/braid/objdb"
)

func (b *Backend) readFile(kind backend.RefKind, oid objdb.OID) ([]byte, error) {
	path := b.pathFor(oid)
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.NotFound(kind, oid.String())
		}
		return nil, errs.Wrap(fmt.Errorf("fsbackend: read %s: %w", path, err))
	}
	defer unmap()
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// ReadContent returns the raw bytes stored at oid.
func (b *Backend) ReadContent(ctx context.Context, oid objdb.OID) ([]byte, error) {
	return b.readFile(backend.RefContent, oid)
}

// ReadRegister decodes the Register stored at oid.
func (b *Backend) ReadRegister(ctx context.Context, oid objdb.OID) (*objdb.Register, error) {
	data, err := b.readFile(backend.RefRegister, oid)
	if err != nil {
		return nil, err
	}
	return objdb.DecodeRegister(data)
}

// ReadSaveRegister decodes the SaveRegister stored at oid.
func (b *Backend) ReadSaveRegister(ctx context.Context, oid objdb.OID) (*objdb.SaveRegister, error) {
	data, err := b.readFile(backend.RefSaveRegister, oid)
	if err != nil {
		return nil, err
	}
	return objdb.DecodeSaveRegister(data)
}

// ReadSave decodes the Save stored at oid.
func (b *Backend) ReadSave(ctx context.Context, oid objdb.OID) (*objdb.Save, error) {
	data, err := b.readFile(backend.RefSave, oid)
	if err != nil {
		return nil, err
	}
	return objdb.DecodeSave(data)
}

// ReadCommit decodes the Commit stored at oid.
func (b *Backend) ReadCommit(ctx context.Context, oid objdb.OID) (*objdb.Commit, error) {
	data, err := b.readFile(backend.RefCommit, oid)
	if err != nil {
		return nil, err
	}
	return objdb.DecodeCommit(data)
}
