package fsbackend

import (
	"context"
	"os"

	"github.com/braid-db/braid/backend"
	"github.com/braid-db/braid/errs"
	"github.com/braid-db/braid/objdb"
	"github.com/braid-db/braid/objkind"
)

// Exists opens the object's file, reads its first byte, and compares it
// to the wire kind expected of kind. Content has no header byte, so for
// RefContent this only checks the file is present.
func (b *Backend) Exists(ctx context.Context, kind backend.RefKind, oid objdb.OID) (bool, error) {
	f, err := os.Open(b.pathFor(oid))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errs.Wrap(err)
	}
	defer f.Close()

	expected, hasHeader := backend.ObjectKindOf(kind)
	if !hasHeader {
		return true, nil
	}

	var firstByte [1]byte
	if _, err := f.Read(firstByte[:]); err != nil {
		return false, errs.Wrap(err)
	}
	actual, err := objkind.ParseObjectKind(firstByte[0])
	if err != nil {
		return false, err
	}
	if actual != expected {
		return false, errs.WrongKind(expected, actual)
	}
	return true, nil
}
