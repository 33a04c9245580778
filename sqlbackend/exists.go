package sqlbackend

import (
	"context"

	"github.com/braid-db/braid/backend"
	"github.com/braid-db/braid/errs"
	"github.com/braid-db/braid/objdb"
)

// tableFor maps a RefKind onto the table whose primary key it checks.
func tableFor(kind backend.RefKind) string {
	switch kind {
	case backend.RefRegister:
		return "register"
	case backend.RefCommit:
		return "commit"
	case backend.RefSave:
		return "save"
	case backend.RefSaveRegister:
		return "save_register"
	default:
		return "content"
	}
}

// Exists reports whether oid has a row in the table kind maps to.
func (b *Backend) Exists(ctx context.Context, kind backend.RefKind, oid objdb.OID) (bool, error) {
	var found bool
	query := `SELECT EXISTS(SELECT 1 FROM ` + schemaName + `.` + tableFor(kind) + ` WHERE id = $1)`
	if err := b.db.QueryRow(ctx, query, oid[:]).Scan(&found); err != nil {
		return false, errs.Wrap(err)
	}
	return found, nil
}
