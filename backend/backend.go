// Package backend defines the storage-engine contract every object
// database backend satisfies: write, read-by-kind, existence checks, and
// transactional grouping. fsbackend and sqlbackend are the two concrete
// implementations; backendtest exercises both against the same
// conformance suite.
package backend

import (
	"context"
	"fmt"

	"github.com/braid-db/braid/objdb"
	"github.com/braid-db/braid/objkind"
)

// RefKind enumerates everything an embedded OID can point at, for
// existence and kind-correctness checks. It's a superset of
// objkind.ObjectKind: Content has no wire header of its own (§3.1's
// Content is tracked only by OID and raw bytes) but still participates in
// referential invariants, so it needs a tag here even though it never
// appears as a header byte.
type RefKind uint8

const (
	RefContent RefKind = iota
	RefRegister
	RefCommit
	RefSave
	RefSaveRegister
)

func (k RefKind) String() string {
	switch k {
	case RefContent:
		return "Content"
	case RefRegister:
		return "Register"
	case RefCommit:
		return "Commit"
	case RefSave:
		return "Save"
	case RefSaveRegister:
		return "SaveRegister"
	default:
		return fmt.Sprintf("RefKind(%d)", uint8(k))
	}
}

// RefKindOf maps a wire ObjectKind onto its RefKind.
func RefKindOf(k objkind.ObjectKind) RefKind {
	switch k {
	case objkind.Register:
		return RefRegister
	case objkind.Commit:
		return RefCommit
	case objkind.Save:
		return RefSave
	case objkind.SaveRegister:
		return RefSaveRegister
	default:
		return RefContent
	}
}

// ObjectKindOf maps a RefKind back onto its wire ObjectKind. Content has
// none — it carries no header byte — so ok is false for RefContent.
func ObjectKindOf(k RefKind) (kind objkind.ObjectKind, ok bool) {
	switch k {
	case RefRegister:
		return objkind.Register, true
	case RefCommit:
		return objkind.Commit, true
	case RefSave:
		return objkind.Save, true
	case RefSaveRegister:
		return objkind.SaveRegister, true
	default:
		return 0, false
	}
}

// Backend is the uniform storage contract. Every write rejects embedded
// OIDs that are not already stored (referential existence, §3.6) and
// every write is idempotent. fsbackend runs the Validate* helpers, which
// also check kinds, before persisting; sqlbackend relies on its foreign
// keys at insert time, and the foreign key on a register entry accepts
// any stored content or register, so that entry's kind is not checked.
type Backend interface {
	WriteContent(ctx context.Context, data []byte) (objdb.OID, error)
	WriteRegister(ctx context.Context, r *objdb.Register) (objdb.OID, error)
	WriteSaveRegister(ctx context.Context, sr *objdb.SaveRegister) (objdb.OID, error)
	WriteSave(ctx context.Context, s *objdb.Save) (objdb.OID, error)
	WriteCommit(ctx context.Context, c *objdb.Commit) (objdb.OID, error)

	ReadContent(ctx context.Context, oid objdb.OID) ([]byte, error)
	ReadRegister(ctx context.Context, oid objdb.OID) (*objdb.Register, error)
	ReadSaveRegister(ctx context.Context, oid objdb.OID) (*objdb.SaveRegister, error)
	ReadSave(ctx context.Context, oid objdb.OID) (*objdb.Save, error)
	ReadCommit(ctx context.Context, oid objdb.OID) (*objdb.Commit, error)

	// Exists reports whether oid is stored and is of kind.
	Exists(ctx context.Context, kind RefKind, oid objdb.OID) (bool, error)

	// Transaction runs fn against a Backend view in which every write fn
	// performs is visible to fn's own subsequent reads, and propagates
	// fn's error to its caller. sqlbackend commits all of fn's writes when
	// fn returns nil and none when it returns an error; fsbackend runs fn
	// directly, so writes fn made before failing are not rolled back.
	Transaction(ctx context.Context, fn func(ctx context.Context, tx Backend) error) error
}
