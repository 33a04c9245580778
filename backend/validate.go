package backend

import (
	"context"

	"github.com/braid-db/braid/errs"
	"github.com/braid-db/braid/objdb"
	"github.com/braid-db/braid/objkind"
)

// existsFunc is the narrow surface validation needs out of a Backend —
// just enough to check a referenced OID is there and of the right kind,
// without the validator depending on the full interface (or creating a
// cycle back into a concrete backend package).
type existsFunc func(ctx context.Context, kind RefKind, oid objdb.OID) (bool, error)

// checkRef confirms oid exists with the given kind, short-circuiting on
// ZeroOID since an absent optional reference needs no check.
func checkRef(ctx context.Context, exists existsFunc, kind RefKind, oid objdb.OID) error {
	if oid.IsZero() {
		return nil
	}
	ok, err := exists(ctx, kind, oid)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NotFound(kind, oid.String())
	}
	return nil
}

// ValidateRegister checks every entry's target exists and matches the
// kind its RegisterEntryKind claims (§3.6 rule 3), as far as exists can
// tell: Content has no kind byte, so fsbackend's Exists only checks that
// a Content or Executable target is present.
func ValidateRegister(ctx context.Context, exists existsFunc, r *objdb.Register) error {
	for _, p := range r.Entries() {
		target := refKindForEntry(p.Entry.Kind)
		if err := checkRef(ctx, exists, target, p.Entry.Target); err != nil {
			return err
		}
	}
	return nil
}

func refKindForEntry(k objkind.RegisterEntryKind) RefKind {
	if k == objkind.SubRegister {
		return RefRegister
	}
	return RefContent
}

// ValidateSaveRegister checks every entry's Save exists.
func ValidateSaveRegister(ctx context.Context, exists existsFunc, sr *objdb.SaveRegister) error {
	for _, p := range sr.Entries() {
		if err := checkRef(ctx, exists, RefSave, p.Save); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSave checks that Content exists and that Parent (when present)
// exists and matches ParentKind.
func ValidateSave(ctx context.Context, exists existsFunc, s *objdb.Save) error {
	if err := checkRef(ctx, exists, RefContent, s.Content); err != nil {
		return err
	}
	if s.Parent.IsZero() {
		return nil
	}
	parentKind := RefSave
	if s.ParentKind == objkind.ParentCommit {
		parentKind = RefCommit
	}
	return checkRef(ctx, exists, parentKind, s.Parent)
}

// ValidateCommit checks Register, Saves, and the three optional parent
// links.
func ValidateCommit(ctx context.Context, exists existsFunc, c *objdb.Commit) error {
	if err := checkRef(ctx, exists, RefRegister, c.Register); err != nil {
		return err
	}
	if err := checkRef(ctx, exists, RefSaveRegister, c.Saves); err != nil {
		return err
	}
	if c.HasParent {
		if err := checkRef(ctx, exists, RefCommit, c.Parent); err != nil {
			return err
		}
	}
	if c.HasMerge {
		if err := checkRef(ctx, exists, RefCommit, c.MergeParent); err != nil {
			return err
		}
	}
	if c.HasRebase {
		if err := checkRef(ctx, exists, RefCommit, c.RebaseOf); err != nil {
			return err
		}
	}
	return nil
}
