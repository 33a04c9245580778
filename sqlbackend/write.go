package sqlbackend

import (
	"context"

	"github.com/braid-db/braid/errs"
	"github.com/braid-db/braid/objdb"
	"github.com/braid-db/braid/objkind"
)

// parentKindSave and parentKindCommit are the save_parent.kind
// discriminants (§4.I).
const (
	parentKindSave   = 0
	parentKindCommit = 1
)

// WriteContent inserts an opaque content handle keyed by the OID of its
// raw bytes. The SQL engine tracks only the OID and its existence; the
// bytes themselves are a raw I/O transport concern this layer doesn't
// own (§1's explicit scope cut).
func (b *Backend) WriteContent(ctx context.Context, data []byte) (objdb.OID, error) {
	oid := objdb.Hash(data)
	_, err := b.db.Exec(ctx,
		`INSERT INTO `+schemaName+`.content_register (id, is_content) VALUES ($1, true) ON CONFLICT DO NOTHING`,
		oid[:])
	if err != nil {
		return objdb.OID{}, errs.Wrap(err)
	}
	return oid, nil
}

// WriteRegister inserts the register's content_register row (propagating
// into `register` via trigger) and inserts one register_entry row per
// entry. Referential
// existence of each entry's target is delegated to the foreign key on
// register_entry.content.
func (b *Backend) WriteRegister(ctx context.Context, r *objdb.Register) (objdb.OID, error) {
	oid, _, err := r.Encode()
	if err != nil {
		return objdb.OID{}, err
	}
	_, err = b.db.Exec(ctx,
		`INSERT INTO `+schemaName+`.content_register (id, is_content) VALUES ($1, false) ON CONFLICT DO NOTHING`,
		oid[:])
	if err != nil {
		return objdb.OID{}, errs.Wrap(err)
	}
	for _, p := range r.Entries() {
		isExecutable := p.Entry.Kind == objkind.Executable
		_, err := b.db.Exec(ctx,
			`INSERT INTO `+schemaName+`.register_entry (register, key, content, is_executable)
			 VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
			oid[:], string(p.Key), p.Entry.Target[:], isExecutable)
		if err != nil {
			return objdb.OID{}, errs.Wrap(err)
		}
	}
	return oid, nil
}

// WriteSaveRegister inserts the save_register row and one
// save_register_entry row per entry. Referential existence of each entry's Save is delegated to
// the foreign key on save_register_entry.save.
func (b *Backend) WriteSaveRegister(ctx context.Context, sr *objdb.SaveRegister) (objdb.OID, error) {
	oid, _, err := sr.Encode()
	if err != nil {
		return objdb.OID{}, err
	}
	_, err = b.db.Exec(ctx,
		`INSERT INTO `+schemaName+`.save_register (id) VALUES ($1) ON CONFLICT DO NOTHING`, oid[:])
	if err != nil {
		return objdb.OID{}, errs.Wrap(err)
	}
	for _, p := range sr.Entries() {
		_, err := b.db.Exec(ctx,
			`INSERT INTO `+schemaName+`.save_register_entry (save_register, key, save)
			 VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			oid[:], string(p.Key), p.Save[:])
		if err != nil {
			return objdb.OID{}, errs.Wrap(err)
		}
	}
	return oid, nil
}

// WriteSave inserts the save_parent row and the save row. Referential
// existence of Content and Parent is delegated to foreign keys.
func (b *Backend) WriteSave(ctx context.Context, s *objdb.Save) (objdb.OID, error) {
	oid, _, err := s.Encode()
	if err != nil {
		return objdb.OID{}, err
	}
	if _, err := b.db.Exec(ctx,
		`INSERT INTO `+schemaName+`.save_parent (id, kind) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		oid[:], parentKindSave); err != nil {
		return objdb.OID{}, errs.Wrap(err)
	}
	date, ok := s.Date.ToTime()
	if !ok {
		return objdb.OID{}, errs.BadTimestamp(s.Date.Nanos.String())
	}
	_, err = b.db.Exec(ctx,
		`INSERT INTO `+schemaName+`.save (id, author, date, kind, content, parent)
		 VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT DO NOTHING`,
		oid[:], s.Author, date, int16(s.Kind), s.Content[:], s.Parent[:])
	if err != nil {
		return objdb.OID{}, errs.Wrap(err)
	}
	return oid, nil
}

// WriteCommit inserts the save_parent row and the commit row. Referential
// existence of Register, Saves, and the optional parent links is
// delegated to foreign keys.
func (b *Backend) WriteCommit(ctx context.Context, c *objdb.Commit) (objdb.OID, error) {
	oid, _, err := c.Encode()
	if err != nil {
		return objdb.OID{}, err
	}
	if _, err := b.db.Exec(ctx,
		`INSERT INTO `+schemaName+`.save_parent (id, kind) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		oid[:], parentKindCommit); err != nil {
		return objdb.OID{}, errs.Wrap(err)
	}
	date, ok := c.Date.ToTime()
	if !ok {
		return objdb.OID{}, errs.BadTimestamp(c.Date.Nanos.String())
	}
	_, err = b.db.Exec(ctx,
		`INSERT INTO `+schemaName+`.commit (id, register, parent, merge_parent, rebase_of, saves, date, committer, summary, body)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) ON CONFLICT DO NOTHING`,
		oid[:], c.Register[:],
		optionalOIDParam(c.Parent, c.HasParent),
		optionalOIDParam(c.MergeParent, c.HasMerge),
		optionalOIDParam(c.RebaseOf, c.HasRebase),
		c.Saves[:], date, c.Committer, c.Summary, c.Body)
	if err != nil {
		return objdb.OID{}, errs.Wrap(err)
	}
	return oid, nil
}

// optionalOIDParam renders an optional OID as a nullable query parameter.
func optionalOIDParam(oid objdb.OID, ok bool) any {
	if !ok {
		return nil
	}
	return oid[:]
}
