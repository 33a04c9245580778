package sqlbackend

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/braid-db/braid/backend"
	"github.com/braid-db/braid/errs"
	"github.com/braid-db/braid/objdb"
	"github.com/braid-db/braid/objkind"
)

// ReadContent is unsupported: the schema in §4.I tracks only a content
// OID's existence, not its bytes (raw content transport is explicitly
// out of this layer's scope). Use a filesystem-backed or external blob
// store alongside this backend for byte retrieval.
func (b *Backend) ReadContent(ctx context.Context, oid objdb.OID) ([]byte, error) {
	ok, err := b.Exists(ctx, backend.RefContent, oid)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound(backend.RefContent, oid.String())
	}
	return nil, errs.Wrap(errContentBytesUnsupported)
}

var errContentBytesUnsupported = &errs.Error{
	Kind: errs.BackendSpecific,
	Msg:  "sqlbackend tracks content OIDs only; byte retrieval is not part of this schema",
}

// ReadRegister reconstructs the Register at oid from register_entry rows
// joined against content_register for each entry's target kind.
func (b *Backend) ReadRegister(ctx context.Context, oid objdb.OID) (*objdb.Register, error) {
	if ok, err := b.Exists(ctx, backend.RefRegister, oid); err != nil {
		return nil, err
	} else if !ok {
		return nil, errs.NotFound(backend.RefRegister, oid.String())
	}

	rows, err := b.db.Query(ctx,
		`SELECT re.key, re.content, re.is_executable, cr.is_content
		 FROM `+schemaName+`.register_entry re
		 JOIN `+schemaName+`.content_register cr ON cr.id = re.content
		 WHERE re.register = $1`, oid[:])
	if err != nil {
		return nil, errs.Wrap(err)
	}
	defer rows.Close()

	r := objdb.NewRegister()
	for rows.Next() {
		var key string
		var target []byte
		var isExecutable, isContent bool
		if err := rows.Scan(&key, &target, &isExecutable, &isContent); err != nil {
			return nil, errs.Wrap(err)
		}
		k, err := objdb.NewRegisterEntryKey(key)
		if err != nil {
			return nil, err
		}
		var targetOID objdb.OID
		copy(targetOID[:], target)
		r.Set(k, objdb.RegisterEntry{Kind: entryKindOf(isContent, isExecutable), Target: targetOID})
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err)
	}
	return r, nil
}

func entryKindOf(isContent, isExecutable bool) objkind.RegisterEntryKind {
	if !isContent {
		return objkind.SubRegister
	}
	if isExecutable {
		return objkind.Executable
	}
	return objkind.Content
}

// ReadSaveRegister reconstructs the SaveRegister at oid from
// save_register_entry rows.
func (b *Backend) ReadSaveRegister(ctx context.Context, oid objdb.OID) (*objdb.SaveRegister, error) {
	if ok, err := b.Exists(ctx, backend.RefSaveRegister, oid); err != nil {
		return nil, err
	} else if !ok {
		return nil, errs.NotFound(backend.RefSaveRegister, oid.String())
	}

	rows, err := b.db.Query(ctx,
		`SELECT key, save FROM `+schemaName+`.save_register_entry WHERE save_register = $1`, oid[:])
	if err != nil {
		return nil, errs.Wrap(err)
	}
	defer rows.Close()

	sr := objdb.NewSaveRegister()
	for rows.Next() {
		var key string
		var save []byte
		if err := rows.Scan(&key, &save); err != nil {
			return nil, errs.Wrap(err)
		}
		k, err := objdb.NewSaveEntryKey(key)
		if err != nil {
			return nil, err
		}
		var saveOID objdb.OID
		copy(saveOID[:], save)
		sr.Set(k, saveOID)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err)
	}
	return sr, nil
}

// ReadSave reconstructs the Save row at oid.
func (b *Backend) ReadSave(ctx context.Context, oid objdb.OID) (*objdb.Save, error) {
	var author string
	var date time.Time
	var kind int16
	var content, parent []byte
	err := b.db.QueryRow(ctx,
		`SELECT author, date, kind, content, parent FROM `+schemaName+`.save WHERE id = $1`, oid[:]).
		Scan(&author, &date, &kind, &content, &parent)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errs.NotFound(backend.RefSave, oid.String())
		}
		return nil, errs.Wrap(err)
	}

	parentKindByte, err := b.saveParentKind(ctx, parent)
	if err != nil {
		return nil, err
	}

	var contentOID, parentOID objdb.OID
	copy(contentOID[:], content)
	copy(parentOID[:], parent)

	return &objdb.Save{
		Date:       objdb.FromTime(date),
		Kind:       objkind.RegisterEntryKind(kind),
		Content:    contentOID,
		ParentKind: parentKindByte,
		Parent:     parentOID,
		Author:     author,
	}, nil
}

func (b *Backend) saveParentKind(ctx context.Context, parentID []byte) (objkind.SaveParentKind, error) {
	var kind int16
	err := b.db.QueryRow(ctx,
		`SELECT kind FROM `+schemaName+`.save_parent WHERE id = $1`, parentID).Scan(&kind)
	if err != nil {
		return 0, errs.Wrap(err)
	}
	if kind == parentKindCommit {
		return objkind.ParentCommit, nil
	}
	return objkind.ParentSave, nil
}

// ReadCommit reconstructs the Commit row at oid.
func (b *Backend) ReadCommit(ctx context.Context, oid objdb.OID) (*objdb.Commit, error) {
	var register, saves []byte
	var parent, mergeParent, rebaseOf []byte
	var date time.Time
	var committer, summary, body string
	err := b.db.QueryRow(ctx,
		`SELECT register, parent, merge_parent, rebase_of, saves, date, committer, summary, body
		 FROM `+schemaName+`.commit WHERE id = $1`, oid[:]).
		Scan(&register, &parent, &mergeParent, &rebaseOf, &saves, &date, &committer, &summary, &body)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errs.NotFound(backend.RefCommit, oid.String())
		}
		return nil, errs.Wrap(err)
	}

	c := &objdb.Commit{
		Date:      objdb.FromTime(date),
		Committer: committer,
		Summary:   summary,
		Body:      body,
	}
	copy(c.Register[:], register)
	copy(c.Saves[:], saves)
	if parent != nil {
		c.HasParent = true
		copy(c.Parent[:], parent)
	}
	if mergeParent != nil {
		c.HasMerge = true
		copy(c.MergeParent[:], mergeParent)
	}
	if rebaseOf != nil {
		c.HasRebase = true
		copy(c.RebaseOf[:], rebaseOf)
	}
	return c, nil
}
