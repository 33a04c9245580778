package objdb

import (
	"bytes"

	"github.com/braid-db/braid/codec"
	"github.com/braid-db/braid/objkind"
)

// Commit is a whole-register snapshot: the Register it points at, the
// Saves that produced it, and its place in commit history via Parent,
// MergeParent, and RebaseOf. All three parent links are optional; an
// absent one round-trips as ZeroOID.
type Commit struct {
	Register    OID
	Saves       OID
	Parent      OID
	HasParent   bool
	MergeParent OID
	HasMerge    bool
	RebaseOf    OID
	HasRebase   bool
	Date        Timestamp
	Committer   string
	Summary     string
	Body        string
}

// Encode produces the canonical header-inclusive byte image and its OID.
func (c *Commit) Encode() (OID, []byte, error) {
	buf, err := buildObject(objkind.Commit, func(w *codec.Writer) error {
		if err := w.WriteOID(c.Register); err != nil {
			return err
		}
		if err := w.WriteOID(c.Saves); err != nil {
			return err
		}
		if err := w.WriteOptionalOID(c.Parent, c.HasParent); err != nil {
			return err
		}
		if err := w.WriteOptionalOID(c.MergeParent, c.HasMerge); err != nil {
			return err
		}
		if err := w.WriteOptionalOID(c.RebaseOf, c.HasRebase); err != nil {
			return err
		}
		if err := w.WriteTimestamp(c.Date.Nanos, c.Date.OffsetSeconds); err != nil {
			return err
		}
		if err := w.WriteNullTerminatedString(c.Committer); err != nil {
			return err
		}
		if err := w.WriteNullTerminatedString(c.Summary); err != nil {
			return err
		}
		return w.WriteNullTerminatedString(c.Body)
	})
	if err != nil {
		return OID{}, nil, err
	}
	return Hash(buf), buf, nil
}

// DecodeCommit decodes a full header-inclusive object buffer as a Commit.
func DecodeCommit(data []byte) (*Commit, error) {
	r := codec.NewReader(bytes.NewReader(data))
	if _, err := readHeader(r, objkind.Commit); err != nil {
		return nil, err
	}
	register, err := r.ReadOID()
	if err != nil {
		return nil, err
	}
	saves, err := r.ReadOID()
	if err != nil {
		return nil, err
	}
	parent, hasParent, err := r.ReadOptionalOID()
	if err != nil {
		return nil, err
	}
	mergeParent, hasMerge, err := r.ReadOptionalOID()
	if err != nil {
		return nil, err
	}
	rebaseOf, hasRebase, err := r.ReadOptionalOID()
	if err != nil {
		return nil, err
	}
	date, err := decodeTimestamp(r)
	if err != nil {
		return nil, err
	}
	committer, err := r.ReadNullTerminatedString()
	if err != nil {
		return nil, err
	}
	summary, err := r.ReadNullTerminatedString()
	if err != nil {
		return nil, err
	}
	body, err := r.ReadNullTerminatedString()
	if err != nil {
		return nil, err
	}
	return &Commit{
		Register:    OID(register),
		Saves:       OID(saves),
		Parent:      OID(parent),
		HasParent:   hasParent,
		MergeParent: OID(mergeParent),
		HasMerge:    hasMerge,
		RebaseOf:    OID(rebaseOf),
		HasRebase:   hasRebase,
		Date:        date,
		Committer:   committer,
		Summary:     summary,
		Body:        body,
	}, nil
}
