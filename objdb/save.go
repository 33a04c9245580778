package objdb

import (
	"bytes"

	"github.com/braid-db/braid/codec"
	"github.com/braid-db/braid/objkind"
)

// Save is a per-entry versioned snapshot: one RegisterEntry's new content
// at a point in time, with a link back to whatever it replaced. The
// author field has no length limit here; the SQL backend's varchar(255)
// column is what actually bounds it (a filesystem-backed Save can carry a
// longer author than a SQL-backed one ever could).
type Save struct {
	Date       Timestamp
	Kind       objkind.RegisterEntryKind
	Content    OID
	ParentKind objkind.SaveParentKind
	Parent     OID
	Author     string
}

// Encode produces the canonical header-inclusive byte image and its OID.
// The author field runs to the end of the payload with no terminator, so
// it must be written last.
func (s *Save) Encode() (OID, []byte, error) {
	buf, err := buildObject(objkind.Save, func(w *codec.Writer) error {
		if err := w.WriteTimestamp(s.Date.Nanos, s.Date.OffsetSeconds); err != nil {
			return err
		}
		if err := w.WriteKind(uint8(s.Kind)); err != nil {
			return err
		}
		if err := w.WriteOID(s.Content); err != nil {
			return err
		}
		if err := w.WriteKind(uint8(s.ParentKind)); err != nil {
			return err
		}
		if err := w.WriteOID(s.Parent); err != nil {
			return err
		}
		return w.WriteRawString(s.Author)
	})
	if err != nil {
		return OID{}, nil, err
	}
	return Hash(buf), buf, nil
}

// DecodeSave decodes a full header-inclusive object buffer as a Save.
func DecodeSave(data []byte) (*Save, error) {
	r := codec.NewReader(bytes.NewReader(data))
	if _, err := readHeader(r, objkind.Save); err != nil {
		return nil, err
	}
	date, err := decodeTimestamp(r)
	if err != nil {
		return nil, err
	}
	kindByte, err := r.ReadKind()
	if err != nil {
		return nil, err
	}
	kind, err := objkind.ParseRegisterEntryKind(kindByte)
	if err != nil {
		return nil, err
	}
	content, err := r.ReadOID()
	if err != nil {
		return nil, err
	}
	parentKindByte, err := r.ReadKind()
	if err != nil {
		return nil, err
	}
	parentKind, err := objkind.ParseSaveParentKind(parentKindByte)
	if err != nil {
		return nil, err
	}
	parent, err := r.ReadOID()
	if err != nil {
		return nil, err
	}
	author, err := r.ReadStringToEnd()
	if err != nil {
		return nil, err
	}
	return &Save{
		Date:       date,
		Kind:       kind,
		Content:    OID(content),
		ParentKind: parentKind,
		Parent:     OID(parent),
		Author:     author,
	}, nil
}
