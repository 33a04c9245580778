package objdb

import (
	"bytes"
	"sort"

	"github.com/braid-db/braid/codec"
	"github.com/braid-db/braid/objkind"
)

// SaveRegister is an ordered mapping from SaveEntryKey to the OID of the
// Save that last touched that path. Like Register, entries always
// serialize in ascending key-byte order.
type SaveRegister struct {
	entries map[SaveEntryKey]OID
}

// NewSaveRegister returns an empty SaveRegister.
func NewSaveRegister() *SaveRegister {
	return &SaveRegister{entries: make(map[SaveEntryKey]OID)}
}

// Set inserts or replaces the Save OID at key.
func (sr *SaveRegister) Set(key SaveEntryKey, save OID) {
	sr.entries[key] = save
}

// Get looks up the Save OID at key.
func (sr *SaveRegister) Get(key SaveEntryKey) (OID, bool) {
	oid, ok := sr.entries[key]
	return oid, ok
}

// Len reports the number of entries.
func (sr *SaveRegister) Len() int { return len(sr.entries) }

// SaveEntryPair pairs a key with its Save OID, in the order entries are
// walked for serialization.
type SaveEntryPair struct {
	Key  SaveEntryKey
	Save OID
}

// Entries returns every entry sorted ascending by key bytes — the
// canonical serialization order.
func (sr *SaveRegister) Entries() []SaveEntryPair {
	out := make([]SaveEntryPair, 0, len(sr.entries))
	for k, v := range sr.entries {
		out = append(out, SaveEntryPair{Key: k, Save: v})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

// Encode produces the canonical header-inclusive byte image and its OID.
func (sr *SaveRegister) Encode() (OID, []byte, error) {
	buf, err := buildObject(objkind.SaveRegister, func(w *codec.Writer) error {
		return writeSaveRegisterPayload(w, sr.Entries())
	})
	if err != nil {
		return OID{}, nil, err
	}
	return Hash(buf), buf, nil
}

func writeSaveRegisterPayload(w *codec.Writer, entries []SaveEntryPair) error {
	if err := w.WriteU32LE(uint32(len(entries))); err != nil {
		return err
	}
	for _, p := range entries {
		if err := w.WriteOID(p.Save); err != nil {
			return err
		}
		if err := w.WriteNullTerminatedString(string(p.Key)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSaveRegister decodes a full header-inclusive object buffer as a
// SaveRegister.
func DecodeSaveRegister(data []byte) (*SaveRegister, error) {
	r := codec.NewReader(bytes.NewReader(data))
	if _, err := readHeader(r, objkind.SaveRegister); err != nil {
		return nil, err
	}
	count, err := r.ReadU32LE()
	if err != nil {
		return nil, err
	}
	sr := NewSaveRegister()
	for i := uint32(0); i < count; i++ {
		save, err := r.ReadOID()
		if err != nil {
			return nil, err
		}
		rawKey, err := r.ReadNullTerminatedString()
		if err != nil {
			return nil, err
		}
		key, err := NewSaveEntryKey(rawKey)
		if err != nil {
			return nil, err
		}
		sr.Set(key, save)
	}
	return sr, nil
}
