package objdb

import (
	"bytes"
	"sort"

	"github.com/braid-db/braid/codec"
	"github.com/braid-db/braid/objkind"
)

// RegisterEntry is a Register's mapping target: what kind of thing the
// entry's OID refers to.
type RegisterEntry struct {
	Kind   objkind.RegisterEntryKind
	Target OID
}

// Register is an ordered mapping from RegisterEntryKey to (kind, OID).
// Entries always serialize in ascending key-byte order regardless of
// insertion order; duplicate keys are impossible because the backing map
// enforces uniqueness.
type Register struct {
	entries map[RegisterEntryKey]RegisterEntry
}

// NewRegister returns an empty Register.
func NewRegister() *Register {
	return &Register{entries: make(map[RegisterEntryKey]RegisterEntry)}
}

// Set inserts or replaces the entry at key.
func (r *Register) Set(key RegisterEntryKey, entry RegisterEntry) {
	r.entries[key] = entry
}

// Get looks up the entry at key.
func (r *Register) Get(key RegisterEntryKey) (RegisterEntry, bool) {
	e, ok := r.entries[key]
	return e, ok
}

// Len reports the number of entries.
func (r *Register) Len() int { return len(r.entries) }

// RegisterEntryPair pairs a key with its entry, in the order entries are
// walked for serialization.
type RegisterEntryPair struct {
	Key   RegisterEntryKey
	Entry RegisterEntry
}

// Entries returns every entry sorted ascending by key bytes — the
// canonical serialization order.
func (r *Register) Entries() []RegisterEntryPair {
	out := make([]RegisterEntryPair, 0, len(r.entries))
	for k, e := range r.entries {
		out = append(out, RegisterEntryPair{Key: k, Entry: e})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

// Encode produces the canonical header-inclusive byte image and its OID.
func (r *Register) Encode() (OID, []byte, error) {
	buf, err := buildObject(objkind.Register, func(w *codec.Writer) error {
		return writeRegisterPayload(w, r.Entries())
	})
	if err != nil {
		return OID{}, nil, err
	}
	return Hash(buf), buf, nil
}

func writeRegisterPayload(w *codec.Writer, entries []RegisterEntryPair) error {
	if err := w.WriteU32LE(uint32(len(entries))); err != nil {
		return err
	}
	for _, p := range entries {
		if err := w.WriteOID(p.Entry.Target); err != nil {
			return err
		}
		if err := w.WriteKind(uint8(p.Entry.Kind)); err != nil {
			return err
		}
		if err := w.WriteNullTerminatedString(string(p.Key)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRegister decodes a full header-inclusive object buffer as a
// Register.
func DecodeRegister(data []byte) (*Register, error) {
	r := codec.NewReader(bytes.NewReader(data))
	if _, err := readHeader(r, objkind.Register); err != nil {
		return nil, err
	}
	count, err := r.ReadU32LE()
	if err != nil {
		return nil, err
	}
	reg := NewRegister()
	for i := uint32(0); i < count; i++ {
		target, err := r.ReadOID()
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
		rawKey, err := r.ReadNullTerminatedString()
		if err != nil {
			return nil, err
		}
		key, err := NewRegisterEntryKey(rawKey)
		if err != nil {
			return nil, err
		}
		reg.Set(key, RegisterEntry{Kind: kind, Target: target})
	}
	return reg, nil
}
