// Package objdb implements the typed object model and canonical binary
// serialization of the content-addressed object database: Content,
// Register, SaveRegister, Save, and Commit, plus the OID and Timestamp
// primitives they're built from.
package objdb

import (
	"github.com/braid-db/braid/codec"
	"github.com/braid-db/braid/digest"
	"github.com/braid-db/braid/errs"
	"github.com/braid-db/braid/internal/buf"
)

// Size is the length in bytes of an OID.
const Size = codec.OIDSize

// OID is a 32-byte content digest identifying an object.
type OID [Size]byte

// ZeroOID is the sentinel meaning "no such object". It must never be a
// valid stored object's digest.
var ZeroOID OID

// IsZero reports whether oid is the all-zero sentinel.
func (oid OID) IsZero() bool { return oid == ZeroOID }

const hexDigits = "0123456789abcdef"

// String renders oid as 64 lowercase hex characters.
func (oid OID) String() string {
	var out [Size * 2]byte
	for i, b := range oid {
		out[i*2] = hexDigits[b>>4]
		out[i*2+1] = hexDigits[b&0x0f]
	}
	return string(out[:])
}

// ParseOID parses 64 lowercase hex characters into an OID. Uppercase
// characters and any delimiter are rejected.
func ParseOID(s string) (OID, error) {
	var oid OID
	if len(s) != Size*2 {
		return oid, errs.Wrap(errBadOIDString(s))
	}
	for i := 0; i < Size; i++ {
		hi, lo := s[i*2], s[i*2+1]
		if !buf.HexNibbleValid(hi) || !buf.HexNibbleValid(lo) {
			return OID{}, errs.Wrap(errBadOIDString(s))
		}
		oid[i] = nibble(hi)<<4 | nibble(lo)
	}
	return oid, nil
}

func nibble(c byte) byte {
	if c >= 'a' {
		return c - 'a' + 10
	}
	return c - '0'
}

func errBadOIDString(s string) error {
	return &errs.Error{Kind: errs.InvalidUtf8, Msg: "malformed OID string: " + s}
}

// Hash computes the OID of a header-inclusive canonical byte buffer. The
// spec mandates the header-inclusive form: the digest covers the 5-byte
// [kind][length] header as well as the payload (see SPEC_FULL.md's
// resolution of the header-inclusive-vs-payload-only ambiguity).
func Hash(data []byte) OID {
	return OID(digest.Sum(data))
}
