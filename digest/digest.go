// Package digest is the one seam in this repository that reaches outside
// the corpus-grounded dependency set: the spec treats the cryptographic
// hash primitive as an external black box (a 32-byte digest function), but
// the sentinel OIDs it fixes (empty Register, empty SaveRegister, the root
// commit) are only reproducible by using the same hash family the
// original implementation used. That family is BLAKE3; see DESIGN.md for
// why this dependency doesn't come from the retrieved example corpus.
package digest

import "lukechampine.com/blake3"

// Size is the digest length in bytes.
const Size = 32

// Sum hashes data in one call.
func Sum(data []byte) [Size]byte {
	return blake3.Sum256(data)
}

// Hasher incrementally computes a digest; Write never returns an error.
type Hasher struct {
	h *blake3.Hasher
}

// New returns a ready-to-use streaming hasher.
func New() *Hasher {
	return &Hasher{h: blake3.New(Size, nil)}
}

func (h *Hasher) Write(p []byte) (int, error) {
	return h.h.Write(p)
}

// Sum finalizes the hasher and returns the digest. The hasher remains
// usable afterward per hash.Hash semantics, but callers in this package
// always construct a fresh Hasher per object.
func (h *Hasher) Sum() [Size]byte {
	var out [Size]byte
	copy(out[:], h.h.Sum(nil))
	return out
}
