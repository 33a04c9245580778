package buf

import "encoding/binary"

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
//
// Used by the filesystem backend's directory scanner to decode an object's
// payload-length field directly out of the 5-byte header it just read,
// without re-parsing through the full codec.Reader for a value it only
// needs to report alongside the object's kind and OID.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}
