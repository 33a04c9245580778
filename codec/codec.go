// Package codec implements the primitive binary I/O the object schema is
// built on: fixed-width little-endian integers, OIDs, timestamps with UTC
// offsets, null-terminated strings, and kind-tag bytes. Readers and
// Writers wrap their source or sink in a bufio buffer (see NewReader and
// NewWriter), and each fixed-width read allocates a small scratch slice.
package codec

import (
	"bufio"
	"io"
)

// OIDSize is the length in bytes of a digest (see objdb.OID).
const OIDSize = 32

// HeaderSize is the length of the 5-byte object header: one kind byte
// followed by a little-endian uint32 payload length.
const HeaderSize = 5

// TimestampSize is the length of an encoded Timestamp: a 16-byte i128
// nanosecond count plus a 4-byte i32 offset in seconds.
const TimestampSize = 20

// NewReader wraps r with buffering sized for the small, many-field reads
// the object decoders perform.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{r: br}
}

// NewWriter wraps w with buffering; callers must call Flush once encoding
// completes.
func NewWriter(w io.Writer) *Writer {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	return &Writer{w: bw}
}
