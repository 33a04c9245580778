package codec

import (
	"bufio"
	"encoding/binary"
	"math/big"

	"github.com/braid-db/braid/errs"
)

// Writer encodes primitive wire values onto an underlying byte sink.
type Writer struct {
	w   *bufio.Writer
	err error
}

func (w *Writer) fail(err error) error {
	if w.err == nil {
		w.err = err
	}
	return w.err
}

// Flush pushes any buffered bytes to the underlying sink.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.w.Flush(); err != nil {
		return w.fail(errs.IOError(err))
	}
	return nil
}

// WriteU8 writes a single byte.
func (w *Writer) WriteU8(v uint8) error {
	if w.err != nil {
		return w.err
	}
	if err := w.w.WriteByte(v); err != nil {
		return w.fail(errs.IOError(err))
	}
	return nil
}

// WriteKind writes a single kind-tag byte. Callers pass the enum's uint8
// value (objkind.ObjectKind, RegisterEntryKind, SaveParentKind).
func (w *Writer) WriteKind(v uint8) error {
	return w.WriteU8(v)
}

// WriteU16LE writes an unsigned 16-bit little-endian integer.
func (w *Writer) WriteU16LE(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return w.writeRaw(b[:])
}

// WriteU32LE writes an unsigned 32-bit little-endian integer.
func (w *Writer) WriteU32LE(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return w.writeRaw(b[:])
}

// WriteU64LE writes an unsigned 64-bit little-endian integer.
func (w *Writer) WriteU64LE(v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return w.writeRaw(b[:])
}

// WriteI64LE writes a signed 64-bit little-endian integer.
func (w *Writer) WriteI64LE(v int64) error {
	return w.WriteU64LE(uint64(v))
}

// WriteI128LE writes a signed 128-bit little-endian integer as 16 raw
// bytes (two's complement), matching the wire Timestamp's nanosecond field.
func (w *Writer) WriteI128LE(v *big.Int) error {
	b := i128ToLE(v)
	return w.writeRaw(b[:])
}

// WriteI32LE writes a signed 32-bit little-endian integer.
func (w *Writer) WriteI32LE(v int32) error {
	return w.WriteU32LE(uint32(v))
}

// WriteOID writes the 32 raw bytes of an OID.
func (w *Writer) WriteOID(oid [OIDSize]byte) error {
	return w.writeRaw(oid[:])
}

// WriteOptionalOID writes either the given OID, or all-zero bytes when ok
// is false (the sentinel encoding for "absent").
func (w *Writer) WriteOptionalOID(oid [OIDSize]byte, ok bool) error {
	if !ok {
		var zero [OIDSize]byte
		return w.writeRaw(zero[:])
	}
	return w.WriteOID(oid)
}

// WriteTimestamp writes the 20-byte Timestamp encoding: a 16-byte
// little-endian i128 nanosecond count followed by a 4-byte little-endian
// i32 offset in seconds.
func (w *Writer) WriteTimestamp(nanos *big.Int, offsetSeconds int32) error {
	if err := w.WriteI128LE(nanos); err != nil {
		return err
	}
	return w.WriteI32LE(offsetSeconds)
}

// WriteNullTerminatedString writes UTF-8 bytes followed by a single 0 byte.
func (w *Writer) WriteNullTerminatedString(s string) error {
	if err := w.writeRaw([]byte(s)); err != nil {
		return err
	}
	return w.WriteU8(0)
}

// WriteRawString writes s with no terminator; used for the final field of
// a Save, which runs to the end of the payload.
func (w *Writer) WriteRawString(s string) error {
	return w.writeRaw([]byte(s))
}

func (w *Writer) writeRaw(b []byte) error {
	if w.err != nil {
		return w.err
	}
	if _, err := w.w.Write(b); err != nil {
		return w.fail(errs.IOError(err))
	}
	return nil
}

func i128ToLE(v *big.Int) [16]byte {
	var out [16]byte
	mag := new(big.Int).Abs(v)
	magBytes := mag.Bytes() // big-endian magnitude
	if v.Sign() >= 0 {
		for i := 0; i < len(magBytes) && i < 16; i++ {
			out[i] = magBytes[len(magBytes)-1-i]
		}
		return out
	}
	// Two's complement: out = 2^128 + v.
	mod := new(big.Int).Lsh(big.NewInt(1), 128)
	twos := new(big.Int).Add(mod, v)
	tb := twos.Bytes()
	for i := 0; i < len(tb) && i < 16; i++ {
		out[i] = tb[len(tb)-1-i]
	}
	return out
}
