package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/braid-db/braid/errs"
)

// maxOffsetSeconds bounds a UTC offset to one second short of a full day in
// either direction, matching the representable range of a whole-seconds
// UTC offset.
const maxOffsetSeconds = 86400

// Reader decodes primitive wire values off an underlying byte source.
type Reader struct {
	r *bufio.Reader
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, errs.IOError(err)
	}
	return b, nil
}

// ReadKind reads a single kind-tag byte, without interpreting it; callers
// pass the byte to the appropriate objkind.Parse* function.
func (r *Reader) ReadKind() (byte, error) {
	return r.ReadU8()
}

// ReadU16LE reads an unsigned 16-bit little-endian integer.
func (r *Reader) ReadU16LE() (uint16, error) {
	b, err := r.readRaw(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32LE reads an unsigned 32-bit little-endian integer.
func (r *Reader) ReadU32LE() (uint32, error) {
	b, err := r.readRaw(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64LE reads an unsigned 64-bit little-endian integer.
func (r *Reader) ReadU64LE() (uint64, error) {
	b, err := r.readRaw(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadI32LE reads a signed 32-bit little-endian integer.
func (r *Reader) ReadI32LE() (int32, error) {
	v, err := r.ReadU32LE()
	return int32(v), err
}

// ReadOID reads the 32 raw bytes of an OID.
func (r *Reader) ReadOID() ([OIDSize]byte, error) {
	var out [OIDSize]byte
	b, err := r.readRaw(OIDSize)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// ReadOptionalOID reads 32 bytes, reporting ok=false when they are all
// zero (the sentinel encoding for "absent").
func (r *Reader) ReadOptionalOID() (oid [OIDSize]byte, ok bool, err error) {
	oid, err = r.ReadOID()
	if err != nil {
		return oid, false, err
	}
	var zero [OIDSize]byte
	if oid == zero {
		return oid, false, nil
	}
	return oid, true, nil
}

// ReadTimestamp reads the 20-byte Timestamp encoding: a 16-byte
// little-endian i128 nanosecond count followed by a 4-byte little-endian
// i32 offset in seconds. It validates both fields are within the
// representable range, returning InvalidTimestamp / InvalidOffset
// otherwise.
func (r *Reader) ReadTimestamp() (nanos *big.Int, offsetSeconds int32, err error) {
	raw, err := r.readRaw(16)
	if err != nil {
		return nil, 0, err
	}
	nanos = leToI128(raw)

	offsetSeconds, err = r.ReadI32LE()
	if err != nil {
		return nil, 0, err
	}

	bound := new(big.Int).Lsh(big.NewInt(1), 127)
	negBound := new(big.Int).Neg(bound)
	if nanos.Cmp(bound) >= 0 || nanos.Cmp(negBound) < 0 {
		return nil, 0, errs.BadTimestamp(nanos.String())
	}
	if offsetSeconds <= -maxOffsetSeconds || offsetSeconds >= maxOffsetSeconds {
		return nil, 0, errs.BadOffset(offsetSeconds)
	}
	return nanos, offsetSeconds, nil
}

// ReadNullTerminatedString reads UTF-8 bytes up to and including a
// terminating 0 byte, returning the decoded string without the terminator.
func (r *Reader) ReadNullTerminatedString() (string, error) {
	var buf []byte
	for {
		b, err := r.r.ReadByte()
		if err != nil {
			return "", errs.IOError(err)
		}
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}
	if !utf8.Valid(buf) {
		return "", errs.InvalidUtf8Error(buf)
	}
	return string(buf), nil
}

// ReadStringToEnd reads every remaining byte from the underlying source as
// a UTF-8 string; used for a Save's final (author) field, which has no
// terminator.
func (r *Reader) ReadStringToEnd() (string, error) {
	var buf []byte
	tmp := make([]byte, 4096)
	for {
		n, err := r.r.Read(tmp)
		if n > 0 {
			buf = append(buf, tmp[:n]...)
		}
		if err != nil {
			break
		}
	}
	if !utf8.Valid(buf) {
		return "", errs.InvalidUtf8Error(buf)
	}
	return string(buf), nil
}

func (r *Reader) readRaw(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := readFull(r.r, b); err != nil {
		return nil, errs.IOError(err)
	}
	return b, nil
}

func readFull(r *bufio.Reader, b []byte) (int, error) {
	total := 0
	for total < len(b) {
		n, err := r.Read(b[total:])
		total += n
		if err != nil {
			return total, fmt.Errorf("read %d of %d bytes: %w", total, len(b), err)
		}
	}
	return total, nil
}

// leToI128 interprets 16 little-endian bytes as a signed two's-complement
// 128-bit integer.
func leToI128(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	v := new(big.Int).SetBytes(be)
	if be[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(len(b)*8))
		v.Sub(v, mod)
	}
	return v
}
