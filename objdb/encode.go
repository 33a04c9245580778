package objdb

import (
	"bytes"
	"encoding/binary"

	"github.com/braid-db/braid/codec"
	"github.com/braid-db/braid/errs"
	"github.com/braid-db/braid/objkind"
)

// buildObject writes [kind][length_placeholder][payload], patches the
// length in place once the payload size is known, and returns the
// complete header-inclusive buffer. The OID is computed over this whole
// buffer (see oid.go's Hash), per the spec's header-inclusive mandate.
func buildObject(kind objkind.ObjectKind, payload func(w *codec.Writer) error) ([]byte, error) {
	var b bytes.Buffer
	w := codec.NewWriter(&b)
	if err := w.WriteU8(byte(kind)); err != nil {
		return nil, err
	}
	if err := w.WriteU32LE(0); err != nil {
		return nil, err
	}
	if err := payload(w); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	out := b.Bytes()
	length := uint32(len(out) - codec.HeaderSize)
	binary.LittleEndian.PutUint32(out[1:5], length)
	return out, nil
}

// readHeader decodes the 5-byte header and validates the kind matches
// expected, returning UnexpectedKind otherwise.
func readHeader(r *codec.Reader, expected objkind.ObjectKind) (payloadLen uint32, err error) {
	kindByte, err := r.ReadKind()
	if err != nil {
		return 0, err
	}
	actual, err := objkind.ParseObjectKind(kindByte)
	if err != nil {
		return 0, err
	}
	if actual != expected {
		return 0, errs.WrongKind(expected, actual)
	}
	return r.ReadU32LE()
}
