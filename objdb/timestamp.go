package objdb

import (
	"math/big"
	"time"

	"github.com/braid-db/braid/codec"
)

// Timestamp is nanoseconds since the Unix epoch (signed, 128-bit on the
// wire) plus a signed whole-second UTC offset. It is kept at full wire
// fidelity as a *big.Int rather than narrowed to time.Time, since the wire
// format permits values outside time.Time's int64-nanosecond range.
type Timestamp struct {
	Nanos         *big.Int
	OffsetSeconds int32
}

// Epoch is the Unix-epoch Timestamp used by the root commit.
func Epoch() Timestamp {
	return Timestamp{Nanos: big.NewInt(0), OffsetSeconds: 0}
}

// FromTime builds a Timestamp from a time.Time, preserving its UTC offset.
func FromTime(t time.Time) Timestamp {
	_, offset := t.Zone()
	return Timestamp{
		Nanos:         big.NewInt(t.UnixNano()),
		OffsetSeconds: int32(offset),
	}
}

// ToTime converts back to a time.Time, succeeding only when Nanos fits in
// an int64 (the practical range of every timestamp this database will
// actually store).
func (t Timestamp) ToTime() (time.Time, bool) {
	if !t.Nanos.IsInt64() {
		return time.Time{}, false
	}
	loc := time.FixedZone("", int(t.OffsetSeconds))
	return time.Unix(0, t.Nanos.Int64()).In(loc), true
}

// Equal reports whether two timestamps encode to the same bytes.
func (t Timestamp) Equal(other Timestamp) bool {
	return t.Nanos.Cmp(other.Nanos) == 0 && t.OffsetSeconds == other.OffsetSeconds
}

func (t Timestamp) encode(w *codec.Writer) error {
	return w.WriteTimestamp(t.Nanos, t.OffsetSeconds)
}

func decodeTimestamp(r *codec.Reader) (Timestamp, error) {
	nanos, offset, err := r.ReadTimestamp()
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{Nanos: nanos, OffsetSeconds: offset}, nil
}
