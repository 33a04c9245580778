package buf

import "testing"

func TestU32LE(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89}
	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}

	short := []byte{0xAA}
	if U32LE(short) != 0 {
		t.Fatalf("U32LE short should be 0")
	}
}
