package buf

import "testing"

func TestBufferGrowthPolicy(t *testing.T) {
	b := NewBuffer(4)
	if cap(b.data) != 4 {
		t.Fatalf("initial cap = %d, want 4", cap(b.data))
	}
	b.WriteBytes([]byte{1, 2, 3, 4})
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
	// Writing one more byte must double capacity per spec's growth policy.
	b.WriteByte(5)
	if cap(b.data) != 8 {
		t.Fatalf("cap after growth = %d, want 8 (2x)", cap(b.data))
	}
	// A large write must grow to fit the request even beyond 2x.
	b.Grow(100)
	if cap(b.data) < b.Len()+100 {
		t.Fatalf("cap after large Grow = %d, too small", cap(b.data))
	}
}

func TestBufferReset(t *testing.T) {
	b := NewBuffer(0)
	b.WriteBytes([]byte{1, 2, 3})
	backing := cap(b.data)
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", b.Len())
	}
	if cap(b.data) != backing {
		t.Fatalf("Reset must not release backing storage")
	}
	b.WriteByte(9)
	if b.Bytes()[0] != 9 {
		t.Fatalf("buffer not reusable after Reset")
	}
}

func TestBufferScalarWrites(t *testing.T) {
	b := NewBuffer(0)
	b.WriteU16BE(0x0102)
	b.WriteU32BE(0x03040506)
	b.WriteU64BE(0x0708090a0b0c0d0e)
	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e}
	got := b.Bytes()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = 0x%02x, want 0x%02x", i, got[i], want[i])
		}
	}
}

func TestBufferFloatWrites(t *testing.T) {
	b := NewBuffer(0)
	b.WriteF64BE(1.5)
	c := NewCursor(b.Bytes())
	got, err := c.ReadF64BE()
	if err != nil || got != 1.5 {
		t.Fatalf("WriteF64BE/ReadF64BE round-trip: got %v, err %v", got, err)
	}
}
