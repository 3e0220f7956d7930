package buf

import (
	"math"
	"testing"
)

func TestCursorSequentialReads(t *testing.T) {
	c := NewCursor([]byte{0xaa, 0x01, 0x02, 0x03, 0x04})
	b, err := c.ReadByte()
	if err != nil || b != 0xaa {
		t.Fatalf("ReadByte = %v, %v", b, err)
	}
	if c.Pos() != 1 {
		t.Fatalf("Pos() = %d, want 1", c.Pos())
	}
	u32, err := c.ReadU32BE()
	if err != nil || u32 != 0x01020304 {
		t.Fatalf("ReadU32BE = 0x%x, %v", u32, err)
	}
	if c.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", c.Remaining())
	}
}

func TestCursorUnexpectedEnd(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})
	_, err := c.ReadU32BE()
	if err == nil {
		t.Fatalf("expected UnexpectedEnd error")
	}
	if c.Pos() != 0 {
		t.Fatalf("position must not advance on a failed read, got %d", c.Pos())
	}
}

func TestCursorPeekDoesNotAdvance(t *testing.T) {
	c := NewCursor([]byte{0x42})
	b, err := c.PeekByte()
	if err != nil || b != 0x42 {
		t.Fatalf("PeekByte = %v, %v", b, err)
	}
	if c.Pos() != 0 {
		t.Fatalf("PeekByte must not advance position")
	}
}

func TestCursorReadBytesRejectsOverflowingLength(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03})
	if _, err := c.ReadBytes(math.MaxInt); err == nil {
		t.Fatalf("expected UnexpectedEnd error for an overflowing length")
	}
	if c.Pos() != 0 {
		t.Fatalf("position must not advance on a failed read, got %d", c.Pos())
	}
}

func TestCursorReadBytesBorrows(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	c := NewCursor(data)
	s, err := c.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if len(s) != 3 || s[0] != 1 {
		t.Fatalf("ReadBytes returned %v", s)
	}
	data[0] = 99
	if s[0] != 99 {
		t.Fatalf("ReadBytes must borrow, not copy")
	}
}
