package buf

import (
	"math"

	"github.com/joshuapare/mpack/internal/wire"
)

// Cursor is a bounds-checked sequential reader over a borrowed byte slice,
// per spec.md §4.2. Every read validates availability before advancing
// position; a failed read leaves the position unchanged.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps b for sequential reading starting at position 0.
func NewCursor(b []byte) *Cursor { return &Cursor{data: b} }

// Pos returns the current read position.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// PeekByte returns the next byte without advancing, or an error if the
// cursor is at the end.
func (c *Cursor) PeekByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, wire.NewUnexpectedEnd(1, c.Remaining(), c.pos)
	}
	return c.data[c.pos], nil
}

// take consumes and returns n bytes from the current position, bounds
// checked against both the backing slice length and int overflow: n is
// attacker-controlled (it comes straight off a decoded length header), so
// c.pos+n must be computed without wrapping before it is compared.
func (c *Cursor) take(n int) ([]byte, error) {
	end, ok := addOverflowSafe(c.pos, n)
	if n < 0 || !ok || end > len(c.data) {
		return nil, wire.NewUnexpectedEnd(n, c.Remaining(), c.pos)
	}
	s := c.data[c.pos:end]
	c.pos = end
	return s, nil
}

// addOverflowSafe adds a and b, reporting ok = false when the result would
// overflow int.
func addOverflowSafe(a, b int) (sum int, ok bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// ReadByte consumes and returns one byte.
func (c *Cursor) ReadByte() (byte, error) {
	s, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return s[0], nil
}

// ReadBytes consumes and returns n bytes as a borrowed sub-slice of the
// cursor's backing array. Callers needing ownership must copy.
func (c *Cursor) ReadBytes(n int) ([]byte, error) { return c.take(n) }

// ReadU16BE consumes and returns a big-endian uint16.
func (c *Cursor) ReadU16BE() (uint16, error) {
	s, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return U16BE(s), nil
}

// ReadU32BE consumes and returns a big-endian uint32.
func (c *Cursor) ReadU32BE() (uint32, error) {
	s, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return U32BE(s), nil
}

// ReadU64BE consumes and returns a big-endian uint64.
func (c *Cursor) ReadU64BE() (uint64, error) {
	s, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return U64BE(s), nil
}

// ReadI8 consumes and returns a signed byte.
func (c *Cursor) ReadI8() (int8, error) {
	s, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return int8(s[0]), nil
}

// ReadI16BE consumes and returns a big-endian int16.
func (c *Cursor) ReadI16BE() (int16, error) {
	s, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return I16BE(s), nil
}

// ReadI32BE consumes and returns a big-endian int32.
func (c *Cursor) ReadI32BE() (int32, error) {
	s, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return I32BE(s), nil
}

// ReadI64BE consumes and returns a big-endian int64.
func (c *Cursor) ReadI64BE() (int64, error) {
	s, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return I64BE(s), nil
}

// ReadF32BE consumes and returns a big-endian IEEE-754 float32.
func (c *Cursor) ReadF32BE() (float32, error) {
	bits, err := c.ReadU32BE()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// ReadF64BE consumes and returns a big-endian IEEE-754 float64.
func (c *Cursor) ReadF64BE() (float64, error) {
	bits, err := c.ReadU64BE()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}
