package buf

import "math"

// Buffer is an append-only, growable output buffer with exponential
// reserve, matching spec.md §4.1. It is owned by a single encoder instance
// and is reused across calls via Reset, the way the teacher's commit path
// pools and grows scratch buffers in internal/edit/pool.go rather than
// reallocating on every operation.
type Buffer struct {
	data []byte
}

// NewBuffer returns a Buffer with the given initial capacity hint.
func NewBuffer(capHint int) *Buffer {
	if capHint < 0 {
		capHint = 0
	}
	return &Buffer{data: make([]byte, 0, capHint)}
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the buffer's current contents. The returned slice aliases
// the buffer's internal storage and is only valid until the next write or
// Reset; callers that need an owned copy must copy it themselves.
func (b *Buffer) Bytes() []byte { return b.data }

// Reset sets the length to zero without releasing the backing storage, so
// the buffer can be reused across encode calls without reallocating.
func (b *Buffer) Reset() { b.data = b.data[:0] }

// Grow ensures there is room for at least additional more bytes, growing
// capacity to max(2*capacity, len+additional) when the current capacity is
// insufficient, per spec.md §4.1's growth policy.
func (b *Buffer) Grow(additional int) {
	if additional <= 0 {
		return
	}
	need := len(b.data) + additional
	if cap(b.data) >= need {
		return
	}
	newCap := cap(b.data) * 2
	if newCap < need {
		newCap = need
	}
	if newCap < 0 || newCap > math.MaxInt32*2 {
		// Defensive clamp; a single MessagePack value cannot legitimately
		// require more than this much output.
		newCap = need
	}
	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
}

// Reserve is an alias for Grow, for callers sizing the buffer ahead of a
// known write.
func (b *Buffer) Reserve(additional int) { b.Grow(additional) }

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(v byte) {
	b.Grow(1)
	b.data = append(b.data, v)
}

// WriteBytes appends p verbatim.
func (b *Buffer) WriteBytes(p []byte) {
	b.Grow(len(p))
	b.data = append(b.data, p...)
}

// WriteU16BE appends a big-endian uint16.
func (b *Buffer) WriteU16BE(v uint16) {
	b.Grow(2)
	n := len(b.data)
	b.data = b.data[:n+2]
	PutU16BE(b.data[n:], v)
}

// WriteU32BE appends a big-endian uint32.
func (b *Buffer) WriteU32BE(v uint32) {
	b.Grow(4)
	n := len(b.data)
	b.data = b.data[:n+4]
	PutU32BE(b.data[n:], v)
}

// WriteU64BE appends a big-endian uint64.
func (b *Buffer) WriteU64BE(v uint64) {
	b.Grow(8)
	n := len(b.data)
	b.data = b.data[:n+8]
	PutU64BE(b.data[n:], v)
}

// WriteF32BE appends a big-endian IEEE-754 float32.
func (b *Buffer) WriteF32BE(v float32) {
	b.WriteU32BE(math.Float32bits(v))
}

// WriteF64BE appends a big-endian IEEE-754 float64.
func (b *Buffer) WriteF64BE(v float64) {
	b.WriteU64BE(math.Float64bits(v))
}
