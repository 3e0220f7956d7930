// Package codec implements the MessagePack wire encoder and decoder:
// format-byte dispatch, minimal-width integer selection, float emission,
// string/binary length-prefixing, and recursive array/map encode/decode
// over the internal/buf growable buffer and bounds-checked cursor.
package codec

import (
	"unicode/utf8"

	"github.com/joshuapare/mpack/internal/buf"
	"github.com/joshuapare/mpack/internal/wire"
	"github.com/joshuapare/mpack/value"
)

// Encoder walks a value.Value tree and emits the shortest valid
// MessagePack representation to an owned, reusable output buffer, per
// spec.md §4.3.
type Encoder struct {
	out             *buf.Buffer
	initialCap      int
	float32Widening bool
}

// NewEncoder constructs an Encoder ready for repeated use. Encode appends
// to the internal buffer and does not reset it, so call Reset before each
// encode whose output should not include earlier output (including a failed
// encode's partial output, per spec.md §4.3's failure semantics); Reset
// keeps the buffer's grown capacity.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{initialCap: 64}
	for _, opt := range opts {
		opt(e)
	}
	e.out = buf.NewBuffer(e.initialCap)
	return e
}

// Reset returns the encoder's internal buffer to an empty state without
// releasing its backing storage, so the same Encoder can be reused across
// calls without reallocating once the high-water mark is stable.
func (e *Encoder) Reset() { e.out.Reset() }

// Encode encodes v and returns the encoded bytes. The returned slice
// aliases the encoder's internal buffer; callers that retain it across the
// next Encode/Reset call must copy it first. On failure the buffer may be
// left partially written; call Reset before reusing the Encoder.
func (e *Encoder) Encode(v value.Value) ([]byte, error) {
	if err := e.encodeValue(v); err != nil {
		return nil, err
	}
	return e.out.Bytes(), nil
}

// Encode is a convenience that constructs a fresh Encoder, encodes v, and
// returns an owned copy of the result.
func Encode(v value.Value) ([]byte, error) {
	e := NewEncoder()
	b, err := e.Encode(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (e *Encoder) encodeValue(v value.Value) error {
	switch v.Kind {
	case value.KindNull:
		e.out.WriteByte(wire.Nil)
		return nil
	case value.KindBool:
		b, _ := v.Bool()
		if b {
			e.out.WriteByte(wire.True)
		} else {
			e.out.WriteByte(wire.False)
		}
		return nil
	case value.KindInt:
		n, _ := v.Int()
		e.encodeInt(n)
		return nil
	case value.KindFloat:
		f, _ := v.Float()
		e.encodeFloat(f)
		return nil
	case value.KindString:
		s, _ := v.Str()
		return e.encodeString(s)
	case value.KindBinary:
		b, _ := v.Bytes()
		return e.encodeBinary(b)
	case value.KindArray:
		elems, _ := v.Elems()
		return e.encodeArray(elems)
	case value.KindMap:
		entries, _ := v.Entries()
		return e.encodeMap(entries)
	default:
		return wire.NewUnsupportedType(v.Kind.String(), -1)
	}
}

// encodeInt selects the shortest admissible format for v, per the table in
// spec.md §4.3. The positive-fixint check precedes the uint8 check so that
// small non-negative values stay single-byte.
func (e *Encoder) encodeInt(v int64) {
	switch {
	case v >= 0 && v <= 127:
		e.out.WriteByte(byte(v))
	case v >= -32 && v <= -1:
		e.out.WriteByte(byte(int8(v)))
	case v >= 128 && v <= wire.Uint8Max:
		e.out.WriteByte(wire.Uint8)
		e.out.WriteByte(byte(v))
	case v >= 256 && v <= wire.Uint16Max:
		e.out.WriteByte(wire.Uint16)
		e.out.WriteU16BE(uint16(v))
	case v >= 65536 && v <= wire.Uint32Max:
		e.out.WriteByte(wire.Uint32)
		e.out.WriteU32BE(uint32(v))
	case v >= 1<<32:
		e.out.WriteByte(wire.Uint64)
		e.out.WriteU64BE(uint64(v))
	case v >= -128 && v <= -33:
		e.out.WriteByte(wire.Int8)
		e.out.WriteByte(byte(int8(v)))
	case v >= -32768 && v <= -129:
		e.out.WriteByte(wire.Int16)
		e.out.WriteU16BE(uint16(int16(v)))
	case v >= wire.Int32Min && v <= -32769:
		e.out.WriteByte(wire.Int32)
		e.out.WriteU32BE(uint32(int32(v)))
	default: // v <= -2147483649
		e.out.WriteByte(wire.Int64)
		e.out.WriteU64BE(uint64(v))
	}
}

// encodeFloat always emits float64, per spec.md §4.3, unless the caller
// opted into float32 widening and v round-trips exactly through float32.
func (e *Encoder) encodeFloat(v float64) {
	if e.float32Widening {
		if f32 := float32(v); float64(f32) == v {
			e.out.WriteByte(wire.Float32)
			e.out.WriteF32BE(f32)
			return
		}
	}
	e.out.WriteByte(wire.Float64)
	e.out.WriteF64BE(v)
}

func (e *Encoder) encodeString(s string) error {
	if !utf8.ValidString(s) {
		return wire.NewUnsupportedType("string is not valid UTF-8", -1)
	}
	l := len(s)
	switch {
	case l <= wire.FixStrMax:
		e.out.WriteByte(wire.FixStrBase | byte(l))
	case l <= wire.Uint8Max:
		e.out.WriteByte(wire.Str8)
		e.out.WriteByte(byte(l))
	case l <= wire.Uint16Max:
		e.out.WriteByte(wire.Str16)
		e.out.WriteU16BE(uint16(l))
	default:
		e.out.WriteByte(wire.Str32)
		e.out.WriteU32BE(uint32(l))
	}
	e.out.WriteBytes([]byte(s))
	return nil
}

func (e *Encoder) encodeBinary(b []byte) error {
	l := len(b)
	switch {
	case l <= wire.Uint8Max:
		e.out.WriteByte(wire.Bin8)
		e.out.WriteByte(byte(l))
	case l <= wire.Uint16Max:
		e.out.WriteByte(wire.Bin16)
		e.out.WriteU16BE(uint16(l))
	default:
		e.out.WriteByte(wire.Bin32)
		e.out.WriteU32BE(uint32(l))
	}
	e.out.WriteBytes(b)
	return nil
}

func (e *Encoder) encodeArray(elems []value.Value) error {
	n := len(elems)
	switch {
	case n <= wire.FixArrayMax:
		e.out.WriteByte(wire.FixArrayBase | byte(n))
	case n <= wire.Uint16Max:
		e.out.WriteByte(wire.Array16)
		e.out.WriteU16BE(uint16(n))
	default:
		e.out.WriteByte(wire.Array32)
		e.out.WriteU32BE(uint32(n))
	}
	for _, el := range elems {
		if err := e.encodeValue(el); err != nil {
			return err
		}
	}
	return nil
}

// encodeMap writes entries in their given order; it does not reorder or
// deduplicate, per spec.md §4.3 and §9's duplicate-key Open Question (the
// encoder is not the layer that decides what "duplicate" means).
func (e *Encoder) encodeMap(entries []value.MapEntry) error {
	n := len(entries)
	switch {
	case n <= wire.FixMapMax:
		e.out.WriteByte(wire.FixMapBase | byte(n))
	case n <= wire.Uint16Max:
		e.out.WriteByte(wire.Map16)
		e.out.WriteU16BE(uint16(n))
	default:
		e.out.WriteByte(wire.Map32)
		e.out.WriteU32BE(uint32(n))
	}
	for _, entry := range entries {
		if err := e.encodeString(entry.Key); err != nil {
			return err
		}
		if err := e.encodeValue(entry.Val); err != nil {
			return err
		}
	}
	return nil
}
