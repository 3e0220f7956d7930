package codec

import (
	"unicode/utf8"

	"github.com/joshuapare/mpack/internal/buf"
	"github.com/joshuapare/mpack/internal/wire"
	"github.com/joshuapare/mpack/value"
)

// Decoder reads a format byte, dispatches on it, and reconstructs a
// value.Value tree, recursing for arrays and maps, per spec.md §4.4.
type Decoder struct {
	maxDepth int
}

// NewDecoder constructs a Decoder with the given options applied over the
// spec.md §5 default maximum nesting depth.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode decodes exactly one complete value from the front of b. After a
// successful decode the cursor has consumed exactly the encoded length of
// the returned node; trailing bytes, if any, are not an error at this
// layer, per spec.md §4.4.
func (d *Decoder) Decode(b []byte) (value.Value, error) {
	c := buf.NewCursor(b)
	return d.decodeValue(c, 0)
}

// Decode is a convenience that decodes one value with default options.
func Decode(b []byte) (value.Value, error) {
	return NewDecoder().Decode(b)
}

// DecodeAll decodes successive top-level values from b until it is
// exhausted. This is a domain-stack convenience beyond spec.md §1's
// single-value-per-call contract for callers who concatenate multiple
// MessagePack values in one buffer; it is built from repeated calls to the
// same single-value decode primitive, not a separate streaming mode.
func (d *Decoder) DecodeAll(b []byte) ([]value.Value, error) {
	c := buf.NewCursor(b)
	var out []value.Value
	for c.Remaining() > 0 {
		v, err := d.decodeValue(c, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (d *Decoder) decodeValue(c *buf.Cursor, depth int) (value.Value, error) {
	if depth > d.maxDepth {
		return value.Value{}, wire.NewMalformedData("nesting too deep", c.Pos())
	}

	pos := c.Pos()
	fb, err := c.ReadByte()
	if err != nil {
		return value.Value{}, err
	}

	switch {
	case fb <= wire.PositiveFixintMax:
		return value.Int(int64(fb)), nil
	case fb >= wire.NegativeFixintMin:
		return value.Int(int64(int8(fb))), nil
	case fb&0xf0 == wire.FixMapBase:
		return d.decodeMap(c, depth, int(fb&wire.FixMapMask))
	case fb&0xf0 == wire.FixArrayBase:
		return d.decodeArray(c, depth, int(fb&wire.FixArrayMask))
	case fb&0xe0 == wire.FixStrBase:
		return d.decodeStringBody(c, pos, int(fb&wire.FixStrMask))
	}

	switch fb {
	case wire.Nil:
		return value.Null, nil
	case wire.False:
		return value.Bool(false), nil
	case wire.True:
		return value.Bool(true), nil
	case wire.Reserved, wire.Ext8, wire.Ext16, wire.Ext32,
		wire.FixExt1, wire.FixExt2, wire.FixExt4, wire.FixExt8, wire.FixExt16:
		return value.Value{}, wire.NewInvalidFormat(fb, pos)
	case wire.Float32:
		f, err := c.ReadF32BE()
		if err != nil {
			return value.Value{}, err
		}
		return value.Float(float64(f)), nil
	case wire.Float64:
		f, err := c.ReadF64BE()
		if err != nil {
			return value.Value{}, err
		}
		return value.Float(f), nil
	case wire.Uint8:
		n, err := c.ReadByte()
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(n)), nil
	case wire.Uint16:
		n, err := c.ReadU16BE()
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(n)), nil
	case wire.Uint32:
		n, err := c.ReadU32BE()
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(n)), nil
	case wire.Uint64:
		n, err := c.ReadU64BE()
		if err != nil {
			return value.Value{}, err
		}
		if n > 1<<63-1 {
			return value.Value{}, wire.NewMalformedData("uint64 out of range", pos)
		}
		return value.Int(int64(n)), nil
	case wire.Int8:
		n, err := c.ReadI8()
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(n)), nil
	case wire.Int16:
		n, err := c.ReadI16BE()
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(n)), nil
	case wire.Int32:
		n, err := c.ReadI32BE()
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(int64(n)), nil
	case wire.Int64:
		n, err := c.ReadI64BE()
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(n), nil
	case wire.Bin8:
		n, err := c.ReadByte()
		if err != nil {
			return value.Value{}, err
		}
		return d.decodeBinaryBody(c, int(n))
	case wire.Bin16:
		n, err := c.ReadU16BE()
		if err != nil {
			return value.Value{}, err
		}
		return d.decodeBinaryBody(c, int(n))
	case wire.Bin32:
		n, err := c.ReadU32BE()
		if err != nil {
			return value.Value{}, err
		}
		return d.decodeBinaryBody(c, int(n))
	case wire.Str8:
		n, err := c.ReadByte()
		if err != nil {
			return value.Value{}, err
		}
		return d.decodeStringBody(c, c.Pos(), int(n))
	case wire.Str16:
		n, err := c.ReadU16BE()
		if err != nil {
			return value.Value{}, err
		}
		return d.decodeStringBody(c, c.Pos(), int(n))
	case wire.Str32:
		n, err := c.ReadU32BE()
		if err != nil {
			return value.Value{}, err
		}
		return d.decodeStringBody(c, c.Pos(), int(n))
	case wire.Array16:
		n, err := c.ReadU16BE()
		if err != nil {
			return value.Value{}, err
		}
		return d.decodeArray(c, depth, int(n))
	case wire.Array32:
		n, err := c.ReadU32BE()
		if err != nil {
			return value.Value{}, err
		}
		return d.decodeArray(c, depth, int(n))
	case wire.Map16:
		n, err := c.ReadU16BE()
		if err != nil {
			return value.Value{}, err
		}
		return d.decodeMap(c, depth, int(n))
	case wire.Map32:
		n, err := c.ReadU32BE()
		if err != nil {
			return value.Value{}, err
		}
		return d.decodeMap(c, depth, int(n))
	default:
		return value.Value{}, wire.NewInvalidFormat(fb, pos)
	}
}

func (d *Decoder) decodeStringBody(c *buf.Cursor, pos int, n int) (value.Value, error) {
	raw, err := c.ReadBytes(n)
	if err != nil {
		return value.Value{}, err
	}
	if !utf8.Valid(raw) {
		return value.Value{}, wire.NewInvalidUTF8(pos)
	}
	// Copy out of the borrowed input so the produced node does not alias
	// the caller's buffer, per spec.md §5's resource-ownership rule.
	owned := make([]byte, len(raw))
	copy(owned, raw)
	return value.String(string(owned)), nil
}

func (d *Decoder) decodeBinaryBody(c *buf.Cursor, n int) (value.Value, error) {
	raw, err := c.ReadBytes(n)
	if err != nil {
		return value.Value{}, err
	}
	owned := make([]byte, len(raw))
	copy(owned, raw)
	return value.Binary(owned), nil
}

func (d *Decoder) decodeArray(c *buf.Cursor, depth int, n int) (value.Value, error) {
	elems := make([]value.Value, 0, clampPrealloc(n))
	for i := 0; i < n; i++ {
		el, err := d.decodeValue(c, depth+1)
		if err != nil {
			return value.Value{}, err
		}
		elems = append(elems, el)
	}
	return value.Array(elems), nil
}

// decodeMap reads n key-value entries. A non-string key is a decode error,
// per spec.md §3.5/§4.4. Duplicate keys are not deduplicated at this layer
// (last-occurrence-wins is record.Decode's policy when resolving field
// values; see SPEC_FULL.md §9's Open Question resolution).
func (d *Decoder) decodeMap(c *buf.Cursor, depth int, n int) (value.Value, error) {
	entries := make([]value.MapEntry, 0, clampPrealloc(n))
	for i := 0; i < n; i++ {
		keyPos := c.Pos()
		key, err := d.decodeValue(c, depth+1)
		if err != nil {
			return value.Value{}, err
		}
		keyStr, ok := key.Str()
		if !ok {
			return value.Value{}, wire.NewMalformedData("non-string map key", keyPos)
		}
		val, err := d.decodeValue(c, depth+1)
		if err != nil {
			return value.Value{}, err
		}
		entries = append(entries, value.MapEntry{Key: keyStr, Val: val})
	}
	return value.Map(entries), nil
}

// clampPrealloc bounds how eagerly we pre-allocate for a declared
// array/map length, so a crafted header claiming billions of elements
// cannot force a huge allocation before the bytes backing it are even
// validated to exist.
func clampPrealloc(n int) int {
	const cap = 4096
	if n > cap {
		return cap
	}
	if n < 0 {
		return 0
	}
	return n
}
