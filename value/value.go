// Package value defines the tagged-variant value tree that is the single
// currency of the wire codec, per spec.md §3.1. A Value knows its Kind at
// runtime and carries exactly the payload that Kind implies; the encoder
// switches on Kind exhaustively rather than relying on a type hierarchy,
// per the Design Notes of spec.md §9.
package value

import "math"

// Kind is the closed set of value-tree variants.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBinary
	KindArray
	KindMap
)

// String returns a human-readable name for the Kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// MapEntry is one (string-key, value) pair of a Map value. Maps exchanged
// with the wire codec use string keys exclusively, per spec.md §3.5; this
// is enforced structurally here rather than with a Go map, which also
// preserves the entry order the caller supplied (insertion order on encode,
// wire order on decode) per spec.md §3.1's ordering invariant.
type MapEntry struct {
	Key string
	Val Value
}

// Value is the tagged variant over {null, bool, int, float, string, binary,
// array, map}. Only the field matching Kind is meaningful; all others are
// zero. Value nodes produced by the decoder are owned by the caller; nodes
// handed to the encoder are borrowed for the duration of the call, per
// spec.md §3.1.
type Value struct {
	Kind Kind

	boolVal   bool
	intVal    int64
	floatVal  float64
	strVal    string
	binVal    []byte
	arrayVal  []Value
	mapVal    []MapEntry
}

// Null is the singleton null value.
var Null = Value{Kind: KindNull}

// Bool constructs a Bool value.
func Bool(b bool) Value { return Value{Kind: KindBool, boolVal: b} }

// Int constructs an Int value from a signed 64-bit integer. Per spec.md
// §3.1, this represents any MessagePack integer; values that do not fit a
// signed 64-bit range (unsigned values >= 2^63) cannot be constructed this
// way and are rejected by the decoder instead.
func Int(v int64) Value { return Value{Kind: KindInt, intVal: v} }

// Float constructs a Float value. NaN is preserved as-is; signaling vs
// quiet NaN bit patterns are not distinguished, per spec.md §3.1.
func Float(v float64) Value { return Value{Kind: KindFloat, floatVal: v} }

// String constructs a String value. The constructor does not validate s;
// the encoder rejects a string that is not valid UTF-8 with an
// UnsupportedType error, and the decoder rejects invalid UTF-8 on the wire
// with InvalidUTF8.
func String(s string) Value { return Value{Kind: KindString, strVal: s} }

// Binary constructs a Binary value from an opaque byte sequence. The slice
// is stored as given; callers that hand encoder input a slice they intend
// to mutate afterward should copy first.
func Binary(b []byte) Value { return Value{Kind: KindBinary, binVal: b} }

// Array constructs an Array value from an ordered sequence of elements.
func Array(elems []Value) Value { return Value{Kind: KindArray, arrayVal: elems} }

// Map constructs a Map value from an ordered sequence of string-keyed
// entries. Key order at encode time equals the order of entries, per
// spec.md §3.1.
func Map(entries []MapEntry) Value { return Value{Kind: KindMap, mapVal: entries} }

// IsNull reports whether v is the Null variant.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Bool returns the payload of a Bool value. The second return is false if
// v is not a Bool.
func (v Value) Bool() (bool, bool) { return v.boolVal, v.Kind == KindBool }

// Int returns the payload of an Int value. The second return is false if v
// is not an Int.
func (v Value) Int() (int64, bool) { return v.intVal, v.Kind == KindInt }

// Float returns the payload of a Float value. The second return is false
// if v is not a Float.
func (v Value) Float() (float64, bool) { return v.floatVal, v.Kind == KindFloat }

// Str returns the payload of a String value. The second return is false if
// v is not a String. (Named Str, not String, to avoid colliding with the
// String constructor above.)
func (v Value) Str() (string, bool) { return v.strVal, v.Kind == KindString }

// Bytes returns the payload of a Binary value. The second return is false
// if v is not Binary.
func (v Value) Bytes() ([]byte, bool) { return v.binVal, v.Kind == KindBinary }

// Elems returns the payload of an Array value. The second return is false
// if v is not an Array.
func (v Value) Elems() ([]Value, bool) { return v.arrayVal, v.Kind == KindArray }

// Entries returns the payload of a Map value. The second return is false
// if v is not a Map.
func (v Value) Entries() ([]MapEntry, bool) { return v.mapVal, v.Kind == KindMap }

// MapGet looks up key within a Map value's entries, scanning in order and
// keeping the last match. This gives duplicate wire-map keys
// last-occurrence-wins semantics, matching Go's own map literal/assignment
// behavior (a conforming encoder never produces duplicate keys; this
// matters only for adversarial or hand-crafted input).
func (v Value) MapGet(key string) (Value, bool) {
	found := false
	var result Value
	for _, e := range v.mapVal {
		if e.Key == key {
			result = e.Val
			found = true
		}
	}
	return result, found
}

// Equal reports structural equality between v and o, per spec.md §8's
// round-trip property: NaN compares equal to NaN, integers compare by
// numeric value, and maps compare by entry sequence (insertion/wire order
// is treated as significant, matching this implementation's ordered-map
// representation).
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindInt:
		return a.intVal == b.intVal
	case KindFloat:
		if math.IsNaN(a.floatVal) && math.IsNaN(b.floatVal) {
			return true
		}
		return a.floatVal == b.floatVal
	case KindString:
		return a.strVal == b.strVal
	case KindBinary:
		return bytesEqual(a.binVal, b.binVal)
	case KindArray:
		if len(a.arrayVal) != len(b.arrayVal) {
			return false
		}
		for i := range a.arrayVal {
			if !Equal(a.arrayVal[i], b.arrayVal[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.mapVal) != len(b.mapVal) {
			return false
		}
		for i := range a.mapVal {
			if a.mapVal[i].Key != b.mapVal[i].Key || !Equal(a.mapVal[i].Val, b.mapVal[i].Val) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
