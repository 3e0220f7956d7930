// Package mpack is the public surface of the MessagePack codec and record
// serialization layer: Encode/Decode for raw value trees, plus
// RegisterClass/EncodeRecord/DecodeRecord for the metadata-driven record
// layer built on top of it. Each call is backed by a fresh codec.Encoder or
// codec.Decoder reset per call, so the package holds no long-lived buffer
// state; the only shared mutable state is the record registry, which
// callers mutating concurrently must serialize themselves (record.Registry
// is not safe for concurrent mutation, matching spec.md §5).
package mpack

import (
	"github.com/joshuapare/mpack/codec"
	"github.com/joshuapare/mpack/record"
	"github.com/joshuapare/mpack/value"
)

// Encode encodes v to MessagePack bytes.
func Encode(v value.Value) ([]byte, error) {
	return codec.Encode(v)
}

// Decode decodes one MessagePack value from b.
func Decode(b []byte) (value.Value, error) {
	return codec.Decode(b)
}

// EncodeRecord encodes inst using its class's registered field schema in
// record.DefaultRegistry.
func EncodeRecord(inst record.Instance) ([]byte, error) {
	return record.Encode(inst, record.DefaultRegistry)
}

// DecodeRecord decodes b into a new instance of className, built and
// populated via f, using record.DefaultRegistry.
func DecodeRecord(b []byte, f record.Factory, className string) (any, error) {
	return record.Decode(b, f, className, record.DefaultRegistry)
}
