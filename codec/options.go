package codec

import "github.com/joshuapare/mpack/internal/wire"

// EncoderOption configures an Encoder at construction time, following the
// teacher's functional-options idiom (pkg/hive/options.go's Options structs
// applied via With* setters rather than a config file or environment
// variables — this library persists no configuration, see SPEC_FULL.md §6.2).
type EncoderOption func(*Encoder)

// WithInitialCapacity hints the encoder's output buffer's starting
// capacity, avoiding the first few growth reallocations for callers who
// know roughly how large their encoded output will be.
func WithInitialCapacity(n int) EncoderOption {
	return func(e *Encoder) { e.initialCap = n }
}

// WithFloat32Widening opts into emitting float32 (0xca) for Float values
// that round-trip exactly through float32, per spec.md §4.3's and §9's
// explicitly-permitted widening. Default is off, so default encoder output
// always matches the conformance surface (float64 unconditionally).
func WithFloat32Widening(enabled bool) EncoderOption {
	return func(e *Encoder) { e.float32Widening = enabled }
}

// DecoderOption configures a Decoder at construction time.
type DecoderOption func(*Decoder)

// WithMaxDepth overrides the recursion-depth guard for nested arrays and
// maps, per spec.md §5. The default is wire.DefaultMaxDepth. The record
// layer's own nesting guard is fixed at wire.DefaultMaxDepth and is not
// affected by this option.
func WithMaxDepth(n int) DecoderOption {
	return func(d *Decoder) { d.maxDepth = n }
}

const defaultMaxDepth = wire.DefaultMaxDepth
