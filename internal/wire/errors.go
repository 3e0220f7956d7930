package wire

import "fmt"

// EncodeErrorKind classifies encode-side failures, per spec.md §7.
type EncodeErrorKind int

const (
	EncodeErrUnsupportedType EncodeErrorKind = iota
	EncodeErrBufferOverflow
)

// EncodeError is the structured error type raised by the encoder. Position
// is a conceptual offset into the value being encoded, or -1 when not
// meaningful, matching spec.md §7's propagation policy.
type EncodeError struct {
	Kind     EncodeErrorKind
	Message  string
	Position int
	Err      error
}

func (e *EncodeError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("encode: %s (position %d)", e.Message, e.Position)
	}
	return fmt.Sprintf("encode: %s", e.Message)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// NewUnsupportedType reports an attempt to encode a value.Kind the encoder
// does not recognize.
func NewUnsupportedType(desc string, pos int) *EncodeError {
	return &EncodeError{
		Kind:     EncodeErrUnsupportedType,
		Message:  fmt.Sprintf("unsupported value type: %s", desc),
		Position: pos,
	}
}

// DecodeErrorKind classifies decode-side failures, per spec.md §7.
type DecodeErrorKind int

const (
	DecodeErrUnexpectedEnd DecodeErrorKind = iota
	DecodeErrInvalidFormat
	DecodeErrMalformedData
	DecodeErrInvalidUTF8
)

// DecodeError is the structured error type raised by the cursor and the
// decoder. Position is the input-cursor position at the offending byte,
// inclusive, per spec.md §4.4's failure semantics.
type DecodeError struct {
	Kind       DecodeErrorKind
	Message    string
	Position   int
	FormatByte byte
	HaveByte   bool
	Needed     int
	Available  int
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case DecodeErrUnexpectedEnd:
		return fmt.Sprintf("decode: unexpected end of input at position %d: needed %d bytes, had %d",
			e.Position, e.Needed, e.Available)
	case DecodeErrInvalidFormat:
		return fmt.Sprintf("decode: invalid format byte 0x%02x at position %d", e.FormatByte, e.Position)
	case DecodeErrInvalidUTF8:
		return fmt.Sprintf("decode: invalid UTF-8 string at position %d", e.Position)
	default:
		return fmt.Sprintf("decode: %s at position %d", e.Message, e.Position)
	}
}

// NewUnexpectedEnd reports a read that would pass the end of the input.
func NewUnexpectedEnd(needed, available, pos int) *DecodeError {
	return &DecodeError{
		Kind:      DecodeErrUnexpectedEnd,
		Needed:    needed,
		Available: available,
		Position:  pos,
	}
}

// NewInvalidFormat reports a reserved, ext, or fixext format byte.
func NewInvalidFormat(formatByte byte, pos int) *DecodeError {
	return &DecodeError{
		Kind:       DecodeErrInvalidFormat,
		FormatByte: formatByte,
		HaveByte:   true,
		Position:   pos,
	}
}

// NewMalformedData reports a semantic violation: non-string map key,
// uint64 out of signed-64-bit range, nesting too deep, and similar.
func NewMalformedData(message string, pos int) *DecodeError {
	return &DecodeError{
		Kind:     DecodeErrMalformedData,
		Message:  message,
		Position: pos,
	}
}

// NewInvalidUTF8 reports a string payload that is not valid UTF-8.
func NewInvalidUTF8(pos int) *DecodeError {
	return &DecodeError{
		Kind:     DecodeErrInvalidUTF8,
		Position: pos,
	}
}
