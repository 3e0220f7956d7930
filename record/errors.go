package record

import "fmt"

// RecordErrorKind classifies record-layer failures, per spec.md §7's
// record-specific error table.
type RecordErrorKind int

const (
	// ErrUnregisteredClass: Encode/Decode named a class the registry has no
	// entry for.
	ErrUnregisteredClass RecordErrorKind = iota
	// ErrMissingRequiredField: a non-optional field had no accessor value
	// on encode, or no wire-map entry on decode.
	ErrMissingRequiredField
	// ErrFieldTypeMismatch: a field's value did not match its declared type.
	ErrFieldTypeMismatch
	// ErrUnregisteredNestedClass: a FieldClass field's NestedTypeName is not
	// in the registry at the time it is actually needed (encode or decode).
	ErrUnregisteredNestedClass
	// ErrInvalidNestedClassFormat: the wire value backing a class-typed
	// field (or the record's own top-level value) was not a Map.
	ErrInvalidNestedClassFormat
	// ErrCircularReference: class A references class B (directly or
	// transitively) which references class A, detected by walking the
	// registered schema graph at the point a Class-typed field is about to
	// be encoded or decoded, rather than at registration time.
	ErrCircularReference
	// ErrNestingTooDeep: the decode-side nested-record recursion exceeded
	// the maximum nesting depth, the record-layer analogue of the wire
	// codec's MalformedData("nesting too deep"). Encode has no depth check.
	ErrNestingTooDeep
	// ErrInvalidFieldDescriptor: a Field or Class failed its own structural
	// invariants at registration time (empty name, duplicate field name,
	// missing/extraneous nested type name). This is additional to spec.md's
	// §7 table, which only covers encode/decode-time failures; registration
	// can fail too and needs its own reported Kind.
	ErrInvalidFieldDescriptor
)

func (k RecordErrorKind) String() string {
	switch k {
	case ErrUnregisteredClass:
		return "unregistered class"
	case ErrMissingRequiredField:
		return "missing required field"
	case ErrFieldTypeMismatch:
		return "field type mismatch"
	case ErrUnregisteredNestedClass:
		return "unregistered nested class"
	case ErrInvalidNestedClassFormat:
		return "invalid nested class format"
	case ErrCircularReference:
		return "circular reference"
	case ErrNestingTooDeep:
		return "nesting too deep"
	case ErrInvalidFieldDescriptor:
		return "invalid field descriptor"
	default:
		return "unknown"
	}
}

// RecordError is the structured error type raised by the registry and the
// record encoder/decoder, matching the teacher's pkg/types.Error pattern:
// a typed Kind, message, optional context fields, and a wrapped cause for
// errors.Is/As interop with an underlying codec error.
type RecordError struct {
	Kind     RecordErrorKind
	Class    string
	Field    string
	Expected string
	Actual   string
	Message  string
	Err      error
}

func (e *RecordError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	switch {
	case e.Class != "" && e.Field != "":
		return fmt.Sprintf("record: %s: class %q field %q", msg, e.Class, e.Field)
	case e.Class != "":
		return fmt.Sprintf("record: %s: class %q", msg, e.Class)
	default:
		return fmt.Sprintf("record: %s", msg)
	}
}

func (e *RecordError) Unwrap() error { return e.Err }

func errUnregisteredClass(class string) *RecordError {
	return &RecordError{Kind: ErrUnregisteredClass, Class: class, Message: "class is not registered"}
}

func errMissingRequiredField(class, field string) *RecordError {
	return &RecordError{Kind: ErrMissingRequiredField, Class: class, Field: field, Message: "required field missing"}
}

func errFieldTypeMismatch(class, field, expected, actual string) *RecordError {
	return &RecordError{
		Kind: ErrFieldTypeMismatch, Class: class, Field: field,
		Expected: expected, Actual: actual, Message: "field type mismatch",
	}
}

func errUnregisteredNestedClass(class, field, nested string) *RecordError {
	return &RecordError{
		Kind: ErrUnregisteredNestedClass, Class: class, Field: field,
		Expected: nested, Message: "nested class is not registered",
	}
}

func errInvalidNestedClassFormat(class, field string) *RecordError {
	return &RecordError{
		Kind: ErrInvalidNestedClassFormat, Class: class, Field: field,
		Message: "nested class value must be a map",
	}
}

func errCircularReference(class, field string) *RecordError {
	return &RecordError{Kind: ErrCircularReference, Class: class, Field: field, Message: "circular class reference"}
}

func errNestingTooDeep(class string) *RecordError {
	return &RecordError{Kind: ErrNestingTooDeep, Class: class, Message: "nesting too deep"}
}
