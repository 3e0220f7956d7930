// Package record implements the metadata-driven record serialization layer
// built on top of the wire codec: field and class descriptors, a process
// registry, and the encode/decode algorithms that walk a caller-supplied
// accessor or factory against that metadata, per spec.md §3.2-§3.4 and
// §4.5-§4.6.
package record

// FieldType is the closed set of declared field types, mirroring
// value.Kind plus FieldClass for a nested, registered record.
type FieldType int

const (
	FieldNull FieldType = iota
	FieldBool
	FieldInt
	FieldFloat
	FieldString
	FieldBinary
	FieldArray
	FieldMap
	FieldClass
)

// String returns a human-readable name for the FieldType, used in error
// messages and the CLI's registry describe output.
func (t FieldType) String() string {
	switch t {
	case FieldNull:
		return "null"
	case FieldBool:
		return "bool"
	case FieldInt:
		return "int"
	case FieldFloat:
		return "float"
	case FieldString:
		return "string"
	case FieldBinary:
		return "binary"
	case FieldArray:
		return "array"
	case FieldMap:
		return "map"
	case FieldClass:
		return "class"
	default:
		return "unknown"
	}
}

// Field describes one declared field of a Class, per spec.md §3.2.
// NestedTypeName is only meaningful when DeclaredType is FieldClass; it
// names the nested class by registry name and is not validated against the
// registry at registration time (forward references are permitted, per
// spec.md §9).
type Field struct {
	Name           string
	DeclaredType   FieldType
	Optional       bool
	NestedTypeName string
}

// validate checks the field-level invariants from spec.md §3.2: a name is
// required, and NestedTypeName is required exactly when DeclaredType is
// FieldClass.
func (f Field) validate() error {
	if f.Name == "" {
		return &RecordError{Kind: ErrInvalidFieldDescriptor, Message: "field name must not be empty"}
	}
	if f.DeclaredType == FieldClass && f.NestedTypeName == "" {
		return &RecordError{
			Kind:    ErrInvalidFieldDescriptor,
			Field:   f.Name,
			Message: "class-typed field must declare a nested type name",
		}
	}
	if f.DeclaredType != FieldClass && f.NestedTypeName != "" {
		return &RecordError{
			Kind:    ErrInvalidFieldDescriptor,
			Field:   f.Name,
			Message: "non-class field must not declare a nested type name",
		}
	}
	return nil
}
