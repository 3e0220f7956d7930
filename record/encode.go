package record

import (
	"github.com/joshuapare/mpack/codec"
	"github.com/joshuapare/mpack/value"
)

// Encode runs the field-by-field accessor walk of spec.md §4.5 against inst
// and reg, then hands the resulting value tree to the wire encoder. It is
// the control-flow entry point: record encoder -> registry lookup ->
// field-by-field accessor call -> value tree assembly -> wire encoder.
func Encode(inst Instance, reg *Registry) ([]byte, error) {
	v, err := EncodeValue(inst, reg)
	if err != nil {
		return nil, err
	}
	return codec.Encode(v)
}

// EncodeValue runs the same field-by-field walk as Encode but stops at the
// value tree, without handing it to the wire encoder. This is the
// recursion primitive spec.md §4.5 describes for Class-typed fields: "the
// nested value is already a Map, produced by the caller having called this
// same operation recursively on the nested instance" — a caller's
// Instance.FieldValue implementation for a Class field calls EncodeValue on
// the nested instance and returns the resulting Map value.
//
// Because that recursion happens in caller code this package never
// observes, a runtime depth counter here cannot detect a genuine cycle
// across the caller boundary. Instead, a Class-typed field's nested class
// is checked against the registered schema graph itself via
// Registry.classReachesSelf: if the nested class's declared fields lead
// back to this class, that is a circular reference regardless of how deep
// any particular instance's accessors choose to recurse.
func EncodeValue(inst Instance, reg *Registry) (value.Value, error) {
	className := inst.ClassName()
	class, ok := reg.Get(className)
	if !ok {
		return value.Value{}, errUnregisteredClass(className)
	}

	entries := make([]value.MapEntry, 0, len(class.Fields))
	for _, f := range class.Fields {
		v, present := inst.FieldValue(f.Name)
		if !present {
			if f.Optional {
				continue
			}
			return value.Value{}, errMissingRequiredField(className, f.Name)
		}
		if f.DeclaredType == FieldClass {
			if _, ok := reg.Get(f.NestedTypeName); !ok {
				return value.Value{}, errUnregisteredNestedClass(className, f.Name, f.NestedTypeName)
			}
			if reg.classReachesSelf(className, f.NestedTypeName, map[string]bool{}) {
				return value.Value{}, errCircularReference(className, f.Name)
			}
			if v.Kind != value.KindMap {
				return value.Value{}, errInvalidNestedClassFormat(className, f.Name)
			}
		} else if err := checkFieldVariant(className, f, v); err != nil {
			return value.Value{}, err
		}
		entries = append(entries, value.MapEntry{Key: f.Name, Val: v})
	}
	return value.Map(entries), nil
}

// checkFieldVariant verifies that v's Kind matches the wire representation
// F.declared_type requires, per spec.md §4.5's variant-match step. Class
// fields are checked separately by the caller since they also need the
// nested-registration check interleaved.
func checkFieldVariant(className string, f Field, v value.Value) error {
	expected := fieldTypeToKind(f.DeclaredType)
	if v.Kind != expected {
		return errFieldTypeMismatch(className, f.Name, f.DeclaredType.String(), v.Kind.String())
	}
	return nil
}

func fieldTypeToKind(t FieldType) value.Kind {
	switch t {
	case FieldNull:
		return value.KindNull
	case FieldBool:
		return value.KindBool
	case FieldInt:
		return value.KindInt
	case FieldFloat:
		return value.KindFloat
	case FieldString:
		return value.KindString
	case FieldBinary:
		return value.KindBinary
	case FieldArray:
		return value.KindArray
	default: // FieldMap, FieldClass
		return value.KindMap
	}
}
