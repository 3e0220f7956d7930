package record

import (
	"github.com/joshuapare/mpack/codec"
	"github.com/joshuapare/mpack/internal/wire"
	"github.com/joshuapare/mpack/value"
)

// NestedFactory lets a Factory recurse into its own Class-typed fields
// instead of receiving their raw wire Map value, per spec.md §4.6's "if a
// nested factory is supplied, recurse" rule. FieldFactory returns the
// Factory to use for the named field's nested class, or false to fall back
// to handing the raw Map value.Value to SetField. SetNestedField then
// receives the already-decoded nested instance (the concrete type
// FieldFactory.Create() returned) instead of a value.Value.
type NestedFactory interface {
	Factory
	FieldFactory(field string) (Factory, bool)
	SetNestedField(inst any, field string, nested any) error
}

// Decode runs the control flow of spec.md §4.6: wire decode, registry
// lookup, factory Create, field-by-field setter walk. b must decode to a
// top-level Map value or InvalidNestedClassFormat is reported.
func Decode(b []byte, f Factory, className string, reg *Registry) (any, error) {
	v, err := codec.Decode(b)
	if err != nil {
		return nil, err
	}
	return DecodeValue(v, f, className, reg)
}

// DecodeValue runs the same field-by-field setter walk as Decode but starts
// from an already-decoded value tree instead of wire bytes — the decode-side
// counterpart to EncodeValue, for callers assembling a tree directly (e.g.
// from DecodeAll, or hand-built for tests) rather than from a single
// wire-decoded buffer.
func DecodeValue(v value.Value, f Factory, className string, reg *Registry) (any, error) {
	return decodeInto(f, className, v, reg, 0)
}

func decodeInto(f Factory, className string, v value.Value, reg *Registry, depth int) (any, error) {
	if depth > wire.DefaultMaxDepth {
		return nil, errNestingTooDeep(className)
	}
	class, ok := reg.Get(className)
	if !ok {
		return nil, errUnregisteredClass(className)
	}
	if v.Kind != value.KindMap {
		return nil, errInvalidNestedClassFormat(className, "")
	}

	inst := f.Create()
	for _, field := range class.Fields {
		fv, present := v.MapGet(field.Name)
		if !present {
			if field.Optional {
				continue
			}
			return nil, errMissingRequiredField(className, field.Name)
		}

		if field.DeclaredType == FieldClass {
			if _, ok := reg.Get(field.NestedTypeName); !ok {
				return nil, errUnregisteredNestedClass(className, field.Name, field.NestedTypeName)
			}
			if reg.classReachesSelf(className, field.NestedTypeName, map[string]bool{}) {
				return nil, errCircularReference(className, field.Name)
			}
			if fv.Kind != value.KindMap {
				return nil, errInvalidNestedClassFormat(className, field.Name)
			}
			if nf, ok := f.(NestedFactory); ok {
				if nestedFactory, ok2 := nf.FieldFactory(field.Name); ok2 {
					nested, err := decodeInto(nestedFactory, field.NestedTypeName, fv, reg, depth+1)
					if err != nil {
						return nil, err
					}
					if err := nf.SetNestedField(inst, field.Name, nested); err != nil {
						return nil, err
					}
					continue
				}
			}
			if err := f.SetField(inst, field.Name, fv); err != nil {
				return nil, err
			}
			continue
		}

		if err := checkFieldVariant(className, field, fv); err != nil {
			return nil, err
		}
		if err := f.SetField(inst, field.Name, fv); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
