package record

import "github.com/joshuapare/mpack/value"

// Instance is the accessor contract a caller implements to make a host
// record encodable, per spec.md §4.5/§6 ("Accessor contract supplied by
// caller"). This interface, plus Factory below, is the only substitute for
// reflection this package uses; record.Encode never inspects a value's Go
// type beyond calling these two methods.
type Instance interface {
	// ClassName returns the registered class name this instance belongs to.
	ClassName() string
	// FieldValue returns the value currently held for the named field. The
	// second return is false when the field has no value, which is only
	// legal for optional fields — Encode reports MissingRequiredField
	// otherwise.
	FieldValue(name string) (value.Value, bool)
}

// Factory is the decode-side counterpart of Instance. Create produces a
// new, empty instance of the factory's class; SetField assigns one decoded
// field value onto it. A FieldClass field decodes its own sub-instance only
// when the Factory also implements NestedFactory and returns a Factory for
// that field; otherwise its raw Map value is passed to SetField. Array and
// Map fields are always passed to SetField as raw values: their elements are
// neither validated against a record schema nor decoded through a
// per-element factory.
type Factory interface {
	Create() any
	SetField(inst any, name string, v value.Value) error
}
