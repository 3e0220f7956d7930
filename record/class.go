package record

// Class describes a registered record type: its name and the ordered
// sequence of fields an instance carries, per spec.md §3.3. Field order is
// significant — it is the order record.Encode walks an accessor and the
// order record.Decode requires no particular wire-map order to match since
// maps are looked up by key, but the ordered Fields slice is what the CLI's
// registry describe command reports and what determines MissingRequiredField
// iteration order.
type Class struct {
	Name   string
	Fields []Field
}

// newClass validates and constructs a Class. Field names must be unique
// within a class, per spec.md §3.3's invariant.
func newClass(name string, fields []Field) (*Class, error) {
	if name == "" {
		return nil, &RecordError{Kind: ErrInvalidFieldDescriptor, Message: "class name must not be empty"}
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if err := f.validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[f.Name]; dup {
			return nil, &RecordError{
				Kind:    ErrInvalidFieldDescriptor,
				Class:   name,
				Field:   f.Name,
				Message: "duplicate field name",
			}
		}
		seen[f.Name] = struct{}{}
	}
	owned := make([]Field, len(fields))
	copy(owned, fields)
	return &Class{Name: name, Fields: owned}, nil
}

// FieldByName returns the field descriptor with the given name, if present.
func (c *Class) FieldByName(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
