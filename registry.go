package mpack

import (
	"log/slog"

	"github.com/joshuapare/mpack/internal/obslog"
	"github.com/joshuapare/mpack/record"
)

// RegisterClass registers a new record class under record.DefaultRegistry.
func RegisterClass(name string, fields []record.Field) error {
	return record.DefaultRegistry.Register(name, fields)
}

// UnregisterClass removes a class from record.DefaultRegistry, reporting
// whether it was present.
func UnregisterClass(name string) bool {
	return record.DefaultRegistry.Unregister(name)
}

// GetClassMetadata returns the Class descriptor registered under name.
func GetClassMetadata(name string) (*record.Class, bool) {
	return record.DefaultRegistry.Get(name)
}

// RegisteredClassNames returns the names currently registered in
// record.DefaultRegistry, in no particular order.
func RegisteredClassNames() []string {
	return record.DefaultRegistry.Names()
}

// SetLogger installs l as the logger used for registry mutations (class
// registration and unregistration). Passing nil restores the
// discard-by-default logger, per SPEC_FULL.md §6.1.
func SetLogger(l *slog.Logger) {
	obslog.SetLogger(l)
}
