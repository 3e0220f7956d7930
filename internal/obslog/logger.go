// Package obslog holds the package-level logger shared by the record
// registry and the CLI, following the teacher's cmd/hiveexplorer/logger
// idiom: a discard-by-default *slog.Logger, opt-in via SetLogger. The
// codec's Encode/Decode hot paths intentionally do not log through this
// package; the discard handler's no-op check is cheap but still a call
// the hottest loop shouldn't need to make.
package obslog

import (
	"io"
	"log/slog"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the package-level logger. Passing nil restores the
// discard-by-default logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	logger = l
}

// L returns the current package-level logger.
func L() *slog.Logger { return logger }
