// Package clipboard copies rendered text to the system clipboard.
package clipboard

import (
	"errors"
	"log/slog"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard not supported on this system")

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// WriteAll implements Writer.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Copy writes text through w and reports whether it succeeded. A failure
// (missing utility, permission denied) is never fatal to the caller.
func Copy(w Writer, text string) bool {
	if w == nil {
		w = System{}
	}
	if err := w.WriteAll(text); err != nil {
		slog.Debug("clipboard write failed", "error", err)
		return false
	}
	return true
}
