package tui

import (
	"time"

	"github.com/pablasso/prdkanban/internal/board"
	"github.com/pablasso/prdkanban/internal/clipboard"
)

// Options configures TUI startup behavior.
type Options struct {
	// Defaults prefill the form fields.
	Defaults board.Input

	// Clipboard receives copies. Nil means the system clipboard.
	Clipboard clipboard.Writer

	// Now stamps generated boards. Nil means time.Now.
	Now func() time.Time
}
