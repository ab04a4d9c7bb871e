// Package msgs defines shared message types for the TUI.
package msgs

import "github.com/pablasso/prdkanban/internal/render"

// CopiedMsg reports the outcome of a clipboard copy.
type CopiedMsg struct {
	Format render.Format
	OK     bool
}

// ClearCopiedMsg hides the copy indicator. Seq matches the copy that set it,
// so a stale timer cannot clear a newer indicator.
type ClearCopiedMsg struct {
	Seq int
}
