// Package testutil provides testing utilities for the prdkanban project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Clipboard is an in-memory clipboard.Writer. When Err is set every write fails.
type Clipboard struct {
	Got    string
	Writes int
	Err    error
}

// WriteAll records text unless Err is set.
func (c *Clipboard) WriteAll(text string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Got = text
	c.Writes++
	return nil
}

// SetupTestDir creates a temp directory, resolves symlinks (for macOS),
// changes to it, and registers cleanup to restore the original working directory.
// Returns the resolved temp directory path.
func SetupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	// Resolve symlinks for macOS (/var -> /private/var)
	if resolved, err := filepath.EvalSymlinks(tmpDir); err != nil {
		t.Logf("warning: could not resolve symlinks for temp dir: %v", err)
	} else {
		tmpDir = resolved
	}

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change to temp dir: %v", err)
	}

	t.Cleanup(func() {
		os.Chdir(originalWd)
	})

	return tmpDir
}
