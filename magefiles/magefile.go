//go:build mage

// Package main contains Mage build targets for prdkanban.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	binName    = "prdkanban"
	cmdPkg     = "./cmd/prdkanban"
	versionPkg = "github.com/pablasso/prdkanban/internal/version"
)

// Default runs when mage is invoked without a target.
var Default = Build

// ldflags stamps version information into the binary.
func ldflags() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	flags := []string{
		"-X " + versionPkg + ".Version=" + version,
		"-X " + versionPkg + ".CommitSHA=" + commit,
		"-X " + versionPkg + ".BuildDate=" + time.Now().UTC().Format(time.RFC3339),
	}
	return strings.Join(flags, " ")
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", ldflags(), "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check vets then tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binDir)
}
