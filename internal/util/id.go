package util

import (
	"fmt"
	"strings"
	"unicode"
)

// TaskIDPrefix starts every task ID.
const TaskIDPrefix = "T"

// TaskID returns a task ID in the format T-01, T-02, ..., T-99, T-100, etc.
func TaskID(index int) string {
	return fmt.Sprintf("%s-%02d", TaskIDPrefix, index+1)
}

// ToKebabCase converts a string to kebab-case.
// It lowercases the string, replaces spaces and underscores with hyphens,
// removes non-alphanumeric characters (except hyphens), collapses multiple
// consecutive hyphens, and trims leading/trailing hyphens.
func ToKebabCase(s string) string {
	var result strings.Builder

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(unicode.ToLower(r))
		} else if r == ' ' || r == '_' || r == '-' {
			result.WriteRune('-')
		}
		// Other characters are dropped
	}

	// Collapse multiple consecutive hyphens
	str := result.String()
	for strings.Contains(str, "--") {
		str = strings.ReplaceAll(str, "--", "-")
	}

	return strings.Trim(str, "-")
}
