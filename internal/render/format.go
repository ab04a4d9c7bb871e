package render

import (
	"fmt"
	"strings"

	"github.com/pablasso/prdkanban/internal/board"
)

// Format selects a rendering of a board.
type Format string

const (
	FormatOutline Format = "outline"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatOutline, FormatJSON, FormatYAML}

// ParseFormat converts s to a Format. "md" and "markdown" are accepted for outline.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "outline", "md", "markdown":
		return FormatOutline, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want outline, json or yaml)", s)
	}
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	default:
		return ".md"
	}
}

// Label is the short name shown after a copy, e.g. "Copied MD!".
func (f Format) Label() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatYAML:
		return "YAML"
	default:
		return "MD"
	}
}

// Render renders doc in format f.
func Render(doc board.Document, f Format) (string, error) {
	switch f {
	case FormatOutline:
		return Outline(doc), nil
	case FormatJSON:
		return ExportJSON(doc)
	case FormatYAML:
		return ExportYAML(doc)
	default:
		return "", fmt.Errorf("unknown format %q", f)
	}
}
