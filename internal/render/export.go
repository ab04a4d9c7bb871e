package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pablasso/prdkanban/internal/board"
)

// exportDocument is the wire shape of a board. Field order is the key order
// of the export.
type exportDocument struct {
	Title     string         `json:"title" yaml:"title"`
	CreatedAt string         `json:"createdAt" yaml:"createdAt"`
	Input     board.Input    `json:"input" yaml:"input"`
	Columns   []board.Column `json:"columns" yaml:"columns"`
	Tasks     []board.Task   `json:"tasks" yaml:"tasks"`
}

func toExport(doc board.Document) exportDocument {
	e := exportDocument{
		Title:     doc.Title,
		CreatedAt: doc.CreatedAt.UTC().Format(TimeLayout),
		Input:     doc.Input,
		Columns:   doc.Columns,
		Tasks:     doc.Tasks,
	}
	if e.Columns == nil {
		e.Columns = []board.Column{}
	}
	if e.Tasks == nil {
		e.Tasks = []board.Task{}
	}
	return e
}

func fromExport(e exportDocument) (board.Document, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, e.CreatedAt)
	if err != nil {
		return board.Document{}, fmt.Errorf("parsing createdAt: %w", err)
	}
	for _, c := range e.Columns {
		if _, err := board.ParseStatus(string(c.Key)); err != nil {
			return board.Document{}, fmt.Errorf("column %q: %w", c.Title, err)
		}
	}
	for _, t := range e.Tasks {
		if _, err := board.ParseStatus(string(t.Status)); err != nil {
			return board.Document{}, fmt.Errorf("task %s: %w", t.ID, err)
		}
	}
	return board.Document{
		Title:     e.Title,
		CreatedAt: createdAt.UTC(),
		Input:     e.Input,
		Columns:   e.Columns,
		Tasks:     e.Tasks,
	}, nil
}

// ExportJSON renders doc as two-space-indented JSON with a fixed key order.
func ExportJSON(doc board.Document) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toExport(doc)); err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return buf.String(), nil
}

// ExportYAML renders doc as YAML with the same keys as ExportJSON.
func ExportYAML(doc board.Document) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toExport(doc)); err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return buf.String(), nil
}

// ParseJSON reads a board back from ExportJSON output.
func ParseJSON(data []byte) (board.Document, error) {
	var e exportDocument
	if err := json.Unmarshal(data, &e); err != nil {
		return board.Document{}, fmt.Errorf("unmarshaling JSON: %w", err)
	}
	return fromExport(e)
}

// ParseYAML reads a board back from ExportYAML output.
func ParseYAML(data []byte) (board.Document, error) {
	var e exportDocument
	if err := yaml.Unmarshal(data, &e); err != nil {
		return board.Document{}, fmt.Errorf("unmarshaling YAML: %w", err)
	}
	return fromExport(e)
}

// Parse reads either export format, treating input that opens with '{' as JSON.
func Parse(data []byte) (board.Document, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return ParseJSON(trimmed)
	}
	return ParseYAML(data)
}
