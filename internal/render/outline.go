// Package render turns a board into text: a Markdown outline for people and a
// JSON or YAML export for machines.
package render

import (
	"strconv"
	"strings"

	"github.com/pablasso/prdkanban/internal/board"
)

// EmptyPlaceholder stands in for an empty input field in the outline.
const EmptyPlaceholder = "(empty)"

// TimeLayout is how timestamps are written: RFC 3339 with milliseconds.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Outline renders doc as Markdown. Identical documents give identical bytes.
func Outline(doc board.Document) string {
	byStatus := doc.TasksByStatus()

	lines := []string{
		"# " + doc.Title,
		"",
		"Generated: " + doc.CreatedAt.UTC().Format(TimeLayout),
		"",
		"## Input",
		"- Goal: " + orPlaceholder(doc.Input.Goal),
		"- Constraints: " + orPlaceholder(doc.Input.Constraints),
		"- Duration: " + orPlaceholder(doc.Input.Duration),
		"- Team: " + orPlaceholder(doc.Input.Team),
		"",
		"## Kanban",
		"",
	}

	for _, col := range sections(doc) {
		lines = append(lines, "### "+col.Title)
		for _, t := range byStatus[col.Key] {
			lines = append(lines, formatTask(t))
		}
		lines = append(lines, "")
	}

	// The trailing empty line leaves the text ending in a single newline.
	return strings.Join(lines, "\n")
}

// sections returns the columns in fixed Todo, Doing, Done order, using the
// document's titles where it has them.
func sections(doc board.Document) []board.Column {
	titles := make(map[board.Status]string, len(doc.Columns))
	for _, c := range doc.Columns {
		titles[c.Key] = c.Title
	}
	out := board.DefaultColumns()
	for i, c := range out {
		if title, ok := titles[c.Key]; ok && title != "" {
			out[i].Title = title
		}
	}
	return out
}

func formatTask(t board.Task) string {
	var bits []string
	if t.EstimateHours != nil {
		bits = append(bits, "⏱ "+FormatHours(*t.EstimateHours)+"h")
	}
	if len(t.DependsOn) > 0 {
		bits = append(bits, "🔗 depends: "+strings.Join(t.DependsOn, ", "))
	}

	var b strings.Builder
	b.WriteString("- [ ] **" + t.ID + "** " + t.Title)
	if len(bits) > 0 {
		b.WriteString(" (" + strings.Join(bits, " | ") + ")")
	}
	if len(t.Acceptance) > 0 {
		b.WriteString("\n  - Acceptance:")
		for _, a := range t.Acceptance {
			b.WriteString("\n    - " + a)
		}
	}
	return b.String()
}

// FormatHours writes v in its shortest decimal form: 1, 0.5, 0.25.
func FormatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orPlaceholder(s string) string {
	if s == "" {
		return EmptyPlaceholder
	}
	return s
}
