package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/prdkanban/internal/board"
	"github.com/pablasso/prdkanban/internal/tui/styles"
)

// Columns renders the Todo/Doing/Done buckets of a board side by side.
type Columns struct {
	// MaxCards caps how many task IDs are listed per column.
	MaxCards int
}

// NewColumns creates a Columns renderer listing up to maxCards tasks per column.
func NewColumns(maxCards int) Columns {
	return Columns{MaxCards: maxCards}
}

// Render lays out the document's columns to fit width.
func (c Columns) Render(doc board.Document, width int) string {
	cols := doc.Columns
	if len(cols) == 0 {
		cols = board.DefaultColumns()
	}
	byStatus := doc.TasksByStatus()

	// Style width covers padding; the border adds two more cells.
	colWidth := width/len(cols) - 2
	if colWidth < 8 {
		colWidth = 8
	}

	rendered := make([]string, 0, len(cols))
	for _, col := range cols {
		rendered = append(rendered, c.renderColumn(col, byStatus[col.Key], colWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (c Columns) renderColumn(col board.Column, tasks []board.Task, width int) string {
	header := styles.ColumnHeaderStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(tasks)))

	var lines []string
	for i, t := range tasks {
		if c.MaxCards > 0 && i == c.MaxCards {
			lines = append(lines, styles.SubtleStyle.Render(fmt.Sprintf("+%d more", len(tasks)-i)))
			break
		}
		lines = append(lines, truncateLine(t.ID+" "+t.Title, width-2))
	}
	if len(lines) == 0 {
		lines = append(lines, styles.SubtleStyle.Render("(none)"))
	}

	body := header + "\n" + strings.Join(lines, "\n")
	return styles.ColumnStyle.Width(width).Render(body)
}

// truncateLine shortens s to at most width cells, ending in an ellipsis when cut.
func truncateLine(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
