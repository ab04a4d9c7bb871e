package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Preview shows a rendered board in a scrollable pane with a scrollbar on
// the right. Replacing the content keeps the scroll position when possible.
type Preview struct {
	viewport viewport.Model
	lines    int
	width    int // includes the scrollbar column
	height   int
}

// NewPreview creates a Preview. The width includes 1 column for the scrollbar.
func NewPreview(width, height int) Preview {
	return Preview{
		viewport: viewport.New(max(width-1, 0), height),
		width:    width,
		height:   height,
	}
}

// SetSize updates the pane dimensions.
func (p *Preview) SetSize(width, height int) {
	if p.width == width && p.height == height {
		return
	}
	p.width = width
	p.height = height
	p.viewport.Width = max(width-1, 0)
	p.viewport.Height = height
	p.viewport.SetYOffset(p.viewport.YOffset)
}

// SetContent replaces the text shown in the pane.
func (p *Preview) SetContent(s string) {
	s = strings.TrimSuffix(s, "\n")
	p.lines = strings.Count(s, "\n") + 1
	p.viewport.SetContent(s)
	p.viewport.SetYOffset(p.viewport.YOffset)
}

// GotoTop scrolls to the first line.
func (p *Preview) GotoTop() {
	p.viewport.GotoTop()
}

// Update handles scroll keys and mouse wheel events.
func (p Preview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// YOffset returns the index of the first visible line.
func (p Preview) YOffset() int {
	return p.viewport.YOffset
}

// Lines returns the number of content lines.
func (p Preview) Lines() int {
	return p.lines
}

// View renders the visible lines with the scrollbar column.
func (p Preview) View() string {
	contentLines := strings.Split(p.viewport.View(), "\n")
	barLines := strings.Split(RenderScrollbar(p.height, p.lines, p.viewport.YOffset), "\n")
	contentWidth := max(p.width-1, 0)

	var b strings.Builder
	for i := 0; i < p.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		var cl, bl string
		if i < len(contentLines) {
			cl = contentLines[i]
		}
		if i < len(barLines) {
			bl = barLines[i]
		}
		b.WriteString(cl)
		if pad := contentWidth - lipgloss.Width(cl); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(bl)
	}
	return b.String()
}
