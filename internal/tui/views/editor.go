package views

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/prdkanban/internal/board"
	"github.com/pablasso/prdkanban/internal/clipboard"
	"github.com/pablasso/prdkanban/internal/render"
	"github.com/pablasso/prdkanban/internal/tui/components"
	"github.com/pablasso/prdkanban/internal/tui/msgs"
	"github.com/pablasso/prdkanban/internal/tui/styles"
)

// Field identifies one of the form inputs.
type Field int

const (
	FieldGoal Field = iota
	FieldConstraints
	FieldDuration
	FieldTeam
	fieldCount
)

var fieldLabels = [fieldCount]string{"Goal", "Constraints", "Duration", "Team"}

var fieldPlaceholders = [fieldCount]string{
	"e.g. Show second-brain tasks on a kanban board",
	"e.g. One-day demo, no DB changes, mobile friendly",
	"e.g. Today until tomorrow morning",
	"e.g. Blue=build, White=review",
}

// CopyIndicatorDuration is how long "Copied ...!" stays visible.
const CopyIndicatorDuration = 1500 * time.Millisecond

const (
	defaultWidth  = 100
	defaultHeight = 30

	// splitWidth is the narrowest terminal that shows form and preview side by side.
	splitWidth = 110
)

// EditorConfig holds initialization parameters.
type EditorConfig struct {
	Defaults  board.Input
	Clipboard clipboard.Writer

	// Now stamps generated boards. Nil means time.Now.
	Now func() time.Time
}

// EditorModel is the form that turns the four input fields into a board,
// with a live preview and clipboard actions.
type EditorModel struct {
	inputs  [fieldCount]textinput.Model
	focused Field

	doc     board.Document
	outline string
	json    string

	preview       components.Preview
	previewFormat render.Format

	// Copy feedback
	copied     render.Format
	copyFailed bool
	copySeq    int

	clipboard clipboard.Writer
	now       func() time.Time
	columns   components.Columns
	statusBar components.StatusBar

	width  int
	height int
}

// NewEditorModel creates the editor with its fields prefilled from config.Defaults.
func NewEditorModel(config EditorConfig) EditorModel {
	m := EditorModel{
		preview:       components.NewPreview(defaultWidth/2, 10),
		previewFormat: render.FormatOutline,
		clipboard:     config.Clipboard,
		now:           config.Now,
		columns:       components.NewColumns(4),
		statusBar:     components.NewStatusBar(),
		width:         defaultWidth,
		height:        defaultHeight,
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.System{}
	}
	if m.now == nil {
		m.now = time.Now
	}

	values := [fieldCount]string{
		config.Defaults.Goal,
		config.Defaults.Constraints,
		config.Defaults.Duration,
		config.Defaults.Team,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.Prompt = "> "
		ti.CharLimit = 0
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.inputs[FieldGoal].Focus()

	m.resize()
	m.regenerate()
	return m
}

// Input returns the current field values.
func (m EditorModel) Input() board.Input {
	return board.Input{
		Goal:        m.inputs[FieldGoal].Value(),
		Constraints: m.inputs[FieldConstraints].Value(),
		Duration:    m.inputs[FieldDuration].Value(),
		Team:        m.inputs[FieldTeam].Value(),
	}
}

// Document returns the board for the current input.
func (m EditorModel) Document() board.Document { return m.doc }

// Outline returns the Markdown rendering of the current board.
func (m EditorModel) Outline() string { return m.outline }

// JSON returns the JSON export of the current board.
func (m EditorModel) JSON() string { return m.json }

// Focused returns the field with keyboard focus.
func (m EditorModel) Focused() Field { return m.focused }

// PreviewFormat returns which rendering the preview shows.
func (m EditorModel) PreviewFormat() render.Format { return m.previewFormat }

// CopyStatus returns the indicator text, e.g. "Copied MD!", or "" when hidden.
func (m EditorModel) CopyStatus() string {
	switch {
	case m.copyFailed:
		return "Copy failed"
	case m.copied != "":
		return "Copied " + m.copied.Label() + "!"
	default:
		return ""
	}
}

// Init implements tea.Model.
func (m EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case msgs.CopiedMsg:
		m.copySeq++
		m.copyFailed = !msg.OK
		m.copied = ""
		if msg.OK {
			m.copied = msg.Format
		}
		seq := m.copySeq
		return m, tea.Tick(CopyIndicatorDuration, func(time.Time) tea.Msg {
			return msgs.ClearCopiedMsg{Seq: seq}
		})

	case msgs.ClearCopiedMsg:
		if msg.Seq == m.copySeq {
			m.copied = ""
			m.copyFailed = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// handleKeyPress processes editor shortcuts and forwards the rest to the focused field.
func (m EditorModel) handleKeyPress(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	switch msg.String() {
	case "tab", "down", "enter":
		return m.focus((m.focused + 1) % fieldCount)
	case "shift+tab", "up":
		return m.focus((m.focused + fieldCount - 1) % fieldCount)
	case "ctrl+p":
		if m.previewFormat == render.FormatOutline {
			m.previewFormat = render.FormatJSON
		} else {
			m.previewFormat = render.FormatOutline
		}
		m.refreshPreview()
		m.preview.GotoTop()
		return m, nil
	case "ctrl+o":
		return m, copyCmd(m.clipboard, render.FormatOutline, m.outline)
	case "ctrl+j":
		return m, copyCmd(m.clipboard, render.FormatJSON, m.json)
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	before := m.inputs[m.focused].Value()
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	if m.inputs[m.focused].Value() != before {
		m.regenerate()
	}
	return m, cmd
}

func (m EditorModel) focus(f Field) (EditorModel, tea.Cmd) {
	m.inputs[m.focused].Blur()
	m.focused = f
	return m, m.inputs[f].Focus()
}

// copyCmd copies text off the event loop and reports the outcome.
func copyCmd(w clipboard.Writer, f render.Format, text string) tea.Cmd {
	return func() tea.Msg {
		return msgs.CopiedMsg{Format: f, OK: clipboard.Copy(w, text)}
	}
}

// regenerate rebuilds the board and both renderings from the current input.
func (m *EditorModel) regenerate() {
	m.doc = board.GenerateAt(m.Input(), m.now())
	m.outline = render.Outline(m.doc)
	// Generated boards always encode.
	m.json, _ = render.ExportJSON(m.doc)
	m.refreshPreview()
}

func (m *EditorModel) refreshPreview() {
	if m.previewFormat == render.FormatJSON {
		m.preview.SetContent(m.json)
	} else {
		m.preview.SetContent(m.outline)
	}
}

// paneWidths returns the widths of the form and output panes. When the
// terminal is narrow both panes take the full width and stack.
func (m EditorModel) paneWidths() (int, int) {
	if m.width < splitWidth {
		return m.width, m.width
	}
	left := m.width * 2 / 5
	return left, m.width - left
}

func (m *EditorModel) resize() {
	left, right := m.paneWidths()
	for i := range m.inputs {
		m.inputs[i].Width = max(left-8, 10)
	}

	// Title, column summary, preview header and status bar take the rest.
	h := m.height - 16
	if m.width < splitWidth {
		h -= 12
	}
	m.preview.SetSize(max(right-4, 10), max(h, 3))
}

// View implements tea.Model.
func (m EditorModel) View() string {
	left, right := m.paneWidths()

	form := m.renderForm(left)
	output := m.renderOutput(right)

	var body string
	if m.width < splitWidth {
		body = lipgloss.JoinVertical(lipgloss.Left, form, output)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, form, output)
	}

	help := []string{"tab Next field", "ctrl+p Toggle preview", "ctrl+o Copy MD", "ctrl+j Copy JSON", "pgup/pgdn Scroll", "esc Quit"}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar.Render(m.width, help))
}

func (m EditorModel) renderForm(width int) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("PRD → Kanban Generator"))
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render("Todo/Doing/Done task skeleton from a short PRD. No LLM."))
	b.WriteString("\n\n")

	for i := range m.inputs {
		label := styles.LabelStyle
		if Field(i) == m.focused {
			label = styles.FocusedLabelStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	chips := []string{
		styles.ChipStyle.Render("Todo tasks: " + strconv.Itoa(m.doc.Count(board.StatusTodo))),
		styles.ChipStyle.Render("No LLM required"),
		styles.ChipStyle.Render("Copy as Markdown/JSON"),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...))

	return styles.BoxStyle.Width(width - 2).Render(b.String())
}

func (m EditorModel) renderOutput(width int) string {
	header := "Markdown"
	if m.previewFormat == render.FormatJSON {
		header = "JSON"
	}

	status := m.CopyStatus()
	switch {
	case m.copyFailed:
		status = styles.ErrorStyle.Render(status)
	case status != "":
		status = styles.SuccessStyle.Render(status)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.columns.Render(m.doc, width-4),
		styles.TitleStyle.Render(header)+"  "+status,
		m.preview.View(),
	)
	return styles.BoxStyle.Width(width - 2).Render(content)
}
