// Package tui is the interactive editor: a form for the four input fields with
// a live preview of the generated board.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/prdkanban/internal/tui/views"
)

// Model is the main Bubble Tea model. It owns quitting and delegates
// everything else to the editor.
type Model struct {
	editor views.EditorModel
}

// Run starts the TUI application.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// NewModel creates the root model.
func NewModel(opts Options) Model {
	return Model{
		editor: views.NewEditorModel(views.EditorConfig{
			Defaults:  opts.Defaults,
			Clipboard: opts.Clipboard,
			Now:       opts.Now,
		}),
	}
}

// Editor returns the editor view.
func (m Model) Editor() views.EditorModel {
	return m.editor
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.editor.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return m.editor.View()
}
