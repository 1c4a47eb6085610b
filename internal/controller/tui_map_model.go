package controller

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Lines reserved around the viewport: title above, help below.
const mapChromeLines = 2

// mapModel is a scrollable Bubble Tea view over a rendered grid.
type mapModel struct {
	title    string
	content  string
	width    int
	height   int
	viewport viewport.Model
	ready    bool
	quitting bool
}

func newMapModel(title, content string) mapModel {
	return mapModel{
		title:   title,
		content: content,
	}
}

// needsPagination reports whether the content is taller than the terminal.
// Unknown terminal sizes never paginate.
func (mm mapModel) needsPagination() bool {
	if mm.height <= 0 {
		return false
	}

	return lineCount(mm.content)+mapChromeLines > mm.height
}

func (mm mapModel) Init() tea.Cmd {
	return nil
}

func (mm mapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		mm.width = msg.Width
		mm.height = msg.Height

		viewHeight := max(msg.Height-mapChromeLines, 1)
		if !mm.ready {
			mm.viewport = viewport.New(msg.Width, viewHeight)
			mm.viewport.SetContent(mm.content)
			mm.ready = true
		} else {
			mm.viewport.Width = msg.Width
			mm.viewport.Height = viewHeight
		}

		return mm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			mm.quitting = true
			return mm, tea.Quit
		}
	}

	var cmd tea.Cmd

	mm.viewport, cmd = mm.viewport.Update(msg)

	return mm, cmd
}

func (mm mapModel) View() string {
	if mm.quitting {
		return ""
	}

	if !mm.ready {
		return "Loading map…\n"
	}

	help := faintStyle.Render("↑/k up • ↓/j down • pgup/pgdn page • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		mm.title,
		mm.viewport.View(),
		help,
	)
}
