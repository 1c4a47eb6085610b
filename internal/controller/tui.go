package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	m "github.com/mouse-blink/antinode/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	antennaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	antinodeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	bothStyle     = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11")).
			Bold(true)
)

// TUI implements UI using lipgloss styling and Bubble Tea for large maps.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayParse prints the parsed grid summary.
func (t *TUI) DisplayParse(stats m.ParseStats) {
	_, _ = fmt.Fprintf(t.output, "%s %s\n",
		titleStyle.Render("Grid"),
		faintStyle.Render(fmt.Sprintf("%dx%d, %d antennas, %d frequencies, parsed in %s",
			stats.Size.X, stats.Size.Y, stats.Antennas, stats.Labels, stats.Elapsed)),
	)
}

// DisplayResults prints one styled line per policy, or the error.
func (t *TUI) DisplayResults(results []m.ScanResult, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "%s %v\n", errorStyle.Render("error:"), err)
		return err
	}

	for _, result := range results {
		_, _ = fmt.Fprintf(t.output, "%s = %s %s\n",
			titleStyle.Render(fmt.Sprintf("%-8s", result.Policy.Name)),
			accentStyle.Render(fmt.Sprintf("%d", result.Count)),
			faintStyle.Render(fmt.Sprintf("(%s)", result.Elapsed)),
		)
	}

	return nil
}

// DisplayMap renders the grid. Maps that fit the terminal are printed
// directly; larger ones open a scrollable view.
func (t *TUI) DisplayMap(view m.AntinodeMap) error {
	model := newMapModel(mapTitle(view), renderGrid(view, styledCell))

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.title+"\n"+model.content)
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func mapTitle(view m.AntinodeMap) string {
	return fmt.Sprintf("%s %s",
		titleStyle.Render(fmt.Sprintf("%s antinodes:", view.Policy.Name)),
		accentStyle.Render(fmt.Sprintf("%d", len(view.Marks))),
	)
}

func styledCell(kind cellKind, r rune) string {
	s := string(r)

	switch kind {
	case cellAntenna:
		return antennaStyle.Render(s)
	case cellAntinode:
		return antinodeStyle.Render(s)
	case cellBoth:
		return bothStyle.Render(s)
	default:
		return faintStyle.Render(s)
	}
}

func lineCount(s string) int {
	return strings.Count(s, "\n")
}
