package controller

import (
	"bytes"
	"fmt"
	"time"

	m "github.com/mouse-blink/antinode/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayParse prints the parsed grid summary.
func (s *SimpleUI) DisplayParse(stats m.ParseStats) {
	s.printf("Data processed in %s (%dx%d grid, %d antennas, %d frequencies)\n",
		stats.Elapsed, stats.Size.X, stats.Size.Y, stats.Antennas, stats.Labels)
}

// DisplayResults prints a table with one row per policy, or the error that
// stopped the run (reading, parsing or scanning).
func (s *SimpleUI) DisplayResults(results []m.ScanResult, err error) error {
	if err != nil {
		s.printf("error: %v\n", err)
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Policy", "Antinodes", "Elapsed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	var total time.Duration

	for _, result := range results {
		table.Append([]string{
			result.Policy.Name,
			fmt.Sprintf("%d", result.Count),
			result.Elapsed.String(),
		})

		total += result.Elapsed
	}

	table.SetFooter([]string{
		fmt.Sprintf("Policies %d", len(results)),
		"",
		total.String(),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayMap prints the grid with antennas and antinodes as plain text.
func (s *SimpleUI) DisplayMap(view m.AntinodeMap) error {
	s.printf("%s antinodes: %d\n", view.Policy.Name, len(view.Marks))
	s.printf("%s", renderGrid(view, plainCell))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
