package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/antinode/internal/domain"
	m "github.com/mouse-blink/antinode/internal/model"
)

const scanLongDescription = `Scan the grid with a custom harmonic policy and print the antinode count.

Each pair of same-frequency antennas is extended outward along its spacing.
--max-harmonic bounds how many multiples of the spacing are walked on each
side, and --include-zero also counts the antennas themselves.`

var scanMaxHarmonicFlag int16
var scanIncludeZeroFlag bool

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Count antinodes with a custom harmonic policy",
		Long:  scanLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Solve(cmd.Context(), domain.SolveArgs{
				Input: parsePath(args),
				Policies: []m.Policy{{
					Name:        "custom",
					MaxHarmonic: m.Coord(scanMaxHarmonicFlag),
					ExcludeZero: !scanIncludeZeroFlag,
				}},
				Threads: 1,
			})
		},
	}
	cmd.Flags().Int16VarP(&scanMaxHarmonicFlag, "max-harmonic", "m", 1, "highest multiple of the antenna spacing to mark")
	cmd.Flags().BoolVarP(&scanIncludeZeroFlag, "include-zero", "z", false, "count the antenna positions themselves (harmonic 0)")

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
