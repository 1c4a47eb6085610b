// Package cmd provides the root command and CLI setup for antinode.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mouse-blink/antinode/internal/adapter"
	"github.com/mouse-blink/antinode/internal/controller"
	"github.com/mouse-blink/antinode/internal/domain"
	"github.com/mouse-blink/antinode/internal/logging"
	m "github.com/mouse-blink/antinode/internal/model"
	"github.com/spf13/cobra"
)

var inputAdapter adapter.InputAdapter
var logLevel = new(slog.LevelVar)
var logger *logging.Logger
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	inputAdapter = adapter.NewLocalInputAdapter()
	logger = logging.NewTextLogger(os.Stderr, logLevel)
	workflow = domain.NewWorkflow(inputAdapter, ui, logger)
}

var parallelFlag int
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "antinode [file]",
		Short: "Count antinodes on an antenna grid",
		Long: `Antinode reads a character grid in which every letter or digit is an
antenna tuned to that frequency, and counts the grid positions that line up
with two antennas of the same frequency.

Two policies are reported:
  - nearest    only the reflection point one step beyond each antenna
  - resonant   every in-line position at any multiple of the spacing,
               the antennas themselves included

The grid is read from the given file, or from standard input when the
file is omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Solve(cmd.Context(), domain.SolveArgs{
				Input:    parsePath(args),
				Policies: m.Policies(),
				Threads:  parallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 2, "number of policy scans to run in parallel")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log debug details to stderr")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePath(args []string) m.Path {
	if len(args) == 0 {
		return m.Path("-")
	}

	return m.Path(args[0])
}
