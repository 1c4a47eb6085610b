package domain

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/antinode/internal/adapter"
	"github.com/mouse-blink/antinode/internal/controller"
	"github.com/mouse-blink/antinode/internal/logging"
	m "github.com/mouse-blink/antinode/internal/model"
)

// SolveArgs configures a Solve run.
type SolveArgs struct {
	Input    m.Path
	Policies []m.Policy
	// Threads bounds how many policy scans run at once.
	Threads int
}

// ViewArgs configures a View run.
type ViewArgs struct {
	Input  m.Path
	Policy m.Policy
}

// Workflow defines the interface for antinode scanning operations.
type Workflow interface {
	// Solve parses the input, scans it once per policy and reports the counts.
	Solve(ctx context.Context, args SolveArgs) error
	// View parses the input, scans it with one policy and renders the map.
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	input  adapter.InputAdapter
	ui     controller.UI
	logger *logging.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(input adapter.InputAdapter, ui controller.UI, logger *logging.Logger) Workflow {
	if logger == nil {
		logger = logging.NoopLogger()
	}

	return &workflow{
		input:  input,
		ui:     ui,
		logger: logger,
	}
}

// PolicyByName returns the built-in policy with the given name.
func PolicyByName(name string) (m.Policy, error) {
	for _, p := range m.Policies() {
		if p.Name == name {
			return p, nil
		}
	}

	return m.Policy{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

func (w *workflow) Solve(ctx context.Context, args SolveArgs) error {
	grid, err := w.load(ctx, args.Input)
	if err != nil {
		return w.ui.DisplayResults(nil, err)
	}

	policies := args.Policies
	if len(policies) == 0 {
		policies = m.Policies()
	}

	results, err := w.scanAll(ctx, grid, policies, args.Threads)

	return w.ui.DisplayResults(results, err)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	grid, err := w.load(ctx, args.Input)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	marks := ScanPolicy(grid, args.Policy)

	return w.ui.DisplayMap(m.AntinodeMap{
		Policy:   args.Policy,
		Size:     grid.Size(),
		Antennas: grid.Antennas(),
		Marks:    slices.Collect(marks.All()),
	})
}

func (w *workflow) load(ctx context.Context, path m.Path) (*LabeledGrid, error) {
	data, err := w.input.Read(path)
	if err != nil {
		err = fmt.Errorf("read input: %w", err)
		w.logger.LogParse(ctx, path, m.ParseStats{}, err)

		return nil, err
	}

	start := time.Now()

	grid, err := ParseGrid(bytes.NewReader(data))
	if err != nil {
		w.logger.LogParse(ctx, path, m.ParseStats{}, err)
		return nil, err
	}

	stats := m.ParseStats{
		Size:     grid.Size(),
		Antennas: grid.Len(),
		Labels:   grid.Labels(),
		Elapsed:  time.Since(start),
	}

	w.logger.LogParse(ctx, path, stats, nil)
	w.ui.DisplayParse(stats)

	return grid, nil
}

// scanAll runs one scan per policy. The grid is only read, and every scan
// owns its MarkSet, so scans run in parallel.
func (w *workflow) scanAll(ctx context.Context, grid *LabeledGrid, policies []m.Policy, threads int) ([]m.ScanResult, error) {
	if threads <= 0 {
		threads = 1
	}

	results := make([]m.ScanResult, len(policies))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, policy := range policies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			marks := ScanPolicy(grid, policy)

			results[i] = m.ScanResult{
				Policy:  policy,
				Count:   marks.Cardinality(),
				Elapsed: time.Since(start),
			}

			w.logger.WithPolicy(policy).LogScan(ctx, results[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
