package domain

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	m "github.com/mouse-blink/antinode/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGrid = `............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
`

func newGrid(t *testing.T, size m.Vec2, antennas ...m.Antenna) *LabeledGrid {
	t.Helper()

	grid, err := NewLabeledGrid(size)
	require.NoError(t, err)

	for _, a := range antennas {
		require.NoError(t, grid.Insert(a.Pos, a.Label))
	}

	return grid
}

func ant(x, y m.Coord, label rune) m.Antenna {
	return m.Antenna{Pos: m.V(x, y), Label: label}
}

func marks(set *MarkSet) []m.Vec2 {
	return slices.Collect(set.All())
}

func TestScan_NoPairs(t *testing.T) {
	grids := map[string]*LabeledGrid{
		"empty":  newGrid(t, m.V(10, 10)),
		"single": newGrid(t, m.V(10, 10), ant(4, 4, 'a')),
	}

	for name, grid := range grids {
		for _, p := range m.Policies() {
			if got := ScanPolicy(grid, p).Cardinality(); got != 0 {
				t.Fatalf("%s/%s: Cardinality() = %d, want 0", name, p.Name, got)
			}
		}
	}
}

func TestScan_NearestColumn(t *testing.T) {
	grid := newGrid(t, m.V(10, 10), ant(4, 3, 'a'), ant(4, 4, 'a'))

	got := ScanPolicy(grid, m.PolicyNearest)

	if diff := cmp.Diff([]m.Vec2{m.V(4, 2), m.V(4, 5)}, marks(got)); diff != "" {
		t.Fatalf("nearest marks mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, uint64(2), got.Cardinality())
}

func TestScan_ResonantColumn(t *testing.T) {
	grid := newGrid(t, m.V(10, 10), ant(4, 3, 'a'), ant(4, 4, 'a'))

	got := Scan(grid, 9, false)

	want := make([]m.Vec2, 0, 10)
	for y := range m.Coord(10) {
		want = append(want, m.V(4, y))
	}

	if diff := cmp.Diff(want, marks(got)); diff != "" {
		t.Fatalf("resonant marks mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, got.Size(), grid.Size())
}

func TestScan_NearestClipping(t *testing.T) {
	tests := []struct {
		name string
		a, b m.Antenna
		want []m.Vec2
	}{
		{"both inside", ant(3, 3, 'x'), ant(4, 5, 'x'), []m.Vec2{m.V(2, 1), m.V(5, 7)}},
		{"one clipped", ant(0, 0, 'x'), ant(1, 1, 'x'), []m.Vec2{m.V(2, 2)}},
		{"both clipped", ant(0, 0, 'x'), ant(5, 5, 'x'), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanPolicy(newGrid(t, m.V(8, 8), tt.a, tt.b), m.PolicyNearest)

			assert.Equal(t, len(tt.want), int(got.Cardinality()))
			for _, p := range tt.want {
				assert.True(t, got.Contains(p), "missing %s", p)
			}
		})
	}
}

func TestScan_ResonantIncludesAntennas(t *testing.T) {
	grid := newGrid(t, m.V(3, 3), ant(0, 0, 'x'), ant(1, 1, 'x'))

	got := ScanPolicy(grid, m.PolicyResonant)

	assert.Equal(t, []m.Vec2{m.V(0, 0), m.V(1, 1), m.V(2, 2)}, marks(got))
}

func TestScan_MaxHarmonicIsInclusive(t *testing.T) {
	grid := newGrid(t, m.V(20, 1), ant(8, 0, 'a'), ant(9, 0, 'a'))

	got := Scan(grid, 2, true)

	// harmonics 1 and 2 on both sides, nothing beyond.
	assert.Equal(t, []m.Vec2{m.V(6, 0), m.V(7, 0), m.V(10, 0), m.V(11, 0)}, marks(got))

	got = Scan(grid, 0, false)
	assert.Equal(t, []m.Vec2{m.V(8, 0), m.V(9, 0)}, marks(got))
}

func TestScan_MixedLabelsNeverMark(t *testing.T) {
	grid := newGrid(t, m.V(10, 10), ant(1, 1, 'a'), ant(2, 2, 'b'), ant(3, 3, 'c'), ant(5, 1, 'A'))

	for _, p := range m.Policies() {
		assert.Equal(t, uint64(0), ScanPolicy(grid, p).Cardinality(), p.Name)
	}
}

func TestScan_SwappingPairIsSymmetric(t *testing.T) {
	size := m.V(12, 12)
	forward := newGrid(t, size, ant(2, 3, 'q'), ant(5, 4, 'q'))
	backward := newGrid(t, size, ant(5, 4, 'q'), ant(2, 3, 'q'))

	for _, p := range m.Policies() {
		assert.Equal(t, marks(ScanPolicy(forward, p)), marks(ScanPolicy(backward, p)), p.Name)
	}
}

func TestScan_DoesNotMutateGrid(t *testing.T) {
	grid := newGrid(t, m.V(10, 10), ant(4, 3, 'a'), ant(4, 4, 'a'))
	before := grid.Antennas()

	ScanPolicy(grid, m.PolicyResonant)

	assert.Equal(t, before, grid.Antennas())
}

func TestScan_SampleGrid(t *testing.T) {
	grid, err := ParseGrid(strings.NewReader(sampleGrid))
	require.NoError(t, err)

	assert.Equal(t, uint64(14), ScanPolicy(grid, m.PolicyNearest).Cardinality())
	assert.Equal(t, uint64(34), ScanPolicy(grid, m.PolicyResonant).Cardinality())
}

func TestScan_ResonantTSample(t *testing.T) {
	input := "T.........\n" +
		"...T......\n" +
		".T........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n"

	grid, err := ParseGrid(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, uint64(9), ScanPolicy(grid, m.PolicyResonant).Cardinality())
}

func TestScan_LargeStepsStopAtCoordinateRange(t *testing.T) {
	size := m.V(m.MaxCoord, 1)
	grid := newGrid(t, size, ant(5000, 0, 'z'), ant(25000, 0, 'z'))

	got := ScanPolicy(grid, m.PolicyResonant)

	assert.Equal(t, []m.Vec2{m.V(5000, 0), m.V(25000, 0)}, marks(got))
}

func TestScan_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(8, 2024))
	size := m.V(16, 13)

	for round := range 25 {
		var antennas []m.Antenna
		for range 2 + rng.IntN(8) {
			antennas = append(antennas, ant(
				m.Coord(rng.IntN(int(size.X))),
				m.Coord(rng.IntN(int(size.Y))),
				rune('a'+rng.IntN(3)),
			))
		}

		grid := newGrid(t, size, antennas...)

		for _, p := range m.Policies() {
			want := bruteForce(grid, p)
			if diff := cmp.Diff(want, marks(ScanPolicy(grid, p))); diff != "" {
				t.Fatalf("round %d %s mismatch (-want +got):\n%s", round, p.Name, diff)
			}
		}
	}
}

// bruteForce tests every cell against every same-labeled pair.
func bruteForce(grid *LabeledGrid, p m.Policy) []m.Vec2 {
	antennas := grid.Antennas()
	size := grid.Size()

	var out []m.Vec2

	for y := range size.Y {
		for x := range size.X {
			c := m.V(x, y)
			if isAntinode(c, antennas, p) {
				out = append(out, c)
			}
		}
	}

	return out
}

func isAntinode(c m.Vec2, antennas []m.Antenna, p m.Policy) bool {
	for _, a := range antennas {
		for _, b := range antennas {
			if a.Pos == b.Pos || a.Label != b.Label {
				continue
			}

			diff := b.Pos.Sub(a.Pos)

			if p.ExcludeZero {
				if c == a.Pos.Sub(diff) || c == b.Pos.Add(diff) {
					return true
				}

				continue
			}

			for k := -40; k <= 40; k++ {
				if q, ok := a.Pos.Step(diff, k); ok && q == c {
					return true
				}
			}
		}
	}

	return false
}
