package domain

import (
	"iter"
	"maps"
	"slices"

	m "github.com/mouse-blink/antinode/internal/model"
)

// LabeledGrid maps in-bounds positions to antenna labels. Its size is fixed
// at construction and every stored position lies inside it.
type LabeledGrid struct {
	size    m.Vec2
	entries map[m.Vec2]rune
}

// NewLabeledGrid creates an empty grid. Negative sizes are rejected.
func NewLabeledGrid(size m.Vec2) (*LabeledGrid, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	return &LabeledGrid{
		size:    size,
		entries: make(map[m.Vec2]rune),
	}, nil
}

// Size returns the declared width (X) and height (Y).
func (g *LabeledGrid) Size() m.Vec2 {
	return g.size
}

// Len returns the number of labeled positions.
func (g *LabeledGrid) Len() int {
	return len(g.entries)
}

// Insert records label at pos, overwriting any previous label there.
// Out-of-bounds positions leave the grid unchanged and return ErrOutOfBounds.
func (g *LabeledGrid) Insert(pos m.Vec2, label rune) error {
	if !pos.In(g.size) {
		return outOfBounds(pos, g.size)
	}

	g.entries[pos] = label

	return nil
}

// Get returns the label at pos. Lookups outside the grid report absent.
func (g *LabeledGrid) Get(pos m.Vec2) (rune, bool) {
	label, ok := g.entries[pos]
	return label, ok
}

// All yields every (position, label) pair. Order is unspecified.
func (g *LabeledGrid) All() iter.Seq2[m.Vec2, rune] {
	return maps.All(g.entries)
}

// Antennas returns the entries in row-major order.
func (g *LabeledGrid) Antennas() []m.Antenna {
	antennas := make([]m.Antenna, 0, len(g.entries))
	for pos, label := range g.entries {
		antennas = append(antennas, m.Antenna{Pos: pos, Label: label})
	}

	slices.SortFunc(antennas, func(a, b m.Antenna) int {
		return compareRowMajor(a.Pos, b.Pos)
	})

	return antennas
}

// Labels returns the number of distinct labels on the grid.
func (g *LabeledGrid) Labels() int {
	seen := make(map[rune]struct{})
	for _, label := range g.entries {
		seen[label] = struct{}{}
	}

	return len(seen)
}

func compareRowMajor(a, b m.Vec2) int {
	if a.Y != b.Y {
		return int(a.Y) - int(b.Y)
	}

	return int(a.X) - int(b.X)
}
