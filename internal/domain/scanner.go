package domain

import (
	m "github.com/mouse-blink/antinode/internal/model"
)

// ScanPolicy runs Scan with the harmonic settings of p.
func ScanPolicy(grid *LabeledGrid, p m.Policy) *MarkSet {
	return Scan(grid, p.MaxHarmonic, p.ExcludeZero)
}

// Scan marks every position collinear with two same-labeled antennas at an
// integer multiple of their separation.
//
// Each ordered pair (a, b) walks two rays: a - diff*h and b + diff*h, where
// diff = b - a. A ray starts at h = 0 (h = 1 when excludeZero is set) and
// stops at the first out-of-bounds harmonic, or after recording
// h == maxHarmonic. Visiting both orderings of every pair covers the whole
// line from both antennas outward.
func Scan(grid *LabeledGrid, maxHarmonic m.Coord, excludeZero bool) *MarkSet {
	// Size was validated when the grid was built.
	antinodes, _ := NewMarkSet(grid.Size())

	start := 0
	if excludeZero {
		start = 1
	}

	for pos, label := range grid.All() {
		for pos2, label2 := range grid.All() {
			if pos == pos2 && label == label2 {
				continue
			}

			if label != label2 {
				continue
			}

			diff := pos2.Sub(pos)

			walkRay(antinodes, pos, diff, -1, start, int(maxHarmonic))
			walkRay(antinodes, pos2, diff, 1, start, int(maxHarmonic))
		}
	}

	return antinodes
}

// walkRay marks origin + diff*harmonic*sign for increasing harmonics.
func walkRay(set *MarkSet, origin, diff m.Vec2, sign, start, maxHarmonic int) {
	for harmonic := start; ; harmonic++ {
		p, ok := origin.Step(diff, sign*harmonic)
		if !ok {
			return
		}

		if err := set.Mark(p); err != nil || harmonic >= maxHarmonic {
			return
		}
	}
}
