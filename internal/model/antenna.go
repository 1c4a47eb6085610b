package model

import "time"

// Path represents an input location. Empty or "-" means standard input.
type Path string

// Stdin reports whether the path refers to standard input.
func (p Path) Stdin() bool {
	return p == "" || p == "-"
}

// Antenna is a labeled point on the grid.
type Antenna struct {
	Pos   Vec2
	Label rune
}

// Policy selects which harmonics the scanner records.
type Policy struct {
	Name        string
	MaxHarmonic Coord
	// ExcludeZero skips harmonic 0, i.e. the antennas' own positions.
	ExcludeZero bool
}

var (
	// PolicyNearest records only the immediate reflection points.
	PolicyNearest = Policy{Name: "nearest", MaxHarmonic: 1, ExcludeZero: true}
	// PolicyResonant records every collinear point up to the grid edge,
	// antennas included.
	PolicyResonant = Policy{Name: "resonant", MaxHarmonic: MaxCoord, ExcludeZero: false}
)

// Policies lists the built-in policies in report order.
func Policies() []Policy {
	return []Policy{PolicyNearest, PolicyResonant}
}

// ParseStats describes a parsed grid.
type ParseStats struct {
	Size     Vec2
	Antennas int
	Labels   int
	Elapsed  time.Duration
}

// ScanResult holds the outcome of one policy scan.
type ScanResult struct {
	Policy  Policy
	Count   uint64
	Elapsed time.Duration
}

// AntinodeMap is a snapshot of a scanned grid used for rendering.
type AntinodeMap struct {
	Policy   Policy
	Size     Vec2
	Antennas []Antenna
	Marks    []Vec2
}
