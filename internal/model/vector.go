// Package model defines the data structures shared by the antinode scanner.
package model

import (
	"fmt"
	"math"
)

// Coord is a single grid coordinate. Grids never exceed MaxCoord on either axis.
type Coord int16

// MaxCoord is the largest representable coordinate.
const MaxCoord Coord = math.MaxInt16

// Vec2 is an integer grid vector. X is the column, Y is the row.
type Vec2 struct {
	X Coord
	Y Coord
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y Coord) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v+b.
func (v Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: v.X + b.X, Y: v.Y + b.Y}
}

// Sub returns v-b.
func (v Vec2) Sub(b Vec2) Vec2 {
	return Vec2{X: v.X - b.X, Y: v.Y - b.Y}
}

// Scale returns v*k.
func (v Vec2) Scale(k Coord) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// In reports whether v lies inside [0, size.X) x [0, size.Y).
func (v Vec2) In(size Vec2) bool {
	return v.X >= 0 && v.X < size.X && v.Y >= 0 && v.Y < size.Y
}

// Step returns v + diff*k computed without wrapping. The boolean is false
// when the result does not fit in Coord.
func (v Vec2) Step(diff Vec2, k int) (Vec2, bool) {
	x := int(v.X) + int(diff.X)*k
	y := int(v.Y) + int(diff.Y)*k

	if !fits(x) || !fits(y) {
		return Vec2{}, false
	}

	return Vec2{X: Coord(x), Y: Coord(y)}, true
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

func fits(n int) bool {
	return n >= math.MinInt16 && n <= math.MaxInt16
}
