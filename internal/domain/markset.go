package domain

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	m "github.com/mouse-blink/antinode/internal/model"
)

// MarkSet is a bounded set of grid positions. Positions are stored as
// row-major indexes (y*width + x) in a compressed bitmap.
type MarkSet struct {
	size m.Vec2
	rb   *roaring.Bitmap
}

// NewMarkSet creates an empty set for a grid of the given size.
func NewMarkSet(size m.Vec2) (*MarkSet, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	return &MarkSet{
		size: size,
		rb:   roaring.New(),
	}, nil
}

// Size returns the declared width (X) and height (Y).
func (s *MarkSet) Size() m.Vec2 {
	return s.size
}

// Mark adds pos to the set. Marking an already marked position is a no-op.
// Out-of-bounds positions leave the set unchanged and return ErrOutOfBounds.
func (s *MarkSet) Mark(pos m.Vec2) error {
	if !pos.In(s.size) {
		return outOfBounds(pos, s.size)
	}

	s.rb.Add(s.index(pos))

	return nil
}

// Contains reports whether pos is marked.
func (s *MarkSet) Contains(pos m.Vec2) bool {
	if !pos.In(s.size) {
		return false
	}

	return s.rb.Contains(s.index(pos))
}

// Cardinality returns the number of distinct marked positions.
func (s *MarkSet) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// All yields the marked positions in row-major order.
func (s *MarkSet) All() iter.Seq[m.Vec2] {
	return func(yield func(m.Vec2) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(s.position(it.Next())) {
				return
			}
		}
	}
}

func (s *MarkSet) index(pos m.Vec2) uint32 {
	return uint32(pos.Y)*uint32(s.size.X) + uint32(pos.X)
}

func (s *MarkSet) position(idx uint32) m.Vec2 {
	width := uint32(s.size.X)

	return m.Vec2{X: m.Coord(idx % width), Y: m.Coord(idx / width)}
}
