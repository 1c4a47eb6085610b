package controller

import (
	"fmt"
	"testing"

	m "github.com/mouse-blink/antinode/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRenderGrid_Plain(t *testing.T) {
	view := m.AntinodeMap{
		Size:     m.V(5, 3),
		Antennas: []m.Antenna{{Pos: m.V(1, 1), Label: 'A'}, {Pos: m.V(2, 1), Label: 'A'}},
		Marks:    []m.Vec2{m.V(0, 1), m.V(3, 1), m.V(9, 9)},
	}

	assert.Equal(t, ".....\n#AA#.\n.....\n", renderGrid(view, plainCell))
}

func TestRenderGrid_Kinds(t *testing.T) {
	view := m.AntinodeMap{
		Size:     m.V(3, 1),
		Antennas: []m.Antenna{{Pos: m.V(0, 0), Label: 'x'}, {Pos: m.V(1, 0), Label: 'y'}},
		Marks:    []m.Vec2{m.V(1, 0), m.V(2, 0)},
	}

	tagged := func(kind cellKind, r rune) string {
		return fmt.Sprintf("[%d%c]", kind, r)
	}

	assert.Equal(t, "[2x][3y][1#]\n", renderGrid(view, tagged))
}

func TestRenderGrid_EmptySize(t *testing.T) {
	assert.Empty(t, renderGrid(m.AntinodeMap{Size: m.V(0, 4)}, plainCell))
}
