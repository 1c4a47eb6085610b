package controller

import (
	"strings"

	m "github.com/mouse-blink/antinode/internal/model"
)

// cellKind classifies a rendered grid cell.
type cellKind int

const (
	cellEmpty cellKind = iota
	cellAntinode
	cellAntenna
	// cellBoth is an antenna that is also an antinode.
	cellBoth
)

const (
	emptyRune    = '.'
	antinodeRune = '#'
)

// cellRenderer turns one cell into its printed form.
type cellRenderer func(kind cellKind, r rune) string

func plainCell(_ cellKind, r rune) string {
	return string(r)
}

// renderGrid draws view row by row, one line per row.
func renderGrid(view m.AntinodeMap, render cellRenderer) string {
	width, height := int(view.Size.X), int(view.Size.Y)
	if width == 0 || height == 0 {
		return ""
	}

	kinds := make([]cellKind, width*height)
	runes := make([]rune, width*height)

	for i := range runes {
		runes[i] = emptyRune
	}

	for _, p := range view.Marks {
		if !p.In(view.Size) {
			continue
		}

		idx := int(p.Y)*width + int(p.X)
		kinds[idx] = cellAntinode
		runes[idx] = antinodeRune
	}

	for _, a := range view.Antennas {
		if !a.Pos.In(view.Size) {
			continue
		}

		idx := int(a.Pos.Y)*width + int(a.Pos.X)
		if kinds[idx] == cellAntinode {
			kinds[idx] = cellBoth
		} else {
			kinds[idx] = cellAntenna
		}

		runes[idx] = a.Label
	}

	var sb strings.Builder

	for y := range height {
		for x := range width {
			idx := y*width + x
			sb.WriteString(render(kinds[idx], runes[idx]))
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}
