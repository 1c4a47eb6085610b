package domain

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	m "github.com/mouse-blink/antinode/internal/model"
)

// ParseGrid reads a character grid and returns its antennas. Letters and
// numbers (any Unicode numeric category) are antennas; every other character is background. The grid is as
// wide as its longest line and as tall as its line count.
func ParseGrid(r io.Reader) (*LabeledGrid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}

	lines := splitLines(string(data))

	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	if width == 0 {
		return nil, ErrEmptyInput
	}

	height := len(lines)
	if width > int(m.MaxCoord) || height > int(m.MaxCoord) {
		return nil, &ErrGridTooLarge{Width: width, Height: height}
	}

	grid, err := NewLabeledGrid(m.V(m.Coord(width), m.Coord(height)))
	if err != nil {
		return nil, err
	}

	for row, line := range lines {
		col := 0

		for _, c := range line {
			if isAntenna(c) {
				if err := grid.Insert(m.V(m.Coord(col), m.Coord(row)), c); err != nil {
					return nil, err
				}
			}

			col++
		}
	}

	return grid, nil
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

func isAntenna(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsNumber(c)
}
