package grid

import (
	"fmt"
	"strings"
)

// Parse builds a grid from text, one row per line and one cell per rune.
// cell converts each rune at its position; a non-nil error aborts parsing and
// is returned wrapped with the position. Leading and trailing blank lines
// and CR line endings are accepted. Lines must all have the same rune count.
func Parse[T any](text string, cell func(p Pos, r rune) (T, error)) (*Grid[T], error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.Trim(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	rows := make([][]T, len(lines))
	for y, line := range lines {
		row := make([]T, 0, len(line))
		x := 0
		for _, r := range line {
			v, err := cell(Pos{x, y}, r)
			if err != nil {
				return nil, fmt.Errorf("grid: parse %v: %w", Pos{x, y}, err)
			}
			row = append(row, v)
			x++
		}
		rows[y] = row
	}
	return FromRows(rows)
}

// Runes parses text into a grid of its runes.
func Runes(text string) (*Grid[rune], error) {
	return Parse(text, func(_ Pos, r rune) (rune, error) { return r, nil })
}
