package world

import (
	"fmt"
)

// Position identifies a tile by row and column (both 0-based).
// Its label form is a row letter followed by a 1-based column number, so the
// top-left tile of a grid is "A1".
type Position struct {
	Row int
	Col int
}

// NewPosition creates a position from 0-based row and column indices
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns the label form of the position, e.g. "C3"
func (p Position) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(p.Row), p.Col+1)
}

// Step returns the position one tile away in the given direction.
// The result may lie outside any grid; callers check bounds.
func (p Position) Step(dir Direction) Position {
	dr, dc := dir.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// ParsePosition parses a label such as "A1" or "e5".
func ParsePosition(label string) (Position, error) {
	if len(label) < 2 {
		return Position{}, fmt.Errorf("position %q: too short", label)
	}

	rowChar := label[0]
	if rowChar >= 'a' && rowChar <= 'z' {
		rowChar -= 'a' - 'A'
	}
	if rowChar < 'A' || rowChar > 'Z' {
		return Position{}, fmt.Errorf("position %q: row must be a letter", label)
	}

	col := 0
	for _, c := range label[1:] {
		if c < '0' || c > '9' {
			return Position{}, fmt.Errorf("position %q: column must be a number", label)
		}
		col = col*10 + int(c-'0')
	}
	if col < 1 {
		return Position{}, fmt.Errorf("position %q: columns start at 1", label)
	}

	return Position{Row: int(rowChar - 'A'), Col: col - 1}, nil
}
