// Package battle implements the rules of a two-sided hidden fleet battle:
// boards with non-adjacent ships, randomized fleet placement, shot
// resolution and the turn scheduler that alternates control on a miss.
//
// The package is front-end neutral. Human input arrives through a
// LineSource, presentation goes through DrawBoard into a core.Screen.
package battle

import "fmt"

// Coordinate is a 1-indexed (row, column) cell address.
// Row grows downward, column grows to the right.
type Coordinate struct {
	Row int
	Col int
}

// C is a convenience constructor for Coordinate.
func C(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coordinate offset by (dr, dc).
func (c Coordinate) Add(dr, dc int) Coordinate {
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// Orientation is the direction a ship extends from its bow.
type Orientation int

const (
	Horizontal Orientation = iota // Bow is the leftmost cell
	Vertical                      // Bow is the topmost cell
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Delta returns the unit step (dr, dc) along this orientation.
func (o Orientation) Delta() (int, int) {
	if o == Vertical {
		return 1, 0
	}
	return 0, 1
}
