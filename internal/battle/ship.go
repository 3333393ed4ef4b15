package battle

import "fmt"

// Ship is a straight run of cells anchored at its bow.
// Only the hit points change after construction.
type Ship struct {
	length      int
	orientation Orientation
	bow         Coordinate
	hitPoints   int
}

// NewShip creates an undamaged ship.
func NewShip(length int, o Orientation, bow Coordinate) Ship {
	return Ship{
		length:      length,
		orientation: o,
		bow:         bow,
		hitPoints:   length,
	}
}

// Length returns the number of cells the ship occupies.
func (s Ship) Length() int {
	return s.length
}

// Orientation returns the direction the ship extends from its bow.
func (s Ship) Orientation() Orientation {
	return s.orientation
}

// Bow returns the anchor coordinate.
func (s Ship) Bow() Coordinate {
	return s.bow
}

// Stern returns the last occupied coordinate.
func (s Ship) Stern() Coordinate {
	dr, dc := s.orientation.Delta()
	return s.bow.Add(dr*(s.length-1), dc*(s.length-1))
}

// HitPoints returns the number of cells not yet hit.
func (s Ship) HitPoints() int {
	return s.hitPoints
}

// Sunk reports whether every cell has been hit.
func (s Ship) Sunk() bool {
	return s.hitPoints == 0
}

// Cells returns the occupied coordinates, bow first.
func (s Ship) Cells() []Coordinate {
	dr, dc := s.orientation.Delta()
	cells := make([]Coordinate, s.length)
	for i := range cells {
		cells[i] = s.bow.Add(dr*i, dc*i)
	}
	return cells
}

// Contains reports whether c is one of the ship's cells.
func (s Ship) Contains(c Coordinate) bool {
	stern := s.Stern()
	return c.Row >= s.bow.Row && c.Row <= stern.Row &&
		c.Col >= s.bow.Col && c.Col <= stern.Col
}

// String returns a short description like "3-deck Vertical at (2,4)".
func (s Ship) String() string {
	return fmt.Sprintf("%d-deck %s at %s", s.length, s.orientation, s.bow)
}

func (s *Ship) hit() {
	if s.hitPoints > 0 {
		s.hitPoints--
	}
}
