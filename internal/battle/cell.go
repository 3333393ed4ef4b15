package battle

// CellState is the state of a single board cell.
type CellState int

const (
	CellEmpty    CellState = iota // Open water, never fired at
	CellOccupied                  // Part of a live ship, never fired at
	CellMiss                      // Fired at, open water
	CellHit                       // Fired at, part of a ship
	CellContour                   // Ring around a ship (placement aid or sunk marker)
)

// String returns a human-readable name for the cell state.
func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "Empty"
	case CellOccupied:
		return "Occupied"
	case CellMiss:
		return "Miss"
	case CellHit:
		return "Hit"
	case CellContour:
		return "Contour"
	default:
		return "Unknown"
	}
}

// Resolved reports whether the cell can no longer be targeted.
func (s CellState) Resolved() bool {
	return s == CellMiss || s == CellHit || s == CellContour
}
