package battle

// Board is one side's grid and the live ships on it.
// Every board owns its grid and ship storage; nothing is shared between boards.
type Board struct {
	size   int
	hidden bool
	living int
	cells  [][]CellState
	ships  []*Ship
}

// NewBoard creates an empty size x size board.
func NewBoard(size int) *Board {
	cells := make([][]CellState, size)
	for r := range cells {
		cells[r] = make([]CellState, size)
	}
	return &Board{
		size:  size,
		cells: cells,
	}
}

// Size returns the board edge length.
func (b *Board) Size() int {
	return b.size
}

// Hidden reports whether unresolved cells should be masked when drawn.
// It is a presentation hint only.
func (b *Board) Hidden() bool {
	return b.hidden
}

// SetHidden sets the presentation hint.
func (b *Board) SetHidden(hidden bool) {
	b.hidden = hidden
}

// LivingShips returns the number of ships that are not sunk.
func (b *Board) LivingShips() int {
	return b.living
}

// Ships returns a copy of the live ships.
func (b *Board) Ships() []Ship {
	out := make([]Ship, len(b.ships))
	for i, s := range b.ships {
		out[i] = *s
	}
	return out
}

// InBounds reports whether both components lie in [1, size].
func (b *Board) InBounds(c Coordinate) bool {
	return c.Row >= 1 && c.Row <= b.size && c.Col >= 1 && c.Col <= b.size
}

// Cell returns the state at c, or false when c is off the board.
func (b *Board) Cell(c Coordinate) (CellState, bool) {
	if !b.InBounds(c) {
		return CellEmpty, false
	}
	return b.cells[c.Row-1][c.Col-1], true
}

// OccupiedCount returns the number of cells in the Occupied state.
func (b *Board) OccupiedCount() int {
	n := 0
	for _, row := range b.cells {
		for _, st := range row {
			if st == CellOccupied {
				n++
			}
		}
	}
	return n
}

func (b *Board) set(c Coordinate, st CellState) {
	b.cells[c.Row-1][c.Col-1] = st
}

// AddShip places s if no cell of its exclusion zone is Occupied.
// The zone is the bounding box of the ship grown by one cell and clipped
// to the board. Only Occupied cells block placement, so callers that place
// several ships must ring each placed ship with Contour before the next.
// On failure the board is left unchanged.
func (b *Board) AddShip(s Ship) bool {
	bow, stern := s.Bow(), s.Stern()
	if s.Length() < 1 || !b.InBounds(bow) || !b.InBounds(stern) {
		return false
	}

	top := max(bow.Row-1, 1)
	left := max(bow.Col-1, 1)
	bottom := min(stern.Row+1, b.size)
	right := min(stern.Col+1, b.size)
	for r := top; r <= bottom; r++ {
		for c := left; c <= right; c++ {
			if b.cells[r-1][c-1] == CellOccupied {
				return false
			}
		}
	}

	for _, c := range s.Cells() {
		b.set(c, CellOccupied)
	}
	placed := s
	b.ships = append(b.ships, &placed)
	b.living++
	return true
}

// Contour visits the 8 neighbours of every cell of s. With set, Empty and
// Contour neighbours become Contour; without, Contour neighbours become Empty.
// Occupied, Miss and Hit cells are never touched.
func (b *Board) Contour(s Ship, set bool) {
	for _, cell := range s.Cells() {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				n := cell.Add(dr, dc)
				if !b.InBounds(n) {
					continue
				}
				switch st := b.cells[n.Row-1][n.Col-1]; {
				case set && (st == CellEmpty || st == CellContour):
					b.set(n, CellContour)
				case !set && st == CellContour:
					b.set(n, CellEmpty)
				}
			}
		}
	}
}

// Shot resolves a shot at c.
// A sunk ship is ringed with Contour and removed from the board.
func (b *Board) Shot(c Coordinate) ShotResult {
	if !b.InBounds(c) {
		return ShotResult{Outcome: OutcomeOutOfBounds}
	}

	switch b.cells[c.Row-1][c.Col-1] {
	case CellEmpty:
		b.set(c, CellMiss)
		return ShotResult{Outcome: OutcomeMiss}

	case CellOccupied:
		b.set(c, CellHit)
		i := b.shipAt(c)
		if i < 0 {
			// Occupied without an owner breaks the board invariant.
			return ShotResult{Outcome: OutcomeHit}
		}
		ship := b.ships[i]
		ship.hit()
		if !ship.Sunk() {
			return ShotResult{Outcome: OutcomeHit}
		}
		b.living--
		b.Contour(*ship, true)
		b.ships = append(b.ships[:i], b.ships[i+1:]...)
		return ShotResult{Outcome: OutcomeHit, Sunk: true}

	default:
		return ShotResult{Outcome: OutcomeInvalidTarget}
	}
}

func (b *Board) shipAt(c Coordinate) int {
	for i, s := range b.ships {
		if s.Contains(c) {
			return i
		}
	}
	return -1
}
