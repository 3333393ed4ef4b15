package battle

import "testing"

func mustAdd(t *testing.T, b *Board, s Ship) {
	t.Helper()
	if !b.AddShip(s) {
		t.Fatalf("AddShip(%v) failed", s)
	}
}

func snapshot(b *Board) [][]CellState {
	out := make([][]CellState, b.Size())
	for r := range out {
		out[r] = append([]CellState(nil), b.cells[r]...)
	}
	return out
}

func sameCells(a, b [][]CellState) bool {
	for r := range a {
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				return false
			}
		}
	}
	return true
}

func TestNewBoardsDoNotShareStorage(t *testing.T) {
	a := NewBoard(6)
	b := NewBoard(6)

	mustAdd(t, a, NewShip(1, Horizontal, C(1, 1)))

	if st, _ := b.Cell(C(1, 1)); st != CellEmpty {
		t.Errorf("second board sees %v at (1,1), boards share a grid", st)
	}
	if b.LivingShips() != 0 || len(b.Ships()) != 0 {
		t.Error("second board sees the first board's ships")
	}
}

func TestShipCells(t *testing.T) {
	tests := []struct {
		name  string
		ship  Ship
		cells []Coordinate
	}{
		{"horizontal", NewShip(3, Horizontal, C(2, 1)), []Coordinate{C(2, 1), C(2, 2), C(2, 3)}},
		{"vertical", NewShip(2, Vertical, C(4, 6)), []Coordinate{C(4, 6), C(5, 6)}},
		{"single", NewShip(1, Vertical, C(3, 3)), []Coordinate{C(3, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ship.Cells()
			if len(got) != len(tt.cells) {
				t.Fatalf("Cells() = %v, want %v", got, tt.cells)
			}
			for i := range got {
				if got[i] != tt.cells[i] {
					t.Errorf("Cells()[%d] = %v, want %v", i, got[i], tt.cells[i])
				}
				if !tt.ship.Contains(got[i]) {
					t.Errorf("Contains(%v) = false", got[i])
				}
			}
			if tt.ship.Contains(tt.ship.Stern().Add(1, 1)) {
				t.Error("Contains reports a cell outside the ship")
			}
		})
	}
}

func TestAddShipSpacing(t *testing.T) {
	tests := []struct {
		name string
		ship Ship
		ok   bool
	}{
		{"overlap", NewShip(1, Horizontal, C(2, 2)), false},
		{"orthogonal neighbour", NewShip(1, Horizontal, C(2, 4)), false},
		{"diagonal neighbour", NewShip(2, Vertical, C(3, 4)), false},
		{"long ship touching end", NewShip(3, Horizontal, C(1, 4)), false},
		{"one cell gap", NewShip(1, Horizontal, C(2, 5)), true},
		{"gap below", NewShip(3, Horizontal, C(4, 1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(6)
			mustAdd(t, b, NewShip(2, Horizontal, C(2, 2)))
			before := snapshot(b)

			if got := b.AddShip(tt.ship); got != tt.ok {
				t.Fatalf("AddShip(%v) = %v, want %v", tt.ship, got, tt.ok)
			}
			if tt.ok {
				if b.LivingShips() != 2 || len(b.Ships()) != 2 {
					t.Errorf("LivingShips() = %d, Ships() = %d, want 2", b.LivingShips(), len(b.Ships()))
				}
				return
			}
			if !sameCells(before, snapshot(b)) || b.LivingShips() != 1 {
				t.Error("failed AddShip changed the board")
			}
		})
	}
}

func TestAddShipOffBoard(t *testing.T) {
	b := NewBoard(6)

	if b.AddShip(NewShip(3, Horizontal, C(1, 5))) {
		t.Error("ship running past the right edge was accepted")
	}
	if b.AddShip(NewShip(2, Vertical, C(6, 1))) {
		t.Error("ship running past the bottom edge was accepted")
	}
	if b.AddShip(NewShip(1, Vertical, C(0, 1))) {
		t.Error("ship with an off-board bow was accepted")
	}
	if b.OccupiedCount() != 0 {
		t.Errorf("OccupiedCount() = %d after rejected placements", b.OccupiedCount())
	}
}

func TestAddShipIgnoresContour(t *testing.T) {
	b := NewBoard(6)
	first := NewShip(1, Horizontal, C(3, 3))
	mustAdd(t, b, first)
	b.Contour(first, true)
	b.cells[0][0] = CellContour

	// Only Occupied cells block; a Contour cell in the zone does not.
	if !b.AddShip(NewShip(1, Horizontal, C(1, 1))) {
		t.Error("AddShip rejected a ship whose zone holds only Contour")
	}
}

func TestContourSetAndClear(t *testing.T) {
	b := NewBoard(6)
	s := NewShip(2, Vertical, C(1, 1))
	mustAdd(t, b, s)
	b.cells[2][1] = CellMiss // (3,2) is a ring cell already resolved

	b.Contour(s, true)

	ring := []Coordinate{C(1, 2), C(2, 2), C(3, 1)}
	for _, c := range ring {
		if st, _ := b.Cell(c); st != CellContour {
			t.Errorf("Cell(%v) = %v after Contour(set), want Contour", c, st)
		}
	}
	if st, _ := b.Cell(C(3, 2)); st != CellMiss {
		t.Errorf("Contour overwrote a Miss: %v", st)
	}
	for _, c := range s.Cells() {
		if st, _ := b.Cell(c); st != CellOccupied {
			t.Errorf("Contour touched ship cell %v: %v", c, st)
		}
	}

	b.Contour(s, false)
	for _, c := range ring {
		if st, _ := b.Cell(c); st != CellEmpty {
			t.Errorf("Cell(%v) = %v after Contour(clear), want Empty", c, st)
		}
	}
	if st, _ := b.Cell(C(3, 2)); st != CellMiss {
		t.Errorf("clearing contour changed a Miss: %v", st)
	}
}

func TestInBounds(t *testing.T) {
	b := NewBoard(6)
	tests := []struct {
		c    Coordinate
		want bool
	}{
		{C(1, 1), true},
		{C(6, 6), true},
		{C(0, 3), false},
		{C(3, 0), false},
		{C(7, 3), false},
		{C(3, 7), false},
		{C(-1, -1), false},
	}
	for _, tt := range tests {
		if got := b.InBounds(tt.c); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestShotOutOfBoundsNeverMutates(t *testing.T) {
	b := NewBoard(6)
	mustAdd(t, b, NewShip(1, Horizontal, C(1, 1)))
	b.Shot(C(4, 4))
	before := snapshot(b)

	for _, c := range []Coordinate{C(0, 3), C(3, 0), C(7, 1), C(1, 7), C(0, 0), C(7, 7)} {
		if res := b.Shot(c); res.Outcome != OutcomeOutOfBounds {
			t.Errorf("Shot(%v) = %v, want OutOfBounds", c, res.Outcome)
		}
	}
	if !sameCells(before, snapshot(b)) {
		t.Error("out-of-bounds shot changed the board")
	}
}

func TestShotTwiceIsInvalidTarget(t *testing.T) {
	b := NewBoard(6)
	mustAdd(t, b, NewShip(2, Horizontal, C(5, 1)))

	tests := []struct {
		name  string
		c     Coordinate
		first Outcome
	}{
		{"miss", C(2, 2), OutcomeMiss},
		{"hit", C(5, 1), OutcomeHit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if res := b.Shot(tt.c); res.Outcome != tt.first {
				t.Fatalf("first Shot(%v) = %v, want %v", tt.c, res.Outcome, tt.first)
			}
			before := snapshot(b)
			living := b.LivingShips()
			if res := b.Shot(tt.c); res.Outcome != OutcomeInvalidTarget {
				t.Errorf("second Shot(%v) = %v, want InvalidTarget", tt.c, res.Outcome)
			}
			if !sameCells(before, snapshot(b)) || b.LivingShips() != living {
				t.Error("rejected shot changed the board")
			}
		})
	}
}

func TestShotSinksShip(t *testing.T) {
	b := NewBoard(6)
	target := NewShip(2, Horizontal, C(3, 3))
	mustAdd(t, b, target)
	mustAdd(t, b, NewShip(1, Horizontal, C(6, 6)))
	b.Shot(C(2, 2)) // pre-existing miss in the future ring

	res := b.Shot(C(3, 3))
	if res.Outcome != OutcomeHit || res.Sunk {
		t.Fatalf("Shot(3,3) = %+v, want plain Hit", res)
	}
	if ships := b.Ships(); len(ships) != 2 || ships[0].HitPoints() != 1 {
		t.Fatalf("after one hit ships = %v, want first ship at 1 hit point", ships)
	}

	res = b.Shot(C(3, 4))
	if res.Outcome != OutcomeHit || !res.Sunk {
		t.Fatalf("Shot(3,4) = %+v, want sinking Hit", res)
	}
	if b.LivingShips() != 1 {
		t.Errorf("LivingShips() = %d, want 1", b.LivingShips())
	}
	for _, s := range b.Ships() {
		if s.Bow() == target.Bow() {
			t.Error("sunk ship still listed in Ships()")
		}
	}

	for r := 2; r <= 4; r++ {
		for c := 2; c <= 5; c++ {
			st, _ := b.Cell(C(r, c))
			want := CellContour
			switch {
			case r == 3 && (c == 3 || c == 4):
				want = CellHit
			case r == 2 && c == 2:
				want = CellMiss
			}
			if st != want {
				t.Errorf("Cell(%d,%d) = %v, want %v", r, c, st, want)
			}
		}
	}

	if res := b.Shot(C(4, 4)); res.Outcome != OutcomeInvalidTarget {
		t.Errorf("Shot on contour = %v, want InvalidTarget", res.Outcome)
	}
}
