package battle

import (
	"errors"
	"fmt"
)

// Default rule constants.
const (
	DefaultBoardSize   = 6
	DefaultMaxAttempts = 1000
	MaxShipLength      = 3
)

// ErrInvalidRules is returned by Rules.Validate.
var ErrInvalidRules = errors.New("battle: invalid rules")

// ShipClass is a group of identical ships in a fleet.
type ShipClass struct {
	Length int
	Count  int
}

// Fleet is the ordered fleet composition, longest ships first.
type Fleet []ShipClass

// ClassicFleet is one 3-deck, two 2-deck and four 1-deck ships.
var ClassicFleet = Fleet{
	{Length: 3, Count: 1},
	{Length: 2, Count: 2},
	{Length: 1, Count: 4},
}

// Ships returns the total number of ships.
func (f Fleet) Ships() int {
	n := 0
	for _, c := range f {
		n += c.Count
	}
	return n
}

// Cells returns the total number of cells the fleet occupies.
func (f Fleet) Cells() int {
	n := 0
	for _, c := range f {
		n += c.Length * c.Count
	}
	return n
}

// Rules are the constants fixed at match start.
type Rules struct {
	Size        int
	Fleet       Fleet
	MaxAttempts int // Placement attempt budget shared by one generation pass
}

// DefaultRules returns the classic 6x6 rules.
func DefaultRules() Rules {
	fleet := make(Fleet, len(ClassicFleet))
	copy(fleet, ClassicFleet)
	return Rules{
		Size:        DefaultBoardSize,
		Fleet:       fleet,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Validate checks that a generator can run with these rules.
// It cannot prove a dense fleet fits; it only rejects impossible ones.
func (r Rules) Validate() error {
	if r.Size < 1 {
		return fmt.Errorf("%w: board size %d", ErrInvalidRules, r.Size)
	}
	if r.MaxAttempts < 1 {
		return fmt.Errorf("%w: placement budget %d", ErrInvalidRules, r.MaxAttempts)
	}
	if r.Fleet.Ships() == 0 {
		return fmt.Errorf("%w: empty fleet", ErrInvalidRules)
	}
	prev := MaxShipLength + 1
	for _, c := range r.Fleet {
		if c.Length < 1 || c.Length > MaxShipLength {
			return fmt.Errorf("%w: ship length %d not in [1,%d]", ErrInvalidRules, c.Length, MaxShipLength)
		}
		if c.Length > r.Size {
			return fmt.Errorf("%w: ship length %d exceeds board size %d", ErrInvalidRules, c.Length, r.Size)
		}
		if c.Count < 0 {
			return fmt.Errorf("%w: negative count for length %d", ErrInvalidRules, c.Length)
		}
		if c.Length >= prev {
			return fmt.Errorf("%w: fleet must list each length once, longest first", ErrInvalidRules)
		}
		prev = c.Length
	}
	if r.Fleet.Cells() > r.Size*r.Size {
		return fmt.Errorf("%w: fleet needs %d cells, board has %d", ErrInvalidRules, r.Fleet.Cells(), r.Size*r.Size)
	}
	return nil
}
