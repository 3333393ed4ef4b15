package battle

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Generator places a fleet at random on fresh boards.
//
// Each pass draws random ships against a shared attempt budget. When the
// budget runs out before the fleet is complete the board is thrown away and
// a new pass starts with a fresh budget. There is no backtracking.
type Generator struct {
	rules    Rules
	rng      *rand.Rand
	logger   *log.Logger
	restarts int
}

// NewGenerator validates rules and returns a generator drawing from rng.
// A nil logger disables logging.
func NewGenerator(rules Rules, rng *rand.Rand, logger *log.Logger) (*Generator, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{
		rules:  rules,
		rng:    rng,
		logger: logger,
	}, nil
}

// Restarts returns how many passes were discarded so far.
func (g *Generator) Restarts() int {
	return g.restarts
}

// Generate returns a board holding the full fleet with no contour left.
// It loops until a pass succeeds.
func (g *Generator) Generate() *Board {
	for {
		if b, ok := g.pass(); ok {
			return b
		}
		g.restarts++
		g.logger.Debug("placement budget exhausted, restarting", "restarts", g.restarts)
	}
}

func (g *Generator) pass() (*Board, bool) {
	b := NewBoard(g.rules.Size)
	budget := g.rules.MaxAttempts

	for _, class := range g.rules.Fleet {
		remaining := class.Count
		for remaining > 0 && budget > 0 {
			ship := g.randomShip(class.Length)
			budget--
			if b.AddShip(ship) {
				b.Contour(ship, true)
				remaining--
			}
		}
		if remaining > 0 {
			return nil, false
		}
	}

	for _, s := range b.ships {
		b.Contour(*s, false)
	}
	return b, true
}

// randomShip picks an orientation, then a bow that keeps the ship on the board.
func (g *Generator) randomShip(length int) Ship {
	n := g.rules.Size
	o := Orientation(g.rng.Intn(2))
	var bow Coordinate
	if o == Vertical {
		bow = C(g.rng.Intn(n-length+1)+1, g.rng.Intn(n)+1)
	} else {
		bow = C(g.rng.Intn(n)+1, g.rng.Intn(n-length+1)+1)
	}
	return NewShip(length, o, bow)
}
