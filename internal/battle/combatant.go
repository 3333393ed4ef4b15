package battle

import "errors"

// Side identifies one of the two combatants.
type Side int

const (
	SideNone Side = iota
	Side1         // Moves first, the human side in a standard match
	Side2
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case Side1:
		return "Side 1"
	case Side2:
		return "Side 2"
	default:
		return "None"
	}
}

// Other returns the opposing side.
func (s Side) Other() Side {
	switch s {
	case Side1:
		return Side2
	case Side2:
		return Side1
	default:
		return SideNone
	}
}

// MoveResult is the outcome of one Combatant.Move.
type MoveResult struct {
	Target       Coordinate // Zero when the input did not parse
	Shot         ShotResult // Meaningful when Failure is not FailureParse
	TurnRetained bool
	Failure      Failure
}

// Combatant owns its fleet board and fires at the opponent's board.
// The target board is referenced, never copied, so hits are observed live.
type Combatant struct {
	name     string
	side     Side
	fleet    *Board
	target   *Board
	targeter Targeter
}

// NewCombatant creates a combatant owning fleet.
// The target board is set with Aim.
func NewCombatant(name string, side Side, fleet *Board, t Targeter) *Combatant {
	return &Combatant{
		name:     name,
		side:     side,
		fleet:    fleet,
		targeter: t,
	}
}

// Aim sets the board this combatant fires at.
func (c *Combatant) Aim(target *Board) {
	c.target = target
}

// Name returns the display name.
func (c *Combatant) Name() string {
	return c.name
}

// Side returns the side this combatant plays.
func (c *Combatant) Side() Side {
	return c.side
}

// Fleet returns the combatant's own board.
func (c *Combatant) Fleet() *Board {
	return c.fleet
}

// Target returns the opponent's board.
func (c *Combatant) Target() *Board {
	return c.target
}

// Move asks for a coordinate and fires it at the target board.
// A hit or a failure keeps the turn, a miss passes it. The returned error is
// non-nil only when the targeter cannot produce input at all.
func (c *Combatant) Move() (MoveResult, error) {
	coord, err := c.targeter.Ask()
	if err != nil {
		if errors.Is(err, ErrMalformedInput) {
			return MoveResult{TurnRetained: true, Failure: FailureParse}, nil
		}
		return MoveResult{}, err
	}

	shot := c.target.Shot(coord)
	return MoveResult{
		Target:       coord,
		Shot:         shot,
		TurnRetained: shot.Outcome != OutcomeMiss,
		Failure:      shot.Failure(),
	}, nil
}
