package battle

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// State is the turn scheduler state.
type State int

const (
	StateSide1Turn State = iota
	StateSide2Turn
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateSide1Turn:
		return "Side1Turn"
	case StateSide2Turn:
		return "Side2Turn"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Turn records one dispatched move and the state it led to.
type Turn struct {
	Number int  // 1-based move counter, failed moves included
	Side   Side // Side that acted
	Move   MoveResult
	State  State // State after the move
}

// Stats are per-side shooting counters. Failed moves are not shots.
type Stats struct {
	Shots int
	Hits  int
	Sunk  int
}

// Match runs the turn loop between two combatants until one fleet is gone.
// It is single-threaded: Step must not be called concurrently.
type Match struct {
	sides  [2]*Combatant
	state  State
	winner Side
	moves  int
	stats  [2]Stats
	logger *log.Logger
}

// Option configures a Match.
type Option func(*Match)

// WithLogger sets the logger used for move tracing.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMatch pairs two combatants, aiming each at the other's fleet.
// Side 1 moves first.
func NewMatch(first, second *Combatant, opts ...Option) *Match {
	first.Aim(second.Fleet())
	second.Aim(first.Fleet())

	m := &Match{
		sides:  [2]*Combatant{first, second},
		state:  StateSide1Turn,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewStandardMatch generates both fleets with rules and sets up a human
// (Side 1) against the automated side (Side 2), whose board is hidden.
func NewStandardMatch(rules Rules, rng *rand.Rand, human Targeter, opts ...Option) (*Match, error) {
	m := &Match{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(m)
	}

	gen, err := NewGenerator(rules, rng, m.logger)
	if err != nil {
		return nil, fmt.Errorf("battle: cannot create generator: %w", err)
	}
	humanBoard := gen.Generate()
	cpuBoard := gen.Generate()
	cpuBoard.SetHidden(true)
	m.logger.Debug("fleets generated", "size", rules.Size, "ships", rules.Fleet.Ships(), "restarts", gen.Restarts())

	return NewMatch(
		NewCombatant("You", Side1, humanBoard, human),
		NewCombatant("Computer", Side2, cpuBoard, NewAutomated(rules.Size, rng)),
		opts...,
	), nil
}

// State returns the current scheduler state.
func (m *Match) State() State {
	return m.state
}

// Over reports whether the match has ended.
func (m *Match) Over() bool {
	return m.state == StateGameOver
}

// Winner returns the winning side, or SideNone while the match runs.
func (m *Match) Winner() Side {
	return m.winner
}

// Moves returns the number of dispatched moves.
func (m *Match) Moves() int {
	return m.moves
}

// Combatant returns the combatant playing side.
func (m *Match) Combatant(side Side) *Combatant {
	switch side {
	case Side1:
		return m.sides[0]
	case Side2:
		return m.sides[1]
	default:
		return nil
	}
}

// ActiveSide returns the side to move, or SideNone after game over.
func (m *Match) ActiveSide() Side {
	switch m.state {
	case StateSide1Turn:
		return Side1
	case StateSide2Turn:
		return Side2
	default:
		return SideNone
	}
}

// Active returns the combatant to move, or nil after game over.
func (m *Match) Active() *Combatant {
	return m.Combatant(m.ActiveSide())
}

// Stats returns shooting counters for side.
func (m *Match) Stats(side Side) Stats {
	if side != Side1 && side != Side2 {
		return Stats{}
	}
	return m.stats[side-1]
}

// Step dispatches exactly one move of the active side.
// Errors from the targeter are returned without changing the state.
func (m *Match) Step() (Turn, error) {
	side := m.ActiveSide()
	if side == SideNone {
		return Turn{}, ErrGameOver
	}

	move, err := m.Active().Move()
	if err != nil {
		return Turn{}, err
	}
	m.moves++
	m.record(side, move)

	if !move.TurnRetained {
		m.state = turnOf(side.Other())
	}
	m.checkGameOver(side)

	m.logger.Debug("move",
		"n", m.moves,
		"side", side,
		"target", move.Target,
		"outcome", move.Shot.Outcome,
		"sunk", move.Shot.Sunk,
		"failure", move.Failure,
		"state", m.state,
	)
	return Turn{Number: m.moves, Side: side, Move: move, State: m.state}, nil
}

// Play runs Step until game over. onTurn, if set, sees every move.
// It stops early on a targeter error or when ctx is cancelled.
func (m *Match) Play(ctx context.Context, onTurn func(Turn)) error {
	for !m.Over() {
		if err := ctx.Err(); err != nil {
			return err
		}
		turn, err := m.Step()
		if err != nil {
			return err
		}
		if onTurn != nil {
			onTurn(turn)
		}
	}
	return nil
}

func (m *Match) record(side Side, move MoveResult) {
	if move.Failure != FailureNone {
		return
	}
	st := &m.stats[side-1]
	st.Shots++
	if move.Shot.Outcome == OutcomeHit {
		st.Hits++
	}
	if move.Shot.Sunk {
		st.Sunk++
	}
}

// checkGameOver ends the match when a fleet is gone. The side with ships
// left wins; if neither has any, the acting side wins.
func (m *Match) checkGameOver(acting Side) {
	alive1 := m.sides[0].Fleet().LivingShips() > 0
	alive2 := m.sides[1].Fleet().LivingShips() > 0
	if alive1 && alive2 {
		return
	}

	switch {
	case alive1:
		m.winner = Side1
	case alive2:
		m.winner = Side2
	default:
		m.winner = acting
	}
	m.state = StateGameOver
	m.logger.Debug("game over", "winner", m.winner, "moves", m.moves)
}

func turnOf(side Side) State {
	if side == Side2 {
		return StateSide2Turn
	}
	return StateSide1Turn
}
