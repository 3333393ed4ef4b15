package battle

import "errors"

var (
	// ErrMalformedInput is returned when text cannot be read as a coordinate.
	ErrMalformedInput = errors.New("battle: malformed coordinate input")

	// ErrInputClosed is returned when the human input source is exhausted.
	ErrInputClosed = errors.New("battle: input closed")

	// ErrGameOver is returned by Match.Step once the match has ended.
	ErrGameOver = errors.New("battle: match is over")
)

// Outcome is the result tag of Board.Shot.
type Outcome int

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeOutOfBounds
	OutcomeInvalidTarget
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "Miss"
	case OutcomeHit:
		return "Hit"
	case OutcomeOutOfBounds:
		return "OutOfBounds"
	case OutcomeInvalidTarget:
		return "InvalidTarget"
	default:
		return "Unknown"
	}
}

// ShotResult describes what a single shot did to a board.
type ShotResult struct {
	Outcome Outcome
	Sunk    bool // Set on a Hit that brought the ship to zero hit points
}

// Failure converts the outcome to the turn-level failure kind.
func (r ShotResult) Failure() Failure {
	switch r.Outcome {
	case OutcomeOutOfBounds:
		return FailureOutOfBounds
	case OutcomeInvalidTarget:
		return FailureInvalidTarget
	default:
		return FailureNone
	}
}

// Failure is a recoverable turn error. The acting side keeps the turn.
type Failure int

const (
	FailureNone Failure = iota
	FailureOutOfBounds
	FailureInvalidTarget
	FailureParse
)

// String returns a stable identifier for the failure kind.
func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureOutOfBounds:
		return "out_of_bounds"
	case FailureInvalidTarget:
		return "invalid_target"
	case FailureParse:
		return "parse_error"
	default:
		return "unknown"
	}
}

// Message returns the text shown to the acting side.
func (f Failure) Message() string {
	switch f {
	case FailureOutOfBounds:
		return "Coordinates are outside the board!"
	case FailureInvalidTarget:
		return "Choose another cell!"
	case FailureParse:
		return "Invalid coordinate format!"
	default:
		return ""
	}
}
