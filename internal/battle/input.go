package battle

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// ParseCoordinate reads "row col" as two whitespace-separated integers.
// Range is not checked here; an off-board pair is resolved by Board.Shot.
func ParseCoordinate(line string) (Coordinate, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Coordinate{}, fmt.Errorf("%w: want 2 integers, got %d fields", ErrMalformedInput, len(fields))
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: row %q", ErrMalformedInput, fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: column %q", ErrMalformedInput, fields[1])
	}
	return C(row, col), nil
}

// Targeter produces the coordinate a combatant fires at this turn.
// An error wrapping ErrMalformedInput is a recoverable parse failure;
// any other error ends the match.
type Targeter interface {
	Ask() (Coordinate, error)
}

// LineSource supplies one line of human input per call.
// It may block until the line is available.
type LineSource interface {
	ReadLine() (string, error)
}

// Human reads coordinates typed by a person.
type Human struct {
	src LineSource
}

// NewHuman creates a targeter reading from src.
func NewHuman(src LineSource) *Human {
	return &Human{src: src}
}

// Ask reads and parses the next line.
func (h *Human) Ask() (Coordinate, error) {
	line, err := h.src.ReadLine()
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %w", ErrInputClosed, err)
	}
	return ParseCoordinate(line)
}

// Automated fires at uniformly random cells and keeps no memory, so
// it may pick a resolved cell and have the shot rejected.
type Automated struct {
	size int
	rng  *rand.Rand
}

// NewAutomated creates a targeter for a size x size board.
func NewAutomated(size int, rng *rand.Rand) *Automated {
	return &Automated{size: size, rng: rng}
}

// Ask returns a random on-board coordinate.
func (a *Automated) Ask() (Coordinate, error) {
	return C(a.rng.Intn(a.size)+1, a.rng.Intn(a.size)+1), nil
}
