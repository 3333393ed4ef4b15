// Package console runs battleship as a line-oriented game on plain
// text streams: boards are printed, coordinates are typed as "row col".
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-battleship/internal/battle"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

const (
	coordPrompt     = "Enter coordinates: "
	playAgainPrompt = "Play again? (N to quit, anything else to continue): "
	boardIndent     = 8
)

// Journal persists finished matches. *storage.Store implements it.
type Journal interface {
	SaveMatch(rec *storage.MatchRecord) (int64, error)
}

// Options configures a console session.
type Options struct {
	Rules   battle.Rules
	Seed    int64       // 0 means time based
	Player  string      // Name recorded in the journal
	Journal Journal     // Optional
	Logger  *log.Logger // Optional
}

// Console plays consecutive matches until the user declines or input ends.
type Console struct {
	in     *lineReader
	out    io.Writer
	opts   Options
	rng    *rand.Rand
	logger *log.Logger
}

// New creates a console session reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Console {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := core.RuntimeConfig{Seed: opts.Seed}.ResolveSeed()
	logger.Debug("console session", "seed", seed, "size", opts.Rules.Size)

	return &Console{
		in:     newLineReader(in, out, coordPrompt),
		out:    out,
		opts:   opts,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// Run plays matches until the user answers N or the input is exhausted.
// Closed input is a normal way to leave and is not returned as an error.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := c.playOne(ctx); err != nil {
			if errors.Is(err, battle.ErrInputClosed) {
				fmt.Fprintln(c.out)
				fmt.Fprintln(c.out, "See you!")
				return nil
			}
			return err
		}

		answer, err := c.in.ask(playAgainPrompt)
		if err != nil || answer == "N" {
			fmt.Fprintln(c.out, "See you!")
			return nil
		}
	}
}

func (c *Console) playOne(ctx context.Context) error {
	c.greet()

	m, err := battle.NewStandardMatch(c.opts.Rules, c.rng, battle.NewHuman(c.in), battle.WithLogger(c.logger))
	if err != nil {
		return err
	}
	started := time.Now()

	c.printBoards(m)
	err = m.Play(ctx, func(t battle.Turn) { c.narrate(m, t) })
	c.record(m, started)
	if err != nil {
		return err
	}

	if m.Winner() == battle.Side1 {
		fmt.Fprintln(c.out, "You won!")
	} else {
		fmt.Fprintln(c.out, "The computer was stronger this time!")
	}
	return nil
}

// narrate reports one move the way the game talks to the player.
func (c *Console) narrate(m *battle.Match, t battle.Turn) {
	move := t.Move
	if t.Side == battle.Side2 {
		fmt.Fprintf(c.out, "The computer fires at %d %d\n\n", move.Target.Row, move.Target.Col)
	}

	if move.Failure != battle.FailureNone {
		fmt.Fprintln(c.out, move.Failure.Message())
		fmt.Fprintln(c.out)
		return
	}

	switch {
	case move.Shot.Sunk:
		fmt.Fprintln(c.out, "Hit! Ship sunk!")
	case move.Shot.Outcome == battle.OutcomeHit:
		fmt.Fprintln(c.out, "Hit!")
	default:
		fmt.Fprintln(c.out, "Miss!")
	}
	fmt.Fprintln(c.out)
	c.printBoards(m)
}

func (c *Console) record(m *battle.Match, started time.Time) {
	if c.opts.Journal == nil || m.Moves() == 0 {
		return
	}
	rec := storage.NewMatchRecord(c.opts.Player, m, started, time.Now())
	if _, err := c.opts.Journal.SaveMatch(rec); err != nil {
		c.logger.Warn("cannot save match", "err", err)
		return
	}
	c.logger.Debug("match saved", "id", rec.MatchID, "winner", rec.Winner, "reason", rec.EndReason)
}

func (c *Console) printBoards(m *battle.Match) {
	fmt.Fprintln(c.out, RenderBoard("Your board:", m.Combatant(battle.Side1).Fleet()))
	fmt.Fprintln(c.out, RenderBoard("Computer board:", m.Combatant(battle.Side2).Fleet()))
}

// RenderBoard returns a titled plain-text picture of b.
func RenderBoard(title string, b *battle.Board) string {
	width := core.Max(utf8.RuneCountInString(title), battle.BoardWidth(b.Size()))
	screen := core.NewScreen(boardIndent+width, battle.BoardHeight(b.Size())+2)
	screen.DrawText(boardIndent, 0, title)
	battle.DrawBoard(screen, boardIndent, 1, b)
	return screen.String()
}

func (c *Console) greet() {
	r := c.opts.Rules
	var sb strings.Builder
	line := strings.Repeat("*", 72)

	sb.WriteString(line + "\n")
	sb.WriteString(center("BATTLESHIP", len(line)) + "\n")
	sb.WriteString(line + "\n")
	sb.WriteString(center("RULES", len(line)) + "\n")
	fmt.Fprintf(&sb, " 1) Each board is %d x %d cells.\n", r.Size, r.Size)
	sb.WriteString(" 2) Ships are placed on both boards at random.\n")
	sb.WriteString(" 3) Ships never touch, not even diagonally.\n")
	sb.WriteString(" 4) Ships per player:\n")
	for _, class := range r.Fleet {
		fmt.Fprintf(&sb, "    - %s (%d %s) - %d\n", className(class.Length), class.Length, plural(class.Length, "cell"), class.Count)
	}
	sb.WriteString(" 5) The turn passes to the opponent after a miss.\n")
	fmt.Fprintf(&sb, " 6) A sunk ship is outlined with '%c' automatically.\n", battle.GlyphContour)
	sb.WriteString(" 7) Enter coordinates as: row col\n")
	sb.WriteString(line + "\n")

	fmt.Fprintln(c.out, sb.String())
}

func className(length int) string {
	switch length {
	case 1:
		return "boats"
	case 2:
		return "cruisers"
	case 3:
		return "battleships"
	default:
		return "ships"
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func center(s string, width int) string {
	return strings.Repeat(" ", core.Max(0, (width-len(s))/2)) + s
}
