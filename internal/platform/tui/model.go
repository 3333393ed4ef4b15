package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battleship/internal/battle"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

const (
	boardGap    = 6 // Columns between the two boards
	maxNarrated = 6 // Narration lines kept on screen

	humanTitle    = "Your board"
	computerTitle = "Computer board"
)

// pendingLine holds the one line typed into the coordinate field.
// The model only steps the human side after pushing a line, so
// ReadLine never has to wait.
type pendingLine struct {
	line string
	ok   bool
}

func (p *pendingLine) push(line string) {
	p.line, p.ok = line, true
}

// ReadLine implements battle.LineSource.
func (p *pendingLine) ReadLine() (string, error) {
	if !p.ok {
		return "", io.EOF
	}
	p.ok = false
	return p.line, nil
}

// GameModel is the Bubble Tea model for one human-vs-computer match.
// The field is rebuilt with a fresh fleet on every new game.
type GameModel struct {
	rules    battle.Rules
	config   core.RuntimeConfig
	player   string
	journal  Journal
	logger   *log.Logger
	rng      *rand.Rand
	match    *battle.Match
	dealt    int // Incremented by every deal
	line     *pendingLine
	started  time.Time
	narrated []string
	status   string
	saved    bool

	input    textinput.Model
	help     help.Model
	keys     GameKeyMap
	screen   *core.Screen
	quitting bool
	back     bool
	err      error
}

// NewGameModel creates a battle screen and deals the first match.
func NewGameModel(opts Options) (GameModel, error) {
	opts = opts.withRNG()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Prompt = "Enter coordinates: "
	ti.Placeholder = "row col"
	ti.CharLimit = 16
	ti.Width = 12
	ti.Focus()

	m := GameModel{
		rules:   opts.Rules,
		config:  opts.Config,
		player:  opts.Player,
		journal: opts.Journal,
		logger:  logger,
		rng:     opts.src,
		line:    &pendingLine{},
		input:   ti,
		help:    help.New(),
		keys:    DefaultGameKeyMap(),
	}
	if err := m.deal(); err != nil {
		return GameModel{}, err
	}
	return m, nil
}

// deal generates new fleets and resets the per-match state.
func (m *GameModel) deal() error {
	match, err := battle.NewStandardMatch(m.rules, m.rng, battle.NewHuman(m.line), battle.WithLogger(m.logger))
	if err != nil {
		return err
	}
	m.match = match
	m.dealt++
	m.err = nil
	column := boardColumn(m.rules.Size)
	m.screen = core.NewScreen(2*column+boardGap, boardFrame(m.rules.Size, 0).Bottom())
	m.started = time.Now()
	m.narrated = nil
	m.saved = false
	m.status = "Your turn."
	m.input.Reset()
	return nil
}

// Init starts the cursor blink.
func (m GameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case AIMoveMsg:
		if msg.Deal != m.dealt {
			return m, nil
		}
		return m.handleAIMove()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.finish()
		m.back = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		m.finish()
		if err := m.deal(); err != nil {
			m.err = err
		}
		return m, nil

	case key.Matches(msg, m.keys.Fire):
		return m.fire()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// fire sends the typed line as the human move.
func (m GameModel) fire() (tea.Model, tea.Cmd) {
	if m.match.ActiveSide() != battle.Side1 {
		return m, nil
	}

	m.line.push(m.input.Value())
	m.input.Reset()

	turn, err := m.match.Step()
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.narrate(turn)
	return m, m.afterTurn()
}

// handleAIMove takes one automated shot.
func (m GameModel) handleAIMove() (tea.Model, tea.Cmd) {
	if m.match.ActiveSide() != battle.Side2 {
		return m, nil
	}

	turn, err := m.match.Step()
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.narrate(turn)
	return m, m.afterTurn()
}

// afterTurn schedules the automated side or closes the match.
func (m *GameModel) afterTurn() tea.Cmd {
	switch m.match.State() {
	case battle.StateSide2Turn:
		m.status = "Computer is aiming..."
		return aiMoveCmd(m.dealt, m.config.AIDelay)
	case battle.StateGameOver:
		m.finish()
		if m.match.Winner() == battle.Side1 {
			m.status = "You won!"
		} else {
			m.status = "The computer was stronger this time!"
		}
		return nil
	default:
		m.status = "Your turn."
		return nil
	}
}

// narrate appends a line describing turn.
func (m *GameModel) narrate(t battle.Turn) {
	move := t.Move
	var line string

	switch {
	case move.Failure == battle.FailureParse:
		line = move.Failure.Message()
	case move.Failure != battle.FailureNone:
		line = fmt.Sprintf("%s %d %d: %s", actorVerb(t.Side), move.Target.Row, move.Target.Col, move.Failure.Message())
	case move.Shot.Sunk:
		line = fmt.Sprintf("%s %d %d: Hit! Ship sunk!", actorVerb(t.Side), move.Target.Row, move.Target.Col)
	case move.Shot.Outcome == battle.OutcomeHit:
		line = fmt.Sprintf("%s %d %d: Hit!", actorVerb(t.Side), move.Target.Row, move.Target.Col)
	default:
		line = fmt.Sprintf("%s %d %d: Miss!", actorVerb(t.Side), move.Target.Row, move.Target.Col)
	}

	m.narrated = append(m.narrated, line)
	if len(m.narrated) > maxNarrated {
		m.narrated = m.narrated[len(m.narrated)-maxNarrated:]
	}
}

func actorVerb(side battle.Side) string {
	if side == battle.Side1 {
		return "You fire at"
	}
	return "The computer fires at"
}

// finish records the match once. Untouched matches are not recorded.
func (m *GameModel) finish() {
	if m.saved || m.journal == nil || m.match.Moves() == 0 {
		return
	}
	m.saved = true

	rec := storage.NewMatchRecord(m.player, m.match, m.started, time.Now())
	if _, err := m.journal.SaveMatch(rec); err != nil {
		m.logger.Warn("cannot save match", "err", err)
		return
	}
	m.logger.Debug("match saved", "id", rec.MatchID, "reason", rec.EndReason)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("B A T T L E S H I P"))
	b.WriteString("\n\n")
	b.WriteString(RenderScreen(m.renderBoards()))
	b.WriteString("\n\n")

	if len(m.narrated) > 0 {
		b.WriteString(panelStyle.Render(strings.Join(m.narrated, "\n")))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if !m.match.Over() {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(dimStyle.Render("ctrl+n: play again  |  esc: menu"))
	}
	b.WriteString("\n\n")

	if m.help.ShowAll {
		b.WriteString(dimStyle.Render(m.rulesText()))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// boardFrame is the box around a board of size whose left edge is at x.
// The row above the box holds the title.
func boardFrame(size, x int) core.Rect {
	return core.NewRect(x, 1, battle.BoardWidth(size)+2, battle.BoardHeight(size)+2)
}

// boardColumn is the width one board takes on screen, title included.
func boardColumn(size int) int {
	return core.Max(boardFrame(size, 0).W, len(computerTitle))
}

// renderBoards draws both boards side by side into the screen buffer.
func (m GameModel) renderBoards() *core.Screen {
	m.screen.Clear()

	left := boardFrame(m.rules.Size, 0)
	right := boardFrame(m.rules.Size, boardColumn(m.rules.Size)+boardGap)
	m.drawFramed(left, humanTitle, m.match.Combatant(battle.Side1).Fleet())
	m.drawFramed(right, computerTitle, m.match.Combatant(battle.Side2).Fleet())
	return m.screen
}

func (m GameModel) drawFramed(frame core.Rect, title string, b *battle.Board) {
	m.screen.DrawTextColor(frame.X, 0, title, core.ColorBrightWhite)
	m.screen.DrawBox(frame)
	inner := frame.Inner()
	battle.DrawBoard(m.screen, inner.X, inner.Y, b)
}

// rulesText is the condensed rules panel.
func (m GameModel) rulesText() string {
	var parts []string
	for _, class := range m.rules.Fleet {
		parts = append(parts, fmt.Sprintf("%dx%d", class.Count, class.Length))
	}
	return fmt.Sprintf(
		"Board %dx%d, fleet %s. Ships never touch. A hit keeps the turn, a miss passes it.\n"+
			"Sunk ships are outlined with '%c'. Type coordinates as: row col",
		m.rules.Size, m.rules.Size, strings.Join(parts, ", "), battle.GlyphContour,
	)
}

// Match returns the match in progress.
func (m GameModel) Match() *battle.Match {
	return m.match
}

// Narration returns the visible narration lines, oldest first.
func (m GameModel) Narration() []string {
	return m.narrated
}

// Status returns the status line.
func (m GameModel) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.back
}
