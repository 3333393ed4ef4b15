package tui

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-battleship/internal/battle"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

type memJournal struct {
	records []storage.MatchRecord
}

func (j *memJournal) SaveMatch(rec *storage.MatchRecord) (int64, error) {
	j.records = append(j.records, *rec)
	return int64(len(j.records)), nil
}

func (j *memJournal) RecentMatches(player string, limit int) ([]storage.MatchRecord, error) {
	var out []storage.MatchRecord
	for i := len(j.records) - 1; i >= 0 && len(out) < limit; i-- {
		if player == "" || j.records[i].Player == player {
			out = append(out, j.records[i])
		}
	}
	return out, nil
}

func (j *memJournal) Summary(player string) (storage.Summary, error) {
	var s storage.Summary
	for _, rec := range j.records {
		if player != "" && rec.Player != player {
			continue
		}
		s.Played++
		switch {
		case rec.EndReason == storage.EndAbandoned:
			s.Abandoned++
		case rec.Winner == storage.WinnerHuman:
			s.Won++
		default:
			s.Lost++
		}
	}
	return s, nil
}

func newTestGame(t *testing.T, journal Journal) GameModel {
	t.Helper()
	m, err := NewGameModel(Options{
		Config:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 11},
		Rules:   battle.DefaultRules(),
		Player:  "tester",
		Journal: journal,
	})
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m
}

// findCell returns the first cell of the computer board in state st.
func findCell(t *testing.T, m GameModel, st battle.CellState) battle.Coordinate {
	t.Helper()
	b := m.Match().Combatant(battle.Side2).Fleet()
	for r := 1; r <= b.Size(); r++ {
		for c := 1; c <= b.Size(); c++ {
			if got, _ := b.Cell(battle.C(r, c)); got == st {
				return battle.C(r, c)
			}
		}
	}
	t.Fatalf("no %v cell on the computer board", st)
	return battle.Coordinate{}
}

func enter(t *testing.T, m GameModel, text string) (GameModel, tea.Cmd) {
	t.Helper()
	m.input.SetValue(text)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func lastNarration(m GameModel) string {
	n := m.Narration()
	if len(n) == 0 {
		return ""
	}
	return n[len(n)-1]
}

func TestGameModelFailuresKeepTurn(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"garbage", "abc", "Invalid coordinate format!"},
		{"one number", "3", "Invalid coordinate format!"},
		{"off board", "0 0", "Coordinates are outside the board!"},
		{"too far", "7 1", "Coordinates are outside the board!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestGame(t, nil)
			m, cmd := enter(t, m, tt.input)

			if cmd != nil {
				t.Error("failed move scheduled a command")
			}
			if got := lastNarration(m); !strings.Contains(got, tt.want) {
				t.Errorf("narration = %q, want %q", got, tt.want)
			}
			if m.Match().ActiveSide() != battle.Side1 {
				t.Error("turn passed after a failed move")
			}
			if m.input.Value() != "" {
				t.Error("input not cleared")
			}
		})
	}
}

func TestGameModelHitKeepsTurn(t *testing.T) {
	m := newTestGame(t, nil)
	target := findCell(t, m, battle.CellOccupied)

	m, cmd := enter(t, m, typed(target))
	if cmd != nil {
		t.Error("hit scheduled the computer")
	}
	if !strings.Contains(lastNarration(m), "Hit!") {
		t.Errorf("narration = %q, want a hit", lastNarration(m))
	}
	if m.Match().ActiveSide() != battle.Side1 {
		t.Error("turn passed after a hit")
	}
}

func TestGameModelMissHandsOver(t *testing.T) {
	m := newTestGame(t, nil)
	target := findCell(t, m, battle.CellEmpty)

	m, cmd := enter(t, m, typed(target))
	if !strings.Contains(lastNarration(m), "Miss!") {
		t.Fatalf("narration = %q, want a miss", lastNarration(m))
	}
	if m.Match().ActiveSide() != battle.Side2 {
		t.Fatal("turn did not pass after a miss")
	}
	if cmd == nil {
		t.Fatal("no computer move scheduled")
	}

	// Typing while the computer aims is ignored.
	before := m.Match().Moves()
	m, _ = enter(t, m, "1 1")
	if m.Match().Moves() != before {
		t.Error("human moved during the computer turn")
	}

	for m.Match().ActiveSide() == battle.Side2 {
		msg := cmd()
		if _, ok := msg.(AIMoveMsg); !ok {
			t.Fatalf("command produced %T, want AIMoveMsg", msg)
		}
		next, nextCmd := m.Update(msg)
		m = next.(GameModel)
		cmd = nextCmd
		if !strings.HasPrefix(lastNarration(m), "The computer fires at") {
			t.Fatalf("narration = %q", lastNarration(m))
		}
	}
}

func TestGameModelPlaysToTheEnd(t *testing.T) {
	journal := &memJournal{}
	m := newTestGame(t, journal)
	size := m.rules.Size

	var cmd tea.Cmd
	for r := 1; r <= size && !m.Match().Over(); r++ {
		for c := 1; c <= size && !m.Match().Over(); c++ {
			m, cmd = enter(t, m, typed(battle.C(r, c)))
			for cmd != nil && m.Match().ActiveSide() == battle.Side2 {
				next, nextCmd := m.Update(cmd())
				m, cmd = next.(GameModel), nextCmd
			}
		}
	}

	if !m.Match().Over() {
		t.Fatal("match not over after sweeping the board")
	}
	if s := m.Status(); s != "You won!" && s != "The computer was stronger this time!" {
		t.Errorf("status = %q", s)
	}
	if len(journal.records) != 1 || journal.records[0].EndReason != storage.EndCompleted {
		t.Fatalf("journal = %+v, want one completed match", journal.records)
	}

	// Leaving after the end does not record the match twice.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	if !m.BackToMenu() {
		t.Error("esc did not go back")
	}
	if len(journal.records) != 1 {
		t.Errorf("match recorded %d times", len(journal.records))
	}
}

func TestGameModelNewGameRecordsAbandoned(t *testing.T) {
	journal := &memJournal{}
	m := newTestGame(t, journal)

	// A fresh match is not recorded when left untouched.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = next.(GameModel)
	if len(journal.records) != 0 {
		t.Fatalf("untouched match recorded: %+v", journal.records)
	}

	m, _ = enter(t, m, "0 0")
	first := m.Match()
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = next.(GameModel)

	if m.Match() == first {
		t.Error("ctrl+n did not deal a new match")
	}
	if len(m.Narration()) != 0 {
		t.Error("narration not reset")
	}
	if len(journal.records) != 1 || journal.records[0].EndReason != storage.EndAbandoned {
		t.Errorf("journal = %+v, want one abandoned match", journal.records)
	}
	if journal.records[0].Player != "tester" {
		t.Errorf("player = %q", journal.records[0].Player)
	}
}

func TestGameModelDropsTicksFromEarlierDeal(t *testing.T) {
	m := newTestGame(t, nil)
	m, stale := enter(t, m, typed(findCell(t, m, battle.CellEmpty)))
	if stale == nil {
		t.Fatal("no computer move scheduled")
	}
	staleMsg := stale()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = next.(GameModel)
	m, fresh := enter(t, m, typed(findCell(t, m, battle.CellEmpty)))
	if m.Match().ActiveSide() != battle.Side2 || fresh == nil {
		t.Fatal("new match did not hand over to the computer")
	}

	moves := m.Match().Moves()
	next, cmd := m.Update(staleMsg)
	m = next.(GameModel)
	if m.Match().Moves() != moves || cmd != nil {
		t.Error("tick from the previous match moved the computer")
	}

	next, _ = m.Update(fresh())
	m = next.(GameModel)
	if m.Match().Moves() != moves+1 {
		t.Errorf("moves = %d, want %d", m.Match().Moves(), moves+1)
	}
}

func TestGameModelClearsError(t *testing.T) {
	m := newTestGame(t, nil)
	m.err = errors.New("input closed")

	m, _ = enter(t, m, "0 0")
	if m.err != nil {
		t.Errorf("error kept after a move: %v", m.err)
	}

	m.err = errors.New("input closed")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = next.(GameModel)
	if m.err != nil {
		t.Errorf("error kept after a new game: %v", m.err)
	}
	if strings.Contains(m.View(), "input closed") {
		t.Error("view still shows the old error")
	}
}

func TestGameModelSmallBoardKeepsTitles(t *testing.T) {
	m, err := NewGameModel(Options{
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3},
		Rules:  battle.Rules{Size: 2, Fleet: battle.Fleet{{Length: 1, Count: 1}}, MaxAttempts: 100},
	})
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}

	top := m.renderBoards().Row(0)
	for _, want := range []string{"Your board", "Computer board"} {
		if !strings.Contains(top, want) {
			t.Errorf("title row %q missing %q", top, want)
		}
	}
}

func TestGameModelViewHidesComputerShips(t *testing.T) {
	m := newTestGame(t, nil)
	scr := m.renderBoards()

	split := boardFrame(m.rules.Size, 0).Right()
	occupied := 0
	for y := 0; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			if scr.Get(x, y) != battle.GlyphOccupied {
				continue
			}
			if x >= split {
				t.Fatalf("computer ship visible at (%d, %d)", x, y)
			}
			occupied++
		}
	}
	if want := m.rules.Fleet.Cells(); occupied != want {
		t.Errorf("visible own ship cells = %d, want %d", occupied, want)
	}

	view := m.View()
	for _, want := range []string{"Your board", "Computer board", "Your turn."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPendingLine(t *testing.T) {
	var p pendingLine
	if _, err := p.ReadLine(); err == nil {
		t.Error("empty pending line returned no error")
	}
	p.push("2 3")
	if got, err := p.ReadLine(); err != nil || got != "2 3" {
		t.Errorf("ReadLine() = %q, %v", got, err)
	}
	if _, err := p.ReadLine(); err == nil {
		t.Error("line was delivered twice")
	}
}

// typed is the text a player enters for c.
func typed(c battle.Coordinate) string {
	return strconv.Itoa(c.Row) + " " + strconv.Itoa(c.Col)
}
