package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-battleship/internal/battle"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

func sendKey(t *testing.T, m tea.Model, msg tea.KeyMsg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func newTestSession(journal Journal) SessionModel {
	return NewSessionModel(Options{
		Config:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 5},
		Rules:   battle.DefaultRules(),
		Player:  "alice",
		Journal: journal,
	})
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(nil)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.active != screenGame {
		t.Fatalf("active = %v, want game", m.active)
	}
	first := m.game.Match()

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.active != screenMenu {
		t.Fatalf("active = %v, want menu", m.active)
	}

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.active != screenGame {
		t.Fatalf("active = %v, want game", m.active)
	}
	if m.game.Match() == first {
		t.Error("second game reused the first match")
	}
}

func TestSessionGamesDifferWithFixedSeed(t *testing.T) {
	m := newTestSession(nil)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	first := m.game.Match().Combatant(battle.Side1).Fleet().Ships()
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	second := m.game.Match().Combatant(battle.Side1).Fleet().Ships()

	same := len(first) == len(second)
	for i := 0; same && i < len(first); i++ {
		same = first[i].Bow() == second[i].Bow() && first[i].Orientation() == second[i].Orientation()
	}
	if same {
		t.Error("consecutive games in one session dealt the same fleet")
	}
}

func TestSessionHistory(t *testing.T) {
	journal := &memJournal{}
	journal.SaveMatch(&storage.MatchRecord{Player: "alice", Winner: storage.WinnerHuman, EndReason: storage.EndCompleted, BoardSize: 6})
	journal.SaveMatch(&storage.MatchRecord{Player: "bob", Winner: storage.WinnerComputer, EndReason: storage.EndCompleted, BoardSize: 6})

	m := newTestSession(journal)
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.active != screenHistory {
		t.Fatalf("active = %v, want history", m.active)
	}
	if len(m.history.matches) != 1 || m.history.summary.Won != 1 {
		t.Errorf("history = %+v, summary = %+v", m.history.matches, m.history.summary)
	}
	if !strings.Contains(m.View(), "MATCH HISTORY - alice") {
		t.Error("history title missing")
	}

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.active != screenMenu {
		t.Errorf("active = %v, want menu", m.active)
	}
}

func TestSessionQuit(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
	}{
		{"menu q", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("q")}}},
		{"menu entry", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}},
		{"in game", []tea.KeyMsg{{Type: tea.KeyEnter}, {Type: tea.KeyCtrlC}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestSession(nil)
			for _, k := range tt.keys {
				m = sendKey(t, m, k)
			}
			if !m.quitting {
				t.Error("session not quitting")
			}
			if m.View() != "" {
				t.Error("quitting session still renders")
			}
		})
	}
}

func TestHistoryRow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := storage.MatchRecord{
		Winner:      storage.WinnerHuman,
		EndReason:   storage.EndCompleted,
		BoardSize:   6,
		Moves:       1200,
		HumanShots:  20,
		HumanHits:   11,
		DurationSec: 95,
		CreatedAt:   now.Add(-3 * time.Hour),
	}

	got := HistoryRow(rec, now)
	want := []string{"3 hours ago", "won", "6x6", "1,200", "55%", "1m35s"}
	if len(got) != len(want) {
		t.Fatalf("row has %d columns, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResultLabel(t *testing.T) {
	tests := []struct {
		rec  storage.MatchRecord
		want string
	}{
		{storage.MatchRecord{EndReason: storage.EndCompleted, Winner: storage.WinnerHuman}, "won"},
		{storage.MatchRecord{EndReason: storage.EndCompleted, Winner: storage.WinnerComputer}, "lost"},
		{storage.MatchRecord{EndReason: storage.EndAbandoned}, "abandoned"},
	}
	for _, tt := range tests {
		if got := ResultLabel(tt.rec); got != tt.want {
			t.Errorf("ResultLabel(%+v) = %q, want %q", tt.rec, got, tt.want)
		}
	}
}

func TestSummaryLine(t *testing.T) {
	got := SummaryLine(storage.Summary{Played: 4, Won: 2, Lost: 1, Abandoned: 1})
	if got != "Played 4  |  Won 2  |  Lost 1  |  Abandoned 1" {
		t.Errorf("SummaryLine() = %q", got)
	}
}

func TestRenderScreenKeepsLayout(t *testing.T) {
	scr := core.NewScreen(12, 3)
	scr.DrawTextColor(0, 0, "X-T", core.ColorBrightRed)
	scr.DrawText(4, 1, "O O")

	lines := strings.Split(RenderScreen(scr), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d width = %d, want 12", i, w)
		}
	}
}
