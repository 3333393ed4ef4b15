package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

const maxHistory = 100 // Max matches to load

// HistoryModel is the Bubble Tea model for the match history screen.
type HistoryModel struct {
	journal  Journal
	player   string
	matches  []storage.MatchRecord
	summary  storage.Summary
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	now      func() time.Time
	quitting bool
	back     bool
}

// NewHistoryModel creates a history screen for player's matches.
func NewHistoryModel(journal Journal, player string, width, height int) HistoryModel {
	m := HistoryModel{
		journal: journal,
		player:  player,
		help:    help.New(),
		keys:    DefaultHistoryKeyMap(),
		width:   width,
		height:  height,
		now:     time.Now,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with the history columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Result", Width: 10},
		{Title: "Board", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Accuracy", Width: 9},
		{Title: "Time", Width: 8},
	}

	// Leave room for title, summary, help
	height := core.Clamp(m.height-10, 3, maxHistory)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads matches and the summary from the journal.
func (m *HistoryModel) load() {
	m.matches = nil
	m.summary = storage.Summary{}
	if m.journal == nil {
		m.updateTableRows()
		return
	}

	matches, err := m.journal.RecentMatches(m.player, maxHistory)
	if err != nil {
		m.loadErr = err
	} else {
		m.matches = matches
	}
	if sum, err := m.journal.Summary(m.player); err == nil {
		m.summary = sum
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current matches.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.matches))
	for i, rec := range m.matches {
		rows[i] = HistoryRow(rec, m.now())
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// HistoryRow formats one match for display relative to now.
func HistoryRow(rec storage.MatchRecord, now time.Time) table.Row {
	return table.Row{
		humanize.RelTime(rec.CreatedAt, now, "ago", "from now"),
		ResultLabel(rec),
		fmt.Sprintf("%dx%d", rec.BoardSize, rec.BoardSize),
		humanize.Comma(int64(rec.Moves)),
		fmt.Sprintf("%.0f%%", rec.Accuracy()*100),
		(time.Duration(rec.DurationSec) * time.Second).String(),
	}
}

// ResultLabel describes how a match ended for the human.
func ResultLabel(rec storage.MatchRecord) string {
	switch {
	case rec.EndReason == storage.EndAbandoned:
		return "abandoned"
	case rec.Winner == storage.WinnerHuman:
		return "won"
	default:
		return "lost"
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "MATCH HISTORY"
	if m.player != "" {
		title += " - " + m.player
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(SummaryLine(m.summary), m.width))
	b.WriteString("\n\n")

	var content string
	switch {
	case m.loadErr != nil:
		content = errorStyle.Render(m.loadErr.Error())
	case len(m.matches) == 0:
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No matches recorded yet.\nFinish a game to see it here!")
	default:
		content = m.table.View()
	}
	b.WriteString(centerText(panelStyle.Render(content), m.width))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// SummaryLine renders the win/loss record.
func SummaryLine(s storage.Summary) string {
	line := fmt.Sprintf("Played %d  |  Won %d  |  Lost %d  |  Abandoned %d", s.Played, s.Won, s.Lost, s.Abandoned)
	if !s.LastPlay.IsZero() {
		line += "  |  Last game " + humanize.Time(s.LastPlay)
	}
	return line
}

// BackToMenu returns true if user wants to go back to menu.
func (m HistoryModel) BackToMenu() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}
