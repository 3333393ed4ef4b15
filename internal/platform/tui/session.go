package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// screen identifies the active view of a session.
type screen int

const (
	screenMenu screen = iota
	screenGame
	screenHistory
)

// SessionModel manages the full session flow: menu -> game or history -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	opts     Options
	active   screen
	menu     MenuModel
	game     GameModel
	history  HistoryModel
	quitting bool
	err      error
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts Options) SessionModel {
	opts = opts.withRNG()
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Config.ScreenW, opts.Config.ScreenH, opts.Player),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Config.ScreenW = wsm.Width
		m.opts.Config.ScreenH = wsm.Height
	}

	switch m.active {
	case screenGame:
		return m.updateGame(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.ID {
	case MenuPlay:
		game, err := NewGameModel(m.opts)
		if err != nil {
			m.err = err
			m.resetMenu()
			return m, nil
		}
		m.game = game
		m.active = screenGame
		return m, m.game.Init()

	case MenuHistory:
		m.history = NewHistoryModel(m.opts.Journal, m.opts.Player, m.opts.Config.ScreenW, m.opts.Config.ScreenH)
		m.active = screenHistory
		return m, m.history.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.resetMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateHistory handles updates when showing the match history.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.BackToMenu() {
		m.resetMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m *SessionModel) resetMenu() {
	m.active = screenMenu
	m.menu = NewMenuModel(m.opts.Config.ScreenW, m.opts.Config.ScreenH, m.opts.Player)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case screenGame:
		return m.game.View()
	case screenHistory:
		return m.history.View()
	}

	view := m.menu.View()
	if m.err != nil {
		view += "\n" + centerText(errorStyle.Render(m.err.Error()), m.opts.Config.ScreenW)
	}
	return view
}

// Run starts a local Bubble Tea session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
