package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuItem represents a selectable entry in the main menu.
type MenuItem struct {
	ID    string
	Title string
}

// Menu entries.
const (
	MenuPlay    = "play"
	MenuHistory = "history"
	MenuQuit    = "quit"
)

var menuItems = []MenuItem{
	{ID: MenuPlay, Title: "New game"},
	{ID: MenuHistory, Title: "Match history"},
	{ID: MenuQuit, Title: "Quit"},
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	player   string
	quitting bool
	selected *MenuItem // Set when user picks an entry
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int, player string) MenuModel {
	return MenuModel{
		items:  menuItems,
		width:  width,
		height: height,
		player: player,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.ID == MenuQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &selected
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  B A T T L E S H I P  "), m.width))
	b.WriteString("\n\n")

	subtitle := "Sink the hidden fleet before it sinks yours"
	if m.player != "" {
		subtitle = "Welcome, " + m.player + ". " + subtitle
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
