package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-defender/internal/games/defender"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScoreboard
)

// SessionModel manages the full flow: setup menu -> game -> menu, with the
// high-score table reachable from the menu. It is the top-level model for
// both the local menu command and SSH sessions.
type SessionModel struct {
	deps       Deps
	settings   defender.SessionConfig // Last chosen settings, restored on return to the menu
	width      int
	height     int
	screen     screenKind
	menu       MenuModel
	gameModel  *GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session model starting at the setup menu.
func NewSessionModel(deps Deps, width, height int) SessionModel {
	return SessionModel{
		deps:     deps,
		settings: deps.Session,
		width:    width,
		height:   height,
		screen:   screenMenu,
		menu:     NewMenuModel(deps.Session, width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.settings = m.menu.Session()
		m.scoreboard = NewScoreboardModel(m.deps.Store, m.width, m.height)
		m.screen = screenScoreboard
		return m, m.scoreboard.Init()

	case m.menu.Started():
		m.settings = m.menu.Session()
		gameModel := NewGameModel(m.deps, m.settings, m.width, m.height)
		m.gameModel = &gameModel
		m.screen = screenGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		return m, m.showMenu()
	}

	return m, cmd
}

// updateScoreboard handles updates when the high-score table is open.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m, m.showMenu()
	}

	return m, cmd
}

// showMenu resets the menu with the last settings and switches to it.
func (m *SessionModel) showMenu() tea.Cmd {
	m.menu = NewMenuModel(m.settings, m.width, m.height)
	m.screen = screenMenu
	return m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case screenScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs the interactive menu, game and scoreboard flow until the
// user quits.
func RunSession(deps Deps, width, height int) error {
	p := tea.NewProgram(
		NewSessionModel(deps, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
