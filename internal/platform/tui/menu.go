package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-defender/internal/games/defender"
)

// Menu rows in cursor order.
const (
	rowName = iota
	rowDifficulty
	rowShip
	rowStart
	rowCount
)

// difficultyOption is one entry of the difficulty selector.
type difficultyOption struct {
	Value int
	Label string
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the session setup menu.
type MenuModel struct {
	name           textinput.Model
	difficulties   []difficultyOption
	difficulty     int // Index into difficulties
	ships          []defender.ShipClass
	ship           int // Index into ships
	cursor         int
	width          int
	height         int
	keyMapper      *KeyMapper
	quitting       bool
	started        bool
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a setup menu preloaded with initial.
func NewMenuModel(initial defender.SessionConfig, width, height int) MenuModel {
	initial = initial.Normalize()

	ti := textinput.New()
	ti.Placeholder = defender.DefaultPlayerName
	ti.CharLimit = defender.MaxNameLength
	ti.Width = 24
	ti.Prompt = ""
	ti.SetValue(initial.PlayerName)
	ti.Focus()

	difficulties := []difficultyOption{
		{defender.DifficultyEasy, "Easy"},
		{defender.DifficultyNormal, "Normal"},
		{defender.DifficultyHard, "Hard"},
		{defender.DifficultyExtreme, "Extreme"},
	}
	diffIdx := -1
	for i, d := range difficulties {
		if d.Value == initial.Difficulty {
			diffIdx = i
		}
	}
	if diffIdx < 0 {
		// Keep a custom value from the config selectable.
		difficulties = append(difficulties, difficultyOption{
			initial.Difficulty, fmt.Sprintf("Custom (%d)", initial.Difficulty),
		})
		diffIdx = len(difficulties) - 1
	}

	ships := defender.ShipClasses()
	shipIdx := 0
	for i, s := range ships {
		if s == initial.Ship {
			shipIdx = i
		}
	}

	return MenuModel{
		name:         ti,
		difficulties: difficulties,
		difficulty:   diffIdx,
		ships:        ships,
		ship:         shipIdx,
		width:        width,
		height:       height,
		keyMapper:    NewKeyMapper(),
	}
}

// Init starts the cursor blink of the name field.
func (m MenuModel) Init() tea.Cmd {
	return textinput.Blink
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

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.moveCursor(-1)
		return m, nil

	case MenuActionDown:
		m.moveCursor(1)
		return m, nil

	case MenuActionLeft:
		if m.cursor != rowName {
			m.cycle(-1)
			return m, nil
		}

	case MenuActionRight:
		if m.cursor != rowName {
			m.cycle(1)
			return m, nil
		}

	case MenuActionSelect:
		if m.cursor == rowName {
			m.moveCursor(1)
			return m, nil
		}
		m.started = true
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	if m.cursor != rowName {
		if msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// moveCursor moves between rows, wrapping at both ends.
func (m *MenuModel) moveCursor(delta int) {
	m.cursor = (m.cursor + delta + rowCount) % rowCount
	if m.cursor == rowName {
		m.name.Focus()
	} else {
		m.name.Blur()
	}
}

// cycle changes the option on the current row.
func (m *MenuModel) cycle(delta int) {
	switch m.cursor {
	case rowDifficulty:
		n := len(m.difficulties)
		m.difficulty = (m.difficulty + delta + n) % n
	case rowShip:
		n := len(m.ships)
		m.ship = (m.ship + delta + n) % n
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S P A C E   D E F E N D E R"), m.width))
	b.WriteString("\n\n")

	ship := m.ships[m.ship]
	rows := []string{
		fmt.Sprintf("Pilot:       %s", m.name.View()),
		fmt.Sprintf("Difficulty:  < %s >", m.difficulties[m.difficulty].Label),
		fmt.Sprintf("Ship:        < %s >", ship),
		"[ Start ]",
	}

	for i, row := range rows {
		cursor := "  "
		line := row
		if i == m.cursor {
			cursor = "> "
			line = menuActiveStyle.Render(row)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	info := fmt.Sprintf("%s: speed %d, fires every %v", ship, ship.Speed(), ship.Cooldown())
	b.WriteString(centerText(menuHintStyle.Render(info), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Start  |  Tab: Scores  |  Esc: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Session returns the chosen settings, normalized.
func (m MenuModel) Session() defender.SessionConfig {
	return defender.SessionConfig{
		PlayerName: m.name.Value(),
		Difficulty: m.difficulties[m.difficulty].Value,
		Ship:       m.ships[m.ship],
	}.Normalize()
}

// Started returns true if the user asked to start a session.
func (m MenuModel) Started() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
