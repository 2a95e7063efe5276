package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-defender/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 96  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of the stats sidebar
	maxScores          = 100 // Max results to load
	loadTimeout        = 5 * time.Second
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Refresh},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoresMsg carries results loaded from the store.
type scoresMsg struct {
	entries []storage.ResultEntry
	stats   storage.Stats
	err     error
}

// ScoreboardModel is the Bubble Tea model for the high-score screen.
type ScoreboardModel struct {
	store       storage.Results
	scores      []storage.ResultEntry
	stats       storage.Stats
	loadErr     error
	loading     bool
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show the stats sidebar
}

// NewScoreboardModel creates a new scoreboard model. Results are loaded by Init.
func NewScoreboardModel(store storage.Results, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		loading:     store != nil,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 5},
		{Title: "Difficulty", Width: 10},
		{Title: "Date", Width: 12},
	}

	// Give spare width to the player column
	tableWidth := m.width - 8
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := tableWidth - used; spare > 0 {
		columns[1].Width += min(spare, 24)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// loadScoresCmd reads the table and aggregate stats off the UI goroutine.
func loadScoresCmd(store storage.Results) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		entries, err := store.TopResults(ctx, maxScores)
		if err != nil {
			return scoresMsg{err: err}
		}
		stats, err := store.Stats(ctx)
		return scoresMsg{entries: entries, stats: stats, err: err}
	}
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		date := "-"
		if !s.AchievedOn.IsZero() {
			date = s.AchievedOn.Local().Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.PlayerName,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			s.Difficulty,
			date,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init loads the results.
func (m ScoreboardModel) Init() tea.Cmd {
	return loadScoresCmd(m.store)
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case scoresMsg:
		m.loading = false
		m.loadErr = msg.err
		m.scores = msg.entries
		m.stats = msg.stats
		m.updateTableRows()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.loading = m.store != nil
			return m, loadScoresCmd(m.store)

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(m.statsLine(), m.width))
		b.WriteString("\n")
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the aggregate stats panel.
func (m ScoreboardModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Games:  %d\n", m.stats.Games)
	fmt.Fprintf(&sb, "Best:   %d\n", m.stats.HighScore)
	fmt.Fprintf(&sb, "Avg:    %.0f\n", m.stats.AvgScore)
	if !m.stats.LastPlayed.IsZero() {
		fmt.Fprintf(&sb, "Last:   %s\n", m.stats.LastPlayed.Local().Format("Jan 02"))
	}
	return sidebarStyle.Render(sb.String())
}

// statsLine is the one-line stats summary used on narrow terminals.
func (m ScoreboardModel) statsLine() string {
	return fmt.Sprintf("Games: %d  Best: %d  Avg: %.0f", m.stats.Games, m.stats.HighScore, m.stats.AvgScore)
}

// renderTableContent renders the table or a status message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("High scores are unavailable.\nThe results store could not be opened.")
	case m.loading:
		return emptyStyle.Render("Loading...")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load high scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// Scores returns the loaded results.
func (m ScoreboardModel) Scores() []storage.ResultEntry {
	return m.scores
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store storage.Results, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
