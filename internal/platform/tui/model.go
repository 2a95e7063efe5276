package tui

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/storage"
)

// maxFrameElapsed caps the time handed to one tick after a stall.
const maxFrameElapsed = 250 * time.Millisecond

// boardTimeout bounds the flush and query behind the game-over overlay.
const boardTimeout = 3 * time.Second

// sessionSeq numbers game models for tick routing.
var sessionSeq atomic.Uint64

// Deps are the collaborators shared by the terminal models.
// Every field except Runtime and Session may be nil.
type Deps struct {
	Store    storage.Results
	Recorder *storage.Recorder
	Audio    defender.AudioSink
	Runtime  core.RuntimeConfig
	Session  defender.SessionConfig
	Logger   *log.Logger
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}

// boardMsg carries the high scores loaded after a game over.
type boardMsg struct {
	entries []storage.ResultEntry
	err     error
}

// GameModel is the Bubble Tea model for one defender session.
type GameModel struct {
	id         uint64
	game       *defender.Game
	deps       Deps
	screen     *core.Screen
	keyMapper  *KeyMapper
	holds      *HoldTracker
	interval   time.Duration
	lastTick   time.Time
	board      []storage.ResultEntry
	boardAsked bool
	quitting   bool
	backToMenu bool
}

// NewGameModel starts a session with the given player settings.
func NewGameModel(deps Deps, session defender.SessionConfig, width, height int) GameModel {
	cfg := deps.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var opts defender.Options
	if deps.Audio != nil {
		opts.Audio = deps.Audio
	}
	if deps.Recorder != nil {
		opts.Results = deps.Recorder
	}

	game := defender.New(cfg, session, opts)
	deps.logger().Debug("session started",
		"player", game.Session().PlayerName,
		"difficulty", game.Session().DifficultyLabel(),
		"ship", game.Session().Ship,
		"seed", cfg.Seed,
	)

	return GameModel{
		id:        sessionSeq.Add(1),
		game:      game,
		deps:      deps,
		screen:    core.NewScreen(width, height),
		keyMapper: NewKeyMapper(),
		holds:     NewHoldTracker(),
		interval:  cfg.TickInterval(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.interval, m.id)
}

// Update handles messages and advances the session.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Session != m.id {
			return m, nil
		}
		return m.handleTick(msg.Time)

	case boardMsg:
		if msg.err != nil {
			m.deps.logger().Warn("could not load high scores", "err", msg.err)
		}
		m.board = msg.entries
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action.IsMovement():
		for _, ev := range m.holds.Press(action, time.Now()) {
			m.game.HandleInput(ev)
		}

	case action == core.ActionShoot:
		m.game.HandleInput(core.Press(action))

	case action == core.ActionPause:
		for _, ev := range m.holds.ReleaseAll() {
			m.game.HandleInput(ev)
		}
		m.game.HandleInput(core.Press(action))

	case action == core.ActionMenu:
		// Abandoned sessions are not recorded.
		m.game.HandleInput(core.Press(action))
		m.backToMenu = true
		return m, tea.Quit

	case action == core.ActionRestart:
		if m.game.Phase() == defender.StateGameOver {
			m.backToMenu = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick runs one simulation step for the wall time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.game.Phase().Finished() {
		return m, nil
	}

	elapsed := m.interval
	if !m.lastTick.IsZero() {
		elapsed = min(now.Sub(m.lastTick), maxFrameElapsed)
	}
	m.lastTick = now

	for _, ev := range m.holds.Expire(now) {
		m.game.HandleInput(ev)
	}
	result := m.game.Advance(elapsed)

	for _, ev := range m.game.DrainEvents() {
		if ev.Kind == defender.EventLevelUp || ev.Kind == defender.EventSessionEnded {
			m.deps.logger().Debug(ev.Kind.String(), "level", ev.Level, "score", result.State.Score)
		}
	}

	if result.State.GameOver {
		if m.boardAsked {
			return m, nil
		}
		m.boardAsked = true
		return m, loadBoardCmd(m.deps)
	}
	return m, tickCmd(m.interval, m.id)
}

// loadBoardCmd waits for the pending result to be saved and then reads the
// top scores, so the overlay includes the session that just ended.
func loadBoardCmd(deps Deps) tea.Cmd {
	if deps.Store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), boardTimeout)
		defer cancel()

		if deps.Recorder != nil {
			if err := deps.Recorder.Flush(ctx); err != nil {
				return boardMsg{err: err}
			}
		}
		entries, err := deps.Store.TopResults(ctx, boardSize)
		return boardMsg{entries: entries, err: err}
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	DrawSnapshot(m.screen, m.game.Snapshot(), m.board)
	return RenderScreen(m.screen)
}

// Snapshot returns the session state as last advanced.
func (m GameModel) Snapshot() defender.Snapshot {
	return m.game.Snapshot()
}

// IsQuitting returns true if the user asked to leave the program.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user left the session for the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single session with the configured settings and exits.
func Run(deps Deps, width, height int) error {
	model := NewGameModel(deps, deps.Session, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
