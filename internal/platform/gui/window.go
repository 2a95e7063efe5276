// Package gui runs Space Defender in a native 800x600 window using Ebitengine.
// Unlike the terminal, a window reports real key releases, so held movement
// keys map one-to-one onto press and release events.
package gui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/storage"
)

const (
	boardSize    = 5
	boardTimeout = 3 * time.Second
	windowTitle  = "Space Defender"
)

// Options wires the collaborators of the window. Store, Recorder, Audio and
// Logger may be nil.
type Options struct {
	Store    storage.Results
	Recorder *storage.Recorder
	Audio    defender.AudioSink
	Runtime  core.RuntimeConfig
	Session  defender.SessionConfig
	Logger   *log.Logger
}

// Window implements ebiten.Game around one defender session at a time.
// Update and Draw run on the Ebitengine goroutine; mu guards what the
// high-score loader touches.
type Window struct {
	opts   Options
	game   *defender.Game
	input  *inputState
	stars  []star
	clock  frameClock
	logger *log.Logger

	mu         sync.Mutex
	board      []storage.ResultEntry
	boardAsked bool
}

// NewWindow creates a window and starts the first session.
func NewWindow(opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	w := &Window{
		opts:   opts,
		input:  newInputState(ebiten.IsKeyPressed),
		stars:  newStarfield(opts.Runtime.FieldW, opts.Runtime.FieldH),
		clock:  frameClock{interval: opts.Runtime.TickInterval()},
		logger: logger,
	}
	w.newSession()
	return w
}

// newSession replaces the current session with a fresh one.
func (w *Window) newSession() {
	cfg := w.opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var sinks defender.Options
	if w.opts.Audio != nil {
		sinks.Audio = w.opts.Audio
	}
	if w.opts.Recorder != nil {
		sinks.Results = w.opts.Recorder
	}
	game := defender.New(cfg, w.opts.Session, sinks)
	w.input.reset()
	w.clock.reset()

	w.mu.Lock()
	w.game = game
	w.board = nil
	w.boardAsked = false
	w.mu.Unlock()

	w.logger.Debug("session started", "player", game.Session().PlayerName, "seed", cfg.Seed)
}

// Update applies input and advances the session by the wall time since the
// previous frame.
func (w *Window) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		// Abandoned sessions are not recorded.
		w.game.HandleInput(core.Press(core.ActionMenu))
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR) && w.game.Phase() == defender.StateGameOver:
		w.newSession()
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		w.game.HandleInput(core.Press(core.ActionPause))
	}

	for _, ev := range w.input.poll() {
		w.game.HandleInput(ev)
	}

	res := w.game.Advance(w.clock.step(time.Now()))
	w.game.DrainEvents()

	if res.State.GameOver {
		w.requestBoard()
	}
	return nil
}

// requestBoard loads the high scores once per finished session.
func (w *Window) requestBoard() {
	w.mu.Lock()
	if w.boardAsked || w.opts.Store == nil {
		w.mu.Unlock()
		return
	}
	w.boardAsked = true
	w.mu.Unlock()

	game := w.game
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), boardTimeout)
		defer cancel()

		if w.opts.Recorder != nil {
			if err := w.opts.Recorder.Flush(ctx); err != nil {
				w.logger.Warn("could not flush results", "err", err)
			}
		}
		entries, err := w.opts.Store.TopResults(ctx, boardSize)
		if err != nil {
			w.logger.Warn("could not load high scores", "err", err)
			return
		}

		w.mu.Lock()
		defer w.mu.Unlock()
		if w.game == game {
			w.board = entries
		}
	}()
}

// Draw paints the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	screen.Fill(color.RGBA{5, 5, 20, 255})

	drawStars(screen, w.stars, snap.Background, snap.FieldH)
	for _, e := range snap.Enemies {
		drawEnemy(screen, e)
	}
	for _, s := range snap.Shots {
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), rgba(core.ColorShot), false)
	}
	if !snap.Ship.Blink {
		drawShip(screen, snap.Ship)
	}

	drawHUD(screen, snap)

	switch {
	case snap.State == defender.StateGameOver:
		w.mu.Lock()
		board := w.board
		w.mu.Unlock()
		drawGameOver(screen, snap, board)
	case snap.State == defender.StatePaused:
		drawPanel(screen, snap, "PAUSED", "Press P to resume")
	case snap.InTransition():
		drawPanel(screen, snap, bannerTitle(snap), "Get ready...")
	}
}

// Layout fixes the logical screen to the playfield size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.opts.Runtime.FieldW, w.opts.Runtime.FieldH
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Runtime.FieldW <= 0 || opts.Runtime.FieldH <= 0 {
		opts.Runtime.FieldW, opts.Runtime.FieldH = core.DefaultFieldW, core.DefaultFieldH
	}
	w := NewWindow(opts)

	ebiten.SetWindowSize(opts.Runtime.FieldW, opts.Runtime.FieldH)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(w.opts.Runtime.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}

// debugText prints text at (x, y) with the built-in debug font.
func debugText(screen *ebiten.Image, text string, x, y int) {
	ebitenutil.DebugPrintAt(screen, text, x, y)
}
