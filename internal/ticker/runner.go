// Package ticker drives a defender session in real time from a background
// goroutine. Every call into the session is serialized behind one mutex.
package ticker

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
)

// Controller supplies input for each tick, e.g. defender.Autopilot.
type Controller interface {
	Decide(snap defender.Snapshot) []core.InputEvent
}

// Options configures a Runner. Zero values are usable.
type Options struct {
	Interval   time.Duration // Tick period; defaults to the game's nominal interval
	Controller Controller    // Optional scripted input
	Logger     *log.Logger
	// OnTick is called after every tick with a fresh snapshot, outside the lock.
	OnTick func(defender.Snapshot)
}

// Runner owns a session for its lifetime.
type Runner struct {
	mu   sync.Mutex
	game *defender.Game

	interval   time.Duration
	controller Controller
	onTick     func(defender.Snapshot)
	logger     *log.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
	done   chan struct{}
}

// New wraps a session. The runner does nothing until Start or Step is called.
func New(game *defender.Game, opts Options) *Runner {
	if opts.Interval <= 0 {
		opts.Interval = game.Config().TickInterval()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Runner{
		game:       game,
		interval:   opts.Interval,
		controller: opts.Controller,
		onTick:     opts.OnTick,
		logger:     opts.Logger,
		done:       make(chan struct{}),
	}
}

// Start launches the tick goroutine. It stops on its own once the session
// finishes, when ctx is cancelled, or on Stop.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	if r.cancel != nil {
		r.mu.Unlock()
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer close(r.done)
		r.loop(ctx)
	}()
}

func (r *Runner) loop(ctx context.Context) {
	tk := time.NewTicker(r.interval)
	defer tk.Stop()

	last := time.Now()
	r.logger.Debug("runner started", "interval", r.interval)
	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("runner stopped")
			return
		case t := <-tk.C:
			elapsed := t.Sub(last)
			last = t
			if res := r.Step(elapsed); res.State.GameOver || res.State.Aborted {
				r.logger.Debug("session finished", "score", res.State.Score, "level", res.State.Level)
				return
			}
		}
	}
}

// Stop cancels the tick goroutine and waits for it to exit. After Stop
// returns no further ticks reach the session.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

// Done is closed when the tick goroutine exits.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Step applies controller input and advances the session by one tick.
func (r *Runner) Step(elapsed time.Duration) core.StepResult {
	r.mu.Lock()
	if r.controller != nil {
		for _, ev := range r.controller.Decide(r.game.Snapshot()) {
			r.game.HandleInput(ev)
		}
	}
	res := r.game.Advance(elapsed)
	var snap defender.Snapshot
	if r.onTick != nil {
		snap = r.game.Snapshot()
	}
	r.mu.Unlock()

	if r.onTick != nil {
		r.onTick(snap)
	}
	return res
}

// Simulate steps the session at the nominal interval without sleeping until
// it finishes, maxTicks ticks have run (0 = unlimited) or ctx is cancelled.
func (r *Runner) Simulate(ctx context.Context, maxTicks int) defender.Snapshot {
	for i := 0; maxTicks <= 0 || i < maxTicks; i++ {
		if ctx.Err() != nil {
			break
		}
		if res := r.Step(r.interval); res.State.GameOver || res.State.Aborted {
			break
		}
	}
	return r.Snapshot()
}

// Send delivers one input event to the session.
func (r *Runner) Send(ev core.InputEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.game.HandleInput(ev)
}

// Snapshot copies the current session state.
func (r *Runner) Snapshot() defender.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.Snapshot()
}

// DrainEvents returns the session events emitted since the last call.
func (r *Runner) DrainEvents() []defender.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.DrainEvents()
}

// Result returns the session record as it stands now.
func (r *Runner) Result() defender.SessionResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.Result()
}
