// Package defender implements the Space Defender simulation: a ship at the
// bottom of the field shoots down waves of falling enemies while levels speed
// up the spawn rate. The package does no I/O and never reads the wall clock;
// time only moves through Advance.
package defender

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/space-defender/internal/core"
)

// LevelTransitionDuration is how long the "LEVEL N" banner holds the field.
const LevelTransitionDuration = 2000 * time.Millisecond

// State is the phase of a session.
type State int

const (
	StateActive State = iota
	StateLevelTransition
	StatePaused
	StateGameOver
	StateAborted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateLevelTransition:
		return "level_transition"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Finished reports whether the session can no longer change.
func (s State) Finished() bool {
	return s == StateGameOver || s == StateAborted
}

// Options wires the collaborators of a session. Nil sinks are ignored.
type Options struct {
	Audio   AudioSink
	Results ResultSink
}

// Game is one session from start to game over or abandonment.
// It is not safe for concurrent use; drivers serialize calls.
type Game struct {
	cfg     core.RuntimeConfig
	session SessionConfig
	rng     *rand.Rand
	audio   AudioSink
	results ResultSink

	now         time.Duration // Session clock
	tick        uint64
	state       State
	resumeState State // State to restore when unpausing

	player  *Player
	levels  *LevelManager
	enemies []*Enemy
	shots   []*Projectile

	score           int
	scroll          int
	background      int
	spawnCounter    int
	transitionStart time.Duration
	ended           bool

	events []Event
}

// New constructs a fresh session. There is no in-place reset; start a new
// session by calling New again.
func New(cfg core.RuntimeConfig, session SessionConfig, opts Options) *Game {
	if cfg.FieldW <= 0 {
		cfg.FieldW = core.DefaultFieldW
	}
	if cfg.FieldH <= 0 {
		cfg.FieldH = core.DefaultFieldH
	}
	session = session.Normalize()

	g := &Game{
		cfg:     cfg,
		session: session,
		rng:     rand.New(rand.NewSource(cfg.Seed)), //#nosec G404 -- gameplay randomness
		audio:   opts.Audio,
		results: opts.Results,
		state:   StateActive,
		player:  NewPlayer(session.Ship, cfg.FieldW, cfg.FieldH),
		levels:  NewLevelManager(session.Difficulty),
		scroll:  ScrollSpeedFor(1),
	}
	g.emit(Event{Kind: EventSessionStarted, Level: 1})
	return g
}

// HandleInput applies one discrete input event.
// Movement changes the held set and is read on the next tick.
func (g *Game) HandleInput(ev core.InputEvent) {
	if g.state.Finished() {
		return
	}

	if d, ok := directionFor(ev.Action); ok {
		if ev.Released {
			g.player.Release(d)
		} else {
			g.player.Press(d)
		}
		return
	}
	if ev.Released {
		return
	}

	switch ev.Action {
	case core.ActionShoot:
		g.tryShoot()
	case core.ActionPause:
		g.togglePause()
	case core.ActionMenu:
		g.abort()
	}
}

// tryShoot fires if the cooldown allows. Shots fired during a level
// transition hold still until play resumes.
func (g *Game) tryShoot() {
	playing := g.state == StateActive || g.state == StateLevelTransition
	if !playing || !g.player.CanShoot(g.now) {
		return
	}
	x, y := g.player.Shoot(g.now)
	g.shots = append(g.shots, NewProjectile(x, y))
	g.emit(Event{Kind: EventShot, X: x, Y: y, Level: g.levels.Level()})
}

func (g *Game) togglePause() {
	switch g.state {
	case StateActive, StateLevelTransition:
		g.resumeState = g.state
		g.state = StatePaused
		g.emit(Event{Kind: EventPaused, Level: g.levels.Level()})
	case StatePaused:
		g.state = g.resumeState
		g.emit(Event{Kind: EventResumed, Level: g.levels.Level()})
	}
}

func (g *Game) abort() {
	g.state = StateAborted
	g.emit(Event{Kind: EventSessionAborted, Level: g.levels.Level()})
}

// Advance runs one tick after elapsed time has passed.
// Paused and finished sessions ignore ticks and their clock stands still.
func (g *Game) Advance(elapsed time.Duration) core.StepResult {
	if g.state == StatePaused || g.state.Finished() {
		return core.StepResult{State: g.State()}
	}
	if elapsed > 0 {
		g.now += elapsed
	}
	g.tick++

	if g.state == StateLevelTransition {
		if g.now-g.transitionStart >= LevelTransitionDuration {
			g.levels.LevelUp()
			g.scroll = ScrollSpeedFor(g.levels.Level())
			g.state = StateActive
			g.emit(Event{Kind: EventLevelUp, Level: g.levels.Level()})
		}
		return core.StepResult{State: g.State()}
	}

	g.player.Update(g.now)
	g.scrollBackground()

	g.spawnCounter++
	if g.spawnCounter >= g.levels.SpawnInterval() {
		g.spawnEnemy()
		g.spawnCounter = 0
	}

	for _, e := range g.enemies {
		e.Update(g.scroll)
	}
	for _, s := range g.shots {
		s.Update()
	}

	g.resolveCollisions()
	g.cleanup()

	if g.state == StateActive && g.levels.Completed() {
		g.state = StateLevelTransition
		g.transitionStart = g.now
		g.emit(Event{Kind: EventLevelCompleted, Level: g.levels.Level()})
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) scrollBackground() {
	g.background += g.scroll
	if g.background >= g.cfg.FieldH {
		g.background = 0
	}
}

func (g *Game) spawnEnemy() {
	x := g.rng.Intn(core.Max(1, g.cfg.FieldW-EnemySpawnMargin))
	types := EnemyTypes()
	t := types[g.rng.Intn(len(types))]
	g.enemies = append(g.enemies, NewEnemy(x, EnemySpawnY, g.levels.EnemySpeed(), t))
}

// cleanup compacts the entity slices in place, dropping dead or fallen
// enemies and retired shots.
func (g *Game) cleanup() {
	enemies := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Alive && !e.OutOfScreen(g.cfg.FieldH) {
			enemies = append(enemies, e)
		}
	}
	for i := len(enemies); i < len(g.enemies); i++ {
		g.enemies[i] = nil
	}
	g.enemies = enemies

	shots := g.shots[:0]
	for _, s := range g.shots {
		if s.Active {
			shots = append(shots, s)
		}
	}
	for i := len(shots); i < len(g.shots); i++ {
		g.shots[i] = nil
	}
	g.shots = shots
}

// endSession moves to game over and hands the result to the sink once.
func (g *Game) endSession() {
	if g.ended {
		return
	}
	g.ended = true
	g.state = StateGameOver
	g.emit(Event{
		Kind:   EventSessionEnded,
		Level:  g.levels.Level(),
		Points: g.score,
		Label:  g.session.DifficultyLabel(),
	})
	if g.results != nil {
		g.results.RecordResult(g.Result())
	}
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
	if g.audio == nil {
		return
	}
	if cue, ok := ev.Kind.Cue(); ok {
		g.audio.PlayCue(cue)
	}
}

// DrainEvents returns the events emitted since the last call.
func (g *Game) DrainEvents() []Event {
	evs := g.events
	g.events = nil
	return evs
}

// Result returns the session record as it stands now.
func (g *Game) Result() SessionResult {
	return SessionResult{
		PlayerName:      g.session.PlayerName,
		Score:           g.score,
		Level:           g.levels.Level(),
		Difficulty:      g.session.Difficulty,
		DifficultyLabel: g.session.DifficultyLabel(),
		Ship:            g.session.Ship,
	}
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		Level:      g.levels.Level(),
		GameOver:   g.state == StateGameOver,
		Paused:     g.state == StatePaused,
		Transition: g.state == StateLevelTransition || (g.state == StatePaused && g.resumeState == StateLevelTransition),
		Aborted:    g.state == StateAborted,
	}
}

// Phase returns the session state.
func (g *Game) Phase() State {
	return g.state
}

// Now returns the session clock.
func (g *Game) Now() time.Duration {
	return g.now
}

// Session returns the normalized session configuration.
func (g *Game) Session() SessionConfig {
	return g.session
}

// Config returns the runtime configuration.
func (g *Game) Config() core.RuntimeConfig {
	return g.cfg
}
