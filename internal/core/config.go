package core

import "time"

// Field dimensions in pixels.
const (
	DefaultFieldW = 800
	DefaultFieldH = 600
)

// RuntimeConfig contains the parameters a frontend hands to a session.
type RuntimeConfig struct {
	FieldW   int           // Playfield width in pixels
	FieldH   int           // Playfield height in pixels
	TickRate int           // Simulation ticks per second
	Interval time.Duration // Exact tick length; overrides TickRate when set
	Seed     int64         // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns an 800x600 field ticking at 62 Hz (16ms per tick).
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW:   DefaultFieldW,
		FieldH:   DefaultFieldH,
		TickRate: 62,
	}
}

// TickInterval returns the nominal duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.Interval > 0 {
		return c.Interval
	}
	if c.TickRate <= 0 {
		return 16 * time.Millisecond
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState summarizes the session for the platform layer.
type GameState struct {
	Score      int
	Level      int
	GameOver   bool
	Paused     bool
	Transition bool // Level transition banner is showing
	Aborted    bool // Session was abandoned for the menu
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
