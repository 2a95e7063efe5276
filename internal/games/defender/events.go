package defender

import "github.com/vovakirdan/space-defender/internal/core"

// EventKind identifies something that happened inside a session.
type EventKind int

const (
	EventSessionStarted EventKind = iota + 1
	EventShot
	EventEnemyHit
	EventEnemyDestroyed
	EventPlayerHit
	EventLevelCompleted
	EventLevelUp
	EventPaused
	EventResumed
	EventSessionEnded
	EventSessionAborted
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSessionStarted:
		return "SessionStarted"
	case EventShot:
		return "Shot"
	case EventEnemyHit:
		return "EnemyHit"
	case EventEnemyDestroyed:
		return "EnemyDestroyed"
	case EventPlayerHit:
		return "PlayerHit"
	case EventLevelCompleted:
		return "LevelCompleted"
	case EventLevelUp:
		return "LevelUp"
	case EventPaused:
		return "Paused"
	case EventResumed:
		return "Resumed"
	case EventSessionEnded:
		return "SessionEnded"
	case EventSessionAborted:
		return "SessionAborted"
	default:
		return "Unknown"
	}
}

// Cue returns the sound cue for the event, if it has one.
func (k EventKind) Cue() (core.Cue, bool) {
	switch k {
	case EventSessionStarted:
		return core.CueSessionStart, true
	case EventShot:
		return core.CueShoot, true
	case EventEnemyHit:
		return core.CueHit, true
	case EventEnemyDestroyed:
		return core.CueExplosion, true
	case EventPlayerHit:
		return core.CuePlayerHit, true
	case EventLevelCompleted:
		return core.CueLevelUp, true
	case EventSessionEnded:
		return core.CueGameOver, true
	}
	return "", false
}

// Event is emitted by the session for frontends and sinks.
type Event struct {
	Kind   EventKind
	X, Y   int       // Field position the event is anchored to
	Enemy  EnemyType // Set for enemy events
	Points int       // Score awarded by EventEnemyDestroyed; final score for EventSessionEnded
	Level  int       // Level the event happened on
	Label  string    // Difficulty label, set on EventSessionEnded
}

// SessionResult is the final record of a finished session.
type SessionResult struct {
	PlayerName      string
	Score           int
	Level           int
	Difficulty      int
	DifficultyLabel string
	Ship            ShipClass
}

// AudioSink plays named cues. Implementations must not block.
type AudioSink interface {
	PlayCue(cue core.Cue)
}

// ResultSink receives the final result of a session exactly once.
// Implementations must not block.
type ResultSink interface {
	RecordResult(result SessionResult)
}

// AudioFunc adapts a function to AudioSink.
type AudioFunc func(core.Cue)

// PlayCue calls f(cue).
func (f AudioFunc) PlayCue(cue core.Cue) { f(cue) }

// ResultFunc adapts a function to ResultSink.
type ResultFunc func(SessionResult)

// RecordResult calls f(result).
func (f ResultFunc) RecordResult(result SessionResult) { f(result) }
