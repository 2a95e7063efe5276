package defender

import "github.com/vovakirdan/space-defender/internal/core"

// Difficulty values offered by the setup menu.
const (
	DifficultyEasy    = 1
	DifficultyNormal  = 3
	DifficultyHard    = 5
	DifficultyExtreme = 7
)

const (
	minSpawnInterval = 15
	baseSpawnTicks   = 60
	baseScrollSpeed  = 2
)

// DifficultyLabel returns the display label for a difficulty value.
func DifficultyLabel(difficulty int) string {
	switch difficulty {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	case DifficultyExtreme:
		return "Extreme"
	default:
		return "Custom"
	}
}

// RequiredFor returns how many defeats complete the given level.
func RequiredFor(level int) int {
	return 5 + level*2
}

// ScrollSpeedFor returns the field scroll speed at the given level.
func ScrollSpeedFor(level int) int {
	return baseScrollSpeed + level/3
}

// LevelManager tracks level progression for one session.
// It holds no randomness; spawn choices live in the game.
type LevelManager struct {
	level      int
	difficulty int
	defeated   int
	required   int
	completed  bool
}

// NewLevelManager starts progression at level 1 with a fixed difficulty.
func NewLevelManager(difficulty int) *LevelManager {
	m := &LevelManager{difficulty: difficulty}
	m.Reset()
	return m
}

// Reset returns to level 1.
func (m *LevelManager) Reset() {
	m.level = 1
	m.defeated = 0
	m.required = RequiredFor(m.level)
	m.completed = false
}

// EnemyDefeated credits one defeat toward the current level.
func (m *LevelManager) EnemyDefeated() {
	m.defeated++
	if m.defeated >= m.required {
		m.completed = true
	}
}

// LevelUp advances to the next level and clears its progress.
func (m *LevelManager) LevelUp() {
	m.level++
	m.defeated = 0
	m.required = RequiredFor(m.level)
	m.completed = false
}

// SpawnInterval returns the number of ticks between two spawns.
func (m *LevelManager) SpawnInterval() int {
	return core.Max(minSpawnInterval, baseSpawnTicks-m.level*3-m.difficulty*2)
}

// EnemySpeed returns the base speed handed to new enemies.
func (m *LevelManager) EnemySpeed() int {
	return 1 + m.level/2 + m.difficulty/2
}

// Level returns the current level, starting at 1.
func (m *LevelManager) Level() int { return m.level }

// Difficulty returns the difficulty fixed at session start.
func (m *LevelManager) Difficulty() int { return m.difficulty }

// Defeated returns the enemies defeated on the current level.
func (m *LevelManager) Defeated() int { return m.defeated }

// Required returns the defeats needed to complete the current level.
func (m *LevelManager) Required() int { return m.required }

// Completed reports whether the current level's requirement has been met.
func (m *LevelManager) Completed() bool { return m.completed }
