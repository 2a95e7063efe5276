package defender

import "time"

// ShipView is the render-facing copy of the player.
type ShipView struct {
	X, Y       int
	W, H       int
	Health     int
	MaxHealth  int
	Class      ShipClass
	Bank       Bank
	Invincible bool
	// Blink is true on the frames an invincible ship should be hidden.
	Blink bool
}

// EnemyView is the render-facing copy of an enemy.
type EnemyView struct {
	X, Y      int
	Size      int
	Type      EnemyType
	Health    int
	MaxHealth int
}

// ShotView is the render-facing copy of a projectile.
type ShotView struct {
	X, Y int
	W, H int
}

// Snapshot is a read-only value copy of a session, taken once per repaint.
type Snapshot struct {
	Tick            uint64
	Now             time.Duration
	FieldW, FieldH  int
	State           State
	Ship            ShipView
	Enemies         []EnemyView
	Shots           []ShotView
	Background      int
	Score           int
	Level           int
	Defeated        int
	Required        int
	Difficulty      int
	DifficultyLabel string
	PlayerName      string
	// TransitionLeft is the remaining banner time during a level transition.
	TransitionLeft time.Duration
}

// Snapshot copies the current session state.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	snap := Snapshot{
		Tick:   g.tick,
		Now:    g.now,
		FieldW: g.cfg.FieldW,
		FieldH: g.cfg.FieldH,
		State:  g.state,
		Ship: ShipView{
			X:          p.X,
			Y:          p.Y,
			W:          ShipWidth,
			H:          ShipHeight,
			Health:     p.Health,
			MaxHealth:  MaxHealth,
			Class:      p.Class,
			Bank:       p.Bank(),
			Invincible: p.Invincible(),
			Blink:      p.Invincible() && (g.now/(100*time.Millisecond))%2 == 1,
		},
		Enemies:         make([]EnemyView, 0, len(g.enemies)),
		Shots:           make([]ShotView, 0, len(g.shots)),
		Background:      g.background,
		Score:           g.score,
		Level:           g.levels.Level(),
		Defeated:        g.levels.Defeated(),
		Required:        g.levels.Required(),
		Difficulty:      g.session.Difficulty,
		DifficultyLabel: g.session.DifficultyLabel(),
		PlayerName:      g.session.PlayerName,
	}

	for _, e := range g.enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			X:         e.X,
			Y:         e.Y,
			Size:      e.Size,
			Type:      e.Type,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
		})
	}
	for _, s := range g.shots {
		snap.Shots = append(snap.Shots, ShotView{X: s.X, Y: s.Y, W: ShotWidth, H: ShotHeight})
	}

	inTransition := g.state == StateLevelTransition ||
		(g.state == StatePaused && g.resumeState == StateLevelTransition)
	if inTransition {
		left := LevelTransitionDuration - (g.now - g.transitionStart)
		if left < 0 {
			left = 0
		}
		snap.TransitionLeft = left
	}
	return snap
}

// InTransition reports whether the level banner should be shown.
func (s Snapshot) InTransition() bool {
	return s.TransitionLeft > 0 || s.State == StateLevelTransition
}

// NextLevel is the level the transition banner announces. Level itself
// only advances when the banner time runs out.
func (s Snapshot) NextLevel() int {
	return s.Level + 1
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	var h uint64 = 17
	h = h*31 + s.Tick
	h = mix(h, s.Score)
	h = mix(h, s.Level)
	h = mix(h, s.Ship.X)
	h = mix(h, s.Ship.Y)
	h = mix(h, s.Ship.Health)
	for _, e := range s.Enemies {
		h = mix(h, e.X)
		h = mix(h, e.Y)
		h = mix(h, int(e.Type))
		h = mix(h, e.Health)
	}
	for _, sh := range s.Shots {
		h = mix(h, sh.X)
		h = mix(h, sh.Y)
	}
	return h
}

func mix(h uint64, v int) uint64 {
	return h*31 + uint64(v) //#nosec G115 -- hash computation
}
