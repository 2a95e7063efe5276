package defender

// hit records the outcome of one shot striking one enemy.
type hit struct {
	enemy  *Enemy
	killed bool
}

// resolveCollisions runs both collision passes over stable copies of the
// entity slices. Scoring and defeat credit are applied only after every
// shot/enemy pair has been evaluated.
func (g *Game) resolveCollisions() {
	enemies := append([]*Enemy(nil), g.enemies...)
	shots := append([]*Projectile(nil), g.shots...)

	var hits []hit
	for _, e := range enemies {
		for _, s := range shots {
			if !s.Active || !e.Alive {
				continue
			}
			if !s.Hitbox().Intersects(e.Hitbox()) {
				continue
			}
			killed := e.TakeDamage(1)
			s.Deactivate()
			hits = append(hits, hit{enemy: e, killed: killed})
		}
	}

	level := g.levels.Level()
	for _, h := range hits {
		x, y := h.enemy.Hitbox().CenterX(), h.enemy.Y+h.enemy.Size/2
		if !h.killed {
			g.emit(Event{Kind: EventEnemyHit, X: x, Y: y, Enemy: h.enemy.Type, Level: level})
			continue
		}
		points := h.enemy.Type.Points()
		g.score += points
		g.levels.EnemyDefeated()
		g.emit(Event{Kind: EventEnemyDestroyed, X: x, Y: y, Enemy: h.enemy.Type, Points: points, Level: level})
	}

	ship := g.player.Hitbox()
	for _, e := range enemies {
		if !e.Alive || !e.Hitbox().Intersects(ship) {
			continue
		}
		// Rams destroy the enemy without score or defeat credit.
		e.TakeDamage(e.MaxHealth)
		g.player.TakeDamage(g.now)
		g.emit(Event{Kind: EventPlayerHit, X: g.player.CenterX(), Y: g.player.Y, Enemy: e.Type, Level: level})
		if g.player.Health <= 0 {
			g.endSession()
		}
	}
}
