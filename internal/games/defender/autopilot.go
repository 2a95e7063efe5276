package defender

import "github.com/vovakirdan/space-defender/internal/core"

const (
	autopilotDeadZone = 6   // Pixels of misalignment tolerated before steering
	autopilotDanger   = 140 // Vertical distance at which a falling enemy is dodged
)

// Autopilot is a scripted input source. It lines the ship up under the
// lowest enemy, fires whenever it can and sidesteps enemies about to ram it.
// The headless simulator and attract screens drive sessions with it.
type Autopilot struct {
	held Direction
}

// NewAutopilot creates an autopilot with no keys held.
func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Decide returns the input events for the next tick given the latest snapshot.
// Movement keys are pressed and released only when the wanted direction changes.
func (a *Autopilot) Decide(s Snapshot) []core.InputEvent {
	if s.State.Finished() || s.State == StatePaused {
		return nil
	}

	want := a.steer(s)
	var events []core.InputEvent
	for _, d := range []struct {
		dir    Direction
		action core.Action
	}{
		{DirLeft, core.ActionMoveLeft},
		{DirRight, core.ActionMoveRight},
	} {
		switch {
		case want&d.dir != 0 && a.held&d.dir == 0:
			events = append(events, core.Press(d.action))
		case want&d.dir == 0 && a.held&d.dir != 0:
			events = append(events, core.Release(d.action))
		}
	}
	a.held = want

	if s.State == StateActive {
		events = append(events, core.Press(core.ActionShoot))
	}
	return events
}

func (a *Autopilot) steer(s Snapshot) Direction {
	shipLeft := s.Ship.X
	shipRight := s.Ship.X + s.Ship.W
	shipCenter := s.Ship.X + s.Ship.W/2

	// Dodge first.
	for _, e := range s.Enemies {
		overlaps := e.X < shipRight && e.X+e.Size > shipLeft
		gap := s.Ship.Y - (e.Y + e.Size)
		if !overlaps || gap < 0 || gap > autopilotDanger {
			continue
		}
		if e.X+e.Size/2 >= shipCenter && shipLeft > 0 {
			return DirLeft
		}
		return DirRight
	}

	var target *EnemyView
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if e.Y+e.Size >= s.Ship.Y {
			continue
		}
		if target == nil || e.Y > target.Y {
			target = e
		}
	}
	if target == nil {
		return 0
	}

	targetCenter := target.X + target.Size/2
	switch {
	case targetCenter < shipCenter-autopilotDeadZone:
		return DirLeft
	case targetCenter > shipCenter+autopilotDeadZone:
		return DirRight
	}
	return 0
}
