package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/space-defender/internal/core"
)

// binding lists the keys that trigger one held action.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

var heldBindings = []binding{
	{core.ActionMoveLeft, []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}},
	{core.ActionMoveRight, []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}},
	{core.ActionMoveUp, []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}},
	{core.ActionMoveDown, []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}},
}

// inputState turns polled key state into press and release events.
type inputState struct {
	pressed func(ebiten.Key) bool
	held    map[core.Action]bool
}

func newInputState(pressed func(ebiten.Key) bool) *inputState {
	return &inputState{pressed: pressed, held: make(map[core.Action]bool)}
}

// poll returns the events since the previous call. Movement reports edges;
// Space keeps requesting shots while held and the session's cooldown paces them.
func (s *inputState) poll() []core.InputEvent {
	var events []core.InputEvent
	for _, b := range heldBindings {
		down := false
		for _, k := range b.keys {
			if s.pressed(k) {
				down = true
				break
			}
		}
		switch {
		case down && !s.held[b.action]:
			events = append(events, core.Press(b.action))
		case !down && s.held[b.action]:
			events = append(events, core.Release(b.action))
		}
		s.held[b.action] = down
	}

	if s.pressed(ebiten.KeySpace) {
		events = append(events, core.Press(core.ActionShoot))
	}
	return events
}

// reset forgets held keys so a new session starts with none pressed. Keys
// still down are reported again on the next poll.
func (s *inputState) reset() {
	clear(s.held)
}
