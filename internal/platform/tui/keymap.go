package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-defender/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// held key is inferred from the repeat stream.
const (
	firstHoldWindow  = 500 * time.Millisecond // Covers the typical auto-repeat delay
	repeatHoldWindow = 150 * time.Millisecond // Gap tolerated between repeats
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionMoveLeft, false
	case "d", "right":
		return core.ActionMoveRight, false
	case "w", "up":
		return core.ActionMoveUp, false
	case "s", "down":
		return core.ActionMoveDown, false
	case " ":
		return core.ActionShoot, false
	case "p":
		return core.ActionPause, false
	case "esc":
		return core.ActionMenu, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
// Letter keys are not mapped so the name field can receive them.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c":
		return MenuActionQuit
	case "up", "shift+tab":
		return MenuActionUp
	case "down":
		return MenuActionDown
	case "left":
		return MenuActionLeft
	case "right":
		return MenuActionRight
	case "enter":
		return MenuActionSelect
	case "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// opposite returns the movement action cancelled by a press of a.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionMoveLeft:
		return core.ActionMoveRight
	case core.ActionMoveRight:
		return core.ActionMoveLeft
	case core.ActionMoveUp:
		return core.ActionMoveDown
	case core.ActionMoveDown:
		return core.ActionMoveUp
	}
	return core.ActionNone
}

// HoldTracker synthesizes press and release events for movement keys from
// a terminal's press-only key stream.
type HoldTracker struct {
	deadlines map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with nothing held.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{deadlines: make(map[core.Action]time.Time)}
}

// Press records a key press at now and returns the events to deliver.
// The first press of a key yields a press event; repeats only extend the hold.
// Pressing a direction releases its opposite at once.
func (h *HoldTracker) Press(a core.Action, now time.Time) []core.InputEvent {
	var events []core.InputEvent
	if opp := opposite(a); opp != core.ActionNone {
		if _, held := h.deadlines[opp]; held {
			delete(h.deadlines, opp)
			events = append(events, core.Release(opp))
		}
	}

	if _, held := h.deadlines[a]; held {
		h.deadlines[a] = now.Add(repeatHoldWindow)
		return events
	}
	h.deadlines[a] = now.Add(firstHoldWindow)
	return append(events, core.Press(a))
}

// Expire returns release events for every hold whose window has passed.
func (h *HoldTracker) Expire(now time.Time) []core.InputEvent {
	var events []core.InputEvent
	for _, a := range movementOrder {
		deadline, held := h.deadlines[a]
		if held && now.After(deadline) {
			delete(h.deadlines, a)
			events = append(events, core.Release(a))
		}
	}
	return events
}

// ReleaseAll drops every hold, e.g. on pause or focus loss.
func (h *HoldTracker) ReleaseAll() []core.InputEvent {
	var events []core.InputEvent
	for _, a := range movementOrder {
		if _, held := h.deadlines[a]; held {
			delete(h.deadlines, a)
			events = append(events, core.Release(a))
		}
	}
	return events
}

// Held reports whether a is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, held := h.deadlines[a]
	return held
}

// Fixed order keeps event sequences deterministic.
var movementOrder = []core.Action{
	core.ActionMoveLeft,
	core.ActionMoveRight,
	core.ActionMoveUp,
	core.ActionMoveDown,
}
