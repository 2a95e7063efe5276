package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/space-defender/internal/games/defender"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	PresetEasy    DifficultyPreset = "easy"
	PresetNormal  DifficultyPreset = "normal"
	PresetHard    DifficultyPreset = "hard"
	PresetExtreme DifficultyPreset = "extreme"
)

// Presets lists the named difficulties in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{PresetEasy, PresetNormal, PresetHard, PresetExtreme}
}

// Value returns the numeric difficulty for a preset.
func (p DifficultyPreset) Value() int {
	switch p {
	case PresetEasy:
		return defender.DifficultyEasy
	case PresetHard:
		return defender.DifficultyHard
	case PresetExtreme:
		return defender.DifficultyExtreme
	default:
		return defender.DifficultyNormal
	}
}

// ParseDifficulty accepts a preset name or a positive integer.
// An empty string yields the default difficulty.
func ParseDifficulty(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return defender.DefaultDifficulty, nil
	}
	for _, p := range Presets() {
		if s == string(p) {
			return p.Value(), nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("unknown difficulty %q (want easy, normal, hard, extreme or a positive number)", s)
	}
	return n, nil
}

// ParseShip maps a ship name to its class. An empty string yields the standard fighter.
func ParseShip(s string) (defender.ShipClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard", "fighter":
		return defender.ShipStandard, nil
	case "interceptor", "fast":
		return defender.ShipInterceptor, nil
	case "cruiser", "heavy":
		return defender.ShipCruiser, nil
	}
	return defender.ShipStandard, fmt.Errorf("unknown ship %q (want standard, interceptor or cruiser)", s)
}
