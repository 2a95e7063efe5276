package defender

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Session defaults.
const (
	DefaultPlayerName = "Player1"
	DefaultDifficulty = DifficultyNormal
	MaxNameLength     = 50 // Runes; matches the results table column
)

// SessionConfig is fixed at construction and never changes during a session.
type SessionConfig struct {
	PlayerName string
	Difficulty int
	Ship       ShipClass
}

// DefaultSessionConfig returns the setup menu defaults.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		PlayerName: DefaultPlayerName,
		Difficulty: DefaultDifficulty,
		Ship:       ShipStandard,
	}
}

// Normalize cleans the name, substitutes defaults for missing values and
// maps unknown ship classes to the standard fighter.
func (c SessionConfig) Normalize() SessionConfig {
	c.PlayerName = NormalizeName(c.PlayerName)
	if c.Difficulty <= 0 {
		c.Difficulty = DefaultDifficulty
	}
	c.Ship = c.Ship.Normalize()
	return c
}

// DifficultyLabel returns the label stored with results.
func (c SessionConfig) DifficultyLabel() string {
	return DifficultyLabel(c.Difficulty)
}

// NormalizeName trims, NFC-normalizes and truncates a player name,
// dropping control characters. Empty names become DefaultPlayerName.
func NormalizeName(name string) string {
	name = norm.NFC.String(strings.TrimSpace(name))

	var b strings.Builder
	count := 0
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if count == MaxNameLength {
			break
		}
		b.WriteRune(r)
		count++
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return DefaultPlayerName
	}
	return out
}
