// Package config provides YAML and TOML configuration loading for
// Space Defender: field geometry, tick timing, session defaults, audio,
// result storage and the SSH server.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
)

// Config contains the full application configuration.
type Config struct {
	Field   FieldConfig   `yaml:"field" toml:"field"`
	Timing  TimingConfig  `yaml:"timing" toml:"timing"`
	Session SessionConfig `yaml:"session" toml:"session"`
	Audio   AudioConfig   `yaml:"audio" toml:"audio"`
	Storage StorageConfig `yaml:"storage" toml:"storage"`
	SSH     SSHConfig     `yaml:"ssh" toml:"ssh"`
}

// FieldConfig defines the logical playfield in pixels.
type FieldConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// TimingConfig defines the simulation clock.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms" toml:"tick_ms"` // Milliseconds per tick
}

// SessionConfig holds the setup menu defaults.
type SessionConfig struct {
	PlayerName string `yaml:"player_name" toml:"player_name"`
	Difficulty string `yaml:"difficulty" toml:"difficulty"` // Preset name or positive integer
	Ship       string `yaml:"ship" toml:"ship"`             // standard, interceptor or cruiser
}

// AudioConfig controls the sound cue player.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Volume  float64 `yaml:"volume" toml:"volume"` // 0.0 = silent, 1.0 = full
}

// StorageConfig selects the results store.
type StorageConfig struct {
	DSN         string        `yaml:"dsn" toml:"dsn"` // SQLite path or postgres:// URL
	SaveTimeout time.Duration `yaml:"save_timeout" toml:"save_timeout"`
}

// SSHConfig configures the remote play server.
type SSHConfig struct {
	Address     string        `yaml:"address" toml:"address"`
	HostKey     string        `yaml:"host_key" toml:"host_key"` // Auto-generated under ~/.spacedefender if empty
	IdleTimeout time.Duration `yaml:"idle_timeout" toml:"idle_timeout"`
}

// maxTickMS keeps the derived tick rate at one tick per second or more.
const maxTickMS = 1000

// Validate checks value ranges after loading.
func (c Config) Validate() error {
	if c.Field.Width <= defender.ShipWidth || c.Field.Height <= defender.ShipHeight {
		return fmt.Errorf("field %dx%d is smaller than the ship", c.Field.Width, c.Field.Height)
	}
	if c.Timing.TickMS <= 0 || c.Timing.TickMS > maxTickMS {
		return fmt.Errorf("tick_ms must be within [1, %d], got %d", maxTickMS, c.Timing.TickMS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	if _, err := ParseDifficulty(c.Session.Difficulty); err != nil {
		return err
	}
	if _, err := ParseShip(c.Session.Ship); err != nil {
		return err
	}
	return nil
}

// TickInterval returns the duration of one simulation tick.
func (c Config) TickInterval() time.Duration {
	if c.Timing.TickMS <= 0 {
		return DefaultTickMS * time.Millisecond
	}
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// Runtime builds the core runtime configuration for a session.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if c.Field.Width > 0 {
		rc.FieldW = c.Field.Width
	}
	if c.Field.Height > 0 {
		rc.FieldH = c.Field.Height
	}
	rc.Interval = c.TickInterval()
	rc.TickRate = core.Max(1, int(time.Second/rc.Interval))
	rc.Seed = seed
	return rc
}

// DefenderSession converts the session section into setup menu defaults.
// Unparseable values fall back to the game defaults.
func (c Config) DefenderSession() defender.SessionConfig {
	sc := defender.DefaultSessionConfig()
	if c.Session.PlayerName != "" {
		sc.PlayerName = c.Session.PlayerName
	}
	if d, err := ParseDifficulty(c.Session.Difficulty); err == nil {
		sc.Difficulty = d
	}
	if s, err := ParseShip(c.Session.Ship); err == nil {
		sc.Ship = s
	}
	return sc.Normalize()
}
