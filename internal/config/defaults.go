package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
)

//go:embed defaults/defender.yaml
var defaultYAML []byte

// DefaultTickMS is the nominal tick length in milliseconds.
const DefaultTickMS = 16

// DefaultDir is the per-user directory for config, scores, host key and logs.
const DefaultDir = "~/.spacedefender"

// Default returns the hard-coded configuration used when no file is found.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  core.DefaultFieldW,
			Height: core.DefaultFieldH,
		},
		Timing: TimingConfig{
			TickMS: DefaultTickMS,
		},
		Session: SessionConfig{
			PlayerName: defender.DefaultPlayerName,
			Difficulty: string(PresetNormal),
			Ship:       "standard",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Storage: StorageConfig{
			DSN:         DefaultDir + "/scores.db",
			SaveTimeout: 5 * time.Second,
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
