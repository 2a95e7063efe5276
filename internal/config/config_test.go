package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/space-defender/internal/games/defender"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Embedded defaults drifted:\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".spacedefender")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("session:\n  player_name: Ace\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Session.PlayerName != "Ace" {
		t.Errorf("Expected user player name, got %q", cfg.Session.PlayerName)
	}
	if cfg.Field.Width != 800 {
		t.Errorf("Unset keys should keep defaults, got width %d", cfg.Field.Width)
	}
}

func TestLoadCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
timing:
  tick_ms: 20
session:
  difficulty: hard
  ship: cruiser
storage:
  dsn: postgres://localhost/defender
  save_timeout: 2s
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TickInterval() != 20*time.Millisecond {
		t.Errorf("Expected 20ms ticks, got %v", cfg.TickInterval())
	}
	if cfg.Storage.SaveTimeout != 2*time.Second {
		t.Errorf("Expected 2s save timeout, got %v", cfg.Storage.SaveTimeout)
	}
	if cfg.Storage.DSN != "postgres://localhost/defender" {
		t.Errorf("Unexpected DSN %q", cfg.Storage.DSN)
	}

	sc := cfg.DefenderSession()
	if sc.Difficulty != defender.DifficultyHard || sc.Ship != defender.ShipCruiser {
		t.Errorf("Unexpected session %+v", sc)
	}
	if rc := cfg.Runtime(99); rc.TickRate != 50 || rc.Seed != 99 || rc.FieldW != 800 {
		t.Errorf("Unexpected runtime config %+v", rc)
	}
}

func TestRuntimeKeepsExactInterval(t *testing.T) {
	tests := []struct {
		tickMS   int
		wantRate int
	}{
		{16, 62},
		{20, 50},
		{33, 30},
		{1000, 1},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.Timing.TickMS = tt.tickMS
		rc := cfg.Runtime(0)
		want := time.Duration(tt.tickMS) * time.Millisecond
		if got := rc.TickInterval(); got != want {
			t.Errorf("tick_ms %d: interval = %v, want %v", tt.tickMS, got, want)
		}
		if rc.TickRate != tt.wantRate {
			t.Errorf("tick_ms %d: tick rate = %d, want %d", tt.tickMS, rc.TickRate, tt.wantRate)
		}
	}
}

func TestValidateTickRange(t *testing.T) {
	tests := []struct {
		tickMS  int
		wantErr bool
	}{
		{0, true},
		{-5, true},
		{1, false},
		{1000, false},
		{1001, true},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.Timing.TickMS = tt.tickMS
		if err := cfg.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("tick_ms %d: Validate() error = %v, wantErr %v", tt.tickMS, err, tt.wantErr)
		}
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := `
[audio]
enabled = false
volume = 0.25

[ssh]
address = ":2222"
idle_timeout = "10m"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Audio.Enabled || cfg.Audio.Volume != 0.25 {
		t.Errorf("Unexpected audio config %+v", cfg.Audio)
	}
	if cfg.SSH.Address != ":2222" || cfg.SSH.IdleTimeout != 10*time.Minute {
		t.Errorf("Unexpected ssh config %+v", cfg.SSH)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("Expected read error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("Expected parse error, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("audio:\n  volume: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", defender.DifficultyNormal, false},
		{"easy", defender.DifficultyEasy, false},
		{"Normal", defender.DifficultyNormal, false},
		{" HARD ", defender.DifficultyHard, false},
		{"extreme", defender.DifficultyExtreme, false},
		{"4", 4, false},
		{"0", 0, true},
		{"-2", 0, true},
		{"insane", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseShip(t *testing.T) {
	tests := map[string]defender.ShipClass{
		"":            defender.ShipStandard,
		"standard":    defender.ShipStandard,
		"Interceptor": defender.ShipInterceptor,
		"cruiser":     defender.ShipCruiser,
	}
	for in, want := range tests {
		got, err := ParseShip(in)
		if err != nil || got != want {
			t.Errorf("ParseShip(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseShip("battleship"); err == nil {
		t.Error("Expected error for unknown ship")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandHome("~/.spacedefender/scores.db"); got != filepath.Join(home, ".spacedefender", "scores.db") {
		t.Errorf("Unexpected expansion %q", got)
	}
	if got := ExpandHome("/tmp/scores.db"); got != "/tmp/scores.db" {
		t.Errorf("Absolute path changed: %q", got)
	}
}
