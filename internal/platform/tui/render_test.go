package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/storage"
)

func baseSnapshot() defender.Snapshot {
	return defender.Snapshot{
		FieldW:          core.DefaultFieldW,
		FieldH:          core.DefaultFieldH,
		State:           defender.StateActive,
		Ship:            defender.ShipView{X: 380, Y: 450, W: 50, H: 60, Health: 2, MaxHealth: 3},
		Score:           40,
		Level:           1,
		Defeated:        3,
		Required:        7,
		Difficulty:      3,
		DifficultyLabel: "Normal",
		PlayerName:      "Ace",
	}
}

func TestDrawSnapshotHUD(t *testing.T) {
	s := core.NewScreen(80, 24)
	DrawSnapshot(s, baseSnapshot(), nil)

	hud := s.Row(0)
	for _, want := range []string{"Ace", "Score: 40", "Level: 1", "Kills: 3/7", "Normal", "♥♥♡"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q should contain %q", hud, want)
		}
	}
}

func TestDrawSnapshotEntities(t *testing.T) {
	snap := baseSnapshot()
	snap.Enemies = []defender.EnemyView{
		{X: 100, Y: 100, Size: 40, Type: defender.EnemyBasic, Health: 1, MaxHealth: 1},
		{X: 300, Y: 200, Size: 50, Type: defender.EnemyTank, Health: 1, MaxHealth: 3},
	}
	snap.Shots = []defender.ShotView{{X: 600, Y: 300, W: 5, H: 15}}

	s := core.NewScreen(80, 24)
	DrawSnapshot(s, snap, nil)
	out := s.String()

	for _, glyph := range []string{"█", "▒", "▓", "|", "▬", "▭"} {
		if !strings.Contains(out, glyph) {
			t.Errorf("Expected glyph %q on screen", glyph)
		}
	}
}

func TestDrawSnapshotBlinkHidesShip(t *testing.T) {
	snap := baseSnapshot()
	snap.Ship.Invincible = true
	snap.Ship.Blink = true

	s := core.NewScreen(80, 24)
	DrawSnapshot(s, snap, nil)
	if strings.Contains(s.String(), "█") {
		t.Error("Ship should be hidden on blink frames")
	}
}

func TestDrawSnapshotBanking(t *testing.T) {
	tests := []struct {
		bank defender.Bank
		nose string
	}{
		{defender.BankLevel, "^"},
		{defender.BankLeft, "<"},
		{defender.BankRight, ">"},
	}

	for _, tt := range tests {
		snap := baseSnapshot()
		snap.Ship.Bank = tt.bank
		s := core.NewScreen(80, 24)
		DrawSnapshot(s, snap, nil)
		if !strings.Contains(s.String(), tt.nose) {
			t.Errorf("Bank %d: expected nose %q", tt.bank, tt.nose)
		}
	}
}

func TestDrawSnapshotOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*defender.Snapshot)
		want  string
	}{
		{"paused", func(s *defender.Snapshot) { s.State = defender.StatePaused }, "PAUSED"},
		{"transition", func(s *defender.Snapshot) {
			s.State = defender.StateLevelTransition
			s.Level = 2
			s.TransitionLeft = time.Second
		}, "LEVEL 3!"},
		{"game over", func(s *defender.Snapshot) { s.State = defender.StateGameOver }, "Press R to return to menu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := baseSnapshot()
			tt.setup(&snap)
			s := core.NewScreen(80, 24)
			DrawSnapshot(s, snap, nil)
			if !strings.Contains(s.String(), tt.want) {
				t.Errorf("Expected %q on screen:\n%s", tt.want, s.String())
			}
		})
	}
}

// playToTransition drives an autopilot session until the first level is
// cleared. It tries a few seeds in case the autopilot loses first.
func playToTransition(t *testing.T) defender.Snapshot {
	t.Helper()
	for seed := int64(1); seed <= 20; seed++ {
		cfg := core.DefaultConfig()
		cfg.Seed = seed
		g := defender.New(cfg, defender.SessionConfig{
			PlayerName: "Ace",
			Difficulty: defender.DifficultyEasy,
			Ship:       defender.ShipCruiser,
		}, defender.Options{})
		bot := defender.NewAutopilot()

		for i := 0; i < 20000 && !g.Phase().Finished(); i++ {
			for _, ev := range bot.Decide(g.Snapshot()) {
				g.HandleInput(ev)
			}
			g.Advance(16 * time.Millisecond)
			if g.Phase() == defender.StateLevelTransition {
				return g.Snapshot()
			}
		}
	}
	t.Fatal("No session reached a level transition")
	return defender.Snapshot{}
}

func TestDrawSnapshotBannerAnnouncesNextLevel(t *testing.T) {
	snap := playToTransition(t)
	if snap.Level != 1 {
		t.Fatalf("Expected level 1 during the first transition, got %d", snap.Level)
	}

	s := core.NewScreen(80, 24)
	DrawSnapshot(s, snap, nil)
	out := s.String()
	if !strings.Contains(out, "LEVEL 2!") {
		t.Errorf("Banner should announce level 2:\n%s", out)
	}
	if strings.Contains(out, "LEVEL 1!") {
		t.Errorf("Banner should not announce the cleared level:\n%s", out)
	}
}

func TestDrawSnapshotGameOverBoard(t *testing.T) {
	snap := baseSnapshot()
	snap.State = defender.StateGameOver
	board := []storage.ResultEntry{
		{PlayerName: "Zed", Score: 900},
		{PlayerName: "Ace", Score: 40},
	}

	s := core.NewScreen(80, 24)
	DrawSnapshot(s, snap, board)
	out := s.String()

	for _, want := range []string{"GAME OVER", "Final score: 40", "1. Zed", "2. Ace", "3. ---"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q on game-over overlay", want)
		}
	}
}

func TestDrawSnapshotTooSmall(t *testing.T) {
	s := core.NewScreen(20, 8)
	DrawSnapshot(s, baseSnapshot(), nil)
	if !strings.Contains(s.String(), "too small") {
		t.Errorf("Expected size warning, got:\n%s", s.String())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("Rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected 2 rows, got %q", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("héllo", 3); got != "hél" {
		t.Errorf("truncate() = %q, want %q", got, "hél")
	}
	if got := truncate("abc", 5); got != "abc" {
		t.Errorf("truncate() = %q, want %q", got, "abc")
	}
}
