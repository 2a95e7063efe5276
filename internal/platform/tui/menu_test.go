package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/space-defender/internal/games/defender"
	"github.com/vovakirdan/space-defender/internal/storage"
)

func openStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	store, err := storage.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// saveResults stores name/score pairs.
func saveResults(t *testing.T, store storage.Results, pairs ...any) {
	t.Helper()
	for i := 0; i+1 < len(pairs); i += 2 {
		res := defender.SessionResult{
			PlayerName:      pairs[i].(string),
			Score:           pairs[i+1].(int),
			Level:           1,
			Difficulty:      defender.DifficultyNormal,
			DifficultyLabel: "Normal",
		}
		if _, err := store.SaveResult(context.Background(), res); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
}

func TestMenuDefaults(t *testing.T) {
	m := NewMenuModel(defender.DefaultSessionConfig(), 80, 24)
	got := m.Session()

	if got.PlayerName != "Player1" || got.Difficulty != defender.DifficultyNormal || got.Ship != defender.ShipStandard {
		t.Errorf("Unexpected defaults: %+v", got)
	}
	if !strings.Contains(m.View(), "Normal") {
		t.Error("Menu should show the selected difficulty")
	}
}

func TestMenuEditAndStart(t *testing.T) {
	m := NewMenuModel(defender.SessionConfig{PlayerName: ""}, 80, 24)
	m.name.SetValue("")

	for _, k := range []string{"N", "o", "v", "a"} {
		m, _ = step(t, m, keyMsg(k))
	}
	m, _ = step(t, m, keyMsg("enter")) // Name row: move on
	m, _ = step(t, m, keyMsg("right")) // Normal -> Hard
	m, _ = step(t, m, keyMsg("down"))
	m, _ = step(t, m, keyMsg("left")) // Standard wraps to Cruiser
	m, _ = step(t, m, keyMsg("down"))

	m, cmd := step(t, m, keyMsg("enter"))
	if !m.Started() || cmd == nil {
		t.Fatal("Enter on Start should start a session")
	}

	got := m.Session()
	want := defender.SessionConfig{PlayerName: "Nova", Difficulty: defender.DifficultyHard, Ship: defender.ShipCruiser}
	if got != want {
		t.Errorf("Session() = %+v, want %+v", got, want)
	}
}

func TestMenuLettersOnlyTypeInNameRow(t *testing.T) {
	m := NewMenuModel(defender.DefaultSessionConfig(), 80, 24)

	// "q" types into the name field.
	m, _ = step(t, m, keyMsg("q"))
	if m.IsQuitting() {
		t.Fatal("q in the name field should not quit")
	}
	if m.Session().PlayerName != "Player1q" {
		t.Errorf("Expected typed name, got %q", m.Session().PlayerName)
	}

	m, _ = step(t, m, keyMsg("down"))
	m, _ = step(t, m, keyMsg("q"))
	if !m.IsQuitting() {
		t.Error("q outside the name field should quit")
	}
}

func TestMenuCursorWraps(t *testing.T) {
	m := NewMenuModel(defender.DefaultSessionConfig(), 80, 24)
	m, _ = step(t, m, keyMsg("up"))
	if m.cursor != rowStart {
		t.Errorf("Up from the first row should wrap to Start, got %d", m.cursor)
	}
	if m.name.Focused() {
		t.Error("Name field should lose focus")
	}
}

func TestMenuCustomDifficulty(t *testing.T) {
	m := NewMenuModel(defender.SessionConfig{Difficulty: 9}, 80, 24)
	if got := m.Session().Difficulty; got != 9 {
		t.Errorf("Custom difficulty should be kept, got %d", got)
	}
	if !strings.Contains(m.View(), "Custom (9)") {
		t.Error("Menu should label the custom difficulty")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(defender.DefaultSessionConfig(), 80, 24)
	m, _ = step(t, m, keyMsg("tab"))
	if !m.WantsScoreboard() {
		t.Error("Tab should open the scoreboard")
	}

	m = NewMenuModel(defender.DefaultSessionConfig(), 80, 24)
	m, _ = step(t, m, keyMsg("esc"))
	if !m.IsQuitting() {
		t.Error("Esc should quit the menu")
	}
}

func TestSessionModelFlow(t *testing.T) {
	deps := testDeps()
	deps.Session = defender.SessionConfig{PlayerName: "Rex", Difficulty: defender.DifficultyEasy}
	m := NewSessionModel(deps, 80, 24)

	// Down three times reaches Start.
	for i := 0; i < 3; i++ {
		m, _ = step(t, m, keyMsg("down"))
	}
	m, cmd := step(t, m, keyMsg("enter"))
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatal("Start should switch to the game")
	}
	if cmd == nil {
		t.Error("Game should start ticking")
	}
	if got := m.gameModel.Snapshot().PlayerName; got != "Rex" {
		t.Errorf("Game should use the chosen name, got %q", got)
	}

	m, cmd = step(t, m, keyMsg("esc"))
	if m.screen != screenMenu {
		t.Fatal("Esc should return to the menu")
	}
	if m.quitting {
		t.Error("Returning to the menu should not quit the program")
	}
	if cmd == nil {
		t.Error("Menu should restart its cursor blink")
	}
	if got := m.menu.Session(); got.PlayerName != "Rex" || got.Difficulty != defender.DifficultyEasy {
		t.Errorf("Menu should keep the last settings, got %+v", got)
	}
}

func TestSessionModelScoreboard(t *testing.T) {
	m := NewSessionModel(testDeps(), 80, 24)

	m, _ = step(t, m, keyMsg("tab"))
	if m.screen != screenScoreboard {
		t.Fatal("Tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("Scoreboard without a store should say so")
	}

	m, _ = step(t, m, keyMsg("esc"))
	if m.screen != screenMenu {
		t.Error("Esc should return from the scoreboard")
	}

	m, _ = step(t, m, keyMsg("ctrl+c"))
	if !m.quitting {
		t.Error("Ctrl+C should quit")
	}
}

func TestScoreboardLoadsResults(t *testing.T) {
	store := openStore(t)
	saveResults(t, store, "a", 30, "b", 90)

	m := NewScoreboardModel(store, 120, 30)
	msg := m.Init()()
	m, _ = step(t, m, msg)

	scores := m.Scores()
	if len(scores) != 2 || scores[0].PlayerName != "b" {
		t.Fatalf("Expected b first, got %+v", scores)
	}
	view := m.View()
	for _, want := range []string{"HIGH SCORES", "Games:  2", "Best:   90"} {
		if !strings.Contains(view, want) {
			t.Errorf("Scoreboard should contain %q", want)
		}
	}
}

func TestSSHServerStartsAndStops(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, testDeps())
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
}

func TestSessionForUser(t *testing.T) {
	got := sessionForUser(defender.DefaultSessionConfig(), "  alice ")
	if got.PlayerName != "alice" {
		t.Errorf("Expected SSH user as pilot name, got %q", got.PlayerName)
	}
	if got := sessionForUser(defender.DefaultSessionConfig(), ""); got.PlayerName != "Player1" {
		t.Errorf("Empty user should keep the default, got %q", got.PlayerName)
	}
}

func TestConnectionDepsLeaveSeedToEachGame(t *testing.T) {
	base := testDeps()
	base.Runtime.Seed = 0

	deps := connectionDeps(base, "bob", nil)
	if deps.Runtime.Seed != 0 {
		t.Fatalf("Connection should not pin a seed, got %d", deps.Runtime.Seed)
	}
	if deps.Session.PlayerName != "bob" {
		t.Errorf("Expected SSH user as pilot name, got %q", deps.Session.PlayerName)
	}

	m := NewGameModel(deps, deps.Session, 80, 24)
	if m.game.Config().Seed == 0 {
		t.Error("Each game should pick its own seed")
	}

	base.Runtime.Seed = 42
	if got := connectionDeps(base, "bob", nil).Runtime.Seed; got != 42 {
		t.Errorf("A configured seed should be kept, got %d", got)
	}
}
