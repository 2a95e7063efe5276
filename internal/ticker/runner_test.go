package ticker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
)

func newGame(seed int64) *defender.Game {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return defender.New(cfg, defender.DefaultSessionConfig(), defender.Options{})
}

func TestRunnerStepMatchesDirectAdvance(t *testing.T) {
	direct := newGame(5)
	runner := New(newGame(5), Options{})

	for i := 0; i < 300; i++ {
		direct.Advance(16 * time.Millisecond)
		runner.Step(16 * time.Millisecond)
	}

	if direct.Snapshot().Hash() != runner.Snapshot().Hash() {
		t.Error("Runner should not change simulation results")
	}
}

func TestRunnerStartStop(t *testing.T) {
	var ticks atomic.Int64
	r := New(newGame(1), Options{
		Interval: time.Millisecond,
		OnTick:   func(defender.Snapshot) { ticks.Add(1) },
	})

	r.Start(context.Background())
	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() < 5 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	r.Stop()

	if ticks.Load() < 5 {
		t.Fatalf("Expected ticks while running, got %d", ticks.Load())
	}

	select {
	case <-r.Done():
	default:
		t.Fatal("Done should be closed after Stop")
	}

	// No tick may land after Stop returns.
	before := r.Snapshot().Tick
	time.Sleep(20 * time.Millisecond)
	if after := r.Snapshot().Tick; after != before {
		t.Errorf("Tick advanced after Stop: %d -> %d", before, after)
	}
}

func TestRunnerStopsWhenSessionEnds(t *testing.T) {
	r := New(newGame(1), Options{Interval: time.Millisecond})
	r.Start(context.Background())
	r.Send(core.Press(core.ActionMenu))

	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Runner should exit once the session is aborted")
	}
	r.Stop()

	if r.Snapshot().State != defender.StateAborted {
		t.Errorf("Expected aborted state, got %s", r.Snapshot().State)
	}
}

func TestRunnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := New(newGame(1), Options{Interval: time.Millisecond})
	r.Start(ctx)
	cancel()

	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Runner should exit on context cancel")
	}
}

func TestSimulateWithAutopilot(t *testing.T) {
	r := New(newGame(9), Options{Controller: defender.NewAutopilot()})

	snap := r.Simulate(context.Background(), 2000)

	if snap.Tick != 2000 && !snap.State.Finished() {
		t.Errorf("Expected 2000 ticks or a finished session, got tick %d state %s", snap.Tick, snap.State)
	}
	if snap.Now != time.Duration(snap.Tick)*r.interval {
		t.Errorf("Simulated clock should follow the nominal interval, got %v", snap.Now)
	}

	events := r.DrainEvents()
	shots := 0
	for _, ev := range events {
		if ev.Kind == defender.EventShot {
			shots++
		}
	}
	if shots == 0 {
		t.Error("Autopilot should have fired")
	}
}
