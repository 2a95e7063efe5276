package storage

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
)

// memStore is an in-memory Results used to observe the recorder.
type memStore struct {
	mu      sync.Mutex
	saved   []defender.SessionResult
	failErr error
}

func (m *memStore) SaveResult(_ context.Context, res defender.SessionResult) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return 0, m.failErr
	}
	m.saved = append(m.saved, res)
	return int64(len(m.saved)), nil
}

func (m *memStore) TopResults(context.Context, int) ([]ResultEntry, error) { return nil, nil }
func (m *memStore) HighScore(context.Context) (int, error)                 { return 0, nil }
func (m *memStore) Stats(context.Context) (Stats, error)                   { return Stats{}, nil }
func (m *memStore) Clear(context.Context) error                            { return nil }
func (m *memStore) Close() error                                           { return nil }

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saved)
}

func TestRecorderSavesInOrder(t *testing.T) {
	store := &memStore{}
	rec := NewRecorder(store, nil, time.Second)
	defer rec.Close()

	rec.RecordResult(result("a", 10, 1))
	rec.RecordResult(result("b", 20, 2))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rec.Flush(ctx); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	if store.count() != 2 {
		t.Fatalf("Expected 2 saved results, got %d", store.count())
	}
	if store.saved[0].PlayerName != "a" || store.saved[1].PlayerName != "b" {
		t.Errorf("Results saved out of order: %+v", store.saved)
	}
}

func TestRecorderSurvivesSaveErrors(t *testing.T) {
	store := &memStore{failErr: errors.New("disk full")}
	rec := NewRecorder(store, nil, time.Second)

	rec.RecordResult(result("a", 10, 1))
	if err := rec.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	rec.Close()

	if store.count() != 0 {
		t.Errorf("Failed save should not be stored, got %d", store.count())
	}
}

func TestRecorderCloseDrainsQueue(t *testing.T) {
	store := &memStore{}
	rec := NewRecorder(store, nil, time.Second)

	for i := 0; i < 5; i++ {
		rec.RecordResult(result("p", i, 1))
	}
	rec.Close()

	if store.count() != 5 {
		t.Errorf("Close should drain the queue, got %d saved", store.count())
	}

	// Calls after close are dropped without panicking.
	rec.RecordResult(result("late", 1, 1))
	rec.Close()
	if err := rec.Flush(context.Background()); err != nil {
		t.Errorf("Flush after close should be a no-op, got %v", err)
	}
}

func TestRecorderWithGame(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, nil, time.Second)
	defer rec.Close()

	g := defender.New(
		core.RuntimeConfig{FieldW: core.DefaultFieldW, FieldH: core.DefaultFieldH, Seed: 3},
		defender.SessionConfig{PlayerName: "Pilot", Difficulty: defender.DifficultyHard},
		defender.Options{Results: rec},
	)
	bot := defender.NewAutopilot()
	for i := 0; i < 200000 && !g.Phase().Finished(); i++ {
		for _, ev := range bot.Decide(g.Snapshot()) {
			g.HandleInput(ev)
		}
		g.Advance(16 * time.Millisecond)
	}
	if !g.Phase().Finished() {
		t.Skip("autopilot survived the whole run")
	}

	if err := rec.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	entries, err := store.TopResults(context.Background(), 5)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected one stored result, got %d", len(entries))
	}
	if entries[0].PlayerName != "Pilot" || entries[0].Score != g.Result().Score || entries[0].Difficulty != "Hard" {
		t.Errorf("Stored entry does not match session: %+v vs %+v", entries[0], g.Result())
	}
}
