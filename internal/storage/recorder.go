package storage

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-defender/internal/games/defender"
)

const recorderQueueSize = 16

// recordJob is either a result to save or a flush marker.
type recordJob struct {
	result  defender.SessionResult
	flushed chan struct{}
}

// Recorder is a non-blocking defender.ResultSink. Results are queued and
// saved by a background goroutine so the tick loop never waits on I/O.
// Save failures are logged and dropped.
type Recorder struct {
	store   Results
	logger  *log.Logger
	timeout time.Duration

	mu     sync.Mutex
	closed bool
	queue  chan recordJob
	done   chan struct{}
}

var _ defender.ResultSink = (*Recorder)(nil)

// NewRecorder starts a recorder writing to store. A zero timeout means 5s
// per save; a nil logger discards messages.
func NewRecorder(store Results, logger *log.Logger, timeout time.Duration) *Recorder {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Recorder{
		store:   store,
		logger:  logger,
		timeout: timeout,
		queue:   make(chan recordJob, recorderQueueSize),
		done:    make(chan struct{}),
	}
	go r.run()
	return r
}

// RecordResult queues a result. It drops the result if the queue is full
// or the recorder is closed.
func (r *Recorder) RecordResult(res defender.SessionResult) {
	sent, closed := r.tryEnqueue(recordJob{result: res})
	switch {
	case closed:
		r.logger.Warn("result dropped, recorder closed", "player", res.PlayerName, "score", res.Score)
	case !sent:
		r.logger.Warn("result dropped, queue full", "player", res.PlayerName, "score", res.Score)
	}
}

// Flush waits until every result queued before the call has been handled.
func (r *Recorder) Flush(ctx context.Context) error {
	ch := make(chan struct{})
	for {
		sent, closed := r.tryEnqueue(recordJob{flushed: ch})
		if closed {
			return nil
		}
		if sent {
			break
		}
		select {
		case <-time.After(10 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Recorder) tryEnqueue(job recordJob) (sent, closed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false, true
	}
	select {
	case r.queue <- job:
		return true, false
	default:
		return false, false
	}
}

// Close drains the queue and stops the background goroutine.
// It does not close the underlying store.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()
	<-r.done
}

func (r *Recorder) run() {
	defer close(r.done)
	for job := range r.queue {
		if job.flushed != nil {
			close(job.flushed)
			continue
		}
		r.save(job.result)
	}
}

func (r *Recorder) save(res defender.SessionResult) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	id, err := r.store.SaveResult(ctx, res)
	if err != nil {
		r.logger.Error("failed to save result", "player", res.PlayerName, "score", res.Score, "err", err)
		return
	}
	r.logger.Info("result saved",
		"id", id,
		"player", res.PlayerName,
		"score", res.Score,
		"level", res.Level,
		"difficulty", res.DifficultyLabel,
	)
}
