// Package storage persists finished Space Defender sessions in a
// game_results table and serves the high-score listings. Plain paths open
// the pure-Go SQLite store; postgres:// URLs open a PostgreSQL pool.
package storage

import (
	"context"
	"strings"
	"time"

	"github.com/vovakirdan/space-defender/internal/games/defender"
)

// DefaultLimit is the number of rows returned when no limit is given.
const DefaultLimit = 10

// ResultEntry is one row of the high-score table.
type ResultEntry struct {
	ID         int64
	PlayerName string
	Score      int
	Level      int
	Difficulty string
	AchievedOn time.Time
}

// Stats contains aggregated statistics over all stored results.
type Stats struct {
	Games      int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Results is a store of finished sessions.
type Results interface {
	// SaveResult inserts a row and returns its ID. achieved_on is set by the store.
	SaveResult(ctx context.Context, res defender.SessionResult) (int64, error)
	// TopResults returns up to limit rows by descending score.
	TopResults(ctx context.Context, limit int) ([]ResultEntry, error)
	// HighScore returns the best score, or 0 if the table is empty.
	HighScore(ctx context.Context) (int, error)
	Stats(ctx context.Context) (Stats, error)
	Clear(ctx context.Context) error
	Close() error
}

// Open connects to the store named by dsn and applies pending migrations.
func Open(ctx context.Context, dsn string) (Results, error) {
	if IsPostgres(dsn) {
		return OpenPostgres(ctx, dsn)
	}
	return OpenSQLite(ctx, dsn)
}

// IsPostgres reports whether dsn is a PostgreSQL connection URL.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

// parseTime handles drivers that return timestamps as either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}
