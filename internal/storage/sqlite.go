package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/space-defender/internal/games/defender"
)

// SQLiteStore keeps results in a local SQLite file.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
type SQLiteStore struct {
	db *sql.DB
}

var _ Results = (*SQLiteStore)(nil)

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer at a time; SQLite serializes anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	if err := runMigrations(ctx, db, "sqlite3", "migrations/sqlite"); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished session.
func (s *SQLiteStore) SaveResult(ctx context.Context, res defender.SessionResult) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO game_results (player_name, score, level, difficulty) VALUES (?, ?, ?, ?)",
		res.PlayerName, res.Score, res.Level, res.DifficultyLabel,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopResults retrieves the best results, highest score first.
// Ties keep insertion order.
func (s *SQLiteStore) TopResults(ctx context.Context, limit int) ([]ResultEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player_name, score, level, difficulty, achieved_on
		 FROM game_results
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		normalizeLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var achievedOn any
		if err := rows.Scan(&e.ID, &e.PlayerName, &e.Score, &e.Level, &e.Difficulty, &achievedOn); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.AchievedOn = parseTime(achievedOn)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest stored score, or 0 if none exist.
func (s *SQLiteStore) HighScore(ctx context.Context) (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRowContext(ctx, "SELECT MAX(score) FROM game_results").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates every stored result.
func (s *SQLiteStore) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	var lastPlayed any
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(achieved_on)
		 FROM game_results`,
	).Scan(&st.Games, &st.HighScore, &st.AvgScore, &lastPlayed)
	if err != nil {
		return st, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)
	return st, nil
}

// Clear deletes all results.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM game_results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
