package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/vovakirdan/space-defender/internal/games/defender"
)

// PostgresStore keeps results in a shared PostgreSQL database, so several
// SSH servers can publish to one leaderboard.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Results = (*PostgresStore)(nil)

// OpenPostgres connects a pool to dsn and applies pending migrations.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: parse dsn: %w", err)
	}
	poolCfg.MaxConns = 4

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("storage: connect to db: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: ping db: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	err = runMigrations(ctx, db, "postgres", "migrations/postgres")
	db.Close()
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close releases the pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveResult(ctx context.Context, res defender.SessionResult) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO game_results (player_name, score, level, difficulty)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		res.PlayerName, res.Score, res.Level, res.DifficultyLabel,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) TopResults(ctx context.Context, limit int) ([]ResultEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, player_name, score, level, difficulty, achieved_on
		 FROM game_results
		 ORDER BY score DESC, id ASC
		 LIMIT $1`,
		normalizeLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		if err := rows.Scan(&e.ID, &e.PlayerName, &e.Score, &e.Level, &e.Difficulty, &e.AchievedOn); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

func (s *PostgresStore) HighScore(ctx context.Context) (int, error) {
	var score int
	if err := s.pool.QueryRow(ctx, "SELECT COALESCE(MAX(score), 0) FROM game_results").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

func (s *PostgresStore) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	var lastPlayed *time.Time
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)::float8, MAX(achieved_on)
		 FROM game_results`,
	).Scan(&st.Games, &st.HighScore, &st.AvgScore, &lastPlayed)
	if err != nil {
		return st, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	if lastPlayed != nil {
		st.LastPlayed = *lastPlayed
	}
	return st, nil
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM game_results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
