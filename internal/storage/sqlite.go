// Package storage provides SQLite-based persistence for battle results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for battle persistence.
type Store struct {
	db *sql.DB
}

// BattleRecord represents one finished battle.
type BattleRecord struct {
	ID           int64
	GameID       string
	Won          bool
	Score        int
	Shots        int
	Hits         int
	ShipsSunk    int
	ShipsLost    int
	DurationSecs int
	CreatedAt    time.Time
}

// Accuracy returns the hit ratio in percent, 0 for a battle with no shots.
func (b BattleRecord) Accuracy() float64 {
	if b.Shots == 0 {
		return 0
	}
	return float64(b.Hits) / float64(b.Shots) * 100
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS battles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL,
			shots INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			ships_sunk INTEGER NOT NULL DEFAULT 0,
			ships_lost INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_battles_game_id ON battles(game_id);
		CREATE INDEX IF NOT EXISTS idx_battles_top ON battles(game_id, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBattle records a finished battle.
// Returns the ID of the inserted record.
func (s *Store) SaveBattle(rec BattleRecord) (int64, error) {
	won := 0
	if rec.Won {
		won = 1
	}
	result, err := s.db.Exec(
		`INSERT INTO battles
		 (game_id, won, score, shots, hits, ships_sunk, ships_lost, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.GameID, won, rec.Score, rec.Shots, rec.Hits,
		rec.ShipsSunk, rec.ShipsLost, rec.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save battle: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestBattles retrieves the top N battles for a variant by score.
func (s *Store) BestBattles(gameID string, limit int) ([]BattleRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryBattles(
		`SELECT id, game_id, won, score, shots, hits, ships_sunk, ships_lost, duration_secs, created_at
		 FROM battles
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentBattles retrieves the most recent battles across all variants.
func (s *Store) RecentBattles(limit int) ([]BattleRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryBattles(
		`SELECT id, game_id, won, score, shots, hits, ships_sunk, ships_lost, duration_secs, created_at
		 FROM battles
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// queryBattles runs a battle query and scans the rows.
func (s *Store) queryBattles(query string, args ...any) ([]BattleRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query battles: %w", err)
	}
	defer rows.Close()

	var records []BattleRecord
	for rows.Next() {
		var rec BattleRecord
		var won int
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.GameID, &won, &rec.Score, &rec.Shots,
			&rec.Hits, &rec.ShipsSunk, &rec.ShipsLost, &rec.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Won = won != 0
		rec.CreatedAt = parseTimestamp(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the given variant.
// Returns 0 if no battles exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM battles WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearBattles deletes all battles for the given variant.
func (s *Store) ClearBattles(gameID string) error {
	_, err := s.db.Exec("DELETE FROM battles WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear battles: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a variant.
type GameStats struct {
	GameID     string
	Battles    int
	Wins       int
	HighScore  int
	TotalShots int64
	TotalHits  int64
	LastPlayed time.Time
}

// Accuracy returns the all-time hit ratio in percent.
func (g GameStats) Accuracy() float64 {
	if g.TotalShots == 0 {
		return 0
	}
	return float64(g.TotalHits) / float64(g.TotalShots) * 100
}

// GetGameStats retrieves aggregated statistics for a specific variant.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(SUM(shots), 0), COALESCE(SUM(hits), 0)
		 FROM battles WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Battles, &stats.Wins, &stats.HighScore, &stats.TotalShots, &stats.TotalHits)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM battles WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// GetAllGamesStats retrieves statistics for every variant that has been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), SUM(won), MAX(score), SUM(shots), SUM(hits), MAX(created_at)
		 FROM battles
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var g GameStats
		var lastPlayed any
		if err := rows.Scan(&g.GameID, &g.Battles, &g.Wins, &g.HighScore,
			&g.TotalShots, &g.TotalHits, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		g.LastPlayed = parseTimestamp(lastPlayed)
		stats[g.GameID] = &g
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
