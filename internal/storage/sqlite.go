// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-reversi/internal/match"
	"github.com/vovakirdan/tui-reversi/internal/reversi"
)

// Store manages the SQLite database connection for game results.
type Store struct {
	db *sql.DB
}

// GameRecord represents a single stored game.
type GameRecord struct {
	ID         int64
	MatchID    string
	BlackName  string
	WhiteName  string
	BlackCount int
	WhiteCount int
	Winner     string // "black", "white" or empty for a draw or abandoned game
	EndReason  string // "completed" or "abandoned"
	Moves      int
	Passes     int
	Duration   int // Duration in seconds
	CreatedAt  time.Time
}

// WinnerName returns the name of the winning player, or empty.
func (r GameRecord) WinnerName() string {
	switch r.Winner {
	case winnerBlack:
		return r.BlackName
	case winnerWhite:
		return r.WhiteName
	default:
		return ""
	}
}

// Stats contains aggregated statistics over all stored games.
type Stats struct {
	Games      int
	BlackWins  int
	WhiteWins  int
	Draws      int
	Abandoned  int
	AvgMargin  float64 // Average disc difference of completed games
	LastPlayed time.Time
}

const (
	winnerBlack = "black"
	winnerWhite = "white"

	sqliteTimeLayout = "2006-01-02 15:04:05"
)

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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			black_name TEXT NOT NULL,
			white_name TEXT NOT NULL,
			black_count INTEGER NOT NULL DEFAULT 0,
			white_count INTEGER NOT NULL DEFAULT 0,
			winner TEXT,
			end_reason TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			passes INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_games_black ON games(black_name);
		CREATE INDEX IF NOT EXISTS idx_games_white ON games(white_name);
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

// SaveResult records a finished or abandoned match.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r match.Result) (int64, error) {
	if r.MatchID == "" {
		return 0, errors.New("storage: result has no match ID")
	}

	var winner sql.NullString
	switch r.Winner {
	case reversi.Black:
		winner = sql.NullString{String: winnerBlack, Valid: true}
	case reversi.White:
		winner = sql.NullString{String: winnerWhite, Valid: true}
	}

	res, err := s.db.Exec(
		`INSERT INTO games
		 (match_id, black_name, white_name, black_count, white_count, winner, end_reason, moves, passes, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID,
		r.BlackName,
		r.WhiteName,
		r.BlackCount,
		r.WhiteCount,
		winner,
		r.EndReason,
		r.Moves,
		r.Passes,
		int(r.Duration/time.Second),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveMatchResult implements match.ResultSaver.
func (s *Store) SaveMatchResult(r match.Result) error {
	_, err := s.SaveResult(r)
	return err
}

// Ensure Store implements ResultSaver
var _ match.ResultSaver = (*Store)(nil)

const selectGame = `SELECT id, match_id, black_name, white_name, black_count, white_count,
		        winner, end_reason, moves, passes, duration_secs, created_at
		 FROM games`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(sc rowScanner) (GameRecord, error) {
	var r GameRecord
	var winner sql.NullString
	var createdAt any

	err := sc.Scan(
		&r.ID,
		&r.MatchID,
		&r.BlackName,
		&r.WhiteName,
		&r.BlackCount,
		&r.WhiteCount,
		&winner,
		&r.EndReason,
		&r.Moves,
		&r.Passes,
		&r.Duration,
		&createdAt,
	)
	if err != nil {
		return r, err
	}

	if winner.Valid {
		r.Winner = winner.String
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ResultByMatchID retrieves a game by its match ID.
// Returns nil, nil if no such game exists.
func (s *Store) ResultByMatchID(matchID string) (*GameRecord, error) {
	row := s.db.QueryRow(selectGame+` WHERE match_id = ?`, matchID)

	r, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	return &r, nil
}

// RecentResults retrieves the most recent games, newest first.
func (s *Store) RecentResults(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(selectGame+` ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var results []GameRecord
	for rows.Next() {
		r, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// PlayerResults retrieves the most recent games a named player took part in.
func (s *Store) PlayerResults(name string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		selectGame+` WHERE black_name = ? OR white_name = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		name, name, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player games: %w", err)
	}
	defer rows.Close()

	var results []GameRecord
	for rows.Next() {
		r, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats retrieves aggregated statistics over all games.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner IS NULL AND end_reason = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN end_reason = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(CASE WHEN end_reason = ? THEN ABS(black_count - white_count) END), 0)
		 FROM games`,
		winnerBlack, winnerWhite, match.ReasonCompleted, match.ReasonAbandoned, match.ReasonCompleted,
	).Scan(&stats.Games, &stats.BlackWins, &stats.WhiteWins, &stats.Draws, &stats.Abandoned, &stats.AvgMargin)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM games ORDER BY created_at DESC, id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearResults deletes all stored games.
func (s *Store) ClearResults() error {
	_, err := s.db.Exec("DELETE FROM games")
	if err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}
