// Package storage provides SQLite-based persistence for finished match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only results are stored; a match in progress is never persisted.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// End reasons recorded with a match.
const (
	EndCompleted = "completed" // A fleet was destroyed
	EndAbandoned = "abandoned" // The human left before the end
)

// Winner values recorded with a match.
const (
	WinnerHuman    = "human"
	WinnerComputer = "computer"
)

// Store manages the SQLite database connection for the match journal.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished (or abandoned) match.
type MatchRecord struct {
	ID          int64
	MatchID     string // UUID, generated on save when empty
	Player      string // Local user or SSH user name
	Winner      string // WinnerHuman, WinnerComputer, or empty when abandoned
	EndReason   string
	BoardSize   int
	Moves       int
	HumanShots  int
	HumanHits   int
	CPUShots    int
	CPUHits     int
	DurationSec int
	CreatedAt   time.Time
}

// Accuracy returns the human hit ratio in [0, 1].
func (r MatchRecord) Accuracy() float64 {
	if r.HumanShots == 0 {
		return 0
	}
	return float64(r.HumanHits) / float64(r.HumanShots)
}

// Summary aggregates a player's record.
type Summary struct {
	Played    int
	Won       int
	Lost      int
	Abandoned int
	LastPlay  time.Time
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			winner TEXT,
			end_reason TEXT NOT NULL,
			board_size INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			human_shots INTEGER NOT NULL DEFAULT 0,
			human_hits INTEGER NOT NULL DEFAULT 0,
			cpu_shots INTEGER NOT NULL DEFAULT 0,
			cpu_hits INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_player ON matches(player);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveMatch records a match and returns the row ID.
// rec.MatchID is filled with a new UUID when empty.
func (s *Store) SaveMatch(rec *MatchRecord) (int64, error) {
	if rec.MatchID == "" {
		rec.MatchID = uuid.NewString()
	}

	var winner sql.NullString
	if rec.Winner != "" {
		winner = sql.NullString{String: rec.Winner, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, player, winner, end_reason, board_size, moves,
		  human_shots, human_hits, cpu_shots, cpu_hits, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID, rec.Player, winner, rec.EndReason, rec.BoardSize, rec.Moves,
		rec.HumanShots, rec.HumanHits, rec.CPUShots, rec.CPUHits, rec.DurationSec,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	rec.ID = id
	return id, nil
}

const selectMatch = `SELECT id, match_id, player, winner, end_reason, board_size, moves,
	        human_shots, human_hits, cpu_shots, cpu_hits, duration_secs, created_at
	 FROM matches`

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchRecord, error) {
	var rec MatchRecord
	var winner sql.NullString
	var createdAt any
	err := row.Scan(
		&rec.ID, &rec.MatchID, &rec.Player, &winner, &rec.EndReason, &rec.BoardSize, &rec.Moves,
		&rec.HumanShots, &rec.HumanHits, &rec.CPUShots, &rec.CPUHits, &rec.DurationSec, &createdAt,
	)
	if err != nil {
		return rec, err
	}
	if winner.Valid {
		rec.Winner = winner.String
	}
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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

// MatchByID retrieves a match by its UUID. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	rec, err := scanMatch(s.db.QueryRow(selectMatch+` WHERE match_id = ?`, matchID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &rec, nil
}

// RecentMatches retrieves the most recent matches, newest first.
// An empty player returns matches of every player.
func (s *Store) RecentMatches(player string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		selectMatch+` WHERE ? = '' OR player = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Summary returns win/loss counts. An empty player aggregates everyone.
func (s *Store) Summary(player string) (Summary, error) {
	var sum Summary
	var lastPlay any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN end_reason = ? THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM matches WHERE ? = '' OR player = ?`,
		WinnerHuman, WinnerComputer, EndAbandoned, player, player,
	).Scan(&sum.Played, &sum.Won, &sum.Lost, &sum.Abandoned, &lastPlay)
	if err != nil {
		return sum, fmt.Errorf("storage: cannot get summary: %w", err)
	}
	sum.LastPlay = parseTime(lastPlay)
	return sum, nil
}

// ClearMatches deletes the journal of a player, or everything for an empty player.
func (s *Store) ClearMatches(player string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE ? = '' OR player = ?", player, player)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
