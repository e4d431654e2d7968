package leaderboard

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno-server/uno/event"
)

type Entry struct {
	Name string `json:"name"`
	Wins int64  `json:"wins"`
}

// DB keeps the win count of every player that ever won a game.
type DB struct {
	*sql.DB
}

func NewDB(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if err := createTables(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS wins (
			name TEXT PRIMARY KEY,
			count INTEGER NOT NULL DEFAULT 0,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

func (db *DB) RecordWin(name string) error {
	_, err := db.Exec(`
		INSERT INTO wins (name, count)
		VALUES (?, 1)
		ON CONFLICT(name) DO UPDATE SET count = count + 1, updated_at = CURRENT_TIMESTAMP
	`, name)
	if err != nil {
		return fmt.Errorf("failed to record win for %s: %v", name, err)
	}
	return nil
}

func (db *DB) Wins(name string) (int64, error) {
	var wins int64
	err := db.QueryRow("SELECT count FROM wins WHERE name = ?", name).Scan(&wins)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get wins: %v", err)
	}
	return wins, nil
}

// Top lists the n best players, most wins first, ties by name.
func (db *DB) Top(n int) ([]Entry, error) {
	rows, err := db.Query("SELECT name, count FROM wins ORDER BY count DESC, name ASC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %v", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, n)
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.Name, &entry.Wins); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (db *DB) Close() error {
	return db.DB.Close()
}

// Recorder counts a win whenever a game it listens to has a winner.
type Recorder struct {
	db *DB
}

func NewRecorder(db *DB) *Recorder {
	return &Recorder{db: db}
}

func (r *Recorder) OnEvent(e event.Event) error {
	over, ok := e.(event.GameOver)
	if !ok || over.Winner == "" {
		return nil
	}
	log.Infof("leaderboard: %s won a game\n", over.Winner)
	return r.db.RecordWin(over.Winner)
}
