package save

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/appengine-ltd/campfire-cantos/internal/game"
)

// DefaultSlot is the slot a freshly opened store reads and writes.
const DefaultSlot = "campfire"

// SQLiteStore keeps every save as a row; Load returns the newest in Slot.
type SQLiteStore struct {
	db   *sql.DB
	Slot string
}

func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if err := createSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteStore{db: db, Slot: DefaultSlot}, nil
}

func createSchema(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS saves (
			id TEXT PRIMARY KEY,
			slot TEXT NOT NULL,
			session_id TEXT NOT NULL,
			version INTEGER NOT NULL,
			saved_at DATETIME NOT NULL,
			payload TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_saves_slot ON saves(slot);`,
	}
	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, snap game.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now().UTC()
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO saves (id, slot, session_id, version, saved_at, payload) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), s.Slot, snap.SessionID, snap.Version, savedAt, string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert save: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (game.Snapshot, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM saves WHERE slot = ? ORDER BY rowid DESC LIMIT 1`, s.Slot,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return game.Snapshot{}, fmt.Errorf("slot %q: %w", s.Slot, ErrNotFound)
	}
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("query save: %w", err)
	}
	var snap game.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return game.Snapshot{}, fmt.Errorf("parse save slot %q: %w", s.Slot, err)
	}
	return snap, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
