// Package save persists game snapshots. A path ending in .db or .sqlite is a
// SQLite database holding a history of saves; anything else is a JSON file.
package save

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/appengine-ltd/campfire-cantos/internal/game"
)

var ErrNotFound = errors.New("save not found")

type Store interface {
	Save(ctx context.Context, snap game.Snapshot) error
	Load(ctx context.Context) (game.Snapshot, error)
	Close() error
}

// ForPath picks the store for a save path.
func ForPath(path string) (Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(path)
	default:
		return &FileStore{Path: path}, nil
	}
}
