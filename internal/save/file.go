package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/campfire-cantos/internal/game"
)

const maxSaveBytes = 4 << 20

type FileStore struct {
	Path string
}

func (s *FileStore) Save(ctx context.Context, snap game.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "save-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		return err
	}

	cleanup = false
	return nil
}

func (s *FileStore) Load(ctx context.Context) (game.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return game.Snapshot{}, err
	}
	f, err := os.Open(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return game.Snapshot{}, fmt.Errorf("%s: %w", s.Path, ErrNotFound)
	}
	if err != nil {
		return game.Snapshot{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSaveBytes+1))
	if err != nil {
		return game.Snapshot{}, err
	}
	if len(data) > maxSaveBytes {
		return game.Snapshot{}, fmt.Errorf("%s: save file exceeds %d bytes", s.Path, maxSaveBytes)
	}
	var snap game.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return game.Snapshot{}, fmt.Errorf("parse save %s: %w", s.Path, err)
	}
	return snap, nil
}

func (s *FileStore) Close() error { return nil }
