// Package jsonfile stores marketplace snapshots as a single JSON document on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aaravmahajanofficial/templatehub/internal/storage"
)

type Engine struct {
	path string
}

func New(path string) *Engine {
	return &Engine{path: path}
}

func (e *Engine) Path() string {
	return e.path
}

func (e *Engine) Load(ctx context.Context) (*storage.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(e.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storage.ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", e.path, err)
	}

	var header struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot file %s: %w", e.path, err)
	}
	if header.Version != storage.CurrentVersion {
		return nil, storage.ErrVersionMismatch
	}

	snap := &storage.Snapshot{}
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot file %s: %w", e.path, err)
	}

	return snap, nil
}

// Save writes to a temp file in the same directory and renames it over the
// previous snapshot, so readers never observe a partial document.
func (e *Engine) Save(ctx context.Context, snap *storage.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(e.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(e.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, e.path); err != nil {
		return fmt.Errorf("failed to replace snapshot file %s: %w", e.path, err)
	}

	return nil
}

// Ping fails when the data directory cannot be used. A missing directory is
// fine; Save creates it.
func (e *Engine) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(e.path)
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat data directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data path %s is not a directory", dir)
	}

	return nil
}

func (e *Engine) Close() error {
	return nil
}
