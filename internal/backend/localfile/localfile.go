// Package localfile implements storage.KV as a single JSON object file.
package localfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gtodo/internal/storage"
)

// Store keeps every key in one JSON object on disk.
// Each Set rewrites the file through a temp file and rename.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

var _ storage.KV = (*Store)(nil)

// New creates a store backed by the file at path. The file is created on
// first Set; its parent directory is created now.
func New(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{path: path, logger: logger}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// CorruptPath returns where an unparsable store file is moved.
func (s *Store) CorruptPath() string {
	return s.path + ".corrupt"
}

// Get implements storage.KV.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

// Set implements storage.KV.
func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	data[key] = value
	return s.write(data)
}

// Close implements storage.KV.
func (s *Store) Close() error {
	return nil
}

func (s *Store) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	data := make(map[string]string)
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return s.quarantine(err)
	}
	return data, nil
}

// quarantine moves an unparsable store file to CorruptPath and starts over
// empty. The damaged bytes are kept for manual recovery.
func (s *Store) quarantine(cause error) (map[string]string, error) {
	aside := s.CorruptPath()
	if err := os.Rename(s.path, aside); err != nil {
		return nil, fmt.Errorf("corrupt store file %s: %w (and could not move it aside: %v)", s.path, cause, err)
	}
	s.logger.Warn("store file is not valid JSON, starting empty",
		"path", s.path, "moved_to", aside, "error", cause)
	return make(map[string]string), nil
}

func (s *Store) write(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".store-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	s.logger.Debug("store file written", "path", s.path, "keys", len(data))
	return nil
}
