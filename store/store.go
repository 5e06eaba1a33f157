// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/danielhkuo/survey-collect/models"
)

// ErrNotFound is returned when the response log has never been written.
var ErrNotFound = errors.New("response store not initialized")

// Store persists the ordered, append-only list of survey responses as a
// JSON array on disk. Every operation is a full read or a full
// read-modify-write; a mutex serializes them so concurrent submissions
// cannot lose an append.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a Store backed by the JSON file at path. The file is not
// created until the first successful Append.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing JSON file.
func (s *Store) Path() string {
	return s.path
}

// Append adds rec to the end of the log and writes the full list back.
// It returns the complete post-append list; the new total is its length.
// A missing backing file is treated as an empty log, not an error.
func (s *Store) Append(rec models.Response) ([]models.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	all = append(all, rec)
	if err := s.save(all); err != nil {
		return nil, err
	}
	return all, nil
}

// ReadAll returns every persisted response in submission order. It
// returns ErrNotFound if the backing file has never been written.
func (s *Store) ReadAll() ([]models.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]models.Response, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read response log: %w", err)
	}

	var all []models.Response
	if err := json.Unmarshal(data, &all); err != nil {
		// A corrupt log reads as empty; the next successful append
		// rewrites the file with well-formed content.
		slog.Warn("response log is malformed, treating as empty", "path", s.path, "error", err)
		return []models.Response{}, nil
	}
	return all, nil
}

func (s *Store) save(all []models.Response) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encode response log: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write response log: %w", err)
	}
	return nil
}
