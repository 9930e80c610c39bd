// Package taskstore persists the task mapping as a single JSON
// document. The whole document is read into memory per operation and
// rewritten in full on every mutation; there is no locking, so the
// last writer wins under concurrent access.
package taskstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nash-app/nash-mcp/spec"
)

// Store reads and writes the durable task document at a fixed path.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Exists reports whether the durable document is present on disk.
func (s *Store) Exists() bool {
	st, err := os.Stat(s.path)
	return err == nil && !st.IsDir()
}

// Load reads the full task mapping. A missing document yields an
// empty mapping; an unparsable document yields spec.ErrCorruptStore.
func (s *Store) Load() (map[string]spec.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]spec.Task{}, nil
		}
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	var tasks map[string]spec.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %w", spec.ErrCorruptStore, err)
	}
	if tasks == nil {
		tasks = map[string]spec.Task{}
	}
	return tasks, nil
}

// LoadOrEmpty is the lenient variant used by the save path: an
// unparsable document is treated as an empty store and will be
// silently overwritten by the next Save.
func (s *Store) LoadOrEmpty() map[string]spec.Task {
	tasks, err := s.Load()
	if err != nil {
		return map[string]spec.Task{}
	}
	return tasks
}

// Save replaces the entire durable document with the given mapping.
// The parent directory is created if needed, and the write goes
// through a same-directory temp file renamed over the target so a
// crash mid-write cannot leave a torn document behind.
func (s *Store) Save(tasks map[string]spec.Task) error {
	if tasks == nil {
		tasks = map[string]spec.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create tasks dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp tasks file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write tasks file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close tasks file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace tasks file: %w", err)
	}
	return nil
}
