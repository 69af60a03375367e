package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/emrekaya/todo/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// The whole list is rewritten on every save; no locking, fine for a
// local single-user app.

const dataFileName = "todos.json"

// DefaultPath returns <cwd>/todos.json.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, dataFileName), nil
}

// Store reads and writes one todo list at a fixed path.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads the list from disk. A missing file means first run and
// yields an empty list. A file that exists but does not parse also
// yields an empty list, with a warning; the broken file is left alone
// until the next save overwrites it.
func (s *Store) Load() ([]model.Item, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		log.Warn("ignoring malformed todos file", "path", s.path, "err", err)
		return []model.Item{}, nil
	}
	return items, nil
}

// Save writes the full list, pretty-printed, overwriting the file.
func (s *Store) Save(items []model.Item) error {
	if items == nil {
		items = []model.Item{} // an empty list is "[]", never "null"
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
