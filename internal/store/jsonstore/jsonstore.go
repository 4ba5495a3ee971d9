package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/shelf/internal/model"
)

// JSON-backed storage for the grocery list. Single file, human-readable.
// No locking; fine for a local single-user CLI.

const DefaultFileName = "groceries.json"

// File is a rows file on disk. An empty Path means DefaultFileName in the
// working directory.
type File struct {
	Path string
}

func (f File) dataPath() (string, error) {
	if f.Path != "" {
		return f.Path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, DefaultFileName), nil
}

// Exists reports whether the file is present.
func (f File) Exists() (bool, error) {
	p, err := f.dataPath()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat: %w", err)
	}
	return true, nil
}

// Load returns the saved rows; a missing file is an empty list.
func (f File) Load() ([]model.Row, error) {
	p, err := f.dataPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Row{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var rows []model.Row
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	for i := range rows {
		rows[i] = rows[i].WithID()
	}
	return rows, nil
}

// LoadOr returns the saved rows, or seed when nothing has been saved yet.
func (f File) LoadOr(seed []model.Row) ([]model.Row, error) {
	ok, err := f.Exists()
	if err != nil {
		return nil, err
	}
	if !ok {
		return seed, nil
	}
	return f.Load()
}

func (f File) Save(rows []model.Row) error {
	p, err := f.dataPath()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(p); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
