package file

import (
	"codeberg.org/miketth/hyprtint/pkg/settings"
	"errors"
	"fmt"
	"github.com/adrg/xdg"
	"io/fs"
	"os"
	"path/filepath"
)

const defaultName = "hyprtint/settings.dat"

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user settings location, creating its directory.
func DefaultPath() (string, error) {
	path, err := xdg.DataFile(defaultName)
	if err != nil {
		return "", fmt.Errorf("resolve data file: %w", err)
	}
	return path, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", settings.ErrNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// Write overwrites the file in place.
func (s *Store) Write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
