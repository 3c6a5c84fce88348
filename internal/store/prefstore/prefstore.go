package prefstore

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// TOML-backed client-local storage. Single file, human-readable.
// Holds only the theme flag; unknown keys are dropped on write.

// FileName is the default preferences file inside the config dir.
const FileName = "prefs.toml"

type prefs struct {
	Dark bool `toml:"dark"`
}

// Store persists the dark-mode preference.
type Store struct {
	path string
}

func New(path string) *Store { return &Store{path: path} }

// Dark reads the persisted flag. A missing file means light mode.
func (s *Store) Dark() (bool, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read prefs: %w", err)
	}
	var p prefs
	if _, err := toml.Decode(string(b), &p); err != nil {
		return false, fmt.Errorf("parse prefs %s: %w", s.path, err)
	}
	return p.Dark, nil
}

// SetDark writes the flag, creating the parent directory if needed.
func (s *Store) SetDark(dark bool) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(prefs{Dark: dark}); err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
