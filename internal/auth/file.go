package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const credFileName = "credentials.json"

func (s *Store) path() string { return filepath.Join(s.Dir, credFileName) }

// read returns nil, nil when no credentials file exists.
func (s *Store) read() (*TokenInfo, error) {
	b, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	ti := new(TokenInfo)
	if err := json.Unmarshal(b, ti); err != nil {
		return nil, fmt.Errorf("parse credentials %s: %w", s.path(), err)
	}
	return ti, nil
}

// write replaces the credentials file. Directory and file are owner-only.
func (s *Store) write(ti *TokenInfo) error {
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return fmt.Errorf("create %s: %w", s.Dir, err)
	}
	b, err := json.MarshalIndent(ti, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.WriteFile(s.path(), b, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

func (s *Store) remove() error {
	err := os.Remove(s.path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}
