// Package auth stores the bearer token sent to the todo API.
package auth

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// EnvToken overrides the credentials file.
const EnvToken = "TADA_TOKEN"

// Source says where the active token came from.
type Source string

const (
	SourceEnv  Source = "env"
	SourceFile Source = "file"
)

type TokenInfo struct {
	Token     string     `json:"token"`
	Source    Source     `json:"source"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at"` // from the JWT exp claim, if any
}

// Store keeps credentials under a config directory.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store { return &Store{Dir: dir} }

// Get returns the active token, or nil when not logged in. TADA_TOKEN wins
// over the saved file.
func (s *Store) Get() (*TokenInfo, error) {
	if tok := normalizeToken(os.Getenv(EnvToken)); tok != "" {
		return &TokenInfo{Token: tok, Source: SourceEnv}, nil
	}
	ti, err := s.read()
	if err != nil || ti == nil {
		return nil, err
	}
	ti.Token = normalizeToken(ti.Token)
	return ti, nil
}

// Set saves token to the credentials file. A leading "Bearer " is dropped.
func (s *Store) Set(token string, expires *time.Time) error {
	tok := normalizeToken(token)
	if tok == "" {
		return fmt.Errorf("empty token")
	}
	return s.write(&TokenInfo{
		Token:     tok,
		Source:    SourceFile,
		CreatedAt: time.Now(),
		ExpiresAt: expires,
	})
}

// Delete removes the credentials file. It is not an error if there is none.
func (s *Store) Delete() error { return s.remove() }

// TokenSource returns a static oauth2 source for the active token,
// or nil when there is none.
func (s *Store) TokenSource() (oauth2.TokenSource, error) {
	ti, err := s.Get()
	if err != nil || ti == nil || ti.Token == "" {
		return nil, err
	}
	tok := &oauth2.Token{AccessToken: ti.Token, TokenType: "Bearer"}
	if ti.ExpiresAt != nil {
		tok.Expiry = *ti.ExpiresAt
	}
	return oauth2.StaticTokenSource(tok), nil
}

func normalizeToken(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 7 && strings.EqualFold(s[:7], "bearer ") {
		s = strings.TrimSpace(s[7:])
	}
	return s
}
