package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Session is the signed-in identity saved by "sprout login". A zero Session
// means guest.
type Session struct {
	UserID     string    `json:"userId"`
	SignedInAt time.Time `json:"signedInAt"`
}

// SessionStore persists the session as a small JSON file.
type SessionStore struct {
	Path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{Path: path}
}

// Load returns the saved session, or a zero Session when none exists.
func (s *SessionStore) Load() (Session, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("reading session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("parsing session %s: %w", s.Path, err)
	}
	return sess, nil
}

func (s *SessionStore) Save(sess Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Clear removes the saved session. Clearing an absent session is not an error.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session: %w", err)
	}
	return nil
}
