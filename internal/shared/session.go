package shared

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/desertthunder/slowdive/internal/models"
)

// SessionStore persists the viewer's cached identity (user id, username and
// the backend session token) as JSON on disk. It is loaded once at startup
// and handed to every consumer that needs identity, rather than read ad hoc.
//
// The store is a cache: the backend owns the real session and may expire it
// at any time, which surfaces as a 401 on the next authenticated call.
type SessionStore struct {
	path    string
	current *models.Session
}

// NewSessionStore creates a store backed by the file at path.
// An empty path defaults to ~/.slowdive/session.json.
func NewSessionStore(path string) (*SessionStore, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".slowdive", "session.json")
	}

	s := &SessionStore{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads the session file if present. A missing file means signed out.
func (s *SessionStore) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return fmt.Errorf("failed to parse session file: %w", err)
	}

	s.current = &session
	return nil
}

// Current returns the cached session, or nil when signed out.
func (s *SessionStore) Current() *models.Session {
	return s.current
}

// Path returns the backing file location.
func (s *SessionStore) Path() string {
	return s.path
}

// Save persists a new session, replacing any previous one.
func (s *SessionStore) Save(session models.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	s.current = &session
	return nil
}

// Clear removes the session file and forgets the cached identity.
func (s *SessionStore) Clear() error {
	s.current = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
