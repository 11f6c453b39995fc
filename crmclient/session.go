package crmclient

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// TokenStore persists the auth token between runs.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a single file, the equivalent of the
// mobile app's local storage.
type FileTokenStore struct {
	Path string
}

func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Save(token string) error {
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Session holds the logged-in state explicitly instead of hiding it behind
// package globals. NewSession reads the persisted token once; Clear is the
// teardown.
type Session struct {
	mu    sync.Mutex
	store TokenStore
	token string
}

func NewSession(store TokenStore) (*Session, error) {
	s := &Session{store: store}
	if store != nil {
		token, err := store.Load()
		if err != nil {
			return nil, err
		}
		s.token = token
	}
	return s, nil
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// SetToken persists the token before exposing it to callers.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store != nil {
		if err := s.store.Save(token); err != nil {
			return err
		}
	}
	s.token = token
	return nil
}

// Clear drops the token from memory and from the store.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store != nil {
		if err := s.store.Clear(); err != nil {
			return err
		}
	}
	s.token = ""
	return nil
}
