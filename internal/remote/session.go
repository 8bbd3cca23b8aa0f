package remote

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// SessionCache holds the bearer token for the firm's backend. It is an
// explicit object passed by reference to the client rather than ambient
// global state, so it can be replaced with a fake in tests. The token is
// persisted to a file in the library directory and cleared on auth failure
// (the logout-equivalent lifecycle).
type SessionCache struct {
	mu    sync.RWMutex
	token string
	path  string // empty for purely in-memory sessions
}

// NewSessionCache creates a session cache backed by tokenPath. An empty
// path keeps the session in memory only.
func NewSessionCache(tokenPath string) *SessionCache {
	s := &SessionCache{path: tokenPath}
	if tokenPath != "" {
		if data, err := os.ReadFile(tokenPath); err == nil {
			s.token = strings.TrimSpace(string(data))
		}
	}
	return s
}

// Token returns the current bearer token, empty when logged out.
func (s *SessionCache) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores a new token and persists it when a path is configured.
func (s *SessionCache) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	return os.WriteFile(s.path, []byte(token+"\n"), 0600)
}

// Clear invalidates the session, removing any persisted token.
func (s *SessionCache) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if s.path != "" {
		os.Remove(s.path)
	}
}
