// Package session holds runtime state for the active controller.
package session

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"

	"github.com/frudas24/deskpilot/internal/calib"
	"github.com/frudas24/deskpilot/internal/geom"
)

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool
	AuthRequired  bool
	InputEnabled  bool
	Calib         calib.Calib
}

// Session holds runtime state for the active controller.
type Session struct {
	mu            sync.RWMutex
	password      string
	authenticated bool
	inputEnabled  bool
	calib         calib.Calib
}

// New returns an initialized session with the given password.
// An empty password disables authentication.
func New(password string) *Session {
	return &Session{
		password:     password,
		inputEnabled: true,
	}
}

// AuthRequired reports whether a password was configured.
func (s *Session) AuthRequired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.password != ""
}

// Authenticate validates the password and marks the session as authenticated.
func (s *Session) Authenticate(pass string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.password == "" || (pass != "" && s.matches(pass)) {
		s.authenticated = true
		return true
	}
	s.authenticated = false
	return false
}

// Logout clears authentication state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
}

// IsAuthenticated reports whether the session is authenticated.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.password == "" || s.authenticated
}

// Authorize accepts a request when auth is off, the session logged in, or a
// matching "Authorization: Bearer <password>" header is present.
func (s *Session) Authorize(r *http.Request) bool {
	if s.IsAuthenticated() {
		return true
	}
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matches(token)
}

// matches compares against the password in constant time. Callers hold mu.
func (s *Session) matches(pass string) bool {
	return subtle.ConstantTimeCompare([]byte(pass), []byte(s.password)) == 1
}

// SetInputEnabled toggles whether pointer commands reach the host.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether pointer commands reach the host.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// SetCalib stores calibration data.
func (s *Session) SetCalib(c calib.Calib) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calib = c
}

// GetCalib returns the current calibration data.
func (s *Session) GetCalib() calib.Calib {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calib
}

// Board returns the calibrated board area when one is stored.
func (s *Session) Board() (geom.BoardArea, bool) {
	c := s.GetCalib()
	return c.Board, c.HasBoard()
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Authenticated: s.password == "" || s.authenticated,
		AuthRequired:  s.password != "",
		InputEnabled:  s.inputEnabled,
		Calib:         s.calib,
	}
}
