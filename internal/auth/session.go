// Package auth is the login stand-in: a username persisted under a
// single store key. There is no real authentication.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"courtside/internal/store"
)

// ErrUsernameRequired is returned by Login for blank usernames.
var ErrUsernameRequired = errors.New("username is required")

// Session tracks the logged-in user, mirrored into the persisted store
// so it survives restarts.
type Session struct {
	kv store.KV
}

// NewSession creates a session backed by the given store.
func NewSession(kv store.KV) *Session {
	return &Session{kv: kv}
}

// Login records username as the current user. The name is stored as
// given, apart from the blank check.
func (s *Session) Login(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameRequired
	}

	if err := s.kv.Set(store.UserKey, []byte(username)); err != nil {
		return fmt.Errorf("failed to store user: %w", err)
	}

	log.Info().Str("user", username).Msg("logged in")
	return nil
}

// CurrentUser returns the logged-in username, or found=false when no
// one is logged in.
func (s *Session) CurrentUser() (string, bool, error) {
	raw, found, err := s.kv.Get(store.UserKey)
	if err != nil {
		return "", false, fmt.Errorf("failed to read user: %w", err)
	}
	if !found {
		return "", false, nil
	}
	return string(raw), true, nil
}

// Logout clears the current user. Logging out with no one logged in is
// a no-op.
func (s *Session) Logout() error {
	if err := s.kv.Delete(store.UserKey); err != nil {
		return fmt.Errorf("failed to clear user: %w", err)
	}

	log.Info().Msg("logged out")
	return nil
}
