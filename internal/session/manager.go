package session

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/launchhub/business-portal/internal/core/domain"
	"github.com/launchhub/business-portal/internal/core/ports"
)

// Manager issues, reads, refreshes and clears cookie-borne sessions.
//
// Every operation takes the request or response writer explicitly; the
// manager never reads ambient request state.
type Manager struct {
	codec *Codec
	users ports.UserRepository
	log   zerolog.Logger
}

func NewManager(codec *Codec, users ports.UserRepository, log zerolog.Logger) *Manager {
	return &Manager{codec: codec, users: users, log: log}
}

// Issue encodes a fresh session for the user and sets the session cookie.
func (m *Manager) Issue(w http.ResponseWriter, user *domain.User) (*domain.Session, error) {
	token, sess, err := m.codec.Encode(user)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}
	setCookie(w, token, sess.ExpiresAt)
	return sess, nil
}

// Current returns the session carried by the request's cookie, or nil when
// the cookie is absent, tampered with, or expired. Decode failures are
// deliberately collapsed: every caller treats "no session" the same way.
func (m *Manager) Current(r *http.Request) *domain.Session {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	sess, err := m.codec.Decode(c.Value)
	if err != nil {
		return nil
	}
	return sess
}

// Refresh re-reads the user row and re-issues the cookie so the embedded
// snapshot catches up with the database. Invoked after self-service profile
// edits; the new token gets a full TokenTTL window.
func (m *Manager) Refresh(ctx context.Context, w http.ResponseWriter, userID uint) (*domain.Session, error) {
	user, err := m.users.FindByID(ctx, userID)
	if err != nil {
		m.log.Error().Err(err).Uint("user_id", userID).Msg("session refresh lookup failed")
		return nil, fmt.Errorf("refresh session: %w", err)
	}
	return m.Issue(w, user)
}

// Logout overwrites the session cookie with an empty, already-expired value.
// Stateless tokens mean there is nothing server-side to clean up.
func (m *Manager) Logout(w http.ResponseWriter) {
	clearCookie(w)
}
