package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/launchhub/business-portal/internal/core/domain"
	"github.com/launchhub/business-portal/internal/session"
)

const sessionKey = "session"

// WithSession decodes the session cookie once per request and attaches the
// resulting snapshot to the echo context. It never rejects: an absent,
// tampered, or expired cookie simply leaves no session attached.
func WithSession(mgr *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if sess := mgr.Current(c.Request()); sess != nil {
				c.Set(sessionKey, sess)
			}
			return next(c)
		}
	}
}

// CurrentSession returns the session attached by WithSession, or nil when
// the request is unauthenticated.
func CurrentSession(c echo.Context) *domain.Session {
	sess, _ := c.Get(sessionKey).(*domain.Session)
	return sess
}

// WantsJSON reports whether the client is an API consumer rather than a
// browser navigation, deciding between a JSON error and a redirect.
func WantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		return true
	}
	return strings.Contains(r.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}
