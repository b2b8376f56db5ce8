package session

import (
	"net/http"
	"time"
)

const (
	// CookieName carries the signed session token.
	CookieName = "session"

	// ViewModeCookieName carries the admin display toggle. It is purely
	// presentational and never participates in authorization.
	ViewModeCookieName = "view_mode"
	// ViewModeTTL is the lifetime of the display toggle cookie.
	ViewModeTTL = 7 * 24 * time.Hour
)

func setCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetViewMode stores the display toggle. The cookie is readable by frontend
// scripts, which is fine: it only affects presentation.
func SetViewMode(w http.ResponseWriter, mode string) {
	http.SetCookie(w, &http.Cookie{
		Name:    ViewModeCookieName,
		Value:   mode,
		Path:    "/",
		Expires: time.Now().Add(ViewModeTTL),
	})
}

// ViewMode returns the stored display toggle, or empty when unset.
func ViewMode(r *http.Request) string {
	c, err := r.Cookie(ViewModeCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
