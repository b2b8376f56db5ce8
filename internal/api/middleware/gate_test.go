package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/launchhub/business-portal/internal/authz"
	"github.com/launchhub/business-portal/internal/core/domain"
	"github.com/launchhub/business-portal/internal/session"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func gateRequest(t *testing.T, requirement authz.Requirement, sess *domain.Session, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected?view=internal", nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		c.Set(sessionKey, sess)
	}

	err := Require(requirement)(okHandler)(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func jsonHeader() http.Header {
	h := http.Header{}
	h.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	return h
}

func TestRequire_Allow(t *testing.T) {
	sess := &domain.Session{UserID: 1, Role: domain.RoleExternal}
	rec := gateRequest(t, authz.Authenticated(), sess, nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("expected handler to run, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRequire_UnauthenticatedBrowser(t *testing.T) {
	rec := gateRequest(t, authz.Authenticated(), nil, nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestRequire_UnauthenticatedAPI(t *testing.T) {
	rec := gateRequest(t, authz.Authenticated(), nil, jsonHeader())
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequire_ForbiddenBrowser(t *testing.T) {
	sess := &domain.Session{UserID: 1, Role: domain.RoleExternal}
	rec := gateRequest(t, authz.MinRole(domain.RoleAdmin), sess, nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to the dashboard, got %q", loc)
	}
}

func TestRequire_ForbiddenAPI(t *testing.T) {
	sess := &domain.Session{UserID: 1, Role: domain.RoleInternal}
	rec := gateRequest(t, authz.MinRole(domain.RoleAdmin), sess, jsonHeader())
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

// The view-mode toggle is display-only; carrying it as a query parameter or
// cookie must never widen access.
func TestRequire_ViewModeDoesNotAuthorize(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected?view=admin", nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: session.ViewModeCookieName, Value: "admin"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(sessionKey, &domain.Session{UserID: 1, Role: domain.RoleExternal})

	err := Require(authz.MinRole(domain.RoleAdmin))(okHandler)(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("view-mode hints must not grant access, got %d", rec.Code)
	}
}

func TestWithSession(t *testing.T) {
	user := &domain.User{
		ID:       12,
		Name:     "Iris Wo",
		Email:    "iris@example.com",
		Role:     domain.RoleInternal,
		Approved: true,
	}
	repo := newStaticUserRepo(user)
	mgr := session.NewManager(session.NewCodec("fixture-secret"), repo, zerolog.Nop())

	issued := httptest.NewRecorder()
	if _, err := mgr.Issue(issued, user); err != nil {
		t.Fatalf("issue: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range issued.Result().Cookies() {
		req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *domain.Session
	err := WithSession(mgr)(func(c echo.Context) error {
		got = CurrentSession(c)
		return nil
	})(c)
	if err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if got == nil || got.UserID != user.ID {
		t.Fatalf("expected attached session for user %d, got %+v", user.ID, got)
	}
}

func TestWithSession_NoCookie(t *testing.T) {
	mgr := session.NewManager(session.NewCodec("fixture-secret"), newStaticUserRepo(), zerolog.Nop())

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	var got *domain.Session
	err := WithSession(mgr)(func(c echo.Context) error {
		got = CurrentSession(c)
		return nil
	})(c)
	if err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no session, got %+v", got)
	}
}

func TestWantsJSON(t *testing.T) {
	tests := []struct {
		accept, contentType string
		want                bool
	}{
		{"", "", false},
		{"text/html,application/xhtml+xml", "", false},
		{echo.MIMEApplicationJSON, "", true},
		{"", echo.MIMEApplicationJSON, true},
		{"application/json; charset=utf-8", "", true},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.accept != "" {
			req.Header.Set(echo.HeaderAccept, tc.accept)
		}
		if tc.contentType != "" {
			req.Header.Set(echo.HeaderContentType, tc.contentType)
		}
		if got := WantsJSON(req); got != tc.want {
			t.Fatalf("WantsJSON(accept=%q ct=%q) = %v, want %v", tc.accept, tc.contentType, got, tc.want)
		}
	}
}
