package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/launchhub/business-portal/internal/api/metrics"
	"github.com/launchhub/business-portal/internal/api/middleware"
	"github.com/launchhub/business-portal/internal/core/domain"
	"github.com/launchhub/business-portal/internal/core/ports"
	"github.com/launchhub/business-portal/internal/session"
)

// AuthHandler owns the authentication entry points: login, logout, and the
// current-session accessor.
type AuthHandler struct {
	authService ports.AuthService
	sessions    *session.Manager
}

func NewAuthHandler(authService ports.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	User *domain.User `json:"user"`
}

// Login verifies credentials and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginOutcome(err)).Inc()
		return err
	}

	if _, err := h.sessions.Issue(c.Response(), user); err != nil {
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.SessionsIssuedTotal.WithLabelValues("login").Inc()

	return c.JSON(http.StatusOK, sessionResponse{User: user})
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	case errors.Is(err, domain.ErrAccountPending):
		return "pending"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "error"
	}
}

// Logout clears the session cookie. There is no server-side session state
// to revoke.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Response())
	if middleware.WantsJSON(c.Request()) {
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}

// Me returns the current session snapshot; usable by any downstream view.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"session":   sess,
		"view_mode": session.ViewMode(c.Request()),
	})
}

// SetViewMode stores the admin display toggle in its own cookie. The toggle
// is presentational only; authorization decisions never read it.
//
// @Summary      Set display view mode
// @Tags         auth
// @Param        view  query  string  true  "internal or admin"
// @Success      204
// @Router       /view-mode [get]
func (h *AuthHandler) SetViewMode(c echo.Context) error {
	mode := c.QueryParam("view")
	if mode != "internal" && mode != "admin" {
		return echo.NewHTTPError(http.StatusBadRequest, "view must be internal or admin")
	}
	session.SetViewMode(c.Response(), mode)
	return c.NoContent(http.StatusNoContent)
}
