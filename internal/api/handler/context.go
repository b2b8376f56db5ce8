package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/launchhub/business-portal/internal/api/middleware"
	"github.com/launchhub/business-portal/internal/core/domain"
)

// ctxSession extracts the session attached by the session middleware and
// fast-fails when a handler that sits behind the gate somehow runs without
// one. The gate is the enforcement point; this is a belt check before any
// service call dereferences the session.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return sess, nil
}
