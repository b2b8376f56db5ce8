package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/launchhub/business-portal/internal/api/metrics"
	"github.com/launchhub/business-portal/internal/authz"
)

// Safe landing targets after a denial. The gate itself never renders; this
// middleware translates its classification into a response.
const (
	loginPath     = "/login"
	dashboardPath = "/"
)

// Require enforces the given authorization requirement on every request that
// passes through it. Unauthenticated browsers are sent to the login page and
// forbidden ones back to the dashboard; API clients get 401/403 instead.
// Restricted resources are never described beyond the denial itself.
func Require(requirement authz.Requirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := authz.Authorize(CurrentSession(c), requirement)
			if decision == authz.Allow {
				return next(c)
			}

			metrics.AuthzDenialsTotal.WithLabelValues(decision.String()).Inc()

			switch decision {
			case authz.DenyUnauthenticated:
				if WantsJSON(c.Request()) {
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}
				return c.Redirect(http.StatusSeeOther, loginPath)
			default:
				if WantsJSON(c.Request()) {
					return echo.NewHTTPError(http.StatusForbidden, "forbidden")
				}
				return c.Redirect(http.StatusSeeOther, dashboardPath)
			}
		}
	}
}
