package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/launchhub/business-portal/internal/api/metrics"
	"github.com/launchhub/business-portal/internal/core/domain"
	"github.com/launchhub/business-portal/internal/core/ports"
	"github.com/launchhub/business-portal/internal/session"
)

// UserHandler owns self-service profile edits and admin user management.
type UserHandler struct {
	userService ports.UserService
	sessions    *session.Manager
}

func NewUserHandler(userService ports.UserService, sessions *session.Manager) *UserHandler {
	return &UserHandler{userService: userService, sessions: sessions}
}

type profileRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	State    *string `json:"state,omitempty"`
	Zip      *string `json:"zip,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
	OptOut   *bool   `json:"opt_out,omitempty"`
}

// UpdateMe edits the caller's own profile and re-issues the session cookie
// so the embedded snapshot reflects the edit immediately.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      profileRequest  true  "Profile fields"
// @Success      200   {object}  sessionResponse
// @Router       /me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), sess.UserID, ports.ProfileUpdateInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		Zip:      req.Zip,
		PhotoURL: req.PhotoURL,
		OptOut:   req.OptOut,
	})
	if err != nil {
		return err
	}

	if _, err := h.sessions.Refresh(c.Request().Context(), c.Response(), user.ID); err != nil {
		return err
	}
	metrics.SessionsIssuedTotal.WithLabelValues("refresh").Inc()

	return c.JSON(http.StatusOK, sessionResponse{User: user})
}

// List returns every user account. Admin only.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns one user account. Admin only.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

type accessRequest struct {
	Role               *string `json:"role,omitempty" validate:"omitempty,oneof=admin internal external"`
	CanApproveRequests *bool   `json:"can_approve_requests,omitempty"`
}

// UpdateAccess changes a user's role or permission flags. Admin only.
//
// @Summary      Update a user's role and flags
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "User ID"
// @Param        body  body      accessRequest  true  "Access fields"
// @Success      200   {object}  domain.User
// @Router       /admin/users/{id} [put]
func (h *UserHandler) UpdateAccess(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req accessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.AccessUpdateInput{CanApproveRequests: req.CanApproveRequests}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userService.UpdateAccess(c.Request().Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
