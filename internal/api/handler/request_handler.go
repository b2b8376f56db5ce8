package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/launchhub/business-portal/internal/api/metrics"
	"github.com/launchhub/business-portal/internal/core/domain"
	"github.com/launchhub/business-portal/internal/core/ports"
)

// RequestHandler owns the account-request lifecycle endpoints.
type RequestHandler struct {
	requestService ports.RequestService
}

func NewRequestHandler(requestService ports.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
}

// Signup files a self-service account request. The account stays pending
// until a reviewer decides it.
//
// @Summary      Request an account
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  domain.AccountRequest
// @Failure      409   {object}  map[string]string
// @Router       /signup [post]
func (h *RequestHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.requestService.Submit(c.Request().Context(), ports.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// ListPending returns the undecided account requests. Reviewer-gated.
//
// @Summary      List pending account requests
// @Tags         requests
// @Produce      json
// @Success      200  {array}  domain.AccountRequest
// @Router       /requests [get]
func (h *RequestHandler) ListPending(c echo.Context) error {
	pending, err := h.requestService.ListPending(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pending)
}

type approveRequest struct {
	Role string `json:"role" validate:"required,oneof=admin internal external"`
}

// Approve activates the requesting user with the assigned role.
//
// @Summary      Approve an account request
// @Tags         requests
// @Accept       json
// @Param        id    path  int             true  "Request ID"
// @Param        body  body  approveRequest  true  "Role to assign"
// @Success      204
// @Router       /requests/{id}/approve [post]
func (h *RequestHandler) Approve(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req approveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.requestService.Approve(c.Request().Context(), id, domain.Role(req.Role), sess.UserID); err != nil {
		return err
	}
	metrics.RequestDecisionsTotal.WithLabelValues("approved").Inc()
	return c.NoContent(http.StatusNoContent)
}

type denyRequest struct {
	Note string `json:"note"`
}

// Deny rejects the account request.
//
// @Summary      Deny an account request
// @Tags         requests
// @Accept       json
// @Param        id    path  int          true  "Request ID"
// @Param        body  body  denyRequest  false "Optional note"
// @Success      204
// @Router       /requests/{id}/deny [post]
func (h *RequestHandler) Deny(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req denyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.requestService.Deny(c.Request().Context(), id, req.Note, sess.UserID); err != nil {
		return err
	}
	metrics.RequestDecisionsTotal.WithLabelValues("denied").Inc()
	return c.NoContent(http.StatusNoContent)
}
