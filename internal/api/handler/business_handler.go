package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/launchhub/business-portal/internal/core/ports"
)

// BusinessHandler owns business-profile management. Admin only at the
// routing layer.
type BusinessHandler struct {
	businessService ports.BusinessService
}

func NewBusinessHandler(businessService ports.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

type businessRequest struct {
	OwnerID     uint   `json:"owner_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Website     string `json:"website" validate:"omitempty,url"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
}

// Create adds a business profile for a user.
//
// @Summary      Create a business
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      businessRequest  true  "Business"
// @Success      201   {object}  domain.Business
// @Router       /admin/businesses [post]
func (h *BusinessHandler) Create(c echo.Context) error {
	var req businessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	b, err := h.businessService.Create(c.Request().Context(), req.OwnerID, ports.BusinessInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, b)
}

// List returns business profiles; include_archived=true adds archived ones.
func (h *BusinessHandler) List(c echo.Context) error {
	includeArchived := c.QueryParam("include_archived") == "true"
	businesses, err := h.businessService.List(c.Request().Context(), includeArchived)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, businesses)
}

// Get returns one business profile.
func (h *BusinessHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	b, err := h.businessService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

// Update edits a business profile.
func (h *BusinessHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req businessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	b, err := h.businessService.Update(c.Request().Context(), id, ports.BusinessInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

// Archive flags a business archived. Businesses are never hard-deleted.
//
// @Summary      Archive a business
// @Tags         admin
// @Param        id  path  int  true  "Business ID"
// @Success      204
// @Router       /admin/businesses/{id}/archive [post]
func (h *BusinessHandler) Archive(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.businessService.Archive(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
