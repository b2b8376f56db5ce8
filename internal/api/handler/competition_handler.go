package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/launchhub/business-portal/internal/core/ports"
)

// CompetitionHandler owns pitch-competition endpoints.
type CompetitionHandler struct {
	competitionService ports.CompetitionService
}

func NewCompetitionHandler(competitionService ports.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{competitionService: competitionService}
}

type createCompetitionRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline" validate:"required"`
}

// Create opens a new competition. Admin only.
//
// @Summary      Create a competition
// @Tags         competitions
// @Accept       json
// @Produce      json
// @Param        body  body      createCompetitionRequest  true  "Competition"
// @Success      201   {object}  domain.Competition
// @Router       /admin/competitions [post]
func (h *CompetitionHandler) Create(c echo.Context) error {
	var req createCompetitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !req.Deadline.After(time.Now()) {
		return echo.NewHTTPError(http.StatusBadRequest, "deadline must be in the future")
	}

	comp, err := h.competitionService.Create(c.Request().Context(), ports.CompetitionInput{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comp)
}

// List returns all competitions.
//
// @Summary      List competitions
// @Tags         competitions
// @Produce      json
// @Success      200  {array}  domain.Competition
// @Router       /competitions [get]
func (h *CompetitionHandler) List(c echo.Context) error {
	comps, err := h.competitionService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comps)
}

type enterRequest struct {
	PitchSummary string `json:"pitch_summary" validate:"required"`
	DeckURL      string `json:"deck_url"`
}

// Enter submits the caller's entry to a competition.
//
// @Summary      Enter a competition
// @Tags         competitions
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Competition ID"
// @Param        body  body      enterRequest  true  "Entry"
// @Success      201   {object}  domain.Entry
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /competitions/{id}/entries [post]
func (h *CompetitionHandler) Enter(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req enterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.competitionService.Enter(c.Request().Context(), ports.EntryInput{
		CompetitionID: id,
		EntrantID:     sess.UserID,
		PitchSummary:  req.PitchSummary,
		DeckURL:       req.DeckURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

// Entries lists the entries of one competition. Internal staff and admins.
//
// @Summary      List competition entries
// @Tags         competitions
// @Produce      json
// @Param        id  path  int  true  "Competition ID"
// @Success      200  {array}  domain.Entry
// @Router       /competitions/{id}/entries [get]
func (h *CompetitionHandler) Entries(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	entries, err := h.competitionService.Entries(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
