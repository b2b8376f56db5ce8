package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/launchhub/business-portal/internal/api/metrics"
	"github.com/launchhub/business-portal/internal/core/ports"
)

// maxUploadBytes caps a single upload at 10 MiB.
const maxUploadBytes = 10 << 20

// UploadHandler accepts multipart uploads and returns the stored blob's URL.
type UploadHandler struct {
	uploadService ports.UploadService
}

func NewUploadHandler(uploadService ports.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload stores the "file" form field and returns its URL.
//
// @Summary      Upload a file
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to upload"
// @Success      201   {object}  map[string]string
// @Router       /uploads [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fh.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	url, err := h.uploadService.Store(c.Request().Context(), fh.Filename, src)
	if err != nil {
		return err
	}
	metrics.UploadsTotal.Inc()

	return c.JSON(http.StatusCreated, map[string]string{"url": url})
}
