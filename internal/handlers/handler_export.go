package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hongbao-tally/hongbao_tally_app/internal/apperrors"
	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
	portssvc "github.com/hongbao-tally/hongbao_tally_app/internal/core/ports/services"
	"github.com/hongbao-tally/hongbao_tally_app/internal/middleware"
)

// exportHandler serves the rendered export documents as file downloads.
// The HTTP response with Content-Disposition is the file-save sink: the core
// hands the bytes over and assumes delivery succeeds.
type exportHandler struct {
	exportService portssvc.ExportSvcFacade
}

// newExportHandler creates a new exportHandler.
func newExportHandler(es portssvc.ExportSvcFacade) *exportHandler {
	return &exportHandler{exportService: es}
}

// registerExportRoutes registers the export download routes.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvcFacade) {
	h := newExportHandler(exportService)

	export := rg.Group("/tally/export")
	{
		export.GET("/text", h.exportText)
		export.GET("/json", h.exportJSON)
	}
}

// exportText godoc
// @Summary Download the plain-text tally report
// @Description Renders the fixed-width text table (hongbao_YYYYMMDD_HHMM.txt)
// @Tags export
// @Produce plain
// @Success 200 {string} string "Plain-text report"
// @Failure 409 {object} map[string]string "Sheet is empty"
// @Failure 500 {object} map[string]string "Failed to render export"
// @Router /tally/export/text [get]
func (h *exportHandler) exportText(c *gin.Context) {
	h.serve(c, h.exportService.ExportText)
}

// exportJSON godoc
// @Summary Download the structured tally document
// @Description Renders the JSON document (hongbao_YYYYMMDD_HHMM.json), 2-space indented UTF-8
// @Tags export
// @Produce json
// @Success 200 {object} dto.ExportDocument
// @Failure 409 {object} map[string]string "Sheet is empty"
// @Failure 500 {object} map[string]string "Failed to render export"
// @Router /tally/export/json [get]
func (h *exportHandler) exportJSON(c *gin.Context) {
	h.serve(c, h.exportService.ExportJSON)
}

func (h *exportHandler) serve(c *gin.Context, render func(ctx context.Context) (*domain.ExportFile, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	file, err := render(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptySheet) {
			c.JSON(http.StatusConflict, gin.H{"error": "Nothing to export: the sheet is empty"})
		} else {
			logger.Error("Failed to render export", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render export"})
		}
		return
	}

	logger.Info("Export rendered", slog.String("filename", file.Filename), slog.Int("bytes", len(file.Content)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.MIMEType, file.Content)
}
