package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hongbao-tally/hongbao_tally_app/internal/apperrors"
	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
	portssvc "github.com/hongbao-tally/hongbao_tally_app/internal/core/ports/services"
	"github.com/hongbao-tally/hongbao_tally_app/internal/dto"
	"github.com/hongbao-tally/hongbao_tally_app/internal/middleware"
)

// tallyHandler handles HTTP requests for the tally sheet and session state.
type tallyHandler struct {
	tallyService portssvc.TallySvcFacade
	catalog      *domain.Catalog
}

// newTallyHandler creates a new tallyHandler.
func newTallyHandler(ts portssvc.TallySvcFacade, catalog *domain.Catalog) *tallyHandler {
	return &tallyHandler{
		tallyService: ts,
		catalog:      catalog,
	}
}

// registerTallyRoutes registers all tally-related routes.
func registerTallyRoutes(rg *gin.RouterGroup, tallyService portssvc.TallySvcFacade, catalog *domain.Catalog) {
	h := newTallyHandler(tallyService, catalog)

	tally := rg.Group("/tally")
	{
		tally.GET("", h.getSheet)
		tally.POST("/rows", h.createRow)
		tally.PUT("/rows/:rowID/name", h.updateName)
		tally.PUT("/rows/:rowID/counts/:denomValue", h.setCount)
		tally.POST("/rows/:rowID/counts/:denomValue/increment", h.incrementCount)
		tally.POST("/rows/:rowID/activate", h.activateRow)
		tally.DELETE("/rows/:rowID", h.deleteRow)
		tally.POST("/quick-add/:denomValue", h.quickAdd)
		tally.POST("/reset", h.resetAll)
		tally.GET("/notification", h.getNotification)
	}
}

// denomValueParam parses the :denomValue path segment. A non-numeric segment
// is a malformed request, distinct from a well-formed unknown denomination.
func denomValueParam(c *gin.Context) (int64, bool) {
	value, err := strconv.ParseInt(c.Param("denomValue"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid denomination value: " + c.Param("denomValue")})
		return 0, false
	}
	return value, true
}

// getSheet godoc
// @Summary Get the tally sheet
// @Description Returns all rows with per-row subtotals, per-denomination bill counts, the grand total, and the transient session state
// @Tags tally
// @Produce json
// @Success 200 {object} dto.SheetResponse
// @Failure 500 {object} map[string]string "Failed to read sheet"
// @Router /tally [get]
func (h *tallyHandler) getSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.tallyService.GetSheet(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get sheet from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read sheet"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSheetResponse(h.catalog, report))
}

// createRow godoc
// @Summary Add a tally row
// @Description Appends a fresh empty row (blank name, zero count for every denomination)
// @Tags tally
// @Produce json
// @Success 201 {object} dto.RowResponse
// @Failure 500 {object} map[string]string "Failed to create row"
// @Router /tally/rows [post]
func (h *tallyHandler) createRow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	row, err := h.tallyService.CreateRow(c.Request.Context())
	if err != nil {
		logger.Error("Failed to create row in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create row"})
		return
	}

	logger.Info("Row created", slog.String("row_id", row.RowID))
	c.JSON(http.StatusCreated, dto.ToRowResponse(h.catalog, *row))
}

// updateName godoc
// @Summary Update a row's name
// @Description Replaces the recipient name verbatim; blank names are allowed
// @Tags tally
// @Accept json
// @Produce json
// @Param rowID path string true "Row ID"
// @Param name body dto.UpdateNameRequest true "New name"
// @Success 200 {object} dto.RowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Row not found"
// @Failure 500 {object} map[string]string "Failed to update name"
// @Router /tally/rows/{rowID}/name [put]
func (h *tallyHandler) updateName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rowID := c.Param("rowID")

	var req dto.UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update name request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	row, err := h.tallyService.UpdateName(c.Request.Context(), rowID, req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Row not found"})
		} else {
			logger.Error("Failed to update name in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update name"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRowResponse(h.catalog, *row))
}

// setCount godoc
// @Summary Set a bill count
// @Description Parses the raw input as an integer; negative, fractional, or unparseable input is normalized (clamped to 0, truncated toward zero), never rejected
// @Tags tally
// @Accept json
// @Produce json
// @Param rowID path string true "Row ID"
// @Param denomValue path int true "Denomination value"
// @Param value body dto.SetCountRequest true "Raw count input"
// @Success 200 {object} dto.RowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Row or denomination not found"
// @Failure 500 {object} map[string]string "Failed to set count"
// @Router /tally/rows/{rowID}/counts/{denomValue} [put]
func (h *tallyHandler) setCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rowID := c.Param("rowID")

	denomValue, ok := denomValueParam(c)
	if !ok {
		return
	}

	var req dto.SetCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for set count request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	row, err := h.tallyService.SetCount(c.Request.Context(), rowID, denomValue, req.Value)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Row or denomination not found"})
		} else {
			logger.Error("Failed to set count in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set count"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRowResponse(h.catalog, *row))
}

// incrementCount godoc
// @Summary Increment a bill count
// @Description Adds one bill of the denomination to the row
// @Tags tally
// @Produce json
// @Param rowID path string true "Row ID"
// @Param denomValue path int true "Denomination value"
// @Success 200 {object} dto.RowResponse
// @Failure 400 {object} map[string]string "Invalid denomination value"
// @Failure 404 {object} map[string]string "Row or denomination not found"
// @Failure 500 {object} map[string]string "Failed to increment count"
// @Router /tally/rows/{rowID}/counts/{denomValue}/increment [post]
func (h *tallyHandler) incrementCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rowID := c.Param("rowID")

	denomValue, ok := denomValueParam(c)
	if !ok {
		return
	}

	row, err := h.tallyService.IncrementCount(c.Request.Context(), rowID, denomValue)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Row or denomination not found"})
		} else {
			logger.Error("Failed to increment count in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to increment count"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRowResponse(h.catalog, *row))
}

// activateRow godoc
// @Summary Select the active row
// @Description Marks the row as the target for quick-add actions; replaces any previous selection
// @Tags tally
// @Produce json
// @Param rowID path string true "Row ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Row not found"
// @Failure 500 {object} map[string]string "Failed to activate row"
// @Router /tally/rows/{rowID}/activate [post]
func (h *tallyHandler) activateRow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rowID := c.Param("rowID")

	err := h.tallyService.ActivateRow(c.Request.Context(), rowID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Row not found"})
		} else {
			logger.Error("Failed to activate row in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate row"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// quickAdd godoc
// @Summary Quick-add a bill to the active row
// @Description Increments the active row's count for the denomination. With no active row the sheet is unchanged, a transient notification is recorded, and 409 is returned
// @Tags tally
// @Produce json
// @Param denomValue path int true "Denomination value"
// @Success 200 {object} dto.RowResponse
// @Failure 400 {object} map[string]string "Invalid denomination value"
// @Failure 404 {object} map[string]string "Denomination not found"
// @Failure 409 {object} map[string]string "No active row selected"
// @Failure 500 {object} map[string]string "Failed to quick-add"
// @Router /tally/quick-add/{denomValue} [post]
func (h *tallyHandler) quickAdd(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	denomValue, ok := denomValueParam(c)
	if !ok {
		return
	}

	row, err := h.tallyService.QuickAdd(c.Request.Context(), denomValue)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNoActiveRow):
			c.JSON(http.StatusConflict, gin.H{"error": selectRecipientMessage})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Denomination not found"})
		default:
			logger.Error("Failed to quick-add in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to quick-add"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRowResponse(h.catalog, *row))
}

// deleteRow godoc
// @Summary Delete a row (two-step)
// @Description The first call arms deletion and returns 202; a second call for the same row confirms and removes it. Any other mutation cancels the armed state
// @Tags tally
// @Produce json
// @Param rowID path string true "Row ID"
// @Success 200 {object} dto.DeleteRowResponse "Row removed"
// @Success 202 {object} dto.DeleteRowResponse "Deletion armed, call again to confirm"
// @Failure 404 {object} map[string]string "Row not found"
// @Failure 500 {object} map[string]string "Failed to delete row"
// @Router /tally/rows/{rowID} [delete]
func (h *tallyHandler) deleteRow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rowID := c.Param("rowID")

	armed, err := h.tallyService.DeleteRow(c.Request.Context(), rowID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Row not found"})
		} else {
			logger.Error("Failed to delete row in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete row"})
		}
		return
	}

	if armed {
		c.JSON(http.StatusAccepted, dto.DeleteRowResponse{RowID: rowID, Armed: true})
		return
	}

	logger.Info("Row deleted", slog.String("row_id", rowID))
	c.JSON(http.StatusOK, dto.DeleteRowResponse{RowID: rowID, Armed: false})
}

// resetAll godoc
// @Summary Clear the sheet
// @Description Replaces the entire sheet with two fresh empty rows. Requires confirm=true in the body
// @Tags tally
// @Accept json
// @Produce json
// @Param confirm body dto.ResetRequest true "Confirmation"
// @Success 200 {object} dto.SheetResponse
// @Failure 400 {object} map[string]string "Confirmation missing"
// @Failure 500 {object} map[string]string "Failed to reset"
// @Router /tally/reset [post]
func (h *tallyHandler) resetAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Reset requested without confirmation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reset requires confirm=true"})
		return
	}

	if _, err := h.tallyService.ResetAll(c.Request.Context()); err != nil {
		logger.Error("Failed to reset sheet in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset"})
		return
	}

	report, err := h.tallyService.GetSheet(c.Request.Context())
	if err != nil {
		logger.Error("Failed to read sheet after reset", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset"})
		return
	}

	logger.Info("Sheet reset")
	c.JSON(http.StatusOK, dto.ToSheetResponse(h.catalog, report))
}

// getNotification godoc
// @Summary Get the pending notification
// @Description Returns the transient notification if one is pending and unexpired, otherwise 204
// @Tags tally
// @Produce json
// @Success 200 {object} dto.NotificationResponse
// @Success 204 "No pending notification"
// @Failure 500 {object} map[string]string "Failed to read notification"
// @Router /tally/notification [get]
func (h *tallyHandler) getNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	notification, err := h.tallyService.GetNotification(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get notification from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read notification"})
		return
	}
	if notification == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponse(notification))
}

// selectRecipientMessage mirrors the service-side notification text so the
// HTTP error body and the stored notification say the same thing.
const selectRecipientMessage = "請先選擇一位收紅包的對象"
