package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khatasync/khata_backend/internal/apperrors"
	portssvc "github.com/khatasync/khata_backend/internal/core/ports/services"
	"github.com/khatasync/khata_backend/internal/dto"
	"github.com/khatasync/khata_backend/internal/middleware"
)

// ledgerHandler handles HTTP requests for the daily cashbook.
type ledgerHandler struct {
	ledgerService  portssvc.LedgerSvcFacade
	balanceService portssvc.BalanceSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, bs portssvc.BalanceSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls, balanceService: bs}
}

// registerLedgerRoutes registers routes related to ledger entries.
func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade, bs portssvc.BalanceSvcFacade) {
	h := newLedgerHandler(ls, bs)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/entries", h.createEntry)
		ledger.GET("/entries", h.listEntries)
		ledger.GET("/entries/:id", h.getEntry)
		ledger.PUT("/entries/:id", h.updateEntry)
		ledger.DELETE("/entries/:id", h.deleteEntry)
		ledger.GET("/summary", h.cashbookSummary)
	}
}

// createEntry godoc
// @Summary Record an ad hoc ledger entry
// @Description Creates an unlinked cashbook entry, then re-propagates balances
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateLedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /ledger/entries [post]
func (h *ledgerHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create ledger entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		}
		return
	}

	propagateFrom(c, h.balanceService, entry.Date)
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// listEntries godoc
// @Summary List ledger entries
// @Description Entries for a single date (date=) or a range (from=&to=)
// @Tags ledger
// @Produce  json
// @Param   date query string false "Single date (YYYY-MM-DD)"
// @Param   from query string false "Range start (YYYY-MM-DD)"
// @Param   to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.LedgerEntryResponse
// @Security BearerAuth
// @Router /ledger/entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if raw := c.Query("date"); raw != "" {
		date, ok := dateQuery(c, "date")
		if !ok {
			return
		}
		entries, err := h.ledgerService.ListEntriesByDate(c.Request.Context(), date)
		if err != nil {
			logger.Error("Failed to list ledger entries by date", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
			return
		}
		c.JSON(http.StatusOK, dto.ToListLedgerEntryResponse(entries))
		return
	}

	from, to, ok := rangeQuery(c)
	if !ok {
		return
	}
	entries, err := h.ledgerService.ListEntriesByDateRange(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to list ledger entries by range", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListLedgerEntryResponse(entries))
}

// getEntry godoc
// @Summary Get a ledger entry
// @Tags ledger
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /ledger/entries/{id} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	entry, err := h.ledgerService.GetEntry(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else {
			logger.Error("Failed to get ledger entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a ledger entry
// @Description Edits propagate back through the source link to the originating record, then balances re-propagate
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   entry body dto.UpdateLedgerEntryRequest true "Fields to update"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Source link is orphaned"
// @Security BearerAuth
// @Router /ledger/entries/{id} [put]
func (h *ledgerHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")
	var req dto.UpdateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, staleFrom, err := h.ledgerService.UpdateEntry(c.Request.Context(), entryID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrOrphanLedgerLink):
			c.JSON(http.StatusConflict, gin.H{"error": "Entry's source record no longer exists"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update ledger entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
		}
		return
	}

	propagateFrom(c, h.balanceService, staleFrom)
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a ledger entry
// @Description Removes the entry and, when linked, its source record, then re-propagates balances
// @Tags ledger
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /ledger/entries/{id} [delete]
func (h *ledgerHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	date, err := h.ledgerService.DeleteEntry(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else {
			logger.Error("Failed to delete ledger entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		}
		return
	}

	propagateFrom(c, h.balanceService, date)
	c.Status(http.StatusNoContent)
}

// cashbookSummary godoc
// @Summary Summarize the cashbook over a date range
// @Tags ledger
// @Produce  json
// @Param   from query string true "Range start (YYYY-MM-DD)"
// @Param   to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.CashbookSummaryResponse
// @Security BearerAuth
// @Router /ledger/summary [get]
func (h *ledgerHandler) cashbookSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := rangeQuery(c)
	if !ok {
		return
	}

	summary, err := h.ledgerService.CashbookSummary(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to build cashbook summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
