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

// balanceHandler handles HTTP requests for daily balance rows.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: bs}
}

// registerBalanceRoutes registers routes related to daily balances.
func registerBalanceRoutes(rg *gin.RouterGroup, bs portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(bs)

	balances := rg.Group("/balances")
	{
		balances.GET("", h.listBalances)
		balances.GET("/:date", h.getBalance)
		balances.PUT("/opening", h.setOpeningBalance)
		balances.POST("/recalculate", h.recalculate)
	}
}

// listBalances godoc
// @Summary List balance rows in a date range
// @Tags balances
// @Produce  json
// @Param   from query string true "Range start (YYYY-MM-DD)"
// @Param   to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.DailyBalanceResponse
// @Security BearerAuth
// @Router /balances [get]
func (h *balanceHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := rangeQuery(c)
	if !ok {
		return
	}

	balances, err := h.balanceService.ListBalancesByDateRange(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to list balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDailyBalanceResponse(balances))
}

// getBalance godoc
// @Summary Get a day's balance row
// @Tags balances
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyBalanceResponse
// @Failure 404 {object} map[string]string "No balance row for that date"
// @Security BearerAuth
// @Router /balances/{date} [get]
func (h *balanceHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	raw := c.Param("date")
	date, err := parseDateParam(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: " + raw})
		return
	}

	balance, err := h.balanceService.GetBalanceByDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No balance row for " + raw})
		} else {
			logger.Error("Failed to get balance", slog.String("error", err.Error()), slog.String("date", raw))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyBalanceResponse(balance))
}

// setOpeningBalance godoc
// @Summary Set a day's opening balances
// @Description Creates or overrides the row with user-set opening values, then re-propagates later rows
// @Tags balances
// @Accept  json
// @Produce  json
// @Param   opening body dto.SetOpeningBalanceRequest true "Opening balances"
// @Success 200 {object} dto.DailyBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /balances/opening [put]
func (h *balanceHandler) setOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetOpeningBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	balance, err := h.balanceService.SetOpeningBalance(c.Request.Context(), req, userID)
	if err != nil {
		logger.Error("Failed to set opening balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set opening balance"})
		return
	}

	propagateFrom(c, h.balanceService, balance.Date)
	c.JSON(http.StatusOK, dto.ToDailyBalanceResponse(balance))
}

// recalculate godoc
// @Summary Rebuild balance rows from a start date
// @Description Gap-filling bulk recalculation seeded with explicit opening balances; used after imports and restores
// @Tags balances
// @Accept  json
// @Produce  json
// @Param   request body dto.RecalculateRequest true "Recalculation parameters"
// @Success 204 "Recalculated"
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /balances/recalculate [post]
func (h *balanceHandler) recalculate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Recalculate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.balanceService.RecalculateFromDate(c.Request.Context(), req.StartDate, req.OpeningCash, req.OpeningBank); err != nil {
		logger.Error("Failed to recalculate balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recalculate balances"})
		return
	}

	c.Status(http.StatusNoContent)
}
