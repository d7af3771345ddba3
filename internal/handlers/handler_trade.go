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

// tradeHandler handles HTTP requests for trading records.
type tradeHandler struct {
	tradeService portssvc.TradeSvcFacade
}

func newTradeHandler(ts portssvc.TradeSvcFacade) *tradeHandler {
	return &tradeHandler{tradeService: ts}
}

// registerTradeRoutes registers routes related to trades.
func registerTradeRoutes(rg *gin.RouterGroup, ts portssvc.TradeSvcFacade) {
	h := newTradeHandler(ts)

	trades := rg.Group("/trades")
	{
		trades.POST("", h.createTrade)
		trades.GET("", h.listTrades)
		trades.GET("/summary", h.summary)
		trades.GET("/:id", h.getTrade)
		trades.PUT("/:id", h.updateTrade)
		trades.DELETE("/:id", h.deleteTrade)
	}
}

// createTrade godoc
// @Summary Record a trade
// @Description Records a buy/sell trade; total and profit are computed server side
// @Tags trades
// @Accept  json
// @Produce  json
// @Param   trade body dto.CreateTradeRequest true "Trade details"
// @Success 201 {object} dto.TradeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /trades [post]
func (h *tradeHandler) createTrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTrade", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	trade, err := h.tradeService.CreateTrade(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record trade", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record trade"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTradeResponse(trade))
}

// listTrades godoc
// @Summary List trades
// @Tags trades
// @Produce  json
// @Param   farm query string false "Filter by farm name"
// @Success 200 {array} dto.TradeResponse
// @Security BearerAuth
// @Router /trades [get]
func (h *tradeHandler) listTrades(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var farmName *string
	if raw := c.Query("farm"); raw != "" {
		farmName = &raw
	}

	trades, err := h.tradeService.ListTrades(c.Request.Context(), farmName)
	if err != nil {
		logger.Error("Failed to list trades", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trades"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTradeResponse(trades))
}

// summary godoc
// @Summary Summarize trades
// @Description Totals bought, sold, and realized profit, optionally per farm
// @Tags trades
// @Produce  json
// @Param   farm query string false "Filter by farm name"
// @Success 200 {object} dto.TradeSummaryResponse
// @Security BearerAuth
// @Router /trades/summary [get]
func (h *tradeHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var farmName *string
	if raw := c.Query("farm"); raw != "" {
		farmName = &raw
	}

	summary, err := h.tradeService.Summary(c.Request.Context(), farmName)
	if err != nil {
		logger.Error("Failed to build trade summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getTrade godoc
// @Summary Get a trade
// @Tags trades
// @Produce  json
// @Param   id path string true "Trade ID"
// @Success 200 {object} dto.TradeResponse
// @Failure 404 {object} map[string]string "Trade not found"
// @Security BearerAuth
// @Router /trades/{id} [get]
func (h *tradeHandler) getTrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tradeID := c.Param("id")

	trade, err := h.tradeService.GetTrade(c.Request.Context(), tradeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found"})
		} else {
			logger.Error("Failed to get trade", slog.String("error", err.Error()), slog.String("trade_id", tradeID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve trade"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTradeResponse(trade))
}

// updateTrade godoc
// @Summary Update a trade
// @Description Applies edits and recomputes total and profit
// @Tags trades
// @Accept  json
// @Produce  json
// @Param   id path string true "Trade ID"
// @Param   trade body dto.UpdateTradeRequest true "Fields to update"
// @Success 200 {object} dto.TradeResponse
// @Failure 404 {object} map[string]string "Trade not found"
// @Security BearerAuth
// @Router /trades/{id} [put]
func (h *tradeHandler) updateTrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tradeID := c.Param("id")
	var req dto.UpdateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTrade", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	trade, err := h.tradeService.UpdateTrade(c.Request.Context(), tradeID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update trade", slog.String("error", err.Error()), slog.String("trade_id", tradeID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trade"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTradeResponse(trade))
}

// deleteTrade godoc
// @Summary Delete a trade
// @Tags trades
// @Produce  json
// @Param   id path string true "Trade ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Trade not found"
// @Security BearerAuth
// @Router /trades/{id} [delete]
func (h *tradeHandler) deleteTrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tradeID := c.Param("id")

	if err := h.tradeService.DeleteTrade(c.Request.Context(), tradeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found"})
		} else {
			logger.Error("Failed to delete trade", slog.String("error", err.Error()), slog.String("trade_id", tradeID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trade"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
