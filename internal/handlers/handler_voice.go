package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	portssvc "github.com/khatasync/khata_backend/internal/core/ports/services"
	"github.com/khatasync/khata_backend/internal/dto"
	"github.com/khatasync/khata_backend/internal/middleware"
)

// voiceHandler handles HTTP requests for the voice flow.
type voiceHandler struct {
	voiceService   portssvc.VoiceSvcFacade
	balanceService portssvc.BalanceSvcFacade
}

func newVoiceHandler(vs portssvc.VoiceSvcFacade, bs portssvc.BalanceSvcFacade) *voiceHandler {
	return &voiceHandler{voiceService: vs, balanceService: bs}
}

// registerVoiceRoutes registers routes related to voice entry.
func registerVoiceRoutes(rg *gin.RouterGroup, vs portssvc.VoiceSvcFacade, bs portssvc.BalanceSvcFacade) {
	h := newVoiceHandler(vs, bs)

	voice := rg.Group("/voice")
	{
		voice.POST("/parse", h.parseIntent)
		voice.POST("/record", h.recordFromVoice)
	}
}

// parseIntent godoc
// @Summary Parse a transcribed phrase
// @Description Returns the structured intent without recording anything
// @Tags voice
// @Accept  json
// @Produce  json
// @Param   request body dto.VoiceRecordRequest true "Transcribed phrase"
// @Success 200 {object} dto.VoiceIntentResponse
// @Failure 400 {object} map[string]string "Unparseable phrase"
// @Security BearerAuth
// @Router /voice/parse [post]
func (h *voiceHandler) parseIntent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.VoiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ParseIntent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	intent, err := h.voiceService.ParseIntent(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to parse voice phrase", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse phrase"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVoiceIntentResponse(*intent))
}

// recordFromVoice godoc
// @Summary Record from a transcribed phrase
// @Description Parses the phrase and records a customer transaction or expense through the synced path, then re-propagates balances
// @Tags voice
// @Accept  json
// @Produce  json
// @Param   request body dto.VoiceRecordRequest true "Transcribed phrase"
// @Success 201 {object} dto.VoiceRecordResponse
// @Failure 400 {object} map[string]string "Unparseable phrase"
// @Failure 404 {object} map[string]string "Named party not found"
// @Security BearerAuth
// @Router /voice/record [post]
func (h *voiceHandler) recordFromVoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.VoiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordFromVoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.voiceService.RecordFromVoice(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Named party not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record from voice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record from voice"})
		}
		return
	}

	date := domain.Today()
	if req.Date != nil {
		date = *req.Date
	}
	propagateFrom(c, h.balanceService, date)
	c.JSON(http.StatusCreated, result)
}
