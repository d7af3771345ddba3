package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	portssvc "github.com/khatasync/khata_backend/internal/core/ports/services"
	"github.com/khatasync/khata_backend/internal/middleware"
)

// backupHandler handles HTTP requests for export and restore.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

func newBackupHandler(bs portssvc.BackupSvcFacade) *backupHandler {
	return &backupHandler{backupService: bs}
}

// registerBackupRoutes registers routes related to backups.
func registerBackupRoutes(rg *gin.RouterGroup, bs portssvc.BackupSvcFacade) {
	h := newBackupHandler(bs)

	backup := rg.Group("/backup")
	{
		backup.POST("/export", h.exportBackup)
		backup.POST("/restore", h.restoreBackup)
	}
}

// exportBackup godoc
// @Summary Export a backup
// @Description Serializes every table to a versioned JSON document, saves it locally, and uploads it when cloud sync is configured
// @Tags backup
// @Produce  json
// @Success 200 {object} dto.BackupResultResponse
// @Security BearerAuth
// @Router /backup/export [post]
func (h *backupHandler) exportBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.backupService.ExportBackup(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export backup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export backup"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// restoreBackup godoc
// @Summary Restore from a backup
// @Description Replaces the contents of every table with the posted snapshot. Run POST /balances/recalculate afterwards to rebuild balance rows.
// @Tags backup
// @Accept  json
// @Produce  json
// @Param   snapshot body domain.Snapshot true "Backup document"
// @Success 204 "Restored"
// @Failure 400 {object} map[string]string "Invalid or unsupported backup document"
// @Security BearerAuth
// @Router /backup/restore [post]
func (h *backupHandler) restoreBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var snapshot domain.Snapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		logger.Warn("Failed to bind JSON for RestoreBackup", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid backup document: " + err.Error()})
		return
	}

	if err := h.backupService.RestoreBackup(c.Request.Context(), snapshot); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to restore backup", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore backup"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
