package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	portsrepo "github.com/khatasync/khata_backend/internal/core/ports/repositories"
	portssvc "github.com/khatasync/khata_backend/internal/core/ports/services"
	"github.com/khatasync/khata_backend/internal/dto"
	"github.com/khatasync/khata_backend/internal/middleware"
)

// BackupService serializes the full data set to a versioned JSON document in
// the local backup directory and, when an uploader is configured, pushes the
// document to cloud storage. A failed upload never fails the backup; the
// local file is the durable artifact.
type BackupService struct {
	SnapshotRepository portsrepo.SnapshotRepository
	Uploader           portssvc.BackupUploader // nil disables the upload step
	BackupDir          string
}

func NewBackupService(snapshotRepo portsrepo.SnapshotRepository, uploader portssvc.BackupUploader, backupDir string) *BackupService {
	return &BackupService{
		SnapshotRepository: snapshotRepo,
		Uploader:           uploader,
		BackupDir:          backupDir,
	}
}

func (s *BackupService) ExportBackup(ctx context.Context) (*dto.BackupResultResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	snapshot, err := s.SnapshotRepository.ExportAll(ctx)
	if err != nil {
		logger.Error("Failed to export snapshot", slog.String("error", err.Error()))
		return nil, err
	}

	content, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to serialize snapshot", err)
	}

	if err := os.MkdirAll(s.BackupDir, 0o755); err != nil {
		return nil, apperrors.NewAppError(500, "failed to create backup directory", err)
	}
	name := fmt.Sprintf("khata_backup_%s.json", snapshot.ExportedAt.Format("20060102_150405"))
	path := filepath.Join(s.BackupDir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, apperrors.NewAppError(500, "failed to write backup file", err)
	}

	result := &dto.BackupResultResponse{
		FilePath:   path,
		ExportedAt: snapshot.ExportedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if s.Uploader != nil {
		fileID, err := s.Uploader.Upload(ctx, name, content)
		if err != nil {
			logger.Error("Backup upload failed, local file kept", slog.String("error", err.Error()), slog.String("path", path))
		} else {
			result.DriveFileID = fileID
			logger.Info("Backup uploaded", slog.String("drive_file_id", fileID))
		}
	}

	logger.Info("Backup exported",
		slog.String("path", path),
		slog.Int("customers", len(snapshot.Customers)),
		slog.Int("entries", len(snapshot.Entries)))
	return result, nil
}

func (s *BackupService) RestoreBackup(ctx context.Context, snapshot domain.Snapshot) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if snapshot.Version != domain.SnapshotVersion {
		return apperrors.NewAppError(400,
			fmt.Sprintf("unsupported backup version %d (want %d)", snapshot.Version, domain.SnapshotVersion),
			apperrors.ErrValidation)
	}

	if err := s.SnapshotRepository.RestoreAll(ctx, snapshot); err != nil {
		logger.Error("Failed to restore snapshot", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Backup restored",
		slog.Int("customers", len(snapshot.Customers)),
		slog.Int("transactions", len(snapshot.Transactions)),
		slog.Int("entries", len(snapshot.Entries)))
	return nil
}
