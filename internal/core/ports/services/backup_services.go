package services

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/dto"
)

// BackupUploader pushes a finished backup document to cloud storage. The
// document is treated as an opaque blob; implementations return the remote
// file identifier.
type BackupUploader interface {
	Upload(ctx context.Context, name string, content []byte) (string, error)
}

// BackupSvcFacade serializes every table to a versioned JSON document and can
// fully replace all table contents on restore.
type BackupSvcFacade interface {
	// ExportBackup snapshots all tables, writes the document to the local
	// backup directory, and uploads it when an uploader is configured.
	ExportBackup(ctx context.Context) (*dto.BackupResultResponse, error)

	// RestoreBackup replaces the contents of every table with the snapshot's.
	// Callers run a full recalculation afterwards to rebuild balance rows.
	RestoreBackup(ctx context.Context, snapshot domain.Snapshot) error
}
