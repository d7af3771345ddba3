package repositories

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
)

// SnapshotRepository reads and replaces the full data set for backup/restore.
type SnapshotRepository interface {
	// ExportAll reads every table once and returns the assembled snapshot.
	ExportAll(ctx context.Context) (*domain.Snapshot, error)

	// RestoreAll replaces the contents of every table with the snapshot's,
	// inside a single database transaction.
	RestoreAll(ctx context.Context, snapshot domain.Snapshot) error
}
