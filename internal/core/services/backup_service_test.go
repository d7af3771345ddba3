package services

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/khatasync/khata_backend/internal/apperrors"
	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSnapshotRepo struct {
	mock.Mock
}

func (m *mockSnapshotRepo) ExportAll(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if s, ok := args.Get(0).(*domain.Snapshot); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSnapshotRepo) RestoreAll(ctx context.Context, snapshot domain.Snapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) Upload(ctx context.Context, name string, content []byte) (string, error) {
	args := m.Called(ctx, name, content)
	return args.String(0), args.Error(1)
}

func testSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Version:    domain.SnapshotVersion,
		ExportedAt: time.Date(2024, time.August, 1, 10, 30, 0, 0, time.UTC),
		Customers:  []domain.Customer{{CustomerID: "cust-1", Name: "Ramesh"}},
		Entries:    []domain.DailyLedgerEntry{{EntryID: "entry-1", Mode: domain.CashIn, Amount: dec(100)}},
	}
}

func TestExportBackupWritesFileAndUploads(t *testing.T) {
	ctx := context.Background()
	snapshotRepo := new(mockSnapshotRepo)
	uploader := new(mockUploader)
	svc := NewBackupService(snapshotRepo, uploader, t.TempDir())

	snapshotRepo.On("ExportAll", ctx).Return(testSnapshot(), nil)
	uploader.On("Upload", ctx, "khata_backup_20240801_103000.json", mock.Anything).Return("drive-file-1", nil)

	result, err := svc.ExportBackup(ctx)
	require.NoError(t, err)
	assert.Equal(t, "drive-file-1", result.DriveFileID)

	raw, err := os.ReadFile(result.FilePath)
	require.NoError(t, err)
	var restored domain.Snapshot
	require.NoError(t, json.Unmarshal(raw, &restored))
	assert.Equal(t, domain.SnapshotVersion, restored.Version)
	require.Len(t, restored.Customers, 1)
	assert.Equal(t, "Ramesh", restored.Customers[0].Name)
}

func TestExportBackupSurvivesUploadFailure(t *testing.T) {
	ctx := context.Background()
	snapshotRepo := new(mockSnapshotRepo)
	uploader := new(mockUploader)
	svc := NewBackupService(snapshotRepo, uploader, t.TempDir())

	snapshotRepo.On("ExportAll", ctx).Return(testSnapshot(), nil)
	uploader.On("Upload", ctx, mock.Anything, mock.Anything).Return("", assert.AnError)

	result, err := svc.ExportBackup(ctx)
	require.NoError(t, err)
	assert.Empty(t, result.DriveFileID)
	// The local file is the durable artifact.
	_, statErr := os.Stat(result.FilePath)
	assert.NoError(t, statErr)
}

func TestExportBackupWithoutUploader(t *testing.T) {
	ctx := context.Background()
	snapshotRepo := new(mockSnapshotRepo)
	svc := NewBackupService(snapshotRepo, nil, t.TempDir())

	snapshotRepo.On("ExportAll", ctx).Return(testSnapshot(), nil)

	result, err := svc.ExportBackup(ctx)
	require.NoError(t, err)
	assert.Empty(t, result.DriveFileID)
}

func TestRestoreBackupRejectsUnknownVersion(t *testing.T) {
	ctx := context.Background()
	snapshotRepo := new(mockSnapshotRepo)
	svc := NewBackupService(snapshotRepo, nil, t.TempDir())

	err := svc.RestoreBackup(ctx, domain.Snapshot{Version: 99})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	snapshotRepo.AssertNotCalled(t, "RestoreAll", mock.Anything, mock.Anything)
}

func TestRestoreBackupDelegatesToRepository(t *testing.T) {
	ctx := context.Background()
	snapshotRepo := new(mockSnapshotRepo)
	svc := NewBackupService(snapshotRepo, nil, t.TempDir())

	snapshot := *testSnapshot()
	snapshotRepo.On("RestoreAll", ctx, snapshot).Return(nil)

	require.NoError(t, svc.RestoreBackup(ctx, snapshot))
	snapshotRepo.AssertExpectations(t)
}
