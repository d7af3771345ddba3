// Package gdrive uploads backup documents to a Google Drive folder using a
// service account credential.
package gdrive

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Uploader implements the backup upload port against the Drive v3 API.
type Uploader struct {
	service  *drive.Service
	folderID string
}

// NewUploader builds a Drive client from service-account credentials JSON.
// folderID is the Drive folder backups land in; empty means the root.
func NewUploader(ctx context.Context, credentialsJSON []byte, folderID string) (*Uploader, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, drive.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse drive credentials: %w", err)
	}
	service, err := drive.NewService(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Uploader{service: service, folderID: folderID}, nil
}

// Upload creates the named file with the given content and returns the Drive
// file ID.
func (u *Uploader) Upload(ctx context.Context, name string, content []byte) (string, error) {
	meta := &drive.File{
		Name:     name,
		MimeType: "application/json",
	}
	if u.folderID != "" {
		meta.Parents = []string{u.folderID}
	}
	file, err := u.service.Files.Create(meta).
		Media(bytes.NewReader(content)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to drive: %w", name, err)
	}
	return file.Id, nil
}
