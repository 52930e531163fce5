package service

import (
	"context"
	"io"

	"tesotunes/internal/domain/entity"
)

// FileStorage persists binary uploads in content storage. Only the
// returned metadata tuple may be kept in a registration session, never
// a raw file handle: sessions must stay serializable and bounded.
type FileStorage interface {
	// Upload stores the file bytes under the directory and returns the
	// stored path plus upload metadata.
	Upload(ctx context.Context, directory, originalName, mimeType string, size int64, r io.Reader) (*entity.UploadedFile, error)

	// Delete removes a stored file. Missing files are not an error.
	Delete(ctx context.Context, path string) error
}
