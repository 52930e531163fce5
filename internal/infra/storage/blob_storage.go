// Package storage implements file storage for onboarding uploads on top
// of gocloud.dev blob buckets.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"tesotunes/config"
	"tesotunes/internal/domain/entity"
	"tesotunes/internal/domain/lifecycle"
	"tesotunes/internal/domain/service"
	"tesotunes/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Register the file:// bucket scheme for local and dev deployments.
	_ "gocloud.dev/blob/fileblob"
)

// blobStorage implements the service.FileStorage interface.
// The bucket URL decides the backend; file:// in development, a cloud
// bucket in production, with no code change.
type blobStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage is the constructor for blobStorage.
func NewBlobStorage(params Params) (service.FileStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket: bucket,
		logger: params.Logger,
	}, nil
}

// Upload streams a file into the bucket under a generated key and
// returns the metadata tuple. The original name never becomes part of
// the key; only its extension survives.
func (s *blobStorage) Upload(ctx context.Context, directory, originalName, mimeType string, size int64, r io.Reader) (*entity.UploadedFile, error) {
	key := path.Join(directory, uuid.NewString()+extension(originalName))

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		// Closing after a failed copy aborts the write.
		_ = w.Close()

		return nil, errors.Wrap(err, "failed to write upload to bucket")
	}

	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize upload")
	}

	return &entity.UploadedFile{
		Path:         key,
		OriginalName: originalName,
		MimeType:     mimeType,
		Size:         size,
	}, nil
}

// Delete removes a stored file. Missing keys are not an error, so
// cleanup of already-gone uploads stays idempotent.
func (s *blobStorage) Delete(ctx context.Context, filePath string) error {
	err := s.bucket.Delete(ctx, filePath)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete stored file")
	}

	return nil
}

// extension returns the lowercased file extension, including the dot,
// or an empty string when there is none.
func extension(name string) string {
	return strings.ToLower(path.Ext(name))
}
