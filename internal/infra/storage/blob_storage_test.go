package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"tesotunes/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestStorage(t *testing.T) *blobStorage {
	lc := fxtest.NewLifecycle(t)

	store, err := NewBlobStorage(Params{
		Lifecycle: lc,
		Config: &config.Config{
			Storage: &config.StorageConfig{BucketURL: "file://" + t.TempDir()},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	lc.RequireStart()
	t.Cleanup(func() { lc.RequireStop() })

	return store.(*blobStorage)
}

func TestBlobStorage_UploadAndDelete(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	file, err := store.Upload(ctx, "kyc", "Selfie Photo.JPG", "image/jpeg", 9, strings.NewReader("jpeg data"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(file.Path, "kyc/"), "path = %s", file.Path)
	assert.True(t, strings.HasSuffix(file.Path, ".jpg"), "extension is lowercased, path = %s", file.Path)
	assert.NotContains(t, file.Path, "Selfie", "original name must not leak into the key")
	assert.Equal(t, "Selfie Photo.JPG", file.OriginalName)
	assert.Equal(t, "image/jpeg", file.MimeType)
	assert.Equal(t, int64(9), file.Size)

	r, err := store.bucket.NewReader(ctx, file.Path, nil)
	require.NoError(t, err)
	content, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "jpeg data", string(content))

	require.NoError(t, store.Delete(ctx, file.Path))

	exists, err := store.bucket.Exists(ctx, file.Path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteMissingKeyIsIdempotent(t *testing.T) {
	store := createTestStorage(t)

	err := store.Delete(context.Background(), "kyc/never-there.jpg")
	assert.NoError(t, err)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".jpg", extension("front.JPG"))
	assert.Equal(t, ".jpeg", extension("photo.jpeg"))
	assert.Equal(t, "", extension("no-extension"))
}
