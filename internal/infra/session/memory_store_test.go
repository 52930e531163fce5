package session

import (
	"context"
	"testing"
	"time"

	"tesotunes/internal/domain/entity"
	"tesotunes/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session := entity.NewRegistrationSession(time.Now())
	session.SaveStepData(entity.StepProfile, map[string]any{
		"stage_name": "Etop Cultural Band",
		"genre_id":   7,
	})
	session.UpdateStepData(entity.StepIdentity, "document_selfie", entity.UploadedFile{
		Path:         "kyc/selfie.jpg",
		OriginalName: "selfie.jpg",
		MimeType:     "image/jpeg",
		Size:         95_000,
	})

	require.NoError(t, store.Put(ctx, "session-key", session))

	loaded, err := store.Get(ctx, "session-key")
	require.NoError(t, err)

	assert.Equal(t, session.CurrentStep, loaded.CurrentStep)
	assert.Equal(t, session.CompletedSteps, loaded.CompletedSteps)

	// JSON decoding changes bag value types: numbers come back as
	// float64 and upload tuples as maps. Bag readers must tolerate both.
	bag := loaded.StepData(entity.StepProfile)
	require.NotNil(t, bag)
	assert.Equal(t, "Etop Cultural Band", bag["stage_name"])
	assert.Equal(t, float64(7), bag["genre_id"])

	selfie, ok := loaded.Data[entity.StepIdentity]["document_selfie"].(map[string]any)
	require.True(t, ok, "upload tuple decodes as a map")
	assert.Equal(t, "kyc/selfie.jpg", selfie["path"])
	assert.Equal(t, float64(95_000), selfie["size"])
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	store := NewMemoryStore()

	session, err := store.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.Nil(t, session)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
}

func TestMemoryStore_PutOverwrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := entity.NewRegistrationSession(time.Now())
	first.SaveStepData(entity.StepProfile, map[string]any{"stage_name": "old"})
	require.NoError(t, store.Put(ctx, "session-key", first))

	fresh := entity.NewRegistrationSession(time.Now())
	require.NoError(t, store.Put(ctx, "session-key", fresh))

	loaded, err := store.Get(ctx, "session-key")
	require.NoError(t, err)
	assert.Empty(t, loaded.CompletedSteps)
	assert.Equal(t, entity.StepProfile, loaded.CurrentStep)
}

func TestMemoryStore_DeleteIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session-key", entity.NewRegistrationSession(time.Now())))
	require.NoError(t, store.Delete(ctx, "session-key"))
	require.NoError(t, store.Delete(ctx, "session-key"))

	_, err := store.Get(ctx, "session-key")
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
}
