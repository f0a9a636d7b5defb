package usecase_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/adapter/repository"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/usecase"
	apperrors "github.com/wekeepgrowing/loan-eligibility-service/pkg/errors"
)

func TestCardService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	blobs := &recordingBlobStore{}
	service := usecase.NewCardService(repository.NewCardRepository(f.db, zap.NewNop()), blobs, zap.NewNop())

	inactive := false
	hidden, err := service.Create(ctx, &dto.CardRequest{Title: "Hidden", Active: &inactive, SortOrder: 1})
	require.NoError(t, err)
	assert.False(t, hidden.Active)

	second, err := service.Create(ctx, &dto.CardRequest{Title: "Second", SortOrder: 2})
	require.NoError(t, err)
	assert.True(t, second.Active)

	first, err := service.Create(ctx, &dto.CardRequest{Title: " First ", SortOrder: 0})
	require.NoError(t, err)
	assert.Equal(t, "First", first.Title)

	active, err := service.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)

	updated, err := service.Update(ctx, second.ID, &dto.CardRequest{Title: "Second", Active: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	card, err := service.UploadImage(ctx, first.ID, "hero.jpg", "image/jpeg", bytes.NewReader([]byte("jpg")))
	require.NoError(t, err)
	assert.Contains(t, card.ImageURL, "https://cdn.example.com/cards/")

	require.NoError(t, service.Delete(ctx, hidden.ID))
	_, err = service.Get(ctx, hidden.ID)
	assertAppError(t, err, apperrors.ErrNotFound, "Card not found")
}
