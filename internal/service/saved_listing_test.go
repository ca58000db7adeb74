package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/listings-api/internal/model"
	"github.com/deppfellow/listings-api/internal/service/mocks"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedListingService_GetSavedListings(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the user's saved listings", func(t *testing.T) {
		saved := []model.SavedListing{{UserID: 1, ListingID: 2, SavedAt: time.Now()}}

		repo := new(mocks.MockSavedListingRepository)
		repo.On("GetSavedListingsByUser", ctx, 1).Return(saved, nil)

		got, err := NewSavedListingService(repo).GetSavedListings(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, saved, got)
	})

	t.Run("empty result is not found", func(t *testing.T) {
		repo := new(mocks.MockSavedListingRepository)
		repo.On("GetSavedListingsByUser", ctx, 4).Return([]model.SavedListing{}, nil)

		_, err := NewSavedListingService(repo).GetSavedListings(ctx, 4)

		requireHTTPError(t, err, http.StatusNotFound, "No Listings for user id 4")
	})
}

func TestSavedListingService_CreateSavedListing(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the association", func(t *testing.T) {
		saved := &model.SavedListing{UserID: 1, ListingID: 2, SavedAt: time.Now()}

		repo := new(mocks.MockSavedListingRepository)
		repo.On("CreateSavedListing", ctx, 1, 2).Return(saved, nil)

		got, err := NewSavedListingService(repo).CreateSavedListing(ctx, &model.CreateSavedListingPayload{UserID: 1, ListingID: 2})

		require.NoError(t, err)
		assert.Equal(t, saved, got)
	})

	t.Run("missing user or listing is not found", func(t *testing.T) {
		repo := new(mocks.MockSavedListingRepository)
		repo.On("CreateSavedListing", ctx, 1, 99).Return(nil, fmt.Errorf("listing_id=99: %w", pgx.ErrNoRows))

		_, err := NewSavedListingService(repo).CreateSavedListing(ctx, &model.CreateSavedListingPayload{UserID: 1, ListingID: 99})

		requireHTTPError(t, err, http.StatusNotFound, "User Id or Listing Id does not exist")
	})
}

func TestSavedListingService_UpdateSavedListing(t *testing.T) {
	ctx := context.Background()
	payload := &model.UpdateSavedListingPayload{UserID: 1, OldListingID: 1, NewListingID: 2}

	t.Run("success", func(t *testing.T) {
		repo := new(mocks.MockSavedListingRepository)
		repo.On("UpdateSavedListing", ctx, 1, 1, 2).Return(nil)

		assert.NoError(t, NewSavedListingService(repo).UpdateSavedListing(ctx, payload))
		repo.AssertExpectations(t)
	})

	t.Run("missing association is not found", func(t *testing.T) {
		repo := new(mocks.MockSavedListingRepository)
		repo.On("UpdateSavedListing", ctx, 1, 1, 2).Return(pgx.ErrNoRows)

		err := NewSavedListingService(repo).UpdateSavedListing(ctx, payload)

		requireHTTPError(t, err, http.StatusNotFound, "Saved listing not found")
	})

	t.Run("store failure passes through", func(t *testing.T) {
		storeErr := errors.New("commit failed")
		repo := new(mocks.MockSavedListingRepository)
		repo.On("UpdateSavedListing", ctx, 1, 1, 2).Return(storeErr)

		err := NewSavedListingService(repo).UpdateSavedListing(ctx, payload)

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestSavedListingService_DeleteAndCount(t *testing.T) {
	ctx := context.Background()

	repo := new(mocks.MockSavedListingRepository)
	repo.On("DeleteSavedListing", ctx, 1, 2).Return(pgx.ErrNoRows)
	repo.On("CountByListing", ctx, 2).Return(0, nil)

	svc := NewSavedListingService(repo)

	err := svc.DeleteSavedListing(ctx, &model.DeleteSavedListingPayload{UserID: 1, ListingID: 2})
	requireHTTPError(t, err, http.StatusNotFound, "Saved listing not found")

	count, err := svc.CountSavedListing(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
