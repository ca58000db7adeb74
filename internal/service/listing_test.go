package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/listings-api/internal/model"
	"github.com/deppfellow/listings-api/internal/service/mocks"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingService_GetListing(t *testing.T) {
	ctx := context.Background()
	listing := &model.Listing{ID: 1, Address: "1 Main St", Suburb: "Carlton", State: "VIC", Postcode: 3053}

	repo := new(mocks.MockListingRepository)
	repo.On("GetListing", ctx, 1).Return(listing, nil)
	repo.On("GetListing", ctx, 9).Return(nil, pgx.ErrNoRows)

	svc := NewListingService(repo)

	got, err := svc.GetListing(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, listing, got)

	_, err = svc.GetListing(ctx, 9)
	requireHTTPError(t, err, http.StatusNotFound, "Listing not found")
}

func TestListingService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	payload := &model.UpdateListingPayload{ID: 5}

	repo := new(mocks.MockListingRepository)
	repo.On("UpdateListing", ctx, payload).Return(pgx.ErrNoRows)
	repo.On("DeleteListing", ctx, 5).Return(nil)

	svc := NewListingService(repo)

	requireHTTPError(t, svc.UpdateListing(ctx, payload), http.StatusNotFound, "Listing not found")
	assert.NoError(t, svc.DeleteListing(ctx, 5))
	repo.AssertExpectations(t)
}
