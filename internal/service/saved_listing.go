package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/listings-api/internal/errs"
	"github.com/deppfellow/listings-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	errSavedListingNotFound = "Saved listing not found"
	errReferenceNotFound    = "User Id or Listing Id does not exist"
)

type SavedListingService struct {
	repo SavedListingRepository
}

func NewSavedListingService(repo SavedListingRepository) *SavedListingService {
	return &SavedListingService{repo: repo}
}

// GetSavedListings returns the user's saved listings. A user with none,
// including an unknown user, is reported as not found.
func (s *SavedListingService) GetSavedListings(ctx context.Context, userID int) ([]model.SavedListing, error) {
	saved, err := s.repo.GetSavedListingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(saved) == 0 {
		return nil, errs.NewNotFoundError(fmt.Sprintf("No Listings for user id %d", userID), true, nil)
	}

	return saved, nil
}

func (s *SavedListingService) CreateSavedListing(ctx context.Context, payload *model.CreateSavedListingPayload) (*model.SavedListing, error) {
	saved, err := s.repo.CreateSavedListing(ctx, payload.UserID, payload.ListingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError(errReferenceNotFound, true, nil)
		}
		return nil, err
	}

	return saved, nil
}

// UpdateSavedListing swaps the listing of an existing association. Any
// missing piece (old association, user, new listing) is reported as
// "Saved listing not found".
func (s *SavedListingService) UpdateSavedListing(ctx context.Context, payload *model.UpdateSavedListingPayload) error {
	err := s.repo.UpdateSavedListing(ctx, payload.UserID, payload.OldListingID, payload.NewListingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NewNotFoundError(errSavedListingNotFound, true, nil)
		}
		return err
	}

	return nil
}

func (s *SavedListingService) DeleteSavedListing(ctx context.Context, payload *model.DeleteSavedListingPayload) error {
	if err := s.repo.DeleteSavedListing(ctx, payload.UserID, payload.ListingID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NewNotFoundError(errSavedListingNotFound, true, nil)
		}
		return err
	}

	return nil
}

func (s *SavedListingService) CountSavedListing(ctx context.Context, listingID int) (int, error) {
	return s.repo.CountByListing(ctx, listingID)
}
