package service

import (
	"context"
	"errors"

	"github.com/deppfellow/listings-api/internal/errs"
	"github.com/deppfellow/listings-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const errListingNotFound = "Listing not found"

type ListingService struct {
	repo ListingRepository
}

func NewListingService(repo ListingRepository) *ListingService {
	return &ListingService{repo: repo}
}

func (s *ListingService) GetListing(ctx context.Context, listingID int) (*model.Listing, error) {
	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError(errListingNotFound, true, nil)
		}
		return nil, err
	}

	return listing, nil
}

func (s *ListingService) ListListings(ctx context.Context) ([]model.Listing, error) {
	return s.repo.ListListings(ctx)
}

func (s *ListingService) CreateListing(ctx context.Context, payload *model.CreateListingPayload) (*model.Listing, error) {
	return s.repo.CreateListing(ctx, payload)
}

func (s *ListingService) UpdateListing(ctx context.Context, payload *model.UpdateListingPayload) error {
	if err := s.repo.UpdateListing(ctx, payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NewNotFoundError(errListingNotFound, true, nil)
		}
		return err
	}

	return nil
}

func (s *ListingService) DeleteListing(ctx context.Context, listingID int) error {
	if err := s.repo.DeleteListing(ctx, listingID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NewNotFoundError(errListingNotFound, true, nil)
		}
		return err
	}

	return nil
}
