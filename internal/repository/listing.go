package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/listings-api/internal/database"
	"github.com/deppfellow/listings-api/internal/model"
	"github.com/jackc/pgx/v5"
)

type ListingRepository struct {
	db *database.Database
}

func NewListingRepository(db *database.Database) *ListingRepository {
	return &ListingRepository{db: db}
}

const listingColumns = `id, address, suburb, state, postcode`

func (r *ListingRepository) GetListing(ctx context.Context, listingID int) (*model.Listing, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE id = @id
	`, pgx.NamedArgs{"id": listingID})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get listing query for listing_id=%d: %w", listingID, err)
	}

	listing, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Listing])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:listings for listing_id=%d: %w", listingID, err)
	}

	return &listing, nil
}

func (r *ListingRepository) ListListings(ctx context.Context) ([]model.Listing, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list listings query: %w", err)
	}

	listings, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Listing])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:listings: %w", err)
	}

	if listings == nil {
		listings = []model.Listing{}
	}

	return listings, nil
}

func (r *ListingRepository) CreateListing(ctx context.Context, payload *model.CreateListingPayload) (*model.Listing, error) {
	rows, err := r.db.Pool.Query(ctx, `
		INSERT INTO listings (address, suburb, state, postcode)
		VALUES (@address, @suburb, @state, @postcode)
		RETURNING `+listingColumns+`
	`, pgx.NamedArgs{
		"address":  payload.Address,
		"suburb":   payload.Suburb,
		"state":    payload.State,
		"postcode": payload.Postcode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create listing query: %w", err)
	}

	listing, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Listing])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:listings: %w", err)
	}

	return &listing, nil
}

func (r *ListingRepository) UpdateListing(ctx context.Context, payload *model.UpdateListingPayload) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE listings
		SET
			address = COALESCE(@address, address),
			suburb = COALESCE(@suburb, suburb),
			state = COALESCE(@state, state),
			postcode = COALESCE(@postcode, postcode)
		WHERE id = @id
	`, pgx.NamedArgs{
		"id":       payload.ID,
		"address":  payload.Address,
		"suburb":   payload.Suburb,
		"state":    payload.State,
		"postcode": payload.Postcode,
	})
	if err != nil {
		return fmt.Errorf("failed to execute update listing query for listing_id=%d: %w", payload.ID, err)
	}

	if err := expectAffected(tag); err != nil {
		return fmt.Errorf("listing_id=%d: %w", payload.ID, err)
	}

	return nil
}

// DeleteListing removes the listing and, through ON DELETE CASCADE, every
// saved listing pointing at it.
func (r *ListingRepository) DeleteListing(ctx context.Context, listingID int) error {
	tag, err := r.db.Pool.Exec(ctx, `
		DELETE FROM listings
		WHERE id = @id
	`, pgx.NamedArgs{"id": listingID})
	if err != nil {
		return fmt.Errorf("failed to execute delete listing query for listing_id=%d: %w", listingID, err)
	}

	if err := expectAffected(tag); err != nil {
		return fmt.Errorf("listing_id=%d: %w", listingID, err)
	}

	return nil
}
