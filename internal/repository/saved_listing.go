package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/listings-api/internal/database"
	"github.com/deppfellow/listings-api/internal/model"
	"github.com/jackc/pgx/v5"
)

type SavedListingRepository struct {
	db *database.Database
}

func NewSavedListingRepository(db *database.Database) *SavedListingRepository {
	return &SavedListingRepository{db: db}
}

// GetSavedListingsByUser returns the user's saved listings, each with the
// user and the listing embedded. An unknown user yields an empty slice.
func (r *SavedListingRepository) GetSavedListingsByUser(ctx context.Context, userID int) ([]model.SavedListing, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT
			sl.user_id,
			sl.listing_id,
			sl.saved_at,
			u.id,
			u.username,
			u.email,
			u.password_hash,
			u.created_at,
			l.id,
			l.address,
			l.suburb,
			l.state,
			l.postcode
		FROM saved_listings sl
		JOIN users u ON u.id = sl.user_id
		JOIN listings l ON l.id = sl.listing_id
		WHERE sl.user_id = @user_id
		ORDER BY sl.saved_at, sl.listing_id
	`, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to execute saved listings query for user_id=%d: %w", userID, err)
	}

	saved, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.SavedListing, error) {
		var sl model.SavedListing
		var u model.User
		var l model.Listing
		err := row.Scan(
			&sl.UserID,
			&sl.ListingID,
			&sl.SavedAt,
			&u.ID,
			&u.Username,
			&u.Email,
			&u.PasswordHash,
			&u.CreatedAt,
			&l.ID,
			&l.Address,
			&l.Suburb,
			&l.State,
			&l.Postcode,
		)
		sl.User = &u
		sl.Listing = &l
		return sl, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:saved_listings for user_id=%d: %w", userID, err)
	}

	if saved == nil {
		saved = []model.SavedListing{}
	}

	return saved, nil
}

// CreateSavedListing stores the association, or returns the existing one
// unchanged. It fails with pgx.ErrNoRows when the user or listing is missing.
func (r *SavedListingRepository) CreateSavedListing(ctx context.Context, userID, listingID int) (*model.SavedListing, error) {
	var saved *model.SavedListing

	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		saved, err = createOrFetch(ctx, tx, userID, listingID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// UpdateSavedListing moves the user's association from oldListingID to
// newListingID. Both steps share one transaction: if the new association
// cannot be made the old one is kept.
func (r *SavedListingRepository) UpdateSavedListing(ctx context.Context, userID, oldListingID, newListingID int) error {
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		if err := deleteSavedListing(ctx, tx, userID, oldListingID); err != nil {
			return err
		}

		_, err := createOrFetch(ctx, tx, userID, newListingID)
		return err
	})
}

func (r *SavedListingRepository) DeleteSavedListing(ctx context.Context, userID, listingID int) error {
	return deleteSavedListing(ctx, r.db.Pool, userID, listingID)
}

// CountByListing returns how many distinct users saved the listing.
func (r *SavedListingRepository) CountByListing(ctx context.Context, listingID int) (int, error) {
	var count int

	err := r.db.Pool.QueryRow(ctx, `
		SELECT COUNT(DISTINCT user_id)
		FROM saved_listings
		WHERE listing_id = @listing_id
	`, pgx.NamedArgs{"listing_id": listingID}).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count saved listings for listing_id=%d: %w", listingID, err)
	}

	return count, nil
}

func createOrFetch(ctx context.Context, q database.Querier, userID, listingID int) (*model.SavedListing, error) {
	var exists bool

	err := q.QueryRow(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM users WHERE id = @user_id)
			AND EXISTS (SELECT 1 FROM listings WHERE id = @listing_id)
	`, pgx.NamedArgs{"user_id": userID, "listing_id": listingID}).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check references for user_id=%d listing_id=%d: %w", userID, listingID, err)
	}

	if !exists {
		return nil, notFound("user_id=%d or listing_id=%d", userID, listingID)
	}

	_, err = q.Exec(ctx, `
		INSERT INTO saved_listings (user_id, listing_id)
		VALUES (@user_id, @listing_id)
		ON CONFLICT (user_id, listing_id) DO NOTHING
	`, pgx.NamedArgs{"user_id": userID, "listing_id": listingID})
	if err != nil {
		if missingReference(err) {
			return nil, notFound("user_id=%d or listing_id=%d", userID, listingID)
		}
		return nil, fmt.Errorf("failed to insert saved listing user_id=%d listing_id=%d: %w", userID, listingID, err)
	}

	rows, err := q.Query(ctx, `
		SELECT user_id, listing_id, saved_at
		FROM saved_listings
		WHERE user_id = @user_id AND listing_id = @listing_id
	`, pgx.NamedArgs{"user_id": userID, "listing_id": listingID})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get saved listing query: %w", err)
	}

	saved, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.SavedListing])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:saved_listings for user_id=%d listing_id=%d: %w", userID, listingID, err)
	}

	return &saved, nil
}

func deleteSavedListing(ctx context.Context, q database.Querier, userID, listingID int) error {
	tag, err := q.Exec(ctx, `
		DELETE FROM saved_listings
		WHERE user_id = @user_id AND listing_id = @listing_id
	`, pgx.NamedArgs{"user_id": userID, "listing_id": listingID})
	if err != nil {
		return fmt.Errorf("failed to execute delete saved listing query for user_id=%d listing_id=%d: %w", userID, listingID, err)
	}

	if err := expectAffected(tag); err != nil {
		return fmt.Errorf("user_id=%d listing_id=%d: %w", userID, listingID, err)
	}

	return nil
}
