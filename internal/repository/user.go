package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/listings-api/internal/database"
	"github.com/deppfellow/listings-api/internal/model"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db *database.Database
}

func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, password_hash, created_at`

func (r *UserRepository) GetUser(ctx context.Context, userID int) (*model.User, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = @id
	`, pgx.NamedArgs{"id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get user query for user_id=%d: %w", userID, err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:users for user_id=%d: %w", userID, err)
	}

	saved, err := savedListingsOfUsers(ctx, r.db.Pool, []int{userID})
	if err != nil {
		return nil, err
	}
	user.SavedListings = saved[userID]
	if user.SavedListings == nil {
		user.SavedListings = []model.SavedListing{}
	}

	return &user, nil
}

// ListUsers returns every user with its saved listings, using one query for
// the users and one for all of their associations.
func (r *UserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list users query: %w", err)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:users: %w", err)
	}

	if len(users) == 0 {
		return []model.User{}, nil
	}

	ids := make([]int, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	saved, err := savedListingsOfUsers(ctx, r.db.Pool, ids)
	if err != nil {
		return nil, err
	}

	for i := range users {
		users[i].SavedListings = saved[users[i].ID]
		if users[i].SavedListings == nil {
			users[i].SavedListings = []model.SavedListing{}
		}
	}

	return users, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, payload *model.CreateUserPayload) (*model.User, error) {
	rows, err := r.db.Pool.Query(ctx, `
		INSERT INTO users (username, email, password_hash)
		VALUES (@username, @email, @password_hash)
		RETURNING `+userColumns+`
	`, pgx.NamedArgs{
		"username":      payload.Username,
		"email":         payload.Email,
		"password_hash": payload.PasswordHash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create user query for username=%s: %w", payload.Username, err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:users for username=%s: %w", payload.Username, err)
	}
	user.SavedListings = []model.SavedListing{}

	return &user, nil
}

// UpdateUser overwrites the fields present in payload and keeps the rest.
func (r *UserRepository) UpdateUser(ctx context.Context, payload *model.UpdateUserPayload) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE users
		SET
			username = COALESCE(@username, username),
			email = COALESCE(@email, email),
			password_hash = COALESCE(@password_hash, password_hash)
		WHERE id = @id
	`, pgx.NamedArgs{
		"id":            payload.ID,
		"username":      payload.Username,
		"email":         payload.Email,
		"password_hash": payload.PasswordHash,
	})
	if err != nil {
		return fmt.Errorf("failed to execute update user query for user_id=%d: %w", payload.ID, err)
	}

	if err := expectAffected(tag); err != nil {
		return fmt.Errorf("user_id=%d: %w", payload.ID, err)
	}

	return nil
}

// DeleteUser removes the user. Saved listings go with it (ON DELETE CASCADE).
func (r *UserRepository) DeleteUser(ctx context.Context, userID int) error {
	tag, err := r.db.Pool.Exec(ctx, `
		DELETE FROM users
		WHERE id = @id
	`, pgx.NamedArgs{"id": userID})
	if err != nil {
		return fmt.Errorf("failed to execute delete user query for user_id=%d: %w", userID, err)
	}

	if err := expectAffected(tag); err != nil {
		return fmt.Errorf("user_id=%d: %w", userID, err)
	}

	return nil
}

// savedListingsOfUsers loads the saved listings (with their listing) of the
// given users, grouped by user id.
func savedListingsOfUsers(ctx context.Context, q database.Querier, userIDs []int) (map[int][]model.SavedListing, error) {
	rows, err := q.Query(ctx, `
		SELECT
			sl.user_id,
			sl.listing_id,
			sl.saved_at,
			l.id,
			l.address,
			l.suburb,
			l.state,
			l.postcode
		FROM saved_listings sl
		JOIN listings l ON l.id = sl.listing_id
		WHERE sl.user_id = ANY(@user_ids)
		ORDER BY sl.saved_at, sl.listing_id
	`, pgx.NamedArgs{"user_ids": userIDs})
	if err != nil {
		return nil, fmt.Errorf("failed to execute saved listings query: %w", err)
	}

	saved, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.SavedListing, error) {
		var sl model.SavedListing
		var l model.Listing
		err := row.Scan(
			&sl.UserID,
			&sl.ListingID,
			&sl.SavedAt,
			&l.ID,
			&l.Address,
			&l.Suburb,
			&l.State,
			&l.Postcode,
		)
		sl.Listing = &l
		return sl, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:saved_listings: %w", err)
	}

	grouped := make(map[int][]model.SavedListing, len(userIDs))
	for _, sl := range saved {
		grouped[sl.UserID] = append(grouped[sl.UserID], sl)
	}

	return grouped, nil
}
