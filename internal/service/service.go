// Package service contains the business logic of the API.
//
// Services sit between handlers and repositories: they turn repository
// outcomes (rows, pgx.ErrNoRows) into domain results or *errs.HTTPError
// values with client-facing messages.
package service

import (
	"context"

	"github.com/deppfellow/listings-api/internal/model"
	"github.com/hibiken/asynq"
)

type UserRepository interface {
	GetUser(ctx context.Context, userID int) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, payload *model.CreateUserPayload) (*model.User, error)
	UpdateUser(ctx context.Context, payload *model.UpdateUserPayload) error
	DeleteUser(ctx context.Context, userID int) error
}

type ListingRepository interface {
	GetListing(ctx context.Context, listingID int) (*model.Listing, error)
	ListListings(ctx context.Context) ([]model.Listing, error)
	CreateListing(ctx context.Context, payload *model.CreateListingPayload) (*model.Listing, error)
	UpdateListing(ctx context.Context, payload *model.UpdateListingPayload) error
	DeleteListing(ctx context.Context, listingID int) error
}

type SavedListingRepository interface {
	GetSavedListingsByUser(ctx context.Context, userID int) ([]model.SavedListing, error)
	CreateSavedListing(ctx context.Context, userID, listingID int) (*model.SavedListing, error)
	UpdateSavedListing(ctx context.Context, userID, oldListingID, newListingID int) error
	DeleteSavedListing(ctx context.Context, userID, listingID int) error
	CountByListing(ctx context.Context, listingID int) (int, error)
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
