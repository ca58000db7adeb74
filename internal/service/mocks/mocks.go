// Package mocks provides testify mocks for the repository and task queue
// interfaces consumed by the service package.
package mocks

import (
	"context"

	"github.com/deppfellow/listings-api/internal/model"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(ctx context.Context, userID int) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, payload *model.CreateUserPayload) (*model.User, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, payload *model.UpdateUserPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) GetListing(ctx context.Context, listingID int) (*model.Listing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Listing), args.Error(1)
}

func (m *MockListingRepository) ListListings(ctx context.Context) ([]model.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Listing), args.Error(1)
}

func (m *MockListingRepository) CreateListing(ctx context.Context, payload *model.CreateListingPayload) (*model.Listing, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Listing), args.Error(1)
}

func (m *MockListingRepository) UpdateListing(ctx context.Context, payload *model.UpdateListingPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockListingRepository) DeleteListing(ctx context.Context, listingID int) error {
	args := m.Called(ctx, listingID)
	return args.Error(0)
}

type MockSavedListingRepository struct {
	mock.Mock
}

func (m *MockSavedListingRepository) GetSavedListingsByUser(ctx context.Context, userID int) ([]model.SavedListing, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SavedListing), args.Error(1)
}

func (m *MockSavedListingRepository) CreateSavedListing(ctx context.Context, userID, listingID int) (*model.SavedListing, error) {
	args := m.Called(ctx, userID, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SavedListing), args.Error(1)
}

func (m *MockSavedListingRepository) UpdateSavedListing(ctx context.Context, userID, oldListingID, newListingID int) error {
	args := m.Called(ctx, userID, oldListingID, newListingID)
	return args.Error(0)
}

func (m *MockSavedListingRepository) DeleteSavedListing(ctx context.Context, userID, listingID int) error {
	args := m.Called(ctx, userID, listingID)
	return args.Error(0)
}

func (m *MockSavedListingRepository) CountByListing(ctx context.Context, listingID int) (int, error) {
	args := m.Called(ctx, listingID)
	return args.Int(0), args.Error(1)
}

type MockTaskEnqueuer struct {
	mock.Mock
}

func (m *MockTaskEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*asynq.TaskInfo), args.Error(1)
}
