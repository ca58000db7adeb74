package service

import (
	"context"
	"errors"

	"github.com/deppfellow/listings-api/internal/errs"
	"github.com/deppfellow/listings-api/internal/lib/job"
	"github.com/deppfellow/listings-api/internal/model"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const errUserNotFound = "User not found"

type UserService struct {
	repo   UserRepository
	tasks  TaskEnqueuer
	logger *zerolog.Logger
}

// NewUserService builds the service. tasks may be nil, in which case no
// welcome email is queued.
func NewUserService(repo UserRepository, tasks TaskEnqueuer, logger *zerolog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		tasks:  tasks,
		logger: logger,
	}
}

func (s *UserService) GetUser(ctx context.Context, userID int) (*model.User, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError(errUserNotFound, true, nil)
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *UserService) CreateUser(ctx context.Context, payload *model.CreateUserPayload) (*model.User, error) {
	user, err := s.repo.CreateUser(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.enqueueWelcome(ctx, user)

	return user, nil
}

// enqueueWelcome queues the welcome email. Failures are logged only; the
// user already exists at this point.
func (s *UserService) enqueueWelcome(ctx context.Context, user *model.User) {
	if s.tasks == nil {
		return
	}

	log := s.log(ctx)

	task, err := job.NewWelcomeEmailTask(user)
	if err != nil {
		log.Error().Err(err).Int("user_id", user.ID).Msg("failed to build welcome email task")
		return
	}

	_, err = s.tasks.EnqueueContext(ctx, task)
	switch {
	case err == nil:
	case errors.Is(err, asynq.ErrTaskIDConflict):
		log.Debug().Int("user_id", user.ID).Msg("welcome email already queued")
	default:
		log.Error().Err(err).Int("user_id", user.ID).Msg("failed to enqueue welcome email")
	}
}

func (s *UserService) UpdateUser(ctx context.Context, payload *model.UpdateUserPayload) error {
	if err := s.repo.UpdateUser(ctx, payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NewNotFoundError(errUserNotFound, true, nil)
		}
		return err
	}

	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID int) error {
	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NewNotFoundError(errUserNotFound, true, nil)
		}
		return err
	}

	return nil
}

// log prefers the request logger carried by ctx.
func (s *UserService) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}
