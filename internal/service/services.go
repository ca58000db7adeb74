package service

import (
	"github.com/deppfellow/listings-api/internal/repository"
	"github.com/deppfellow/listings-api/internal/server"
)

type Services struct {
	Users         *UserService
	Listings      *ListingService
	SavedListings *SavedListingService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	// Left as a nil interface when jobs are disabled, never a typed nil.
	var tasks TaskEnqueuer
	if s.Job != nil {
		tasks = s.Job.Client
	}

	return &Services{
		Users:         NewUserService(repos.Users, tasks, s.Logger),
		Listings:      NewListingService(repos.Listings),
		SavedListings: NewSavedListingService(repos.SavedListings),
	}
}
