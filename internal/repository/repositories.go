package repository

import (
	"github.com/deppfellow/listings-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users         *UserRepository
	Listings      *ListingRepository
	SavedListings *SavedListingRepository
}

// NewRepositories constructs the repository container on the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(s.DB),
		Listings:      NewListingRepository(s.DB),
		SavedListings: NewSavedListingRepository(s.DB),
	}
}
