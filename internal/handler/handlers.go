// Package handler exposes the HTTP endpoints.
//
// Resource handlers are built on the generic Handle / HandleNoContent
// helpers, which bind, validate, time and log every request the same way.
package handler

import (
	"github.com/deppfellow/listings-api/internal/server"
	"github.com/deppfellow/listings-api/internal/service"
)

type Handlers struct {
	Health        *HealthHandler
	Users         *UserHandler
	Listings      *ListingHandler
	SavedListings *SavedListingHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:        NewHealthHandler(s),
		Users:         NewUserHandler(s, services.Users),
		Listings:      NewListingHandler(s, services.Listings),
		SavedListings: NewSavedListingHandler(s, services.SavedListings),
	}
}
