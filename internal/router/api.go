package router

import (
	"github.com/deppfellow/listings-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerUserRoutes(r *echo.Echo, h *handler.Handlers) {
	users := r.Group("/users")

	users.GET("", h.Users.ListUsers)
	users.POST("", h.Users.CreateUser)
	users.GET("/:id", h.Users.GetUser)
	users.PUT("/:id", h.Users.UpdateUser)
	users.DELETE("/:id", h.Users.DeleteUser)
}

func registerListingRoutes(r *echo.Echo, h *handler.Handlers) {
	listings := r.Group("/listings")

	listings.GET("", h.Listings.ListListings)
	listings.POST("", h.Listings.CreateListing)
	listings.GET("/:id", h.Listings.GetListing)
	listings.PUT("/:id", h.Listings.UpdateListing)
	listings.DELETE("/:id", h.Listings.DeleteListing)
}

func registerSavedListingRoutes(r *echo.Echo, h *handler.Handlers) {
	saved := r.Group("/saved-listings")

	saved.POST("", h.SavedListings.CreateSavedListing)
	saved.GET("/count/:listingId", h.SavedListings.CountSavedListing)
	saved.GET("/:userId", h.SavedListings.GetSavedListings)
	saved.PUT("/:userId", h.SavedListings.UpdateSavedListing)
	saved.DELETE("/:userId/:listingId", h.SavedListings.DeleteSavedListing)
}
