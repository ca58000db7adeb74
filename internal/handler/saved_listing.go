package handler

import (
	"net/http"

	"github.com/deppfellow/listings-api/internal/model"
	"github.com/deppfellow/listings-api/internal/server"
	"github.com/deppfellow/listings-api/internal/service"
	"github.com/labstack/echo/v4"
)

type SavedListingHandler struct {
	Handler
	savedListingService *service.SavedListingService
}

func NewSavedListingHandler(s *server.Server, savedListingService *service.SavedListingService) *SavedListingHandler {
	return &SavedListingHandler{
		Handler:             NewHandler(s),
		savedListingService: savedListingService,
	}
}

func (h *SavedListingHandler) GetSavedListings(c echo.Context) error {
	return Handle(
		func(c echo.Context, payload *model.GetSavedListingsPayload) ([]model.SavedListing, error) {
			return h.savedListingService.GetSavedListings(c.Request().Context(), payload.UserID)
		},
		http.StatusOK,
	)(c)
}

func (h *SavedListingHandler) CreateSavedListing(c echo.Context) error {
	return Handle(
		func(c echo.Context, payload *model.CreateSavedListingPayload) (*model.SavedListing, error) {
			return h.savedListingService.CreateSavedListing(c.Request().Context(), payload)
		},
		http.StatusCreated,
	)(c)
}

func (h *SavedListingHandler) UpdateSavedListing(c echo.Context) error {
	return HandleNoContent(
		func(c echo.Context, payload *model.UpdateSavedListingPayload) error {
			return h.savedListingService.UpdateSavedListing(c.Request().Context(), payload)
		},
	)(c)
}

func (h *SavedListingHandler) DeleteSavedListing(c echo.Context) error {
	return HandleNoContent(
		func(c echo.Context, payload *model.DeleteSavedListingPayload) error {
			return h.savedListingService.DeleteSavedListing(c.Request().Context(), payload)
		},
	)(c)
}

// CountSavedListing answers with a bare integer body.
func (h *SavedListingHandler) CountSavedListing(c echo.Context) error {
	return Handle(
		func(c echo.Context, payload *model.CountSavedListingPayload) (int, error) {
			return h.savedListingService.CountSavedListing(c.Request().Context(), payload.ListingID)
		},
		http.StatusOK,
	)(c)
}
