package handler

import (
	"net/http"

	"github.com/deppfellow/listings-api/internal/model"
	"github.com/deppfellow/listings-api/internal/server"
	"github.com/deppfellow/listings-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ListingHandler struct {
	Handler
	listingService *service.ListingService
}

func NewListingHandler(s *server.Server, listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{
		Handler:        NewHandler(s),
		listingService: listingService,
	}
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	return Handle(
		func(c echo.Context, _ *model.ListListingsPayload) ([]model.Listing, error) {
			return h.listingService.ListListings(c.Request().Context())
		},
		http.StatusOK,
	)(c)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	return Handle(
		func(c echo.Context, payload *model.IDPayload) (*model.Listing, error) {
			return h.listingService.GetListing(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
	)(c)
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	return Handle(
		func(c echo.Context, payload *model.CreateListingPayload) (*model.Listing, error) {
			return h.listingService.CreateListing(c.Request().Context(), payload)
		},
		http.StatusCreated,
	)(c)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	return HandleNoContent(
		func(c echo.Context, payload *model.UpdateListingPayload) error {
			return h.listingService.UpdateListing(c.Request().Context(), payload)
		},
	)(c)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	return HandleNoContent(
		func(c echo.Context, payload *model.IDPayload) error {
			return h.listingService.DeleteListing(c.Request().Context(), payload.ID)
		},
	)(c)
}
