package model

import (
	"time"

	"github.com/deppfellow/listings-api/internal/validation"
)

// SavedListing records that a user saved a listing. (UserID, ListingID) is
// unique.
//
// User and Listing are only populated when the association is read for a
// user; they are omitted otherwise.
type SavedListing struct {
	UserID    int       `json:"userId" db:"user_id"`
	ListingID int       `json:"listingId" db:"listing_id"`
	SavedAt   time.Time `json:"savedAt" db:"saved_at"`
	User      *User     `json:"user,omitempty" db:"-"`
	Listing   *Listing  `json:"listing,omitempty" db:"-"`
}

const (
	errInvalidUserID       = "User Id is invalid"
	errInvalidListingID    = "Listing Id is invalid"
	errInvalidSwapListings = "Either old or new Listing Id provided is invalid"
)

func invalid(field, message string) validation.CustomValidationErrors {
	return validation.CustomValidationErrors{{Field: field, Message: message}}
}

// ------------------------------------------------------------

type GetSavedListingsPayload struct {
	UserID int `param:"userId" json:"-"`
}

func (p *GetSavedListingsPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

type CreateSavedListingPayload struct {
	UserID    int `json:"userId"`
	ListingID int `json:"listingId"`
}

// Validate rejects ids that can never exist. The user id is checked first.
func (p *CreateSavedListingPayload) Validate() error {
	if p.UserID <= 0 {
		return invalid("userId", errInvalidUserID)
	}
	if p.ListingID <= 0 {
		return invalid("listingId", errInvalidListingID)
	}
	return nil
}

// ------------------------------------------------------------

// UpdateSavedListingPayload moves a user's saved listing from OldListingID
// to NewListingID.
type UpdateSavedListingPayload struct {
	UserID       int `param:"userId" json:"-"`
	OldListingID int `json:"oldListingId"`
	NewListingID int `json:"newListingId"`
}

func (p *UpdateSavedListingPayload) Validate() error {
	if p.UserID <= 0 {
		return invalid("userId", errInvalidUserID)
	}
	if p.OldListingID <= 0 {
		return invalid("oldListingId", errInvalidSwapListings)
	}
	if p.NewListingID <= 0 {
		return invalid("newListingId", errInvalidSwapListings)
	}
	return nil
}

// ------------------------------------------------------------

type DeleteSavedListingPayload struct {
	UserID    int `param:"userId" json:"-"`
	ListingID int `param:"listingId" json:"-"`
}

func (p *DeleteSavedListingPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

type CountSavedListingPayload struct {
	ListingID int `param:"listingId" json:"-"`
}

func (p *CountSavedListingPayload) Validate() error {
	return nil
}
