package model

import "github.com/deppfellow/listings-api/internal/validation"

// Listing is a property that users can save.
type Listing struct {
	ID       int    `json:"id" db:"id"`
	Address  string `json:"address" db:"address"`
	Suburb   string `json:"suburb" db:"suburb"`
	State    string `json:"state" db:"state"`
	Postcode int    `json:"postcode" db:"postcode"`
}

// ------------------------------------------------------------

type CreateListingPayload struct {
	Address  string `json:"address" validate:"required"`
	Suburb   string `json:"suburb" validate:"required"`
	State    string `json:"state" validate:"required"`
	Postcode int    `json:"postcode" validate:"required,gt=0,max=2147483647"`
}

func (p *CreateListingPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

// UpdateListingPayload is a partial update: nil fields are left untouched.
type UpdateListingPayload struct {
	ID       int     `param:"id" json:"-"`
	Address  *string `json:"address" validate:"omitempty,min=1"`
	Suburb   *string `json:"suburb" validate:"omitempty,min=1"`
	State    *string `json:"state" validate:"omitempty,min=1"`
	Postcode *int    `json:"postcode" validate:"omitempty,gt=0,max=2147483647"`
}

func (p *UpdateListingPayload) Validate() error {
	return validation.Struct(p)
}
