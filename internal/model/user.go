package model

import (
	"time"

	"github.com/deppfellow/listings-api/internal/validation"
)

// User is an account that can save listings.
type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"passwordHash" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// SavedListings holds the user's associations. Its entries never
	// embed the user back.
	SavedListings []SavedListing `json:"savedListings" db:"-"`
}

// ------------------------------------------------------------

type CreateUserPayload struct {
	Username     string `json:"username" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PasswordHash string `json:"passwordHash" validate:"required"`
}

func (p *CreateUserPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

// UpdateUserPayload is a partial update: nil fields are left untouched.
type UpdateUserPayload struct {
	ID           int     `param:"id" json:"-"`
	Username     *string `json:"username" validate:"omitempty,min=1"`
	Email        *string `json:"email" validate:"omitempty,email"`
	PasswordHash *string `json:"passwordHash"`
}

func (p *UpdateUserPayload) Validate() error {
	return validation.Struct(p)
}
