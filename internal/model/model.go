// Package model defines the domain entities and the request payloads the
// HTTP layer binds and validates.
//
// Payload structs take path parameters through `param` tags and the request
// body through `json` tags, so a single echo.Context.Bind fills both.
package model

import "github.com/deppfellow/listings-api/internal/validation"

// IDPayload carries a single integer id from the path.
//
// Ids are not range checked here: an id that cannot exist (<= 0) simply
// resolves to "not found" downstream.
type IDPayload struct {
	ID int `param:"id" json:"-"`
}

func (p *IDPayload) Validate() error {
	return validation.Struct(p)
}

// ListUsersPayload has no fields; GET /users takes no input.
type ListUsersPayload struct{}

func (p *ListUsersPayload) Validate() error {
	return nil
}

type ListListingsPayload struct{}

func (p *ListListingsPayload) Validate() error {
	return nil
}
