// Package model defines the Destination entity and the request payloads
// accepted by the destination endpoints.
package model

import (
	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

// Destination is a place travellers can rate, one row of the
// destinations table.
type Destination struct {
	ID          int64   `json:"id" db:"id"`
	Destination string  `json:"destination" db:"destination"`
	Country     string  `json:"country" db:"country"`
	Rating      float64 `json:"rating" db:"rating"`
}

// MessageResponse is the body of acknowledgements such as the welcome
// route and a successful delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListDestinationsRequest carries no input.
type ListDestinationsRequest struct{}

func (r *ListDestinationsRequest) Validate() error {
	return nil
}

// GetDestinationRequest addresses a destination by id.
type GetDestinationRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *GetDestinationRequest) Validate() error {
	return nil
}

// CreateDestinationRequest is the body of POST /destinations.
//
// Fields are pointers so a missing field is told apart from a zero value:
// a rating of 0 is accepted, an absent rating is not.
type CreateDestinationRequest struct {
	Destination *string  `json:"destination" validate:"required"`
	Country     *string  `json:"country" validate:"required"`
	Rating      *float64 `json:"rating" validate:"required"`
}

func (r *CreateDestinationRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateDestinationRequest is the body of PUT /destinations/:id. Every
// field is optional; nil fields keep their stored value.
type UpdateDestinationRequest struct {
	ID          int64    `param:"id" json:"-"`
	Destination *string  `json:"destination"`
	Country     *string  `json:"country"`
	Rating      *float64 `json:"rating"`
}

func (r *UpdateDestinationRequest) Validate() error {
	return nil
}

// DeleteDestinationRequest addresses a destination by id.
type DeleteDestinationRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *DeleteDestinationRequest) Validate() error {
	return nil
}
