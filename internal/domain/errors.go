package domain

import "errors"

// ErrNotFound is returned when the requested trip, day, or stored record does
// not exist. Handlers should map this to HTTP 404.
//
// Deleting or toggling a record id that does not exist is NOT an error; those
// mutations are silent no-ops.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when caller input fails a business rule
// (e.g. non-positive expense amount, unknown category).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
