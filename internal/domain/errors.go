package domain

import "errors"

// ErrNotFound is returned when the requested destination or document does
// not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule (e.g. an
// unknown priority value, a schedule whose boundaries are out of order).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnavailable is returned when a trip document could not be loaded or
// decoded. It is deliberately distinct from an empty result: "no tips match"
// is a 200 with an empty list, "tips could not be loaded" is this error.
// Handlers should map this to HTTP 503 Service Unavailable.
var ErrUnavailable = errors.New("data unavailable")
