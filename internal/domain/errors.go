package domain

import "errors"

var (
	// ErrValidation signals an entity that failed structural or range validation.
	ErrValidation = errors.New("validation failed")
	// ErrPropertyNotFound signals a missing or unresolvable property listing.
	ErrPropertyNotFound = errors.New("property not found")
)
