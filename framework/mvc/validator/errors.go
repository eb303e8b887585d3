package validator

import "errors"

var (
	// ErrUnknownValidator is returned when a variant name is not registered.
	ErrUnknownValidator = errors.New("validator: unknown validator")

	// ErrInvalidDefinition is returned when a rule definition cannot be applied.
	ErrInvalidDefinition = errors.New("validator: invalid definition")
)
