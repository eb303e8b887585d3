package mvc

import "errors"

var (
	ErrActionNotFound = errors.New("mvc: action not found")
	ErrForbidden      = errors.New("mvc: access denied")
	ErrInitialize     = errors.New("mvc: action initialization failed")
	ErrForwardLoop    = errors.New("mvc: too many forwards")
)
