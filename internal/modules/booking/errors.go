package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrDateConflict      = errors.New("booking dates conflict")
	ErrOwnListing        = errors.New("cannot book own listing")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("booking not found")
	ErrInvalidAction     = errors.New("invalid action")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrLateCancellation  = errors.New("cancellation window closed")
)
