package review

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrForbidden   = errors.New("forbidden")
	ErrNotFound    = errors.New("not found")
	ErrNotEligible = errors.New("booking not eligible for review")
	ErrDuplicate   = errors.New("review already exists for booking")
)
