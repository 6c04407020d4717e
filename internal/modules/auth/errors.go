package auth

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
