package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrMethodMismatch     = errors.New("email registered with a different method")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
