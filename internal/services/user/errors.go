package user

import "errors"

// Service errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrForbidden    = errors.New("not allowed to modify this user")
	ErrInvalidRole  = errors.New("invalid role")
	ErrInvalidTheme = errors.New("invalid theme")
)
