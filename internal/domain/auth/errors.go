package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrAccountInactive    = errors.New("Account is inactive")
	ErrInvalidToken       = errors.New("Invalid or expired token")
	ErrStaffRequired      = errors.New("Staff access required")
)
