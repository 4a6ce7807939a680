package users

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that
	// already has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on a failed login. It covers both
	// unknown emails and wrong passwords so callers cannot probe which
	// accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user lookup by ID finds nothing.
	ErrUserNotFound = errors.New("user not found")
)
