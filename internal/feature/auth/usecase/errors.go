// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"

	"stockwatch/internal/shared/apperr"
)

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = apperr.New(apperr.ErrNotFound, "user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = apperr.New(apperr.ErrConflict, "email already exists")

	// ErrUsernameAlreadyExists is returned when attempting to create a user with a username that already exists.
	ErrUsernameAlreadyExists = apperr.New(apperr.ErrConflict, "username already exists")

	// ErrUserAlreadyExists is returned by the store when a unique key of the users table is violated.
	ErrUserAlreadyExists = apperr.New(apperr.ErrConflict, "user already exists")

	// ErrInvalidCredentials is returned by Login for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
