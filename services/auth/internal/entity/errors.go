package entity

import (
	"errors"
	"fmt"
)

const (
	MinPasswordLength = 6
	MaxBioLength      = 250
)

var (
	// ErrUnauthorized indicates the caller has no session identity
	ErrUnauthorized = errors.New("login required")

	// ErrUserNotFound indicates the referenced user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates another account already uses the email
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates an unknown email or a wrong password
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrBioTooLong       = fmt.Errorf("bio must be at most %d characters", MaxBioLength)
)

// DependencyError wraps a persistence or media store failure.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if an error is caused by bad input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmailRequired) ||
		errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrBioTooLong)
}

// IsDomainError reports whether err is one of the sentinels above rather than
// an infrastructure failure.
func IsDomainError(err error) bool {
	return IsValidationError(err) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrInvalidCredentials)
}
