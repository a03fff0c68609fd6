package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates the caller has no session identity
	ErrUnauthorized = errors.New("login required")

	// ErrForbidden indicates the caller is not the owner of the resource
	ErrForbidden = errors.New("not authorized")

	// ErrPostNotFound indicates the referenced post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrUserNotFound indicates the referenced user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrEmptyPost indicates a post with no text and no media
	ErrEmptyPost = errors.New("post cannot be empty")

	// ErrEmptyComment indicates comment content is blank after trimming
	ErrEmptyComment = errors.New("comment content is required")

	// ErrTooManyImages indicates more images than a post may carry
	ErrTooManyImages = errors.New("too many images for one post")

	// ErrTooManyVideos indicates more videos than a post may carry
	ErrTooManyVideos = errors.New("too many videos for one post")
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

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound) || errors.Is(err, ErrUserNotFound)
}

// IsValidationError checks if an error is caused by bad input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyPost) ||
		errors.Is(err, ErrEmptyComment) ||
		errors.Is(err, ErrTooManyImages) ||
		errors.Is(err, ErrTooManyVideos)
}

// IsDomainError reports whether err is one of the sentinels above rather than
// an infrastructure failure.
func IsDomainError(err error) bool {
	return IsNotFound(err) ||
		IsValidationError(err) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden)
}
