package service

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist or is
	// soft-deleted.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates the input failed a business validation rule.
	ErrValidation = errors.New("validation failed")
)
