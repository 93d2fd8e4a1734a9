// Package common defines shared constants and sentinel errors used across
// client and server layers of Mnemos. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
	ErrNotReady   = errors.New("service starting up")

	// Validation errors. Field-level details travel in models.ValidationError.
	ErrValidation     = errors.New("validation failed")
	ErrAlreadyExists  = errors.New("already exists")
	ErrCategoryInUse  = errors.New("category in use")
	ErrArchived       = errors.New("item is archived")
	ErrHistoryRewrite = errors.New("review history can only be appended to")
)
