package services

import "errors"

var (
	// ErrOffline is returned by mutations while the data came from the
	// offline cache.
	ErrOffline = errors.New("offline: data is read-only")

	// ErrNotConfirmed is returned by Archive without confirmation.
	ErrNotConfirmed = errors.New("archive requires confirmation")
)
