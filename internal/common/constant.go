package common

import "time"

// DefaultCategory is seeded into an empty store.
const DefaultCategory = "Default"

// MaxCategoryNameLength bounds category names, in runes.
const MaxCategoryNameLength = 100

// MaxIntervalDays is the upper bound for any review interval, in days.
const MaxIntervalDays = 365

// ReservedCategoryNames cannot be used as category names (compared
// case-insensitively).
var ReservedCategoryNames = []string{"all", "none", "default", "new", "add", "delete", "edit", "settings"}

// Retry policy for transient unavailability of the persistence API.
const (
	RetryMaxRetries = 3
	RetryBaseDelay  = 1 * time.Second
	RetryMaxDelay   = 8 * time.Second
)
