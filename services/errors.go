package services

import "errors"

// Error kinds the presentation layer distinguishes. Anything else coming out
// of a service is a storage failure and propagates unmodified.
var (
	// ErrUserNotFound: the referenced account does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrItemNotFound: the catalog has no entry for the given name. Note
	// that Recycle never returns this — unknown items are a normal
	// zero-point case there.
	ErrItemNotFound = errors.New("recycling item not found")
	// ErrValidation: malformed caller input (blank username, duplicate
	// username on create).
	ErrValidation = errors.New("validation failed")
)
