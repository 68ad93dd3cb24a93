package service

import "errors"

// Sentinel errors returned by services. Handlers translate these into the
// HTTP status contract; anything else is a store failure.
var (
	// ErrNotFound means the referenced record does not resolve. Existence
	// is always checked before permission, so an unauthorized caller probing
	// a missing record sees not-found, not forbidden.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the caller is authenticated but not permitted to
	// perform this operation on this record.
	ErrForbidden = errors.New("forbidden")
)
