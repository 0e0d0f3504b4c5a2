package file

import "errors"

var (
	// ErrNotFound covers missing, inactive and expired records alike, so an
	// expired share is indistinguishable from one that never existed.
	ErrNotFound = errors.New("file record not found")

	ErrPermissionDenied = errors.New("requester is not the owner")

	// ErrConflict is returned when a concurrent writer won a race on the same
	// record; callers may retry.
	ErrConflict = errors.New("concurrent write conflict")
)
