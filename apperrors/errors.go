package apperrors

import "errors"

var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrBadRequest means the caller supplied an unusable value.
	ErrBadRequest = errors.New("bad request")
	// ErrConflict is reserved for reference checks between records.
	ErrConflict = errors.New("conflict")
)
