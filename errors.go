package simplepdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyText        = errors.New("text content cannot be empty")
	ErrUnwritableOutput = errors.New("output destination is not writable")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
)
