package script

import "errors"

// Errors for script operations.
var (
	// ErrClosed is returned when operating on a closed tokenizer.
	ErrClosed = errors.New("script closed")

	// ErrNoLanguage is returned when a script defines no language table.
	ErrNoLanguage = errors.New("script defines no language table")

	// ErrInvalidResult is returned when token returns unusable values.
	ErrInvalidResult = errors.New("invalid token result")
)
