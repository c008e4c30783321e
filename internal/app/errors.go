package app

import (
	"errors"
	"fmt"
)

// Input errors. Everything returned by ParseDate, Date.Validate and ParseCommand
// wraps one of these, so callers can match with errors.Is.
var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidDateValue  = errors.New("invalid date value")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrMalformedCommand  = errors.New("malformed command")
)

// Range violations found by Date.Validate
var (
	ErrInvalidMonth = fmt.Errorf("%w: month out of range", ErrInvalidDateValue)
	ErrInvalidDay   = fmt.Errorf("%w: day out of range", ErrInvalidDateValue)
)

// IsInputError reports whether err was caused by bad user input rather than I/O
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidDateValue) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMalformedCommand)
}
