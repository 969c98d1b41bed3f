package domain

import "errors"

// ErrNotFound is returned when no recommendation exists for a key.
var ErrNotFound = errors.New("recommendation not found")

// ErrDuplicateKey is returned when creating a recommendation whose
// composite key is already stored.
var ErrDuplicateKey = errors.New("recommendation already exists")

// ValidationError reports a malformed or missing field in a payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
