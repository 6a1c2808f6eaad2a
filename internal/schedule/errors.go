package schedule

import (
	"errors"
	"fmt"
)

var ErrOccurrenceNotFound = errors.New("class occurrence not found")

// ValidationError reports malformed or out-of-range input. It is always
// raised before any store call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
