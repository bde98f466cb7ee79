package catalog

import "errors"

// validationError reports a catalog entry that cannot be put on the menu.
type validationError struct {
	message string
}

func (e validationError) Error() string { return e.message }

func newValidationError(msg string) error {
	return validationError{message: msg}
}

// IsValidation distinguishes bad catalog content from I/O and decode failures.
func IsValidation(err error) bool {
	var v validationError
	return errors.As(err, &v)
}
