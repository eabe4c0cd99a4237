package entities

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	// ErrValidation is returned when a field constraint is violated at assignment.
	ErrValidation = errors.New("validation error")
	// ErrNotSupported is returned by operations that do not exist, such as decoding a document.
	ErrNotSupported = errors.New("operation not supported")
)

func validateLength(value string, maxLength int, message string) error {
	if utf8.RuneCountInString(value) > maxLength {
		return errors.Wrap(ErrValidation, message)
	}
	return nil
}
