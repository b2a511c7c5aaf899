// Package book implements the in-memory contact store: validated fields,
// contact records, the name-keyed address book with pagination, and its
// vCard persistence and iCalendar export.
package book

import (
	"errors"
	"fmt"
)

// Validation failures raised by field assignment. Business outcomes
// (duplicate phone, contact not found) are status strings, not errors.
var (
	// ErrInvalidPhoneFormat reports a phone value that is not 7-15 ASCII digits.
	ErrInvalidPhoneFormat = errors.New("invalid phone number format")

	// ErrInvalidBirthdayFormat reports a birthday that does not parse as DD-MM-YYYY.
	ErrInvalidBirthdayFormat = errors.New("invalid birthday format, use DD-MM-YYYY")
)

// Field is a validated, mutable single-value holder. Assignment fails fast
// on malformed input; a stored value is always valid.
type Field interface {
	fmt.Stringer

	// Set replaces the stored value, validating the raw input first.
	Set(raw string) error
}
