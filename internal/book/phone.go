package book

import (
	"fmt"
	"regexp"
)

// phonePattern matches a bare digit string of 7 to 15 digits.
var phonePattern = regexp.MustCompile(`^\d{7,15}$`)

// PhoneNumber is a validated digit-string field. Use NewPhoneNumber to
// construct; a zero PhoneNumber holds no value.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber validates raw and returns the phone number, or
// ErrInvalidPhoneFormat wrapped with the offending input.
func NewPhoneNumber(raw string) (*PhoneNumber, error) {
	p := &PhoneNumber{}
	if err := p.Set(raw); err != nil {
		return nil, err
	}
	return p, nil
}

// Set replaces the stored value. The previous value is kept on failure.
func (p *PhoneNumber) Set(raw string) error {
	if !phonePattern.MatchString(raw) {
		return fmt.Errorf("%w: %q", ErrInvalidPhoneFormat, raw)
	}
	p.value = raw
	return nil
}

// Equal reports whether two phone numbers hold the same digit string.
func (p *PhoneNumber) Equal(other *PhoneNumber) bool {
	return other != nil && p.value == other.value
}

// String returns the stored digit string exactly as it was given.
func (p *PhoneNumber) String() string {
	return p.value
}
