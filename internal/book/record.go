package book

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// Record aggregates one contact: an immutable name, an ordered set of
// distinct phone numbers, and an optional birthday. Records are owned
// exclusively by an AddressBook.
type Record struct {
	name     string
	phones   []*PhoneNumber
	birthday *Birthday
}

// NewRecord creates a record with an optional initial phone and birthday.
// Both raw values go through field validation; failures propagate.
func NewRecord(name, phone, birthday string) (*Record, error) {
	r := &Record{name: name}
	if phone != "" {
		p, err := NewPhoneNumber(phone)
		if err != nil {
			return nil, err
		}
		r.phones = append(r.phones, p)
	}
	if birthday != "" {
		b, err := NewBirthday(birthday)
		if err != nil {
			return nil, err
		}
		r.birthday = b
	}
	return r, nil
}

// Name returns the contact name. It never changes after creation.
func (r *Record) Name() string {
	return r.name
}

// Phones returns the phone numbers in insertion order.
func (r *Record) Phones() []*PhoneNumber {
	return r.phones
}

// Birthday returns the birthday field, or nil when none is set.
func (r *Record) Birthday() *Birthday {
	return r.birthday
}

// AddPhone appends the phone unless an equal value is already present.
// The duplicate case is an expected outcome, reported as a status string.
func (r *Record) AddPhone(phone *PhoneNumber) string {
	for _, p := range r.phones {
		if p.Equal(phone) {
			return fmt.Sprintf(config.StatusPhonePresent, phone, r.name)
		}
	}
	r.phones = append(r.phones, phone)
	return fmt.Sprintf(config.StatusPhoneAdded, phone, r.name)
}

// ReplacePhone swaps the first phone equal to oldPhone for newPhone.
// A missing old value is reported, not raised.
func (r *Record) ReplacePhone(oldPhone, newPhone *PhoneNumber) string {
	for i, p := range r.phones {
		if p.Equal(oldPhone) {
			r.phones[i] = newPhone
			return fmt.Sprintf(config.StatusPhoneChanged, oldPhone, newPhone)
		}
	}
	return fmt.Sprintf(config.StatusPhoneNotFound, oldPhone)
}

// ReplaceBirthday unconditionally replaces the birthday, validating raw.
func (r *Record) ReplaceBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = b
	return nil
}

// String renders "{name}: [{p1}, {p2}] (Birthday: {DD-MM-YYYY})", omitting
// the birthday clause when unset. Search matches against this rendering.
func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString(r.name)
	sb.WriteString(": [")
	for i, p := range r.phones {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString("]")
	if r.birthday != nil {
		fmt.Fprintf(&sb, " (Birthday: %s)", r.birthday)
	}
	return sb.String()
}

// BirthdayInfo renders "{DD-MM-YYYY}, Days to birthday: {n}", or "" when
// no birthday is set.
func (r *Record) BirthdayInfo(clock Clock) string {
	if r.birthday == nil {
		return ""
	}
	return fmt.Sprintf(config.FormatBirthdayInfo, r.birthday, r.birthday.DaysUntilNext(clock))
}
