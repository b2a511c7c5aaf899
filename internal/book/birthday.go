package book

import (
	"fmt"
	"math"
	"time"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// Birthday is a validated calendar-date field parsed from DD-MM-YYYY.
// A zero Birthday is unset and renders as the empty string.
type Birthday struct {
	date time.Time
	set  bool
}

// NewBirthday parses raw as DD-MM-YYYY, or returns ErrInvalidBirthdayFormat
// wrapped with the offending input.
func NewBirthday(raw string) (*Birthday, error) {
	b := &Birthday{}
	if err := b.Set(raw); err != nil {
		return nil, err
	}
	return b, nil
}

// Set replaces the stored date. The previous value is kept on failure.
func (b *Birthday) Set(raw string) error {
	t, err := time.Parse(config.DateFormatInput, raw)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidBirthdayFormat, raw)
	}
	b.date = t
	b.set = true
	return nil
}

// Date returns the stored date and whether a value is set.
func (b *Birthday) Date() (time.Time, bool) {
	return b.date, b.set
}

// DaysUntilNext returns the number of days from today to the next
// occurrence of the birthday's month/day (0 when that is today, -1 when
// unset). Birthdays are defined by the local calendar date of the person,
// so the clock's location is used throughout, not UTC.
func (b *Birthday) DaysUntilNext(clock Clock) int {
	if !b.set {
		return -1
	}
	now := clock.Now()
	loc := now.Location()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	next := nextOccurrence(now, b.date)
	// Round instead of truncating so DST transitions (23h/25h days) do not
	// skew the count.
	return int(math.Round(next.Sub(todayStart).Hours() / 24))
}

// NextOccurrence returns the date of the next birthday at-or-after today.
func (b *Birthday) NextOccurrence(clock Clock) (time.Time, bool) {
	if !b.set {
		return time.Time{}, false
	}
	return nextOccurrence(clock.Now(), b.date), true
}

// nextOccurrence determines the next birthday date relative to 'now'.
// Go's time.Date normalizes Feb 29 to March 1st in non-leap years, which
// is the leapling policy this package documents and tests.
func nextOccurrence(now time.Time, birthDate time.Time) time.Time {
	loc := now.Location()

	candidate := time.Date(now.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)

	// A candidate strictly before the start of today already passed this year.
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if candidate.Before(todayStart) {
		candidate = time.Date(now.Year()+1, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)
	}
	return candidate
}

// String formats the date back to DD-MM-YYYY, or "" when unset.
func (b *Birthday) String() string {
	if !b.set {
		return ""
	}
	return b.date.Format(config.DateFormatInput)
}
