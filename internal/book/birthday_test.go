package book_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-contactbook/internal/book"
)

// mockClock controls time for deterministic testing.
type mockClock struct {
	current time.Time
}

func (m mockClock) Now() time.Time {
	return m.current
}

func TestBirthday_RoundTrip(t *testing.T) {
	tests := []string{
		"26-11-1978",
		"01-01-1990",
		"29-02-2000",
		"31-12-1999",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			b, err := book.NewBirthday(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, b.String())
		})
	}
}

func TestBirthday_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"ISO order", "1978-11-26"},
		{"Slashes", "26/11/1978"},
		{"Month out of range", "26-13-1978"},
		{"Day out of range", "32-01-1978"},
		{"Feb 29 non-leap year", "29-02-2001"},
		{"Garbage", "yesterday"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := book.NewBirthday(tt.raw)
			assert.ErrorIs(t, err, book.ErrInvalidBirthdayFormat)
		})
	}
}

func TestBirthday_DaysUntilNext(t *testing.T) {
	// Reference "Now": June 15th, 2025 (non-leap year)
	clock := mockClock{current: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)}

	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{"Today", "15-06-1990", 0},
		{"Tomorrow", "16-06-1990", 1},
		{"Yesterday wraps to next year", "14-06-1990", 364},
		{"End of year", "31-12-1990", 199},
		{"Start of year wraps", "01-01-1990", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := book.NewBirthday(tt.raw)
			require.NoError(t, err)

			days := b.DaysUntilNext(clock)
			assert.Equal(t, tt.expected, days)
			assert.GreaterOrEqual(t, days, 0)
			assert.Less(t, days, 366)
		})
	}
}

func TestBirthday_NextOccurrence_Leapling(t *testing.T) {
	b, err := book.NewBirthday("29-02-2000")
	require.NoError(t, err)

	// Non-leap target year: Go's time.Date normalizes Feb 29 to Mar 1.
	clock := mockClock{current: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)}
	next, ok := b.NextOccurrence(clock)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), next)

	// Leap year: Feb 29 is preserved.
	clock = mockClock{current: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	next, ok = b.NextOccurrence(clock)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), next)
}

func TestBirthday_Unset(t *testing.T) {
	var b book.Birthday

	assert.Equal(t, "", b.String())
	assert.Equal(t, -1, b.DaysUntilNext(mockClock{current: time.Now()}))

	_, ok := b.Date()
	assert.False(t, ok)
	_, ok = b.NextOccurrence(mockClock{current: time.Now()})
	assert.False(t, ok)
}

func TestBirthday_SetKeepsValueOnFailure(t *testing.T) {
	b, err := book.NewBirthday("26-11-1978")
	require.NoError(t, err)

	err = b.Set("not-a-date")
	assert.ErrorIs(t, err, book.ErrInvalidBirthdayFormat)
	assert.Equal(t, "26-11-1978", b.String())
}
