package book_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-contactbook/internal/book"
)

func mustPhone(t *testing.T, raw string) *book.PhoneNumber {
	t.Helper()
	p, err := book.NewPhoneNumber(raw)
	require.NoError(t, err)
	return p
}

func TestNewRecord(t *testing.T) {
	rec, err := book.NewRecord("Alice", "5551234567", "01-01-1990")
	require.NoError(t, err)

	assert.Equal(t, "Alice", rec.Name())
	require.Len(t, rec.Phones(), 1)
	assert.Equal(t, "5551234567", rec.Phones()[0].String())
	require.NotNil(t, rec.Birthday())
	assert.Equal(t, "01-01-1990", rec.Birthday().String())

	rendered := rec.String()
	assert.Contains(t, rendered, "5551234567")
	assert.Contains(t, rendered, "01-01-1990")
}

func TestNewRecord_OptionalFields(t *testing.T) {
	rec, err := book.NewRecord("Bob", "", "")
	require.NoError(t, err)
	assert.Empty(t, rec.Phones())
	assert.Nil(t, rec.Birthday())
	assert.Equal(t, "Bob: []", rec.String())
}

func TestNewRecord_ValidationPropagates(t *testing.T) {
	_, err := book.NewRecord("Bad", "123", "")
	assert.ErrorIs(t, err, book.ErrInvalidPhoneFormat)

	_, err = book.NewRecord("Bad", "5551234567", "1990-01-01")
	assert.ErrorIs(t, err, book.ErrInvalidBirthdayFormat)
}

func TestRecord_AddPhone_Duplicate(t *testing.T) {
	rec, err := book.NewRecord("Alice", "", "")
	require.NoError(t, err)

	msg := rec.AddPhone(mustPhone(t, "5551234567"))
	assert.Equal(t, "Phone 5551234567 added to contact Alice", msg)

	// Same value again: exactly one entry remains, second call reports it.
	msg = rec.AddPhone(mustPhone(t, "5551234567"))
	assert.Equal(t, "Phone 5551234567 already present in contact Alice", msg)
	assert.Len(t, rec.Phones(), 1)
}

func TestRecord_ReplacePhone(t *testing.T) {
	rec, err := book.NewRecord("Alice", "5551234567", "")
	require.NoError(t, err)

	msg := rec.ReplacePhone(mustPhone(t, "5551234567"), mustPhone(t, "1112223334"))
	assert.Equal(t, "Old phone 5551234567 changed to 1112223334", msg)
	require.Len(t, rec.Phones(), 1)
	assert.Equal(t, "1112223334", rec.Phones()[0].String())
}

func TestRecord_ReplacePhone_NotPresent(t *testing.T) {
	rec, err := book.NewRecord("Alice", "5551234567", "")
	require.NoError(t, err)

	// Missing old value is reported, not raised, and phones are untouched.
	msg := rec.ReplacePhone(mustPhone(t, "0001112223"), mustPhone(t, "1112223334"))
	assert.Equal(t, "0001112223 not present in phonebook", msg)
	require.Len(t, rec.Phones(), 1)
	assert.Equal(t, "5551234567", rec.Phones()[0].String())
}

func TestRecord_ReplaceBirthday(t *testing.T) {
	rec, err := book.NewRecord("Alice", "", "01-01-1990")
	require.NoError(t, err)

	require.NoError(t, rec.ReplaceBirthday("26-11-1978"))
	assert.Equal(t, "26-11-1978", rec.Birthday().String())

	err = rec.ReplaceBirthday("bogus")
	assert.ErrorIs(t, err, book.ErrInvalidBirthdayFormat)
	assert.Equal(t, "26-11-1978", rec.Birthday().String())
}

func TestRecord_String(t *testing.T) {
	rec, err := book.NewRecord("Alice", "5551234567", "01-01-1990")
	require.NoError(t, err)
	rec.AddPhone(mustPhone(t, "1112223334"))

	assert.Equal(t, "Alice: [5551234567, 1112223334] (Birthday: 01-01-1990)", rec.String())
}

func TestRecord_BirthdayInfo(t *testing.T) {
	clock := mockClock{current: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)}

	rec, err := book.NewRecord("Alice", "", "16-06-1990")
	require.NoError(t, err)
	assert.Equal(t, "16-06-1990, Days to birthday: 1", rec.BirthdayInfo(clock))

	noBday, err := book.NewRecord("Bob", "", "")
	require.NoError(t, err)
	assert.Equal(t, "", noBday.BirthdayInfo(clock))
}
