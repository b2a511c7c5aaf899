package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-contactbook/internal/book"
)

func TestNewPhoneNumber_Valid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Minimum length (7)", "1234567"},
		{"Typical mobile", "5551234567"},
		{"Maximum length (15)", "123456789012345"},
		{"Leading zeros preserved", "0001234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := book.NewPhoneNumber(tt.raw)
			require.NoError(t, err)
			// String must round-trip the exact input.
			assert.Equal(t, tt.raw, p.String())
		})
	}
}

func TestNewPhoneNumber_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Too short (6)", "123456"},
		{"Too long (16)", "1234567890123456"},
		{"Empty", ""},
		{"Letters", "555CALLME"},
		{"E.164 plus prefix", "+380501234567"},
		{"Internal space", "555 1234567"},
		{"Dashes", "555-123-4567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := book.NewPhoneNumber(tt.raw)
			assert.ErrorIs(t, err, book.ErrInvalidPhoneFormat)
		})
	}
}

func TestPhoneNumber_SetKeepsValueOnFailure(t *testing.T) {
	p, err := book.NewPhoneNumber("5551234567")
	require.NoError(t, err)

	err = p.Set("oops")
	assert.ErrorIs(t, err, book.ErrInvalidPhoneFormat)
	assert.Equal(t, "5551234567", p.String(), "failed assignment must not clobber the stored value")

	require.NoError(t, p.Set("7778889990"))
	assert.Equal(t, "7778889990", p.String())
}

func TestPhoneNumber_Equal(t *testing.T) {
	a, err := book.NewPhoneNumber("5551234567")
	require.NoError(t, err)
	b, err := book.NewPhoneNumber("5551234567")
	require.NoError(t, err)
	c, err := book.NewPhoneNumber("5559999999")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
