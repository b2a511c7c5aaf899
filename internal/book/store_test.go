package book_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-contactbook/internal/book"
)

func TestAddressBook_SaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addressbook.vcf")

	src := book.NewAddressBook(5)
	alice := mustRecord(t, "Alice", "5551234567", "01-01-1990")
	alice.AddPhone(mustPhone(t, "1112223334"))
	src.AddRecord(alice)
	src.AddRecord(mustRecord(t, "Bob", "9998887776", ""))
	src.AddRecord(mustRecord(t, "Charlie", "", "29-02-2000"))

	require.NoError(t, src.Save(path))

	dst := book.NewAddressBook(5)
	require.NoError(t, dst.Load(path))

	require.Equal(t, src.Len(), dst.Len())

	loaded := dst.Get("Alice")
	require.NotNil(t, loaded)
	var phones []string
	for _, p := range loaded.Phones() {
		phones = append(phones, p.String())
	}
	assert.ElementsMatch(t, []string{"5551234567", "1112223334"}, phones)
	require.NotNil(t, loaded.Birthday())
	assert.Equal(t, "01-01-1990", loaded.Birthday().String())

	bob := dst.Get("Bob")
	require.NotNil(t, bob)
	assert.Nil(t, bob.Birthday())

	charlie := dst.Get("Charlie")
	require.NotNil(t, charlie)
	assert.Empty(t, charlie.Phones())
	assert.Equal(t, "29-02-2000", charlie.Birthday().String())
}

func TestAddressBook_Load_MissingFile(t *testing.T) {
	b := book.NewAddressBook(5)
	b.AddRecord(mustRecord(t, "Stale", "5551234567", ""))

	// Missing file is recoverable: the book resets to empty, no error.
	err := b.Load(filepath.Join(t.TempDir(), "nope.vcf"))
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestAddressBook_Load_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.vcf")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	b := book.NewAddressBook(5)
	b.AddRecord(mustRecord(t, "Stale", "5551234567", ""))

	require.NoError(t, b.Load(path))
	assert.Equal(t, 0, b.Len())
}

func TestAddressBook_Load_SkipsBadValues(t *testing.T) {
	// One good card, one with an invalid phone and an unparsable birthday.
	content := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:Good",
		"TEL:5551234567",
		"BDAY:1990-01-01",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:Messy",
		"TEL:call-me-maybe",
		"BDAY:someday",
		"END:VCARD",
		"",
	}, "\r\n")

	path := filepath.Join(t.TempDir(), "mixed.vcf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	b := book.NewAddressBook(5)
	require.NoError(t, b.Load(path))

	assert.Equal(t, 2, b.Len())
	good := b.Get("Good")
	require.NotNil(t, good)
	assert.Len(t, good.Phones(), 1)
	assert.Equal(t, "01-01-1990", good.Birthday().String())

	// Invalid values are dropped, the record itself survives.
	messy := b.Get("Messy")
	require.NotNil(t, messy)
	assert.Empty(t, messy.Phones())
	assert.Nil(t, messy.Birthday())
}

func TestAddressBook_Import_Merges(t *testing.T) {
	b := book.NewAddressBook(5)
	b.AddRecord(mustRecord(t, "Alice", "5551234567", ""))

	content := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:Alice",
		"TEL:5551234567",
		"TEL:1112223334",
		"BDAY:1990-01-01",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:Dana",
		"TEL:9998887776",
		"END:VCARD",
		"",
	}, "\r\n")

	count, err := b.Import(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, b.Len())

	// Existing record gained the new phone (duplicate skipped) and the
	// previously missing birthday.
	alice := b.Get("Alice")
	require.NotNil(t, alice)
	assert.Len(t, alice.Phones(), 2)
	require.NotNil(t, alice.Birthday())
	assert.Equal(t, "01-01-1990", alice.Birthday().String())

	require.NotNil(t, b.Get("Dana"))
}

func TestAddressBook_Import_KeepsExistingBirthday(t *testing.T) {
	b := book.NewAddressBook(5)
	b.AddRecord(mustRecord(t, "Alice", "", "26-11-1978"))

	content := "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Alice\r\nBDAY:1990-01-01\r\nEND:VCARD\r\n"
	_, err := b.Import(strings.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, "26-11-1978", b.Get("Alice").Birthday().String())
}
