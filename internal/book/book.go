package book

import (
	"fmt"
	"iter"
	"strings"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// AddressBook is a name-keyed collection of records. Names are unique and
// case-sensitive; adding a record under an existing name overwrites it.
// Iteration (and therefore pagination) follows insertion order, which keeps
// pages and persistence deterministic.
type AddressBook struct {
	records  map[string]*Record
	order    []string
	pageSize int
}

// NewAddressBook creates an empty book. A pageSize below 1 falls back to
// the default.
func NewAddressBook(pageSize int) *AddressBook {
	if pageSize < 1 {
		pageSize = config.DefaultPageSize
	}
	return &AddressBook{
		records:  make(map[string]*Record),
		pageSize: pageSize,
	}
}

// PageSize returns the configured page size.
func (b *AddressBook) PageSize() int {
	return b.pageSize
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// AddRecord inserts the record keyed by its name, silently overwriting any
// existing record. It always succeeds and returns a status string.
func (b *AddressBook) AddRecord(r *Record) string {
	if _, exists := b.records[r.Name()]; !exists {
		b.order = append(b.order, r.Name())
	}
	b.records[r.Name()] = r
	return fmt.Sprintf(config.StatusContactAdded, r.Name())
}

// DeleteRecord removes the record by name. The returned status
// distinguishes deletion from a missing name.
func (b *AddressBook) DeleteRecord(name string) string {
	if _, ok := b.records[name]; !ok {
		return fmt.Sprintf(config.StatusContactMissing, name)
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return fmt.Sprintf(config.StatusContactDeleted, name)
}

// Get returns the record for name, or nil when absent.
func (b *AddressBook) Get(name string) *Record {
	return b.records[name]
}

// Records yields every record in insertion order.
func (b *AddressBook) Records() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, name := range b.order {
			if !yield(b.records[name]) {
				return
			}
		}
	}
}

// Pages yields 1-indexed pages of at most pageSize records over the
// current state. Each range over the sequence starts a fresh iteration,
// so the pagination is restartable. ceil(Len/pageSize) pages are produced;
// a partially filled final page is included.
func (b *AddressBook) Pages() iter.Seq2[int, []*Record] {
	return func(yield func(int, []*Record) bool) {
		page := 1
		for start := 0; start < len(b.order); start += b.pageSize {
			end := min(start+b.pageSize, len(b.order))
			records := make([]*Record, 0, end-start)
			for _, name := range b.order[start:end] {
				records = append(records, b.records[name])
			}
			if !yield(page, records) {
				return
			}
			page++
		}
	}
}

// Search returns the records whose rendered string contains substr
// anywhere (name, phone digits, or birthday text), ignoring case.
// Minimum query length is the caller's concern, not the store's.
func (b *AddressBook) Search(substr string) []*Record {
	needle := strings.ToLower(substr)
	var matches []*Record
	for r := range b.Records() {
		if strings.Contains(strings.ToLower(r.String()), needle) {
			matches = append(matches, r)
		}
	}
	return matches
}

// String renders all records, one per line, in iteration order.
func (b *AddressBook) String() string {
	var lines []string
	for r := range b.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}
