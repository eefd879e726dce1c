package contacts

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrNotFound is returned when no record is stored under a name.
var ErrNotFound = errors.New("contact not found")

// AddressBook maps contact names to records. It is not safe for concurrent use.
type AddressBook struct {
	records map[string]*Record
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores r under its name, replacing any record with the same name.
func (b *AddressBook) AddRecord(r *Record) {
	if b.records == nil {
		b.records = make(map[string]*Record)
	}
	b.records[r.Name()] = r
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return r, nil
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(b.records, name)
	return nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Names returns every contact name in sorted order.
func (b *AddressBook) Names() []string {
	return slices.Sorted(maps.Keys(b.records))
}

// Records returns every record sorted by name.
func (b *AddressBook) Records() []*Record {
	names := b.Names()
	out := make([]*Record, 0, len(names))
	for _, name := range names {
		out = append(out, b.records[name])
	}
	return out
}
