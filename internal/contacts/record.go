package contacts

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrEmptyName is returned for a blank contact name.
	ErrEmptyName = errors.New("contact name cannot be empty")
	// ErrPhoneNotFound is returned when a record has no matching phone.
	ErrPhoneNotFound = errors.New("phone not found")
)

// Record holds one contact: a name, an ordered list of phones and an
// optional birthday.
type Record struct {
	name     string
	phones   []Phone
	birthday *Birthday
}

// NormalizeName trims user-typed input into the form used as a book key.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// NewRecord creates an empty record for name. The name is kept verbatim so
// it always matches the key it is stored under; callers reading user input
// should pass it through NormalizeName first.
func NewRecord(name string) (*Record, error) {
	if NormalizeName(name) == "" {
		return nil, ErrEmptyName
	}
	return &Record{name: name}, nil
}

// Name returns the record's key.
func (r *Record) Name() string {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	return slices.Clone(r.phones)
}

// AddPhone appends p to the phone list.
func (r *Record) AddPhone(p Phone) {
	r.phones = append(r.phones, p)
}

// FindPhone reports whether the record holds the phone value s.
func (r *Record) FindPhone(s string) (Phone, bool) {
	i := r.indexPhone(s)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// EditPhone replaces the phone old with next, keeping its position.
func (r *Record) EditPhone(old string, next Phone) error {
	i := r.indexPhone(old)
	if i < 0 {
		return fmt.Errorf("%w: %s has no phone %q", ErrPhoneNotFound, r.name, old)
	}
	r.phones[i] = next
	return nil
}

// RemovePhone deletes the first phone equal to s.
func (r *Record) RemovePhone(s string) error {
	i := r.indexPhone(s)
	if i < 0 {
		return fmt.Errorf("%w: %s has no phone %q", ErrPhoneNotFound, r.name, s)
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return nil
}

// SetBirthday sets or replaces the birthday.
func (r *Record) SetBirthday(b Birthday) {
	r.birthday = &b
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

func (r *Record) String() string {
	phones := make([]string, 0, len(r.phones))
	for _, p := range r.phones {
		phones = append(phones, p.String())
	}
	s := fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(phones, "; "))
	if b, ok := r.Birthday(); ok {
		s += ", birthday: " + b.String()
	}
	return s
}

func (r *Record) indexPhone(s string) int {
	s = strings.TrimSpace(s)
	return slices.IndexFunc(r.phones, func(p Phone) bool { return p.value == s })
}
