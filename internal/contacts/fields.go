package contacts

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// BirthdayLayout is the DD.MM.YYYY layout used for birthdays everywhere.
const BirthdayLayout = "02.01.2006"

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15

	// Four-digit years are all BirthdayLayout can write and read back.
	minBirthdayYear = 0
	maxBirthdayYear = 9999
)

var (
	// ErrInvalidPhone is returned by NewPhone for malformed numbers.
	ErrInvalidPhone = errors.New("invalid phone number")
	// ErrInvalidBirthday is returned for dates that cannot be parsed or stored.
	ErrInvalidBirthday = errors.New("invalid birthday")
)

// Phone is a validated phone number: an optional leading '+' followed by
// 10 to 15 digits.
type Phone struct {
	value string
}

// NewPhone validates s and returns it as a Phone.
func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimPrefix(s, "+")
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return Phone{}, fmt.Errorf("%w: %q must have %d to %d digits", ErrInvalidPhone, s, minPhoneDigits, maxPhoneDigits)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Phone{}, fmt.Errorf("%w: %q contains non-digit %q", ErrInvalidPhone, s, r)
		}
	}
	return Phone{value: s}, nil
}

// String returns the raw phone value.
func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date with no time of day.
type Birthday struct {
	date time.Time
}

// NewBirthday truncates t to its calendar date. Years outside 0 to 9999
// are rejected.
func NewBirthday(t time.Time) (Birthday, error) {
	y, m, d := t.Date()
	if y < minBirthdayYear || y > maxBirthdayYear {
		return Birthday{}, fmt.Errorf("%w: year %d outside %d to %d", ErrInvalidBirthday, y, minBirthdayYear, maxBirthdayYear)
	}
	return Birthday{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}, nil
}

// ParseBirthday parses a DD.MM.YYYY date.
func ParseBirthday(s string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, strings.TrimSpace(s))
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q (expected DD.MM.YYYY)", ErrInvalidBirthday, s)
	}
	return NewBirthday(t)
}

// Time returns the date at midnight UTC.
func (b Birthday) Time() time.Time {
	return b.date
}

// String formats the birthday as DD.MM.YYYY.
func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}
