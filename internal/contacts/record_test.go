package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPhone(t *testing.T, s string) Phone {
	t.Helper()
	p, err := NewPhone(s)
	require.NoError(t, err)
	return p
}

func TestNewRecord_EmptyName(t *testing.T) {
	_, err := NewRecord("   ")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestNewRecord_KeepsNameVerbatim(t *testing.T) {
	r, err := NewRecord(" Alice ")
	require.NoError(t, err)
	assert.Equal(t, " Alice ", r.Name())
	assert.Equal(t, "Alice", NormalizeName(r.Name()))
}

func TestRecord_Phones(t *testing.T) {
	r, err := NewRecord("Alice")
	require.NoError(t, err)

	r.AddPhone(mustPhone(t, "1111111111"))
	r.AddPhone(mustPhone(t, "2222222222"))
	r.AddPhone(mustPhone(t, "3333333333"))

	require.NoError(t, r.EditPhone("2222222222", mustPhone(t, "4444444444")))
	require.NoError(t, r.RemovePhone("1111111111"))

	var got []string
	for _, p := range r.Phones() {
		got = append(got, p.String())
	}
	assert.Equal(t, []string{"4444444444", "3333333333"}, got)

	_, ok := r.FindPhone("3333333333")
	assert.True(t, ok)
	_, ok = r.FindPhone("1111111111")
	assert.False(t, ok)

	assert.ErrorIs(t, r.EditPhone("9999999999", mustPhone(t, "5555555555")), ErrPhoneNotFound)
	assert.ErrorIs(t, r.RemovePhone("9999999999"), ErrPhoneNotFound)
}

func TestRecord_PhonesReturnsCopy(t *testing.T) {
	r, err := NewRecord("Alice")
	require.NoError(t, err)
	r.AddPhone(mustPhone(t, "1111111111"))

	phones := r.Phones()
	phones[0] = mustPhone(t, "2222222222")

	assert.Equal(t, "1111111111", r.Phones()[0].String())
}

func TestRecord_Birthday(t *testing.T) {
	r, err := NewRecord("Bob")
	require.NoError(t, err)

	_, ok := r.Birthday()
	assert.False(t, ok)
	assert.Equal(t, "Contact name: Bob, phones: ", r.String())

	b, err := ParseBirthday("01.02.1990")
	require.NoError(t, err)
	r.SetBirthday(b)
	r.AddPhone(mustPhone(t, "1111111111"))

	got, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "01.02.1990", got.String())
	assert.Equal(t, "Contact name: Bob, phones: 1111111111, birthday: 01.02.1990", r.String())
}
