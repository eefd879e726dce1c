package storage

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"pgregory.net/rapid"

	"addressbook/internal/contacts"
)

// TestFileStore_Property_RoundTrip tests that any valid book survives a save
// followed by a load into a fresh book.
func TestFileStore_Property_RoundTrip(t *testing.T) {
	// Save overwrites, so every run can share one file.
	store := New(filepath.Join(t.TempDir(), "contacts.json"), nil)

	rapid.Check(t, func(rt *rapid.T) {
		book := contacts.NewAddressBook()
		names := rapid.SliceOfNDistinct(rapid.StringMatching(` ?[A-Z][a-z]{0,8}( [A-Z][a-z]{0,8})? ?`), 0, 6, rapid.ID[string]).Draw(rt, "names")
		for _, name := range names {
			record, err := contacts.NewRecord(name)
			if err != nil {
				rt.Fatalf("NewRecord(%q): %v", name, err)
			}
			for _, raw := range rapid.SliceOfN(rapid.StringMatching(`\+?[0-9]{10,15}`), 0, 4).Draw(rt, "phones") {
				phone, err := contacts.NewPhone(raw)
				if err != nil {
					rt.Fatalf("NewPhone(%q): %v", raw, err)
				}
				record.AddPhone(phone)
			}
			if rapid.Bool().Draw(rt, "hasBirthday") {
				days := rapid.IntRange(0, 365*120).Draw(rt, "days")
				birthday, err := contacts.NewBirthday(time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days))
				if err != nil {
					rt.Fatalf("NewBirthday: %v", err)
				}
				record.SetBirthday(birthday)
			}
			book.AddRecord(record)
		}

		store.Save(book)
		loaded := store.Load(contacts.NewAddressBook())

		if loaded.Len() != book.Len() {
			rt.Fatalf("Expected %d records, got %d", book.Len(), loaded.Len())
		}
		for _, want := range book.Records() {
			got, err := loaded.Find(want.Name())
			if err != nil {
				rt.Fatalf("Find(%q): %v", want.Name(), err)
			}
			if fmt.Sprint(phoneStrings(got)) != fmt.Sprint(phoneStrings(want)) {
				rt.Fatalf("%s phones = %v, want %v", want.Name(), phoneStrings(got), phoneStrings(want))
			}
			wantBirthday, wantOK := want.Birthday()
			gotBirthday, gotOK := got.Birthday()
			if wantOK != gotOK || !gotBirthday.Time().Equal(wantBirthday.Time()) {
				rt.Fatalf("%s birthday = %v (%v), want %v (%v)", want.Name(), gotBirthday, gotOK, wantBirthday, wantOK)
			}
		}
	})
}
