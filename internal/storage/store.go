package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"addressbook/internal/contacts"
)

// DefaultPath is the storage path used when none is configured, relative to
// the working directory.
const DefaultPath = "contacts/contacts.json"

const (
	dirPerm  = 0o755
	filePerm = 0o644
	indent   = "    "
)

// Store defines the interface for address book persistence.
type Store interface {
	// Load populates book from storage and returns it.
	Load(book *contacts.AddressBook) *contacts.AddressBook
	// Save writes every record in book to storage.
	Save(book *contacts.AddressBook)
}

// recordDoc is the on-disk shape of one record.
type recordDoc struct {
	Phones   []string `json:"phones"`
	Birthday *string  `json:"birthday"`
}

// FileStore is a JSON file implementation of Store.
type FileStore struct {
	path   string
	logger *slog.Logger
}

var _ Store = (*FileStore)(nil)

// New creates a FileStore writing to path. An empty path selects
// DefaultPath and a nil logger discards diagnostics.
func New(path string, logger *slog.Logger) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string {
	return s.path
}

// ensureDir creates the parent directory of the storage path if missing.
func (s *FileStore) ensureDir() error {
	dir := filepath.Dir(s.path)
	if _, err := os.Stat(dir); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	s.logger.Info("creating storage directory", "dir", dir)
	return os.MkdirAll(dir, dirPerm)
}

// Load populates book from the JSON file and returns it. A missing file
// leaves book unchanged. A document that fails to decode leaves book
// unchanged. Invalid phones and birthdays are skipped per field; the
// surrounding record is still added.
func (s *FileStore) Load(book *contacts.AddressBook) *contacts.AddressBook {
	if book == nil {
		book = contacts.NewAddressBook()
	}
	if err := s.ensureDir(); err != nil {
		s.logger.Error("could not create storage directory", "path", s.path, "err", err)
		return book
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no contacts file, starting empty", "path", s.path)
			return book
		}
		s.logger.Error("could not read contacts file", "path", s.path, "err", err)
		return book
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return book
	}

	// Decode everything before touching book so a bad document merges nothing.
	var doc map[string]recordDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error("could not decode contacts file", "path", s.path, "err", err)
		return book
	}

	for _, name := range slices.Sorted(maps.Keys(doc)) {
		record, err := s.decodeRecord(name, doc[name])
		if err != nil {
			s.logger.Warn("skipping contact", "name", name, "err", err)
			continue
		}
		book.AddRecord(record)
	}
	s.logger.Debug("contacts loaded", "path", s.path, "entries", len(doc))
	return book
}

func (s *FileStore) decodeRecord(name string, details recordDoc) (*contacts.Record, error) {
	record, err := contacts.NewRecord(name)
	if err != nil {
		return nil, err
	}

	for _, raw := range details.Phones {
		phone, err := contacts.NewPhone(raw)
		if err != nil {
			s.logger.Warn("skipping invalid phone", "name", name, "phone", raw, "err", err)
			continue
		}
		record.AddPhone(phone)
	}

	if details.Birthday != nil && *details.Birthday != "" {
		birthday, err := contacts.ParseBirthday(*details.Birthday)
		if err != nil {
			s.logger.Warn("skipping invalid birthday", "name", name, "birthday", *details.Birthday, "err", err)
		} else {
			record.SetBirthday(birthday)
		}
	}
	return record, nil
}

// Save writes every record in book to the JSON file, replacing its
// contents. Failures are logged and not returned; a failed write may leave
// a partial file behind.
func (s *FileStore) Save(book *contacts.AddressBook) {
	if err := s.ensureDir(); err != nil {
		s.logger.Error("could not create storage directory", "path", s.path, "err", err)
		return
	}
	s.logger.Info("saving contacts", "path", s.path)

	doc := encodeBook(book)
	data, err := json.MarshalIndent(doc, "", indent)
	if err != nil {
		s.logger.Error("could not encode contacts", "err", err)
		return
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, filePerm); err != nil {
		s.logger.Error("could not write contacts file", "path", s.path, "err", err)
		return
	}
	s.logger.Info("contacts saved", "path", s.path, "count", len(doc))
}

func encodeBook(book *contacts.AddressBook) map[string]recordDoc {
	doc := make(map[string]recordDoc)
	if book == nil {
		return doc
	}
	for _, record := range book.Records() {
		phones := record.Phones()
		details := recordDoc{Phones: make([]string, 0, len(phones))}
		for _, p := range phones {
			details.Phones = append(details.Phones, p.String())
		}
		if b, ok := record.Birthday(); ok {
			formatted := b.String()
			details.Birthday = &formatted
		}
		doc[record.Name()] = details
	}
	return doc
}
