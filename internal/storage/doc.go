// Package storage persists an address book as a single JSON document on
// disk. Load and Save never return errors: missing files load as empty,
// malformed fields are skipped, and every failure is reported through the
// injected logger.
//
// The store assumes exclusive single-process access to its path. Writes are
// not atomic and nothing is locked.
package storage
