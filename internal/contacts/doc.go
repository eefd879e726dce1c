// Package contacts provides the address book entities: validated phone and
// birthday values, the per-contact Record, and the name-keyed AddressBook
// that holds them.
package contacts
