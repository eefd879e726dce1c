// Package addressbook parses command-line configuration and runs one address
// book command against the configured contacts file.
package addressbook

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"addressbook/internal/config"
	"addressbook/internal/contacts"
	"addressbook/internal/logger"
	"addressbook/internal/storage"
)

// ErrUsage reports a missing, unknown or malformed command.
var ErrUsage = errors.New("usage")

// command is one CLI verb. run reports whether it changed the book.
type command struct {
	args  string
	nargs []int
	run   func(book *contacts.AddressBook, args []string, out io.Writer) (bool, error)
}

var commands = map[string]command{
	"add":           {args: "NAME [PHONE]", nargs: []int{1, 2}, run: addContact},
	"change":        {args: "NAME OLD NEW", nargs: []int{3}, run: changePhone},
	"phone":         {args: "NAME", nargs: []int{1}, run: showPhones},
	"remove-phone":  {args: "NAME PHONE", nargs: []int{2}, run: removePhone},
	"add-birthday":  {args: "NAME DD.MM.YYYY", nargs: []int{2}, run: addBirthday},
	"show-birthday": {args: "NAME", nargs: []int{1}, run: showBirthday},
	"delete":        {args: "NAME", nargs: []int{1}, run: deleteContact},
	"all":           {nargs: []int{0}, run: showAll},
}

// ParseConfig parses environment and flags. It returns the configuration and
// the positional command arguments.
func ParseConfig(fs *flag.FlagSet, args []string) (config.Config, []string, error) {
	cfg, err := config.Parse(fs, args)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, fs.Args(), nil
}

// Run loads the book from cfg.Path, runs the command in args and saves the
// book if the command changed it.
func Run(ctx context.Context, cfg config.Config, args []string, out io.Writer) error {
	store := storage.New(cfg.Path, logger.New(&cfg.Log))
	return Execute(ctx, store, args, out)
}

// Execute runs one command against store.
func Execute(ctx context.Context, store storage.Store, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: addressbook [flags] <command> [args]\n%s", ErrUsage, Usage())
	}
	name := strings.ToLower(args[0])
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q\n%s", ErrUsage, args[0], Usage())
	}
	args = slices.Clone(args[1:])
	if !acceptsArgs(cmd.nargs, len(args)) {
		return fmt.Errorf("%w: %s %s", ErrUsage, name, cmd.args)
	}
	// Every command that takes arguments starts with the contact name.
	if len(args) > 0 {
		args[0] = contacts.NormalizeName(args[0])
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	book := store.Load(contacts.NewAddressBook())
	changed, err := cmd.run(book, args, out)
	if err != nil {
		return err
	}
	if changed {
		store.Save(book)
	}
	return nil
}

// Usage lists every command and its arguments.
func Usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("commands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-14s %s\n", name, commands[name].args)
	}
	return b.String()
}

func acceptsArgs(nargs []int, n int) bool {
	for _, want := range nargs {
		if n == want {
			return true
		}
	}
	return false
}

func addContact(book *contacts.AddressBook, args []string, out io.Writer) (bool, error) {
	record, err := book.Find(args[0])
	message := "Contact updated."
	if errors.Is(err, contacts.ErrNotFound) {
		record, err = contacts.NewRecord(args[0])
		if err != nil {
			return false, err
		}
		message = "Contact added."
	}
	if len(args) == 2 {
		phone, err := contacts.NewPhone(args[1])
		if err != nil {
			return false, err
		}
		record.AddPhone(phone)
	}
	book.AddRecord(record)
	fmt.Fprintln(out, message)
	return true, nil
}

func changePhone(book *contacts.AddressBook, args []string, out io.Writer) (bool, error) {
	record, err := book.Find(args[0])
	if err != nil {
		return false, err
	}
	phone, err := contacts.NewPhone(args[2])
	if err != nil {
		return false, err
	}
	if err := record.EditPhone(args[1], phone); err != nil {
		return false, err
	}
	fmt.Fprintln(out, "Phone changed.")
	return true, nil
}

func showPhones(book *contacts.AddressBook, args []string, out io.Writer) (bool, error) {
	record, err := book.Find(args[0])
	if err != nil {
		return false, err
	}
	phones := record.Phones()
	if len(phones) == 0 {
		fmt.Fprintf(out, "%s has no phones.\n", record.Name())
		return false, nil
	}
	for _, p := range phones {
		fmt.Fprintln(out, p)
	}
	return false, nil
}

func removePhone(book *contacts.AddressBook, args []string, out io.Writer) (bool, error) {
	record, err := book.Find(args[0])
	if err != nil {
		return false, err
	}
	if err := record.RemovePhone(args[1]); err != nil {
		return false, err
	}
	fmt.Fprintln(out, "Phone removed.")
	return true, nil
}

func addBirthday(book *contacts.AddressBook, args []string, out io.Writer) (bool, error) {
	record, err := book.Find(args[0])
	if err != nil {
		return false, err
	}
	birthday, err := contacts.ParseBirthday(args[1])
	if err != nil {
		return false, err
	}
	record.SetBirthday(birthday)
	fmt.Fprintln(out, "Birthday added.")
	return true, nil
}

func showBirthday(book *contacts.AddressBook, args []string, out io.Writer) (bool, error) {
	record, err := book.Find(args[0])
	if err != nil {
		return false, err
	}
	birthday, ok := record.Birthday()
	if !ok {
		fmt.Fprintf(out, "%s has no birthday set.\n", record.Name())
		return false, nil
	}
	fmt.Fprintln(out, birthday)
	return false, nil
}

func deleteContact(book *contacts.AddressBook, args []string, out io.Writer) (bool, error) {
	if err := book.Delete(args[0]); err != nil {
		return false, err
	}
	fmt.Fprintln(out, "Contact deleted.")
	return true, nil
}

func showAll(book *contacts.AddressBook, _ []string, out io.Writer) (bool, error) {
	if book.Len() == 0 {
		fmt.Fprintln(out, "No contacts yet.")
		return false, nil
	}
	for _, record := range book.Records() {
		fmt.Fprintln(out, record)
	}
	return false, nil
}
