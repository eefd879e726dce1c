// Package main runs one address book command against the contacts file.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	addressbookcmd "addressbook/internal/cmd/addressbook"
)

func main() {
	cfg, args, err := addressbookcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := addressbookcmd.Run(ctx, cfg, args, os.Stdout); err != nil {
		stop()
		log.Fatal(err)
	}
}
