package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/rathaus"
	"github.com/fwojciec/rathaus/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Driver *pipeline.Driver
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log full prompts and model responses"`

	Resolve  ResolveCmd  `cmd:"" help:"Resolve official websites for the municipalities in a CSV file"`
	Contacts ContactsCmd `cmd:"" help:"Extract press contacts for municipalities with a resolved website"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	File string `arg:"" help:"Municipality CSV file"`
}

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	if err := deps.Driver.ResolveWebsites(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rathaus.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Resolved websites in %s\n", c.File)
	return nil
}

// ContactsCmd is the "contacts" subcommand.
type ContactsCmd struct {
	File string `arg:"" help:"Municipality CSV file"`
}

// Run executes the contacts command.
func (c *ContactsCmd) Run(deps *Dependencies) error {
	if err := deps.Driver.ExtractContacts(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rathaus.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Extracted contacts in %s\n", c.File)
	return nil
}
