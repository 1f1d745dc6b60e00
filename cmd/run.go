package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/etnz/ironring/terminal"
	"github.com/google/subcommands"
)

type runCmd struct {
	skipIntro bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "open the station terminal (default command)" }
func (*runCmd) Usage() string {
	return `run [-skip-intro]

Open the interactive station terminal on the data folder.

Users log in, use the menus their role gives access to, and log out. The
terminal then asks whether to exit or to wait for the next user. It exits
with a failure status after too many failed logins in a row.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.skipIntro, "skip-intro", false, "do not pace the boot sequence")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, cfg, err := OpenStation()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.skipIntro {
		cfg.IntroDelay = 0
	}
	console, err := terminal.NewConsole(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// An interrupt ends the session through the shutdown sequence.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Debug("open-terminal", "data", store.Dir())
	t := &terminal.Terminal{Store: store, Config: cfg, In: console, Out: console}
	if err := t.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
