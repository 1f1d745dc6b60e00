// Command ironring is the Iron Ring space station terminal.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"

	"github.com/etnz/ironring/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("ironring")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	slog.SetDefault(cmd.NewLogger())

	// Without a command, open the terminal.
	if flag.NArg() == 0 {
		flag.CommandLine.Parse(append(os.Args[1:], "run"))
	}

	known := map[string]bool{}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		known[c.Name()] = true
	})
	if name := flag.Arg(0); !known[name] {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
