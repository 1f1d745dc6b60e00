package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/etnz/ironring/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show the station terminal help" }
func (*topicCmd) Usage() string {
	return `topic [-list] [<topic>...]

Show help about the station terminal: the record files of the data folder,
the roles and their menu options, the configuration.

Without argument, show the introduction. Use '*' for every topic, and -list
for the topic index.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "list the help topics with their title")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var doc string
	var err error
	if c.list {
		doc, err = topicIndex()
	} else {
		topics := f.Args()
		if len(topics) == 0 {
			topics = []string{"readme"}
		}
		doc, err = docs.Concat(topics...)
	}
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: %v\nRun 'ironring topic -list' for the available topics.\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// topicIndex returns the markdown list of topics.
func topicIndex() (string, error) {
	topics, err := docs.Topics()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("# Help topics\n\n")
	for _, topic := range topics {
		title, err := docs.Title(topic)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "* `%s`: %s\n", topic, title)
	}
	return b.String(), nil
}
