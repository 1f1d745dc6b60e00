package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/etnz/ironring"
	"github.com/google/subcommands"
)

type checkCmd struct {
	json bool
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the station data folder" }
func (*checkCmd) Usage() string {
	return `check [-json]

Load every record file of the data folder and report the number of records
and the errors found.

The check fails if the users or permissions cannot be loaded, or if any
record file is malformed.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the report as JSON")
}

// fileReport is the check result of a record file.
type fileReport struct {
	Name    string `json:"name"`
	File    string `json:"file"`
	Present bool   `json:"present"`
	Records int    `json:"records"`
	Error   string `json:"error,omitempty"`
}

// checkReport is the check result of a data folder.
type checkReport struct {
	Data  string       `json:"data"`
	OK    bool         `json:"ok"`
	Files []fileReport `json:"files"`
}

// count adapts a Load method to the number of records it loads.
func count[T any](load func() ([]T, error)) func() (int, error) {
	return func() (int, error) {
		v, err := load()
		return len(v), err
	}
}

func countMap[M ~map[K]V, K comparable, V any](load func() (M, error)) func() (int, error) {
	return func() (int, error) {
		v, err := load()
		return len(v), err
	}
}

// check loads every record file of s.
func check(s *ironring.Store) checkReport {
	files := s.Files()
	checks := []struct {
		name, file string
		load       func() (int, error)
	}{
		{"credentials", files.Credentials, countMap(s.LoadCredentials)},
		{"permissions", files.Permissions, countMap(s.LoadPermissions)},
		{"balances", files.Balances, countMap(s.LoadBalances)},
		{"inventory", files.Inventory, count(s.LoadInventory)},
		{"menu", files.Menu, count(s.LoadMenu)},
		{"news", files.News, count(s.LoadNews)},
		{"notes", files.Notes, count(s.LoadNotes)},
	}

	r := checkReport{Data: s.Dir(), OK: true}
	for _, c := range checks {
		fr := fileReport{Name: c.name, File: c.file}
		_, err := os.Stat(s.Path(c.file))
		fr.Present = !errors.Is(err, fs.ErrNotExist)
		n, err := c.load()
		fr.Records = n
		if err != nil {
			fr.Error = err.Error()
			r.OK = false
		}
		r.Files = append(r.Files, fr)
	}
	return r
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _, err := OpenStation()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	r := check(store)
	if c.json {
		if err := writeJSON(os.Stdout, r); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		printMarkdown(renderReport(r))
	}
	if !r.OK {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func writeJSON(w io.Writer, r checkReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// renderReport formats the report as a markdown table.
func renderReport(r checkReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Station data %s\n\n", r.Data)
	b.WriteString("| Records | File | Count | Status |\n|:---|:---|---:|:---|\n")
	for _, f := range r.Files {
		status := "ok"
		switch {
		case f.Error != "":
			status = strings.ReplaceAll(f.Error, "|", `\|`)
		case !f.Present:
			status = "absent"
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n", f.Name, f.File, f.Records, status)
	}
	if r.OK {
		b.WriteString("\nThe data folder is valid.\n")
	} else {
		b.WriteString("\n**The data folder has errors.**\n")
	}
	return b.String()
}
