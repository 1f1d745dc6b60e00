// Package cmd implements the command line interface of the Iron Ring station
// terminal.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/etnz/ironring"
	"github.com/google/subcommands"
)

// Environment variables providing the default of the global flags. They are
// also set for extensions.
const (
	EnvData    = "IRONRING_DATA"
	EnvConfig  = "IRONRING_CONFIG"
	EnvVerbose = "IRONRING_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", envOr(EnvData, "."), "Path to the station data folder. Defaults to $"+EnvData+" or the current folder.")
var configFile = flag.String("config", os.Getenv(EnvConfig), "Path to the YAML configuration file. Defaults to $"+EnvConfig+" or "+ironring.ConfigFilename+" in the data folder.")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", envBool(EnvVerbose), "Log debug messages. Defaults to $"+EnvVerbose+".")

// Commands are the ironring subcommands.
var Commands = []subcommands.Command{
	&runCmd{},
	&checkCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

func envOr(name, def string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	return def
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}

// OpenStation returns the Store of the data folder, and the configuration.
// The data folder is resolved to an absolute path, so that the terminal does
// not depend on the working directory.
func OpenStation() (*ironring.Store, ironring.Config, error) {
	dir, err := filepath.Abs(*dataDir)
	if err != nil {
		return nil, ironring.Config{}, fmt.Errorf("invalid data folder %q: %w", *dataDir, err)
	}
	filename := *configFile
	if filename == "" {
		filename = filepath.Join(dir, ironring.ConfigFilename)
	}
	cfg, err := ironring.LoadConfig(filename)
	if err != nil {
		return nil, cfg, err
	}
	return ironring.NewStore(dir, cfg.Files), cfg, nil
}
