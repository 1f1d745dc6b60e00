package ironring

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFilename is the configuration file looked up in the data folder.
const ConfigFilename = "ironring.yaml"

// Config holds the terminal settings read from the optional YAML file.
//
//	max_attempts: 3
//	intro_delay: 40ms
//	files:
//	  credentials: users.txt
//	  balances: user_holos.txt
type Config struct {
	// MaxAttempts is the number of failed logins before lockout.
	MaxAttempts int `yaml:"max_attempts"`
	// IntroDelay paces each line of the boot sequence.
	IntroDelay time.Duration `yaml:"intro_delay"`
	// Files overrides record file names, relative to the data folder.
	Files Files `yaml:"files"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: DefaultMaxAttempts,
		IntroDelay:  40 * time.Millisecond,
		Files:       DefaultFiles(),
	}
}

// LoadConfig reads the configuration file. A missing or empty file yields
// DefaultConfig. Settings absent from the file keep their default value.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("cannot open config %q: %w", filename, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("invalid config %q: %w", filename, err)
	}
	if cfg.MaxAttempts < 1 {
		return cfg, fmt.Errorf("invalid config %q: max_attempts must be at least 1", filename)
	}
	if cfg.IntroDelay < 0 {
		return cfg, fmt.Errorf("invalid config %q: intro_delay cannot be negative", filename)
	}
	return cfg, nil
}
