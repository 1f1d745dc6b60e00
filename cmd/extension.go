package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// ExtensionPrefix is the prefix of extension binaries: the unknown command
// "audit" runs "ironring-audit" from the PATH.
const ExtensionPrefix = "ironring-"

// RunExtension attempts to find and execute an external ironring-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := ExtensionPrefix + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		slog.Debug("extension-not-found", "name", externalCmdName, "error", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv passes the global flags to extensions.
func extensionEnv() []string {
	data := *dataDir
	if abs, err := filepath.Abs(data); err == nil {
		data = abs
	}
	return []string{
		EnvData + "=" + data,
		EnvConfig + "=" + *configFile,
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}
