package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Environment variables read by pa, and passed to its extensions.
const (
	EnvReferenceDir = "PA_REFERENCE_DIR"
	EnvMode         = "PA_MODE"
	EnvLogLevel     = "PA_LOG_LEVEL"
	EnvAddr         = "PA_ADDR"
)

// extensionEnv returns the environment of an extension: the current one with the global
// flags values.
func extensionEnv() []string {
	return append(os.Environ(),
		EnvReferenceDir+"="+referenceDir,
		EnvMode+"="+mode,
		EnvLogLevel+"="+logLevel,
	)
}

// RunExtension attempts to find and execute an external pa-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "pa-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv()

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
