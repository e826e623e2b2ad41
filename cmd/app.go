// Package cmd implements the CLI application to analyze a portfolio spreadsheet.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/positions/logger"
	"github.com/etnz/positions/pipeline"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Commands are the commands of the application.
var Commands = []subcommands.Command{
	&analyzeCmd{},
	&positionsCmd{},
	&exportCmd{},
	&checkCmd{},
	&serveCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	referenceDir string
	mode         string
	logLevel     string
)

// stdout receives the reports.
var stdout io.Writer = os.Stdout

// LoadEnv loads environment variables from the given .env files, ".env" when none.
// Missing files are ignored and variables already set are kept.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot load %s: %w", f, err)
		}
	}
	return nil
}

// SetGlobalFlags registers the global flags on 'f', their defaults read from the environment.
// Call it after LoadEnv.
func SetGlobalFlags(f *flag.FlagSet) {
	f.StringVar(&referenceDir, "refs", getenv(EnvReferenceDir, "riferimenti"), "Directory of the reference spreadsheets, none when empty.")
	f.StringVar(&mode, "mode", getenv(EnvMode, string(pipeline.Auto)), "How to read the portfolio: auto, canonical or vendor.")
	f.StringVar(&logLevel, "log-level", getenv(EnvLogLevel, "info"), "Log level: debug, info, warn or error.")
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// newLogger returns the application logger, writing to stderr.
func newLogger() zerolog.Logger {
	return logger.New(logger.Config{Level: logLevel, Pretty: true})
}

// newRunner returns a pipeline configured from the global flags.
func newRunner() (*pipeline.Runner, error) {
	m, err := pipeline.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	return &pipeline.Runner{Log: newLogger(), Mode: m, ReferenceDir: referenceDir}, nil
}

// renderMarkdown styles markdown for the terminal.
var renderMarkdown = func(md string) (string, error) {
	return glamour.Render(md, "auto")
}

// printMarkdown prints 'md' styled, or as is if styling fails.
func printMarkdown(md string) {
	out, err := renderMarkdown(md)
	if err != nil {
		out = md
	}
	fmt.Fprint(stdout, out)
}

// oneFile returns the single positional argument of a command.
func oneFile(f *flag.FlagSet) (string, bool) {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Expected exactly one spreadsheet file")
		return "", false
	}
	return f.Arg(0), true
}
