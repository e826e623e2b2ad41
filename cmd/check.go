package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/positions"
	"github.com/etnz/positions/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "check the structure of a portfolio spreadsheet" }
func (*checkCmd) Usage() string {
	return `pa check <file.xlsx>

  Reports how the spreadsheet is read, the missing canonical columns if any, whether weights
  sum to 100% and which identifiers are not valid ISINs. Exits with an error when the
  spreadsheet cannot be analyzed.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, ok := oneFile(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	runner, err := newRunner()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := runner.RunFile(file)
	var se *positions.SchemaError
	switch {
	case errors.As(err, &se):
		printMarkdown(fmt.Sprintf("# Check of %s\n\nMissing canonical columns: %s\n", file, strings.Join(se.Missing, ", ")))
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error analyzing %q: %v\n", file, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CheckMarkdown(file, a))
	return subcommands.ExitSuccess
}
