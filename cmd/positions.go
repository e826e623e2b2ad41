package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/positions"
	"github.com/etnz/positions/renderer"
	"github.com/google/subcommands"
)

type positionsCmd struct {
	flag string
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "list the normalized positions" }
func (*positionsCmd) Usage() string {
	return `pa positions [-flag <name>] <file.xlsx>

  Displays the positions after normalization and reference merge. With -flag only the
  positions raised by that review flag are shown. See 'pa topic review'.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.flag, "flag", "", "Only show the positions raised by this review flag.")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, ok := oneFile(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	title, keep := "Positions", func(positions.Position) bool { return true }
	if c.flag != "" {
		rule, ok := positions.FlagByName(c.flag)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown review flag %q\n", c.flag)
			return subcommands.ExitUsageError
		}
		title, keep = fmt.Sprintf("%s: %s", rule.Name, rule.Description), rule.Match
	}

	runner, err := newRunner()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, err := runner.RunFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing %q: %v\n", file, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PositionsMarkdown(title, positions.Filter(a.Positions, keep)))
	return subcommands.ExitSuccess
}
