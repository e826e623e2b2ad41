package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/positions/renderer"
	"github.com/google/subcommands"
)

type analyzeCmd struct {
	json  bool
	query string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "summarize a portfolio spreadsheet" }
func (*analyzeCmd) Usage() string {
	return `pa analyze [-json] [-q <jsonpath>] <file.xlsx>

  Normalizes the portfolio, completes it with reference data, and displays totals,
  allocations and review flags.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the analysis as JSON.")
	f.StringVar(&c.query, "q", "", "Print the result of a JSONPath query on the JSON analysis, e.g. '$.summary.total'.")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing %q: %v\n", file, err)
		return subcommands.ExitFailure
	}

	var v any = a
	switch {
	case c.query != "":
		if v, err = a.Query(c.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	case !c.json:
		printMarkdown(renderer.SummaryMarkdown(a))
		return subcommands.ExitSuccess
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
