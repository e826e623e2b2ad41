package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/positions/export"
	"github.com/google/subcommands"
)

type exportCmd struct {
	xlsx string
	pdf  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the analysis as xlsx or PDF" }
func (*exportCmd) Usage() string {
	return `pa export [-xlsx <out.xlsx>] [-pdf <out.pdf>] <file.xlsx>

  Writes the normalized positions and allocations to a workbook, and a one page synthesis
  to a PDF. The workbook can be analyzed again in canonical mode.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.xlsx, "xlsx", "", "Path of the workbook to write.")
	f.StringVar(&c.pdf, "pdf", "", "Path of the PDF synthesis to write.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, ok := oneFile(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	if c.xlsx == "" && c.pdf == "" {
		fmt.Fprintln(os.Stderr, "Nothing to export, use -xlsx and/or -pdf")
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

	if c.xlsx != "" {
		if err := writeFile(c.xlsx, func(f *os.File) error { return export.WriteXLSX(f, a) }); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.xlsx, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Successfully exported %d positions to %s\n", len(a.Positions), c.xlsx)
	}
	if c.pdf != "" {
		if err := writeFile(c.pdf, func(f *os.File) error { return export.WritePDF(f, a, time.Now()) }); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.pdf, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Successfully exported the synthesis to %s\n", c.pdf)
	}
	return subcommands.ExitSuccess
}

// writeFile creates 'path' and fills it with 'write'.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

