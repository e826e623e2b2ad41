// Command pa analyzes portfolio spreadsheets exported by a bank.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/positions/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	if err := cmd.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	cmd.SetGlobalFlags(flag.CommandLine)

	commander := subcommands.NewCommander(flag.CommandLine, "pa")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// Shell completion runs and exits when the COMP_LINE variable is set.
	completion().Complete("pa")

	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range cmd.Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range cmd.Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{
			Flags: flagPredictors(f),
			Args:  predict.Files("*.xlsx"),
		}
	}
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		switch {
		case fl.Name == "mode":
			flags[fl.Name] = predict.Set{"auto", "canonical", "vendor"}
		case fl.Name == "log-level":
			flags[fl.Name] = predict.Set{"debug", "info", "warn", "error"}
		case fl.Name == "refs":
			flags[fl.Name] = predict.Dirs("*")
		case strings.HasSuffix(fl.Name, "xlsx"):
			flags[fl.Name] = predict.Files("*.xlsx")
		case fl.Name == "pdf":
			flags[fl.Name] = predict.Files("*.pdf")
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}
