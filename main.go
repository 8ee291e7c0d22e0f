package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/semmy-space/keyenv/internal/cli"
	"github.com/semmy-space/keyenv/internal/output"
	"github.com/willabides/kongplete"
)

var (
	version = "dev"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cliInstance := &cli.CLI{}
	parser := kong.Must(cliInstance,
		kong.Name("keyenv"),
		kong.Description("Keep environment variables in the OS credential store and run commands with them"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	// Answers shell completion requests and exits when one is in progress
	kongplete.Complete(parser, kongplete.WithPredictor("key", cli.KeyPredictor()))

	ctx, err := parser.Parse(args)
	if err != nil {
		var cliErr *output.CLIError
		if errors.As(err, &cliErr) {
			return output.Report(cliInstance.Formatter(), cliErr)
		}

		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) {
			_ = parseErr.Context.PrintUsage(true)
		}
		return output.ExitGeneral
	}

	// Run command with bound dependencies
	return output.Report(cliInstance.Formatter(), ctx.Run())
}
