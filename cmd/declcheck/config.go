package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/orizon-lang/declcheck/internal/cli"
)

const defaultConfigFile = "declcheck.json"

func runConfig(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] != "init" {
		return usageError(stderr, "config", errors.New("expected subcommand: init"))
	}

	fs := flag.NewFlagSet("config init", flag.ContinueOnError)
	fs.SetOutput(stderr)
	force := fs.Bool("force", false, "overwrite an existing file")
	if err := fs.Parse(args[1:]); err != nil {
		return cli.ExitUsageErr
	}
	if err := cli.ValidateArgs(fs.Args(), 0, 1); err != nil {
		return usageError(stderr, "config", err)
	}

	path := defaultConfigFile
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}

	if _, err := os.Stat(path); err == nil && !*force {
		fmt.Fprintf(stderr, "Error: %s already exists (use --force to overwrite)\n", path)
		return cli.ExitUsageErr
	}

	if err := cli.DefaultConfig().SaveConfig(path); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitUsageErr
	}
	fmt.Fprintf(stdout, "wrote %s\n", path)
	return cli.ExitOK
}
