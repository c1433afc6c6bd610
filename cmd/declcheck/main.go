// Package main provides the declcheck command. It routes subcommands to their
// handlers; each handler takes explicit streams so it can be driven by tests.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/orizon-lang/declcheck/internal/cli"
	"github.com/orizon-lang/declcheck/internal/pipeline"
	"github.com/orizon-lang/declcheck/internal/term"
)

const toolName = "declcheck"

var commands = []cli.CommandInfo{
	{
		Name:        "check",
		Usage:       "declcheck check [--eval SRC] [--json] [--tokens] [--no-widening] [--color MODE] files...",
		Description: "Analyse declaration files",
		Examples:    []string{"declcheck check decls.txt", `declcheck check --eval "int x = 5;"`},
	},
	{
		Name:        "repl",
		Usage:       "declcheck repl [--no-widening] [--color MODE]",
		Description: "Prompt for files and analyse them interactively",
	},
	{
		Name:        "watch",
		Usage:       "declcheck watch [--poll DURATION] FILE",
		Description: "Re-analyse a file whenever it changes",
		Examples:    []string{"declcheck watch decls.txt", "declcheck watch --poll 1s decls.txt"},
	},
	{
		Name:        "serve",
		Usage:       "declcheck serve [--addr HOST:PORT] [--cert FILE --key FILE]",
		Description: "Serve the analysis API over HTTP/3",
	},
	{
		Name:        "remote",
		Usage:       "declcheck remote [--addr HOST:PORT] [--insecure] [--requires CONSTRAINT] FILE",
		Description: "Analyse a file using a running server",
	},
	{
		Name:        "config",
		Usage:       "declcheck config init [--force] [PATH]",
		Description: "Write a default configuration file",
		Examples:    []string{"declcheck config init", "declcheck config init --force ci/declcheck.json"},
	},
	{
		Name:        "version",
		Usage:       "declcheck version [--json]",
		Description: "Show version information",
	},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		cli.PrintUsage(stderr, toolName, commands)
		return cli.ExitUsageErr
	}

	sub, rest := args[0], args[1:]

	switch sub {
	case "help", "-h", "--help":
		return help(rest, stdout, stderr)
	case "version", "-v", "--version":
		jsonOutput := false
		for _, arg := range rest {
			if arg == "--json" || arg == "-j" {
				jsonOutput = true
			}
		}
		cli.PrintVersion(stdout, toolName, jsonOutput)
		return cli.ExitOK
	case "check":
		return runCheck(rest, stdout, stderr)
	case "repl":
		return runREPL(rest, stdin, stdout, stderr)
	case "watch":
		return runWatch(rest, stdout, stderr)
	case "serve":
		return runServe(rest, stdout, stderr)
	case "remote":
		return runRemote(rest, stdout, stderr)
	case "config":
		return runConfig(rest, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown subcommand: %s\n", sub)
		cli.PrintUsage(stderr, toolName, commands)
		return cli.ExitUsageErr
	}
}

func help(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		cli.PrintUsage(stdout, toolName, commands)
		return cli.ExitOK
	}
	for _, cmd := range commands {
		if cmd.Name == args[0] {
			cli.PrintCommandUsage(stdout, toolName, cmd)
			return cli.ExitOK
		}
	}
	fmt.Fprintf(stderr, "unknown command: %s\n", args[0])
	return cli.ExitUsageErr
}

// common holds the flags every analysing subcommand accepts.
type common struct {
	config     string
	verbose    bool
	debug      bool
	noWidening bool
	color      string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "", "config file (default $"+cli.ConfigEnv+")")
	fs.BoolVar(&c.verbose, "verbose", false, "enable verbose logging")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&c.noWidening, "no-widening", false, "reject integer literals for float and double")
	fs.StringVar(&c.color, "color", "", "colour output: auto, always or never")
}

// env is the resolved configuration a subcommand runs with.
type env struct {
	cfg    *cli.Config
	logger *cli.Logger
	opts   pipeline.Options
	color  bool
}

// resolve merges flags over the config file. Explicit flags win.
func (c *common) resolve(stdout, stderr io.Writer) (*env, error) {
	cfg, err := cli.LoadConfig(c.config)
	if err != nil {
		return nil, err
	}

	logger := cli.NewLogger(cfg.Verbose || c.verbose, cfg.Debug || c.debug)
	logger.SetOutput(stderr)

	opts := pipeline.Options{Policy: cfg.Policy()}
	if c.noWidening {
		opts.Policy.AllowIntegerWidening = false
	}

	mode := cfg.Color
	if c.color != "" {
		mode = c.color
	}
	color, err := colorFor(mode, stdout)
	if err != nil {
		return nil, err
	}

	logger.Debug("config %q: widening=%v color=%v", c.config, opts.Policy.AllowIntegerWidening, color)
	return &env{cfg: cfg, logger: logger, opts: opts, color: color}, nil
}

func colorFor(mode string, w io.Writer) (bool, error) {
	f, ok := w.(*os.File)
	if !ok {
		// not a file, so never a terminal
		if mode == "" || mode == "auto" {
			return false, nil
		}
		return term.ColorEnabled(mode, 0)
	}
	return term.ColorEnabled(mode, f.Fd())
}

func usageError(stderr io.Writer, name string, err error) int {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	for _, cmd := range commands {
		if cmd.Name == name {
			fmt.Fprintf(stderr, "Usage: %s\n", cmd.Usage)
		}
	}
	return cli.ExitUsageErr
}
