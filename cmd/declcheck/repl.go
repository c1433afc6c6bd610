package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/orizon-lang/declcheck/internal/cli"
	"github.com/orizon-lang/declcheck/internal/pipeline"
	"github.com/orizon-lang/declcheck/internal/report"
)

const replPrompt = "Enter the path to a file of variable declarations (:help for commands):"

// REPL prompts for files until one passes every phase.
type REPL struct {
	scanner *bufio.Scanner
	out     io.Writer
	logger  *cli.Logger
	opts    pipeline.Options
	render  report.Options
}

// NewREPL creates a REPL reading commands from in.
func NewREPL(in io.Reader, out io.Writer, logger *cli.Logger, opts pipeline.Options, render report.Options) *REPL {
	render.ShowSource = true
	return &REPL{
		scanner: bufio.NewScanner(in),
		out:     out,
		logger:  logger,
		opts:    opts,
		render:  render,
	}
}

// Run loops until an analysis passes, :quit is entered or input ends.
// It returns true if the last analysis passed.
func (r *REPL) Run() bool {
	for {
		fmt.Fprintln(r.out, replPrompt)
		if !r.scanner.Scan() {
			return false
		}

		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			passed, quit := r.HandleCommand(line)
			if passed || quit {
				return passed
			}
			continue
		}

		if r.analyzeFile(line) {
			return true
		}
	}
}

// HandleCommand runs a colon command. passed reports a successful :src
// analysis; quit reports an exit request.
func (r *REPL) HandleCommand(cmd string) (passed, quit bool) {
	name, arg, _ := strings.Cut(cmd, " ")

	switch name {
	case ":quit", ":q", ":exit":
		fmt.Fprintln(r.out, "Goodbye!")
		return false, true
	case ":help", ":h":
		r.PrintHelp()
	case ":src":
		if strings.TrimSpace(arg) == "" {
			fmt.Fprintln(r.out, "Usage: :src <declarations>")
			return false, false
		}
		return r.analyze(pipeline.Run("<repl>", arg, r.opts)), false
	default:
		fmt.Fprintf(r.out, "Unknown command: %s\n", name)
		fmt.Fprintln(r.out, "Type :help for available commands")
	}
	return false, false
}

func (r *REPL) PrintHelp() {
	fmt.Fprintln(r.out, "REPL Commands:")
	fmt.Fprintln(r.out, "  :help, :h          Show this help")
	fmt.Fprintln(r.out, "  :quit, :q, :exit   Exit REPL")
	fmt.Fprintln(r.out, "  :src <text>        Analyse text instead of a file")
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Enter a file path to analyse its declarations.")
}

func (r *REPL) analyzeFile(path string) bool {
	rep, err := pipeline.RunFile(path, r.opts)
	if err != nil {
		r.logger.Debug("%v", err)
		fmt.Fprintln(r.out, "Error reading file. Please check the path and try again.")
		fmt.Fprintln(r.out)
		return false
	}
	return r.analyze(rep)
}

func (r *REPL) analyze(rep *pipeline.Report) bool {
	if err := report.WriteText(r.out, rep, r.render); err != nil {
		r.logger.Error("%v", err)
		return false
	}
	if !rep.Passed() {
		fmt.Fprintln(r.out, "Try again.")
		fmt.Fprintln(r.out)
	}
	return rep.Passed()
}

func runREPL(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	if err := fs.Parse(args); err != nil {
		return cli.ExitUsageErr
	}

	e, err := c.resolve(stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitUsageErr
	}

	repl := NewREPL(stdin, stdout, e.logger, e.opts, report.Options{Color: e.color})
	if repl.Run() {
		return cli.ExitOK
	}
	return cli.ExitFailed
}
