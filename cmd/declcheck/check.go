package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/orizon-lang/declcheck/internal/cli"
	"github.com/orizon-lang/declcheck/internal/pipeline"
	"github.com/orizon-lang/declcheck/internal/report"
)

func runCheck(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var c common
	c.register(fs)
	evalSrc := fs.String("eval", "", "analyse the given text instead of files")
	jsonOut := fs.Bool("json", false, "write JSON results")
	showTokens := fs.Bool("tokens", false, "list tokens")
	showSource := fs.Bool("source", false, "print file contents before the analysis")

	if err := fs.Parse(args); err != nil {
		return cli.ExitUsageErr
	}

	evalSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "eval" {
			evalSet = true
		}
	})

	files := fs.Args()
	if !evalSet && len(files) == 0 {
		return usageError(stderr, "check", errors.New("no input: pass files or --eval"))
	}

	e, err := c.resolve(stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitUsageErr
	}
	textOpts := report.Options{Color: e.color, ShowTokens: *showTokens, ShowSource: *showSource}

	var reports []*pipeline.Report
	code := cli.ExitOK

	if evalSet {
		reports = append(reports, pipeline.Run("", *evalSrc, e.opts))
	}

	if len(files) > 0 {
		e.logger.Info("analysing %d file(s) with concurrency %d", len(files), e.cfg.Concurrency)
		results, err := pipeline.RunFiles(context.Background(), files, e.opts, e.cfg.Concurrency)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return cli.ExitUsageErr
		}
		for _, res := range results {
			if res.Err != nil {
				e.logger.Error("%v", res.Err)
				code = cli.ExitUsageErr
				continue
			}
			reports = append(reports, res.Report)
		}
	}

	for _, r := range reports {
		if !r.Passed() && code == cli.ExitOK {
			code = cli.ExitFailed
		}
	}

	if *jsonOut {
		results := make([]report.Result, 0, len(reports))
		for _, r := range reports {
			results = append(results, report.FromReport(r, *showTokens))
		}
		if err := report.WriteJSON(stdout, results...); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return cli.ExitUsageErr
		}
		return code
	}

	for i, r := range reports {
		if len(reports) > 1 {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "--- %s ---\n", report.Summary(r))
		}
		if err := report.WriteText(stdout, r, textOpts); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return cli.ExitUsageErr
		}
	}
	return code
}
