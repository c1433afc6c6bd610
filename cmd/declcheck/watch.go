package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orizon-lang/declcheck/internal/cli"
	"github.com/orizon-lang/declcheck/internal/pipeline"
	"github.com/orizon-lang/declcheck/internal/report"
	"github.com/orizon-lang/declcheck/internal/watch"
)

func runWatch(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	poll := fs.Duration("poll", 0, "poll at this interval instead of using OS notifications")
	debounce := fs.Duration("debounce", watch.DefaultDebounce, "coalesce changes within this window")
	if err := fs.Parse(args); err != nil {
		return cli.ExitUsageErr
	}
	if err := cli.ValidateArgs(fs.Args(), 1, 1); err != nil {
		return usageError(stderr, "watch", err)
	}
	path := fs.Arg(0)

	e, err := c.resolve(stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitUsageErr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := newWatcher(ctx, path, *poll, *debounce, e.logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitUsageErr
	}
	defer w.Close()

	render := report.Options{Color: e.color}
	analyse := func(p string) {
		rep, err := pipeline.RunFile(p, e.opts)
		if err != nil {
			e.logger.Error("%v", err)
			return
		}
		fmt.Fprintf(stdout, "--- %s at %s ---\n", report.Summary(rep), time.Now().Format("15:04:05"))
		if err := report.WriteText(stdout, rep, render); err != nil {
			e.logger.Error("%v", err)
		}
	}

	e.logger.Info("watching %s", path)
	err = watch.Run(ctx, w, path, analyse, func(err error) { e.logger.Warn("watch: %v", err) })
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitUsageErr
	}
	return cli.ExitOK
}

// newWatcher prefers OS notifications and falls back to polling.
func newWatcher(ctx context.Context, path string, poll, debounce time.Duration, logger *cli.Logger) (watch.Watcher, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	if poll > 0 {
		return watch.NewPolling(ctx, path, poll), nil
	}
	w, err := watch.New(path, debounce)
	if err != nil {
		logger.Warn("fsnotify unavailable (%v), polling instead", err)
		return watch.NewPolling(ctx, path, 500*time.Millisecond), nil
	}
	return w, nil
}
