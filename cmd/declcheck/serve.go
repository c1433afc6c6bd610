package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orizon-lang/declcheck/internal/cli"
	"github.com/orizon-lang/declcheck/internal/report"
	"github.com/orizon-lang/declcheck/internal/server"
)

func runServe(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	addr := fs.String("addr", "", "UDP listen address (default from config)")
	certFile := fs.String("cert", "", "TLS certificate file")
	keyFile := fs.String("key", "", "TLS key file")
	if err := fs.Parse(args); err != nil {
		return cli.ExitUsageErr
	}

	e, err := c.resolve(stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitUsageErr
	}

	listen := firstNonEmpty(*addr, e.cfg.Server.Addr)
	cert := firstNonEmpty(*certFile, e.cfg.Server.CertFile)
	key := firstNonEmpty(*keyFile, e.cfg.Server.KeyFile)

	var tlsCfg *tls.Config
	switch {
	case cert != "" && key != "":
		tlsCfg, err = server.LoadTLS(cert, key)
	case cert == "" && key == "":
		e.logger.Warn("no certificate configured, using a self-signed development certificate")
		tlsCfg, err = server.SelfSignedTLS("localhost", "127.0.0.1", "::1")
	default:
		return usageError(stderr, "serve", errors.New("--cert and --key must be given together"))
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitUsageErr
	}

	s := server.New(listen, tlsCfg, server.NewHandler(e.opts, e.logger))
	bound, err := s.Start()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitUsageErr
	}
	fmt.Fprintf(stdout, "%s %s serving HTTP/3 on %s\n", toolName, cli.Version, bound)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	e.logger.Info("shutting down")
	if err := s.Stop(); err != nil {
		e.logger.Warn("stop: %v", err)
	}
	return cli.ExitOK
}

func runRemote(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("remote", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	addr := fs.String("addr", "", "server address (default from config)")
	insecure := fs.Bool("insecure", false, "skip certificate verification")
	timeout := fs.Duration("timeout", 10*time.Second, "request timeout")
	requires := fs.String("requires", "", "semver constraint on the server version (default from config)")
	if err := fs.Parse(args); err != nil {
		return cli.ExitUsageErr
	}
	if err := cli.ValidateArgs(fs.Args(), 1, 1); err != nil {
		return usageError(stderr, "remote", err)
	}

	e, err := c.resolve(stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitUsageErr
	}

	path := fs.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitUsageErr
	}

	tlsCfg := &tls.Config{MinVersion: tls.VersionTLS13, InsecureSkipVerify: *insecure}
	serverRequires := firstNonEmpty(*requires, e.cfg.Server.Requires)
	client := server.NewClient(firstNonEmpty(*addr, e.cfg.Server.Addr), tlsCfg, *timeout, serverRequires)
	defer client.Close()

	res, err := client.Analyze(context.Background(), path, string(data))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitUsageErr
	}
	if err := report.WriteJSON(stdout, res); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.ExitUsageErr
	}
	if !res.Passed {
		return cli.ExitFailed
	}
	return cli.ExitOK
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
