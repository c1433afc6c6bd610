package server

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	http3 "github.com/quic-go/quic-go/http3"

	"github.com/orizon-lang/declcheck/internal/cli"
	"github.com/orizon-lang/declcheck/internal/report"
)

// Client talks to a running analysis server.
type Client struct {
	http     *http.Client
	base     string
	requires string
}

// NewClient returns an HTTP/3 client for the server at addr. If requires is
// non-empty, every response's version must satisfy that semver constraint.
func NewClient(addr string, tlsCfg *tls.Config, timeout time.Duration, requires string) *Client {
	tr := &http3.Transport{TLSClientConfig: tlsCfg}
	return newClient("https://"+addr, &http.Client{Transport: tr, Timeout: timeout}, requires)
}

func newClient(base string, hc *http.Client, requires string) *Client {
	return &Client{http: hc, base: base, requires: requires}
}

// Analyze submits source for analysis and returns the server's result.
func (c *Client) Analyze(ctx context.Context, filename, source string) (report.Result, error) {
	var res report.Result

	body, err := json.Marshal(AnalyzeRequest{Filename: filename, Source: source})
	if err != nil {
		return res, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/v1/analyze", bytes.NewReader(body))
	if err != nil {
		return res, err
	}
	req.Header.Set("Content-Type", "application/json")

	err = c.do(req, &res)
	return res, err
}

// Version returns the server's version info.
func (c *Client) Version(ctx context.Context) (cli.VersionInfo, error) {
	var info cli.VersionInfo
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/v1/version", nil)
	if err != nil {
		return info, err
	}
	err = c.do(req, &info)
	return info, err
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if c.requires != "" {
		if err := cli.CheckRequires(c.requires, resp.Header.Get(VersionHeader)); err != nil {
			return fmt.Errorf("incompatible server: %w", err)
		}
	}

	if resp.StatusCode != http.StatusOK {
		var e errorBody
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			return fmt.Errorf("server returned %s: %s", resp.Status, e.Error)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	if tr, ok := c.http.Transport.(*http3.Transport); ok {
		return tr.Close()
	}
	return nil
}
