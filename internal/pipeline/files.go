package pipeline

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/orizon-lang/declcheck/internal/errors"
)

// RunFile reads path and analyses its contents. A read failure is returned
// as a READ_FAILED error and no report is produced.
func RunFile(path string, opts Options) (*Report, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ReadFailed(path, err)
	}
	return Run(path, string(source), opts), nil
}

// FileResult pairs a path with its report or read error.
type FileResult struct {
	Path   string
	Report *Report
	Err    error
}

// RunFiles analyses each path independently with at most limit runs in
// flight. Results are in input order; read failures are reported per file.
// The returned error is non-nil only if ctx was cancelled.
func RunFiles(ctx context.Context, paths []string, opts Options, limit int) ([]FileResult, error) {
	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep, err := RunFile(path, opts)
			results[i] = FileResult{Path: path, Report: rep, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
