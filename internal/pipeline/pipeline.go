// Package pipeline sequences the lexical, syntax and semantic phases over one
// source text and records the outcome of each phase.
package pipeline

import (
	"fmt"

	"github.com/orizon-lang/declcheck/internal/lexer"
	"github.com/orizon-lang/declcheck/internal/parser"
	"github.com/orizon-lang/declcheck/internal/typechecker"
	"github.com/orizon-lang/declcheck/internal/types"
)

// Phase identifies an analysis phase.
type Phase int

const (
	PhaseLexical Phase = iota
	PhaseSyntax
	PhaseSemantic
)

func (p Phase) String() string {
	switch p {
	case PhaseLexical:
		return "lexical"
	case PhaseSyntax:
		return "syntax"
	case PhaseSemantic:
		return "semantic"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Options configures a run.
type Options struct {
	Policy types.Policy
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{Policy: types.DefaultPolicy()}
}

// PhaseResult is the outcome of one phase.
type PhaseResult struct {
	Phase  Phase
	Passed bool
	Err    error
}

// Report is the outcome of one run. Phases holds only the phases that ran.
type Report struct {
	Filename     string
	Source       string
	Tokens       []lexer.Token
	Phases       []PhaseResult
	Declarations []typechecker.Declaration

	diagnostics []error
}

// Passed reports whether all three phases ran and passed.
func (r *Report) Passed() bool {
	if len(r.Phases) != 3 {
		return false
	}
	for _, ph := range r.Phases {
		if !ph.Passed {
			return false
		}
	}
	return true
}

// FailedPhase returns the phase that stopped the run.
func (r *Report) FailedPhase() (Phase, bool) {
	for _, ph := range r.Phases {
		if !ph.Passed {
			return ph.Phase, true
		}
	}
	return 0, false
}

// Err returns the error of the failed phase, or nil.
func (r *Report) Err() error {
	for _, ph := range r.Phases {
		if !ph.Passed {
			return ph.Err
		}
	}
	return nil
}

// Diagnostics returns every semantic error when the semantic phase failed,
// otherwise the single failing error, if any.
func (r *Report) Diagnostics() []error {
	if len(r.diagnostics) > 0 {
		return r.diagnostics
	}
	if err := r.Err(); err != nil {
		return []error{err}
	}
	return nil
}

// Run analyses source. Each phase runs only if the previous one passed.
func Run(filename, source string, opts Options) *Report {
	r := &Report{
		Filename: filename,
		Source:   source,
		Tokens:   lexer.TokenizeFile(filename, source),
	}

	if !r.record(PhaseLexical, lexer.Validate(r.Tokens)) {
		return r
	}
	if !r.record(PhaseSyntax, parser.Validate(r.Tokens)) {
		return r
	}

	checker := typechecker.NewChecker(opts.Policy)
	r.Declarations = typechecker.Declarations(r.Tokens)
	if !r.record(PhaseSemantic, checker.Check(r.Tokens)) {
		r.diagnostics = checker.CheckAll(r.Tokens)
	}
	return r
}

func (r *Report) record(phase Phase, err error) bool {
	r.Phases = append(r.Phases, PhaseResult{Phase: phase, Passed: err == nil, Err: err})
	return err == nil
}
