// Package report renders pipeline reports as text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/orizon-lang/declcheck/internal/errors"
	"github.com/orizon-lang/declcheck/internal/pipeline"
	"github.com/orizon-lang/declcheck/internal/position"
)

// Options controls text rendering.
type Options struct {
	Color      bool
	ShowTokens bool
	ShowSource bool
}

const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiBold  = "\033[1m"
)

var phaseTitles = map[pipeline.Phase]string{
	pipeline.PhaseLexical:  "Lexical Analysis",
	pipeline.PhaseSyntax:   "Syntax Analysis",
	pipeline.PhaseSemantic: "Semantic Analysis",
}

// failureMessages are the fixed per-phase messages shown on failure.
var failureMessages = map[pipeline.Phase]string{
	pipeline.PhaseLexical:  "Unknown tokens found.",
	pipeline.PhaseSyntax:   "Invalid syntax.",
	pipeline.PhaseSemantic: "Duplicate variable or type mismatch.",
}

// WriteText writes a human-readable report.
func WriteText(w io.Writer, r *pipeline.Report, opts Options) error {
	p := &printer{w: w, color: opts.Color}

	if opts.ShowSource {
		if r.Filename != "" {
			p.printf("File: %s\n", r.Filename)
		}
		p.printf("File contents:\n%s\n\n", r.Source)
	}

	for _, ph := range r.Phases {
		title := phaseTitles[ph.Phase]
		p.printf("%s\n", p.paint(ansiBold, "=== Running "+title+" ==="))

		if !ph.Passed {
			p.printf("%s %s\n", title, p.paint(ansiRed, "FAILED!"))
			p.printf("%s\n", failureMessages[ph.Phase])
			p.diagnostics(r, ph.Phase)
			p.printf("\n")
			continue
		}

		p.printf("%s %s\n", title, p.paint(ansiGreen, "PASSED"))
		if ph.Phase == pipeline.PhaseLexical {
			p.printf("Tokens: %d\n", len(r.Tokens))
			if opts.ShowTokens {
				for _, tok := range r.Tokens {
					p.printf("  %-14s %-20q %s\n", tok.Type, tok.Literal, tok.Span.Start)
				}
			}
		}
		p.printf("\n")
	}

	if r.Passed() {
		p.printf("%s\n", p.paint(ansiGreen, "All analyses passed! Compilation successful."))
	}
	return p.err
}

type printer struct {
	w     io.Writer
	color bool
	err   error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansiReset
}

func (p *printer) diagnostics(r *pipeline.Report, phase pipeline.Phase) {
	var diags []error
	if phase == pipeline.PhaseSemantic {
		diags = r.Diagnostics()
	} else if err := r.Err(); err != nil {
		diags = []error{err}
	}

	file := position.NewSourceFile(r.Filename, r.Source)
	for _, d := range diags {
		p.printf("%s\n", d)
		if se, ok := errors.As(d); ok && se.Span.Start.IsValid() {
			p.printf("%s", position.Highlight(file, se.Span))
		}
	}
}

// Result is the JSON form of a report.
type Result struct {
	Filename    string       `json:"filename,omitempty"`
	Passed      bool         `json:"passed"`
	Phases      []Phase      `json:"phases"`
	Tokens      []Token      `json:"tokens,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Phase is the JSON form of a phase result.
type Phase struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// Token is the JSON form of a token.
type Token struct {
	Type    string `json:"type"`
	Literal string `json:"literal"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// Diagnostic is the JSON form of an analysis error.
type Diagnostic struct {
	Phase    string `json:"phase"`
	Category string `json:"category,omitempty"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message"`
	Lexeme   string `json:"lexeme,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// FromReport converts r. Tokens are included only if withTokens is set.
func FromReport(r *pipeline.Report, withTokens bool) Result {
	res := Result{
		Filename: r.Filename,
		Passed:   r.Passed(),
		Phases:   make([]Phase, 0, len(r.Phases)),
	}

	for _, ph := range r.Phases {
		res.Phases = append(res.Phases, Phase{Name: ph.Phase.String(), Passed: ph.Passed})
	}

	if withTokens {
		for _, tok := range r.Tokens {
			res.Tokens = append(res.Tokens, Token{
				Type:    tok.Type.String(),
				Literal: tok.Literal,
				Line:    tok.Span.Start.Line,
				Column:  tok.Span.Start.Column,
			})
		}
	}

	if phase, failed := r.FailedPhase(); failed {
		for _, err := range r.Diagnostics() {
			res.Diagnostics = append(res.Diagnostics, toDiagnostic(phase, err))
		}
	}
	return res
}

func toDiagnostic(phase pipeline.Phase, err error) Diagnostic {
	d := Diagnostic{Phase: phase.String(), Message: err.Error()}
	if se, ok := errors.As(err); ok {
		d.Category = string(se.Category)
		d.Code = se.Code
		d.Message = se.Message
		d.Lexeme = se.Lexeme
		d.Line = se.Span.Start.Line
		d.Column = se.Span.Start.Column
	}
	return d
}

// WriteJSON writes results as indented JSON: a single object for one result,
// an array otherwise.
func WriteJSON(w io.Writer, results ...Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(results) == 1 {
		return enc.Encode(results[0])
	}
	return enc.Encode(results)
}

// Summary returns a one-line outcome such as "decls.txt: FAILED (syntax)".
func Summary(r *pipeline.Report) string {
	name := r.Filename
	if name == "" {
		name = "<input>"
	}
	if phase, failed := r.FailedPhase(); failed {
		return fmt.Sprintf("%s: FAILED (%s)", name, phase)
	}
	return name + ": PASSED"
}
