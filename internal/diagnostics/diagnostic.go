// Package diagnostics is the compiler's error-as-data backbone (spec.md
// §7): every phase appends here rather than panicking, and the pipeline
// only short-circuits when the partial artifact is unusable. The
// Diagnostic shape and the NewError/NewWarning constructor pair are
// recovered from the call sites in funvibe-funxy/internal/parser/processor.go
// (diagnostics.NewError("P000", token.Token{}, "...")); that package
// itself was not present in the retrieved pack (see DESIGN.md).
package diagnostics

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/radixlang/radix/internal/source"
)

// Severity classifies a Diagnostic per spec.md §6.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "info"
	}
}

// Diagnostic is one reported problem: severity, stable code, location,
// message and optional help text (spec.md §6).
type Diagnostic struct {
	Severity  Severity
	Code      string
	File      string
	Span      source.Span
	Message   string
	Help      string
	SessionID uuid.UUID // stamped by the collecting Bag, see Bag.Add
}

// New builds a Diagnostic with a literal message.
func New(sev Severity, code string, span source.Span, message string) *Diagnostic {
	return &Diagnostic{Severity: sev, Code: code, Span: span, Message: message}
}

// Newf builds a Diagnostic with a formatted message.
func Newf(sev Severity, code string, span source.Span, format string, args ...any) *Diagnostic {
	return New(sev, code, span, fmt.Sprintf(format, args...))
}

// WithHelp attaches a help string and returns the receiver for chaining.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// Bag accumulates diagnostics across a phase or a whole compile. A Bag
// carrying its compile session's ID stamps it onto every diagnostic it
// collects, so interleaved output from concurrent compiles stays
// attributable (spec.md §5).
type Bag struct {
	SessionID uuid.UUID
	items     []*Diagnostic
}

// Add appends d to the bag (nil is ignored, so call sites can do
// `bag.Add(maybeNilDiagnostic)` without a guard).
func (b *Bag) Add(d *Diagnostic) {
	if d == nil {
		return
	}
	if d.SessionID == uuid.Nil {
		d.SessionID = b.SessionID
	}
	b.items = append(b.items, d)
}

// All returns every diagnostic added so far, in order.
func (b *Bag) All() []*Diagnostic { return b.items }

// HasErrors reports whether any Error-severity diagnostic was recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Summary renders a go-humanize-backed one-line count, used by the CLI's
// --stats output (SPEC_FULL.md domain-stack table).
func (b *Bag) Summary() string {
	errs, warns := 0, 0
	for _, d := range b.items {
		switch d.Severity {
		case Error:
			errs++
		case Warning:
			warns++
		}
	}
	return fmt.Sprintf("%s error(s), %s warning(s)", humanize.Comma(int64(errs)), humanize.Comma(int64(warns)))
}
