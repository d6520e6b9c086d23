// Package pipeline chains the compiler's phases, grounded on
// funvibe-funxy/internal/pipeline/pipeline.go's Pipeline/Processor split.
// Unlike the teacher, each Processor here reports into a shared
// diagnostics.Bag rather than a per-context Errors slice, and the
// context threads the artifacts each later phase needs (tokens, AST,
// HIR, type table) instead of only an AstRoot (PipelineContext and
// Processor were not present in the retrieved pack; reconstructed from
// funvibe-funxy/internal/parser/processor.go's call-site usage, per
// SPEC_FULL.md's AMBIENT STACK note).
package pipeline

import (
	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/hir"
	"github.com/radixlang/radix/internal/resolve"
	"github.com/radixlang/radix/internal/session"
	"github.com/radixlang/radix/internal/source"
	"github.com/radixlang/radix/internal/token"
)

// Context carries one file's compile state across every phase.
type Context struct {
	Session *session.Session
	File    *source.File
	Tokens  []token.Token
	AST     *ast.Program
	HIR     *hir.Module
	Diags   *diagnostics.Bag
	Output  string // generated source, set by EmitProcessor
	Stopped bool   // set by a Processor that hit an unusable artifact

	resolved *resolve.Result // populated by ResolveProcessor, consumed by LowerProcessor
}

// Processor performs one phase over a Context, grounded on the
// teacher's ParserProcessor.Process signature.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline runs an ordered list of Processors over one Context.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from the given processors, run in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every processor in order. Processing continues past
// recoverable errors so later phases can still contribute diagnostics
// (spec.md §5: phases continue past recoverable errors), but a
// processor may set ctx.Stopped when a later phase would only panic on
// a missing artifact (e.g. no tokens to parse).
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, proc := range p.processors {
		if ctx.Stopped {
			break
		}
		ctx = proc.Process(ctx)
	}
	return ctx
}
