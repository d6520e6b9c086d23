package pipeline

import (
	"github.com/radixlang/radix/internal/borrow"
	"github.com/radixlang/radix/internal/check"
	"github.com/radixlang/radix/internal/codegen"
	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/exhaustive"
	"github.com/radixlang/radix/internal/lexer"
	"github.com/radixlang/radix/internal/lint"
	"github.com/radixlang/radix/internal/lower"
	"github.com/radixlang/radix/internal/parser"
	"github.com/radixlang/radix/internal/resolve"
	"github.com/radixlang/radix/internal/source"
)

// LexProcessor runs the lexer over ctx.File, grounded on the teacher's
// ParserProcessor.Process pattern of recording errors straight into the
// shared diagnostics collection rather than returning them.
type LexProcessor struct{}

func (LexProcessor) Process(ctx *Context) *Context {
	lx := lexer.New(ctx.File)
	tokens, errs := lx.Tokenize()
	for _, e := range errs {
		ctx.Diags.Add(e)
	}
	ctx.Tokens = tokens
	if len(tokens) == 0 {
		ctx.Stopped = true
	}
	return ctx
}

// ParseProcessor turns ctx.Tokens into ctx.AST.
type ParseProcessor struct{}

func (ParseProcessor) Process(ctx *Context) *Context {
	p := parser.New(ctx.File, ctx.Tokens, ctx.Diags)
	ctx.AST = p.ParseProgram()
	if ctx.AST == nil {
		ctx.Stopped = true
	}
	return ctx
}

// ResolveProcessor runs name resolution over ctx.AST, drawing its
// interner from ctx.Session so names stay interned consistently across
// every phase of one compile call (spec.md §5). The Result isn't
// threaded through Context's exported fields (Context only carries
// artifacts every later phase needs uniformly); LowerProcessor re-derives
// it on demand so resolve and lower stay independently testable,
// matching how the teacher keeps each phase's Processor self-contained.
type ResolveProcessor struct{}

func (ResolveProcessor) Process(ctx *Context) *Context {
	r := resolve.New(ctx.Diags, ctx.Session.Interner)
	ctx.resolved = r.Resolve(ctx.AST)
	return ctx
}

// LowerProcessor desugars ctx.AST plus the resolver's Result into ctx.HIR.
type LowerProcessor struct{}

func (LowerProcessor) Process(ctx *Context) *Context {
	if ctx.resolved == nil {
		r := resolve.New(ctx.Diags, ctx.Session.Interner)
		ctx.resolved = r.Resolve(ctx.AST)
	}
	l := lower.New(ctx.resolved, ctx.Session.Types, ctx.Session.Interner, ctx.Diags)
	ctx.HIR = l.Lower(ctx.AST)
	return ctx
}

// CheckProcessor runs bidirectional type checking over ctx.HIR, stamping
// every hir.Expr/Pattern's Type field in place.
type CheckProcessor struct{}

func (CheckProcessor) Process(ctx *Context) *Context {
	if ctx.HIR == nil {
		ctx.Stopped = true
		return ctx
	}
	c := check.New(ctx.Session.Types, ctx.Session.Interner, ctx.Diags)
	c.Check(ctx.HIR)
	return ctx
}

// BorrowProcessor runs ownership/move/borrow checking over the now
// type-stamped ctx.HIR.
type BorrowProcessor struct{}

func (BorrowProcessor) Process(ctx *Context) *Context {
	if ctx.HIR == nil {
		ctx.Stopped = true
		return ctx
	}
	b := borrow.New(ctx.Diags, ctx.Session.Interner, ctx.Session.Types)
	b.Check(ctx.HIR)
	return ctx
}

// ExhaustiveProcessor checks enum-match coverage over ctx.HIR.
type ExhaustiveProcessor struct{}

func (ExhaustiveProcessor) Process(ctx *Context) *Context {
	if ctx.HIR == nil {
		ctx.Stopped = true
		return ctx
	}
	e := exhaustive.New(ctx.Diags, ctx.Session.Types)
	e.Check(ctx.HIR)
	return ctx
}

// LintProcessor runs style warnings over ctx.HIR.
type LintProcessor struct{}

func (LintProcessor) Process(ctx *Context) *Context {
	if ctx.HIR == nil {
		ctx.Stopped = true
		return ctx
	}
	l := lint.New(ctx.Diags, ctx.Session.Interner)
	l.Check(ctx.HIR)
	return ctx
}

// EmitProcessor runs the target's emitter over ctx.HIR and stores the
// generated source in ctx.Output. Emission is skipped when earlier
// phases reported errors; generated output from a broken HIR would only
// mislead (spec.md §7: stdout carries the artifact only on success).
type EmitProcessor struct {
	Target string
}

func (p EmitProcessor) Process(ctx *Context) *Context {
	if ctx.HIR == nil || ctx.Diags.HasErrors() {
		ctx.Stopped = true
		return ctx
	}
	em, err := codegen.New(p.Target, ctx.Session.Types, ctx.Session.Interner, ctx.Diags)
	if err != nil {
		ctx.Diags.Add(diagnostics.Newf(diagnostics.Error, "CODEGEN001", source.Span{}, "%v", err))
		ctx.Stopped = true
		return ctx
	}
	out, err := em.Emit(ctx.HIR)
	if err != nil {
		ctx.Diags.Add(diagnostics.Newf(diagnostics.Error, "CODEGEN001", source.Span{}, "%v", err))
		ctx.Stopped = true
		return ctx
	}
	ctx.Output = out
	return ctx
}
