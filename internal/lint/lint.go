// Package lint is the sixth and final semantic pass: best-effort style
// warnings over already-checked HIR (spec.md §4.8). Grounded on
// original_source/fons/radix-rs/src/semantic/passes/lint.rs's
// LintContext: a used-DefId set populated by every ExprPath read, a
// collected list of (DefId, Span) candidates (locals, params, imports,
// top-level functions) reported unused at the end of the pass if never
// read, a scope stack for shadow detection, unreachable-code-after-
// terminator detection within a block, and an unnecessary-cast check
// (an ExprCast whose operand's resolved type already equals the
// target).
package lint

import (
	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/hir"
	"github.com/radixlang/radix/internal/intern"
	"github.com/radixlang/radix/internal/source"
)

type candidate struct {
	def  hir.DefId
	span source.Span
}

// Checker walks a hir.Module reporting WARN001/002/003/005.
type Checker struct {
	diags    *diagnostics.Bag
	interner *intern.Interner

	used      map[hir.DefId]bool
	locals    []candidate
	imports   []candidate
	functions []candidate
	scopes    []map[intern.Symbol]hir.DefId
}

// New returns a Checker reporting into diags.
func New(diags *diagnostics.Bag, in *intern.Interner) *Checker {
	return &Checker{diags: diags, interner: in, used: make(map[hir.DefId]bool)}
}

// Check runs the whole pass over mod.
func (c *Checker) Check(mod *hir.Module) {
	c.collectItems(mod)
	for _, item := range mod.Items {
		c.checkItem(item)
	}
	if mod.Entry != nil {
		c.checkBlock(mod.Entry, false)
	}
	c.reportUnused()
}

func (c *Checker) collectItems(mod *hir.Module) {
	for _, item := range mod.Items {
		switch item.Kind {
		case hir.ItemFunction:
			c.functions = append(c.functions, candidate{item.DefID, item.Span})
		case hir.ItemImport:
			for _, it := range item.Import.Items {
				c.imports = append(c.imports, candidate{it.DefID, item.Span})
			}
		}
	}
}

func (c *Checker) reportUnused() {
	for _, cand := range c.locals {
		if !c.used[cand.def] {
			c.warnf("WARN001", cand.span, "unused binding")
		}
	}
	for _, cand := range c.imports {
		if !c.used[cand.def] {
			c.warnf("WARN001", cand.span, "unused import")
		}
	}
	for _, cand := range c.functions {
		if !c.used[cand.def] {
			c.warnf("WARN001", cand.span, "unused function")
		}
	}
}

func (c *Checker) warnf(code string, span source.Span, msg string) {
	c.diags.Add(diagnostics.New(diagnostics.Warning, code, span, msg).WithHelp(diagnostics.Help(code)))
}

func (c *Checker) pushScope() { c.scopes = append(c.scopes, make(map[intern.Symbol]hir.DefId)) }
func (c *Checker) popScope()  { c.scopes = c.scopes[:len(c.scopes)-1] }

func (c *Checker) insertName(name intern.Symbol, def hir.DefId) {
	if n := len(c.scopes); n > 0 {
		c.scopes[n-1][name] = def
	}
}

// checkShadowing is grounded on LintContext::check_shadowing: only the
// nearest enclosing scope that already binds name is consulted, so
// re-declaring the exact same DefId (e.g. revisiting a param list) is
// not flagged, only a genuinely different binding reusing the name.
func (c *Checker) checkShadowing(name intern.Symbol, def hir.DefId, span source.Span) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if existing, ok := c.scopes[i][name]; ok {
			if existing != def {
				c.warnf("WARN005", span, "this binding shadows one from an enclosing scope")
			}
			return
		}
	}
}

func (c *Checker) checkItem(item *hir.Item) {
	switch item.Kind {
	case hir.ItemFunction:
		c.checkFunction(item.Func)
	case hir.ItemStruct:
		for _, f := range item.Struct.Fields {
			c.checkExpr(f.Init, false)
		}
		for _, m := range item.Struct.Methods {
			c.checkFunction(m.Func)
		}
	case hir.ItemConst:
		c.checkExpr(item.Const.Value, false)
	}
}

func (c *Checker) checkFunction(fn *hir.Function) {
	c.pushScope()
	for _, p := range fn.Params {
		c.locals = append(c.locals, candidate{p.DefID, p.Span})
		c.checkShadowing(p.Name, p.DefID, p.Span)
		c.insertName(p.Name, p.DefID)
	}
	if fn.Body != nil {
		c.checkBlock(fn.Body, false)
	}
	c.popScope()
}

func (c *Checker) checkBlock(b *hir.Block, inLoop bool) {
	if b == nil {
		return
	}
	c.pushScope()
	terminated := false
	for _, s := range b.Stmts {
		if terminated {
			c.warnf("WARN002", s.Span, "unreachable code")
			continue
		}
		c.checkStmt(s, inLoop)
		if s.Kind == hir.StmtReturn || ((s.Kind == hir.StmtBreak || s.Kind == hir.StmtContinue) && inLoop) {
			terminated = true
		}
	}
	c.popScope()
}

func (c *Checker) checkStmt(s *hir.Stmt, inLoop bool) {
	switch s.Kind {
	case hir.StmtLet:
		c.checkLet(s)
	case hir.StmtExpr:
		c.checkExpr(s.Expr, inLoop)
	case hir.StmtReturn, hir.StmtThrow:
		c.checkExpr(s.Result, inLoop)
	case hir.StmtIf:
		c.checkExpr(s.Cond, inLoop)
		c.checkBlock(s.Then, inLoop)
		if s.HasElse {
			c.checkBlock(s.Else, inLoop)
		}
	case hir.StmtWhile:
		c.checkExpr(s.WhileCond, inLoop)
		c.checkBlock(s.WhileBody, true)
	case hir.StmtForIn:
		c.checkExpr(s.Iterable, inLoop)
		c.checkBlock(s.Body, true)
	case hir.StmtMatch:
		for _, subj := range s.Subjects {
			c.checkExpr(subj, inLoop)
		}
		for _, arm := range s.Arms {
			if arm.Guard != nil {
				c.checkExpr(arm.Guard, inLoop)
			}
			c.checkBlock(arm.Body, inLoop)
		}
	case hir.StmtBlock:
		c.checkBlock(s.Inner, inLoop)
	case hir.StmtItem:
		c.checkItem(s.Item)
	}
}

func (c *Checker) checkLet(s *hir.Stmt) {
	span := s.Span
	if s.Value != nil {
		span = s.Value.Span
	}
	name := bindName(s.Bind)
	defID := bindDef(s.Bind)
	c.locals = append(c.locals, candidate{defID, span})
	c.checkShadowing(name, defID, span)
	c.insertName(name, defID)
	if s.Value != nil {
		c.checkExpr(s.Value, false)
	}
}

func bindName(p *hir.Pattern) intern.Symbol {
	if p != nil && p.Kind == hir.PatternBind {
		return p.Name
	}
	return 0
}

func bindDef(p *hir.Pattern) hir.DefId {
	if p != nil && p.Kind == hir.PatternBind {
		return p.BindDef
	}
	return 0
}

func (c *Checker) checkExpr(e *hir.Expr, inLoop bool) {
	if e == nil {
		return
	}
	switch e.Kind {
	case hir.ExprPath:
		c.used[e.Def] = true
	case hir.ExprBinary:
		c.checkExpr(e.Left, inLoop)
		c.checkExpr(e.Right, inLoop)
	case hir.ExprUnary:
		c.checkExpr(e.Operand, inLoop)
	case hir.ExprTernary:
		c.checkExpr(e.Cond, inLoop)
		c.checkExpr(e.Then, inLoop)
		c.checkExpr(e.Else, inLoop)
	case hir.ExprRange:
		c.checkExpr(e.Start, inLoop)
		c.checkExpr(e.End, inLoop)
		c.checkExpr(e.Step, inLoop)
	case hir.ExprCall:
		c.checkExpr(e.Callee, inLoop)
		for _, a := range e.Args {
			c.checkExpr(a.Value, inLoop)
		}
	case hir.ExprMember, hir.ExprOptionalChain:
		c.checkExpr(e.Object, inLoop)
		c.checkExpr(e.Index, inLoop)
	case hir.ExprIndex:
		c.checkExpr(e.Object, inLoop)
		c.checkExpr(e.Index, inLoop)
	case hir.ExprCast:
		c.checkExpr(e.Operand, inLoop)
		c.checkExpr(e.Fallback, inLoop)
		if e.Operand != nil && e.Operand.Type == e.Target {
			c.warnf("WARN003", e.Span, "this cast has no effect; the expression already has the target type")
		}
	case hir.ExprAssign:
		c.checkExpr(e.Left, inLoop)
		c.checkExpr(e.Right, inLoop)
	case hir.ExprFunctionLit:
		c.checkBlock(e.Body, false)
	case hir.ExprList, hir.ExprSet, hir.ExprTuple:
		for _, el := range e.Elements {
			c.checkExpr(el, inLoop)
		}
	case hir.ExprMap:
		for _, ent := range e.Entries {
			c.checkExpr(ent.Key, inLoop)
			c.checkExpr(ent.Value, inLoop)
		}
	case hir.ExprRecord:
		for _, name := range e.FieldOrder {
			c.checkExpr(e.Fields[name], inLoop)
		}
		c.checkExpr(e.Spread, inLoop)
	case hir.ExprMatch:
		for _, subj := range e.Subjects {
			c.checkExpr(subj, inLoop)
		}
		for _, arm := range e.Arms {
			if arm.Guard != nil {
				c.checkExpr(arm.Guard, inLoop)
			}
			c.checkBlock(arm.Body, inLoop)
		}
	}
}
