package check

import (
	"github.com/radixlang/radix/internal/hir"
	"github.com/radixlang/radix/internal/types"
)

// finalizeModule is the post-pass from spec.md §4.5: every recorded
// TypeId is substituted through the union-find table, and anything
// still carrying an Infer hole is reported as SEM014. Functions with no
// declared return whose return variable was never constrained resolve
// to Vacuum.
func (c *Checker) finalizeModule(mod *hir.Module) {
	for _, item := range mod.Items {
		c.finalizeItem(item)
	}
	if mod.Entry != nil {
		c.finalizeBlock(mod.Entry)
	}
}

func (c *Checker) finalizeItem(item *hir.Item) {
	switch item.Kind {
	case hir.ItemFunction:
		c.finalizeFunction(item.Func)
	case hir.ItemStruct:
		for _, f := range item.Struct.Fields {
			if f.Init != nil {
				c.finalizeExpr(f.Init)
			}
		}
		for _, m := range item.Struct.Methods {
			c.finalizeFunction(m.Func)
		}
	case hir.ItemConst:
		if item.Const.Value != nil {
			c.finalizeExpr(item.Const.Value)
		}
	}
}

func (c *Checker) finalizeFunction(fn *hir.Function) {
	if !fn.HasReturn && !types.IsFinal(c.table, c.sub, fn.ReturnType) {
		fn.ReturnType = c.table.Primitive(types.PrimVacuum)
	} else {
		fn.ReturnType = c.finalize(fn.ReturnType)
	}
	for _, p := range fn.Params {
		p.Type = c.finalize(p.Type)
	}
	if fn.Body != nil {
		c.finalizeBlock(fn.Body)
	}
}

func (c *Checker) finalizeBlock(b *hir.Block) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		c.finalizeStmt(s)
	}
}

func (c *Checker) finalizeStmt(s *hir.Stmt) {
	switch s.Kind {
	case hir.StmtExpr:
		c.finalizeExpr(s.Expr)
	case hir.StmtLet:
		c.finalizeExpr(s.Value)
		c.finalizePattern(s.Bind)
	case hir.StmtReturn, hir.StmtThrow:
		c.finalizeExpr(s.Result)
	case hir.StmtIf:
		c.finalizeExpr(s.Cond)
		c.finalizeBlock(s.Then)
		if s.HasElse {
			c.finalizeBlock(s.Else)
		}
	case hir.StmtWhile:
		c.finalizeExpr(s.WhileCond)
		c.finalizeBlock(s.WhileBody)
	case hir.StmtForIn:
		c.finalizeExpr(s.Iterable)
		c.finalizePattern(s.Loop)
		c.finalizeBlock(s.Body)
	case hir.StmtMatch:
		for _, subj := range s.Subjects {
			c.finalizeExpr(subj)
		}
		c.finalizeArms(s.Arms)
	case hir.StmtBlock:
		c.finalizeBlock(s.Inner)
	case hir.StmtItem:
		c.finalizeItem(s.Item)
	}
}

func (c *Checker) finalizeArms(arms []*hir.MatchArm) {
	for _, arm := range arms {
		for _, p := range arm.Patterns {
			c.finalizePattern(p)
		}
		c.finalizeExpr(arm.Guard)
		c.finalizeBlock(arm.Body)
	}
}

func (c *Checker) finalizePattern(p *hir.Pattern) {
	if p == nil {
		return
	}
	p.Type = c.finalize(p.Type)
	c.finalizeExpr(p.Lit)
	for _, sub := range p.Elements {
		c.finalizePattern(sub)
	}
}

func (c *Checker) finalizeExpr(e *hir.Expr) {
	if e == nil {
		return
	}
	if !types.IsFinal(c.table, c.sub, e.Type) {
		c.errorf("SEM014", e.Span, "the type of this expression could not be inferred")
	}
	e.Type = c.finalize(e.Type)

	for _, sub := range []*hir.Expr{
		e.Left, e.Right, e.Operand, e.Cond, e.Then, e.Else,
		e.Start, e.End, e.Step, e.Callee, e.Object, e.Index,
		e.Fallback, e.Spread,
	} {
		c.finalizeExpr(sub)
	}
	for _, part := range e.Parts {
		c.finalizeExpr(part)
	}
	for _, a := range e.Args {
		c.finalizeExpr(a.Value)
	}
	for _, el := range e.Elements {
		c.finalizeExpr(el)
	}
	for _, ent := range e.Entries {
		c.finalizeExpr(ent.Key)
		c.finalizeExpr(ent.Value)
	}
	for _, name := range e.FieldOrder {
		c.finalizeExpr(e.Fields[name])
	}
	for _, subj := range e.Subjects {
		c.finalizeExpr(subj)
	}
	if e.Kind == hir.ExprFunctionLit {
		for _, p := range e.Params {
			p.Type = c.finalize(p.Type)
		}
		c.finalizeBlock(e.Body)
	}
	if e.Arms != nil {
		c.finalizeArms(e.Arms)
	}
	if e.DefaultArm != nil {
		c.finalizeBlock(e.DefaultArm)
	}
}
