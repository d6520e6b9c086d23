package check

import (
	"github.com/radixlang/radix/internal/hir"
	"github.com/radixlang/radix/internal/source"
	"github.com/radixlang/radix/internal/types"
)

func (c *Checker) checkBlock(b *hir.Block) {
	if b == nil {
		return
	}
	c.pushScope()
	for _, s := range b.Stmts {
		c.checkStmt(s)
	}
	c.popScope()
}

func (c *Checker) checkStmt(s *hir.Stmt) {
	switch s.Kind {
	case hir.StmtExpr:
		c.inferExpr(s.Expr)
	case hir.StmtLet:
		c.checkLet(s)
	case hir.StmtReturn:
		c.checkReturn(s)
	case hir.StmtThrow:
		if s.Result != nil {
			c.inferExpr(s.Result)
		}
	case hir.StmtBreak, hir.StmtContinue:
		if c.loopDepth == 0 {
			c.errorf("SEM020", s.Span, "break/continue used outside of a loop")
		}
	case hir.StmtIf:
		c.checkExpr(s.Cond, c.table.Primitive(types.PrimBivalens))
		c.checkBlock(s.Then)
		if s.HasElse {
			c.checkBlock(s.Else)
		}
	case hir.StmtWhile:
		c.checkExpr(s.WhileCond, c.table.Primitive(types.PrimBivalens))
		c.loopDepth++
		c.checkBlock(s.WhileBody)
		c.loopDepth--
	case hir.StmtForIn:
		iterTy := c.sub.Resolve(c.table, c.inferExpr(s.Iterable))
		elem := c.iterElemType(iterTy, s.Iterable.Span)
		c.pushScope()
		c.checkPattern(s.Loop, elem)
		c.loopDepth++
		c.checkBlock(s.Body)
		c.loopDepth--
		c.popScope()
	case hir.StmtMatch:
		c.checkMatchStmt(s)
	case hir.StmtBlock:
		c.checkBlock(s.Inner)
	case hir.StmtItem:
		c.checkItem(s.Item)
	}
}

// iterElemType derives the per-iteration binding type for "pro X in Y",
// grounded on typecheck.rs's check_for_in, which reads element types
// off Array/Set/Map the same way.
func (c *Checker) iterElemType(iterTy types.TypeId, span source.Span) types.TypeId {
	ty := c.table.Get(c.table.ResolveAlias(iterTy))
	switch ty.Kind {
	case types.KArray, types.KSet:
		return ty.Elem
	case types.KMap:
		return c.table.Applied(c.table.Param("tuplum"), []types.TypeId{ty.Key, ty.Value})
	default:
		if ty.Kind != types.KError {
			c.errorf("SEM011", span, "this expression is not iterable")
		}
		return c.table.Error()
	}
}

func (c *Checker) checkLet(s *hir.Stmt) {
	var declared types.TypeId
	if s.HasType {
		declared = s.Type
		c.checkExpr(s.Value, declared)
	} else if s.Value != nil {
		declared = c.inferExpr(s.Value)
	} else {
		declared = c.table.Fresh()
	}
	c.bindPattern(s.Bind, declared, s.Mutable)
}

// bindPattern defines every binding a let-pattern introduces, reusing
// checkPattern's structural walk but always treating bound names as
// carrying the statement's declared mutability.
func (c *Checker) bindPattern(p *hir.Pattern, ty types.TypeId, mutable bool) {
	if p == nil {
		return
	}
	p.Type = ty
	switch p.Kind {
	case hir.PatternBind:
		c.defineBinding(p.BindDef, ty, mutable)
	case hir.PatternTuple:
		resolved := c.table.Get(c.table.ResolveAlias(ty))
		for i, sub := range p.Elements {
			elemTy := c.table.Fresh()
			if resolved.Kind == types.KApplied && i < len(resolved.Args) {
				elemTy = resolved.Args[i]
			}
			c.bindPattern(sub, elemTy, mutable)
		}
	default:
		for _, sub := range p.Elements {
			c.bindPattern(sub, c.table.Fresh(), mutable)
		}
	}
}

// checkPattern binds a match/for-in pattern against scrutinee, reported
// immutable (for-in and match bindings don't carry "varia"; the
// exhaustiveness pass, not this one, validates variant coverage).
func (c *Checker) checkPattern(p *hir.Pattern, scrutinee types.TypeId) {
	if p == nil {
		return
	}
	p.Type = scrutinee
	switch p.Kind {
	case hir.PatternWildcard:
	case hir.PatternLiteral:
		c.checkExpr(p.Lit, scrutinee)
	case hir.PatternBind:
		c.defineBinding(p.BindDef, scrutinee, false)
	case hir.PatternTuple:
		resolved := c.table.Get(c.table.ResolveAlias(scrutinee))
		for i, sub := range p.Elements {
			elemTy := c.table.Fresh()
			if resolved.Kind == types.KApplied && i < len(resolved.Args) {
				elemTy = resolved.Args[i]
			}
			c.checkPattern(sub, elemTy)
		}
	case hir.PatternVariant:
		fields := c.variantFields[p.VariantDef]
		for i, sub := range p.Elements {
			elemTy := c.table.Fresh()
			if i < len(fields) {
				elemTy = fields[i]
			}
			c.checkPattern(sub, elemTy)
		}
	case hir.PatternOr:
		for _, sub := range p.Elements {
			c.checkPattern(sub, scrutinee)
		}
	}
}

func (c *Checker) checkMatchStmt(s *hir.Stmt) {
	subjectTys := make([]types.TypeId, 0, len(s.Subjects))
	for _, subj := range s.Subjects {
		subjectTys = append(subjectTys, c.inferExpr(subj))
	}
	for _, arm := range s.Arms {
		c.pushScope()
		for i, p := range arm.Patterns {
			if i < len(subjectTys) {
				c.checkPattern(p, subjectTys[i])
			} else {
				c.checkPattern(p, c.table.Fresh())
			}
		}
		if arm.Guard != nil {
			c.checkExpr(arm.Guard, c.table.Primitive(types.PrimBivalens))
		}
		c.checkBlock(arm.Body)
		c.popScope()
	}
}

func (c *Checker) checkReturn(s *hir.Stmt) {
	if !c.hasReturn {
		if s.Result != nil {
			c.unify(s.Span, c.inferExpr(s.Result), c.currentReturn)
		}
		return
	}
	if s.Result != nil {
		c.checkExpr(s.Result, c.currentReturn)
	} else {
		c.unify(s.Span, c.table.Primitive(types.PrimVacuum), c.currentReturn)
	}
}
