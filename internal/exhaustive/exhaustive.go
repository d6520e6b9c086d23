// Package exhaustive is the fifth semantic pass: match/"discerne"
// coverage checking over enum-typed scrutinees (spec.md §4.7). Grounded
// on original_source/fons/radix-rs/src/semantic/passes/exhaustive.rs's
// check/check_match: a catch-all (wildcard or plain binding pattern)
// covers every remaining variant, any arm after one is unreachable, and
// a repeated variant pattern is a duplicate. Non-enum scrutinees (and
// enum scrutinees this pass can't resolve a DefId for) get no coverage
// check, though arms after a catch-all are still reported unreachable;
// this pass never touches a match's non-variant literal/tuple patterns
// since those aren't what spec.md §4.7 scopes exhaustiveness to.
package exhaustive

import (
	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/hir"
	"github.com/radixlang/radix/internal/source"
	"github.com/radixlang/radix/internal/types"
)

// Checker walks a hir.Module reporting SEM040/041/042.
type Checker struct {
	diags    *diagnostics.Bag
	table    *types.Table
	variants map[hir.DefId][]hir.DefId // enum DefId -> its variant DefIds, in order
}

// New returns a Checker reporting into diags against table, the same
// Table the type checker stamped hir.Expr.Type with.
func New(diags *diagnostics.Bag, table *types.Table) *Checker {
	return &Checker{diags: diags, table: table, variants: make(map[hir.DefId][]hir.DefId)}
}

// Check runs the whole pass over mod.
func (c *Checker) Check(mod *hir.Module) {
	c.collectVariants(mod)
	for _, item := range mod.Items {
		c.checkItem(item)
	}
	if mod.Entry != nil {
		c.checkBlock(mod.Entry)
	}
}

func (c *Checker) collectVariants(mod *hir.Module) {
	for _, item := range mod.Items {
		if item.Kind != hir.ItemEnum {
			continue
		}
		ids := make([]hir.DefId, len(item.Enum.Variants))
		for i, v := range item.Enum.Variants {
			ids[i] = v.DefID
		}
		c.variants[item.DefID] = ids
	}
}

func (c *Checker) checkItem(item *hir.Item) {
	switch item.Kind {
	case hir.ItemFunction:
		if item.Func.Body != nil {
			c.checkBlock(item.Func.Body)
		}
	case hir.ItemStruct:
		for _, m := range item.Struct.Methods {
			if m.Func.Body != nil {
				c.checkBlock(m.Func.Body)
			}
		}
	case hir.ItemConst:
		if item.Const.Value != nil {
			c.checkExpr(item.Const.Value)
		}
	}
}

func (c *Checker) checkBlock(b *hir.Block) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		c.checkStmt(s)
	}
}

func (c *Checker) checkStmt(s *hir.Stmt) {
	switch s.Kind {
	case hir.StmtExpr:
		c.checkExpr(s.Expr)
	case hir.StmtLet:
		c.checkExpr(s.Value)
	case hir.StmtReturn, hir.StmtThrow:
		c.checkExpr(s.Result)
	case hir.StmtIf:
		c.checkExpr(s.Cond)
		c.checkBlock(s.Then)
		if s.HasElse {
			c.checkBlock(s.Else)
		}
	case hir.StmtWhile:
		c.checkExpr(s.WhileCond)
		c.checkBlock(s.WhileBody)
	case hir.StmtForIn:
		c.checkExpr(s.Iterable)
		c.checkBlock(s.Body)
	case hir.StmtMatch:
		for _, subj := range s.Subjects {
			c.checkExpr(subj)
		}
		c.checkMatchArms(firstOrNil(s.Subjects), s.Arms)
		for _, arm := range s.Arms {
			if arm.Guard != nil {
				c.checkExpr(arm.Guard)
			}
			c.checkBlock(arm.Body)
		}
	case hir.StmtBlock:
		c.checkBlock(s.Inner)
	case hir.StmtItem:
		c.checkItem(s.Item)
	}
}

func firstOrNil(es []*hir.Expr) *hir.Expr {
	if len(es) == 0 {
		return nil
	}
	return es[0]
}

func (c *Checker) checkExpr(e *hir.Expr) {
	if e == nil {
		return
	}
	switch e.Kind {
	case hir.ExprBinary:
		c.checkExpr(e.Left)
		c.checkExpr(e.Right)
	case hir.ExprUnary:
		c.checkExpr(e.Operand)
	case hir.ExprTernary:
		c.checkExpr(e.Cond)
		c.checkExpr(e.Then)
		c.checkExpr(e.Else)
	case hir.ExprRange:
		c.checkExpr(e.Start)
		c.checkExpr(e.End)
		c.checkExpr(e.Step)
	case hir.ExprCall:
		c.checkExpr(e.Callee)
		for _, a := range e.Args {
			c.checkExpr(a.Value)
		}
	case hir.ExprMember, hir.ExprOptionalChain:
		c.checkExpr(e.Object)
		c.checkExpr(e.Index)
	case hir.ExprIndex:
		c.checkExpr(e.Object)
		c.checkExpr(e.Index)
	case hir.ExprCast:
		c.checkExpr(e.Operand)
		c.checkExpr(e.Fallback)
	case hir.ExprAssign:
		c.checkExpr(e.Left)
		c.checkExpr(e.Right)
	case hir.ExprFunctionLit:
		c.checkBlock(e.Body)
	case hir.ExprList, hir.ExprSet, hir.ExprTuple:
		for _, el := range e.Elements {
			c.checkExpr(el)
		}
	case hir.ExprMap:
		for _, ent := range e.Entries {
			c.checkExpr(ent.Key)
			c.checkExpr(ent.Value)
		}
	case hir.ExprRecord:
		for _, name := range e.FieldOrder {
			c.checkExpr(e.Fields[name])
		}
		c.checkExpr(e.Spread)
	case hir.ExprMatch:
		for _, subj := range e.Subjects {
			c.checkExpr(subj)
		}
		c.checkMatchArms(firstOrNil(e.Subjects), e.Arms)
		for _, arm := range e.Arms {
			if arm.Guard != nil {
				c.checkExpr(arm.Guard)
			}
			c.checkBlock(arm.Body)
		}
	}
}

// checkMatchArms is grounded on exhaustive.rs's check_match. Multi-
// subject matches (spec.md's "discerne a, b { ... }" form) only derive
// an enum-coverage set from the first subject/first pattern column,
// matching the single-scrutinee shape the original pass models; other
// columns still get their guard/body walked via the caller.
func (c *Checker) checkMatchArms(scrutinee *hir.Expr, arms []*hir.MatchArm) {
	if scrutinee == nil || scrutinee.Type == 0 {
		return
	}
	enumDef, ok := c.enumDefFromType(scrutinee.Type)

	covered := make(map[hir.DefId]bool)
	hasCatchall := false

	for _, arm := range arms {
		if len(arm.Patterns) == 0 {
			continue
		}
		p := arm.Patterns[0]
		guarded := arm.Guard != nil

		if hasCatchall {
			c.errorf("SEM041", p.Span)
			continue
		}

		switch p.Kind {
		case hir.PatternVariant:
			if !guarded {
				if covered[p.VariantDef] {
					c.errorf("SEM042", p.Span)
				}
				covered[p.VariantDef] = true
			}
		case hir.PatternWildcard, hir.PatternBind:
			if !guarded {
				hasCatchall = true
			}
		}
	}

	if !ok || hasCatchall {
		return
	}
	for _, vid := range c.variants[enumDef] {
		if !covered[vid] {
			c.errorf("SEM040", scrutinee.Span)
			return
		}
	}
}

func (c *Checker) enumDefFromType(id types.TypeId) (hir.DefId, bool) {
	ty := c.table.Get(id)
	switch ty.Kind {
	case types.KEnum:
		return hir.DefId(ty.Def.ID), true
	case types.KApplied:
		return c.enumDefFromType(ty.Ctor)
	case types.KAlias:
		return c.enumDefFromType(ty.Underlying)
	case types.KRef:
		return c.enumDefFromType(ty.Elem)
	default:
		return 0, false
	}
}

var messages = map[string]string{
	"SEM040": "not every variant of this enum is covered by an arm",
	"SEM041": "this pattern is unreachable because an earlier arm already matches everything",
	"SEM042": "this variant already has an arm earlier in the same match",
}

func (c *Checker) errorf(code string, span source.Span) {
	c.diags.Add(diagnostics.New(diagnostics.Error, code, span, messages[code]).WithHelp(diagnostics.Help(code)))
}
