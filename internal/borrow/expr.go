package borrow

import "github.com/radixlang/radix/internal/hir"

// checkExpr is a read-context structural walk: every bare identifier it
// reaches is a readUse, every call/assign/return site dispatches into
// the move/borrow-aware helpers below instead of recursing plainly.
func (c *Checker) checkExpr(e *hir.Expr) {
	if e == nil {
		return
	}
	switch e.Kind {
	case hir.ExprLiteral:
		for _, p := range e.Parts {
			c.checkExpr(p)
		}
	case hir.ExprPath:
		c.readUse(e.Def, e.Span)
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
		c.checkCall(e)
	case hir.ExprMember:
		c.checkExpr(e.Object)
	case hir.ExprIndex:
		c.checkExpr(e.Object)
		c.checkExpr(e.Index)
	case hir.ExprOptionalChain:
		c.checkExpr(e.Object)
		if e.Index != nil {
			c.checkExpr(e.Index)
		}
	case hir.ExprCast:
		c.checkExpr(e.Operand)
		c.checkExpr(e.Fallback)
	case hir.ExprAssign:
		c.checkAssign(e)
	case hir.ExprFunctionLit:
		c.checkFunctionLit(e)
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
		if e.Spread != nil {
			c.checkExpr(e.Spread)
		}
	case hir.ExprMatch:
		c.checkMatchExpr(e)
	}
}

// checkCall resolves the callee's per-parameter modes (plain function or
// method) and routes each argument through move/borrow/read accordingly,
// grounded on BorrowChecker::check_call_args.
func (c *Checker) checkCall(e *hir.Expr) {
	c.checkExpr(e.Callee)

	var modes []hir.ParamMode
	switch e.Callee.Kind {
	case hir.ExprPath:
		modes = c.funcModes[e.Callee.Def]
	case hir.ExprMember:
		modes = c.methodModesFor(e.Callee)
	}

	for i, arg := range e.Args {
		if arg.Spread || i >= len(modes) {
			c.checkExpr(arg.Value)
			continue
		}
		c.checkArg(arg.Value, modes[i])
	}
}

func (c *Checker) checkArg(value *hir.Expr, mode hir.ParamMode) {
	root, ok := rootDef(value)
	if !ok {
		c.checkExpr(value)
		return
	}
	switch mode {
	case hir.ParamMutRef:
		c.borrowMut(root, value.Span)
	case hir.ParamRef:
		c.borrowShared(root, value.Span)
	default:
		// Owned and Move both take the argument by value.
		c.moveUse(root, value.Span)
	}
}

// checkAssign treats a plain "=" as moving its right-hand side, matching
// BorrowChecker::check_expr's Assign arm; compound assignment (+=, etc.)
// only reads it, since the target's prior value still participates.
func (c *Checker) checkAssign(e *hir.Expr) {
	c.checkLvalue(e.Left)
	if e.AssignOp == hir.AssignPlain {
		c.checkMoveExpr(e.Right)
	} else {
		c.checkExpr(e.Right)
	}
}

func (c *Checker) checkLvalue(target *hir.Expr) {
	if target == nil {
		return
	}
	if root, ok := rootDef(target); ok {
		c.writeUse(root, target.Span)
	}
	if target.Kind == hir.ExprIndex {
		c.checkExpr(target.Index)
	}
}

func (c *Checker) checkMoveExpr(value *hir.Expr) {
	if value == nil {
		return
	}
	if root, ok := rootDef(value); ok {
		c.moveUse(root, value.Span)
		return
	}
	c.checkExpr(value)
}

func (c *Checker) checkFunctionLit(e *hir.Expr) {
	c.pushScope()
	for _, p := range e.Params {
		c.ensureState(p.DefID)
	}
	c.checkBlock(e.Body)
	c.popScope()
}

func (c *Checker) checkMatchExpr(e *hir.Expr) {
	for _, s := range e.Subjects {
		c.checkExpr(s)
	}
	for _, arm := range e.Arms {
		c.pushScope()
		for _, p := range arm.Patterns {
			c.bindPattern(p)
		}
		if arm.Guard != nil {
			c.checkExpr(arm.Guard)
		}
		c.checkBlock(arm.Body)
		c.popScope()
	}
	if e.DefaultArm != nil {
		c.pushScope()
		c.checkBlock(e.DefaultArm)
		c.popScope()
	}
}

// bindPattern registers every binding a pattern introduces as a fresh,
// unmoved state; it never reads the scrutinee since pattern matching
// doesn't consume the value it matches against (that happens, if at
// all, through the bound names used later in the arm body).
func (c *Checker) bindPattern(p *hir.Pattern) {
	if p == nil {
		return
	}
	switch p.Kind {
	case hir.PatternBind:
		c.ensureState(p.BindDef)
	case hir.PatternTuple, hir.PatternVariant, hir.PatternOr:
		for _, sub := range p.Elements {
			c.bindPattern(sub)
		}
	}
}
