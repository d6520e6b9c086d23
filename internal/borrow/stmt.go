package borrow

import "github.com/radixlang/radix/internal/hir"

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
		c.checkExpr(s.Expr)
	case hir.StmtLet:
		c.checkMoveExpr(s.Value)
		c.bindPattern(s.Bind)
	case hir.StmtReturn:
		c.checkMoveExpr(s.Result)
	case hir.StmtThrow:
		c.checkExpr(s.Result)
	case hir.StmtBreak, hir.StmtContinue:
		// no binding effects
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
		c.pushScope()
		c.bindPattern(s.Loop)
		c.checkBlock(s.Body)
		c.popScope()
	case hir.StmtMatch:
		c.checkMatchStmt(s)
	case hir.StmtBlock:
		c.checkBlock(s.Inner)
	case hir.StmtItem:
		c.checkItem(s.Item)
	}
}

func (c *Checker) checkMatchStmt(s *hir.Stmt) {
	for _, subj := range s.Subjects {
		c.checkExpr(subj)
	}
	for _, arm := range s.Arms {
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
}
