package lower

import (
	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/hir"
)

// lowerBlock lowers a normalized *ast.BlockStmt into an *hir.Block,
// grounded on Lowerer::lower_block. nil input (a function with no body,
// not legal syntax today but defensive since Body is a pointer) lowers
// to an empty block.
func (l *Lowerer) lowerBlock(block *ast.BlockStmt) *hir.Block {
	b := &hir.Block{ID: l.next()}
	if block == nil {
		return b
	}
	b.Span = block.Span()
	for _, stmt := range block.Statements {
		b.Stmts = append(b.Stmts, l.lowerStmt(stmt))
	}
	return b
}

func (l *Lowerer) lowerStmt(stmt ast.Statement) *hir.Stmt {
	s := &hir.Stmt{ID: l.next(), Span: stmt.Span()}
	switch st := stmt.(type) {
	case *ast.ExprStmt:
		s.Kind = hir.StmtExpr
		s.Expr = l.lowerExpr(st.Expr)
	case *ast.VarDecl:
		s.Kind = hir.StmtLet
		s.Mutable = st.Mutable
		if st.Name != nil {
			s.Bind = &hir.Pattern{ID: l.next(), Kind: hir.PatternBind, BindDef: l.defOf(st.Name), Name: l.sym(st.Name.Value), Span: st.Name.Span()}
		} else {
			s.Bind = l.lowerPattern(st.Pattern)
		}
		if st.TypeAnnotation != nil {
			s.Type = l.lowerType(st.TypeAnnotation)
			s.HasType = true
		}
		s.Value = l.lowerExpr(st.Value)
	case *ast.ReturnStmt:
		s.Kind = hir.StmtReturn
		if st.Value != nil {
			s.Result = l.lowerExpr(st.Value)
		}
	case *ast.BreakStmt:
		s.Kind = hir.StmtBreak
	case *ast.ContinueStmt:
		s.Kind = hir.StmtContinue
	case *ast.ThrowStmt:
		s.Kind = hir.StmtThrow
		s.Fatal = st.Fatal
		s.Result = l.lowerExpr(st.Value)
	case *ast.IfStmt:
		s.Kind = hir.StmtIf
		s.Cond = l.lowerExpr(st.Cond)
		s.Then = l.lowerBlock(st.Then)
		if st.Else != nil {
			s.HasElse = true
			s.Else = l.lowerElse(st.Else)
		}
	case *ast.WhileStmt:
		s.Kind = hir.StmtWhile
		s.WhileCond = l.lowerExpr(st.Cond)
		s.WhileBody = l.lowerBlock(st.Body)
	case *ast.ForInStmt:
		s.Kind = hir.StmtForIn
		s.Loop = l.lowerPattern(st.Binding)
		s.Iterable = l.lowerExpr(st.Iter)
		s.Body = l.lowerBlock(st.Body)
	case *ast.MatchExpr:
		s.Kind = hir.StmtMatch
		l.fillMatch(s, st)
	case *ast.BlockStmt:
		s.Kind = hir.StmtBlock
		s.Inner = l.lowerBlock(st)
	case *ast.FunctionDecl, *ast.StructDecl, *ast.EnumDecl, *ast.InterfaceDecl, *ast.TypeAliasDecl:
		s.Kind = hir.StmtItem
		s.Item = l.lowerItem(st)
	case *ast.DirectiveStmt:
		s.Kind = hir.StmtExpr // directives carry no runtime effect once past the frontend
	}
	return s
}

// lowerElse normalizes an "else if" chain: a *ast.IfStmt Else becomes a
// single-statement Block wrapping the lowered nested if, matching the
// uniform Block shape every other branch already uses.
func (l *Lowerer) lowerElse(stmt ast.Statement) *hir.Block {
	if block, ok := stmt.(*ast.BlockStmt); ok {
		return l.lowerBlock(block)
	}
	return &hir.Block{ID: l.next(), Span: stmt.Span(), Stmts: []*hir.Stmt{l.lowerStmt(stmt)}}
}

func (l *Lowerer) fillMatch(s *hir.Stmt, m *ast.MatchExpr) {
	for _, subj := range m.Subjects {
		s.Subjects = append(s.Subjects, l.lowerExpr(subj))
	}
	for _, arm := range m.Arms {
		s.Arms = append(s.Arms, l.lowerArm(arm))
	}
	if m.DefaultArm != nil {
		// "elige { ... }" defaults desugar to a wildcard arm so the
		// exhaustiveness pass sees them as a catch-all.
		s.Arms = append(s.Arms, &hir.MatchArm{
			Patterns: []*hir.Pattern{{ID: l.next(), Kind: hir.PatternWildcard, Span: m.DefaultArm.Span()}},
			Body:     l.lowerBlock(m.DefaultArm),
		})
	}
}

func (l *Lowerer) lowerArm(arm *ast.MatchArm) *hir.MatchArm {
	out := &hir.MatchArm{Body: l.lowerBlock(arm.Body)}
	for _, p := range arm.Patterns {
		out.Patterns = append(out.Patterns, l.lowerPattern(p))
	}
	if arm.Guard != nil {
		out.Guard = l.lowerExpr(arm.Guard)
	}
	return out
}
