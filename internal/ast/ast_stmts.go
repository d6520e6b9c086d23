package ast

// BlockStmt is the normal form every body-sugar variant in spec.md §4.2
// ("braced block" / "ergo STMT" / inline-return forms) normalizes to.
type BlockStmt struct {
	Base
	Statements []Statement
}

func (s *BlockStmt) stmtNode()        {}
func (s *BlockStmt) Accept(v Visitor) { v.VisitBlockStmt(s) }

type ExprStmt struct {
	Base
	Expr Expression
}

func (s *ExprStmt) stmtNode()        {}
func (s *ExprStmt) Accept(v Visitor) { v.VisitExprStmt(s) }

// ReturnStmt is "redde EXPR" or the elaborated form of a "reddit EXPR"
// inline body.
type ReturnStmt struct {
	Base
	Value Expression // nil: bare redde
}

func (s *ReturnStmt) stmtNode()        {}
func (s *ReturnStmt) Accept(v Visitor) { v.VisitReturnStmt(s) }

// BreakStmt is "discede".
type BreakStmt struct{ Base }

func (s *BreakStmt) stmtNode()        {}
func (s *BreakStmt) Accept(v Visitor) { v.VisitBreakStmt(s) }

// ContinueStmt is "perge".
type ContinueStmt struct{ Base }

func (s *ContinueStmt) stmtNode()        {}
func (s *ContinueStmt) Accept(v Visitor) { v.VisitContinueStmt(s) }

// ThrowStmt is "iacit EXPR", or the elaborated form of "moritor EXPR"
// (Panicking is recorded via the Fatal flag so emitters can choose
// between a recoverable throw and a process-terminating panic call).
type ThrowStmt struct {
	Base
	Value Expression
	Fatal bool // true for "moritor"
}

func (s *ThrowStmt) stmtNode()        {}
func (s *ThrowStmt) Accept(v Visitor) { v.VisitThrowStmt(s) }

// IfStmt is "si COND { ... } secus ...". Else may be a *BlockStmt or a
// nested *IfStmt (an "else if" chain); the lowerer's desugar step
// normalizes every chain into nested Ifs, so by the time HIR sees this
// it is always one of those two shapes (spec.md §4.4).
type IfStmt struct {
	Base
	Cond Expression
	Then *BlockStmt
	Else Statement
}

func (s *IfStmt) stmtNode()        {}
func (s *IfStmt) Accept(v Visitor) { v.VisitIfStmt(s) }

// WhileStmt is "dum COND { ... }".
type WhileStmt struct {
	Base
	Cond Expression
	Body *BlockStmt
}

func (s *WhileStmt) stmtNode()        {}
func (s *WhileStmt) Accept(v Visitor) { v.VisitWhileStmt(s) }

// ForInStmt is "pro NAME in ITER { ... }".
type ForInStmt struct {
	Base
	Binding Pattern
	Iter    Expression
	Body    *BlockStmt
}

func (s *ForInStmt) stmtNode()        {}
func (s *ForInStmt) Accept(v Visitor) { v.VisitForInStmt(s) }

// MatchArm is one "casu PATTERN, PATTERN { ... }" arm of a MatchExpr.
// Multiple Patterns implement the "casu A, B, C" multi-pattern sugar
// from spec.md §4.2.
type MatchArm struct {
	Patterns []Pattern
	Guard    Expression // optional "si COND" guard
	Body     *BlockStmt
}

// MatchExpr is a "discerne SUBJECT { casu ... }" expression. Multiple
// Subjects implement the multi-subject tuple-scrutinee desugar from
// spec.md §4.4; DefaultArm holds the "elige" catch-all, if present.
type MatchExpr struct {
	Base
	Subjects   []Expression
	Arms       []*MatchArm
	DefaultArm *BlockStmt
}

func (s *MatchExpr) exprNode()       {}
func (s *MatchExpr) stmtNode()       {}
func (s *MatchExpr) Accept(v Visitor) { v.VisitMatchExpr(s) }

// DirectiveStmt is a "§directive name" compiler directive.
type DirectiveStmt struct {
	Base
	Name string
}

func (s *DirectiveStmt) stmtNode()        {}
func (s *DirectiveStmt) Accept(v Visitor) { v.VisitDirectiveStmt(s) }
