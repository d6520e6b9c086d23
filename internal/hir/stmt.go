package hir

import (
	"github.com/radixlang/radix/internal/intern"
	"github.com/radixlang/radix/internal/source"
	"github.com/radixlang/radix/internal/types"
)

// StmtKind tags one HIR statement shape, grounded on
// original_source/fons/radix-rs/src/hir/lower/stmt.rs's HirStmtKind. Every
// body-sugar form (braced block, "ergo", "reddit", "tacet") has already
// been normalized to a Block by the parser, so the lowerer never sees
// those as distinct statement shapes.
type StmtKind int

const (
	StmtExpr StmtKind = iota
	StmtLet
	StmtReturn
	StmtBreak
	StmtContinue
	StmtThrow
	StmtIf
	StmtWhile
	StmtForIn
	StmtMatch
	StmtBlock
	StmtItem // a local function/struct/enum declaration lowered in place
)

// Block is a lowered list of statements sharing one lexical scope,
// grounded on HirBlock.
type Block struct {
	ID    Id
	Stmts []*Stmt
	Span  source.Span
}

// Stmt is one HIR statement node.
type Stmt struct {
	ID   Id
	Kind StmtKind
	Span source.Span

	// StmtExpr
	Expr *Expr

	// StmtLet
	Bind     *Pattern
	Type     types.TypeId
	HasType  bool
	Value    *Expr
	Mutable  bool

	// StmtReturn / StmtThrow
	Result *Expr
	Fatal  bool // StmtThrow: "moritor" (fatal) vs "iacit" (recoverable)

	// StmtIf
	Cond   *Expr
	Then   *Block
	Else   *Block
	HasElse bool

	// StmtWhile
	WhileCond *Expr
	WhileBody *Block

	// StmtForIn
	Loop     *Pattern
	Iterable *Expr
	Body     *Block

	// StmtMatch
	Subjects []*Expr
	Arms     []*MatchArm

	// StmtBlock
	Inner *Block

	// StmtItem
	Item *Item

	LoopLabel intern.Symbol
}
