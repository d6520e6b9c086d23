// Package ast defines the four mutually referential tagged unions from
// spec.md §3 — Stmt, Expr, TypeExpr, Pattern — each carrying a fresh
// NodeId and span, plus the declarations that bind them into a Program.
// Grounded on funvibe-funxy/internal/ast's struct-per-node-kind layout
// and its Accept(v Visitor) visitor pattern (ast_core.go, ast_expressions.go),
// adapted to carry source.Span instead of only a lead token, per the
// Span invariants in spec.md §3.
package ast

import (
	"math/big"

	"github.com/radixlang/radix/internal/source"
)

// NodeId uniquely identifies one AST node within a compile (spec.md §3).
type NodeId int

// IDGen hands out monotonically increasing NodeIds, shared by the whole
// parse of one file so NodeIds stay unique the way DefId/HirId counters
// do downstream.
type IDGen struct{ next NodeId }

// Next returns a fresh NodeId.
func (g *IDGen) Next() NodeId {
	g.next++
	return g.next
}

// Node is the root interface every AST node satisfies.
type Node interface {
	ID() NodeId
	Span() source.Span
	Accept(v Visitor)
}

// Statement is a Node appearing in statement position.
type Statement interface {
	Node
	stmtNode()
}

// Expression is a Node appearing in expression position.
type Expression interface {
	Node
	exprNode()
}

// TypeExpr is a Node appearing in type position.
type TypeExpr interface {
	Node
	typeNode()
}

// Pattern is a Node appearing in pattern position (match arms, bindings).
type Pattern interface {
	Node
	patternNode()
}

// Base is embedded by every concrete node to provide ID()/Span(). Its
// fields are exported so the parser (and any other package constructing
// nodes) can populate them in a composite literal, since Go forbids
// naming an unexported type from outside its package.
type Base struct {
	NodeID   NodeId
	NodeSpan source.Span
}

func (b Base) ID() NodeId        { return b.NodeID }
func (b Base) Span() source.Span { return b.NodeSpan }

// NewBase is a convenience constructor for Base, used by callers that
// prefer a function call over a keyed composite literal.
func NewBase(id NodeId, span source.Span) Base {
	return Base{NodeID: id, NodeSpan: span}
}

// Program is the root of every parse.
type Program struct {
	Base
	File       string
	Package    *PackageDecl
	Imports    []*ImportDecl
	Statements []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }

// PackageDecl is the "ordo" declaration at the top of a file.
type PackageDecl struct {
	Base
	Name    *Identifier
	Exports []*ExportSpec
	ExportAll bool
}

func (d *PackageDecl) stmtNode()     {}
func (d *PackageDecl) Accept(v Visitor) { v.VisitPackageDecl(d) }

// ExportSpec names one symbol (or re-export) in a PackageDecl's export list.
type ExportSpec struct {
	Base
	Symbol     *Identifier
	ModuleName *Identifier
	Symbols    []*Identifier
	ReexportAll bool
}

func (e *ExportSpec) Accept(v Visitor) { v.VisitExportSpec(e) }

// ImportDecl is an "importa" declaration, recorded symbolically per
// spec.md §1 ("does not resolve cross-module imports beyond recording
// them symbolically").
type ImportDecl struct {
	Base
	Path    *StringLiteral
	Alias   *Identifier
	Symbols []*Identifier
}

func (d *ImportDecl) stmtNode()        {}
func (d *ImportDecl) Accept(v Visitor) { v.VisitImportDecl(d) }

// Identifier is a name reference or binding occurrence.
type Identifier struct {
	Base
	Value string
}

func (i *Identifier) exprNode()      {}
func (i *Identifier) Accept(v Visitor) { v.VisitIdentifier(i) }

// --- Literals ---

type IntegerLiteral struct {
	Base
	Value int64
}

func (l *IntegerLiteral) exprNode()        {}
func (l *IntegerLiteral) Accept(v Visitor) { v.VisitIntegerLiteral(l) }

type FloatLiteral struct {
	Base
	Value float64
}

func (l *FloatLiteral) exprNode()        {}
func (l *FloatLiteral) Accept(v Visitor) { v.VisitFloatLiteral(l) }

type BigIntLiteral struct {
	Base
	Value *big.Int
}

func (l *BigIntLiteral) exprNode()        {}
func (l *BigIntLiteral) Accept(v Visitor) { v.VisitBigIntLiteral(l) }

type BooleanLiteral struct {
	Base
	Value bool
}

func (l *BooleanLiteral) exprNode()        {}
func (l *BooleanLiteral) Accept(v Visitor) { v.VisitBooleanLiteral(l) }

type NilLiteral struct{ Base }

func (l *NilLiteral) exprNode()        {}
func (l *NilLiteral) Accept(v Visitor) { v.VisitNilLiteral(l) }

type StringLiteral struct {
	Base
	Value string
}

func (l *StringLiteral) exprNode()        {}
func (l *StringLiteral) Accept(v Visitor) { v.VisitStringLiteral(l) }

// TemplateStringLiteral is a backtick-delimited template string whose
// content may embed "${...}" interpolations, split into Parts.
type TemplateStringLiteral struct {
	Base
	Parts []Expression
}

func (l *TemplateStringLiteral) exprNode()        {}
func (l *TemplateStringLiteral) Accept(v Visitor) { v.VisitTemplateStringLiteral(l) }

type ListLiteral struct {
	Base
	Elements []Expression
}

func (l *ListLiteral) exprNode()        {}
func (l *ListLiteral) Accept(v Visitor) { v.VisitListLiteral(l) }

type SetLiteral struct {
	Base
	Elements []Expression
}

func (l *SetLiteral) exprNode()        {}
func (l *SetLiteral) Accept(v Visitor) { v.VisitSetLiteral(l) }

type TupleLiteral struct {
	Base
	Elements []Expression
}

func (l *TupleLiteral) exprNode()        {}
func (l *TupleLiteral) Accept(v Visitor) { v.VisitTupleLiteral(l) }

type MapEntry struct {
	Key, Value Expression
}

type MapLiteral struct {
	Base
	Entries []MapEntry
}

func (l *MapLiteral) exprNode()        {}
func (l *MapLiteral) Accept(v Visitor) { v.VisitMapLiteral(l) }

// RecordLiteral constructs a named struct value: genus name { field: val }
type RecordLiteral struct {
	Base
	TypeName *Identifier
	Fields   map[string]Expression
	FieldOrder []string
	Spread   Expression
}

func (l *RecordLiteral) exprNode()        {}
func (l *RecordLiteral) Accept(v Visitor) { v.VisitRecordLiteral(l) }
