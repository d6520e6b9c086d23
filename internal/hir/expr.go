package hir

import (
	"math/big"

	"github.com/radixlang/radix/internal/source"
	"github.com/radixlang/radix/internal/types"
)

// ExprKind tags every HIR expression shape, grounded on
// original_source/fons/radix-rs/src/hir/lower/expr.rs's HirExprKind match
// arms (Literal/Path/Binary/Unary/Call/Member/Index/Assign/...).
type ExprKind int

const (
	ExprError ExprKind = iota
	ExprLiteral
	ExprPath // resolved name reference, carries a DefId
	ExprBinary
	ExprUnary
	ExprTernary
	ExprRange
	ExprCall
	ExprMember
	ExprIndex
	ExprOptionalChain // kept unexpanded per spec.md §4.4
	ExprCast
	ExprAssign
	ExprFunctionLit
	ExprList
	ExprSet
	ExprTuple
	ExprMap
	ExprRecord
	ExprMatch
)

type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitFloat
	LitBigInt
	LitString
	LitBool
	LitNil
	LitTemplateString
)

// Expr is one HIR expression node. Only the fields relevant to Kind are
// populated; this mirrors the Kind-tag-plus-fields shape already used by
// internal/types.Type rather than introducing a second interface-based
// tagged union alongside internal/ast's.
type Expr struct {
	ID   Id
	Kind ExprKind
	Span source.Span
	Type types.TypeId // filled in by the checker; zero value until then

	// ExprLiteral
	Lit       LiteralKind
	IntVal    int64
	FloatVal  float64
	BigVal    *big.Int
	StringVal string
	BoolVal   bool
	Parts     []*Expr // template string segments

	// ExprPath
	Def DefId

	// ExprBinary (Left, Right) / ExprUnary (Operand) / ExprAssign
	// (Left is the target, Right the value)
	BinOp    BinOp
	UnOp     UnOp
	AssignOp AssignOp
	Left     *Expr
	Right    *Expr
	Operand  *Expr

	// ExprTernary
	Cond *Expr
	Then *Expr
	Else *Expr

	// ExprRange
	Start     *Expr
	End       *Expr
	Step      *Expr
	Inclusive bool

	// ExprCall / ExprOptionalChain
	Callee      *Expr
	Args        []Arg
	ChainOptional bool
	ChainNonNull  bool

	// ExprMember / ExprOptionalChain (member form)
	Object *Expr
	Name   string
	FieldDef DefId
	HasFieldDef bool

	// ExprIndex / ExprOptionalChain (index form)
	Index *Expr

	// ExprCast: Operand holds the value being cast.
	Target   types.TypeId
	Fallback *Expr

	// ExprFunctionLit
	Params     []*Param
	ReturnType types.TypeId
	HasReturn  bool
	Body       *Block

	// ExprList / ExprSet / ExprTuple
	Elements []*Expr

	// ExprMap
	Entries []MapEntry

	// ExprRecord
	RecordDef  DefId
	Fields     map[string]*Expr
	FieldOrder []string
	Spread     *Expr

	// ExprMatch
	Subjects   []*Expr
	Arms       []*MatchArm
	DefaultArm *Block
}

// Arg is one call argument after lowering (spread/named sugar resolved
// to a plain positional or keyword slot by the resolver where possible,
// otherwise carried through verbatim for the checker to validate).
type Arg struct {
	Name   string
	Value  *Expr
	Spread bool
}

type MapEntry struct {
	Key, Value *Expr
}

type MatchArm struct {
	Patterns []*Pattern
	Guard    *Expr
	Body     *Block
}

// BinOp mirrors ast.BinaryOp, grounded on HirBinOp.
type BinOp int

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinPow
	BinEq
	BinNotEq
	BinLt
	BinGt
	BinLte
	BinGte
	BinAnd
	BinOr
	BinNullCoalesce
	BinBitAnd
	BinBitOr
	BinBitXor
	BinShl
	BinShr
	BinContains
)

// UnOp mirrors ast.UnaryOp, grounded on HirUnOp.
type UnOp int

const (
	UnNeg UnOp = iota
	UnNot
	UnIsSome
	UnIsNone
)

// AssignOp mirrors ast.AssignOp.
type AssignOp int

const (
	AssignPlain AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignPow
)
