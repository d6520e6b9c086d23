package ast

// BinaryOp enumerates the binary operators named in spec.md §4.2's
// precedence table, both symbolic and word forms (they share one enum
// since the parser reduces the word form to the same operator code).
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpEq
	OpNotEq
	OpLt
	OpGt
	OpLte
	OpGte
	OpAnd // "&&" / "et"
	OpOr  // "||" / "aut"
	OpNullCoalesce // "??" / "vel"
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
	OpContains // "inter"/"intra" containment
)

type BinaryExpr struct {
	Base
	Op          BinaryOp
	Left, Right Expression
}

func (e *BinaryExpr) exprNode()        {}
func (e *BinaryExpr) Accept(v Visitor) { v.VisitBinaryExpr(e) }

type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpNot
	OpIsSome // nullability predicate
	OpIsNone
)

type UnaryExpr struct {
	Base
	Op      UnaryOp
	Operand Expression
}

func (e *UnaryExpr) exprNode()        {}
func (e *UnaryExpr) Accept(v Visitor) { v.VisitUnaryExpr(e) }

// TernaryExpr is "COND ? THEN : ELSE" or the "sic...secus" word form.
type TernaryExpr struct {
	Base
	Cond, Then, Else Expression
}

func (e *TernaryExpr) exprNode()        {}
func (e *TernaryExpr) Accept(v Visitor) { v.VisitTernaryExpr(e) }

// RangeExpr is "ante START usque END per STEP" or symbolic "START..END".
type RangeExpr struct {
	Base
	Start, End, Step Expression // Step may be nil
	Inclusive        bool
}

func (e *RangeExpr) exprNode()        {}
func (e *RangeExpr) Accept(v Visitor) { v.VisitRangeExpr(e) }

// Arg is one call argument, optionally named (x: expr) or spread (...expr).
type Arg struct {
	Name   string
	Value  Expression
	Spread bool
}

type CallExpr struct {
	Base
	Callee Expression
	Args   []Arg
}

func (e *CallExpr) exprNode()        {}
func (e *CallExpr) Accept(v Visitor) { v.VisitCallExpr(e) }

// MemberExpr is "OBJ.NAME"; when the next token is "(", the parser folds
// it into the Callee of a CallExpr (method-call sugar, spec.md §4.2).
type MemberExpr struct {
	Base
	Object Expression
	Name   string
}

func (e *MemberExpr) exprNode()        {}
func (e *MemberExpr) Accept(v Visitor) { v.VisitMemberExpr(e) }

type IndexExpr struct {
	Base
	Object Expression
	Index  Expression
}

func (e *IndexExpr) exprNode()        {}
func (e *IndexExpr) Accept(v Visitor) { v.VisitIndexExpr(e) }

// ChainKind distinguishes the optional/nonnull postfix variants, kept
// unexpanded per spec.md §4.4 ("optional chaining... becomes a distinct
// expression kind carrying the chain operation") so emitters can
// reproduce the syntactic form verbatim.
type ChainKind int

const (
	ChainOptionalMember ChainKind = iota // ?.
	ChainOptionalIndex                  // ?[
	ChainOptionalCall                   // ?(
	ChainNonNullMember                  // !.
	ChainNonNullIndex                   // ![
	ChainNonNullCall                    // !(
)

// ChainExpr is one link of an optional/nonnull chain: OBJ?.NAME,
// OBJ?[IDX], OBJ?(ARGS), and their "!" nonnull-assert counterparts.
type ChainExpr struct {
	Base
	Kind   ChainKind
	Object Expression
	Name   string   // member name, for member-kind chains
	Index  Expression // index expr, for index-kind chains
	Args   []Arg    // call args, for call-kind chains
}

func (e *ChainExpr) exprNode()        {}
func (e *ChainExpr) Accept(v Visitor) { v.VisitChainExpr(e) }

// CastExpr is an explicit "EXPR tamquam TYPE" cast, or a primitive-conversion
// operator call with an optional "vel FALLBACK" (spec.md §4.2).
type CastExpr struct {
	Base
	Value    Expression
	Target   TypeExpr
	Fallback Expression // optional "vel EXPR"
}

func (e *CastExpr) exprNode()        {}
func (e *CastExpr) Accept(v Visitor) { v.VisitCastExpr(e) }

// AssignOp enumerates "=" and the compound assignment operators.
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

type AssignExpr struct {
	Base
	Op     AssignOp
	Target Expression
	Value  Expression
}

func (e *AssignExpr) exprNode()        {}
func (e *AssignExpr) Accept(v Visitor) { v.VisitAssignExpr(e) }

// FunctionLiteral is an anonymous closure. Params may omit their Type
// when the context supplies an expected function type (spec.md §4.5
// "Closures").
type FunctionLiteral struct {
	Base
	Params     []*Param
	ReturnType TypeExpr
	Body       *BlockStmt
}

func (e *FunctionLiteral) exprNode()        {}
func (e *FunctionLiteral) Accept(v Visitor) { v.VisitFunctionLiteral(e) }
