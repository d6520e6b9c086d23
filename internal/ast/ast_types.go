package ast

// NamedType is a reference to a declared type, e.g. "Lista<Numerus>".
type NamedType struct {
	Base
	Name string
	Args []TypeExpr
}

func (t *NamedType) typeNode()       {}
func (t *NamedType) Accept(v Visitor) { v.VisitNamedType(t) }

// ArrayType is "T[]" (postfix array sugar).
type ArrayType struct {
	Base
	Elem TypeExpr
}

func (t *ArrayType) typeNode()       {}
func (t *ArrayType) Accept(v Visitor) { v.VisitArrayType(t) }

// FuncType is "(T, U) -> R".
type FuncType struct {
	Base
	Params []TypeExpr
	Return TypeExpr
}

func (t *FuncType) typeNode()       {}
func (t *FuncType) Accept(v Visitor) { v.VisitFuncType(t) }

// OptionType is "si T" (nullable prefix).
type OptionType struct {
	Base
	Elem TypeExpr
}

func (t *OptionType) typeNode()       {}
func (t *OptionType) Accept(v Visitor) { v.VisitOptionType(t) }

// RefType is an ownership-prefixed type: "de T" (shared) or "in T" (mutable).
type RefType struct {
	Base
	Mutable bool
	Elem    TypeExpr
}

func (t *RefType) typeNode()       {}
func (t *RefType) Accept(v Visitor) { v.VisitRefType(t) }
