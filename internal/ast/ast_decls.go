package ast

// VarDecl is a local or top-level binding: "fixum"/"figendum" (immutable)
// or "varia"/"variandum" (mutable). The dual-vocab forms are accepted as
// equivalent to their Base per spec.md §9 Open Question (i).
type VarDecl struct {
	Base
	Name           *Identifier
	Pattern        Pattern // set instead of Name for destructuring binds
	Mutable        bool
	TypeAnnotation TypeExpr
	Value          Expression
}

func (d *VarDecl) stmtNode()        {}
func (d *VarDecl) Accept(v Visitor) { v.VisitVarDecl(d) }

// Param is one function parameter.
type Param struct {
	Name     *Identifier
	Type     TypeExpr
	Variadic bool
	Default  Expression
}

// FunctionDecl is a "functio" declaration, also used for method bodies
// inside genus/pactum blocks.
type FunctionDecl struct {
	Base
	Name       *Identifier
	TypeParams []*TypeParam
	Params     []*Param
	ReturnType TypeExpr // nil: inferred (spec.md §4.5 return type inference)
	Body       *BlockStmt
	Async      bool // "incipiet"/"asynca" modifier
}

func (d *FunctionDecl) stmtNode()        {}
func (d *FunctionDecl) Accept(v Visitor) { v.VisitFunctionDecl(d) }

// TypeParam is a generic parameter on a declaration, e.g. <T>.
type TypeParam struct {
	Name        string
	Constraints []string
}

// Field is one struct/interface member.
type Field struct {
	Name *Identifier
	Type TypeExpr
}

// StructDecl is a "genus" declaration.
type StructDecl struct {
	Base
	Name       *Identifier
	TypeParams []*TypeParam
	Fields     []*Field
	Methods    []*FunctionDecl
}

func (d *StructDecl) stmtNode()        {}
func (d *StructDecl) Accept(v Visitor) { v.VisitStructDecl(d) }

// Variant is one case of a "discretio" (enum) declaration.
type Variant struct {
	Name   *Identifier
	Fields []*Field // empty: unit variant
}

// EnumDecl is a "discretio" declaration.
type EnumDecl struct {
	Base
	Name       *Identifier
	TypeParams []*TypeParam
	Variants   []*Variant
}

func (d *EnumDecl) stmtNode()        {}
func (d *EnumDecl) Accept(v Visitor) { v.VisitEnumDecl(d) }

// InterfaceMethod is one method signature declared inside a "pactum".
type InterfaceMethod struct {
	Name       *Identifier
	Params     []*Param
	ReturnType TypeExpr
}

// InterfaceDecl is a "pactum" declaration.
type InterfaceDecl struct {
	Base
	Name       *Identifier
	TypeParams []*TypeParam
	Methods    []*InterfaceMethod
}

func (d *InterfaceDecl) stmtNode()        {}
func (d *InterfaceDecl) Accept(v Visitor) { v.VisitInterfaceDecl(d) }

// TypeAliasDecl is a "typus" declaration.
type TypeAliasDecl struct {
	Base
	Name       *Identifier
	TypeParams []*TypeParam
	Underlying TypeExpr
}

func (d *TypeAliasDecl) stmtNode()        {}
func (d *TypeAliasDecl) Accept(v Visitor) { v.VisitTypeAliasDecl(d) }

// EntryDecl is the "exordium" program entry block.
type EntryDecl struct {
	Base
	Async bool
	Body  *BlockStmt
}

func (d *EntryDecl) stmtNode()        {}
func (d *EntryDecl) Accept(v Visitor) { v.VisitEntryDecl(d) }
