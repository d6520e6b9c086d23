// Package hir is the desugared, name-resolved representation the
// checker, borrow checker, exhaustiveness checker, lint pass and
// emitters all operate on. Grounded on original_source/fons/radix-rs/src/
// hir/nodes.rs's HirProgram/HirItem/HirFunction family (SPEC_FULL.md
// supplemented feature #1), translated from Rust enums-with-payload into
// Go's Kind-tag-plus-concrete-fields idiom already used by
// internal/types.Type in this module, rather than a second parallel
// interface hierarchy alongside internal/ast's visitor-based one.
package hir

import (
	"github.com/radixlang/radix/internal/intern"
	"github.com/radixlang/radix/internal/source"
	"github.com/radixlang/radix/internal/types"
)

// DefId uniquely identifies a named item, assigned by the resolver.
type DefId int

// Id identifies one HIR node within a lowering.
type Id int

// IDGen hands out monotonically increasing HIR Ids.
type IDGen struct{ next Id }

func (g *IDGen) Next() Id { g.next++; return g.next }

// Module is the root of one file's lowered HIR, grounded on HirProgram.
type Module struct {
	Items []*Item
	Entry *Block // the "exordium" entry point body, if this file has one
}

// ItemKind tags the top-level declarations a Module can hold.
type ItemKind int

const (
	ItemFunction ItemKind = iota
	ItemStruct
	ItemEnum
	ItemInterface
	ItemTypeAlias
	ItemConst
	ItemImport
)

// Item is one top-level declaration, grounded on HirItem/HirItemKind.
type Item struct {
	ID     Id
	DefID  DefId
	Kind   ItemKind
	Span   source.Span
	Func   *Function
	Struct *Struct
	Enum   *Enum
	Iface  *Interface
	Alias  *TypeAlias
	Const  *Const
	Import *Import
}

// ParamMode records how a parameter binds its argument, grounded on
// HirParamMode (Owned/Ref/MutRef/Move), feeding the borrow checker.
type ParamMode int

const (
	ParamOwned ParamMode = iota
	ParamRef
	ParamMutRef
	ParamMove
)

type TypeParam struct {
	DefID DefId
	Name  intern.Symbol
	Span  source.Span
}

type Param struct {
	DefID DefId
	Name  intern.Symbol
	Type  types.TypeId
	Mode  ParamMode
	Span  source.Span
}

// Function is grounded on HirFunction.
type Function struct {
	Name       intern.Symbol
	TypeParams []*TypeParam
	Params     []*Param
	ReturnType types.TypeId
	HasReturn  bool
	Body       *Block
	Async      bool
	Generator  bool
}

// Receiver distinguishes a method's self-binding mode, grounded on
// HirReceiver (None/Ref/MutRef/Owned).
type Receiver int

const (
	ReceiverNone Receiver = iota
	ReceiverRef
	ReceiverMutRef
	ReceiverOwned
)

type Method struct {
	DefID    DefId
	Func     *Function
	Receiver Receiver
	HocDef   DefId // the implicit "hoc" receiver binding
	Span     source.Span
}

type Field struct {
	DefID  DefId
	Name   intern.Symbol
	Type   types.TypeId
	Static bool
	Init   *Expr
	Span   source.Span
}

// Struct is grounded on HirStruct.
type Struct struct {
	Name       intern.Symbol
	TypeParams []*TypeParam
	Fields     []*Field
	Methods    []*Method
	Implements []DefId
}

type VariantField struct {
	Name intern.Symbol
	Type types.TypeId
	Span source.Span
}

type Variant struct {
	DefID  DefId
	Name   intern.Symbol
	Fields []*VariantField
	Span   source.Span
}

// Enum is grounded on HirEnum.
type Enum struct {
	Name       intern.Symbol
	TypeParams []*TypeParam
	Variants   []*Variant
}

type InterfaceMethod struct {
	Name       intern.Symbol
	Params     []*Param
	ReturnType types.TypeId
	HasReturn  bool
	Span       source.Span
}

// Interface is grounded on HirInterface.
type Interface struct {
	Name       intern.Symbol
	TypeParams []*TypeParam
	Methods    []*InterfaceMethod
}

type TypeAlias struct {
	Name intern.Symbol
	Type types.TypeId
}

type Const struct {
	Name    intern.Symbol
	Type    types.TypeId
	HasType bool
	Value   *Expr
}

type ImportItem struct {
	DefID   DefId
	Name    intern.Symbol
	Alias   intern.Symbol
	HasAlias bool
}

// Import records a module path symbolically (spec.md §1: no cross-module
// import resolution beyond recording), grounded on HirImport.
type Import struct {
	Path  intern.Symbol
	Items []ImportItem
}
