// Package types is the type table from spec.md §3: an arena of interned
// Type values addressed by TypeId, with a pre-interned primitive cache.
// Grounded on funvibe-funxy/internal/typesystem's Type-interface-plus-
// variant-structs shape (TVar/TApp/TCon/TFunc/TTuple/TRecord/TUnion) but
// restructured around handle (TypeId) identity instead of structural
// value identity, per spec.md's "classic arena-plus-handle pattern".
package types

import "fmt"

// TypeId is a handle into a Table.
type TypeId int

// InferVar identifies an unknown type awaiting unification (spec.md §3).
type InferVar int

// Mutability of a Ref type.
type Mutability int

const (
	Shared Mutability = iota
	Mutable
)

// Kind is the closed set of Type variants from spec.md §3.
type Kind int

const (
	KPrimitive Kind = iota
	KArray
	KMap
	KSet
	KOption
	KRef
	KStruct
	KEnum
	KInterface
	KAlias
	KFunc
	KParam
	KApplied
	KInfer
	KUnion
	KError
)

// Primitive names.
const (
	PrimNumerus  = "Numerus"  // integer
	PrimFractus  = "Fractus"  // float
	PrimTextus   = "Textus"   // string
	PrimBivalens = "Bivalens" // bool
	PrimOcteti   = "Octeti"   // bytes
	PrimVacuum   = "Vacuum"   // unit / void
)

// FuncSig is the payload of a Func type.
type FuncSig struct {
	Params   []TypeId
	Return   TypeId
	Variadic bool
}

// Type is one entry in the table's arena. Only the fields relevant to
// its Kind are populated; others are zero.
type Type struct {
	Kind Kind

	// KPrimitive
	PrimName string

	// KArray, KSet, KOption: Elem; KRef: Elem + Mut
	Elem TypeId
	Mut  Mutability

	// KMap
	Key, Value TypeId

	// KStruct, KEnum, KInterface: Def
	Def DefRef

	// KAlias: Def + Underlying
	Underlying TypeId

	// KFunc
	Sig FuncSig

	// KParam
	ParamName string

	// KApplied
	Ctor TypeId
	Args []TypeId

	// KInfer
	Var InferVar

	// KUnion
	Members []TypeId
}

// DefRef is an opaque reference to a resolver-level definition (a
// struct/enum/interface DefId). Declared here instead of imported from
// the resolver to avoid a resolve<->types import cycle: the resolver
// constructs types.DefRef values from its own DefId type.
type DefRef struct {
	ID   int
	Name string
}

// Table is the arena: it interns types by structural key where cheap
// (primitives) and otherwise simply appends, returning a stable TypeId.
type Table struct {
	entries []Type
	prims   map[string]TypeId
	nextVar int
}

// NewTable returns a Table with every primitive pre-interned (spec.md
// §3: "Primitives are pre-interned and cached").
func NewTable() *Table {
	t := &Table{prims: make(map[string]TypeId)}
	for _, name := range []string{PrimNumerus, PrimFractus, PrimTextus, PrimBivalens, PrimOcteti, PrimVacuum} {
		t.intern(Type{Kind: KPrimitive, PrimName: name})
		t.prims[name] = TypeId(len(t.entries) - 1)
	}
	return t
}

func (t *Table) intern(ty Type) TypeId {
	t.entries = append(t.entries, ty)
	return TypeId(len(t.entries) - 1)
}

// Get dereferences a TypeId.
func (t *Table) Get(id TypeId) Type {
	if int(id) < 0 || int(id) >= len(t.entries) {
		return Type{Kind: KError}
	}
	return t.entries[id]
}

// Primitive returns the pre-interned TypeId for a primitive name.
func (t *Table) Primitive(name string) TypeId {
	if id, ok := t.prims[name]; ok {
		return id
	}
	return t.intern(Type{Kind: KPrimitive, PrimName: name})
}

// Error returns a fresh Error-kind TypeId, used on failed resolution.
func (t *Table) Error() TypeId { return t.intern(Type{Kind: KError}) }

// Fresh allocates a new inference variable and its Infer TypeId.
func (t *Table) Fresh() TypeId {
	v := InferVar(t.nextVar)
	t.nextVar++
	return t.intern(Type{Kind: KInfer, Var: v})
}

func (t *Table) Array(elem TypeId) TypeId  { return t.intern(Type{Kind: KArray, Elem: elem}) }
func (t *Table) SetOf(elem TypeId) TypeId  { return t.intern(Type{Kind: KSet, Elem: elem}) }
func (t *Table) Option(elem TypeId) TypeId { return t.intern(Type{Kind: KOption, Elem: elem}) }
func (t *Table) MapOf(k, v TypeId) TypeId  { return t.intern(Type{Kind: KMap, Key: k, Value: v}) }
func (t *Table) Ref(mut Mutability, elem TypeId) TypeId {
	return t.intern(Type{Kind: KRef, Mut: mut, Elem: elem})
}
func (t *Table) Struct(def DefRef) TypeId    { return t.intern(Type{Kind: KStruct, Def: def}) }
func (t *Table) Enum(def DefRef) TypeId      { return t.intern(Type{Kind: KEnum, Def: def}) }
func (t *Table) Interface(def DefRef) TypeId { return t.intern(Type{Kind: KInterface, Def: def}) }
func (t *Table) Alias(def DefRef, under TypeId) TypeId {
	return t.intern(Type{Kind: KAlias, Def: def, Underlying: under})
}
func (t *Table) Func(sig FuncSig) TypeId { return t.intern(Type{Kind: KFunc, Sig: sig}) }
func (t *Table) Param(name string) TypeId {
	return t.intern(Type{Kind: KParam, ParamName: name})
}
func (t *Table) Applied(ctor TypeId, args []TypeId) TypeId {
	return t.intern(Type{Kind: KApplied, Ctor: ctor, Args: args})
}
func (t *Table) Union(members []TypeId) TypeId {
	return t.intern(Type{Kind: KUnion, Members: members})
}

// ResolveAlias follows KAlias indirection down to its underlying type.
func (t *Table) ResolveAlias(id TypeId) TypeId {
	for {
		ty := t.Get(id)
		if ty.Kind != KAlias {
			return id
		}
		id = ty.Underlying
	}
}

// String renders a type for diagnostics and canonical-emitter fallback.
func (t *Table) String(id TypeId) string {
	ty := t.Get(id)
	switch ty.Kind {
	case KPrimitive:
		return ty.PrimName
	case KArray:
		return fmt.Sprintf("lista<%s>", t.String(ty.Elem))
	case KSet:
		return fmt.Sprintf("copia<%s>", t.String(ty.Elem))
	case KOption:
		return fmt.Sprintf("si %s", t.String(ty.Elem))
	case KMap:
		return fmt.Sprintf("tabula<%s, %s>", t.String(ty.Key), t.String(ty.Value))
	case KRef:
		prefix := "de"
		if ty.Mut == Mutable {
			prefix = "in"
		}
		return fmt.Sprintf("%s %s", prefix, t.String(ty.Elem))
	case KStruct, KEnum, KInterface, KAlias:
		return ty.Def.Name
	case KFunc:
		parts := "("
		for i, p := range ty.Sig.Params {
			if i > 0 {
				parts += ", "
			}
			parts += t.String(p)
		}
		return parts + ") -> " + t.String(ty.Sig.Return)
	case KParam:
		return ty.ParamName
	case KApplied:
		parts := t.String(ty.Ctor) + "<"
		for i, a := range ty.Args {
			if i > 0 {
				parts += ", "
			}
			parts += t.String(a)
		}
		return parts + ">"
	case KInfer:
		return fmt.Sprintf("t%d", ty.Var)
	case KUnion:
		parts := ""
		for i, m := range ty.Members {
			if i > 0 {
				parts += " | "
			}
			parts += t.String(m)
		}
		return parts
	default:
		return "<error>"
	}
}
