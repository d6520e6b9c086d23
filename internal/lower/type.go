package lower

import (
	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/resolve"
	"github.com/radixlang/radix/internal/types"
)

// lowerType turns an ast.TypeExpr into a types.TypeId, grounded on
// original_source/fons/radix-rs/src/hir/lower/types.rs's lower_type.
func (l *Lowerer) lowerType(t ast.TypeExpr) types.TypeId {
	if t == nil {
		return l.table.Fresh()
	}
	switch ty := t.(type) {
	case *ast.NamedType:
		return l.lowerNamedType(ty)
	case *ast.ArrayType:
		return l.table.Array(l.lowerType(ty.Elem))
	case *ast.FuncType:
		sig := types.FuncSig{Return: l.lowerType(ty.Return)}
		for _, p := range ty.Params {
			sig.Params = append(sig.Params, l.lowerType(p))
		}
		return l.table.Func(sig)
	case *ast.OptionType:
		return l.table.Option(l.lowerType(ty.Elem))
	case *ast.RefType:
		mut := types.Shared
		if ty.Mutable {
			mut = types.Mutable
		}
		return l.table.Ref(mut, l.lowerType(ty.Elem))
	default:
		return l.table.Error()
	}
}

func (l *Lowerer) lowerNamedType(ty *ast.NamedType) types.TypeId {
	if prim := primitiveFor(ty.Name); prim != "" {
		return l.table.Primitive(prim)
	}
	defID := l.defOf(ty)
	def, ok := l.res.Defs[defID]
	ref := l.defRef(defID)

	var base types.TypeId
	switch {
	case !ok:
		base = l.table.Error()
	case def.Kind == resolve.SymEnum:
		base = l.table.Enum(ref)
	case def.Kind == resolve.SymInterface:
		base = l.table.Interface(ref)
	case def.Kind == resolve.SymTypeAlias:
		alias, isAlias := def.Node.(*ast.TypeAliasDecl)
		if isAlias {
			base = l.table.Alias(ref, l.lowerType(alias.Underlying))
		} else {
			base = l.table.Error()
		}
	default:
		base = l.table.Struct(ref)
	}

	if len(ty.Args) == 0 {
		return base
	}
	var args []types.TypeId
	for _, a := range ty.Args {
		args = append(args, l.lowerType(a))
	}
	return l.table.Applied(base, args)
}

func primitiveFor(name string) string {
	switch name {
	case types.PrimNumerus, types.PrimFractus, types.PrimTextus, types.PrimBivalens, types.PrimOcteti, types.PrimVacuum:
		return name
	default:
		return ""
	}
}
