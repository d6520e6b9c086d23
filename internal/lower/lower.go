// Package lower transforms a resolved ast.Program into an hir.Module,
// grounded on original_source/fons/radix-rs/src/hir/lower/mod.rs's
// Lowerer (next_hir_id/lower_program/lower_stmt_item dispatch). It lives
// apart from internal/hir itself so it can depend on internal/resolve's
// Result without introducing an import cycle (resolve already depends
// on hir.DefId). Every body-sugar form (braced block, "ergo", "reddit",
// "tacet") has already been normalized to a *ast.BlockStmt by the parser
// (see internal/parser/statements.go's parseBodySugar), so unlike the
// original this package never special-cases those forms itself.
package lower

import (
	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/hir"
	"github.com/radixlang/radix/internal/intern"
	"github.com/radixlang/radix/internal/resolve"
	"github.com/radixlang/radix/internal/source"
	"github.com/radixlang/radix/internal/types"
)

// Lowerer holds the shared state for one file's lowering pass.
type Lowerer struct {
	res      *resolve.Result
	table    *types.Table
	interner *intern.Interner
	diags    *diagnostics.Bag
	ids      hir.IDGen
}

// New constructs a Lowerer consuming the resolver's Result and sharing
// one type table and name interner across the whole lowering.
func New(res *resolve.Result, table *types.Table, in *intern.Interner, diags *diagnostics.Bag) *Lowerer {
	return &Lowerer{res: res, table: table, interner: in, diags: diags}
}

func (l *Lowerer) sym(name string) intern.Symbol { return l.interner.Intern(name) }

func (l *Lowerer) next() hir.Id { return l.ids.Next() }

func (l *Lowerer) errorf(code string, span source.Span, format string, args ...any) {
	l.diags.Add(diagnostics.Newf(diagnostics.Error, code, span, format, args...).WithHelp(diagnostics.Help(code)))
}

// defOf returns the DefId the resolver recorded for node, or 0 if none
// was recorded (an error node already reported by the resolver).
func (l *Lowerer) defOf(node ast.Node) hir.DefId {
	return l.res.RefOf[node.ID()]
}

func (l *Lowerer) defRef(id hir.DefId) types.DefRef {
	if def, ok := l.res.Defs[id]; ok {
		return types.DefRef{ID: int(id), Name: def.Name}
	}
	return types.DefRef{}
}

// Lower runs the whole lowering over prog, grounded on Lowerer::lower_program.
func (l *Lowerer) Lower(prog *ast.Program) *hir.Module {
	mod := &hir.Module{}
	for _, imp := range prog.Imports {
		mod.Items = append(mod.Items, l.lowerImportItem(imp))
	}
	for _, stmt := range prog.Statements {
		if entry, ok := stmt.(*ast.EntryDecl); ok {
			mod.Entry = l.lowerBlock(entry.Body)
			continue
		}
		if item := l.lowerItem(stmt); item != nil {
			mod.Items = append(mod.Items, item)
		}
	}
	return mod
}

func (l *Lowerer) lowerItem(stmt ast.Statement) *hir.Item {
	switch d := stmt.(type) {
	case *ast.FunctionDecl:
		return l.lowerFunctionItem(d)
	case *ast.StructDecl:
		return l.lowerStructItem(d)
	case *ast.EnumDecl:
		return l.lowerEnumItem(d)
	case *ast.InterfaceDecl:
		return l.lowerInterfaceItem(d)
	case *ast.TypeAliasDecl:
		return l.lowerTypeAliasItem(d)
	case *ast.VarDecl:
		return l.lowerConstItem(d)
	default:
		// Non-declaration top-level statements (bare expressions,
		// directives) have no Item shape; the checker sees them only
		// through the enclosing Module's Entry block when present.
		return nil
	}
}

func (l *Lowerer) lowerImportItem(d *ast.ImportDecl) *hir.Item {
	imp := &hir.Import{Path: l.sym(d.Path.Value)}
	if d.Alias != nil {
		imp.Items = append(imp.Items, hir.ImportItem{
			DefID:    l.defOf(d.Alias),
			Name:     l.sym(d.Alias.Value),
			Alias:    l.sym(d.Alias.Value),
			HasAlias: true,
		})
	}
	for _, sym := range d.Symbols {
		imp.Items = append(imp.Items, hir.ImportItem{DefID: l.defOf(sym), Name: l.sym(sym.Value)})
	}
	return &hir.Item{ID: l.next(), Kind: hir.ItemImport, Span: d.Span(), Import: imp}
}

func (l *Lowerer) lowerFunctionItem(d *ast.FunctionDecl) *hir.Item {
	fn := l.lowerFunction(d)
	return &hir.Item{
		ID:    l.next(),
		DefID: l.defOf(d.Name),
		Kind:  hir.ItemFunction,
		Span:  d.Span(),
		Func:  fn,
	}
}

func (l *Lowerer) lowerFunction(d *ast.FunctionDecl) *hir.Function {
	fn := &hir.Function{
		Name:  l.sym(d.Name.Value),
		Async: d.Async,
	}
	for _, tp := range d.TypeParams {
		fn.TypeParams = append(fn.TypeParams, &hir.TypeParam{Name: l.sym(tp.Name)})
	}
	for _, p := range d.Params {
		fn.Params = append(fn.Params, l.lowerParam(p))
	}
	if d.ReturnType != nil {
		fn.ReturnType = l.lowerType(d.ReturnType)
		fn.HasReturn = true
	} else {
		fn.ReturnType = l.table.Fresh()
	}
	fn.Body = l.lowerBlock(d.Body)
	return fn
}

func (l *Lowerer) lowerParam(p *ast.Param) *hir.Param {
	mode := hir.ParamOwned
	var ty types.TypeId
	if rt, ok := p.Type.(*ast.RefType); ok {
		if rt.Mutable {
			mode = hir.ParamMutRef
		} else {
			mode = hir.ParamRef
		}
		ty = l.lowerType(p.Type)
	} else if p.Type != nil {
		ty = l.lowerType(p.Type)
	} else {
		ty = l.table.Fresh()
	}
	return &hir.Param{
		DefID: l.defOf(p.Name),
		Name:  l.sym(p.Name.Value),
		Type:  ty,
		Mode:  mode,
	}
}

func (l *Lowerer) lowerStructItem(d *ast.StructDecl) *hir.Item {
	st := &hir.Struct{Name: l.sym(d.Name.Value)}
	for _, tp := range d.TypeParams {
		st.TypeParams = append(st.TypeParams, &hir.TypeParam{Name: l.sym(tp.Name)})
	}
	for _, f := range d.Fields {
		st.Fields = append(st.Fields, &hir.Field{
			DefID: l.defOf(f.Name),
			Name:  l.sym(f.Name.Value),
			Type:  l.lowerType(f.Type),
			Span:  f.Name.Span(),
		})
	}
	for _, m := range d.Methods {
		st.Methods = append(st.Methods, &hir.Method{
			DefID:    l.defOf(m.Name),
			Func:     l.lowerFunction(m),
			Receiver: hir.ReceiverRef,
			HocDef:   l.defOf(m),
			Span:     m.Span(),
		})
	}
	return &hir.Item{ID: l.next(), DefID: l.defOf(d.Name), Kind: hir.ItemStruct, Span: d.Span(), Struct: st}
}

func (l *Lowerer) lowerEnumItem(d *ast.EnumDecl) *hir.Item {
	en := &hir.Enum{Name: l.sym(d.Name.Value)}
	for _, tp := range d.TypeParams {
		en.TypeParams = append(en.TypeParams, &hir.TypeParam{Name: l.sym(tp.Name)})
	}
	for _, v := range d.Variants {
		variant := &hir.Variant{
			DefID: l.defOf(v.Name),
			Name:  l.sym(v.Name.Value),
			Span:  v.Name.Span(),
		}
		for _, f := range v.Fields {
			variant.Fields = append(variant.Fields, &hir.VariantField{
				Name: l.sym(f.Name.Value),
				Type: l.lowerType(f.Type),
				Span: f.Name.Span(),
			})
		}
		en.Variants = append(en.Variants, variant)
	}
	return &hir.Item{ID: l.next(), DefID: l.defOf(d.Name), Kind: hir.ItemEnum, Span: d.Span(), Enum: en}
}

func (l *Lowerer) lowerInterfaceItem(d *ast.InterfaceDecl) *hir.Item {
	iface := &hir.Interface{Name: l.sym(d.Name.Value)}
	for _, tp := range d.TypeParams {
		iface.TypeParams = append(iface.TypeParams, &hir.TypeParam{Name: l.sym(tp.Name)})
	}
	for _, m := range d.Methods {
		im := &hir.InterfaceMethod{Name: l.sym(m.Name.Value)}
		for _, p := range m.Params {
			im.Params = append(im.Params, l.lowerParam(p))
		}
		if m.ReturnType != nil {
			im.ReturnType = l.lowerType(m.ReturnType)
			im.HasReturn = true
		} else {
			im.ReturnType = l.table.Primitive(types.PrimVacuum)
		}
		iface.Methods = append(iface.Methods, im)
	}
	return &hir.Item{ID: l.next(), DefID: l.defOf(d.Name), Kind: hir.ItemInterface, Span: d.Span(), Iface: iface}
}

func (l *Lowerer) lowerTypeAliasItem(d *ast.TypeAliasDecl) *hir.Item {
	alias := &hir.TypeAlias{Name: l.sym(d.Name.Value), Type: l.lowerType(d.Underlying)}
	return &hir.Item{ID: l.next(), DefID: l.defOf(d.Name), Kind: hir.ItemTypeAlias, Span: d.Span(), Alias: alias}
}

func (l *Lowerer) lowerConstItem(d *ast.VarDecl) *hir.Item {
	c := &hir.Const{Name: l.sym(d.Name.Value), Value: l.lowerExpr(d.Value)}
	if d.TypeAnnotation != nil {
		c.Type = l.lowerType(d.TypeAnnotation)
		c.HasType = true
	} else {
		c.Type = l.table.Fresh()
	}
	return &hir.Item{ID: l.next(), DefID: l.defOf(d.Name), Kind: hir.ItemConst, Span: d.Span(), Const: c}
}
