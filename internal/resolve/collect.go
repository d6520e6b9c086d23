package resolve

import "github.com/radixlang/radix/internal/ast"

// collectTopLevel registers every top-level declaration in root before
// any reference is resolved, so forward references (a function calling
// one declared later in the file) work the way spec.md §4.3 requires.
func (r *Resolver) collectTopLevel(prog *ast.Program, root *scope) {
	for _, imp := range prog.Imports {
		r.collectImport(imp, root)
	}
	for _, stmt := range prog.Statements {
		r.collectStmt(stmt, root)
	}
}

func (r *Resolver) collectImport(imp *ast.ImportDecl, root *scope) {
	rec := ImportRecord{Path: imp.Path.Value, Decl: imp}
	if imp.Alias != nil {
		rec.Alias = imp.Alias.Value
		id := r.result.newDefID()
		root.define(imp.Alias.Value, id)
		r.result.Defs[id] = &Def{ID: id, Name: imp.Alias.Value, Kind: SymImport, Node: imp.Alias}
		r.result.RefOf[imp.Alias.ID()] = id
	}
	for _, s := range imp.Symbols {
		rec.Items = append(rec.Items, s.Value)
		id := r.result.newDefID()
		root.define(s.Value, id)
		r.result.Defs[id] = &Def{ID: id, Name: s.Value, Kind: SymImport, Node: s}
		r.result.RefOf[s.ID()] = id
	}
	r.result.Imports = append(r.result.Imports, rec)
}

// collectStmt registers the declaration stmt introduces into scp, if any.
// Only called at positions where a declaration is legal: top level and
// directly inside a BlockStmt (spec.md allows local function/struct/enum
// declarations nested in a block body).
func (r *Resolver) collectStmt(stmt ast.Statement, scp *scope) {
	switch d := stmt.(type) {
	case *ast.FunctionDecl:
		id := r.define(scp, d.Name.Value, SymFunction, d)
		r.result.RefOf[d.Name.ID()] = id
	case *ast.StructDecl:
		id := r.define(scp, d.Name.Value, SymStruct, d)
		r.result.RefOf[d.Name.ID()] = id
		for _, f := range d.Fields {
			fid := r.result.newDefID()
			r.result.Defs[fid] = &Def{ID: fid, Name: f.Name.Value, Kind: SymField, Node: f.Name}
			r.result.RefOf[f.Name.ID()] = fid
		}
		for _, m := range d.Methods {
			mid := r.define(scp, d.Name.Value+"."+m.Name.Value, SymFunction, m)
			r.result.RefOf[m.Name.ID()] = mid
		}
	case *ast.EnumDecl:
		enumID := r.define(scp, d.Name.Value, SymEnum, d)
		r.result.RefOf[d.Name.ID()] = enumID
		for _, v := range d.Variants {
			vid := r.result.newDefID()
			scp.define(d.Name.Value+"."+v.Name.Value, vid)
			// Bare-variant patterns ("casu Red") resolve through the
			// unqualified name too; the first enum to claim it wins.
			if _, taken := scp.names[v.Name.Value]; !taken {
				scp.define(v.Name.Value, vid)
			}
			r.result.Defs[vid] = &Def{ID: vid, Name: v.Name.Value, Kind: SymVariant, Node: v.Name, EnumDef: enumID}
			r.result.RefOf[v.Name.ID()] = vid
		}
	case *ast.InterfaceDecl:
		id := r.define(scp, d.Name.Value, SymInterface, d)
		r.result.RefOf[d.Name.ID()] = id
	case *ast.TypeAliasDecl:
		id := r.define(scp, d.Name.Value, SymTypeAlias, d)
		r.result.RefOf[d.Name.ID()] = id
	case *ast.VarDecl:
		if d.Name != nil {
			id := r.define(scp, d.Name.Value, SymConst, d)
			r.result.RefOf[d.Name.ID()] = id
		}
	}
}

// collectBlock registers every declaration statement directly inside
// block into its own child scope and returns that scope.
func (r *Resolver) collectBlock(block *ast.BlockStmt, parent *scope) *scope {
	scp := newScope(parent)
	for _, stmt := range block.Statements {
		switch stmt.(type) {
		case *ast.FunctionDecl, *ast.StructDecl, *ast.EnumDecl, *ast.InterfaceDecl, *ast.TypeAliasDecl:
			r.collectStmt(stmt, scp)
		}
	}
	return scp
}
