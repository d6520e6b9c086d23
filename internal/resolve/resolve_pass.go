package resolve

import (
	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/types"
)

// primitiveNames are pre-interned by internal/types and never registered
// as scope bindings, so a NamedType naming one is never looked up.
var primitiveNames = map[string]bool{
	types.PrimNumerus:  true,
	types.PrimFractus:  true,
	types.PrimTextus:   true,
	types.PrimBivalens: true,
	types.PrimOcteti:   true,
	types.PrimVacuum:   true,
}

// resolveTopLevel walks every top-level statement a second time, now
// that every top-level name is already registered in root, resolving
// each Identifier/PathPattern use against the active scope chain.
func (r *Resolver) resolveTopLevel(prog *ast.Program, root *scope) {
	for _, stmt := range prog.Statements {
		r.resolveStmt(stmt, root)
	}
}

func (r *Resolver) resolveRef(node ast.Node, name string, scp *scope) {
	if id, ok := scp.lookup(name); ok {
		r.result.RefOf[node.ID()] = id
		return
	}
	r.errorf("SEM001", node.Span(), "%q is not defined in any enclosing scope", name)
}

func (r *Resolver) resolveStmt(stmt ast.Statement, scp *scope) {
	switch s := stmt.(type) {
	case *ast.FunctionDecl:
		r.resolveFunction(s, scp)
	case *ast.StructDecl:
		for _, m := range s.Methods {
			// method bodies see the receiver through the implicit
			// "hoc" binding
			mscp := newScope(scp)
			hocID := r.result.newDefID()
			mscp.define("hoc", hocID)
			r.result.Defs[hocID] = &Def{ID: hocID, Name: "hoc", Kind: SymParam, Node: m}
			r.result.RefOf[m.ID()] = hocID
			r.resolveFunction(m, mscp)
		}
		for _, f := range s.Fields {
			r.resolveType(f.Type, scp)
		}
	case *ast.EnumDecl:
		for _, v := range s.Variants {
			for _, f := range v.Fields {
				r.resolveType(f.Type, scp)
			}
		}
	case *ast.InterfaceDecl:
		for _, m := range s.Methods {
			for _, p := range m.Params {
				r.resolveType(p.Type, scp)
			}
			r.resolveType(m.ReturnType, scp)
		}
	case *ast.EntryDecl:
		r.resolveBlock(s.Body, newScope(scp))
	case *ast.TypeAliasDecl:
		r.resolveType(s.Underlying, scp)
	case *ast.VarDecl:
		if s.Value != nil {
			r.resolveExpr(s.Value, scp)
		}
		r.resolveType(s.TypeAnnotation, scp)
		if s.Name != nil {
			if id, ok := scp.names[s.Name.Value]; ok && r.result.Defs[id] != nil && r.result.Defs[id].Node == ast.Node(s) {
				// already registered by the top-level collect pass
				r.result.RefOf[s.Name.ID()] = id
			} else {
				id := r.result.newDefID()
				scp.define(s.Name.Value, id)
				r.result.Defs[id] = &Def{ID: id, Name: s.Name.Value, Kind: SymVar, Node: s, Mutable: s.Mutable}
				r.result.RefOf[s.Name.ID()] = id
			}
		} else if s.Pattern != nil {
			r.bindPattern(s.Pattern, scp, s.Mutable)
		}
	case *ast.ReturnStmt:
		if s.Value != nil {
			r.resolveExpr(s.Value, scp)
		}
	case *ast.ThrowStmt:
		if s.Value != nil {
			r.resolveExpr(s.Value, scp)
		}
	case *ast.IfStmt:
		r.resolveExpr(s.Cond, scp)
		r.resolveBlock(s.Then, scp)
		if s.Else != nil {
			r.resolveStmt(s.Else, scp)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Cond, scp)
		r.loopDepth++
		r.resolveBlock(s.Body, scp)
		r.loopDepth--
	case *ast.ForInStmt:
		r.resolveExpr(s.Iter, scp)
		bscp := newScope(scp)
		r.bindPattern(s.Binding, bscp, false)
		r.loopDepth++
		for _, st := range s.Body.Statements {
			r.resolveStmt(st, bscp)
		}
		r.loopDepth--
	case *ast.MatchExpr:
		r.resolveMatch(s, scp)
	case *ast.BlockStmt:
		r.resolveBlock(s, scp)
	case *ast.ExprStmt:
		r.resolveExpr(s.Expr, scp)
	case *ast.BreakStmt, *ast.ContinueStmt, *ast.DirectiveStmt,
		*ast.PackageDecl, *ast.ImportDecl:
		// nothing to resolve
	}
}

func (r *Resolver) resolveFunction(d *ast.FunctionDecl, parent *scope) {
	fscp := newScope(parent)
	for _, p := range d.Params {
		r.resolveType(p.Type, parent)
		if p.Default != nil {
			r.resolveExpr(p.Default, parent)
		}
		id := r.result.newDefID()
		fscp.define(p.Name.Value, id)
		r.result.Defs[id] = &Def{ID: id, Name: p.Name.Value, Kind: SymParam, Node: p.Name}
		r.result.RefOf[p.Name.ID()] = id
	}
	r.resolveType(d.ReturnType, parent)
	r.funcDepth++
	if d.Body != nil {
		for _, st := range d.Body.Statements {
			switch st.(type) {
			case *ast.FunctionDecl, *ast.StructDecl, *ast.EnumDecl, *ast.InterfaceDecl, *ast.TypeAliasDecl:
				r.collectStmt(st, fscp)
			}
		}
		for _, st := range d.Body.Statements {
			r.resolveStmt(st, fscp)
		}
	}
	r.funcDepth--
}

func (r *Resolver) resolveBlock(block *ast.BlockStmt, parent *scope) {
	if block == nil {
		return
	}
	scp := r.collectBlock(block, parent)
	for _, st := range block.Statements {
		r.resolveStmt(st, scp)
	}
}

func (r *Resolver) resolveMatch(m *ast.MatchExpr, scp *scope) {
	for _, subj := range m.Subjects {
		r.resolveExpr(subj, scp)
	}
	for _, arm := range m.Arms {
		ascp := newScope(scp)
		for _, pat := range arm.Patterns {
			r.bindPattern(pat, ascp, false)
		}
		if arm.Guard != nil {
			r.resolveExpr(arm.Guard, ascp)
		}
		for _, st := range arm.Body.Statements {
			r.resolveStmt(st, ascp)
		}
	}
	if m.DefaultArm != nil {
		r.resolveBlock(m.DefaultArm, scp)
	}
}

// bindPattern introduces every name a pattern binds into scp, and
// resolves any enum-variant path it names against the active scope.
func (r *Resolver) bindPattern(pat ast.Pattern, scp *scope, mutable bool) {
	switch p := pat.(type) {
	case *ast.IdentPattern:
		if len(p.Destruct) > 0 {
			for _, name := range p.Destruct {
				id := r.result.newDefID()
				scp.define(name, id)
				r.result.Defs[id] = &Def{ID: id, Name: name, Kind: SymVar, Node: p, Mutable: mutable}
			}
			return
		}
		name := p.Name
		if p.Alias != "" {
			name = p.Alias
		}
		id := r.result.newDefID()
		scp.define(name, id)
		r.result.Defs[id] = &Def{ID: id, Name: name, Kind: SymVar, Node: p, Mutable: mutable}
		r.result.RefOf[p.ID()] = id
	case *ast.WildcardPattern:
		// binds nothing
	case *ast.LiteralPattern:
		r.resolveExpr(p.Value, scp)
	case *ast.PathPattern:
		if p.Enum != "" {
			r.resolveRef(p, p.Enum+"."+p.Variant, scp)
		} else {
			r.resolveRef(p, p.Variant, scp)
		}
		for _, f := range p.Fields {
			r.bindPattern(f, scp, mutable)
		}
	case *ast.TuplePattern:
		for _, e := range p.Elements {
			r.bindPattern(e, scp, mutable)
		}
	}
}

func (r *Resolver) resolveType(t ast.TypeExpr, scp *scope) {
	if t == nil {
		return
	}
	switch ty := t.(type) {
	case *ast.NamedType:
		if !primitiveNames[ty.Name] {
			r.resolveRef(ty, ty.Name, scp)
		}
		for _, a := range ty.Args {
			r.resolveType(a, scp)
		}
	case *ast.ArrayType:
		r.resolveType(ty.Elem, scp)
	case *ast.FuncType:
		for _, p := range ty.Params {
			r.resolveType(p, scp)
		}
		r.resolveType(ty.Return, scp)
	case *ast.OptionType:
		r.resolveType(ty.Elem, scp)
	case *ast.RefType:
		r.resolveType(ty.Elem, scp)
	}
}
