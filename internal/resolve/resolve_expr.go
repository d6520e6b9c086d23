package resolve

import "github.com/radixlang/radix/internal/ast"

func (r *Resolver) resolveExpr(e ast.Expression, scp *scope) {
	if e == nil {
		return
	}
	switch ex := e.(type) {
	case *ast.Identifier:
		r.resolveRef(ex, ex.Value, scp)
	case *ast.BinaryExpr:
		r.resolveExpr(ex.Left, scp)
		r.resolveExpr(ex.Right, scp)
	case *ast.UnaryExpr:
		r.resolveExpr(ex.Operand, scp)
	case *ast.TernaryExpr:
		r.resolveExpr(ex.Cond, scp)
		r.resolveExpr(ex.Then, scp)
		r.resolveExpr(ex.Else, scp)
	case *ast.RangeExpr:
		r.resolveExpr(ex.Start, scp)
		r.resolveExpr(ex.End, scp)
		if ex.Step != nil {
			r.resolveExpr(ex.Step, scp)
		}
	case *ast.CallExpr:
		r.resolveExpr(ex.Callee, scp)
		for _, a := range ex.Args {
			r.resolveExpr(a.Value, scp)
		}
	case *ast.MemberExpr:
		r.resolveExpr(ex.Object, scp)
	case *ast.IndexExpr:
		r.resolveExpr(ex.Object, scp)
		r.resolveExpr(ex.Index, scp)
	case *ast.ChainExpr:
		r.resolveExpr(ex.Object, scp)
		if ex.Index != nil {
			r.resolveExpr(ex.Index, scp)
		}
		for _, a := range ex.Args {
			r.resolveExpr(a.Value, scp)
		}
	case *ast.CastExpr:
		r.resolveExpr(ex.Value, scp)
		r.resolveType(ex.Target, scp)
		if ex.Fallback != nil {
			r.resolveExpr(ex.Fallback, scp)
		}
	case *ast.AssignExpr:
		r.resolveExpr(ex.Target, scp)
		r.resolveExpr(ex.Value, scp)
	case *ast.FunctionLiteral:
		fscp := newScope(scp)
		for _, p := range ex.Params {
			if p.Type != nil {
				r.resolveType(p.Type, scp)
			}
			id := r.result.newDefID()
			fscp.define(p.Name.Value, id)
			r.result.Defs[id] = &Def{ID: id, Name: p.Name.Value, Kind: SymParam, Node: p.Name}
			r.result.RefOf[p.Name.ID()] = id
		}
		r.resolveType(ex.ReturnType, scp)
		r.funcDepth++
		r.resolveBlock(ex.Body, fscp)
		r.funcDepth--
	case *ast.ListLiteral:
		for _, el := range ex.Elements {
			r.resolveExpr(el, scp)
		}
	case *ast.SetLiteral:
		for _, el := range ex.Elements {
			r.resolveExpr(el, scp)
		}
	case *ast.TupleLiteral:
		for _, el := range ex.Elements {
			r.resolveExpr(el, scp)
		}
	case *ast.MapLiteral:
		for _, entry := range ex.Entries {
			r.resolveExpr(entry.Key, scp)
			r.resolveExpr(entry.Value, scp)
		}
	case *ast.RecordLiteral:
		r.resolveRef(ex.TypeName, ex.TypeName.Value, scp)
		for _, name := range ex.FieldOrder {
			r.resolveExpr(ex.Fields[name], scp)
		}
		if ex.Spread != nil {
			r.resolveExpr(ex.Spread, scp)
		}
	case *ast.TemplateStringLiteral:
		for _, part := range ex.Parts {
			r.resolveExpr(part, scp)
		}
	case *ast.MatchExpr:
		r.resolveMatch(ex, scp)
	case *ast.IntegerLiteral, *ast.FloatLiteral, *ast.BigIntLiteral,
		*ast.BooleanLiteral, *ast.NilLiteral, *ast.StringLiteral:
		// no references
	}
}
