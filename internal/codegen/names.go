package codegen

import (
	"strconv"

	"github.com/radixlang/radix/internal/hir"
	"github.com/radixlang/radix/internal/intern"
)

// nameIndex recovers the surface name of every DefId reachable from one
// module, so path expressions can print the binding's real identifier.
// The HIR carries names on definitions (items, params, bind patterns)
// but only a DefId on references; the original keeps a parallel
// symbol-metadata map in its resolver (semantic/resolver.rs), which the
// emitters can't see across the phase boundary, so the index is rebuilt
// here from the definitions in the module itself.
type nameIndex struct {
	in    *intern.Interner
	names map[hir.DefId]string
}

func buildNameIndex(mod *hir.Module, in *intern.Interner) *nameIndex {
	idx := &nameIndex{in: in, names: make(map[hir.DefId]string)}
	for _, item := range mod.Items {
		idx.item(item)
	}
	if mod.Entry != nil {
		idx.block(mod.Entry)
	}
	return idx
}

// name returns the surface identifier for def, or a stable synthetic
// fallback for DefIds with no recorded definition (error paths).
func (idx *nameIndex) name(def hir.DefId) string {
	if n, ok := idx.names[def]; ok {
		return n
	}
	return "v" + strconv.Itoa(int(def))
}

func (idx *nameIndex) put(def hir.DefId, sym intern.Symbol) {
	if def != 0 {
		idx.names[def] = idx.in.Lookup(sym)
	}
}

func (idx *nameIndex) item(item *hir.Item) {
	switch item.Kind {
	case hir.ItemFunction:
		idx.names[item.DefID] = idx.in.Lookup(item.Func.Name)
		idx.function(item.Func)
	case hir.ItemStruct:
		idx.names[item.DefID] = idx.in.Lookup(item.Struct.Name)
		for _, tp := range item.Struct.TypeParams {
			idx.put(tp.DefID, tp.Name)
		}
		for _, f := range item.Struct.Fields {
			idx.put(f.DefID, f.Name)
			if f.Init != nil {
				idx.expr(f.Init)
			}
		}
		for _, m := range item.Struct.Methods {
			idx.put(m.DefID, m.Func.Name)
			if m.HocDef != 0 {
				idx.names[m.HocDef] = "hoc"
			}
			idx.function(m.Func)
		}
	case hir.ItemEnum:
		idx.names[item.DefID] = idx.in.Lookup(item.Enum.Name)
		for _, tp := range item.Enum.TypeParams {
			idx.put(tp.DefID, tp.Name)
		}
		for _, v := range item.Enum.Variants {
			idx.put(v.DefID, v.Name)
		}
	case hir.ItemInterface:
		idx.names[item.DefID] = idx.in.Lookup(item.Iface.Name)
	case hir.ItemTypeAlias:
		idx.names[item.DefID] = idx.in.Lookup(item.Alias.Name)
	case hir.ItemConst:
		idx.names[item.DefID] = idx.in.Lookup(item.Const.Name)
		if item.Const.Value != nil {
			idx.expr(item.Const.Value)
		}
	case hir.ItemImport:
		for _, it := range item.Import.Items {
			if it.HasAlias {
				idx.put(it.DefID, it.Alias)
			} else {
				idx.put(it.DefID, it.Name)
			}
		}
	}
}

func (idx *nameIndex) function(fn *hir.Function) {
	for _, tp := range fn.TypeParams {
		idx.put(tp.DefID, tp.Name)
	}
	for _, p := range fn.Params {
		idx.put(p.DefID, p.Name)
	}
	if fn.Body != nil {
		idx.block(fn.Body)
	}
}

func (idx *nameIndex) block(b *hir.Block) {
	for _, s := range b.Stmts {
		idx.stmt(s)
	}
}

func (idx *nameIndex) stmt(s *hir.Stmt) {
	switch s.Kind {
	case hir.StmtExpr:
		idx.expr(s.Expr)
	case hir.StmtLet:
		idx.pattern(s.Bind)
		if s.Value != nil {
			idx.expr(s.Value)
		}
	case hir.StmtReturn, hir.StmtThrow:
		if s.Result != nil {
			idx.expr(s.Result)
		}
	case hir.StmtIf:
		idx.expr(s.Cond)
		idx.block(s.Then)
		if s.HasElse {
			idx.block(s.Else)
		}
	case hir.StmtWhile:
		idx.expr(s.WhileCond)
		idx.block(s.WhileBody)
	case hir.StmtForIn:
		idx.pattern(s.Loop)
		idx.expr(s.Iterable)
		idx.block(s.Body)
	case hir.StmtMatch:
		for _, subj := range s.Subjects {
			idx.expr(subj)
		}
		idx.arms(s.Arms)
	case hir.StmtBlock:
		idx.block(s.Inner)
	case hir.StmtItem:
		idx.item(s.Item)
	}
}

func (idx *nameIndex) arms(arms []*hir.MatchArm) {
	for _, arm := range arms {
		for _, p := range arm.Patterns {
			idx.pattern(p)
		}
		if arm.Guard != nil {
			idx.expr(arm.Guard)
		}
		idx.block(arm.Body)
	}
}

func (idx *nameIndex) pattern(p *hir.Pattern) {
	if p == nil {
		return
	}
	if p.Kind == hir.PatternBind {
		idx.put(p.BindDef, p.Name)
	}
	for _, sub := range p.Elements {
		idx.pattern(sub)
	}
}

func (idx *nameIndex) expr(e *hir.Expr) {
	if e == nil {
		return
	}
	for _, sub := range []*hir.Expr{
		e.Left, e.Right, e.Operand, e.Cond, e.Then, e.Else,
		e.Start, e.End, e.Step, e.Callee, e.Object, e.Index,
		e.Fallback, e.Spread,
	} {
		idx.expr(sub)
	}
	for _, part := range e.Parts {
		idx.expr(part)
	}
	for _, a := range e.Args {
		idx.expr(a.Value)
	}
	for _, el := range e.Elements {
		idx.expr(el)
	}
	for _, ent := range e.Entries {
		idx.expr(ent.Key)
		idx.expr(ent.Value)
	}
	for _, name := range e.FieldOrder {
		idx.expr(e.Fields[name])
	}
	for _, subj := range e.Subjects {
		idx.expr(subj)
	}
	if e.Kind == hir.ExprFunctionLit {
		for _, p := range e.Params {
			idx.put(p.DefID, p.Name)
		}
		if e.Body != nil {
			idx.block(e.Body)
		}
	}
	if e.Arms != nil {
		idx.arms(e.Arms)
	}
	if e.DefaultArm != nil {
		idx.block(e.DefaultArm)
	}
}
