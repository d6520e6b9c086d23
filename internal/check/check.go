// Package check is the bidirectional type checker, the third semantic
// pass after resolve and lower. Grounded on
// original_source/fons/radix-rs/src/semantic/passes/typecheck.rs's
// TypeChecker (collect_items pre-pass, a scope stack of DefId->TypeId
// bindings, per-function current/inferred return tracking, and a
// Substitution threaded through every inference call), adapted to this
// module's HIR and Table/Substitution shapes from internal/types.
package check

import (
	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/hir"
	"github.com/radixlang/radix/internal/intern"
	"github.com/radixlang/radix/internal/source"
	"github.com/radixlang/radix/internal/types"
)

// binding is one scope entry, grounded on typecheck.rs's BindingInfo.
type binding struct {
	ty      types.TypeId
	mutable bool
}

// structInfo mirrors typecheck.rs's StructInfo: a struct's field and
// method types, collected once up front so member access doesn't need
// to re-walk the HIR.
type structInfo struct {
	fields  map[string]types.TypeId
	methods map[string]types.FuncSig
}

// Checker walks a lowered hir.Module, inferring and checking every
// expression's TypeId and reporting SEM01x diagnostics on mismatch.
type Checker struct {
	table    *types.Table
	sub      *types.Substitution
	diags    *diagnostics.Bag
	interner *intern.Interner

	functions     map[hir.DefId]types.FuncSig
	consts        map[hir.DefId]types.TypeId
	structs       map[hir.DefId]*structInfo
	variantFields map[hir.DefId][]types.TypeId
	variantParent map[hir.DefId]hir.DefId

	scopes []map[hir.DefId]binding

	currentReturn types.TypeId
	hasReturn     bool
	inferredRet   types.TypeId
	loopDepth     int
}

// New returns a Checker sharing table with the rest of this compile's
// session (spec.md §5: one Table per compile call).
func New(table *types.Table, in *intern.Interner, diags *diagnostics.Bag) *Checker {
	return &Checker{
		table:         table,
		sub:           types.NewSubstitution(),
		diags:         diags,
		interner:      in,
		functions:     make(map[hir.DefId]types.FuncSig),
		consts:        make(map[hir.DefId]types.TypeId),
		structs:       make(map[hir.DefId]*structInfo),
		variantFields: make(map[hir.DefId][]types.TypeId),
		variantParent: make(map[hir.DefId]hir.DefId),
	}
}

// Check runs the full pass over mod: signature collection, then body
// checking for every function, method, and const initializer.
func (c *Checker) Check(mod *hir.Module) {
	c.collectItems(mod)
	for _, item := range mod.Items {
		c.checkItem(item)
	}
	if mod.Entry != nil {
		c.pushScope()
		c.checkBlock(mod.Entry)
		c.popScope()
	}
	c.finalizeModule(mod)
}

func (c *Checker) collectItems(mod *hir.Module) {
	for _, item := range mod.Items {
		switch item.Kind {
		case hir.ItemFunction:
			c.functions[item.DefID] = c.funcSig(item.Func)
		case hir.ItemStruct:
			c.collectStruct(item.DefID, item.Struct)
		case hir.ItemEnum:
			for _, v := range item.Enum.Variants {
				fields := make([]types.TypeId, 0, len(v.Fields))
				for _, f := range v.Fields {
					fields = append(fields, f.Type)
				}
				c.variantFields[v.DefID] = fields
				c.variantParent[v.DefID] = item.DefID
			}
		case hir.ItemConst:
			if item.Const.HasType {
				c.consts[item.DefID] = item.Const.Type
			}
		case hir.ItemImport:
			// imports are recorded symbolically only (spec.md §1), so a
			// reference to one carries an unknown type rather than an
			// undefined-name error
			for _, it := range item.Import.Items {
				c.consts[it.DefID] = c.table.Error()
			}
		}
	}
}

func (c *Checker) collectStruct(defID hir.DefId, s *hir.Struct) {
	info := &structInfo{fields: make(map[string]types.TypeId), methods: make(map[string]types.FuncSig)}
	for _, f := range s.Fields {
		info.fields[c.interner.Lookup(f.Name)] = f.Type
	}
	for _, m := range s.Methods {
		info.methods[c.interner.Lookup(m.Func.Name)] = c.funcSig(m.Func)
	}
	c.structs[defID] = info
}

func (c *Checker) funcSig(fn *hir.Function) types.FuncSig {
	params := make([]types.TypeId, 0, len(fn.Params))
	for _, p := range fn.Params {
		params = append(params, p.Type)
	}
	ret := fn.ReturnType
	if !fn.HasReturn {
		ret = c.table.Primitive(types.PrimVacuum)
	}
	return types.FuncSig{Params: params, Return: ret}
}

func (c *Checker) checkItem(item *hir.Item) {
	switch item.Kind {
	case hir.ItemFunction:
		c.checkFunction(item.Func)
	case hir.ItemStruct:
		for _, f := range item.Struct.Fields {
			if f.Init != nil {
				c.checkExpr(f.Init, f.Type)
			}
		}
		recvTy := c.table.Struct(types.DefRef{ID: int(item.DefID), Name: c.interner.Lookup(item.Struct.Name)})
		for _, m := range item.Struct.Methods {
			c.pushScope()
			if m.HocDef != 0 {
				c.defineBinding(m.HocDef, recvTy, false)
			}
			c.checkFunction(m.Func)
			c.popScope()
		}
	case hir.ItemConst:
		if item.Const.Value != nil {
			want := item.Const.Type
			if item.Const.HasType {
				c.checkExpr(item.Const.Value, want)
			} else {
				c.inferExpr(item.Const.Value)
			}
		}
	}
}

func (c *Checker) checkFunction(fn *hir.Function) {
	if fn.Body == nil {
		return
	}
	prevRet, prevHas := c.currentReturn, c.hasReturn
	c.currentReturn, c.hasReturn = fn.ReturnType, fn.HasReturn
	c.pushScope()
	for _, p := range fn.Params {
		c.defineBinding(p.DefID, p.Type, p.Mode == hir.ParamMutRef || p.Mode == hir.ParamMove)
	}
	c.checkBlock(fn.Body)
	c.popScope()
	c.currentReturn, c.hasReturn = prevRet, prevHas
}

func (c *Checker) pushScope() {
	c.scopes = append(c.scopes, make(map[hir.DefId]binding))
}

func (c *Checker) popScope() {
	c.scopes = c.scopes[:len(c.scopes)-1]
}

func (c *Checker) defineBinding(id hir.DefId, ty types.TypeId, mutable bool) {
	c.scopes[len(c.scopes)-1][id] = binding{ty: ty, mutable: mutable}
}

func (c *Checker) lookupBinding(id hir.DefId) (binding, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if b, ok := c.scopes[i][id]; ok {
			return b, true
		}
	}
	return binding{}, false
}

func (c *Checker) errorf(code string, span source.Span, format string, args ...any) {
	c.diags.Add(diagnostics.Newf(diagnostics.Error, code, span, format, args...).WithHelp(diagnostics.Help(code)))
}

// unify is the shared entry point every inference call routes through,
// reporting SEM010 on failure and returning the table's Error type so
// downstream checks don't cascade on an already-reported mismatch.
func (c *Checker) unify(span source.Span, a, b types.TypeId) types.TypeId {
	if err := types.Unify(c.table, c.sub, a, b); err != nil {
		c.errorf("SEM010", span, "%s", err.Error())
		return c.table.Error()
	}
	return a
}

// finalize resolves id through the current substitution, grounded on
// typecheck.rs's post-pass "resolve all remaining infer vars" step
// (spec.md §8's finalization invariant).
func (c *Checker) finalize(id types.TypeId) types.TypeId {
	return types.Finalize(c.table, c.sub, id)
}
