// Package borrow is the fourth semantic pass: ownership/borrow checking
// over already-typechecked HIR (spec.md §4.6). Grounded on
// original_source/fons/radix-rs/src/semantic/passes/borrow.rs's
// BorrowChecker: a per-DefId BorrowState{moved, shared, mutable} map
// plus a stack of scopes recording which borrows release on scope exit.
// Unlike the original, this module's HIR has no explicit "&"/"&mut"
// expression kind — borrowing is entirely inferred from a call's
// callee signature modes (hir.ParamMode, populated by internal/lower
// from each parameter's declared reference type), so call arguments are
// this pass's only borrow/move entry point besides let bindings, plain
// assignment and "redde" (return).
package borrow

import (
	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/hir"
	"github.com/radixlang/radix/internal/intern"
	"github.com/radixlang/radix/internal/source"
	"github.com/radixlang/radix/internal/types"
)

type state struct {
	moved   bool
	shared  uint32
	mutable bool
}

type borrowEntry struct {
	def hir.DefId
	mut bool
}

// Checker walks a hir.Module validating move/borrow discipline.
type Checker struct {
	diags    *diagnostics.Bag
	interner *intern.Interner
	table    *types.Table

	states map[hir.DefId]*state
	scopes [][]borrowEntry

	funcModes   map[hir.DefId][]hir.ParamMode
	methodModes map[hir.DefId]map[string][]hir.ParamMode
}

// New returns a Checker reporting into diags. table must be the same
// Table the checker pass used to stamp hir.Expr.Type, since method-call
// argument modes are resolved through the callee object's struct type.
func New(diags *diagnostics.Bag, in *intern.Interner, table *types.Table) *Checker {
	return &Checker{
		diags:       diags,
		interner:    in,
		table:       table,
		funcModes:   make(map[hir.DefId][]hir.ParamMode),
		methodModes: make(map[hir.DefId]map[string][]hir.ParamMode),
	}
}

// Check runs the whole pass over mod, grounded on BorrowChecker::check_program.
func (c *Checker) Check(mod *hir.Module) {
	c.collectModes(mod)
	for _, item := range mod.Items {
		c.checkItem(item)
	}
	if mod.Entry != nil {
		c.reset()
		c.checkBlock(mod.Entry)
	}
}

func (c *Checker) collectModes(mod *hir.Module) {
	for _, item := range mod.Items {
		switch item.Kind {
		case hir.ItemFunction:
			c.funcModes[item.DefID] = modesOf(item.Func)
		case hir.ItemStruct:
			byName := make(map[string][]hir.ParamMode, len(item.Struct.Methods))
			for _, m := range item.Struct.Methods {
				byName[c.interner.Lookup(m.Func.Name)] = modesOf(m.Func)
			}
			c.methodModes[item.DefID] = byName
		}
	}
}

func modesOf(fn *hir.Function) []hir.ParamMode {
	out := make([]hir.ParamMode, len(fn.Params))
	for i, p := range fn.Params {
		out[i] = p.Mode
	}
	return out
}

func (c *Checker) checkItem(item *hir.Item) {
	switch item.Kind {
	case hir.ItemFunction:
		c.checkFunction(item.Func)
	case hir.ItemStruct:
		for _, f := range item.Struct.Fields {
			if f.Init != nil {
				c.reset()
				c.checkExpr(f.Init)
			}
		}
		for _, m := range item.Struct.Methods {
			c.checkFunction(m.Func)
		}
	case hir.ItemConst:
		c.reset()
		if item.Const.Value != nil {
			c.checkExpr(item.Const.Value)
		}
	}
}

func (c *Checker) checkFunction(fn *hir.Function) {
	c.reset()
	for _, p := range fn.Params {
		c.ensureState(p.DefID)
	}
	if fn.Body != nil {
		c.checkBlock(fn.Body)
	}
}

func (c *Checker) reset() {
	c.states = make(map[hir.DefId]*state)
	c.scopes = nil
}

func (c *Checker) pushScope() { c.scopes = append(c.scopes, nil) }

func (c *Checker) popScope() {
	if len(c.scopes) == 0 {
		return
	}
	top := c.scopes[len(c.scopes)-1]
	c.scopes = c.scopes[:len(c.scopes)-1]
	for _, e := range top {
		st, ok := c.states[e.def]
		if !ok {
			continue
		}
		if e.mut {
			st.mutable = false
		} else if st.shared > 0 {
			st.shared--
		}
	}
}

func (c *Checker) ensureState(id hir.DefId) *state {
	st, ok := c.states[id]
	if !ok {
		st = &state{}
		c.states[id] = st
	}
	return st
}

func (c *Checker) errorf(code string, span source.Span, msg string) {
	c.diags.Add(diagnostics.New(diagnostics.Error, code, span, msg).WithHelp(diagnostics.Help(code)))
}

func (c *Checker) readUse(id hir.DefId, span source.Span) {
	st := c.ensureState(id)
	if st.moved {
		c.errorf("SEM050", span, "this binding was moved earlier and cannot be used again")
		return
	}
	if st.mutable {
		c.errorf("SEM052", span, "use while mutably borrowed")
	}
}

func (c *Checker) writeUse(id hir.DefId, span source.Span) {
	st := c.ensureState(id)
	if st.moved {
		c.errorf("SEM050", span, "this binding was moved earlier and cannot be used again")
		return
	}
	if st.mutable || st.shared > 0 {
		c.errorf("SEM052", span, "write while borrowed")
	}
}

func (c *Checker) moveUse(id hir.DefId, span source.Span) {
	st := c.ensureState(id)
	if st.moved {
		c.errorf("SEM050", span, "this binding was moved earlier and cannot be used again")
		return
	}
	if st.mutable || st.shared > 0 {
		c.errorf("SEM053", span, "cannot move a value out of a shared or borrowed binding")
		return
	}
	st.moved = true
}

func (c *Checker) borrowShared(id hir.DefId, span source.Span) {
	st := c.ensureState(id)
	if st.moved {
		c.errorf("SEM051", span, "cannot borrow a binding that has already been moved")
		return
	}
	if st.mutable {
		c.errorf("SEM052", span, "shared borrow conflicts with an outstanding mutable borrow")
		return
	}
	st.shared++
	if n := len(c.scopes); n > 0 {
		c.scopes[n-1] = append(c.scopes[n-1], borrowEntry{def: id})
	}
}

func (c *Checker) borrowMut(id hir.DefId, span source.Span) {
	st := c.ensureState(id)
	if st.moved {
		c.errorf("SEM051", span, "cannot borrow a binding that has already been moved")
		return
	}
	if st.mutable || st.shared > 0 {
		c.errorf("SEM052", span, "a mutable borrow conflicts with another outstanding borrow")
		return
	}
	st.mutable = true
	if n := len(c.scopes); n > 0 {
		c.scopes[n-1] = append(c.scopes[n-1], borrowEntry{def: id, mut: true})
	}
}

// rootDef walks Member/Index projections down to the DefId they're
// rooted at, grounded on BorrowChecker::root_def_id.
func rootDef(e *hir.Expr) (hir.DefId, bool) {
	if e == nil {
		return 0, false
	}
	switch e.Kind {
	case hir.ExprPath:
		return e.Def, true
	case hir.ExprMember:
		return rootDef(e.Object)
	case hir.ExprIndex:
		return rootDef(e.Object)
	default:
		return 0, false
	}
}

// methodModesFor resolves a method-call callee's per-parameter modes by
// looking up the receiver object's already-typechecked struct type.
func (c *Checker) methodModesFor(callee *hir.Expr) []hir.ParamMode {
	if callee.Object == nil {
		return nil
	}
	resolved := c.table.Get(c.table.ResolveAlias(callee.Object.Type))
	if resolved.Kind != types.KStruct {
		return nil
	}
	byName, ok := c.methodModes[hir.DefId(resolved.Def.ID)]
	if !ok {
		return nil
	}
	return byName[callee.Name]
}
