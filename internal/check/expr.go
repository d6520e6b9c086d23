package check

import (
	"github.com/radixlang/radix/internal/hir"
	"github.com/radixlang/radix/internal/types"
)

// inferExpr infers e's type bottom-up with no expected type, grounded
// on typecheck.rs's infer_expr. Every call stamps e.Type before
// returning, per spec.md §8's "every Expr carries a finalized TypeId".
func (c *Checker) inferExpr(e *hir.Expr) types.TypeId {
	if e == nil {
		return c.table.Error()
	}
	ty := c.inferExprKind(e)
	e.Type = ty
	return ty
}

// checkExpr checks e against an expected type, falling back to plain
// inference and unifying the result when no bidirectional rule applies
// (typecheck.rs's check_expr: function literals and list/set literals
// propagate the expected type down to their elements; every other
// expression shape, map literals included, just infers and unifies).
func (c *Checker) checkExpr(e *hir.Expr, expected types.TypeId) types.TypeId {
	if e == nil {
		return expected
	}
	switch e.Kind {
	case hir.ExprFunctionLit:
		want := c.table.Get(expected)
		if want.Kind == types.KFunc && len(want.Sig.Params) == len(e.Params) {
			for i, p := range e.Params {
				if p.Type == 0 {
					p.Type = want.Sig.Params[i]
				}
			}
			if !e.HasReturn {
				e.ReturnType = want.Sig.Return
			}
		}
	case hir.ExprList:
		want := c.table.Get(expected)
		if want.Kind == types.KArray {
			for _, el := range e.Elements {
				c.checkExpr(el, want.Elem)
			}
			e.Type = expected
			return expected
		}
	case hir.ExprSet:
		want := c.table.Get(expected)
		if want.Kind == types.KSet {
			for _, el := range e.Elements {
				c.checkExpr(el, want.Elem)
			}
			e.Type = expected
			return expected
		}
	}
	got := c.inferExpr(e)
	result := c.unify(e.Span, got, expected)
	e.Type = result
	return result
}

func (c *Checker) inferExprKind(e *hir.Expr) types.TypeId {
	switch e.Kind {
	case hir.ExprLiteral:
		return c.inferLiteral(e)
	case hir.ExprPath:
		return c.inferPath(e)
	case hir.ExprBinary:
		return c.inferBinary(e)
	case hir.ExprUnary:
		return c.inferUnary(e)
	case hir.ExprTernary:
		c.checkExpr(e.Cond, c.table.Primitive(types.PrimBivalens))
		then := c.inferExpr(e.Then)
		return c.checkExpr(e.Else, then)
	case hir.ExprRange:
		c.inferExpr(e.Start)
		c.inferExpr(e.End)
		if e.Step != nil {
			c.inferExpr(e.Step)
		}
		return c.table.Array(c.table.Primitive(types.PrimNumerus))
	case hir.ExprCall:
		return c.inferCall(e)
	case hir.ExprMember:
		return c.inferMember(e)
	case hir.ExprIndex:
		return c.inferIndex(e)
	case hir.ExprOptionalChain:
		return c.inferOptionalChain(e)
	case hir.ExprCast:
		c.inferExpr(e.Operand)
		if e.Fallback != nil {
			c.checkExpr(e.Fallback, e.Target)
		}
		return e.Target
	case hir.ExprAssign:
		return c.inferAssign(e)
	case hir.ExprFunctionLit:
		return c.inferFunctionLit(e)
	case hir.ExprList:
		elem := c.table.Fresh()
		for _, el := range e.Elements {
			elem = c.unify(el.Span, c.inferExpr(el), elem)
		}
		return c.table.Array(elem)
	case hir.ExprSet:
		elem := c.table.Fresh()
		for _, el := range e.Elements {
			elem = c.unify(el.Span, c.inferExpr(el), elem)
		}
		return c.table.SetOf(elem)
	case hir.ExprTuple:
		var ids []types.TypeId
		for _, el := range e.Elements {
			ids = append(ids, c.inferExpr(el))
		}
		return c.table.Applied(c.table.Param("tuplum"), ids)
	case hir.ExprMap:
		key, val := c.table.Fresh(), c.table.Fresh()
		for _, entry := range e.Entries {
			key = c.unify(entry.Key.Span, c.inferExpr(entry.Key), key)
			val = c.unify(entry.Value.Span, c.inferExpr(entry.Value), val)
		}
		return c.table.MapOf(key, val)
	case hir.ExprRecord:
		return c.inferRecord(e)
	case hir.ExprMatch:
		return c.inferMatch(e)
	default:
		return c.table.Error()
	}
}

func (c *Checker) inferLiteral(e *hir.Expr) types.TypeId {
	switch e.Lit {
	case hir.LitInt, hir.LitBigInt:
		return c.table.Primitive(types.PrimNumerus)
	case hir.LitFloat:
		return c.table.Primitive(types.PrimFractus)
	case hir.LitString, hir.LitTemplateString:
		for _, p := range e.Parts {
			c.inferExpr(p)
		}
		return c.table.Primitive(types.PrimTextus)
	case hir.LitBool:
		return c.table.Primitive(types.PrimBivalens)
	case hir.LitNil:
		return c.table.Option(c.table.Fresh())
	default:
		return c.table.Error()
	}
}

func (c *Checker) inferPath(e *hir.Expr) types.TypeId {
	if b, ok := c.lookupBinding(e.Def); ok {
		return b.ty
	}
	if sig, ok := c.functions[e.Def]; ok {
		return c.table.Func(sig)
	}
	if ty, ok := c.consts[e.Def]; ok {
		return ty
	}
	c.errorf("SEM001", e.Span, "this name is not defined")
	return c.table.Error()
}

func (c *Checker) inferBinary(e *hir.Expr) types.TypeId {
	lt := c.inferExpr(e.Left)
	rt := c.inferExpr(e.Right)
	switch e.BinOp {
	case hir.BinEq, hir.BinNotEq:
		c.unify(e.Span, lt, rt)
		return c.table.Primitive(types.PrimBivalens)
	case hir.BinLt, hir.BinGt, hir.BinLte, hir.BinGte:
		c.unify(e.Span, lt, rt)
		return c.table.Primitive(types.PrimBivalens)
	case hir.BinAnd, hir.BinOr:
		c.checkExpr(e.Left, c.table.Primitive(types.PrimBivalens))
		c.checkExpr(e.Right, c.table.Primitive(types.PrimBivalens))
		return c.table.Primitive(types.PrimBivalens)
	case hir.BinNullCoalesce:
		lopt := c.table.Get(lt)
		if lopt.Kind == types.KOption {
			return c.unify(e.Span, lopt.Elem, rt)
		}
		return c.unify(e.Span, lt, rt)
	case hir.BinContains:
		return c.table.Primitive(types.PrimBivalens)
	default:
		result := c.unify(e.Span, lt, rt)
		// Mixed Numerus/Fractus arithmetic widens to the float side.
		if c.isFractus(lt) || c.isFractus(rt) {
			result = c.table.Primitive(types.PrimFractus)
		}
		if c.table.Get(result).Kind != types.KPrimitive {
			c.errorf("SEM011", e.Span, "operator %d is not valid for type %s", e.BinOp, c.table.String(result))
		}
		return result
	}
}

func (c *Checker) isFractus(id types.TypeId) bool {
	ty := c.table.Get(c.table.ResolveAlias(c.sub.Resolve(c.table, id)))
	return ty.Kind == types.KPrimitive && ty.PrimName == types.PrimFractus
}

func (c *Checker) inferUnary(e *hir.Expr) types.TypeId {
	operand := c.inferExpr(e.Operand)
	switch e.UnOp {
	case hir.UnNot:
		return c.checkExpr(e.Operand, c.table.Primitive(types.PrimBivalens))
	case hir.UnIsSome, hir.UnIsNone:
		return c.table.Primitive(types.PrimBivalens)
	default:
		return operand
	}
}

func (c *Checker) inferCall(e *hir.Expr) types.TypeId {
	calleeTy := c.inferExpr(e.Callee)
	fn := c.table.Get(calleeTy)
	if fn.Kind != types.KFunc {
		if fn.Kind != types.KError {
			c.errorf("SEM012", e.Span, "%s is not callable", c.table.String(calleeTy))
		}
		for _, a := range e.Args {
			c.inferExpr(a.Value)
		}
		return c.table.Error()
	}
	if len(e.Args) != len(fn.Sig.Params) && !fn.Sig.Variadic {
		c.errorf("SEM013", e.Span, "expected %d arguments, got %d", len(fn.Sig.Params), len(e.Args))
	}
	for i, a := range e.Args {
		if i >= len(fn.Sig.Params) {
			c.inferExpr(a.Value)
			continue
		}
		want := fn.Sig.Params[i]
		// A reference-mode parameter borrows its argument implicitly,
		// so the argument is checked against the referent type.
		if pw := c.table.Get(c.table.ResolveAlias(want)); pw.Kind == types.KRef {
			want = pw.Elem
		}
		switch a.Value.Kind {
		case hir.ExprFunctionLit, hir.ExprList, hir.ExprSet:
			c.checkExpr(a.Value, want)
		default:
			// Arguments use the looser assignability relation rather
			// than unification (nil into Option, T into Option<T>,
			// Numerus into Fractus).
			got := c.inferExpr(a.Value)
			if !types.Assignable(c.table, c.sub, got, want) {
				c.errorf("SEM010", a.Value.Span, "argument type %s is not assignable to parameter type %s",
					c.table.String(got), c.table.String(want))
			}
		}
	}
	return fn.Sig.Return
}

func (c *Checker) inferMember(e *hir.Expr) types.TypeId {
	objTy := c.inferExpr(e.Object)
	resolved := c.table.ResolveAlias(c.sub.Resolve(c.table, objTy))
	obj := c.table.Get(resolved)
	if obj.Kind != types.KStruct {
		switch obj.Kind {
		case types.KArray, types.KSet, types.KMap, types.KOption, types.KEnum, types.KError:
			// Collection/string members come from the standard-library
			// method vocabulary the emitters translate (adde, mappata,
			// longitudo, ...); they are not modeled structurally, so
			// their result type is left unknown rather than rejected.
			// Enum members are variant references, typed by the match
			// machinery instead.
			return c.table.Error()
		case types.KPrimitive:
			if obj.PrimName == types.PrimTextus {
				return c.table.Error()
			}
		}
		c.errorf("SEM012", e.Span, "%s has no member %q", c.table.String(objTy), e.Name)
		return c.table.Error()
	}
	info, ok := c.structs[hir.DefId(obj.Def.ID)]
	if !ok {
		return c.table.Error()
	}
	if ft, ok := info.fields[e.Name]; ok {
		return ft
	}
	if sig, ok := info.methods[e.Name]; ok {
		return c.table.Func(sig)
	}
	c.errorf("SEM012", e.Span, "%s has no member %q", c.table.String(objTy), e.Name)
	return c.table.Error()
}

func (c *Checker) inferIndex(e *hir.Expr) types.TypeId {
	objTy := c.sub.Resolve(c.table, c.inferExpr(e.Object))
	idxTy := c.inferExpr(e.Index)
	obj := c.table.Get(objTy)
	switch obj.Kind {
	case types.KArray:
		c.unify(e.Index.Span, idxTy, c.table.Primitive(types.PrimNumerus))
		return obj.Elem
	case types.KMap:
		c.unify(e.Index.Span, idxTy, obj.Key)
		return obj.Value
	default:
		if obj.Kind != types.KError {
			c.errorf("SEM012", e.Span, "%s cannot be indexed", c.table.String(objTy))
		}
		return c.table.Error()
	}
}

func (c *Checker) inferOptionalChain(e *hir.Expr) types.TypeId {
	objTy := c.sub.Resolve(c.table, c.inferExpr(e.Object))
	obj := c.table.Get(objTy)
	base := objTy
	if obj.Kind == types.KOption {
		base = obj.Elem
	}
	var result types.TypeId
	switch {
	case e.Index != nil:
		arr := c.table.Get(c.table.ResolveAlias(base))
		if arr.Kind == types.KArray {
			result = arr.Elem
		} else {
			result = c.table.Error()
		}
		c.inferExpr(e.Index)
	case e.Args != nil:
		result = c.table.Error()
		for _, a := range e.Args {
			c.inferExpr(a.Value)
		}
	default:
		baseStruct := c.table.Get(c.table.ResolveAlias(base))
		if baseStruct.Kind == types.KStruct {
			if info, ok := c.structs[hir.DefId(baseStruct.Def.ID)]; ok {
				if ft, ok := info.fields[e.Name]; ok {
					result = ft
				} else if sig, ok := info.methods[e.Name]; ok {
					result = c.table.Func(sig)
				}
			}
		}
		if result == 0 {
			result = c.table.Error()
		}
	}
	if e.ChainOptional {
		return c.table.Option(result)
	}
	return result
}

func (c *Checker) inferAssign(e *hir.Expr) types.TypeId {
	targetTy := c.inferExpr(e.Left)
	if e.Left.Kind == hir.ExprPath {
		if b, found := c.lookupBinding(e.Left.Def); found && !b.mutable {
			c.errorf("SEM016", e.Span, "this binding is immutable")
		}
	}
	if e.Left.Kind != hir.ExprPath && e.Left.Kind != hir.ExprMember && e.Left.Kind != hir.ExprIndex {
		c.errorf("SEM017", e.Span, "this is not a valid assignment target")
	}
	c.checkExpr(e.Right, targetTy)
	return targetTy
}

func (c *Checker) inferFunctionLit(e *hir.Expr) types.TypeId {
	prevRet, prevHas := c.currentReturn, c.hasReturn
	ret := e.ReturnType
	if !e.HasReturn {
		ret = c.table.Fresh()
	}
	c.currentReturn, c.hasReturn = ret, true
	c.pushScope()
	params := make([]types.TypeId, 0, len(e.Params))
	for _, p := range e.Params {
		pt := p.Type
		if pt == 0 {
			pt = c.table.Fresh()
			p.Type = pt
		}
		params = append(params, pt)
		c.defineBinding(p.DefID, pt, p.Mode == hir.ParamMutRef || p.Mode == hir.ParamMove)
	}
	c.checkBlock(e.Body)
	c.popScope()
	c.currentReturn, c.hasReturn = prevRet, prevHas
	return c.table.Func(types.FuncSig{Params: params, Return: ret})
}

func (c *Checker) inferRecord(e *hir.Expr) types.TypeId {
	resultTy := c.defRefStructType(e.RecordDef)
	info, ok := c.structs[e.RecordDef]
	for _, name := range e.FieldOrder {
		fe := e.Fields[name]
		if ok {
			if ft, fok := info.fields[name]; fok {
				c.checkExpr(fe, ft)
				continue
			}
		}
		c.inferExpr(fe)
	}
	if e.Spread != nil {
		c.checkExpr(e.Spread, resultTy)
	}
	return resultTy
}

func (c *Checker) defRefStructType(id hir.DefId) types.TypeId {
	return c.table.Struct(types.DefRef{ID: int(id)})
}

func (c *Checker) inferMatch(e *hir.Expr) types.TypeId {
	subjectTys := make([]types.TypeId, 0, len(e.Subjects))
	for _, s := range e.Subjects {
		subjectTys = append(subjectTys, c.inferExpr(s))
	}
	result := c.table.Fresh()
	for _, arm := range e.Arms {
		c.pushScope()
		for i, p := range arm.Patterns {
			if i < len(subjectTys) {
				c.checkPattern(p, subjectTys[i])
			} else {
				c.checkPattern(p, c.table.Fresh())
			}
		}
		if arm.Guard != nil {
			c.checkExpr(arm.Guard, c.table.Primitive(types.PrimBivalens))
		}
		bt := c.blockValueType(arm.Body)
		result = c.unify(arm.Body.Span, bt, result)
		c.popScope()
	}
	if e.DefaultArm != nil {
		bt := c.blockValueType(e.DefaultArm)
		result = c.unify(e.DefaultArm.Span, bt, result)
	}
	return result
}

// blockValueType checks b as a statement sequence and returns the type
// of its trailing expression statement, if any (match arms and if/else
// used as expressions both resolve through this, the same way the
// parser's body-sugar normalization already flattens "reddit EXPR" into
// a single-statement block ending in an expression statement).
func (c *Checker) blockValueType(b *hir.Block) types.TypeId {
	c.checkBlock(b)
	if len(b.Stmts) == 0 {
		return c.table.Primitive(types.PrimVacuum)
	}
	last := b.Stmts[len(b.Stmts)-1]
	if last.Kind == hir.StmtExpr {
		return last.Expr.Type
	}
	return c.table.Primitive(types.PrimVacuum)
}
