package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/hir"
	"github.com/radixlang/radix/internal/intern"
	"github.com/radixlang/radix/internal/types"
)

// Structural translates a checked module into structural-typed target
// source, grounded on original_source/fons/nanus-rs/src/emitter_ts.rs:
// classes with an overrides constructor, discriminated unions with a
// tag field, discerne as an if/else-if cascade on .tag, and native
// template literals. Two-space indentation, matching that emitter.
type Structural struct {
	table *types.Table
	in    *intern.Interner
	diags *diagnostics.Bag
	names *nameIndex
	enums *enumIndex
}

func (t *Structural) Emit(mod *hir.Module) (string, error) {
	t.names = buildNameIndex(mod, t.in)
	t.enums = buildEnumIndex(mod)
	w := NewWriterUnit("  ")
	for i, item := range mod.Items {
		if i > 0 {
			w.Newline()
		}
		t.item(w, item)
	}
	if mod.Entry != nil {
		if len(mod.Items) > 0 {
			w.Newline()
		}
		for _, st := range mod.Entry.Stmts {
			t.stmt(w, st)
		}
	}
	return w.String(), nil
}

func (t *Structural) sym(sym intern.Symbol) string { return t.in.Lookup(sym) }

func (t *Structural) item(w *Writer, item *hir.Item) {
	switch item.Kind {
	case hir.ItemFunction:
		t.function(w, "function "+t.sym(item.Func.Name), item.Func)
	case hir.ItemStruct:
		t.classDecl(w, item.Struct)
	case hir.ItemEnum:
		t.unionDecl(w, item.Enum)
	case hir.ItemInterface:
		t.interfaceDecl(w, item.Iface)
	case hir.ItemTypeAlias:
		w.Writeln(fmt.Sprintf("type %s = %s;", t.sym(item.Alias.Name), t.typeName(item.Alias.Type)))
	case hir.ItemConst:
		w.Write("const " + t.sym(item.Const.Name))
		if item.Const.HasType {
			w.Write(": " + t.typeName(item.Const.Type))
		}
		if item.Const.Value != nil {
			w.Write(" = " + t.expr(item.Const.Value))
		}
		w.Writeln(";")
	case hir.ItemImport:
		t.importDecl(w, item.Import)
	}
}

// importDecl preserves aliases as named imports (spec.md §4.9).
func (t *Structural) importDecl(w *Writer, imp *hir.Import) {
	path := t.in.Lookup(imp.Path)
	if len(imp.Items) == 0 {
		w.Writeln(fmt.Sprintf("import %q;", path))
		return
	}
	specs := make([]string, len(imp.Items))
	for i, it := range imp.Items {
		name := t.in.Lookup(it.Name)
		if it.HasAlias {
			name += " as " + t.in.Lookup(it.Alias)
		}
		specs[i] = name
	}
	w.Writeln(fmt.Sprintf("import { %s } from %q;", strings.Join(specs, ", "), path))
}

func (t *Structural) param(p *hir.Param) string {
	out := fmt.Sprintf("%s: %s", t.sym(p.Name), t.typeName(p.Type))
	if t.table.Get(t.table.ResolveAlias(p.Type)).Kind == types.KOption {
		out += " = null"
	}
	return out
}

func (t *Structural) function(w *Writer, head string, fn *hir.Function) {
	if fn.Async {
		head = "async " + head
	}
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = t.param(p)
	}
	w.Write(fmt.Sprintf("%s%s(%s)", head, typeParamList(t.in, fn.TypeParams), strings.Join(params, ", ")))
	if fn.HasReturn {
		w.Write(": " + t.typeName(fn.ReturnType))
	}
	if fn.Body == nil {
		w.Writeln(";")
		return
	}
	w.Write(" ")
	t.blockBody(w, fn.Body)
	w.Newline()
}

// classDecl emits a struct as a class whose constructor accepts an
// overrides object with every field optional, merged into this.
func (t *Structural) classDecl(w *Writer, st *hir.Struct) {
	name := t.sym(st.Name)
	head := fmt.Sprintf("class %s%s", name, typeParamList(t.in, st.TypeParams))
	if len(st.Implements) > 0 {
		impls := make([]string, len(st.Implements))
		for i, def := range st.Implements {
			impls[i] = t.names.name(def)
		}
		head += " implements " + strings.Join(impls, ", ")
	}
	w.Write(head + " ")
	w.Block(func() {
		for _, f := range st.Fields {
			line := fmt.Sprintf("%s: %s", t.sym(f.Name), t.typeName(f.Type))
			if f.Init != nil {
				line += " = " + t.expr(f.Init)
			}
			w.Writeln(line + ";")
		}
		if len(st.Fields) > 0 {
			w.Newline()
			overrides := make([]string, len(st.Fields))
			for i, f := range st.Fields {
				overrides[i] = fmt.Sprintf("%s?: %s", t.sym(f.Name), t.typeName(f.Type))
			}
			w.Write(fmt.Sprintf("constructor(overrides: { %s } = {}) ", strings.Join(overrides, ", ")))
			w.Block(func() {
				for _, f := range st.Fields {
					fname := t.sym(f.Name)
					w.Writeln(fmt.Sprintf("if (overrides.%s !== undefined) { this.%s = overrides.%s; }", fname, fname, fname))
				}
			})
			w.Newline()
		}
		for _, m := range st.Methods {
			w.Newline()
			t.function(w, t.sym(m.Func.Name), m.Func)
		}
	})
	w.Newline()
}

// unionDecl emits a tagged union as one object type per variant plus a
// type-level union alias.
func (t *Structural) unionDecl(w *Writer, e *hir.Enum) {
	names := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		names[i] = t.sym(v.Name)
		if len(v.Fields) == 0 {
			w.Writeln(fmt.Sprintf("type %s = { tag: '%s' };", names[i], names[i]))
			continue
		}
		fields := make([]string, len(v.Fields))
		for j, f := range v.Fields {
			fields[j] = fmt.Sprintf("%s: %s", t.sym(f.Name), t.typeName(f.Type))
		}
		w.Writeln(fmt.Sprintf("type %s = { tag: '%s'; %s };", names[i], names[i], strings.Join(fields, "; ")))
	}
	w.Writeln(fmt.Sprintf("type %s%s = %s;", t.sym(e.Name), typeParamList(t.in, e.TypeParams), strings.Join(names, " | ")))
}

func (t *Structural) interfaceDecl(w *Writer, iface *hir.Interface) {
	w.Write(fmt.Sprintf("interface %s%s ", t.sym(iface.Name), typeParamList(t.in, iface.TypeParams)))
	w.Block(func() {
		for _, m := range iface.Methods {
			params := make([]string, len(m.Params))
			for i, p := range m.Params {
				params[i] = fmt.Sprintf("%s: %s", t.sym(p.Name), t.typeName(p.Type))
			}
			line := fmt.Sprintf("%s(%s)", t.sym(m.Name), strings.Join(params, ", "))
			if m.HasReturn {
				line += ": " + t.typeName(m.ReturnType)
			}
			w.Writeln(line + ";")
		}
	})
	w.Newline()
}

func (t *Structural) typeName(id types.TypeId) string {
	ty := t.table.Get(id)
	switch ty.Kind {
	case types.KPrimitive:
		return tsPrimitive(ty.PrimName)
	case types.KArray:
		return t.typeName(ty.Elem) + "[]"
	case types.KSet:
		return "Set<" + t.typeName(ty.Elem) + ">"
	case types.KOption:
		return t.typeName(ty.Elem) + " | null"
	case types.KMap:
		return fmt.Sprintf("Map<%s, %s>", t.typeName(ty.Key), t.typeName(ty.Value))
	case types.KRef:
		return t.typeName(ty.Elem)
	case types.KStruct, types.KEnum, types.KInterface, types.KAlias:
		return ty.Def.Name
	case types.KFunc:
		params := make([]string, len(ty.Sig.Params))
		for i, p := range ty.Sig.Params {
			params[i] = fmt.Sprintf("arg%d: %s", i, t.typeName(p))
		}
		return fmt.Sprintf("(%s) => %s", strings.Join(params, ", "), t.typeName(ty.Sig.Return))
	case types.KParam:
		return ty.ParamName
	case types.KApplied:
		args := make([]string, len(ty.Args))
		for i, a := range ty.Args {
			args[i] = t.typeName(a)
		}
		return fmt.Sprintf("%s<%s>", t.typeName(ty.Ctor), strings.Join(args, ", "))
	case types.KUnion:
		parts := make([]string, len(ty.Members))
		for i, m := range ty.Members {
			parts[i] = t.typeName(m)
		}
		return strings.Join(parts, " | ")
	default:
		return "unknown"
	}
}

func (t *Structural) blockBody(w *Writer, b *hir.Block) {
	w.Block(func() {
		for _, st := range b.Stmts {
			t.stmt(w, st)
		}
	})
}

func (t *Structural) stmt(w *Writer, st *hir.Stmt) {
	switch st.Kind {
	case hir.StmtExpr:
		w.Writeln(t.expr(st.Expr) + ";")
	case hir.StmtLet:
		kw := "const"
		if st.Mutable {
			kw = "let"
		}
		w.Write(kw + " " + t.letPattern(st.Bind))
		if st.HasType {
			w.Write(": " + t.typeName(st.Type))
		}
		if st.Value != nil {
			w.Write(" = " + t.expr(st.Value))
		}
		w.Writeln(";")
	case hir.StmtReturn:
		if st.Result != nil {
			w.Writeln("return " + t.expr(st.Result) + ";")
		} else {
			w.Writeln("return;")
		}
	case hir.StmtThrow:
		if st.Fatal {
			w.Writeln(fmt.Sprintf("throw new Error(%s);", t.expr(st.Result)))
		} else {
			w.Writeln("throw " + t.expr(st.Result) + ";")
		}
	case hir.StmtBreak:
		w.Writeln("break;")
	case hir.StmtContinue:
		w.Writeln("continue;")
	case hir.StmtIf:
		w.Write("if (" + t.expr(st.Cond) + ") ")
		t.blockBody(w, st.Then)
		if st.HasElse {
			w.Write(" else ")
			t.blockBody(w, st.Else)
		}
		w.Newline()
	case hir.StmtWhile:
		w.Write("while (" + t.expr(st.WhileCond) + ") ")
		t.blockBody(w, st.WhileBody)
		w.Newline()
	case hir.StmtForIn:
		w.Write(fmt.Sprintf("for (const %s of %s) ", t.letPattern(st.Loop), t.expr(st.Iterable)))
		t.blockBody(w, st.Body)
		w.Newline()
	case hir.StmtMatch:
		t.matchCascade(w, st.Subjects, st.Arms, nil)
	case hir.StmtBlock:
		t.blockBody(w, st.Inner)
		w.Newline()
	case hir.StmtItem:
		t.item(w, st.Item)
	}
}

// letPattern prints a binding-position pattern; tuple destructuring
// becomes array destructuring.
func (t *Structural) letPattern(p *hir.Pattern) string {
	if p == nil {
		return "_"
	}
	switch p.Kind {
	case hir.PatternBind:
		return t.sym(p.Name)
	case hir.PatternTuple:
		parts := make([]string, len(p.Elements))
		for i, sub := range p.Elements {
			parts[i] = t.letPattern(sub)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "_"
	}
}

// matchCascade lowers discerne to an if/else-if chain testing .tag,
// extracting each bound field with a const before the arm body
// (emitter_ts.rs's emit_discerne).
func (t *Structural) matchCascade(w *Writer, subjects []*hir.Expr, arms []*hir.MatchArm, def *hir.Block) {
	vars := make([]string, len(subjects))
	if len(subjects) == 1 {
		vars[0] = t.expr(subjects[0])
	} else {
		for i, subj := range subjects {
			vars[i] = fmt.Sprintf("discriminant_%d", i)
			w.Writeln(fmt.Sprintf("const %s = %s;", vars[i], t.expr(subj)))
		}
	}
	wroteArm := false
	for _, arm := range arms {
		conds := make([]string, 0, len(arm.Patterns))
		for i, p := range arm.Patterns {
			if i >= len(vars) {
				break
			}
			if cond := t.patternCond(vars[i], p); cond != "" {
				conds = append(conds, cond)
			}
		}
		if arm.Guard != nil {
			conds = append(conds, t.expr(arm.Guard))
		}
		if len(conds) == 0 {
			if wroteArm {
				w.Write(" else ")
			}
			t.armBody(w, vars, arm)
			w.Newline()
			return
		}
		kw := "if"
		if wroteArm {
			kw = " else if"
		}
		w.Write(fmt.Sprintf("%s (%s) ", kw, strings.Join(conds, " && ")))
		t.armBody(w, vars, arm)
		wroteArm = true
	}
	if def != nil {
		if wroteArm {
			w.Write(" else ")
		}
		t.blockBody(w, def)
	}
	w.Newline()
}

// armBody emits the bindings a pattern introduces, then the arm's block.
func (t *Structural) armBody(w *Writer, vars []string, arm *hir.MatchArm) {
	w.Block(func() {
		for i, p := range arm.Patterns {
			if i >= len(vars) {
				break
			}
			t.patternBindings(w, vars[i], p)
		}
		for _, st := range arm.Body.Stmts {
			t.stmt(w, st)
		}
	})
}

// patternCond builds the boolean test for one pattern against subject;
// empty means the pattern always matches (wildcard, bare binding).
func (t *Structural) patternCond(subject string, p *hir.Pattern) string {
	switch p.Kind {
	case hir.PatternWildcard, hir.PatternBind:
		return ""
	case hir.PatternLiteral:
		return fmt.Sprintf("%s === %s", subject, t.expr(p.Lit))
	case hir.PatternVariant:
		return fmt.Sprintf("%s.tag === '%s'", subject, t.names.name(p.VariantDef))
	case hir.PatternOr:
		parts := make([]string, 0, len(p.Elements))
		for _, sub := range p.Elements {
			if cond := t.patternCond(subject, sub); cond != "" {
				parts = append(parts, cond)
			}
		}
		if len(parts) == 0 {
			return ""
		}
		return "(" + strings.Join(parts, " || ") + ")"
	}
	return ""
}

// patternBindings extracts a variant pattern's bound fields by property
// assignment, in declaration order.
func (t *Structural) patternBindings(w *Writer, subject string, p *hir.Pattern) {
	switch p.Kind {
	case hir.PatternBind:
		w.Writeln(fmt.Sprintf("const %s = %s;", t.sym(p.Name), subject))
	case hir.PatternVariant:
		fields := t.enums.variantFields(p.VariantDef)
		for i, sub := range p.Elements {
			if i >= len(fields) || sub.Kind != hir.PatternBind {
				continue
			}
			w.Writeln(fmt.Sprintf("const %s = %s.%s;", t.sym(sub.Name), subject, t.in.Lookup(fields[i].Name)))
		}
	}
}

var tsBinOp = map[hir.BinOp]string{
	hir.BinAdd: "+", hir.BinSub: "-", hir.BinMul: "*", hir.BinDiv: "/", hir.BinMod: "%",
	hir.BinPow: "**", hir.BinEq: "===", hir.BinNotEq: "!==", hir.BinLt: "<", hir.BinGt: ">",
	hir.BinLte: "<=", hir.BinGte: ">=", hir.BinAnd: "&&", hir.BinOr: "||",
	hir.BinNullCoalesce: "??", hir.BinBitAnd: "&", hir.BinBitOr: "|", hir.BinBitXor: "^",
	hir.BinShl: "<<", hir.BinShr: ">>",
}

func (t *Structural) expr(e *hir.Expr) string {
	if e == nil {
		return "undefined"
	}
	switch e.Kind {
	case hir.ExprLiteral:
		return t.literal(e)
	case hir.ExprPath:
		name := t.names.name(e.Def)
		if name == "hoc" {
			return "this"
		}
		return name
	case hir.ExprBinary:
		if e.BinOp == hir.BinContains {
			return fmt.Sprintf("%s.includes(%s)", t.expr(e.Right), t.expr(e.Left))
		}
		return fmt.Sprintf("(%s %s %s)", t.expr(e.Left), tsBinOp[e.BinOp], t.expr(e.Right))
	case hir.ExprUnary:
		return t.unary(e)
	case hir.ExprTernary:
		return fmt.Sprintf("(%s ? %s : %s)", t.expr(e.Cond), t.expr(e.Then), t.expr(e.Else))
	case hir.ExprRange:
		return t.rangeExpr(e)
	case hir.ExprCall:
		return t.call(e)
	case hir.ExprMember:
		return t.member(e)
	case hir.ExprIndex:
		return fmt.Sprintf("%s[%s]", t.expr(e.Object), t.expr(e.Index))
	case hir.ExprOptionalChain:
		return t.chain(e)
	case hir.ExprCast:
		return t.cast(e)
	case hir.ExprAssign:
		return fmt.Sprintf("%s %s %s", t.expr(e.Left), assignOpText(e.AssignOp), t.expr(e.Right))
	case hir.ExprFunctionLit:
		return t.arrow(e)
	case hir.ExprList:
		return "[" + t.exprList(e.Elements) + "]"
	case hir.ExprSet:
		return "new Set([" + t.exprList(e.Elements) + "])"
	case hir.ExprTuple:
		return "[" + t.exprList(e.Elements) + "]"
	case hir.ExprMap:
		pairs := make([]string, len(e.Entries))
		for i, ent := range e.Entries {
			pairs[i] = fmt.Sprintf("[%s, %s]", t.expr(ent.Key), t.expr(ent.Value))
		}
		return "new Map([" + strings.Join(pairs, ", ") + "])"
	case hir.ExprRecord:
		return t.record(e)
	case hir.ExprMatch:
		w := NewWriterUnit("  ")
		t.matchCascade(w, e.Subjects, e.Arms, e.DefaultArm)
		return strings.TrimRight(w.String(), "\n")
	}
	return unsupported(t.diags, e.Span, "expression")
}

func (t *Structural) unary(e *hir.Expr) string {
	switch e.UnOp {
	case hir.UnNeg:
		return "(-" + t.expr(e.Operand) + ")"
	case hir.UnNot:
		return "(!" + t.expr(e.Operand) + ")"
	case hir.UnIsSome:
		return fmt.Sprintf("(%s !== null)", t.expr(e.Operand))
	case hir.UnIsNone:
		return fmt.Sprintf("(%s === null)", t.expr(e.Operand))
	}
	return t.expr(e.Operand)
}

func (t *Structural) rangeExpr(e *hir.Expr) string {
	start, end := t.expr(e.Start), t.expr(e.End)
	length := fmt.Sprintf("%s - %s", end, start)
	if e.Inclusive {
		length += " + 1"
	}
	out := fmt.Sprintf("Array.from({ length: %s }, (_, i) => %s + i)", length, start)
	if e.Step != nil {
		out += fmt.Sprintf(".filter((_, i) => i %% %s === 0)", t.expr(e.Step))
	}
	return out
}

func (t *Structural) call(e *hir.Expr) string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		v := t.expr(a.Value)
		if a.Spread {
			v = "..." + v
		}
		args[i] = v
	}
	if callee := e.Callee; callee != nil && callee.Kind == hir.ExprMember {
		if tsPropertyOnly(callee.Name) {
			return t.member(callee)
		}
		if translated, ok := tsMethodNames[callee.Name]; ok {
			return fmt.Sprintf("%s.%s(%s)", t.expr(callee.Object), translated, strings.Join(args, ", "))
		}
	}
	return fmt.Sprintf("%s(%s)", t.expr(e.Callee), strings.Join(args, ", "))
}

func (t *Structural) member(e *hir.Expr) string {
	obj := t.expr(e.Object)
	switch e.Name {
	case "longitudo":
		return obj + ".length"
	case "primus":
		return obj + "[0]"
	case "ultimus":
		return obj + ".at(-1)"
	}
	if e.Object != nil && e.Object.Kind == hir.ExprPath && t.enums.isEnum(e.Object.Def) {
		return fmt.Sprintf("{ tag: '%s' }", e.Name)
	}
	return obj + "." + e.Name
}

// chain preserves each optional-chaining form verbatim; the `?.(` call
// form is kept syntactic and the target runtime defines its semantics.
func (t *Structural) chain(e *hir.Expr) string {
	obj := t.expr(e.Object)
	access := "?."
	if e.ChainNonNull {
		access = "!."
	}
	switch {
	case e.Index != nil:
		if e.ChainNonNull {
			return fmt.Sprintf("%s![%s]", obj, t.expr(e.Index))
		}
		return fmt.Sprintf("%s?.[%s]", obj, t.expr(e.Index))
	case e.Name != "":
		return obj + access + e.Name
	default:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = t.expr(a.Value)
		}
		if e.ChainNonNull {
			return fmt.Sprintf("%s!(%s)", obj, strings.Join(args, ", "))
		}
		return fmt.Sprintf("%s?.(%s)", obj, strings.Join(args, ", "))
	}
}

func (t *Structural) cast(e *hir.Expr) string {
	operand := t.expr(e.Operand)
	target := t.table.Get(t.table.ResolveAlias(e.Target))
	if target.Kind == types.KPrimitive {
		var conv string
		switch target.PrimName {
		case types.PrimNumerus, types.PrimFractus:
			conv = fmt.Sprintf("Number(%s)", operand)
		case types.PrimTextus:
			conv = fmt.Sprintf("String(%s)", operand)
		case types.PrimBivalens:
			conv = fmt.Sprintf("Boolean(%s)", operand)
		}
		if conv != "" {
			if e.Fallback != nil {
				return fmt.Sprintf("(%s || %s)", conv, t.expr(e.Fallback))
			}
			return conv
		}
	}
	return fmt.Sprintf("(%s as %s)", operand, t.typeName(e.Target))
}

func (t *Structural) arrow(e *hir.Expr) string {
	params := make([]string, len(e.Params))
	for i, p := range e.Params {
		params[i] = fmt.Sprintf("%s: %s", t.sym(p.Name), t.typeName(p.Type))
	}
	w := NewWriterUnit("  ")
	w.Write(fmt.Sprintf("(%s) => ", strings.Join(params, ", ")))
	if e.Body != nil {
		t.blockBody(w, e.Body)
	} else {
		w.Write("{}")
	}
	return w.String()
}

// record prints a variant construction as a tagged object, and a struct
// construction through the class's overrides constructor.
func (t *Structural) record(e *hir.Expr) string {
	name := t.names.name(e.RecordDef)
	parts := make([]string, 0, len(e.FieldOrder))
	for _, f := range e.FieldOrder {
		parts = append(parts, f+": "+t.expr(e.Fields[f]))
	}
	if t.enums.enumOf(e.RecordDef) != nil {
		if len(parts) == 0 {
			return fmt.Sprintf("{ tag: '%s' }", name)
		}
		return fmt.Sprintf("{ tag: '%s', %s }", name, strings.Join(parts, ", "))
	}
	if e.Spread != nil {
		return fmt.Sprintf("Object.assign(new %s(), %s, { %s })", name, t.expr(e.Spread), strings.Join(parts, ", "))
	}
	return fmt.Sprintf("new %s({ %s })", name, strings.Join(parts, ", "))
}

func (t *Structural) exprList(es []*hir.Expr) string {
	parts := make([]string, len(es))
	for i, el := range es {
		parts[i] = t.expr(el)
	}
	return strings.Join(parts, ", ")
}

func (t *Structural) literal(e *hir.Expr) string {
	switch e.Lit {
	case hir.LitInt:
		return strconv.FormatInt(e.IntVal, 10)
	case hir.LitFloat:
		return strconv.FormatFloat(e.FloatVal, 'g', -1, 64)
	case hir.LitBigInt:
		if e.BigVal != nil {
			return e.BigVal.String() + "n"
		}
		return "0n"
	case hir.LitString:
		return strconv.Quote(e.StringVal)
	case hir.LitBool:
		if e.BoolVal {
			return "true"
		}
		return "false"
	case hir.LitNil:
		return "null"
	case hir.LitTemplateString:
		return t.templateString(e)
	}
	return "null"
}

// templateString rebuilds a template literal as a native template
// literal with ${...} interpolations.
func (t *Structural) templateString(e *hir.Expr) string {
	var b strings.Builder
	b.WriteByte('`')
	for _, part := range e.Parts {
		if part.Kind == hir.ExprLiteral && part.Lit == hir.LitString {
			b.WriteString(strings.ReplaceAll(part.StringVal, "`", "\\`"))
			continue
		}
		b.WriteString("${")
		b.WriteString(t.expr(part))
		b.WriteString("}")
	}
	b.WriteByte('`')
	return b.String()
}

func tsPrimitive(name string) string {
	switch name {
	case types.PrimTextus:
		return "string"
	case types.PrimNumerus, types.PrimFractus:
		return "number"
	case types.PrimBivalens:
		return "boolean"
	case types.PrimOcteti:
		return "Uint8Array"
	case types.PrimVacuum:
		return "void"
	default:
		return "unknown"
	}
}

// tsMethodNames is emitter_ts.rs's map_method_name table.
var tsMethodNames = map[string]string{
	"adde": "push", "praepone": "unshift", "remove": "pop", "decapita": "shift",
	"coniunge": "join", "continet": "includes", "indiceDe": "indexOf",
	"inveni": "find", "inveniIndicem": "findIndex", "omnes": "every", "aliquis": "some",
	"filtrata": "filter", "mappata": "map", "explanata": "flatMap", "plana": "flat",
	"sectio": "slice", "reducta": "reduce", "perambula": "forEach", "inverte": "reverse",
	"ordina": "sort", "pone": "set", "accipe": "get", "habet": "has",
	"dele": "delete", "purga": "clear", "claves": "keys", "valores": "values",
	"paria": "entries", "initium": "startsWith", "finis": "endsWith",
	"maiuscula": "toUpperCase", "minuscula": "toLowerCase", "recide": "trim",
	"divide": "split", "muta": "replaceAll",
}

func tsPropertyOnly(name string) bool {
	switch name {
	case "longitudo", "primus", "ultimus":
		return true
	}
	return false
}
