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

// Canonical is the round-trip oracle: it re-prints a lowered module back
// into this language's own surface syntax in one normalized form, so
// parsing its own output and re-emitting is expected to be idempotent
// (spec.md §8). Grounded on
// original_source/fons/radix-rs/src/codegen/faber/mod.rs's FaberCodegen,
// generalized to actually print names/bodies (the original leaves most
// of these as "TODO" placeholders; this module's HIR carries real
// names via intern.Symbol, so there's nothing to stub out).
type Canonical struct {
	table *types.Table
	in    *intern.Interner
	diags *diagnostics.Bag
	names *nameIndex
}

func (c *Canonical) Emit(mod *hir.Module) (string, error) {
	c.names = buildNameIndex(mod, c.in)
	w := NewWriter()
	for i, item := range mod.Items {
		if i > 0 {
			w.Newline()
		}
		c.item(w, item)
	}
	if mod.Entry != nil {
		if len(mod.Items) > 0 {
			w.Newline()
		}
		w.Writeln("exordium {")
		w.Indented(func() {
			for _, s := range mod.Entry.Stmts {
				c.stmt(w, s)
			}
		})
		w.Writeln("}")
	}
	return w.String(), nil
}

func (c *Canonical) sym(s intern.Symbol) string { return c.in.Lookup(s) }

func (c *Canonical) item(w *Writer, item *hir.Item) {
	switch item.Kind {
	case hir.ItemFunction:
		c.function(w, "functio", c.sym(item.Func.Name), item.Func)
		w.Newline()
	case hir.ItemStruct:
		c.structDecl(w, item.Struct)
	case hir.ItemEnum:
		c.enumDecl(w, item.Enum)
	case hir.ItemInterface:
		c.interfaceDecl(w, item.Iface)
	case hir.ItemTypeAlias:
		w.Write("typus ")
		w.Write(c.sym(item.Alias.Name))
		w.Write(" = ")
		w.Write(c.typeName(item.Alias.Type))
		w.Newline()
	case hir.ItemConst:
		w.Write("fixum ")
		w.Write(c.sym(item.Const.Name))
		if item.Const.HasType {
			w.Write(": ")
			w.Write(c.typeName(item.Const.Type))
		}
		w.Write(" = ")
		if item.Const.Value != nil {
			w.Write(c.expr(item.Const.Value))
		}
		w.Newline()
	case hir.ItemImport:
		w.Write("importa ")
		w.Write(strconv.Quote(c.sym(item.Import.Path)))
		if items := item.Import.Items; len(items) == 1 && items[0].HasAlias {
			w.Write(" ut " + c.sym(items[0].Alias))
		} else if len(items) > 0 {
			names := make([]string, len(items))
			for i, it := range items {
				names[i] = c.sym(it.Name)
			}
			w.Write(" pro " + strings.Join(names, ", "))
		}
		w.Newline()
	}
}

func (c *Canonical) function(w *Writer, keyword, name string, fn *hir.Function) {
	w.Write(keyword)
	w.Write(" ")
	w.Write(name)
	w.Write("(")
	for i, p := range fn.Params {
		if i > 0 {
			w.Write(", ")
		}
		w.Write(c.sym(p.Name))
		w.Write(": ")
		w.Write(c.typeName(p.Type))
	}
	w.Write(")")
	if fn.HasReturn {
		w.Write(" -> ")
		w.Write(c.typeName(fn.ReturnType))
	}
	if fn.Body != nil {
		w.Write(" ")
		w.Block(func() {
			for _, s := range fn.Body.Stmts {
				c.stmt(w, s)
			}
		})
		w.Newline()
	} else {
		w.Newline()
	}
}

func (c *Canonical) structDecl(w *Writer, s *hir.Struct) {
	w.Write("genus ")
	w.Write(c.sym(s.Name))
	w.Write(" ")
	w.Block(func() {
		for _, f := range s.Fields {
			w.Write(c.sym(f.Name))
			w.Write(": ")
			w.Write(c.typeName(f.Type))
			if f.Init != nil {
				w.Write(" = ")
				w.Write(c.expr(f.Init))
			}
			w.Newline()
		}
		for _, m := range s.Methods {
			w.Newline()
			c.function(w, "functio", c.sym(m.Func.Name), m.Func)
		}
	})
	w.Newline()
}

func (c *Canonical) enumDecl(w *Writer, e *hir.Enum) {
	w.Write("discretio ")
	w.Write(c.sym(e.Name))
	w.Write(" ")
	w.Block(func() {
		for _, v := range e.Variants {
			w.Write(c.sym(v.Name))
			if len(v.Fields) > 0 {
				w.Write("(")
				for i, f := range v.Fields {
					if i > 0 {
						w.Write(", ")
					}
					w.Write(c.sym(f.Name))
					w.Write(": ")
					w.Write(c.typeName(f.Type))
				}
				w.Write(")")
			}
			w.Newline()
		}
	})
	w.Newline()
}

func (c *Canonical) interfaceDecl(w *Writer, iface *hir.Interface) {
	w.Write("pactum ")
	w.Write(c.sym(iface.Name))
	w.Write(" ")
	w.Block(func() {
		for _, m := range iface.Methods {
			w.Write("functio ")
			w.Write(c.sym(m.Name))
			w.Write("(")
			for i, p := range m.Params {
				if i > 0 {
					w.Write(", ")
				}
				w.Write(c.sym(p.Name))
				w.Write(": ")
				w.Write(c.typeName(p.Type))
			}
			w.Write(")")
			if m.HasReturn {
				w.Write(" -> ")
				w.Write(c.typeName(m.ReturnType))
			}
			w.Newline()
		}
	})
	w.Newline()
}

func (c *Canonical) typeName(id types.TypeId) string { return c.table.String(id) }

func (c *Canonical) stmt(w *Writer, s *hir.Stmt) {
	switch s.Kind {
	case hir.StmtExpr:
		w.Writeln(c.expr(s.Expr) + ";")
	case hir.StmtLet:
		kw := "fixum"
		if s.Mutable {
			kw = "varia"
		}
		w.Write(kw + " " + c.pattern(s.Bind))
		if s.HasType {
			w.Write(": " + c.typeName(s.Type))
		}
		if s.Value != nil {
			w.Write(" = " + c.expr(s.Value))
		}
		w.Writeln(";")
	case hir.StmtReturn:
		if s.Result != nil {
			w.Writeln("redde " + c.expr(s.Result) + ";")
		} else {
			w.Writeln("redde;")
		}
	case hir.StmtThrow:
		kw := "iacit"
		if s.Fatal {
			kw = "moritor"
		}
		if s.Result != nil {
			w.Writeln(kw + " " + c.expr(s.Result) + ";")
		} else {
			w.Writeln(kw + ";")
		}
	case hir.StmtBreak:
		w.Writeln("discede;")
	case hir.StmtContinue:
		w.Writeln("perge;")
	case hir.StmtIf:
		w.Write("si " + c.expr(s.Cond) + " ")
		w.Block(func() {
			for _, st := range s.Then.Stmts {
				c.stmt(w, st)
			}
		})
		if s.HasElse {
			w.Write(" secus ")
			w.Block(func() {
				for _, st := range s.Else.Stmts {
					c.stmt(w, st)
				}
			})
		}
		w.Newline()
	case hir.StmtWhile:
		w.Write("dum " + c.expr(s.WhileCond) + " ")
		w.Block(func() {
			for _, st := range s.WhileBody.Stmts {
				c.stmt(w, st)
			}
		})
		w.Newline()
	case hir.StmtForIn:
		w.Write("pro " + c.pattern(s.Loop) + " in " + c.expr(s.Iterable) + " ")
		w.Block(func() {
			for _, st := range s.Body.Stmts {
				c.stmt(w, st)
			}
		})
		w.Newline()
	case hir.StmtMatch:
		c.matchArms(w, s.Subjects, s.Arms, nil)
	case hir.StmtBlock:
		w.Write("")
		w.Block(func() {
			for _, st := range s.Inner.Stmts {
				c.stmt(w, st)
			}
		})
		w.Newline()
	case hir.StmtItem:
		c.item(w, s.Item)
	}
}

func (c *Canonical) matchArms(w *Writer, subjects []*hir.Expr, arms []*hir.MatchArm, def *hir.Block) {
	parts := make([]string, len(subjects))
	for i, subj := range subjects {
		parts[i] = c.expr(subj)
	}
	w.Write("discerne " + strings.Join(parts, ", ") + " ")
	w.Block(func() {
		for _, arm := range arms {
			pats := make([]string, len(arm.Patterns))
			for i, p := range arm.Patterns {
				pats[i] = c.pattern(p)
			}
			w.Write("casu " + strings.Join(pats, ", "))
			if arm.Guard != nil {
				w.Write(" si " + c.expr(arm.Guard))
			}
			w.Write(" ")
			w.Block(func() {
				for _, st := range arm.Body.Stmts {
					c.stmt(w, st)
				}
			})
			w.Newline()
		}
		if def != nil {
			w.Write("elige ")
			w.Block(func() {
				for _, st := range def.Stmts {
					c.stmt(w, st)
				}
			})
			w.Newline()
		}
	})
	w.Newline()
}

func (c *Canonical) pattern(p *hir.Pattern) string {
	if p == nil {
		return "_"
	}
	switch p.Kind {
	case hir.PatternWildcard:
		return "_"
	case hir.PatternLiteral:
		return c.expr(p.Lit)
	case hir.PatternBind:
		return c.sym(p.Name)
	case hir.PatternTuple:
		parts := make([]string, len(p.Elements))
		for i, sub := range p.Elements {
			parts[i] = c.pattern(sub)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case hir.PatternVariant:
		parts := make([]string, len(p.Elements))
		for i, sub := range p.Elements {
			parts[i] = c.pattern(sub)
		}
		name := c.names.name(p.EnumDef) + "." + c.names.name(p.VariantDef)
		if len(parts) == 0 {
			return name
		}
		return name + "(" + strings.Join(parts, ", ") + ")"
	case hir.PatternOr:
		parts := make([]string, len(p.Elements))
		for i, sub := range p.Elements {
			parts[i] = c.pattern(sub)
		}
		return strings.Join(parts, ", ")
	}
	return "_"
}

var canonicalBinOp = map[hir.BinOp]string{
	hir.BinAdd: "+", hir.BinSub: "-", hir.BinMul: "*", hir.BinDiv: "/", hir.BinMod: "%",
	hir.BinPow: "**", hir.BinEq: "==", hir.BinNotEq: "!=", hir.BinLt: "<", hir.BinGt: ">",
	hir.BinLte: "<=", hir.BinGte: ">=", hir.BinAnd: "&&", hir.BinOr: "||",
	hir.BinNullCoalesce: "??", hir.BinBitAnd: "&", hir.BinBitOr: "|", hir.BinBitXor: "^",
	hir.BinShl: "<<", hir.BinShr: ">>", hir.BinContains: "inter",
}

func (c *Canonical) expr(e *hir.Expr) string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case hir.ExprLiteral:
		return c.literal(e)
	case hir.ExprPath:
		return c.names.name(e.Def)
	case hir.ExprBinary:
		return fmt.Sprintf("(%s %s %s)", c.expr(e.Left), canonicalBinOp[e.BinOp], c.expr(e.Right))
	case hir.ExprUnary:
		return c.unary(e)
	case hir.ExprTernary:
		return fmt.Sprintf("(%s ? %s : %s)", c.expr(e.Cond), c.expr(e.Then), c.expr(e.Else))
	case hir.ExprRange:
		return c.rangeExpr(e)
	case hir.ExprCall:
		return c.call(e)
	case hir.ExprMember:
		op := "."
		if e.ChainOptional {
			op = "?."
		}
		return c.expr(e.Object) + op + e.Name
	case hir.ExprIndex:
		return fmt.Sprintf("%s[%s]", c.expr(e.Object), c.expr(e.Index))
	case hir.ExprOptionalChain:
		if e.Index != nil {
			return fmt.Sprintf("%s?[%s]", c.expr(e.Object), c.expr(e.Index))
		}
		return c.expr(e.Object) + "?." + e.Name
	case hir.ExprCast:
		return fmt.Sprintf("(%s tamquam %s)", c.expr(e.Operand), c.typeName(e.Target))
	case hir.ExprAssign:
		return fmt.Sprintf("%s %s %s", c.expr(e.Left), assignOpText(e.AssignOp), c.expr(e.Right))
	case hir.ExprFunctionLit:
		return c.functionLit(e)
	case hir.ExprList:
		return "[" + c.exprList(e.Elements) + "]"
	case hir.ExprSet:
		return "{" + c.exprList(e.Elements) + "}"
	case hir.ExprTuple:
		return "(" + c.exprList(e.Elements) + ")"
	case hir.ExprMap:
		parts := make([]string, len(e.Entries))
		for i, ent := range e.Entries {
			parts[i] = c.expr(ent.Key) + ": " + c.expr(ent.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case hir.ExprRecord:
		parts := make([]string, 0, len(e.FieldOrder))
		for _, name := range e.FieldOrder {
			parts = append(parts, name+": "+c.expr(e.Fields[name]))
		}
		return "genus " + c.names.name(e.RecordDef) + " { " + strings.Join(parts, ", ") + " }"
	case hir.ExprMatch:
		return c.matchExprText(e)
	}
	return ""
}

func (c *Canonical) unary(e *hir.Expr) string {
	switch e.UnOp {
	case hir.UnNeg:
		return "(-" + c.expr(e.Operand) + ")"
	case hir.UnNot:
		return "(!" + c.expr(e.Operand) + ")"
	case hir.UnIsSome:
		return "(" + c.expr(e.Operand) + " est aliquid)"
	case hir.UnIsNone:
		return "(" + c.expr(e.Operand) + " est nihil)"
	}
	return c.expr(e.Operand)
}

func (c *Canonical) rangeExpr(e *hir.Expr) string {
	if !e.Inclusive {
		return fmt.Sprintf("%s..%s", c.expr(e.Start), c.expr(e.End))
	}
	s := fmt.Sprintf("ante %s usque %s", c.expr(e.Start), c.expr(e.End))
	if e.Step != nil {
		s += " per " + c.expr(e.Step)
	}
	return s
}

func (c *Canonical) call(e *hir.Expr) string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		v := c.expr(a.Value)
		if a.Spread {
			v = "..." + v
		}
		if a.Name != "" {
			v = a.Name + ": " + v
		}
		parts[i] = v
	}
	return fmt.Sprintf("%s(%s)", c.expr(e.Callee), strings.Join(parts, ", "))
}

func (c *Canonical) functionLit(e *hir.Expr) string {
	w := NewWriter()
	w.Write("functio (")
	for i, p := range e.Params {
		if i > 0 {
			w.Write(", ")
		}
		w.Write(c.sym(p.Name))
		w.Write(": ")
		w.Write(c.typeName(p.Type))
	}
	w.Write(")")
	if e.HasReturn {
		w.Write(" -> " + c.typeName(e.ReturnType))
	}
	w.Write(" ")
	w.Block(func() {
		if e.Body != nil {
			for _, s := range e.Body.Stmts {
				c.stmt(w, s)
			}
		}
	})
	return w.String()
}

func (c *Canonical) matchExprText(e *hir.Expr) string {
	w := NewWriter()
	c.matchArms(w, e.Subjects, e.Arms, e.DefaultArm)
	return strings.TrimRight(w.String(), "\n")
}

func (c *Canonical) exprList(es []*hir.Expr) string {
	parts := make([]string, len(es))
	for i, el := range es {
		parts[i] = c.expr(el)
	}
	return strings.Join(parts, ", ")
}

func (c *Canonical) literal(e *hir.Expr) string {
	switch e.Lit {
	case hir.LitInt:
		return strconv.FormatInt(e.IntVal, 10)
	case hir.LitFloat:
		return strconv.FormatFloat(e.FloatVal, 'g', -1, 64)
	case hir.LitBigInt:
		if e.BigVal != nil {
			return e.BigVal.String()
		}
		return "0"
	case hir.LitString:
		return strconv.Quote(e.StringVal)
	case hir.LitTemplateString:
		return c.templateText(e)
	case hir.LitBool:
		if e.BoolVal {
			return "verum"
		}
		return "falsum"
	case hir.LitNil:
		return "nihil"
	}
	return "nihil"
}

// templateText rebuilds a template literal in surface syntax, with each
// interpolated part wrapped back in its "${...}" hole.
func (c *Canonical) templateText(e *hir.Expr) string {
	var b strings.Builder
	b.WriteByte('`')
	for _, part := range e.Parts {
		if part.Kind == hir.ExprLiteral && part.Lit == hir.LitString {
			b.WriteString(part.StringVal)
			continue
		}
		b.WriteString("${" + c.expr(part) + "}")
	}
	b.WriteByte('`')
	return b.String()
}

func assignOpText(op hir.AssignOp) string {
	switch op {
	case hir.AssignAdd:
		return "+="
	case hir.AssignSub:
		return "-="
	case hir.AssignMul:
		return "*="
	case hir.AssignDiv:
		return "/="
	case hir.AssignMod:
		return "%="
	case hir.AssignPow:
		return "**="
	default:
		return "="
	}
}
