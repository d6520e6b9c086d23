package lower

import (
	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/hir"
)

// lowerExpr lowers one ast.Expression, grounded on
// original_source/fons/radix-rs/src/hir/lower/expr.rs's lower_expr entry
// point and its per-kind lower_* helpers (lower_nomen/lower_binarius/
// lower_vocare/lower_membrum/...).
func (l *Lowerer) lowerExpr(e ast.Expression) *hir.Expr {
	if e == nil {
		return nil
	}
	out := &hir.Expr{ID: l.next(), Span: e.Span()}
	switch ex := e.(type) {
	case *ast.IntegerLiteral:
		out.Kind, out.Lit, out.IntVal = hir.ExprLiteral, hir.LitInt, ex.Value
	case *ast.FloatLiteral:
		out.Kind, out.Lit, out.FloatVal = hir.ExprLiteral, hir.LitFloat, ex.Value
	case *ast.BigIntLiteral:
		out.Kind, out.Lit, out.BigVal = hir.ExprLiteral, hir.LitBigInt, ex.Value
	case *ast.BooleanLiteral:
		out.Kind, out.Lit, out.BoolVal = hir.ExprLiteral, hir.LitBool, ex.Value
	case *ast.NilLiteral:
		out.Kind, out.Lit = hir.ExprLiteral, hir.LitNil
	case *ast.StringLiteral:
		out.Kind, out.Lit, out.StringVal = hir.ExprLiteral, hir.LitString, ex.Value
	case *ast.TemplateStringLiteral:
		out.Kind, out.Lit = hir.ExprLiteral, hir.LitTemplateString
		out.Parts = l.lowerExprList(ex.Parts)
	case *ast.Identifier:
		out.Kind = hir.ExprPath
		out.Def = l.defOf(ex)
		if out.Def == 0 {
			out.Kind = hir.ExprError
		}
	case *ast.BinaryExpr:
		out.Kind = hir.ExprBinary
		out.BinOp = binOpFor(ex.Op)
		out.Left = l.lowerExpr(ex.Left)
		out.Right = l.lowerExpr(ex.Right)
	case *ast.UnaryExpr:
		out.Kind = hir.ExprUnary
		out.UnOp = unOpFor(ex.Op)
		out.Operand = l.lowerExpr(ex.Operand)
	case *ast.TernaryExpr:
		out.Kind = hir.ExprTernary
		out.Cond = l.lowerExpr(ex.Cond)
		out.Then = l.lowerExpr(ex.Then)
		out.Else = l.lowerExpr(ex.Else)
	case *ast.RangeExpr:
		out.Kind = hir.ExprRange
		out.Start = l.lowerExpr(ex.Start)
		out.End = l.lowerExpr(ex.End)
		if ex.Step != nil {
			out.Step = l.lowerExpr(ex.Step)
		}
		out.Inclusive = ex.Inclusive
	case *ast.CallExpr:
		out.Kind = hir.ExprCall
		out.Callee = l.lowerExpr(ex.Callee)
		out.Args = l.lowerArgs(ex.Args)
	case *ast.MemberExpr:
		out.Kind = hir.ExprMember
		out.Object = l.lowerExpr(ex.Object)
		out.Name = ex.Name
	case *ast.IndexExpr:
		out.Kind = hir.ExprIndex
		out.Object = l.lowerExpr(ex.Object)
		out.Index = l.lowerExpr(ex.Index)
	case *ast.ChainExpr:
		out.Kind = hir.ExprOptionalChain
		out.Object = l.lowerExpr(ex.Object)
		out.Name = ex.Name
		out.ChainOptional = ex.Kind == ast.ChainOptionalMember || ex.Kind == ast.ChainOptionalIndex || ex.Kind == ast.ChainOptionalCall
		out.ChainNonNull = !out.ChainOptional
		if ex.Index != nil {
			out.Index = l.lowerExpr(ex.Index)
		}
		out.Args = l.lowerArgs(ex.Args)
	case *ast.CastExpr:
		out.Kind = hir.ExprCast
		out.Operand = l.lowerExpr(ex.Value)
		out.Target = l.lowerType(ex.Target)
		if ex.Fallback != nil {
			out.Fallback = l.lowerExpr(ex.Fallback)
		}
	case *ast.AssignExpr:
		out.Kind = hir.ExprAssign
		out.AssignOp = assignOpFor(ex.Op)
		out.Left = l.lowerExpr(ex.Target)
		out.Right = l.lowerExpr(ex.Value)
	case *ast.FunctionLiteral:
		out.Kind = hir.ExprFunctionLit
		for _, p := range ex.Params {
			out.Params = append(out.Params, l.lowerParam(p))
		}
		if ex.ReturnType != nil {
			out.ReturnType = l.lowerType(ex.ReturnType)
			out.HasReturn = true
		} else {
			out.ReturnType = l.table.Fresh()
		}
		out.Body = l.lowerBlock(ex.Body)
	case *ast.ListLiteral:
		out.Kind = hir.ExprList
		out.Elements = l.lowerExprList(ex.Elements)
	case *ast.SetLiteral:
		out.Kind = hir.ExprSet
		out.Elements = l.lowerExprList(ex.Elements)
	case *ast.TupleLiteral:
		out.Kind = hir.ExprTuple
		out.Elements = l.lowerExprList(ex.Elements)
	case *ast.MapLiteral:
		out.Kind = hir.ExprMap
		for _, entry := range ex.Entries {
			out.Entries = append(out.Entries, hir.MapEntry{Key: l.lowerExpr(entry.Key), Value: l.lowerExpr(entry.Value)})
		}
	case *ast.RecordLiteral:
		out.Kind = hir.ExprRecord
		out.RecordDef = l.defOf(ex.TypeName)
		out.Fields = make(map[string]*hir.Expr, len(ex.Fields))
		for _, name := range ex.FieldOrder {
			out.FieldOrder = append(out.FieldOrder, name)
			out.Fields[name] = l.lowerExpr(ex.Fields[name])
		}
		if ex.Spread != nil {
			out.Spread = l.lowerExpr(ex.Spread)
		}
	case *ast.MatchExpr:
		out.Kind = hir.ExprMatch
		for _, subj := range ex.Subjects {
			out.Subjects = append(out.Subjects, l.lowerExpr(subj))
		}
		for _, arm := range ex.Arms {
			out.Arms = append(out.Arms, l.lowerArm(arm))
		}
		if ex.DefaultArm != nil {
			out.DefaultArm = l.lowerBlock(ex.DefaultArm)
		}
	default:
		out.Kind = hir.ExprError
		l.errorf("LOWER001", e.Span(), "unhandled expression kind in lowering")
	}
	return out
}

func (l *Lowerer) lowerExprList(in []ast.Expression) []*hir.Expr {
	out := make([]*hir.Expr, 0, len(in))
	for _, e := range in {
		out = append(out, l.lowerExpr(e))
	}
	return out
}

func (l *Lowerer) lowerArgs(in []ast.Arg) []hir.Arg {
	out := make([]hir.Arg, 0, len(in))
	for _, a := range in {
		out = append(out, hir.Arg{Name: a.Name, Value: l.lowerExpr(a.Value), Spread: a.Spread})
	}
	return out
}

var binOpTable = map[ast.BinaryOp]hir.BinOp{
	ast.OpAdd: hir.BinAdd, ast.OpSub: hir.BinSub, ast.OpMul: hir.BinMul,
	ast.OpDiv: hir.BinDiv, ast.OpMod: hir.BinMod, ast.OpPow: hir.BinPow,
	ast.OpEq: hir.BinEq, ast.OpNotEq: hir.BinNotEq, ast.OpLt: hir.BinLt,
	ast.OpGt: hir.BinGt, ast.OpLte: hir.BinLte, ast.OpGte: hir.BinGte,
	ast.OpAnd: hir.BinAnd, ast.OpOr: hir.BinOr, ast.OpNullCoalesce: hir.BinNullCoalesce,
	ast.OpBitAnd: hir.BinBitAnd, ast.OpBitOr: hir.BinBitOr, ast.OpBitXor: hir.BinBitXor,
	ast.OpShl: hir.BinShl, ast.OpShr: hir.BinShr, ast.OpContains: hir.BinContains,
}

func binOpFor(op ast.BinaryOp) hir.BinOp { return binOpTable[op] }

var unOpTable = map[ast.UnaryOp]hir.UnOp{
	ast.OpNeg: hir.UnNeg, ast.OpNot: hir.UnNot, ast.OpIsSome: hir.UnIsSome, ast.OpIsNone: hir.UnIsNone,
}

func unOpFor(op ast.UnaryOp) hir.UnOp { return unOpTable[op] }

var assignOpTable = map[ast.AssignOp]hir.AssignOp{
	ast.AssignPlain: hir.AssignPlain, ast.AssignAdd: hir.AssignAdd, ast.AssignSub: hir.AssignSub,
	ast.AssignMul: hir.AssignMul, ast.AssignDiv: hir.AssignDiv, ast.AssignMod: hir.AssignMod, ast.AssignPow: hir.AssignPow,
}

func assignOpFor(op ast.AssignOp) hir.AssignOp { return assignOpTable[op] }
