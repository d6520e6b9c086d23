package lower

import (
	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/hir"
)

// lowerPattern lowers one ast.Pattern, grounded on
// original_source/fons/radix-rs/src/hir/lower/pattern.rs's lower_pattern.
// The "casu A, B, C" multi-pattern sugar is not flattened here: it stays
// one hir.MatchArm per ast.MatchArm with multiple Patterns, matching how
// the parser already represents it (spec.md §4.2), rather than a nested
// PatternOr the way the original Rust implementation models it — the
// checker and exhaustiveness pass both walk arm.Patterns directly.
func (l *Lowerer) lowerPattern(p ast.Pattern) *hir.Pattern {
	if p == nil {
		return &hir.Pattern{ID: l.next(), Kind: hir.PatternWildcard}
	}
	switch pat := p.(type) {
	case *ast.WildcardPattern:
		return &hir.Pattern{ID: l.next(), Kind: hir.PatternWildcard, Span: pat.Span()}
	case *ast.LiteralPattern:
		return &hir.Pattern{ID: l.next(), Kind: hir.PatternLiteral, Lit: l.lowerExpr(pat.Value), Span: pat.Span()}
	case *ast.IdentPattern:
		name := pat.Name
		if pat.Alias != "" {
			name = pat.Alias
		}
		return &hir.Pattern{
			ID:      l.next(),
			Kind:    hir.PatternBind,
			BindDef: l.defOf(pat),
			Name:    l.sym(name),
			Span:    pat.Span(),
		}
	case *ast.TuplePattern:
		out := &hir.Pattern{ID: l.next(), Kind: hir.PatternTuple, Span: pat.Span()}
		for _, e := range pat.Elements {
			out.Elements = append(out.Elements, l.lowerPattern(e))
		}
		return out
	case *ast.PathPattern:
		out := &hir.Pattern{ID: l.next(), Kind: hir.PatternVariant, Span: pat.Span()}
		variantDef := l.defOf(pat)
		out.VariantDef = variantDef
		out.Name = l.sym(pat.Variant)
		if def, ok := l.res.Defs[variantDef]; ok {
			out.EnumDef = def.EnumDef
		}
		for _, f := range pat.Fields {
			out.Elements = append(out.Elements, l.lowerPattern(f))
		}
		return out
	default:
		return &hir.Pattern{ID: l.next(), Kind: hir.PatternWildcard}
	}
}
