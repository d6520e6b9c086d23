package hir

import (
	"github.com/radixlang/radix/internal/intern"
	"github.com/radixlang/radix/internal/source"
	"github.com/radixlang/radix/internal/types"
)

// PatternKind tags one match/destructure pattern shape, grounded on
// original_source/fons/radix-rs/src/hir/lower/pattern.rs's HirPatternKind.
type PatternKind int

const (
	PatternWildcard PatternKind = iota
	PatternLiteral
	PatternBind       // plain identifier bind, optionally aliased
	PatternTuple
	PatternVariant    // Enum.Variant(sub, sub) or Enum.Variant
	PatternOr         // alternatives; internal/lower never produces this kind
)

// Pattern is one HIR pattern node.
type Pattern struct {
	ID   Id
	Kind PatternKind
	Span source.Span
	Type types.TypeId

	// PatternLiteral
	Lit *Expr

	// PatternBind
	BindDef DefId
	Name    intern.Symbol

	// PatternTuple / PatternVariant (sub-patterns) / PatternOr (alternatives)
	Elements []*Pattern

	// PatternVariant
	EnumDef    DefId
	VariantDef DefId
}
