package codegen

import (
	"fmt"

	"github.com/radixlang/radix/internal/config"
	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/hir"
	"github.com/radixlang/radix/internal/intern"
	"github.com/radixlang/radix/internal/source"
	"github.com/radixlang/radix/internal/types"
)

// Emitter turns a lowered, checked hir.Module into target source text,
// grounded on codegen/mod.rs's Codegen trait (one impl per backend).
type Emitter interface {
	Emit(mod *hir.Module) (string, error)
}

// New dispatches on a §6 `emit -t` target name, grounded on the
// teacher's own target-name validation idiom reused from
// config.IsValidTarget.
func New(target string, table *types.Table, in *intern.Interner, diags *diagnostics.Bag) (Emitter, error) {
	switch target {
	case config.TargetCanonical:
		return &Canonical{table: table, in: in, diags: diags}, nil
	case config.TargetSystems:
		return &Systems{table: table, in: in, diags: diags}, nil
	case config.TargetStructural:
		return &Structural{table: table, in: in, diags: diags}, nil
	default:
		return nil, fmt.Errorf("unknown emit target %q", target)
	}
}

// unsupported reports CODEGEN001 for an expression/statement shape a
// translation emitter (Systems/Structural) doesn't model, grounded on
// the original faber/mod.rs's habit of leaving untranslatable forms as
// a marker rather than panicking.
func unsupported(diags *diagnostics.Bag, span source.Span, what string) string {
	diags.Add(diagnostics.Newf(diagnostics.Error, "CODEGEN001", span, "cannot translate %s to this target", what).
		WithHelp(diagnostics.Help("CODEGEN001")))
	return "/* unsupported */"
}

// enumIndex maps a variant DefId to the enum that declares it, built
// once per Emit call. The module's HIR records Enum.Variants directly,
// so most lookups resolve here; only variants the type table never saw
// (the self-hosting IR case) fall through to the emitters' well-known
// registry, the fallback nanus-rs's emitter_rs.rs reaches for in
// find_discretio_for_variant.
type enumIndex struct {
	variantEnum map[hir.DefId]*hir.Enum
	variants    map[hir.DefId]*hir.Variant
	enumDefs    map[hir.DefId]struct{}
}

func buildEnumIndex(mod *hir.Module) *enumIndex {
	idx := &enumIndex{
		variantEnum: make(map[hir.DefId]*hir.Enum),
		variants:    make(map[hir.DefId]*hir.Variant),
		enumDefs:    make(map[hir.DefId]struct{}),
	}
	for _, item := range mod.Items {
		if item.Kind != hir.ItemEnum {
			continue
		}
		idx.enumDefs[item.DefID] = struct{}{}
		for _, v := range item.Enum.Variants {
			idx.variantEnum[v.DefID] = item.Enum
			idx.variants[v.DefID] = v
		}
	}
	return idx
}

// enumOf returns the enum declaring variantDef, or nil when the module
// never declared it.
func (idx *enumIndex) enumOf(variantDef hir.DefId) *hir.Enum {
	return idx.variantEnum[variantDef]
}

// variantFields returns the declared fields of variantDef, in order.
func (idx *enumIndex) variantFields(variantDef hir.DefId) []*hir.VariantField {
	if v := idx.variants[variantDef]; v != nil {
		return v.Fields
	}
	return nil
}

// isEnum reports whether def names an enum declaration.
func (idx *enumIndex) isEnum(def hir.DefId) bool {
	_, ok := idx.enumDefs[def]
	return ok
}
