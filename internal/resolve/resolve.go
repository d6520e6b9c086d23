// Package resolve binds every name occurrence in an ast.Program to a
// DefId, in two passes over the tree: a collection pass that registers
// every top-level and block-scoped declaration before any use is
// checked, then a resolution pass that walks the same tree again
// looking up each Identifier/PathPattern against a chain of lexical
// scopes. Grounded on original_source/fons/radix-rs/src/semantic/resolver.rs's
// two-pass Resolver (collect_items then resolve_program), adapted to
// this module's DefId/diagnostics.Bag conventions instead of returning
// a Result<_, Vec<SemanticError>>.
package resolve

import (
	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/hir"
	"github.com/radixlang/radix/internal/intern"
	"github.com/radixlang/radix/internal/source"
)

// SymbolKind classifies what a Def names, grounded on the Rust
// resolver's SymbolKind enum (Function/Struct/Enum/Variant/Interface/
// TypeAlias/Const/Var/Param/Import).
type SymbolKind int

const (
	SymFunction SymbolKind = iota
	SymStruct
	SymEnum
	SymVariant
	SymInterface
	SymTypeAlias
	SymConst
	SymVar
	SymParam
	SymField
	SymImport
)

// Def is one resolved definition: a name bound to a DefId with enough
// provenance for the checker and borrow checker to act on.
type Def struct {
	ID       hir.DefId
	Name     string
	Kind     SymbolKind
	Node     ast.Node
	Mutable  bool
	EnumDef  hir.DefId // SymVariant: owning enum's DefId
}

// ImportRecord is one "importa" statement recorded symbolically, per
// spec.md §1 ("does not resolve cross-module imports beyond recording
// them") and SPEC_FULL.md's bundler-symbol-recording supplement.
type ImportRecord struct {
	Path  string
	Alias string
	Items []string
	Decl  *ast.ImportDecl
}

// scope is one lexical level: function body, block, or the file root.
type scope struct {
	parent *scope
	names  map[string]hir.DefId
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, names: make(map[string]hir.DefId)}
}

func (s *scope) define(name string, id hir.DefId) {
	s.names[name] = id
}

func (s *scope) lookup(name string) (hir.DefId, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if id, ok := cur.names[name]; ok {
			return id, true
		}
	}
	return 0, false
}

// Result is everything the resolver produced for one Program.
type Result struct {
	Defs     map[hir.DefId]*Def
	RefOf    map[ast.NodeId]hir.DefId // Identifier/PathPattern node -> resolved Def
	Imports  []ImportRecord
	nextID   hir.DefId
}

func (r *Result) newDefID() hir.DefId {
	r.nextID++
	return r.nextID
}

// Resolver runs the two passes over one Program, grounded on the Rust
// Resolver's loop/function-context stack (InScope/LoopDepth).
type Resolver struct {
	diags     *diagnostics.Bag
	interner  *intern.Interner
	result    *Result
	loopDepth int
	funcDepth int
}

// New constructs a Resolver reporting into diags and interning names
// through in.
func New(diags *diagnostics.Bag, in *intern.Interner) *Resolver {
	return &Resolver{
		diags:    diags,
		interner: in,
		result: &Result{
			Defs:  make(map[hir.DefId]*Def),
			RefOf: make(map[ast.NodeId]hir.DefId),
		},
	}
}

// Resolve runs both passes over prog and returns the accumulated Result.
func (r *Resolver) Resolve(prog *ast.Program) *Result {
	root := newScope(nil)
	r.collectTopLevel(prog, root)
	r.resolveTopLevel(prog, root)
	return r.result
}

func (r *Resolver) define(scp *scope, name string, kind SymbolKind, node ast.Node) hir.DefId {
	if _, exists := scp.names[name]; exists {
		r.errorf("SEM002", node.Span(), "a symbol named %q is already defined in this scope", name)
	}
	id := r.result.newDefID()
	scp.define(name, id)
	r.result.Defs[id] = &Def{ID: id, Name: name, Kind: kind, Node: node}
	return id
}

func (r *Resolver) errorf(code string, span source.Span, format string, args ...any) {
	r.diags.Add(diagnostics.Newf(diagnostics.Error, code, span, format, args...).WithHelp(diagnostics.Help(code)))
}
