package ast

// IdentPattern binds the scrutinee to a name, optionally under an alias
// ("ut alias") or a destructuring tuple bind ("pro a, b, ...").
type IdentPattern struct {
	Base
	Name    string
	Alias   string   // "ut alias", empty if absent
	Destruct []string // "pro a,b,...", empty if absent
}

func (p *IdentPattern) patternNode()      {}
func (p *IdentPattern) Accept(v Visitor) { v.VisitIdentPattern(p) }

// WildcardPattern is "_", matching anything and binding nothing.
type WildcardPattern struct{ Base }

func (p *WildcardPattern) patternNode()      {}
func (p *WildcardPattern) Accept(v Visitor) { v.VisitWildcardPattern(p) }

// LiteralPattern matches an exact literal value.
type LiteralPattern struct {
	Base
	Value Expression
}

func (p *LiteralPattern) patternNode()      {}
func (p *LiteralPattern) Accept(v Visitor) { v.VisitLiteralPattern(p) }

// PathPattern matches an enum variant, e.g. "Color.Red" or
// "Result.Ok(value)" with field-binding sub-patterns.
type PathPattern struct {
	Base
	Enum    string // empty if unqualified, resolved later
	Variant string
	Fields  []Pattern
	FieldNames []string // parallel to Fields, for named-field variants
}

func (p *PathPattern) patternNode()      {}
func (p *PathPattern) Accept(v Visitor) { v.VisitPathPattern(p) }

// TuplePattern destructures a tuple literal pattern "(a, b)".
type TuplePattern struct {
	Base
	Elements []Pattern
}

func (p *TuplePattern) patternNode()      {}
func (p *TuplePattern) Accept(v Visitor) { v.VisitTuplePattern(p) }
