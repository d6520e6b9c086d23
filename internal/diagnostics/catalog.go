package diagnostics

// Catalog maps stable diagnostic codes to default help text, grounded on
// original_source/fons/radix-rs/src/diagnostics/catalog.rs (SPEC_FULL.md
// supplemented feature #2): a single source of truth instead of format
// strings scattered across every phase.
var Catalog = map[string]string{
	"LEX001": "close the string, character, or template literal before end of line or file",
	"LEX002": "use one of the supported escapes: \\n \\t \\r \\\\ \\\" \\' \\$ \\0",
	"LEX003": "check digit grouping and base prefix (0x/0b/0o)",
	"LEX005": "remove or replace the unrecognized byte",

	"PARSE001": "expected a different token here",
	"PARSE002": "unexpected token",
	"PARSE003": "this declaration is missing a required part",
	"PARSE004": "a function declaration needs a body",
	"PARSE005": "could not parse this as a statement",
	"PARSE006": "could not parse this as an expression",
	"PARSE007": "could not parse this as a type",
	"PARSE008": "could not parse this as a pattern",

	"SEM001": "this name is not defined in any enclosing scope",
	"SEM002": "a symbol with this name is already defined in this scope",
	"SEM003": "this import path could not be matched to a recorded module",
	"SEM004": "this import forms a cycle with another import",
	"SEM010": "the two sides do not have a compatible type",
	"SEM011": "this operand's type is not valid for this operator",
	"SEM012": "this expression is not callable",
	"SEM013": "wrong number of arguments for this call",
	"SEM014": "add an explicit type annotation here",
	"SEM015": "this cast or conversion is not valid",
	"SEM016": "this binding is immutable",
	"SEM017": "this is not a valid assignment target",
	"SEM020": "break/continue/return used outside of a loop or function",
	"SEM021": "not every path returns a value",
	"SEM040": "add arms for the remaining variants, or a catch-all arm",
	"SEM041": "this pattern is unreachable because an earlier arm already matches everything",
	"SEM042": "this variant already has an arm earlier in the same match",
	"SEM050": "this binding was moved earlier and cannot be used again",
	"SEM051": "cannot borrow a binding that has already been moved",
	"SEM052": "a mutable borrow conflicts with another outstanding borrow",
	"SEM053": "cannot move a value out of a shared or borrowed binding",

	"WARN001": "remove the unused binding, or prefix it with _",
	"WARN002": "remove the unreachable statement",
	"WARN003": "this cast has no effect; the expression already has the target type",
	"WARN004": "this feature is deprecated",
	"WARN005": "this name shadows a binding from an enclosing scope",
	"WARN006": "this annotation has no effect for the selected target",

	"LOWER001": "this expression form is not supported by the lowering pass",

	"CODEGEN001": "internal code generation failure",
}

// Help returns the catalog's default help text for code, or "".
func Help(code string) string {
	return Catalog[code]
}
