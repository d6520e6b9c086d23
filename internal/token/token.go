// Package token defines the lexical token kinds and the Token value the
// lexer hands to the parser, following the teacher's lexer/token split
// (funvibe-funxy/internal/lexer imports a sibling token package) except
// Token carries a source.Span instead of raw line/column pairs, per
// spec.md §3 ("All AST/HIR nodes carry a span").
package token

import (
	"math/big"

	"github.com/radixlang/radix/internal/source"
)

// Type is a closed set of lexical kinds: keywords, punctuators, literals.
type Type int

// Token is a single lexeme: its kind, literal payload (if any), and span.
type Token struct {
	Type    Type
	Lexeme  string
	Literal any // int64, float64, string, *big.Int, *big.Rat, bool, nil
	Span    source.Span
}

// BigInt extracts the token's *big.Int payload, or nil if not a BigInt.
func (t Token) BigInt() *big.Int {
	if v, ok := t.Literal.(*big.Int); ok {
		return v
	}
	return nil
}

const (
	ILLEGAL Type = iota
	EOF
	NEWLINE

	// Literals
	IDENT
	IDENT_UPPER // capitalized identifier: enum/struct/trait name convention
	INT
	FLOAT
	BIG_INT
	RATIONAL
	STRING
	TEMPLATE_STRING
	DOC_COMMENT

	// Declaration keywords
	FUNCTIO  // function declaration
	GENUS    // struct declaration
	DISCRETIO // enum declaration
	PACTUM   // interface/trait declaration
	TYPUS    // type alias
	ORDO     // package/module declaration
	IMPORTA  // import

	// Binding keywords
	FIXUM     // immutable local binding (base form)
	FIGENDUM  // immutable local binding (alternate dual-vocab form of FIXUM)
	VARIA     // mutable local binding (base form)
	VARIANDUM // mutable local binding (alternate dual-vocab form of VARIA)

	// Control flow
	SI       // if (also: nullable type prefix)
	SECUS    // else
	DUM      // while
	PRO      // for (also: destructuring-pattern prefix "pro a,b")
	IN       // for-in membership keyword (also: mutable-ref ownership prefix)
	DISCERNE // match/switch expression
	CASU     // match arm introducer, "casu A, B, C"
	ELIGE    // default/else arm within discerne

	// Transfer
	REDDE    // return
	CEDE     // yield
	DISCEDE  // break
	PERGE    // continue
	IACIT    // throw
	MORITOR  // inline panic ("is dying")

	// Body sugar
	ERGO    // one-shot statement body: "ergo STMT"
	REDDIT  // inline-return body: "reddit EXPR"
	TACET   // inline no-op body: "tacet"

	// Word-form operators
	AUT   // logical or
	VEL   // null-coalesce / "or else"
	ET    // logical and
	EST   // equality ("est")
	NON   // reserved word; no parser rule consumes it
	ANTE  // range start word form
	USQUE // range end word form
	PER   // range step word form
	INTER // containment/between
	INTRA // containment/within

	// Pattern keywords
	UT // pattern alias: "ut alias"

	// Cast keyword
	TAMQUAM // explicit cast: "EXPR tamquam TYPE"

	// Ownership prefixes
	DE // immutable reference prefix

	// Async / coroutine (never executed, only round-tripped through emitters)
	INCIPIET // async function modifier
	ASYNCA   // async keyword alternate form

	// Entry points / testing / nullability
	EXORDIUM // program entry point
	PROBA    // test declaration

	// Literal keywords
	VERUM  // true
	FALSUM // false
	NIHIL  // nil

	// Annotations / directives (lexer mode switches)
	AT_SIGN   // '@' begins an annotation sequence
	SECTION   // '§' begins a directive
	DIRECTIVE // "directive" keyword, inside section mode

	// Punctuation / operators
	ASSIGN
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH
	PERCENT
	POWER
	LT
	GT
	LTE
	GTE
	EQ
	NOT_EQ
	AND
	OR
	AMPERSAND
	PIPE
	CARET
	TILDE
	LSHIFT
	RSHIFT
	QUESTION
	NULL_COALESCE
	OPTIONAL_CHAIN    // ?.
	OPTIONAL_INDEX    // ?[
	OPTIONAL_CALL     // ?(
	NONNULL_CHAIN     // !.
	NONNULL_INDEX     // ![
	NONNULL_CALL      // !(
	COMMA
	COLON
	DOT
	DOT_DOT  // ..
	ELLIPSIS // ...
	ARROW    // ->
	L_ARROW  // <-
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	PLUS_ASSIGN
	MINUS_ASSIGN
	ASTERISK_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN
	POWER_ASSIGN
)

var keywords = map[string]Type{
	"functio":   FUNCTIO,
	"genus":     GENUS,
	"discretio": DISCRETIO,
	"pactum":    PACTUM,
	"typus":     TYPUS,
	"ordo":      ORDO,
	"importa":   IMPORTA,
	"fixum":     FIXUM,
	"figendum":  FIGENDUM,
	"varia":     VARIA,
	"variandum": VARIANDUM,
	"si":        SI,
	"secus":     SECUS,
	"dum":       DUM,
	"pro":       PRO,
	"in":        IN,
	"discerne":  DISCERNE,
	"casu":      CASU,
	"elige":     ELIGE,
	"redde":     REDDE,
	"cede":      CEDE,
	"discede":   DISCEDE,
	"perge":     PERGE,
	"iacit":     IACIT,
	"moritor":   MORITOR,
	"ergo":      ERGO,
	"reddit":    REDDIT,
	"tacet":     TACET,
	"aut":       AUT,
	"vel":       VEL,
	"et":        ET,
	"est":       EST,
	"non":       NON,
	"ante":      ANTE,
	"usque":     USQUE,
	"per":       PER,
	"inter":     INTER,
	"intra":     INTRA,
	"ut":        UT,
	"tamquam":   TAMQUAM,
	"de":        DE,
	"incipiet":  INCIPIET,
	"asynca":    ASYNCA,
	"exordium":  EXORDIUM,
	"proba":     PROBA,
	"verum":     VERUM,
	"falsum":    FALSUM,
	"nihil":     NIHIL,
	"directive": DIRECTIVE,
}

// LookupIdent returns the keyword Type for ident in Normal mode, or IDENT
// if it is not a reserved word. Annotation and section modes never
// consult this table (spec.md §4.1: "identifiers are never keywords"
// there), so callers in those modes must not call this function.
func LookupIdent(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENT
}

// names gives a short human label for diagnostics and JSON token dumps
// (spec.md §6: "token kinds serialize as string labels").
var names = map[Type]string{
	ILLEGAL: "Illegal", EOF: "Eof", NEWLINE: "Newline",
	IDENT: "Ident", IDENT_UPPER: "IdentUpper", INT: "Integer", FLOAT: "Float",
	BIG_INT: "BigInt", RATIONAL: "Rational", STRING: "String",
	TEMPLATE_STRING: "TemplateString", DOC_COMMENT: "DocComment",
	FUNCTIO: "Functio", GENUS: "Genus", DISCRETIO: "Discretio", PACTUM: "Pactum",
	TYPUS: "Typus", ORDO: "Ordo", IMPORTA: "Importa",
	FIXUM: "Fixum", FIGENDUM: "Figendum", VARIA: "Varia", VARIANDUM: "Variandum",
	SI: "Si", SECUS: "Secus", DUM: "Dum", PRO: "Pro", IN: "In",
	DISCERNE: "Discerne", CASU: "Casu", ELIGE: "Elige",
	REDDE: "Redde", CEDE: "Cede", DISCEDE: "Discede", PERGE: "Perge",
	IACIT: "Iacit", MORITOR: "Moritor",
	ERGO: "Ergo", REDDIT: "Reddit", TACET: "Tacet",
	AUT: "Aut", VEL: "Vel", ET: "Et", EST: "Est", NON: "Non",
	ANTE: "Ante", USQUE: "Usque", PER: "Per", INTER: "Inter", INTRA: "Intra",
	UT: "Ut", TAMQUAM: "Tamquam", DE: "De", INCIPIET: "Incipiet", ASYNCA: "Asynca",
	EXORDIUM: "Exordium", PROBA: "Proba",
	VERUM: "Verum", FALSUM: "Falsum", NIHIL: "Nihil",
	DIRECTIVE: "Directive",
}

func (t Type) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return "Op"
}
