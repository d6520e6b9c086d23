// Package parser turns a token slice into an ast.Program, using a
// recursive-descent parser for statements/declarations and a Pratt
// (precedence-climbing) parser for expressions. Grounded on
// funvibe-funxy/internal/parser's prefixParseFns/infixParseFns table and
// curToken/peekToken cursor (expressions_core.go), adapted to a plain
// token slice since this language has no lazy token stream requirement.
// Recoverable errors are appended to a diagnostics.Bag and parsing
// resynchronizes at the next statement boundary rather than aborting,
// matching the teacher's "errors already added to context" convention
// from parser/processor.go.
package parser

import (
	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/source"
	"github.com/radixlang/radix/internal/token"
)

// Precedence levels, lowest to highest, grounded on the binary operator
// table assembled for internal/ast's BinaryOp enum.
const (
	LOWEST int = iota
	ASSIGNMENT
	TERNARY
	NULLCOALESCE
	LOGICOR
	LOGICAND
	EQUALITY
	COMPARISON
	BITOR
	BITXOR
	BITAND
	SHIFT
	RANGE
	SUM
	PRODUCT
	POWER
	UNARY
	CALL
)

// MaxRecursionDepth guards against pathological nesting overflowing the
// Go call stack, per the teacher's same-named guard in expressions_core.go.
const MaxRecursionDepth = 250

var precedences = map[token.Type]int{
	token.ASSIGN:          ASSIGNMENT,
	token.PLUS_ASSIGN:     ASSIGNMENT,
	token.MINUS_ASSIGN:    ASSIGNMENT,
	token.ASTERISK_ASSIGN: ASSIGNMENT,
	token.SLASH_ASSIGN:    ASSIGNMENT,
	token.PERCENT_ASSIGN:  ASSIGNMENT,
	token.POWER_ASSIGN:    ASSIGNMENT,
	token.QUESTION:       TERNARY,
	token.NULL_COALESCE:  NULLCOALESCE,
	token.VEL:            NULLCOALESCE,
	token.OR:             LOGICOR,
	token.AUT:            LOGICOR,
	token.AND:            LOGICAND,
	token.ET:             LOGICAND,
	token.EQ:             EQUALITY,
	token.NOT_EQ:         EQUALITY,
	token.EST:            EQUALITY,
	token.LT:             COMPARISON,
	token.GT:             COMPARISON,
	token.LTE:            COMPARISON,
	token.GTE:            COMPARISON,
	token.INTER:          COMPARISON,
	token.INTRA:          COMPARISON,
	token.PIPE:           BITOR,
	token.CARET:          BITXOR,
	token.AMPERSAND:      BITAND,
	token.LSHIFT:         SHIFT,
	token.RSHIFT:         SHIFT,
	token.DOT_DOT:        RANGE,
	token.PLUS:           SUM,
	token.MINUS:          SUM,
	token.ASTERISK:       PRODUCT,
	token.SLASH:          PRODUCT,
	token.PERCENT:        PRODUCT,
	token.POWER:          POWER,
	token.LPAREN:         CALL,
	token.DOT:            CALL,
	token.LBRACKET:       CALL,
	token.OPTIONAL_CHAIN: CALL,
	token.OPTIONAL_INDEX: CALL,
	token.OPTIONAL_CALL:  CALL,
	token.NONNULL_CHAIN:  CALL,
	token.NONNULL_INDEX:  CALL,
	token.NONNULL_CALL:   CALL,
	token.TAMQUAM:        CALL,
}

// Stable diagnostic codes this package reports, taken from the catalog
// in internal/diagnostics/catalog.go.
const (
	ErrExpectedToken  = "PARSE001"
	ErrUnexpectedToken = "PARSE002"
	ErrMissingPart    = "PARSE003"
	ErrMissingBody    = "PARSE004"
	ErrBadStatement   = "PARSE005"
	ErrBadExpression  = "PARSE006"
	ErrBadType        = "PARSE007"
	ErrBadPattern     = "PARSE008"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser walks a fixed token slice produced by the lexer for one file.
type Parser struct {
	file   *source.File
	tokens []token.Token
	pos    int

	cur  token.Token
	peek token.Token

	ids   *ast.IDGen
	diags *diagnostics.Bag

	depth int

	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn
}

// New constructs a Parser over tokens already produced for file, sharing
// one diagnostics.Bag and ast.IDGen across the whole parse.
func New(file *source.File, tokens []token.Token, diags *diagnostics.Bag) *Parser {
	p := &Parser{
		file:   file,
		tokens: tokens,
		ids:    &ast.IDGen{},
		diags:  diags,
	}
	p.prefixFns = p.buildPrefixFns()
	p.infixFns = p.buildInfixFns()
	// Prime cur/peek.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	if p.pos < len(p.tokens) {
		p.peek = p.tokens[p.pos]
		p.pos++
	} else {
		p.peek = token.Token{Type: token.EOF}
	}
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peek.Type == t }

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	p.errorf(ErrExpectedToken, p.peek.Span,
		"expected next token to be %s, got %s instead", t, p.peek.Type)
}

func (p *Parser) errorf(code string, span source.Span, format string, args ...any) {
	p.diags.Add(diagnostics.Newf(diagnostics.Error, code, span, format, args...).WithHelp(diagnostics.Help(code)))
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.cur.Type]; ok {
		return pr
	}
	return LOWEST
}

// skipToStatementBoundary resynchronizes after an unrecoverable parse
// error by discarding tokens until the next statement-starting keyword
// (or a closing brace/EOF) is one step ahead, matching the teacher's
// panic-mode recovery in expressions_core.go. Stopping one token early
// lets every caller's own advance land exactly on the boundary.
func (p *Parser) skipToStatementBoundary() {
	for !p.curTokenIs(token.EOF) {
		if p.peekTokenIs(token.EOF) || p.peekTokenIs(token.RBRACE) || isStatementStart(p.peek.Type) {
			return
		}
		p.nextToken()
	}
}

func isStatementStart(t token.Type) bool {
	switch t {
	case token.FUNCTIO, token.GENUS, token.DISCRETIO, token.PACTUM, token.TYPUS,
		token.ORDO, token.IMPORTA, token.FIXUM, token.FIGENDUM, token.VARIA,
		token.VARIANDUM, token.SI, token.DUM, token.PRO, token.DISCERNE,
		token.REDDE, token.DISCEDE, token.PERGE, token.IACIT, token.MORITOR,
		token.EXORDIUM, token.SECTION:
		return true
	}
	return false
}

func (p *Parser) span(start token.Token) source.Span {
	return source.Merge(start.Span, p.cur.Span)
}
