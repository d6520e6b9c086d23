package parser

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/lexer"
	"github.com/radixlang/radix/internal/source"
	"github.com/radixlang/radix/internal/token"
)

func (p *Parser) buildPrefixFns() map[token.Type]prefixParseFn {
	m := map[token.Type]prefixParseFn{
		token.IDENT:           p.parseIdentifier,
		token.IDENT_UPPER:     p.parseIdentifier,
		token.INT:             p.parseIntegerLiteral,
		token.FLOAT:           p.parseFloatLiteral,
		token.BIG_INT:         p.parseBigIntLiteral,
		token.STRING:          p.parseStringLiteral,
		token.TEMPLATE_STRING: p.parseTemplateString,
		token.VERUM:           p.parseBooleanLiteral,
		token.FALSUM:          p.parseBooleanLiteral,
		token.NIHIL:           p.parseNilLiteral,
		token.MINUS:           p.parseUnaryExpression,
		token.BANG:            p.parseUnaryExpression,
		token.LPAREN:          p.parseGroupedOrTuple,
		token.LBRACKET:        p.parseListOrSetLiteral,
		token.LBRACE:          p.parseMapLiteral,
		token.FUNCTIO:         p.parseFunctionLiteral,
		token.INCIPIET:        p.parseFunctionLiteral,
		token.ASYNCA:          p.parseFunctionLiteral,
		token.DISCERNE:        p.parseMatchExpr,
		token.ANTE:            p.parseWordRangeExpr,
		token.GENUS:           p.parseRecordLiteral,
	}
	return m
}

func (p *Parser) buildInfixFns() map[token.Type]infixParseFn {
	m := map[token.Type]infixParseFn{
		token.PLUS: p.parseBinaryExpression, token.MINUS: p.parseBinaryExpression,
		token.ASTERISK: p.parseBinaryExpression, token.SLASH: p.parseBinaryExpression,
		token.PERCENT: p.parseBinaryExpression, token.POWER: p.parseBinaryExpressionRightAssoc,
		token.EQ: p.parseBinaryExpression, token.NOT_EQ: p.parseBinaryExpression,
		token.EST: p.parseBinaryExpression,
		token.LT: p.parseBinaryExpression, token.GT: p.parseBinaryExpression,
		token.LTE: p.parseBinaryExpression, token.GTE: p.parseBinaryExpression,
		token.AND: p.parseBinaryExpression, token.ET: p.parseBinaryExpression,
		token.OR: p.parseBinaryExpression, token.AUT: p.parseBinaryExpression,
		token.NULL_COALESCE: p.parseBinaryExpression, token.VEL: p.parseBinaryExpression,
		token.AMPERSAND: p.parseBinaryExpression, token.PIPE: p.parseBinaryExpression,
		token.CARET: p.parseBinaryExpression,
		token.LSHIFT: p.parseBinaryExpression, token.RSHIFT: p.parseBinaryExpression,
		token.INTER: p.parseBinaryExpression, token.INTRA: p.parseBinaryExpression,
		token.DOT_DOT: p.parseRangeExpression,
		token.QUESTION: p.parseTernaryExpression,
		token.LPAREN:   p.parseCallExpression,
		token.DOT:      p.parseMemberExpression,
		token.LBRACKET: p.parseIndexExpression,
		token.OPTIONAL_CHAIN: p.parseChainExpression, token.OPTIONAL_INDEX: p.parseChainExpression,
		token.OPTIONAL_CALL: p.parseChainExpression, token.NONNULL_CHAIN: p.parseChainExpression,
		token.NONNULL_INDEX: p.parseChainExpression, token.NONNULL_CALL: p.parseChainExpression,
		token.TAMQUAM: p.parseCastExpression,
		token.ASSIGN:  p.parseAssignExpression,
		token.PLUS_ASSIGN: p.parseAssignExpression, token.MINUS_ASSIGN: p.parseAssignExpression,
		token.ASTERISK_ASSIGN: p.parseAssignExpression, token.SLASH_ASSIGN: p.parseAssignExpression,
		token.PERCENT_ASSIGN: p.parseAssignExpression, token.POWER_ASSIGN: p.parseAssignExpression,
	}
	return m
}

// parseExpression implements precedence climbing, grounded on
// funvibe-funxy/internal/parser/expressions_core.go's parseExpression.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxRecursionDepth {
		p.errorf(ErrBadExpression, p.cur.Span, "expression too deeply nested")
		p.skipToStatementBoundary()
		return nil
	}

	prefix, ok := p.prefixFns[p.cur.Type]
	if !ok {
		p.errorf(ErrBadExpression, p.cur.Span, "no expression can start with %s", p.cur.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.EOF) && precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peek.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) newID() ast.NodeId { return p.ids.Next() }

// ident builds an Identifier node for the current token. Every
// identifier gets its own NodeId so the resolver can key RefOf entries
// for definition and use sites alike.
func (p *Parser) ident() *ast.Identifier {
	return &ast.Identifier{Value: p.cur.Lexeme, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.cur.Span}}
}

func (p *Parser) parseIdentifier() ast.Expression {
	return p.ident()
}

// infixSpan spans an infix node from its left operand through the
// current token, honoring the span-monotonicity invariant (a parent's
// span contains every child's).
func (p *Parser) infixSpan(left ast.Expression, start token.Token) source.Span {
	sp := p.span(start)
	if left != nil {
		sp = source.Merge(left.Span(), sp)
	}
	return sp
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	v, err := strconv.ParseInt(p.cur.Lexeme, 0, 64)
	if err != nil {
		p.errorf(ErrBadExpression, p.cur.Span, "invalid integer literal %q", p.cur.Lexeme)
	}
	return &ast.IntegerLiteral{Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	v, _ := p.cur.Literal.(float64)
	return &ast.FloatLiteral{Value: v}
}

func (p *Parser) parseBigIntLiteral() ast.Expression {
	v := p.cur.BigInt()
	if v == nil {
		v = new(big.Int)
	}
	return &ast.BigIntLiteral{Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	v, _ := p.cur.Literal.(string)
	return &ast.StringLiteral{Value: v}
}

func (p *Parser) parseTemplateString() ast.Expression {
	raw, _ := p.cur.Literal.(string)
	return &ast.TemplateStringLiteral{Parts: p.interpolationParts(raw)}
}

// interpolationParts splits a template body on its brace-balanced
// "${...}" holes, sub-parsing each hole's source as an expression. The
// lexer leaves the body intact (spec.md §4.1: the content "may embed
// ${...} with brace-balanced interpolations"); elaboration happens here
// so the AST carries real sub-expressions.
func (p *Parser) interpolationParts(raw string) []ast.Expression {
	var parts []ast.Expression
	lit := func(text string) {
		if text != "" {
			parts = append(parts, &ast.StringLiteral{Value: text})
		}
	}
	for {
		open := strings.Index(raw, "${")
		if open < 0 {
			lit(raw)
			return parts
		}
		lit(raw[:open])
		depth := 1
		i := open + 2
		for i < len(raw) && depth > 0 {
			switch raw[i] {
			case '{':
				depth++
			case '}':
				depth--
			}
			i++
		}
		if depth > 0 {
			// unterminated hole: keep the tail as literal text
			lit(raw[open:])
			return parts
		}
		inner := raw[open+2 : i-1]
		if e := p.parseEmbedded(inner); e != nil {
			parts = append(parts, e)
		}
		raw = raw[i:]
	}
}

// parseEmbedded lexes and parses src as one standalone expression,
// sharing this parser's NodeId generator and diagnostics bag so the
// resulting nodes slot into the enclosing tree.
func (p *Parser) parseEmbedded(src string) ast.Expression {
	file := source.NewFile(p.file.ID, p.file.Path, src)
	toks, lexErrs := lexer.New(file).Tokenize()
	for _, e := range lexErrs {
		p.diags.Add(e)
	}
	sub := New(p.file, toks, p.diags)
	sub.ids = p.ids
	return sub.parseExpression(LOWEST)
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Value: p.curTokenIs(token.VERUM)}
}

func (p *Parser) parseNilLiteral() ast.Expression { return &ast.NilLiteral{} }

func (p *Parser) parseUnaryExpression() ast.Expression {
	start := p.cur
	op := ast.OpNeg
	if p.curTokenIs(token.BANG) {
		op = ast.OpNot
	}
	p.nextToken()
	operand := p.parseExpression(UNARY)
	return &ast.UnaryExpr{Op: op, Operand: operand, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	start := p.cur
	op := binaryOpFor(p.cur.Type)
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.BinaryExpr{Op: op, Left: left, Right: right, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.infixSpan(left, start)}}
}

// parseBinaryExpressionRightAssoc handles "^" (power), which associates
// right per spec.md §4.2's precedence table.
func (p *Parser) parseBinaryExpressionRightAssoc(left ast.Expression) ast.Expression {
	start := p.cur
	op := binaryOpFor(p.cur.Type)
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec - 1)
	return &ast.BinaryExpr{Op: op, Left: left, Right: right, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.infixSpan(left, start)}}
}

func binaryOpFor(t token.Type) ast.BinaryOp {
	switch t {
	case token.PLUS:
		return ast.OpAdd
	case token.MINUS:
		return ast.OpSub
	case token.ASTERISK:
		return ast.OpMul
	case token.SLASH:
		return ast.OpDiv
	case token.PERCENT:
		return ast.OpMod
	case token.POWER:
		return ast.OpPow
	case token.EQ, token.EST:
		return ast.OpEq
	case token.NOT_EQ:
		return ast.OpNotEq
	case token.LT:
		return ast.OpLt
	case token.GT:
		return ast.OpGt
	case token.LTE:
		return ast.OpLte
	case token.GTE:
		return ast.OpGte
	case token.AND, token.ET:
		return ast.OpAnd
	case token.OR, token.AUT:
		return ast.OpOr
	case token.NULL_COALESCE, token.VEL:
		return ast.OpNullCoalesce
	case token.AMPERSAND:
		return ast.OpBitAnd
	case token.PIPE:
		return ast.OpBitOr
	case token.CARET:
		return ast.OpBitXor
	case token.LSHIFT:
		return ast.OpShl
	case token.RSHIFT:
		return ast.OpShr
	case token.INTER, token.INTRA:
		return ast.OpContains
	}
	return ast.OpAdd
}

// parseTernaryExpression parses "COND ? THEN : ELSE".
func (p *Parser) parseTernaryExpression(cond ast.Expression) ast.Expression {
	start := p.cur
	p.nextToken()
	then := p.parseExpression(LOWEST)
	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.nextToken()
	els := p.parseExpression(TERNARY)
	return &ast.TernaryExpr{Cond: cond, Then: then, Else: els, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.infixSpan(cond, start)}}
}

// parseRangeExpression handles symbolic "START..END".
func (p *Parser) parseRangeExpression(left ast.Expression) ast.Expression {
	start := p.cur
	p.nextToken()
	end := p.parseExpression(RANGE)
	return &ast.RangeExpr{Start: left, End: end, Inclusive: false, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.infixSpan(left, start)}}
}

// parseWordRangeExpr handles the "ante START usque END per STEP" word
// form named in spec.md §4.2.
func (p *Parser) parseWordRangeExpr() ast.Expression {
	start := p.cur
	p.nextToken()
	rs := p.parseExpression(LOWEST)
	if !p.expectPeek(token.USQUE) {
		return nil
	}
	p.nextToken()
	re := p.parseExpression(LOWEST)
	var step ast.Expression
	if p.peekTokenIs(token.PER) {
		p.nextToken()
		p.nextToken()
		step = p.parseExpression(LOWEST)
	}
	return &ast.RangeExpr{Start: rs, End: re, Step: step, Inclusive: true, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
}

func (p *Parser) parseArgList(end token.Type) []ast.Arg {
	var args []ast.Arg
	if p.peekTokenIs(end) {
		p.nextToken()
		return args
	}
	p.nextToken()
	args = append(args, p.parseArg())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		if p.curTokenIs(end) {
			break
		}
		args = append(args, p.parseArg())
	}
	if !p.expectPeek(end) {
		return args
	}
	return args
}

func (p *Parser) parseArg() ast.Arg {
	if p.curTokenIs(token.ELLIPSIS) {
		p.nextToken()
		return ast.Arg{Value: p.parseExpression(LOWEST), Spread: true}
	}
	if (p.curTokenIs(token.IDENT) || p.curTokenIs(token.IDENT_UPPER)) && p.peekTokenIs(token.COLON) {
		name := p.cur.Lexeme
		p.nextToken()
		p.nextToken()
		return ast.Arg{Name: name, Value: p.parseExpression(LOWEST)}
	}
	return ast.Arg{Value: p.parseExpression(LOWEST)}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	start := p.cur
	args := p.parseArgList(token.RPAREN)
	return &ast.CallExpr{Callee: callee, Args: args, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.infixSpan(callee, start)}}
}

func (p *Parser) parseMemberExpression(obj ast.Expression) ast.Expression {
	start := p.cur
	if !p.peekTokenIs(token.IDENT) && !p.peekTokenIs(token.IDENT_UPPER) {
		p.peekError(token.IDENT)
		return nil
	}
	p.nextToken()
	return &ast.MemberExpr{Object: obj, Name: p.cur.Lexeme, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.infixSpan(obj, start)}}
}

func (p *Parser) parseIndexExpression(obj ast.Expression) ast.Expression {
	start := p.cur
	p.nextToken()
	idx := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.IndexExpr{Object: obj, Index: idx, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.infixSpan(obj, start)}}
}

// parseChainExpression handles one link of an optional/nonnull postfix
// chain (spec.md §4.2), keeping each link as its own ChainExpr node so
// emitters can reproduce the operator verbatim (ast_exprs.go ChainExpr doc).
func (p *Parser) parseChainExpression(obj ast.Expression) ast.Expression {
	start := p.cur
	kind := chainKindFor(p.cur.Type)
	switch kind {
	case ast.ChainOptionalMember, ast.ChainNonNullMember:
		if !p.peekTokenIs(token.IDENT) && !p.peekTokenIs(token.IDENT_UPPER) {
			p.peekError(token.IDENT)
			return nil
		}
		p.nextToken()
		return &ast.ChainExpr{Kind: kind, Object: obj, Name: p.cur.Lexeme, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.infixSpan(obj, start)}}
	case ast.ChainOptionalIndex, ast.ChainNonNullIndex:
		p.nextToken()
		idx := p.parseExpression(LOWEST)
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		return &ast.ChainExpr{Kind: kind, Object: obj, Index: idx, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.infixSpan(obj, start)}}
	default: // call
		args := p.parseArgList(token.RPAREN)
		return &ast.ChainExpr{Kind: kind, Object: obj, Args: args, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.infixSpan(obj, start)}}
	}
}

func chainKindFor(t token.Type) ast.ChainKind {
	switch t {
	case token.OPTIONAL_CHAIN:
		return ast.ChainOptionalMember
	case token.OPTIONAL_INDEX:
		return ast.ChainOptionalIndex
	case token.OPTIONAL_CALL:
		return ast.ChainOptionalCall
	case token.NONNULL_CHAIN:
		return ast.ChainNonNullMember
	case token.NONNULL_INDEX:
		return ast.ChainNonNullIndex
	default:
		return ast.ChainNonNullCall
	}
}

func (p *Parser) parseCastExpression(value ast.Expression) ast.Expression {
	start := p.cur
	p.nextToken()
	target := p.parseType()
	e := &ast.CastExpr{Value: value, Target: target, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.infixSpan(value, start)}}
	if p.peekTokenIs(token.VEL) {
		p.nextToken()
		p.nextToken()
		e.Fallback = p.parseExpression(NULLCOALESCE)
	}
	return e
}

func (p *Parser) parseAssignExpression(target ast.Expression) ast.Expression {
	start := p.cur
	op := assignOpFor(p.cur.Type)
	p.nextToken()
	value := p.parseExpression(LOWEST)
	return &ast.AssignExpr{Op: op, Target: target, Value: value, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.infixSpan(target, start)}}
}

func assignOpFor(t token.Type) ast.AssignOp {
	switch t {
	case token.PLUS_ASSIGN:
		return ast.AssignAdd
	case token.MINUS_ASSIGN:
		return ast.AssignSub
	case token.ASTERISK_ASSIGN:
		return ast.AssignMul
	case token.SLASH_ASSIGN:
		return ast.AssignDiv
	case token.PERCENT_ASSIGN:
		return ast.AssignMod
	case token.POWER_ASSIGN:
		return ast.AssignPow
	default:
		return ast.AssignPlain
	}
}

// parseGroupedOrTuple handles "(EXPR)" and "(A, B, ...)" tuple literals,
// grounded on the teacher's parseGroupedExpression.
func (p *Parser) parseGroupedOrTuple() ast.Expression {
	start := p.cur
	p.nextToken()
	if p.curTokenIs(token.RPAREN) {
		return &ast.TupleLiteral{Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
	}
	first := p.parseExpression(LOWEST)
	if p.peekTokenIs(token.COMMA) {
		elems := []ast.Expression{first}
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if p.peekTokenIs(token.RPAREN) {
				break
			}
			p.nextToken()
			elems = append(elems, p.parseExpression(LOWEST))
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return &ast.TupleLiteral{Elements: elems, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return first
}

// parseListOrSetLiteral parses a "[a, b]" literal and always builds a
// ListLiteral; no parser path builds an ast.SetLiteral.
func (p *Parser) parseListOrSetLiteral() ast.Expression {
	start := p.cur
	var elems []ast.Expression
	if !p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		elems = append(elems, p.parseExpression(LOWEST))
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if p.peekTokenIs(token.RBRACKET) {
				break
			}
			p.nextToken()
			elems = append(elems, p.parseExpression(LOWEST))
		}
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.ListLiteral{Elements: elems, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
}

func (p *Parser) parseMapLiteral() ast.Expression {
	start := p.cur
	var entries []ast.MapEntry
	if !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		entries = append(entries, p.parseMapEntry())
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if p.peekTokenIs(token.RBRACE) {
				break
			}
			p.nextToken()
			entries = append(entries, p.parseMapEntry())
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.MapLiteral{Entries: entries, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
}

func (p *Parser) parseMapEntry() ast.MapEntry {
	key := p.parseExpression(LOWEST)
	if !p.expectPeek(token.COLON) {
		return ast.MapEntry{Key: key}
	}
	p.nextToken()
	val := p.parseExpression(LOWEST)
	return ast.MapEntry{Key: key, Value: val}
}

// parseRecordLiteral handles "genus Name { field: value, ... }" used in
// expression position to construct a struct value.
func (p *Parser) parseRecordLiteral() ast.Expression {
	start := p.cur
	if !p.expectPeek(token.IDENT_UPPER) {
		return nil
	}
	typeName := p.ident()
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	fields := map[string]ast.Expression{}
	var order []string
	var spread ast.Expression
	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		if p.curTokenIs(token.ELLIPSIS) {
			p.nextToken()
			spread = p.parseExpression(LOWEST)
			continue
		}
		name := p.cur.Lexeme
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		fields[name] = p.parseExpression(LOWEST)
		order = append(order, name)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.RecordLiteral{TypeName: typeName, Fields: fields, FieldOrder: order, Spread: spread, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
}

// parseFunctionLiteral handles an anonymous closure; the teacher's
// FunctionLiteral carries no name, matching ast.FunctionLiteral.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	start := p.cur
	if p.curTokenIs(token.INCIPIET) || p.curTokenIs(token.ASYNCA) {
		if !p.expectPeek(token.FUNCTIO) {
			return nil
		}
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParamList()
	var ret ast.TypeExpr
	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		ret = p.parseType()
	}
	body := p.parseBodySugar()
	return &ast.FunctionLiteral{Params: params, ReturnType: ret, Body: body, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
}

// parseMatchExpr handles "discerne SUBJ, SUBJ { casu PAT, PAT { ... } elige { ... } }".
func (p *Parser) parseMatchExpr() ast.Expression {
	start := p.cur
	p.nextToken()
	subjects := []ast.Expression{p.parseExpression(LOWEST)}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		subjects = append(subjects, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	m := &ast.MatchExpr{Subjects: subjects, Base: ast.Base{NodeID: p.newID()}}
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if p.curTokenIs(token.NEWLINE) {
			continue
		}
		if p.curTokenIs(token.ELIGE) {
			m.DefaultArm = p.parseBraceBlock()
			continue
		}
		if p.curTokenIs(token.CASU) {
			m.Arms = append(m.Arms, p.parseMatchArm())
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	m.NodeSpan = p.span(start)
	return m
}

func (p *Parser) parseMatchArm() *ast.MatchArm {
	p.nextToken()
	pats := []ast.Pattern{p.parsePattern()}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		pats = append(pats, p.parsePattern())
	}
	var guard ast.Expression
	if p.peekTokenIs(token.SI) {
		p.nextToken()
		p.nextToken()
		guard = p.parseExpression(LOWEST)
	}
	body := p.parseBodySugar()
	return &ast.MatchArm{Patterns: pats, Guard: guard, Body: body}
}
