package parser

import (
	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/token"
)

// parsePattern parses one match-arm or binding pattern (spec.md §3's
// Pattern tagged union): wildcard "_", a literal, an enum-variant path
// with optional field binds, a tuple destructure, or a plain identifier
// bind with an optional "ut alias". The "pro a, b" destructure is built
// by parseForInStmt, not here.
func (p *Parser) parsePattern() ast.Pattern {
	start := p.cur
	switch {
	case p.curTokenIs(token.IDENT) && p.cur.Lexeme == "_":
		return &ast.WildcardPattern{Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
	case p.curTokenIs(token.INT), p.curTokenIs(token.FLOAT), p.curTokenIs(token.STRING),
		p.curTokenIs(token.VERUM), p.curTokenIs(token.FALSUM),
		p.curTokenIs(token.NIHIL), p.curTokenIs(token.MINUS):
		val := p.parseExpression(LOWEST)
		return &ast.LiteralPattern{Value: val, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
	case p.curTokenIs(token.LPAREN):
		return p.parseTuplePattern()
	case p.curTokenIs(token.IDENT_UPPER):
		return p.parsePathPattern()
	case p.curTokenIs(token.IDENT):
		return p.parseIdentPattern()
	default:
		p.errorf(ErrBadPattern, p.cur.Span, "could not parse %s as a pattern", p.cur.Type)
		return &ast.WildcardPattern{Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
	}
}

func (p *Parser) parseIdentPattern() ast.Pattern {
	start := p.cur
	ip := &ast.IdentPattern{Name: p.cur.Lexeme}
	if p.peekTokenIs(token.UT) {
		p.nextToken()
		if p.expectPeek(token.IDENT) {
			ip.Alias = p.cur.Lexeme
		}
	}
	ip.NodeID, ip.NodeSpan = p.newID(), p.span(start)
	return ip
}

// parsePathPattern parses "Enum.Variant", "Enum.Variant(field, field)", or
// a bare "Variant" when the enum name is left for the checker to resolve.
func (p *Parser) parsePathPattern() ast.Pattern {
	start := p.cur
	pp := &ast.PathPattern{}
	first := p.cur.Lexeme
	if p.peekTokenIs(token.DOT) {
		p.nextToken() // consume enum name token (cur now on Enum)
		p.nextToken() // consume '.'
		pp.Enum = first
		pp.Variant = p.cur.Lexeme
	} else {
		pp.Variant = first
	}
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		p.nextToken()
		if !p.curTokenIs(token.RPAREN) {
			pp.Fields = append(pp.Fields, p.parsePattern())
			for p.peekTokenIs(token.COMMA) {
				p.nextToken()
				p.nextToken()
				pp.Fields = append(pp.Fields, p.parsePattern())
			}
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
	}
	pp.NodeID, pp.NodeSpan = p.newID(), p.span(start)
	return pp
}

func (p *Parser) parseTuplePattern() ast.Pattern {
	start := p.cur
	p.nextToken()
	var elems []ast.Pattern
	if !p.curTokenIs(token.RPAREN) {
		elems = append(elems, p.parsePattern())
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			elems = append(elems, p.parsePattern())
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.TuplePattern{Elements: elems, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
}
