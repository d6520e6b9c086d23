package parser

import (
	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/token"
)

// parseType parses one type expression (spec.md §3's TypeExpr union):
// a named type with optional generic args, function type, the "si T"
// nullable prefix, the "de T"/"in T" ownership prefixes, and the "[]"
// postfix array sugar, grounded on the precedence climb used for
// NamedType/FuncType in the teacher's parser/types.go parseNonUnionType.
func (p *Parser) parseType() ast.TypeExpr {
	start := p.cur
	var t ast.TypeExpr
	switch {
	case p.curTokenIs(token.SI):
		p.nextToken()
		elem := p.parseType()
		t = &ast.OptionType{Elem: elem, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
	case p.curTokenIs(token.DE):
		p.nextToken()
		elem := p.parseType()
		t = &ast.RefType{Mutable: false, Elem: elem, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
	case p.curTokenIs(token.IN):
		p.nextToken()
		elem := p.parseType()
		t = &ast.RefType{Mutable: true, Elem: elem, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
	case p.curTokenIs(token.LPAREN):
		t = p.parseFuncType()
	default:
		t = p.parseNamedType()
	}
	if t == nil {
		return nil
	}
	for p.peekTokenIs(token.LBRACKET) {
		p.nextToken()
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		t = &ast.ArrayType{Elem: t, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
	}
	return t
}

func (p *Parser) parseNamedType() ast.TypeExpr {
	start := p.cur
	name := p.cur.Lexeme
	nt := &ast.NamedType{Name: name}
	if p.peekTokenIs(token.LT) {
		p.nextToken()
		p.nextToken()
		nt.Args = append(nt.Args, p.parseType())
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			nt.Args = append(nt.Args, p.parseType())
		}
		if !p.expectPeek(token.GT) {
			return nil
		}
	}
	nt.NodeID, nt.NodeSpan = p.newID(), p.span(start)
	return nt
}

// parseFuncType parses "(T, U) -> R".
func (p *Parser) parseFuncType() ast.TypeExpr {
	start := p.cur
	p.nextToken() // consume '('
	var params []ast.TypeExpr
	if !p.curTokenIs(token.RPAREN) {
		params = append(params, p.parseType())
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			params = append(params, p.parseType())
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
	}
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	ret := p.parseType()
	return &ast.FuncType{Params: params, Return: ret, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
}
