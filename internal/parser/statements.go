package parser

import (
	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/token"
)

// parseStatement dispatches on the leading token, grounded on
// funvibe-funxy/internal/parser/statements.go's top-level switch.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.FIXUM, token.FIGENDUM, token.VARIA, token.VARIANDUM:
		return p.parseVarDecl()
	case token.FUNCTIO, token.INCIPIET, token.ASYNCA:
		return p.parseFunctionDecl()
	case token.GENUS:
		return p.parseStructDecl()
	case token.DISCRETIO:
		return p.parseEnumDecl()
	case token.PACTUM:
		return p.parseInterfaceDecl()
	case token.TYPUS:
		return p.parseTypeAliasDecl()
	case token.REDDE:
		return p.parseReturnStmt()
	case token.DISCEDE:
		s := &ast.BreakStmt{Base: ast.Base{NodeID: p.newID(), NodeSpan: p.cur.Span}}
		return s
	case token.PERGE:
		s := &ast.ContinueStmt{Base: ast.Base{NodeID: p.newID(), NodeSpan: p.cur.Span}}
		return s
	case token.IACIT:
		return p.parseThrowStmt(false)
	case token.MORITOR:
		return p.parseThrowStmt(true)
	case token.SI:
		return p.parseIfStmt()
	case token.DUM:
		return p.parseWhileStmt()
	case token.PRO:
		return p.parseForInStmt()
	case token.DISCERNE:
		expr := p.parseMatchExpr()
		if m, ok := expr.(*ast.MatchExpr); ok {
			return m
		}
		return nil
	case token.EXORDIUM:
		return p.parseEntryDecl()
	case token.SECTION:
		return p.parseDirectiveStmt()
	case token.LBRACE:
		return p.parseBraceBlock()
	default:
		start := p.cur
		e := p.parseExpression(LOWEST)
		if e == nil {
			return nil
		}
		return &ast.ExprStmt{Expr: e, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
	}
}

// parseEntryDecl parses the "exordium { ... }" program entry block; it
// takes no "asynca" prefix.
func (p *Parser) parseEntryDecl() ast.Statement {
	start := p.cur
	d := &ast.EntryDecl{}
	d.Body = p.parseBodySugar()
	d.NodeID, d.NodeSpan = p.newID(), p.span(start)
	return d
}

// parseBraceBlock parses "{ stmt* }", skipping blank lines between
// statements the way the lexer's NEWLINE tokens separate them.
func (p *Parser) parseBraceBlock() *ast.BlockStmt {
	start := p.cur
	if !p.curTokenIs(token.LBRACE) {
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
	}
	block := &ast.BlockStmt{}
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if p.curTokenIs(token.NEWLINE) {
			continue
		}
		s := p.parseStatement()
		if s != nil {
			block.Statements = append(block.Statements, s)
		} else {
			p.skipToStatementBoundary()
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	block.NodeID, block.NodeSpan = p.newID(), p.span(start)
	return block
}

// parseBodySugar normalizes a braced block, an "ergo STMT" one-shot body,
// a "reddit EXPR" inline-return body, or "tacet" (no-op) into a
// canonical *ast.BlockStmt, per spec.md §4.2's body-sugar rule.
func (p *Parser) parseBodySugar() *ast.BlockStmt {
	start := p.cur
	switch {
	case p.peekTokenIs(token.LBRACE):
		p.nextToken()
		return p.parseBraceBlock()
	case p.peekTokenIs(token.ERGO):
		p.nextToken()
		p.nextToken()
		s := p.parseStatement()
		blk := &ast.BlockStmt{Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
		if s != nil {
			blk.Statements = []ast.Statement{s}
		}
		return blk
	case p.peekTokenIs(token.REDDIT):
		p.nextToken()
		p.nextToken()
		e := p.parseExpression(LOWEST)
		ret := &ast.ReturnStmt{Value: e, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
		return &ast.BlockStmt{Statements: []ast.Statement{ret}, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
	case p.peekTokenIs(token.TACET):
		p.nextToken()
		return &ast.BlockStmt{Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
	default:
		p.peekError(token.LBRACE)
		return &ast.BlockStmt{Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
	}
}

func (p *Parser) parseVarDecl() ast.Statement {
	start := p.cur
	mutable := p.curTokenIs(token.VARIA) || p.curTokenIs(token.VARIANDUM)
	d := &ast.VarDecl{Mutable: mutable}
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		d.Pattern = p.parseTuplePattern()
	} else {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		d.Name = p.ident()
	}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		d.TypeAnnotation = p.parseType()
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		d.Value = p.parseExpression(LOWEST)
	}
	d.NodeID, d.NodeSpan = p.newID(), p.span(start)
	return d
}

func (p *Parser) parseReturnStmt() ast.Statement {
	start := p.cur
	s := &ast.ReturnStmt{}
	if !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		s.Value = p.parseExpression(LOWEST)
	}
	s.NodeID, s.NodeSpan = p.newID(), p.span(start)
	return s
}

func (p *Parser) parseThrowStmt(fatal bool) ast.Statement {
	start := p.cur
	p.nextToken()
	v := p.parseExpression(LOWEST)
	return &ast.ThrowStmt{Value: v, Fatal: fatal, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
}

// parseIfStmt desugars nothing itself; the lowerer normalizes
// "si...secus si...secus" chains into nested IfStmts (spec.md §4.4),
// so the parser simply recurses whenever "secus" is followed by "si".
func (p *Parser) parseIfStmt() ast.Statement {
	start := p.cur
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	then := p.parseBodySugarOrBlockPeek()
	s := &ast.IfStmt{Cond: cond, Then: then}
	if p.peekTokenIs(token.SECUS) {
		p.nextToken()
		if p.peekTokenIs(token.SI) {
			p.nextToken()
			s.Else = p.parseIfStmt()
		} else {
			s.Else = p.parseBodySugarOrBlockPeek()
		}
	}
	s.NodeID, s.NodeSpan = p.newID(), p.span(start)
	return s
}

// parseBodySugarOrBlockPeek expects the peek token to start a body-sugar
// form (matches parseBodySugar's precondition that cur is the token
// just before the body).
func (p *Parser) parseBodySugarOrBlockPeek() *ast.BlockStmt {
	return p.parseBodySugar()
}

func (p *Parser) parseWhileStmt() ast.Statement {
	start := p.cur
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	body := p.parseBodySugar()
	return &ast.WhileStmt{Cond: cond, Body: body, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
}

// parseForInStmt handles "pro NAME in ITER { ... }" and the "pro a, b in
// ITER { ... }" tuple-destructure sugar from spec.md §4.2.
func (p *Parser) parseForInStmt() ast.Statement {
	start := p.cur
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	names := []string{p.cur.Lexeme}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		names = append(names, p.cur.Lexeme)
	}
	var binding ast.Pattern
	if len(names) == 1 {
		binding = &ast.IdentPattern{Name: names[0], Base: ast.Base{NodeID: p.newID(), NodeSpan: p.cur.Span}}
	} else {
		binding = &ast.IdentPattern{Name: names[0], Destruct: names, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.cur.Span}}
	}
	if !p.expectPeek(token.IN) {
		return nil
	}
	p.nextToken()
	iter := p.parseExpression(LOWEST)
	body := p.parseBodySugar()
	return &ast.ForInStmt{Binding: binding, Iter: iter, Body: body, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
}

// parseDirectiveStmt parses "§directive name".
func (p *Parser) parseDirectiveStmt() ast.Statement {
	start := p.cur
	if !p.expectPeek(token.DIRECTIVE) {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.DirectiveStmt{Name: p.cur.Lexeme, Base: ast.Base{NodeID: p.newID(), NodeSpan: p.span(start)}}
}
