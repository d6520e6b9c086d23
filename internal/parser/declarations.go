package parser

import (
	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/token"
)

// ParseProgram parses the whole token slice into an *ast.Program,
// grounded on funvibe-funxy/internal/parser/processor.go's
// ParserProcessor.Process (here split from the pipeline wiring, which
// lives in internal/pipeline instead).
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{Base: ast.Base{NodeID: p.newID()}}
	start := p.cur

	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
	if p.curTokenIs(token.ORDO) {
		prog.Package = p.parsePackageDecl()
		p.nextToken()
	}
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
	for p.curTokenIs(token.IMPORTA) {
		if imp := p.parseImportDecl(); imp != nil {
			prog.Imports = append(prog.Imports, imp)
		}
		p.nextToken()
		for p.curTokenIs(token.NEWLINE) {
			p.nextToken()
		}
	}

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}
		s := p.parseStatement()
		if s != nil {
			prog.Statements = append(prog.Statements, s)
		} else {
			p.skipToStatementBoundary()
		}
		p.nextToken()
	}

	prog.NodeSpan = p.span(start)
	return prog
}

// parsePackageDecl parses "ordo Name exporta a, b" or "ordo Name exporta *".
func (p *Parser) parsePackageDecl() *ast.PackageDecl {
	start := p.cur
	if !p.expectPeek(token.IDENT) && !p.expectPeek(token.IDENT_UPPER) {
		return nil
	}
	d := &ast.PackageDecl{Name: p.ident()}
	d.NodeID, d.NodeSpan = p.newID(), p.span(start)
	return d
}

// parseImportDecl parses "importa \"path\"" or "importa \"path\" ut alias".
func (p *Parser) parseImportDecl() *ast.ImportDecl {
	start := p.cur
	if !p.expectPeek(token.STRING) {
		return nil
	}
	path := &ast.StringLiteral{Value: p.cur.Lexeme}
	d := &ast.ImportDecl{Path: path}
	switch {
	case p.peekTokenIs(token.UT):
		p.nextToken()
		if p.expectPeek(token.IDENT) {
			d.Alias = p.ident()
		}
	case p.peekTokenIs(token.PRO):
		// named-symbol list: importa "geometria" pro punctum, linea
		p.nextToken()
		for {
			if !p.expectPeek(token.IDENT) && !p.curTokenIs(token.IDENT) {
				break
			}
			d.Symbols = append(d.Symbols, p.ident())
			if !p.peekTokenIs(token.COMMA) {
				break
			}
			p.nextToken()
		}
	}
	d.NodeID, d.NodeSpan = p.newID(), p.span(start)
	return d
}

func (p *Parser) parseParamList() []*ast.Param {
	var params []*ast.Param
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.parseParam())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseParam())
	}
	p.expectPeek(token.RPAREN)
	return params
}

func (p *Parser) parseParam() *ast.Param {
	variadic := false
	if p.curTokenIs(token.ELLIPSIS) {
		variadic = true
		p.nextToken()
	}
	param := &ast.Param{Name: p.ident(), Variadic: variadic}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		param.Type = p.parseType()
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		param.Default = p.parseExpression(LOWEST)
	}
	return param
}

func (p *Parser) parseFunctionDecl() ast.Statement {
	start := p.cur
	async := p.curTokenIs(token.INCIPIET) || p.curTokenIs(token.ASYNCA)
	if async {
		if !p.expectPeek(token.FUNCTIO) {
			return nil
		}
	}
	if p.peekTokenIs(token.IDENT) || p.peekTokenIs(token.IDENT_UPPER) {
		p.nextToken()
	} else {
		p.peekError(token.IDENT)
		return nil
	}
	d := &ast.FunctionDecl{Name: p.ident(), Async: async}
	if p.peekTokenIs(token.LT) {
		d.TypeParams = p.parseTypeParamList()
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	d.Params = p.parseParamList()
	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		d.ReturnType = p.parseType()
	}
	d.Body = p.parseBodySugar()
	d.NodeID, d.NodeSpan = p.newID(), p.span(start)
	return d
}

func (p *Parser) parseTypeParamList() []*ast.TypeParam {
	p.nextToken() // consume '<'
	var params []*ast.TypeParam
	p.nextToken()
	params = append(params, p.parseTypeParam())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseTypeParam())
	}
	p.expectPeek(token.GT)
	return params
}

func (p *Parser) parseTypeParam() *ast.TypeParam {
	tp := &ast.TypeParam{Name: p.cur.Lexeme}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		tp.Constraints = append(tp.Constraints, p.cur.Lexeme)
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			tp.Constraints = append(tp.Constraints, p.cur.Lexeme)
		}
	}
	return tp
}

func (p *Parser) parseFieldList(end token.Type) []*ast.Field {
	var fields []*ast.Field
	for !p.peekTokenIs(end) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.COMMA) {
			continue
		}
		f := &ast.Field{Name: p.ident()}
		if p.expectPeek(token.COLON) {
			p.nextToken()
			f.Type = p.parseType()
		}
		fields = append(fields, f)
	}
	return fields
}

func (p *Parser) parseStructDecl() ast.Statement {
	start := p.cur
	if !p.expectPeek(token.IDENT_UPPER) {
		return nil
	}
	d := &ast.StructDecl{Name: p.ident()}
	if p.peekTokenIs(token.LT) {
		d.TypeParams = p.parseTypeParamList()
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		switch {
		case p.curTokenIs(token.NEWLINE), p.curTokenIs(token.COMMA):
			continue
		case p.curTokenIs(token.FUNCTIO):
			if m, ok := p.parseFunctionDecl().(*ast.FunctionDecl); ok {
				d.Methods = append(d.Methods, m)
			}
		default:
			f := &ast.Field{Name: p.ident()}
			if p.expectPeek(token.COLON) {
				p.nextToken()
				f.Type = p.parseType()
			}
			d.Fields = append(d.Fields, f)
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	d.NodeID, d.NodeSpan = p.newID(), p.span(start)
	return d
}

// parseEnumDecl parses "discretio Name { Variant, Variant(field: T), ... }".
func (p *Parser) parseEnumDecl() ast.Statement {
	start := p.cur
	if !p.expectPeek(token.IDENT_UPPER) {
		return nil
	}
	d := &ast.EnumDecl{Name: p.ident()}
	if p.peekTokenIs(token.LT) {
		d.TypeParams = p.parseTypeParamList()
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.COMMA) {
			continue
		}
		v := &ast.Variant{Name: p.ident()}
		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			v.Fields = p.parseFieldList(token.RPAREN)
			p.expectPeek(token.RPAREN)
		}
		d.Variants = append(d.Variants, v)
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	d.NodeID, d.NodeSpan = p.newID(), p.span(start)
	return d
}

// parseInterfaceDecl parses "pactum Name { functio m(p: T) -> R ... }".
func (p *Parser) parseInterfaceDecl() ast.Statement {
	start := p.cur
	if !p.expectPeek(token.IDENT_UPPER) {
		return nil
	}
	d := &ast.InterfaceDecl{Name: p.ident()}
	if p.peekTokenIs(token.LT) {
		d.TypeParams = p.parseTypeParamList()
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if p.curTokenIs(token.NEWLINE) {
			continue
		}
		if !p.expectPeek(token.FUNCTIO) {
			continue
		}
		if !p.expectPeek(token.IDENT) {
			continue
		}
		m := &ast.InterfaceMethod{Name: p.ident()}
		if p.expectPeek(token.LPAREN) {
			m.Params = p.parseParamList()
		}
		if p.peekTokenIs(token.ARROW) {
			p.nextToken()
			p.nextToken()
			m.ReturnType = p.parseType()
		}
		d.Methods = append(d.Methods, m)
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	d.NodeID, d.NodeSpan = p.newID(), p.span(start)
	return d
}

// parseTypeAliasDecl parses "typus Name = TYPE".
func (p *Parser) parseTypeAliasDecl() ast.Statement {
	start := p.cur
	if !p.expectPeek(token.IDENT_UPPER) {
		return nil
	}
	d := &ast.TypeAliasDecl{Name: p.ident()}
	if p.peekTokenIs(token.LT) {
		d.TypeParams = p.parseTypeParamList()
	}
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	d.Underlying = p.parseType()
	d.NodeID, d.NodeSpan = p.newID(), p.span(start)
	return d
}
