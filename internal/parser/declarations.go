package parser

import (
	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/lexer"
)

// parseConstDecl parses `const Name [: Type] = Value;`.
func (p *Parser) parseConstDecl() *ast.ConstDecl {
	pos := p.cur.current().Pos
	p.cur.advance() // 'const'
	d := &ast.ConstDecl{P: pos, Name: p.expectIdent()}

	if p.at(lexer.COLON) {
		p.cur.advance()
		d.Type = p.parseTypeExpr()
	}

	if _, ok := p.expect(lexer.EQ); ok {
		d.Value = p.parseExpr(precLowest)
	}
	if _, ok := p.expect(lexer.SEMICOLON); !ok {
		p.synchronize(declarationStarters)
	}
	return d
}

// parseTypeDecl parses `type Name = TypeExpr;`.
func (p *Parser) parseTypeDecl() *ast.TypeDecl {
	pos := p.cur.current().Pos
	p.cur.advance() // 'type'
	d := &ast.TypeDecl{P: pos, Name: p.expectIdent()}

	if _, ok := p.expect(lexer.EQ); ok {
		d.Type = p.parseTypeExpr()
	}
	if _, ok := p.expect(lexer.SEMICOLON); !ok {
		p.synchronize(declarationStarters)
	}
	return d
}

// parseVarDecl parses `var Name : Type;`.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	pos := p.cur.current().Pos
	p.cur.advance() // 'var'
	d := &ast.VarDecl{P: pos, Name: p.expectIdent()}

	if _, ok := p.expect(lexer.COLON); ok {
		d.Type = p.parseTypeExpr()
	}
	if _, ok := p.expect(lexer.SEMICOLON); !ok {
		p.synchronize(declarationStarters)
	}
	return d
}

// parseRoutineDecl parses a free routine or a method, including its
// optional `external`/`deprecated` modifiers, parameter list, return type,
// and either a body or a bare forward/external declaration.
func (p *Parser) parseRoutineDecl() *ast.RoutineDecl {
	d := &ast.RoutineDecl{}

	for {
		switch p.cur.current().Type {
		case lexer.EXTERNAL:
			d.External = true
			p.cur.advance()
			if p.at(lexer.STRING) {
				d.ExternalName = p.cur.current().Literal
				p.cur.advance()
			}
		case lexer.DEPRECATED:
			d.Deprecated = true
			p.cur.advance()
			if p.at(lexer.STRING) {
				d.DeprecatedMessage = p.cur.current().Literal
				p.cur.advance()
			}
		default:
			goto modifiersDone
		}
	}
modifiersDone:

	d.P = p.cur.current().Pos
	d.IsMethod = p.at(lexer.METHOD)
	if d.IsMethod {
		p.cur.advance()
	} else {
		p.expect(lexer.ROUTINE)
	}
	d.Name = p.expectIdent()

	if p.at(lexer.LPAREN) {
		d.Params, d.Variadic = p.parseParamList()
	}
	if d.IsMethod && len(d.Params) > 0 && d.Params[0].Name.Name == "Self" {
		if nt, ok := d.Params[0].Type.(*ast.NamedType); ok {
			d.ReceiverType = &nt.Name
		}
	}

	if p.at(lexer.COLON) {
		p.cur.advance()
		name := p.expectIdent()
		d.ReturnType = &name
	}

	if _, ok := p.expect(lexer.SEMICOLON); !ok {
		p.synchronize(declarationStarters, []lexer.TokenType{lexer.BEGIN})
	}

	if d.External || (!p.at(lexer.BEGIN) && !p.at(lexer.CONST) && !p.at(lexer.VAR)) {
		return d
	}

	for p.at(lexer.CONST) {
		d.LocalConsts = append(d.LocalConsts, p.parseConstDecl())
	}
	for p.at(lexer.VAR) {
		d.LocalVars = append(d.LocalVars, p.parseVarDecl())
	}
	if p.at(lexer.BEGIN) {
		d.Body = p.parseBlock()
		d.EndLine = d.Body.EndLine
		if _, ok := p.expect(lexer.SEMICOLON); !ok {
			p.synchronize(declarationStarters)
		}
	}
	return d
}

// parseParamList parses `(Name1, Name2: T1; var Name3: T2, ...)`, returning
// the flattened parameter list and whether the list ends in `...` variadic.
func (p *Parser) parseParamList() ([]*ast.Param, bool) {
	p.cur.advance() // '('
	var params []*ast.Param
	variadic := false

	for !p.at(lexer.RPAREN) && !p.at(lexer.EOF) {
		if p.at(lexer.ELLIPSIS) {
			variadic = true
			p.cur.advance()
			break
		}

		modifier := ast.ParamByValue
		switch p.cur.current().Type {
		case lexer.VAR:
			modifier = ast.ParamVar
			p.cur.advance()
		case lexer.CONST:
			modifier = ast.ParamConst
			p.cur.advance()
		}

		var names []ast.NamePos
		names = append(names, p.expectIdent())
		for p.at(lexer.COMMA) {
			p.cur.advance()
			names = append(names, p.expectIdent())
		}

		var typ ast.TypeExpr
		if _, ok := p.expect(lexer.COLON); ok {
			typ = p.parseTypeExpr()
		}

		for _, n := range names {
			params = append(params, &ast.Param{P: n.P, Name: n, Type: typ, Modifier: modifier})
		}

		if p.at(lexer.SEMICOLON) {
			p.cur.advance()
			continue
		}
		break
	}

	p.expect(lexer.RPAREN)
	return params, variadic
}

// parseTestDecl parses a trailing `test 'name' begin ... end;` block.
func (p *Parser) parseTestDecl() *ast.TestDecl {
	pos := p.cur.current().Pos
	p.cur.advance() // 'test'
	d := &ast.TestDecl{P: pos}

	if p.at(lexer.STRING) {
		d.Name = ast.NamePos{Name: p.cur.current().Literal, P: p.cur.current().Pos}
		p.cur.advance()
	} else {
		d.Name = p.expectIdent()
	}

	if !p.at(lexer.BEGIN) {
		p.expect(lexer.BEGIN)
		p.synchronize([]lexer.TokenType{lexer.BEGIN, lexer.TEST})
	}
	if p.at(lexer.BEGIN) {
		d.Body = p.parseBlock()
		d.EndLine = d.Body.EndLine
		if _, ok := p.expect(lexer.SEMICOLON); !ok {
			p.synchronize([]lexer.TokenType{lexer.TEST, lexer.EOF})
		}
	}
	return d
}
