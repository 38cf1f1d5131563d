package parser

import (
	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/diag"
	"github.com/vexlang/vexls/internal/lexer"
)

// parseTypeExpr parses any type expression: a named reference, or an inline
// record/array/set/pointer/routine type.
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	switch p.cur.current().Type {
	case lexer.RECORD:
		return p.parseRecordType()
	case lexer.ARRAY:
		return p.parseArrayType()
	case lexer.SET:
		return p.parseSetType()
	case lexer.CARET:
		return p.parsePointerType()
	case lexer.ROUTINE:
		return p.parseRoutineType()
	case lexer.IDENT:
		name := p.expectIdent()
		return &ast.NamedType{Name: name}
	default:
		tok := p.cur.current()
		p.errorf(diag.CodeUnexpectedToken, tok.Pos, "expected a type, got %s %q", tok.Type, tok.Literal)
		p.cur.advance()
		return &ast.NamedType{Name: ast.NamePos{P: tok.Pos}}
	}
}

// parseRecordType parses `record [(Parent)] Field: Type; ... end`.
func (p *Parser) parseRecordType() *ast.RecordType {
	pos := p.cur.current().Pos
	p.cur.advance() // 'record'
	t := &ast.RecordType{P: pos}

	if p.at(lexer.LPAREN) {
		p.cur.advance()
		parent := p.expectIdent()
		t.Parent = &parent
		p.expect(lexer.RPAREN)
	}

	for !p.at(lexer.END) && !p.at(lexer.EOF) {
		fpos := p.cur.current().Pos
		name := p.expectIdent()
		var names []ast.NamePos
		names = append(names, name)
		for p.at(lexer.COMMA) {
			p.cur.advance()
			names = append(names, p.expectIdent())
		}
		var ftype ast.TypeExpr
		if _, ok := p.expect(lexer.COLON); ok {
			ftype = p.parseTypeExpr()
		}
		for _, n := range names {
			t.Fields = append(t.Fields, &ast.FieldDecl{P: fpos, Name: n, Type: ftype})
		}
		if _, ok := p.expect(lexer.SEMICOLON); !ok {
			p.synchronize([]lexer.TokenType{lexer.END}, statementStarters)
		}
	}
	t.EndLine = p.cur.current().Pos.Line
	p.expect(lexer.END)
	return t
}

// parseArrayType parses `array of T` or `array[Low..High] of T`.
func (p *Parser) parseArrayType() *ast.ArrayType {
	pos := p.cur.current().Pos
	p.cur.advance() // 'array'
	t := &ast.ArrayType{P: pos, Dynamic: true}

	if p.at(lexer.LBRACKET) {
		t.Dynamic = false
		p.cur.advance()
		t.LowBound = p.parseExpr(precLowest)
		p.expect(lexer.RANGE)
		t.HighBound = p.parseExpr(precLowest)
		p.expect(lexer.RBRACKET)
	}

	p.expect(lexer.OF)
	t.Elem = p.parseTypeExpr()
	return t
}

// parseSetType parses `set of T`.
func (p *Parser) parseSetType() *ast.SetType {
	pos := p.cur.current().Pos
	p.cur.advance() // 'set'
	p.expect(lexer.OF)
	return &ast.SetType{P: pos, Elem: p.parseTypeExpr()}
}

// parsePointerType parses `^T`.
func (p *Parser) parsePointerType() *ast.PointerType {
	pos := p.cur.current().Pos
	p.cur.advance() // '^'
	return &ast.PointerType{P: pos, Elem: p.parseTypeExpr()}
}

// parseRoutineType parses a routine-type reference used for callback
// parameters, fields, and variables: `routine(Params): Return`.
func (p *Parser) parseRoutineType() *ast.RoutineType {
	pos := p.cur.current().Pos
	p.cur.advance() // 'routine'
	t := &ast.RoutineType{P: pos}
	if p.at(lexer.LPAREN) {
		t.Params, t.Variadic = p.parseParamList()
	}
	if p.at(lexer.COLON) {
		p.cur.advance()
		name := p.expectIdent()
		t.ReturnType = &name
	}
	return t
}
