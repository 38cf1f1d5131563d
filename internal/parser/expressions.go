package parser

import (
	"strconv"

	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/diag"
	"github.com/vexlang/vexls/internal/lexer"
)

// Precedence levels, lowest to tightest-binding. is/as bind more loosely
// than arithmetic but more tightly than comparison, a decision this module
// makes explicit since the grammar leaves it unspecified beyond "looser
// than arithmetic": `x + 1 is Integer = y` parses as `(x + 1) is Integer`
// compared against `y`, never as `x + (1 is Integer = y)`. Modeled on
// DWScript's operator precedence table, adapted to Vex's operator set (no
// user-defined operator overloading).
const (
	precLowest = iota
	precOr     // or, xor
	precAnd    // and
	precRel    // = <> < <= > >= in
	precIsAs   // is, as
	precAdd    // + -
	precMul    // * / div mod shl shr
)

func binaryPrecedence(t lexer.TokenType) int {
	switch t {
	case lexer.OR, lexer.XOR:
		return precOr
	case lexer.AND:
		return precAnd
	case lexer.EQ, lexer.NEQ, lexer.LT, lexer.LE, lexer.GT, lexer.GE, lexer.IN:
		return precRel
	case lexer.IS, lexer.AS:
		return precIsAs
	case lexer.PLUS, lexer.MINUS:
		return precAdd
	case lexer.STAR, lexer.SLASH, lexer.DIV, lexer.MOD, lexer.SHL, lexer.SHR:
		return precMul
	default:
		return precLowest
	}
}

// parseExpr parses an expression whose operators bind at least as tightly
// as minPrec, via precedence climbing.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parseUnary()

	for {
		tok := p.cur.current()
		prec := binaryPrecedence(tok.Type)
		if prec == precLowest || prec < minPrec {
			return left
		}

		if tok.Type == lexer.IS {
			p.cur.advance()
			left = &ast.TypeTestExpr{P: tok.Pos, Operand: left, Target: p.expectIdent()}
			continue
		}
		if tok.Type == lexer.AS {
			p.cur.advance()
			left = &ast.CastExpr{P: tok.Pos, Operand: left, Target: p.expectIdent()}
			continue
		}

		p.cur.advance()
		right := p.parseExpr(prec + 1)
		left = &ast.BinaryExpr{P: tok.Pos, Op: tok.Type, Left: left, Right: right}
	}
}

// parseUnary parses a prefix operator applied to another unary expression,
// or falls through to a postfix chain over a primary expression.
func (p *Parser) parseUnary() ast.Expr {
	tok := p.cur.current()
	switch tok.Type {
	case lexer.NOT, lexer.MINUS, lexer.PLUS:
		p.cur.advance()
		return &ast.UnaryExpr{P: tok.Pos, Op: tok.Type, Operand: p.parseUnary()}
	default:
		return p.parsePostfix(p.parsePrimary())
	}
}

// parsePostfix applies any chain of `(args)`, `[indices]`, `.field`, and
// `^` suffixes to expr. A `(args)` suffix following an Identifier,
// QualifiedIdentifier, or FieldAccess turns that name reference into a
// CallExpr instead of leaving it as a plain value reference.
func (p *Parser) parsePostfix(expr ast.Expr) ast.Expr {
	for {
		switch p.cur.current().Type {
		case lexer.LPAREN:
			expr = p.finishCall(expr)
		case lexer.LBRACKET:
			pos := p.cur.current().Pos
			p.cur.advance()
			idx := &ast.IndexExpr{P: pos, Receiver: expr}
			idx.Indices = append(idx.Indices, p.parseExpr(precLowest))
			for p.at(lexer.COMMA) {
				p.cur.advance()
				idx.Indices = append(idx.Indices, p.parseExpr(precLowest))
			}
			p.expect(lexer.RBRACKET)
			expr = idx
		case lexer.DOT:
			pos := p.cur.current().Pos
			p.cur.advance()
			field := p.expectIdent()
			expr = &ast.FieldAccess{P: pos, Receiver: expr, Field: field}
		case lexer.CARET:
			pos := p.cur.current().Pos
			p.cur.advance()
			expr = &ast.DerefExpr{P: pos, Operand: expr}
		default:
			return expr
		}
	}
}

// finishCall converts a name-like expr into a CallExpr and parses its
// argument list.
func (p *Parser) finishCall(expr ast.Expr) ast.Expr {
	pos := p.cur.current().Pos
	call := &ast.CallExpr{P: pos}

	switch e := expr.(type) {
	case *ast.Identifier:
		call.Callee = e.Name
	case *ast.QualifiedIdentifier:
		call.Qualifier = &e.Module
		call.Callee = e.Name
	case *ast.FieldAccess:
		call.Receiver = e.Receiver
		call.Callee = e.Field
	default:
		p.errorf(diag.CodeUnexpectedToken, pos, "expression is not callable")
		call.Callee = ast.NamePos{P: pos}
	}

	p.cur.advance() // '('
	for !p.at(lexer.RPAREN) && !p.at(lexer.EOF) {
		call.Args = append(call.Args, p.parseExpr(precLowest))
		if p.at(lexer.COMMA) {
			p.cur.advance()
			continue
		}
		break
	}
	p.expect(lexer.RPAREN)
	return call
}

// parsePrimary parses a single atom: a literal, a parenthesized expression,
// a set literal, `inherited Call(...)`, or a name reference (bare or
// module-qualified).
func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur.current()
	switch tok.Type {
	case lexer.INT:
		p.cur.advance()
		v, err := strconv.ParseInt(tok.Literal, 0, 64)
		if err != nil {
			p.errorf(diag.CodeUnexpectedToken, tok.Pos, "malformed integer literal %q", tok.Literal)
		}
		return &ast.IntLiteral{P: tok.Pos, Value: v}

	case lexer.FLOAT:
		p.cur.advance()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.errorf(diag.CodeUnexpectedToken, tok.Pos, "malformed float literal %q", tok.Literal)
		}
		return &ast.FloatLiteral{P: tok.Pos, Value: v}

	case lexer.STRING:
		p.cur.advance()
		return &ast.StringLiteral{P: tok.Pos, Value: tok.Literal}

	case lexer.CHAR:
		p.cur.advance()
		r := rune(0)
		for _, c := range tok.Literal {
			r = c
			break
		}
		return &ast.CharLiteral{P: tok.Pos, Value: r}

	case lexer.TRUE:
		p.cur.advance()
		return &ast.BoolLiteral{P: tok.Pos, Value: true}

	case lexer.FALSE:
		p.cur.advance()
		return &ast.BoolLiteral{P: tok.Pos, Value: false}

	case lexer.NIL:
		p.cur.advance()
		return &ast.NilLiteral{P: tok.Pos}

	case lexer.LPAREN:
		p.cur.advance()
		inner := p.parseExpr(precLowest)
		p.expect(lexer.RPAREN)
		return inner

	case lexer.LBRACKET:
		return p.parseSetLiteral()

	case lexer.INHERITED:
		return p.parseInheritedCall()

	case lexer.IDENT:
		return p.parseNameRef()

	default:
		p.errorf(diag.CodeUnexpectedToken, tok.Pos, "unexpected token %s %q in expression", tok.Type, tok.Literal)
		p.cur.advance()
		return &ast.NilLiteral{P: tok.Pos}
	}
}

// parseNameRef parses a bare identifier or, when followed by a single
// `.Name` with no further chain after it, a qualified reference
// `Qualifier.Name`. This covers both `Module.Routine(...)` calls and
// single-level `receiver.Method(...)` method calls uniformly as a
// CallExpr with Qualifier set (see finishCall); the resolver, which knows
// which names are modules and which are ordinary variables, is what
// actually tells the two apart. A *deeper* chain (`.`, `[`, or `^` right
// after the first field) means the first segment is being used as a
// receiver expression rather than a flat qualified name, so parsing backs
// off to a plain Identifier and lets parsePostfix build the chain, which
// in turn lets finishCall record that receiver expression directly.
func (p *Parser) parseNameRef() ast.Expr {
	name := p.expectIdent()
	if p.at(lexer.DOT) && p.peek(1).Type == lexer.IDENT {
		mark := p.cur.mark()
		p.cur.advance() // '.'
		next := p.expectIdent()
		if p.at(lexer.DOT) || p.at(lexer.LBRACKET) || p.at(lexer.CARET) {
			p.cur.reset(mark)
			return &ast.Identifier{Name: name}
		}
		return &ast.QualifiedIdentifier{Module: name, Name: next}
	}
	return &ast.Identifier{Name: name}
}

func (p *Parser) peek(n int) lexer.Token { return p.cur.peek(n) }

// parseSetLiteral parses `[e1, e2, ...]`, including the empty set `[]`.
func (p *Parser) parseSetLiteral() *ast.SetLiteral {
	pos := p.cur.current().Pos
	p.cur.advance() // '['
	lit := &ast.SetLiteral{P: pos}
	for !p.at(lexer.RBRACKET) && !p.at(lexer.EOF) {
		el := p.parseExpr(precLowest)
		if p.at(lexer.RANGE) {
			rpos := p.cur.current().Pos
			p.cur.advance()
			el = &ast.RangeExpr{P: rpos, Low: el, High: p.parseExpr(precLowest)}
		}
		lit.Elements = append(lit.Elements, el)
		if p.at(lexer.COMMA) {
			p.cur.advance()
			continue
		}
		break
	}
	p.expect(lexer.RBRACKET)
	return lit
}

// parseInheritedCall parses `inherited Method(Args)`.
func (p *Parser) parseInheritedCall() *ast.InheritedCall {
	pos := p.cur.current().Pos
	p.cur.advance() // 'inherited'
	call := &ast.InheritedCall{P: pos, Method: p.expectIdent()}
	if p.at(lexer.LPAREN) {
		p.cur.advance()
		for !p.at(lexer.RPAREN) && !p.at(lexer.EOF) {
			call.Args = append(call.Args, p.parseExpr(precLowest))
			if p.at(lexer.COMMA) {
				p.cur.advance()
				continue
			}
			break
		}
		p.expect(lexer.RPAREN)
	}
	return call
}
