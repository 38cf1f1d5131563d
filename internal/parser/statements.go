package parser

import (
	"strings"

	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/diag"
	"github.com/vexlang/vexls/internal/lexer"
)

// isContextualKeyword reports whether the current token is an IDENT
// spelling word, case-insensitively — used for the two contextual
// keywords (`on`, `step`) that aren't reserved words because they may
// also be used as identifiers elsewhere in a module.
func (p *Parser) isContextualKeyword(word string) bool {
	tok := p.cur.current()
	return tok.Type == lexer.IDENT && strings.EqualFold(tok.Literal, word)
}

// parseBlock parses `begin Stmts end`, always terminated by an explicit
// `end` (Vex has no significant indentation, unlike Pascal's optional
// `begin`/`end` pairing around single statements).
func (p *Parser) parseBlock() *ast.Block {
	pos := p.cur.current().Pos
	p.expect(lexer.BEGIN)
	b := &ast.Block{P: pos}
	for !p.at(lexer.END) && !p.at(lexer.EOF) {
		b.Stmts = append(b.Stmts, p.parseStmt())
	}
	b.EndLine = p.cur.current().Pos.Line
	p.expect(lexer.END)
	return b
}

// parseStmtList parses a sequence of statements up to (but not consuming)
// any of the given terminator tokens, used by repeat/try/case bodies that
// don't have their own begin/end wrapper.
func (p *Parser) parseStmtList(terminators ...lexer.TokenType) []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atAny(terminators...) && !p.at(lexer.EOF) {
		stmts = append(stmts, p.parseStmt())
	}
	return stmts
}

func (p *Parser) parseStmt() ast.Stmt {
	var s ast.Stmt
	switch p.cur.current().Type {
	case lexer.BEGIN:
		s = p.parseBlock()
	case lexer.IF:
		s = p.parseIfStmt()
	case lexer.WHILE:
		s = p.parseWhileStmt()
	case lexer.FOR:
		s = p.parseForStmt()
	case lexer.REPEAT:
		s = p.parseRepeatStmt()
	case lexer.CASE:
		s = p.parseCaseStmt()
	case lexer.TRY:
		s = p.parseTryStmt()
	case lexer.RETURN:
		s = p.parseReturnStmt()
	case lexer.NEW:
		s = p.parseNewStmt()
	case lexer.DISPOSE:
		s = p.parseDisposeStmt()
	case lexer.SETLENGTH:
		s = p.parseSetLengthStmt()
	default:
		s = p.parseExprOrAssignStmt()
	}
	if _, ok := p.expect(lexer.SEMICOLON); !ok {
		p.synchronize(statementStarters, blockClosers)
	}
	return s
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	pos := p.cur.current().Pos
	p.cur.advance() // 'if'
	cond := p.parseExpr(precLowest)
	p.expect(lexer.THEN)
	then := p.parseStmtNoSemi()
	s := &ast.IfStmt{P: pos, Cond: cond, Then: then}
	if p.at(lexer.ELSE) {
		p.cur.advance()
		s.Else = p.parseStmtNoSemi()
	}
	return s
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	pos := p.cur.current().Pos
	p.cur.advance() // 'while'
	cond := p.parseExpr(precLowest)
	p.expect(lexer.DO)
	return &ast.WhileStmt{P: pos, Cond: cond, Body: p.parseStmtNoSemi()}
}

func (p *Parser) parseForStmt() *ast.ForStmt {
	pos := p.cur.current().Pos
	p.cur.advance() // 'for'
	loopVar := p.expectIdent()
	p.expect(lexer.ASSIGN)
	start := p.parseExpr(precLowest)

	down := false
	switch p.cur.current().Type {
	case lexer.TO:
		p.cur.advance()
	case lexer.DOWNTO:
		down = true
		p.cur.advance()
	default:
		p.errorf(diag.CodeUnexpectedToken, p.cur.current().Pos, "expected 'to' or 'downto'")
	}
	end := p.parseExpr(precLowest)

	s := &ast.ForStmt{P: pos, LoopVar: loopVar, Start: start, End: end, Down: down}
	if p.isContextualKeyword("step") {
		p.cur.advance()
		s.Step = p.parseExpr(precLowest)
	}
	p.expect(lexer.DO)
	s.Body = p.parseStmtNoSemi()
	return s
}

func (p *Parser) parseRepeatStmt() *ast.RepeatStmt {
	pos := p.cur.current().Pos
	p.cur.advance() // 'repeat'
	s := &ast.RepeatStmt{P: pos}
	s.Stmts = p.parseStmtList(lexer.UNTIL)
	s.EndLine = p.cur.current().Pos.Line
	p.expect(lexer.UNTIL)
	s.Cond = p.parseExpr(precLowest)
	return s
}

func (p *Parser) parseCaseStmt() *ast.CaseStmt {
	pos := p.cur.current().Pos
	p.cur.advance() // 'case'
	s := &ast.CaseStmt{P: pos, Selector: p.parseExpr(precLowest)}
	p.expect(lexer.OF)

	for !p.atAny(lexer.ELSE, lexer.END, lexer.EOF) {
		branch := &ast.CaseBranch{P: p.cur.current().Pos}
		branch.Values = append(branch.Values, p.parseCaseValue())
		for p.at(lexer.COMMA) {
			p.cur.advance()
			branch.Values = append(branch.Values, p.parseCaseValue())
		}
		p.expect(lexer.COLON)
		branch.Body = p.parseStmtNoSemi()
		if _, ok := p.expect(lexer.SEMICOLON); !ok {
			p.synchronize([]lexer.TokenType{lexer.ELSE, lexer.END})
		}
		s.Branches = append(s.Branches, branch)
	}

	if p.at(lexer.ELSE) {
		p.cur.advance()
		s.Else = p.parseStmtList(lexer.END)
	}
	s.EndLine = p.cur.current().Pos.Line
	p.expect(lexer.END)
	return s
}

func (p *Parser) parseCaseValue() ast.CaseValue {
	first := p.parseExpr(precLowest)
	if p.at(lexer.RANGE) {
		p.cur.advance()
		hi := p.parseExpr(precLowest)
		return ast.CaseValue{RangeLow: first, RangeHi: hi}
	}
	return ast.CaseValue{Single: first}
}

func (p *Parser) parseTryStmt() *ast.TryStmt {
	pos := p.cur.current().Pos
	p.cur.advance() // 'try'
	s := &ast.TryStmt{P: pos}
	s.Stmts = p.parseStmtList(lexer.EXCEPT, lexer.FINALLY, lexer.END)

	if p.at(lexer.EXCEPT) {
		s.HasExcept = true
		p.cur.advance()
		for p.isContextualKeyword("on") {
			p.cur.advance()
			eb := &ast.ExceptBranch{P: p.cur.current().Pos}
			name := p.expectIdent()
			if p.at(lexer.COLON) {
				p.cur.advance()
				eb.VarName = &name
				eb.ExceptionType = p.expectIdent()
			} else {
				eb.ExceptionType = name
			}
			p.expect(lexer.DO)
			eb.Body = []ast.Stmt{p.parseStmtNoSemi()}
			if _, ok := p.expect(lexer.SEMICOLON); !ok {
				p.synchronize([]lexer.TokenType{lexer.FINALLY, lexer.END}, []lexer.TokenType{lexer.IDENT})
			}
			s.ExceptBranches = append(s.ExceptBranches, eb)
		}
		if p.at(lexer.ELSE) {
			p.cur.advance()
			s.ExceptElse = p.parseStmtList(lexer.FINALLY, lexer.END)
		}
	}

	if p.at(lexer.FINALLY) {
		s.HasFinally = true
		p.cur.advance()
		s.Finally = p.parseStmtList(lexer.END)
	}

	s.EndLine = p.cur.current().Pos.Line
	p.expect(lexer.END)
	return s
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	pos := p.cur.current().Pos
	p.cur.advance() // 'return'
	s := &ast.ReturnStmt{P: pos}
	if !p.at(lexer.SEMICOLON) && !p.atAny(blockClosers...) {
		s.Value = p.parseExpr(precLowest)
	}
	return s
}

func (p *Parser) parseNewStmt() *ast.NewStmt {
	pos := p.cur.current().Pos
	p.cur.advance() // 'new'
	p.expect(lexer.LPAREN)
	s := &ast.NewStmt{P: pos, Target: p.parseExpr(precIsAs + 1)}
	if p.at(lexer.AS) {
		p.cur.advance()
		name := p.expectIdent()
		s.AsType = &name
	}
	p.expect(lexer.RPAREN)
	return s
}

func (p *Parser) parseDisposeStmt() *ast.DisposeStmt {
	pos := p.cur.current().Pos
	p.cur.advance() // 'dispose'
	p.expect(lexer.LPAREN)
	s := &ast.DisposeStmt{P: pos, Target: p.parseExpr(precLowest)}
	p.expect(lexer.RPAREN)
	return s
}

func (p *Parser) parseSetLengthStmt() *ast.SetLengthStmt {
	pos := p.cur.current().Pos
	p.cur.advance() // 'setlength'
	p.expect(lexer.LPAREN)
	s := &ast.SetLengthStmt{P: pos, Target: p.parseExpr(precLowest)}
	p.expect(lexer.COMMA)
	s.Length = p.parseExpr(precLowest)
	p.expect(lexer.RPAREN)
	return s
}

// parseExprOrAssignStmt parses either `Target := Value` or a bare
// expression statement (a procedure/method call).
func (p *Parser) parseExprOrAssignStmt() ast.Stmt {
	pos := p.cur.current().Pos
	expr := p.parseExpr(precLowest)
	if p.at(lexer.ASSIGN) {
		p.cur.advance()
		value := p.parseExpr(precLowest)
		return &ast.AssignStmt{P: pos, Target: expr, Value: value}
	}
	return &ast.ExprStmt{P: pos, Expr: expr}
}

// parseStmtNoSemi parses one statement the way an if/while/for body does:
// the statement's own trailing semicolon, if any, belongs to the enclosing
// construct rather than being consumed here.
func (p *Parser) parseStmtNoSemi() ast.Stmt {
	switch p.cur.current().Type {
	case lexer.BEGIN:
		return p.parseBlock()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.REPEAT:
		return p.parseRepeatStmt()
	case lexer.CASE:
		return p.parseCaseStmt()
	case lexer.TRY:
		return p.parseTryStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.NEW:
		return p.parseNewStmt()
	case lexer.DISPOSE:
		return p.parseDisposeStmt()
	case lexer.SETLENGTH:
		return p.parseSetLengthStmt()
	default:
		return p.parseExprOrAssignStmt()
	}
}
