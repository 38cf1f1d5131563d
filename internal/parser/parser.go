// Package parser turns a Vex token stream into an *ast.Module. It is a
// hand-written recursive-descent parser with operator-precedence expression
// parsing, modeled throughout on the structure of DWScript's internal
// parser package (parser.go, cursor.go, error_recovery.go, declarations.go,
// statements.go, expressions.go) adapted to Vex's closed AST sum type and
// single-pass (no semicolon-optional, no indentation) grammar.
//
// Parsing never stops at the first error: every parse* method that hits an
// unexpected token reports a diag.Diagnostic and calls synchronize to skip
// to the next plausible boundary, so a single typo in a large file still
// yields a usable partial tree plus every other diagnostic in the file.
package parser

import (
	"fmt"

	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/diag"
	"github.com/vexlang/vexls/internal/lexer"
)

// Parser holds all state for parsing a single file.
type Parser struct {
	cur  *cursor
	file string
	bag  diag.Bag
}

// New creates a Parser reading tokens from lex, attributing diagnostics to
// file.
func New(lex *lexer.Lexer, file string) *Parser {
	return &Parser{cur: newCursor(lex), file: file}
}

// Parse lexes and parses source in one call, a convenience used by the CLI
// debug subcommands and tests.
func Parse(source, file string) (*ast.Module, []diag.Diagnostic) {
	lex := lexer.New(source, file)
	p := New(lex, file)
	mod := p.ParseModule()
	diags := append([]diag.Diagnostic{}, p.bag.All()...)
	for _, e := range lex.Errors() {
		diags = append(diags, diag.Diagnostic{
			Code:     diag.CodeUnexpectedToken,
			Severity: diag.Error,
			File:     file,
			Line:     e.Pos.Line,
			Column:   e.Pos.Column,
			Message:  e.Message,
		})
	}
	return mod, diags
}

// Diagnostics returns every diagnostic accumulated during ParseModule.
func (p *Parser) Diagnostics() []diag.Diagnostic { return p.bag.All() }

func (p *Parser) errorf(code string, pos lexer.Position, format string, args ...any) {
	p.bag.Addf(code, diag.Error, p.file, pos.Line, pos.Column, fmt.Sprintf(format, args...))
}

// at reports whether the current token has type t.
func (p *Parser) at(t lexer.TokenType) bool { return p.cur.current().Type == t }

// atAny reports whether the current token is any of the given types.
func (p *Parser) atAny(ts ...lexer.TokenType) bool {
	return tokenIn(p.cur.current().Type, ts)
}

// expect consumes the current token if it has type t, reporting E101 and
// leaving the cursor in place otherwise. Returns the consumed token and
// whether it matched.
func (p *Parser) expect(t lexer.TokenType) (lexer.Token, bool) {
	tok := p.cur.current()
	if tok.Type != t {
		p.errorf(diag.CodeUnexpectedToken, tok.Pos, "expected %s, got %s %q", t, tok.Type, tok.Literal)
		return tok, false
	}
	return p.cur.advance(), true
}

// expectIdent consumes an IDENT token and returns it as a NamePos, or
// reports E101 and returns a zero-value NamePos at the current position.
func (p *Parser) expectIdent() ast.NamePos {
	tok := p.cur.current()
	if tok.Type != lexer.IDENT {
		p.errorf(diag.CodeUnexpectedToken, tok.Pos, "expected identifier, got %s %q", tok.Type, tok.Literal)
		return ast.NamePos{Name: "", P: tok.Pos}
	}
	p.cur.advance()
	return ast.NamePos{Name: tok.Literal, P: tok.Pos}
}

// ParseModule parses a complete file: the module header, its declaration
// sections in any order, an optional entry body, and trailing test
// declarations. Matches spec.md §4.2's six structural points.
func (p *Parser) ParseModule() *ast.Module {
	mod := &ast.Module{File: p.file}

	if p.at(lexer.MODULE) {
		mod.P = p.cur.current().Pos
		p.cur.advance()
		mod.Name = p.expectIdent()
		switch p.cur.current().Type {
		case lexer.EXE:
			mod.Kind = ast.ModuleKindExe
			mod.KindPos = p.cur.current().Pos
			p.cur.advance()
		case lexer.LIB:
			mod.Kind = ast.ModuleKindLib
			mod.KindPos = p.cur.current().Pos
			p.cur.advance()
		case lexer.DLL:
			mod.Kind = ast.ModuleKindDll
			mod.KindPos = p.cur.current().Pos
			p.cur.advance()
		default:
			mod.Kind = ast.ModuleKindMissing
			p.errorf(diag.CodeMissingModuleKind, p.cur.current().Pos,
				"module %q is missing its kind (exe, lib, or dll)", mod.Name.Name)
		}
		if _, ok := p.expect(lexer.SEMICOLON); !ok {
			p.synchronize(declarationStarters, []lexer.TokenType{lexer.IMPORT})
		}
	} else {
		p.errorf(diag.CodeUnexpectedToken, p.cur.current().Pos, "expected 'module'")
	}

	for p.at(lexer.IMPORT) {
		p.cur.advance()
		mod.Imports = append(mod.Imports, p.expectIdent())
		if _, ok := p.expect(lexer.SEMICOLON); !ok {
			p.synchronize(declarationStarters, []lexer.TokenType{lexer.IMPORT})
		}
	}

	p.parseDeclarationSections(mod)

	if p.at(lexer.BEGIN) {
		mod.Body = p.parseBlock()
		if _, ok := p.expect(lexer.DOT); !ok {
			p.synchronize(blockClosers, []lexer.TokenType{lexer.TEST})
		}
	}

	for p.at(lexer.TEST) {
		mod.Tests = append(mod.Tests, p.parseTestDecl())
	}

	mod.EndLine = p.cur.current().Pos.Line
	return mod
}

// parseDeclarationSections parses const/type/var/routine sections in
// whatever order they appear, per spec.md's "sections may repeat and
// interleave" allowance.
func (p *Parser) parseDeclarationSections(mod *ast.Module) {
	for {
		switch p.cur.current().Type {
		case lexer.CONST:
			mod.Consts = append(mod.Consts, p.parseConstDecl())
		case lexer.TYPE:
			mod.Types = append(mod.Types, p.parseTypeDecl())
		case lexer.VAR:
			mod.Vars = append(mod.Vars, p.parseVarDecl())
		case lexer.ROUTINE, lexer.METHOD, lexer.EXTERNAL, lexer.DEPRECATED:
			mod.Routines = append(mod.Routines, p.parseRoutineDecl())
		case lexer.EXPORT:
			p.parseExportedDecl(mod)
		default:
			return
		}
	}
}

// parseExportedDecl parses `export` followed by exactly one const/type/var
// section entry or routine/method, and marks that single declaration's
// Exported flag. `export` is a prefix on one declaration, not a section
// of its own, matching spec.md's "types, constants, and variables may be
// marked exported" at the level of the individual declaration.
func (p *Parser) parseExportedDecl(mod *ast.Module) {
	p.cur.advance() // 'export'
	switch p.cur.current().Type {
	case lexer.CONST:
		d := p.parseConstDecl()
		d.Exported = true
		mod.Consts = append(mod.Consts, d)
	case lexer.TYPE:
		d := p.parseTypeDecl()
		d.Exported = true
		mod.Types = append(mod.Types, d)
	case lexer.VAR:
		d := p.parseVarDecl()
		d.Exported = true
		mod.Vars = append(mod.Vars, d)
	case lexer.ROUTINE, lexer.METHOD, lexer.EXTERNAL, lexer.DEPRECATED:
		d := p.parseRoutineDecl()
		d.Exported = true
		mod.Routines = append(mod.Routines, d)
	default:
		p.errorf(diag.CodeUnexpectedToken, p.cur.current().Pos,
			"expected a const, type, var, routine, or method declaration after 'export'")
		p.synchronize(declarationStarters)
	}
}
