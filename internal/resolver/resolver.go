// Package resolver builds the cross-module symbol model a rebuild needs:
// every declaration becomes a *symbols.Symbol, every name reference in the
// AST is linked to the symbol it names, record inheritance chains are
// walked and checked for cycles, and methods are bound to their receiver
// types in declaration order.
//
// Modeled on DWScript's two-pass semantic analysis — a declaration pass
// that seeds every name before anything is resolved, followed by a
// resolution pass that links references once every symbol exists — so
// that mutually referencing declarations within (and across) modules never
// depend on source order. Method-to-receiver binding, inheritance walks,
// and overload-group formation follow the same two-pass shape but are new
// logic: Vex dispatches methods through an explicit receiver parameter
// rather than DWScript's class/virtual/override model.
package resolver

import (
	"strconv"
	"strings"

	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/diag"
	"github.com/vexlang/vexls/internal/lexer"
	"github.com/vexlang/vexls/internal/loader"
	"github.com/vexlang/vexls/internal/symbols"
)

// Module is one loaded module's resolved symbol table: its top-level scope
// (consts, types, vars, routines, tests) and the KindModule symbol other
// modules resolve against when they write `Module.Name`.
type Module struct {
	Loaded *loader.Loaded
	Scope  *symbols.Scope
	Symbol *symbols.Symbol
}

// Ref identifies one captured name reference by the file it appears in plus
// its position within that file. lexer.Position alone (line/column/offset)
// is not unique across files, so every Program.Uses key carries both.
type Ref struct {
	File string
	Pos  lexer.Position
}

// Program is the fully linked result of resolving every module loaded in a
// Registry. Uses maps every captured name reference in the AST (NamePos.P
// across every declaration and expression, paired with its file) to the
// symbol it was resolved against, which is what lets the query engine
// answer go-to-definition and find-references without re-walking scopes.
type Program struct {
	Modules map[string]*Module
	Uses    map[Ref]*symbols.Symbol
	Bag     diag.Bag
}

// Diagnostics returns every diagnostic the resolver accumulated.
func (p *Program) Diagnostics() []diag.Diagnostic { return p.Bag.All() }

// ModuleByName looks up a resolved module case-insensitively.
func (p *Program) ModuleByName(name string) (*Module, bool) {
	m, ok := p.Modules[normalize(name)]
	return m, ok
}

// UseAt returns the symbol bound to the name reference captured at pos
// within file, if any. Used by the query engine to turn a cursor position
// landing on a NamePos into the symbol it names.
func (p *Program) UseAt(file string, pos lexer.Position) (*symbols.Symbol, bool) {
	if sym, ok := p.Uses[Ref{File: file, Pos: pos}]; ok {
		return sym, true
	}
	// Cursor positions computed from text (query.WordAt) carry no byte
	// offset, so fall back to matching on line and column alone.
	for ref, sym := range p.Uses {
		if ref.File == file && ref.Pos.Line == pos.Line && ref.Pos.Column == pos.Column {
			return sym, true
		}
	}
	return nil, false
}

// use records that the name reference at pos within mod resolved to sym.
func (p *Program) use(mod *Module, pos lexer.Position, sym *symbols.Symbol) {
	p.Uses[Ref{File: mod.Loaded.Path, Pos: pos}] = sym
}

func normalize(name string) string { return strings.ToLower(name) }

// Resolve builds a Program from every module currently registered in reg.
// It never stops at the first problem: unresolved names, duplicate
// declarations, and inheritance cycles are all recorded as diagnostics on
// the resulting Program, and the rest of the AST is resolved around them.
func Resolve(reg *loader.Registry) *Program {
	prog := &Program{
		Modules: make(map[string]*Module),
		Uses:    make(map[Ref]*symbols.Symbol),
	}
	builtins := newBuiltinScope()

	for _, l := range reg.All() {
		mod := &Module{
			Loaded: l,
			Scope:  symbols.NewEnclosedScope(builtins),
		}
		mod.Symbol = &symbols.Symbol{
			Name: l.Module.Name.Name,
			Kind: symbols.KindModule,
			Pos:  l.Module.Name.P,
			File: l.Path,
			Node: l.Module,
		}
		prog.Modules[normalize(l.Module.Name.Name)] = mod
	}

	// Pass 1: seed every declaration's symbol before anything is linked.
	for _, mod := range prog.Modules {
		prog.declare(mod)
	}
	// Pass 2: resolve type references, inheritance, method receivers, and
	// finally every name reference inside routine/test bodies.
	for _, mod := range prog.Modules {
		prog.linkTypes(mod)
	}
	for _, mod := range prog.Modules {
		prog.bindMethods(mod)
	}
	for _, mod := range prog.Modules {
		prog.linkBodies(mod)
	}

	return prog
}

// declare registers every top-level declaration of mod.Loaded.Module as a
// Symbol in mod.Scope, without resolving any type reference yet — Pass 2
// (linkTypes/bindMethods/linkBodies) depends on every symbol existing
// first so declaration order within (and across) modules never matters.
func (p *Program) declare(mod *Module) {
	m := mod.Loaded.Module
	file := mod.Loaded.Path

	for _, c := range m.Consts {
		p.defineUnique(mod, &symbols.Symbol{
			Name: c.Name.Name, Kind: symbols.KindConst, Pos: c.Name.P, File: file,
			Type: c.Type, Node: c, Exported: c.Exported,
		})
	}
	for _, t := range m.Types {
		p.defineUnique(mod, &symbols.Symbol{
			Name: t.Name.Name, Kind: symbols.KindType, Pos: t.Name.P, File: file,
			Type: t.Type, Node: t, Exported: t.Exported,
		})
	}
	for _, v := range m.Vars {
		p.defineUnique(mod, &symbols.Symbol{
			Name: v.Name.Name, Kind: symbols.KindVar, Pos: v.Name.P, File: file,
			Type: v.Type, Node: v, Exported: v.Exported,
		})
	}
	for _, r := range m.Routines {
		kind := symbols.KindRoutine
		if r.IsMethod {
			kind = symbols.KindMethod
		}
		sym := &symbols.Symbol{
			Name: r.Name.Name, Kind: kind, Pos: r.Name.P, File: file,
			Node: r, Exported: r.Exported,
		}
		if r.ReturnType != nil {
			sym.Type = &ast.NamedType{Name: *r.ReturnType}
		}
		mod.Scope.DefineOverload(sym)
		p.use(mod, r.Name.P, sym)
	}
	for _, t := range m.Tests {
		p.defineUnique(mod, &symbols.Symbol{
			Name: t.Name.Name, Kind: symbols.KindTest, Pos: t.Name.P, File: file, Node: t,
		})
	}
}

// defineUnique defines sym in mod.Scope, reporting CodeDuplicateDeclaration
// instead of silently overwriting when a name is already taken at this
// scope level. Routine/method names go through DefineOverload instead
// (see declare), since repeated names there are a feature, not a clash.
// On success, sym's own declaring position is recorded in Program.Uses
// against itself, so the query engine can answer hover/rename/references
// queries landing exactly on a declaration the same way it answers one
// landing on a reference: by looking up Program.Uses at the cursor's word
// position (see the for-loop-variable and except-binding sites in
// exprs.go, which already follow this same self-registration pattern).
func (p *Program) defineUnique(mod *Module, sym *symbols.Symbol) {
	if existing, ok := mod.Scope.ResolveLocal(sym.Name); ok {
		p.Bag.Addf(diag.CodeDuplicateDeclaration, diag.Error, mod.Loaded.Path, sym.Pos.Line, sym.Pos.Column,
			"'"+sym.Name+"' is already declared at "+existing.File+":"+
				strconv.Itoa(existing.Pos.Line)+":"+strconv.Itoa(existing.Pos.Column))
		// sym itself never enters the scope table, but its own name still
		// resolves to itself for hover/go-to-definition, rather than silently
		// pointing at the winning declaration it collided with.
		p.use(mod, sym.Pos, sym)
		return
	}
	mod.Scope.Define(sym)
	p.use(mod, sym.Pos, sym)
}
