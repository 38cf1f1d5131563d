package query

import (
	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/lexer"
	"github.com/vexlang/vexls/internal/resolver"
	"github.com/vexlang/vexls/internal/symbols"
)

// Definition resolves word's symbol and returns its declaration location:
// start at the declaring name's own position, length the name's own
// textual length. Built-ins (zero File) have no declaration site and
// report false, matching their own empty hover lexicon fallback.
func Definition(prog *resolver.Program, file string, word Word) (Location, bool) {
	sym, ok := prog.UseAt(file, word.Start)
	if !ok || sym.File == "" {
		return Location{}, false
	}
	return symbolLocation(sym), true
}

// TypeDefinition walks from word's symbol to the type it references —
// itself for a KindType symbol, Symbol.Type otherwise — and returns that
// type's declaration location. A built-in type, or a symbol with no type
// reference at all, has no location.
func TypeDefinition(prog *resolver.Program, file string, word Word) (Location, bool) {
	sym, ok := prog.UseAt(file, word.Start)
	if !ok {
		return Location{}, false
	}
	if sym.Kind == symbols.KindType {
		if sym.File == "" {
			return Location{}, false
		}
		return symbolLocation(sym), true
	}
	named, ok := sym.Type.(*ast.NamedType)
	if !ok {
		return Location{}, false
	}
	typeSym, ok := prog.UseAt(sym.File, named.Name.P)
	if !ok || typeSym.File == "" {
		return Location{}, false
	}
	return symbolLocation(typeSym), true
}

// Implementation returns the same location as Definition: Vex has no
// separate interface/implementation split for the query engine to
// distinguish (spec's explicit statement of this language's shape).
func Implementation(prog *resolver.Program, file string, word Word) (Location, bool) {
	return Definition(prog, file, word)
}

func symbolLocation(sym *symbols.Symbol) Location {
	end := sym.Pos.Column
	for range sym.Name {
		end++
	}
	return Location{
		File: sym.File,
		Range: Range{
			Start: sym.Pos,
			End:   lexer.Position{Line: sym.Pos.Line, Column: end},
		},
	}
}
