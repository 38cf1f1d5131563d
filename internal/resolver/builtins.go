package resolver

import (
	"github.com/vexlang/vexls/internal/symbols"
)

// builtinTypeNames is the fixed set of predeclared type symbols installed
// ahead of Pass 1: a signed and an unsigned 64-bit integer, a 64-bit
// float, a boolean, two character variants, an untyped pointer, a string,
// and a set. They live in a synthetic scope with no enclosing outer scope,
// shared by every module; each module scope encloses the builtin scope
// rather than merging into it. A module-level declaration under one of
// these names is not reported as a duplicate (Program.defineUnique checks
// only the module's own scope): it shadows the built-in within that
// module, and other modules still see the built-in.
var builtinTypeNames = []string{
	"Integer", "UInteger", "Float", "Boolean", "Char", "WideChar", "Pointer", "String", "Set",
}

// newBuiltinScope creates the shared root scope every module's own scope
// encloses, populated with one KindType Symbol per entry in
// builtinTypeNames. Built-ins carry a zero Position and empty File: they
// have no declaration site for go-to-definition to land on.
func newBuiltinScope() *symbols.Scope {
	scope := symbols.NewScope()
	for _, name := range builtinTypeNames {
		scope.Define(&symbols.Symbol{Name: name, Kind: symbols.KindType})
	}
	return scope
}
