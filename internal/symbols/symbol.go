// Package symbols models Vex's compile-time symbol universe: modules,
// types, routines (with overload groups), variables, constants, and record
// fields. It is deliberately inert — it never executes anything — and
// exists purely to be built once per rebuild and then queried by both the
// resolver (which populates it) and the query engine (which reads it).
//
// Modeled on DWScript's Symbol/SymbolTable design: case-insensitive lookup
// keyed on the lower-cased name, an outer-scope chain for lexical nesting,
// and overload groups collected under one symbol name. Adapted from a
// single flat Type interface to Vex's own *ast.TypeExpr based type
// references, since this resolver (unlike a full type-checker) only needs
// to know what a name points at in the AST, not a separate compiled type
// lattice.
package symbols

import (
	"strings"

	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/lexer"
)

// Kind classifies what a Symbol names.
type Kind int

const (
	KindModule Kind = iota
	KindType
	KindRoutine
	KindMethod
	KindVar
	KindConst
	KindField
	KindParam
	KindTest
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindType:
		return "type"
	case KindRoutine:
		return "routine"
	case KindMethod:
		return "method"
	case KindVar:
		return "var"
	case KindConst:
		return "const"
	case KindField:
		return "field"
	case KindParam:
		return "param"
	case KindTest:
		return "test"
	default:
		return "unknown"
	}
}

// Symbol is one named, resolvable entity. Name keeps the declaration's
// original case for display; lookups are always case-insensitive (see
// Scope).
type Symbol struct {
	Name     string
	Kind     Kind
	Pos      lexer.Position // the declaring name's own position
	File     string
	Type     ast.TypeExpr // nil for modules and overload-group placeholders
	Node     ast.Node     // the declaring AST node (RoutineDecl, TypeDecl, ...)
	Exported bool

	// Routine/method-only fields.
	Receiver  *Symbol   // the record type symbol this method is bound to, nil for free routines
	Overloads []*Symbol // sibling symbols sharing this name, when len > 1

	// Type-only fields.
	Parent  *Symbol   // the base record type, nil if none
	Fields  []*Symbol // KindField symbols, in declaration order
	Methods []*Symbol // KindMethod symbols bound to this type
}

// IsCallable reports whether sym can appear in call position.
func (s *Symbol) IsCallable() bool { return s.Kind == KindRoutine || s.Kind == KindMethod }

func normalize(name string) string { return strings.ToLower(name) }
