// Package ast defines Vex's abstract syntax tree.
//
// The tree is a closed sum type: Node is implemented by a fixed set of
// concrete struct types rather than left open to arbitrary extension, and
// visitors are ordinary functions performing an exhaustive type switch over
// that fixed set (see Walk). This replaces the open tagged-dispatch style
// of an interpreter-oriented AST with something that the Go compiler can
// check is exhaustive.
//
// Every node carries its own source Position. In addition, every node that
// references another declaration by name — a type name, a parent type, a
// return type, a receiver type, a routine name at its call site, a field
// name, a loop variable, an inherited-method name, or an AS/IS/NEW target
// type — carries that name's own Position in a NamePos, captured at the
// moment the parser consumed the identifier token. This is what lets the
// query engine answer navigation and rename queries without re-lexing.
package ast

import "github.com/vexlang/vexls/internal/lexer"

// Node is implemented by every AST node.
type Node interface {
	Pos() lexer.Position
}

// Decl is a top-level or local declaration.
type Decl interface {
	Node
	declNode()
}

// Stmt is anything that can appear in a statement list.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is anything that produces a value.
type Expr interface {
	Node
	exprNode()
}

// TypeExpr denotes a type: a reference to a named type, or an inline
// record/array/set/pointer/routine type.
type TypeExpr interface {
	Node
	typeExprNode()
}

// NamePos is a name together with the position the parser captured for it
// at the moment the lexer produced that identifier token. Many different
// AST nodes embed a NamePos for each name they reference; NamePos never
// knows which kind of reference it is — that is determined entirely by
// where it appears in the tree.
type NamePos struct {
	Name string
	P    lexer.Position
}

// Pos returns the NamePos's own captured position.
func (n NamePos) Pos() lexer.Position { return n.P }

// End returns the column immediately past the last rune of the name,
// i.e. P.Column + len([]rune(Name)). Used by the query engine to build a
// [start, end) range for exactly this name.
func (n NamePos) End() int {
	count := 0
	for range n.Name {
		count++
	}
	return n.P.Column + count
}
