package ast

import "github.com/vexlang/vexls/internal/lexer"

// NamedType references a previously declared (or built-in) type by name.
type NamedType struct {
	Name NamePos
}

func (t *NamedType) Pos() lexer.Position { return t.Name.P }
func (t *NamedType) typeExprNode()       {}

// RecordType is a `record ... end` or `record(Parent) ... end` declaration.
// Parent is nil for a record with no base type.
type RecordType struct {
	P       lexer.Position
	Parent  *NamePos
	Fields  []*FieldDecl
	EndLine int
}

func (t *RecordType) Pos() lexer.Position { return t.P }
func (t *RecordType) typeExprNode()       {}

// ArrayType is `array of T` (dynamic) or `array[Low..High] of T` (static).
type ArrayType struct {
	P         lexer.Position
	Dynamic   bool
	LowBound  Expr // nil when Dynamic
	HighBound Expr // nil when Dynamic
	Elem      TypeExpr
}

func (t *ArrayType) Pos() lexer.Position { return t.P }
func (t *ArrayType) typeExprNode()       {}

// SetType is `set of T`.
type SetType struct {
	P    lexer.Position
	Elem TypeExpr
}

func (t *SetType) Pos() lexer.Position { return t.P }
func (t *SetType) typeExprNode()       {}

// PointerType is `^T`.
type PointerType struct {
	P    lexer.Position
	Elem TypeExpr
}

func (t *PointerType) Pos() lexer.Position { return t.P }
func (t *PointerType) typeExprNode()       {}

// RoutineType is a routine-type reference, used for routine-valued
// parameters, fields, and variables (callbacks).
type RoutineType struct {
	P          lexer.Position
	Params     []*Param
	ReturnType *NamePos
	Variadic   bool
}

func (t *RoutineType) Pos() lexer.Position { return t.P }
func (t *RoutineType) typeExprNode()       {}
