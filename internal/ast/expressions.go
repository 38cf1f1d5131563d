package ast

import "github.com/vexlang/vexls/internal/lexer"

// Identifier is a bare name used as a value: a variable, constant, or
// module reference.
type Identifier struct {
	Name NamePos
}

func (e *Identifier) Pos() lexer.Position { return e.Name.P }
func (e *Identifier) exprNode()           {}

// QualifiedIdentifier is `Module.Name` used as a value.
type QualifiedIdentifier struct {
	Module NamePos
	Name   NamePos
}

func (e *QualifiedIdentifier) Pos() lexer.Position { return e.Module.P }
func (e *QualifiedIdentifier) exprNode()           {}

type IntLiteral struct {
	P     lexer.Position
	Value int64
}

func (e *IntLiteral) Pos() lexer.Position { return e.P }
func (e *IntLiteral) exprNode()           {}

type FloatLiteral struct {
	P     lexer.Position
	Value float64
}

func (e *FloatLiteral) Pos() lexer.Position { return e.P }
func (e *FloatLiteral) exprNode()           {}

type StringLiteral struct {
	P     lexer.Position
	Value string
}

func (e *StringLiteral) Pos() lexer.Position { return e.P }
func (e *StringLiteral) exprNode()           {}

type CharLiteral struct {
	P     lexer.Position
	Value rune
}

func (e *CharLiteral) Pos() lexer.Position { return e.P }
func (e *CharLiteral) exprNode()           {}

type BoolLiteral struct {
	P     lexer.Position
	Value bool
}

func (e *BoolLiteral) Pos() lexer.Position { return e.P }
func (e *BoolLiteral) exprNode()           {}

type NilLiteral struct {
	P lexer.Position
}

func (e *NilLiteral) Pos() lexer.Position { return e.P }
func (e *NilLiteral) exprNode()           {}

// BinaryExpr is `Left Op Right`.
type BinaryExpr struct {
	P     lexer.Position
	Op    lexer.TokenType
	Left  Expr
	Right Expr
}

func (e *BinaryExpr) Pos() lexer.Position { return e.P }
func (e *BinaryExpr) exprNode()           {}

// UnaryExpr is a prefix operator: `not X`, `-X`, `+X`.
type UnaryExpr struct {
	P       lexer.Position
	Op      lexer.TokenType
	Operand Expr
}

func (e *UnaryExpr) Pos() lexer.Position { return e.P }
func (e *UnaryExpr) exprNode()           {}

// CallExpr is `[Qualifier.]Callee(Args)` for a free or module-qualified
// routine call, or `Receiver.Callee(Args)` for a method call on an
// arbitrary receiver expression (an array element, a field, another call's
// result). At most one of Qualifier and Receiver is non-nil. Callee's own
// position is the call-site name position the query engine uses for
// go-to-definition and references on call sites, independent of the call's
// own start position.
type CallExpr struct {
	P         lexer.Position
	Qualifier *NamePos
	Receiver  Expr
	Callee    NamePos
	Args      []Expr
}

func (e *CallExpr) Pos() lexer.Position { return e.P }
func (e *CallExpr) exprNode()           {}

// FieldAccess is `Receiver.Field`.
type FieldAccess struct {
	P        lexer.Position
	Receiver Expr
	Field    NamePos
}

func (e *FieldAccess) Pos() lexer.Position { return e.P }
func (e *FieldAccess) exprNode()           {}

// IndexExpr is `Receiver[Indices...]`.
type IndexExpr struct {
	P        lexer.Position
	Receiver Expr
	Indices  []Expr
}

func (e *IndexExpr) Pos() lexer.Position { return e.P }
func (e *IndexExpr) exprNode()           {}

// DerefExpr is the postfix dereference `Operand^`.
type DerefExpr struct {
	P       lexer.Position
	Operand Expr
}

func (e *DerefExpr) Pos() lexer.Position { return e.P }
func (e *DerefExpr) exprNode()           {}

// RangeExpr is `Low..High`, used in case-branch values and array bounds.
type RangeExpr struct {
	P    lexer.Position
	Low  Expr
	High Expr
}

func (e *RangeExpr) Pos() lexer.Position { return e.P }
func (e *RangeExpr) exprNode()           {}

// SetLiteral is `[e1, e2, ...]`.
type SetLiteral struct {
	P        lexer.Position
	Elements []Expr
}

func (e *SetLiteral) Pos() lexer.Position { return e.P }
func (e *SetLiteral) exprNode()           {}

// CastExpr is the checked narrowing `Operand as Target`.
type CastExpr struct {
	P       lexer.Position
	Operand Expr
	Target  NamePos
}

func (e *CastExpr) Pos() lexer.Position { return e.P }
func (e *CastExpr) exprNode()           {}

// TypeTestExpr is `Operand is Target`.
type TypeTestExpr struct {
	P       lexer.Position
	Operand Expr
	Target  NamePos
}

func (e *TypeTestExpr) Pos() lexer.Position { return e.P }
func (e *TypeTestExpr) exprNode()           {}

// InheritedCall is `inherited Method(Args)`.
type InheritedCall struct {
	P      lexer.Position
	Method NamePos
	Args   []Expr
}

func (e *InheritedCall) Pos() lexer.Position { return e.P }
func (e *InheritedCall) exprNode()           {}
