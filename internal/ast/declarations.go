package ast

import "github.com/vexlang/vexls/internal/lexer"

// ConstDecl declares a named constant, optionally typed.
type ConstDecl struct {
	P        lexer.Position
	Name     NamePos
	Type     TypeExpr // nil when the type is inferred from Value
	Value    Expr
	Exported bool
}

func (d *ConstDecl) Pos() lexer.Position { return d.P }
func (d *ConstDecl) declNode()           {}

// VarDecl declares a named variable of a given type.
type VarDecl struct {
	P        lexer.Position
	Name     NamePos
	Type     TypeExpr
	Exported bool
}

func (d *VarDecl) Pos() lexer.Position { return d.P }
func (d *VarDecl) declNode()           {}

// TypeDecl declares a named type: an alias for, or the definition of, Type.
type TypeDecl struct {
	P        lexer.Position
	Name     NamePos
	Type     TypeExpr
	Exported bool
}

func (d *TypeDecl) Pos() lexer.Position { return d.P }
func (d *TypeDecl) declNode()           {}

// ParamModifier controls how an argument is passed.
type ParamModifier int

const (
	ParamByValue ParamModifier = iota
	ParamConst                 // const: read-only by value
	ParamVar                   // var: by reference
)

// Param is a single entry in a routine's parameter list.
type Param struct {
	P        lexer.Position
	Name     NamePos
	Type     TypeExpr
	Modifier ParamModifier
}

func (p *Param) Pos() lexer.Position { return p.P }

// RoutineDecl covers both free routines (`routine`) and methods
// (`method`). A method's receiver is its first parameter, conventionally
// named Self; ReceiverType points at that parameter's own type reference
// so queries can jump straight to the receiver type without walking the
// parameter list.
type RoutineDecl struct {
	P                  lexer.Position // position of the 'routine'/'method' keyword
	IsMethod           bool
	Name               NamePos
	ReceiverType       *NamePos
	Params             []*Param
	ReturnType         *NamePos
	Variadic           bool
	External           bool
	ExternalName       string
	Deprecated         bool
	DeprecatedMessage  string
	HasOverloadSibling bool // set by the resolver once an overload group has >1 member
	LocalConsts        []*ConstDecl
	LocalVars          []*VarDecl
	Body               *Block // nil for external/forward routines
	EndLine            int
	Exported           bool
}

func (d *RoutineDecl) Pos() lexer.Position { return d.P }
func (d *RoutineDecl) declNode()           {}

// TestDecl is a trailing test declaration within a module.
type TestDecl struct {
	P       lexer.Position
	Name    NamePos
	Body    *Block
	EndLine int
}

func (d *TestDecl) Pos() lexer.Position { return d.P }
func (d *TestDecl) declNode()           {}

// FieldDecl is a single field within a record type.
type FieldDecl struct {
	P    lexer.Position
	Name NamePos
	Type TypeExpr
}

func (f *FieldDecl) Pos() lexer.Position { return f.P }
