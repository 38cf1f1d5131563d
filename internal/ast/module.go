package ast

import "github.com/vexlang/vexls/internal/lexer"

// ModuleKind is the module's declared kind (exe/lib/dll). ModuleKindMissing
// marks a module that omitted the kind keyword — a diagnosed but still
// AST-representable condition (see diag code E107, "missing module kind").
type ModuleKind int

const (
	ModuleKindMissing ModuleKind = iota
	ModuleKindExe
	ModuleKindLib
	ModuleKindDll
)

func (k ModuleKind) String() string {
	switch k {
	case ModuleKindExe:
		return "exe"
	case ModuleKindLib:
		return "lib"
	case ModuleKindDll:
		return "dll"
	default:
		return ""
	}
}

// Module is the root node of a single parsed file.
type Module struct {
	P        lexer.Position // position of the 'module' keyword
	File     string
	Name     NamePos
	Kind     ModuleKind
	KindPos  lexer.Position // zero Position when Kind == ModuleKindMissing
	Imports  []NamePos
	Consts   []*ConstDecl
	Types    []*TypeDecl
	Vars     []*VarDecl
	Routines []*RoutineDecl
	Tests    []*TestDecl
	Body     *Block // entry body; nil when no `begin` follows the declarations, whatever the module kind
	EndLine  int
}

func (m *Module) Pos() lexer.Position { return m.P }
