package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexlang/vexls/internal/lexer"
)

func TestDefinitionJumpsToDeclaration(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Shapes": `module Shapes lib;
type TShape = record
  X: Integer;
end;

routine Use();
var S: TShape;
begin
  S.X := 1;
end;
`,
	})
	src := prog.sources["Shapes"]
	word, ok := WordAt(src, lexer.Position{Line: 9, Column: 5})
	require.True(t, ok)
	require.Equal(t, "X", word.Text)
	loc, ok := Definition(prog.Program, "Shapes.vx", word)
	require.True(t, ok, "expected a definition location")
	require.Equal(t, "Shapes.vx", loc.File)
	require.Equal(t, 3, loc.Range.Start.Line, "expected field X's declaration on line 3")
}

func TestDefinitionOnBuiltinFindsNoLocation(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Ops": `module Ops lib;
var X: Integer;
`,
	})
	src := prog.sources["Ops"]
	word, ok := WordAt(src, lexer.Position{Line: 2, Column: 8})
	require.True(t, ok)
	require.Equal(t, "Integer", word.Text)
	_, ok = Definition(prog.Program, "Ops.vx", word)
	require.False(t, ok, "expected no definition location for a built-in type")
}

func TestTypeDefinitionWalksThroughVariableType(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Shapes": `module Shapes lib;
type TShape = record
  X: Integer;
end;

routine Use();
var S: TShape;
begin
  S.X := 1;
end;
`,
	})
	src := prog.sources["Shapes"]
	word, ok := WordAt(src, lexer.Position{Line: 9, Column: 3})
	require.True(t, ok)
	require.Equal(t, "S", word.Text)
	loc, ok := TypeDefinition(prog.Program, "Shapes.vx", word)
	require.True(t, ok, "expected a type-definition location")
	require.Equal(t, 2, loc.Range.Start.Line, "expected TShape's declaration on line 2")
}

func TestImplementationMatchesDefinition(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Shapes": `module Shapes lib;
type TShape = record
  X: Integer;
end;
`,
	})
	src := prog.sources["Shapes"]
	word, ok := WordAt(src, lexer.Position{Line: 2, Column: 6})
	require.True(t, ok)
	require.Equal(t, "TShape", word.Text)
	def, ok1 := Definition(prog.Program, "Shapes.vx", word)
	impl, ok2 := Implementation(prog.Program, "Shapes.vx", word)
	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, def, impl)
}
