package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexlang/vexls/internal/lexer"
)

func TestHoverRendersRoutineSignature(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Ops": `module Ops lib;
routine Add(A, B: Integer): Integer;
begin
  return A + B;
end;
`,
	})
	word, ok := WordAt(prog.sources["Ops"], lexer.Position{Line: 2, Column: 9})
	require.True(t, ok)
	text, ok := Hover(prog.Program, "Ops.vx", word)
	require.True(t, ok)
	require.Equal(t, "routine Add(A: Integer; B: Integer): Integer", text)
}

func TestHoverFallsBackToBuiltinLexicon(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Ops": `module Ops lib;
var X: Integer;
`,
	})
	word, ok := WordAt(prog.sources["Ops"], lexer.Position{Line: 2, Column: 1})
	require.True(t, ok)
	require.Equal(t, "var", word.Text)
	text, ok := Hover(prog.Program, "Ops.vx", word)
	require.True(t, ok, "expected a built-in lexicon hit for the var keyword")
	require.NotEmpty(t, text)
}

func TestHoverOnFieldDeclarationItself(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Shapes": `module Shapes lib;
type TShape = record
  X: Integer;
end;
`,
	})
	word, ok := WordAt(prog.sources["Shapes"], lexer.Position{Line: 3, Column: 3})
	require.True(t, ok)
	require.Equal(t, "X", word.Text)
	text, ok := Hover(prog.Program, "Shapes.vx", word)
	require.True(t, ok, "expected hover text for field X")
	require.Equal(t, "field X: Integer", text)
}
