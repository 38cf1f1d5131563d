package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexlang/vexls/internal/lexer"
)

func TestRenameProducesEditsAcrossAllOccurrences(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Shapes": `module Shapes lib;
type TShape = record
  X: Integer;
end;

routine Use();
var S: TShape;
begin
  S.X := 1;
  S.X := S.X + 1;
end;
`,
	})
	src := prog.sources["Shapes"]
	word, ok := WordAt(src, lexer.Position{Line: 3, Column: 3})
	require.True(t, ok)
	edit, err := Rename(prog.Program, "Shapes.vx", word, "Value")
	require.NoError(t, err)
	edits := edit.Changes["Shapes.vx"]
	require.Len(t, edits, 4)
	for _, e := range edits {
		require.Equal(t, "Value", e.NewText)
	}
}

func TestRenameRejectsInvalidIdentifier(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Shapes": `module Shapes lib;
var Count: Integer;
`,
	})
	src := prog.sources["Shapes"]
	word, _ := WordAt(src, lexer.Position{Line: 2, Column: 5})
	_, err := Rename(prog.Program, "Shapes.vx", word, "1bad")
	require.Error(t, err)
}

func TestRenameRejectsBuiltinTarget(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Shapes": `module Shapes lib;
var Count: Integer;
`,
	})
	src := prog.sources["Shapes"]
	word, _ := WordAt(src, lexer.Position{Line: 2, Column: 12})
	require.Equal(t, "Integer", word.Text)
	_, err := Rename(prog.Program, "Shapes.vx", word, "Whole")
	require.Error(t, err)
}
