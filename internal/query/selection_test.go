package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexlang/vexls/internal/lexer"
)

func TestSelectionChainsFromInnermostBlockOutToModule(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Shapes": `module Shapes lib;
routine Classify(N: Integer): Integer;
begin
  if N > 0 then
  begin
    return 1;
  end;
end;
`,
	})
	sel, ok := Selection(prog.Program, "Shapes.vx", lexer.Position{Line: 5, Column: 5})
	require.True(t, ok, "expected a selection chain inside the if-block's begin line")
	require.Equal(t, 5, sel.Range.Start.Line, "expected the innermost range to start at the if-block's begin")
	depth := 0
	for cur := &sel; cur != nil; cur = cur.Parent {
		depth++
	}
	require.GreaterOrEqual(t, depth, 3, "expected at least 3 links in the chain (block, routine, module)")
}

func TestSelectionFailsOutsideModule(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Shapes": `module Shapes lib;
var Count: Integer;
`,
	})
	_, ok := Selection(prog.Program, "Shapes.vx", lexer.Position{Line: 50, Column: 1})
	require.False(t, ok, "expected no selection chain past the end of the module")
}
