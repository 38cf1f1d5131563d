package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexlang/vexls/internal/lexer"
)

func TestReferencesIncludesDeclarationAndEveryUse(t *testing.T) {
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
	require.Equal(t, "X", word.Text)
	locs := References(prog.Program, "Shapes.vx", word)
	// Declaration + 3 uses (line 9's assignment target, line 10's target
	// and its one occurrence on the right-hand side).
	require.Len(t, locs, 4)
	require.Equal(t, 3, locs[0].Range.Start.Line, "expected the declaration site to sort first")
}

func TestDocumentHighlightRestrictsToOneFile(t *testing.T) {
	sources := map[string]string{
		"A": `module A lib;
export routine Helper(): Integer;
begin
  return 1;
end;
`,
		"B": `module B lib;
import A;

routine UseHelper(): Integer;
begin
  return A.Helper();
end;
`,
	}
	prog := newTestProgram(t, sources)
	wordInA, ok := WordAt(prog.sources["A"], lexer.Position{Line: 2, Column: 16})
	require.True(t, ok)
	require.Equal(t, "Helper", wordInA.Text)

	allRefs := References(prog.Program, "A.vx", wordInA)
	require.Len(t, allRefs, 2, "expected 2 references across both modules")

	highlights := DocumentHighlight(prog.Program, "A.vx", wordInA)
	require.Len(t, highlights, 1, "expected exactly 1 highlight confined to A.vx")
	require.Equal(t, "A.vx", highlights[0].File)
}

// TestReferencesOnOneOverloadExcludesSiblingOverloadSites documents a
// deliberate choice: References resolves a call site to whichever specific
// overload the resolver picked (methods.go's selectOverload), and reports
// only that symbol's own declaration and call sites. Invoking References
// from one overload's declaration never pulls in a sibling overload's
// declaration or the call sites that bound to it, even though both share a
// name and both names are found by completion/hover under the same word.
func TestReferencesOnOneOverloadExcludesSiblingOverloadSites(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Math": `module Math lib;
routine Describe(A: Integer): Integer;
begin
  return A;
end;

routine Describe(A: Boolean): Integer;
begin
  return 0;
end;

routine CallInteger(): Integer;
begin
  return Describe(1);
end;

routine CallBoolean(): Integer;
begin
  return Describe(true);
end;
`,
	})
	src := prog.sources["Math"]

	intDecl, ok := WordAt(src, lexer.Position{Line: 2, Column: 11})
	require.True(t, ok)
	require.Equal(t, "Describe", intDecl.Text)

	locs := References(prog.Program, "Math.vx", intDecl)
	for _, loc := range locs {
		require.NotEqual(t, 19, loc.Range.Start.Line,
			"expected the Boolean overload's call site excluded from the Integer overload's references, got %+v", locs)
	}

	var sawOwnDecl, sawOwnCall bool
	for _, loc := range locs {
		if loc.Range.Start.Line == 2 {
			sawOwnDecl = true
		}
		if loc.Range.Start.Line == 14 {
			sawOwnCall = true
		}
	}
	require.True(t, sawOwnDecl, "expected the Integer overload's own declaration among its references, got %+v", locs)
	require.True(t, sawOwnCall, "expected the Integer overload's own call site among its references, got %+v", locs)
}
