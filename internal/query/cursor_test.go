package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexlang/vexls/internal/lexer"
)

func TestWordAtFindsIdentifierUnderCursor(t *testing.T) {
	src := "routine Foo(X: Integer): Integer;\n"
	w, ok := WordAt(src, lexer.Position{Line: 1, Column: 9})
	require.True(t, ok)
	require.Equal(t, "Foo", w.Text)
	require.Equal(t, 9, w.Start.Column)
}

func TestWordAtAcceptsCursorJustPastWord(t *testing.T) {
	src := "  Total := Scale;\n"
	// "Total" spans columns 3-7; placing the cursor at column 8 (just past
	// the 'l') must still resolve to "Total".
	w, ok := WordAt(src, lexer.Position{Line: 1, Column: 8})
	require.True(t, ok)
	require.Equal(t, "Total", w.Text)
}

func TestWordAtFailsOnWhitespace(t *testing.T) {
	src := "Total   Scale;\n"
	_, ok := WordAt(src, lexer.Position{Line: 1, Column: 7})
	require.False(t, ok, "expected no word in the whitespace gap")
}

func TestRoutineNameBeforeParenFindsCalleeAndArgIndex(t *testing.T) {
	src := "routine Use();\nbegin\n  Add(1, 2, 3);\nend;\n"
	// Cursor just before "3" on line 3, inside the third argument.
	pos := lexer.Position{Line: 3, Column: 13}
	ctx, ok := RoutineNameBeforeParen(src, pos)
	require.True(t, ok)
	require.Equal(t, "Add", ctx.Callee.Text)
	require.Equal(t, 2, ctx.ArgIndex, "expected ArgIndex 2 (third argument)")
	require.Empty(t, ctx.Qualifier)
}

func TestRoutineNameBeforeParenCapturesQualifier(t *testing.T) {
	src := "  A.Helper(1);\n"
	pos := lexer.Position{Line: 1, Column: 13}
	ctx, ok := RoutineNameBeforeParen(src, pos)
	require.True(t, ok)
	require.Equal(t, "A", ctx.Qualifier)
	require.Equal(t, "Helper", ctx.Callee.Text)
}

func TestRoutineNameBeforeParenFailsOutsideCall(t *testing.T) {
	src := "Total := Scale;\n"
	_, ok := RoutineNameBeforeParen(src, lexer.Position{Line: 1, Column: 5})
	require.False(t, ok, "expected no callee context outside a call")
}
