package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSemanticTokensClassifiesAndOrdersByPosition(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Loop": `module Loop lib;
routine S(X: Integer): Integer;
begin
  return X;
end;

routine Run(N: Integer);
var I: Integer;
begin
  for I := 1 to N do
    S(I);
  end;
end;
`,
	})
	toks := SemanticTokens(prog.Program, "Loop.vx")
	require.NotEmpty(t, toks)
	for i := 1; i < len(toks); i++ {
		a, b := toks[i-1], toks[i]
		require.False(t, a.Line > b.Line || (a.Line == b.Line && a.Column > b.Column),
			"tokens not sorted by (line, column): %+v before %+v", a, b)
	}

	var sawFunctionDecl, sawVariable, sawParamDecl bool
	for _, tok := range toks {
		if tok.Type == TokenFunction && tok.Modifiers&ModifierDeclaration != 0 {
			sawFunctionDecl = true
		}
		if tok.Type == TokenVariable {
			sawVariable = true
		}
		if tok.Type == TokenParameter && tok.Modifiers&ModifierDeclaration != 0 {
			sawParamDecl = true
		}
	}
	require.True(t, sawFunctionDecl, "expected a function-kind token with the declaration modifier")
	require.True(t, sawVariable, "expected at least one variable-kind token")
	require.True(t, sawParamDecl, "expected a parameter-kind token with the declaration modifier")

	encoded := EncodeTokenDeltas(toks)
	require.Len(t, encoded, len(toks))
	for _, e := range encoded {
		require.GreaterOrEqual(t, e.DeltaLine, 0)
	}
}
