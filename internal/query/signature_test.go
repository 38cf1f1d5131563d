package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexlang/vexls/internal/lexer"
)

func TestSignatureRendersActiveOverloadAndParameter(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Math": `module Math lib;
routine Add(A: Integer; B: Integer): Integer;
begin
  return A + B;
end;

routine Add(A: Integer; B: Integer; C: Integer): Integer;
begin
  return A + B + C;
end;

routine Caller(): Integer;
begin
  return Add(1, 2);
end;
`,
	})
	src := prog.sources["Math"]
	// Cursor right after "Add(1, " on the "Caller" body's call line.
	pos := lexer.Position{Line: 14, Column: 16}
	help, ok := Signature(prog.Program, "Math.vx", src, pos)
	require.True(t, ok)
	require.Len(t, help.Signatures, 2)
	require.Equal(t, 1, help.ActiveParameter, "expected active parameter 1 (second argument)")
}

func TestSignatureFailsOutsideCall(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Math": `module Math lib;
routine Add(A: Integer; B: Integer): Integer;
begin
  return A + B;
end;
`,
	})
	src := prog.sources["Math"]
	_, ok := Signature(prog.Program, "Math.vx", src, lexer.Position{Line: 1, Column: 1})
	require.False(t, ok, "expected no signature help outside a call")
}
