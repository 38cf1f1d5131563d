package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFoldingRangesCoversRecordsRoutinesAndControlFlow(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Shapes": `module Shapes lib;
type TShape = record
  X: Integer;
end;

routine Classify(N: Integer): Integer;
begin
  if N > 0 then
  begin
    return 1;
  end
  else
  begin
    return 0;
  end;
end;
`,
	})
	ranges := FoldingRanges(prog.Program, "Shapes.vx")
	require.NotEmpty(t, ranges)
	foundRecord, foundRoutine := false, false
	for _, r := range ranges {
		if r.StartLine == 2 && r.EndLine == 4 {
			foundRecord = true
		}
		if r.StartLine == 6 && r.EndLine == 16 {
			foundRoutine = true
		}
	}
	require.True(t, foundRecord, "expected a folding range for the record type, got %+v", ranges)
	require.True(t, foundRoutine, "expected a folding range for the routine body, got %+v", ranges)
}
