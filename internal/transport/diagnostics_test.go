package transport

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexlang/vexls/internal/diag"
	"go.lsp.dev/protocol"
)

func TestSeverityTableMapsFatalToError(t *testing.T) {
	require.Equal(t, protocol.DiagnosticSeverityError, severityTable(diag.Fatal))
	require.Equal(t, protocol.DiagnosticSeverityError, severityTable(diag.Error))
	require.Equal(t, protocol.DiagnosticSeverityWarning, severityTable(diag.Warning))
	require.Equal(t, protocol.DiagnosticSeverityHint, severityTable(diag.Hint))
}

func TestToWireDiagnosticIsZeroBasedAndCarriesCode(t *testing.T) {
	d := diag.Diagnostic{
		Code:     diag.CodeUnexpectedToken,
		Severity: diag.Error,
		File:     "main.vx",
		Line:     4,
		Column:   9,
		Message:  "unexpected token",
	}
	wire := toWireDiagnostic(d)
	require.Equal(t, uint32(3), wire.Range.Start.Line)
	require.Equal(t, uint32(8), wire.Range.Start.Character)
	require.Equal(t, wire.Range.Start, wire.Range.End)
	require.Equal(t, diag.CodeUnexpectedToken, wire.Code)
	require.Equal(t, "vexls", wire.Source)
	require.Equal(t, "unexpected token", wire.Message)
}

func TestToWirePosClampsAtZero(t *testing.T) {
	pos := toWirePos(0, 0)
	require.Equal(t, uint32(0), pos.Line)
	require.Equal(t, uint32(0), pos.Character)
}
