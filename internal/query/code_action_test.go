package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexlang/vexls/internal/diag"
	"github.com/vexlang/vexls/internal/lexer"
)

func TestCodeActionsOffersThreeModuleKindFixes(t *testing.T) {
	diags := []diag.Diagnostic{
		{Code: diag.CodeMissingModuleKind, Severity: diag.Error, File: "Shapes.vx", Line: 1, Column: 13, Message: "missing kind"},
	}
	actions := CodeActions(diags, "Shapes.vx", lexer.Position{Line: 1, Column: 13})
	require.Len(t, actions, 3)
	wantKinds := map[string]bool{"exe ": true, "lib ": true, "dll ": true}
	for _, a := range actions {
		require.Len(t, a.Edits, 1)
		require.True(t, wantKinds[a.Edits[0].NewText], "unexpected inserted text %q", a.Edits[0].NewText)
	}
}

func TestCodeActionsIgnoresOtherDiagnostics(t *testing.T) {
	diags := []diag.Diagnostic{
		{Code: diag.CodeUnknownIdentifier, Severity: diag.Error, File: "Shapes.vx", Line: 1, Column: 13, Message: "nope"},
	}
	actions := CodeActions(diags, "Shapes.vx", lexer.Position{Line: 1, Column: 13})
	require.Empty(t, actions)
}
