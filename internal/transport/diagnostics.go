package transport

import (
	"context"

	"github.com/vexlang/vexls/internal/diag"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// severityTable maps diag.Severity onto the wire's numeric severity enum.
// diag.Fatal has no dedicated wire severity (the LSP spec only has three
// meaningful levels below Hint's own slot); it is reported as Error, since a
// fatal diagnostic is, from the client's point of view, still just "this is
// wrong" — the distinction only matters to the core's own propagation
// logic (spec.md §7), not to the editor.
func severityTable(s diag.Severity) protocol.DiagnosticSeverity {
	switch s {
	case diag.Hint:
		return protocol.DiagnosticSeverityHint
	case diag.Warning:
		return protocol.DiagnosticSeverityWarning
	case diag.Fatal, diag.Error:
		return protocol.DiagnosticSeverityError
	default:
		return protocol.DiagnosticSeverityError
	}
}

// toWireDiagnostic converts one diag.Diagnostic to its wire form. The stable
// code travels in both Code (so clients that render it do) and the Data
// side channel, mirroring buflsp/diagnostic.go's own code-plus-Data shape.
func toWireDiagnostic(d diag.Diagnostic) protocol.Diagnostic {
	pos := toWirePos(d.Line, d.Column)
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: pos, End: pos},
		Severity: severityTable(d.Severity),
		Code:     d.Code,
		Source:   "vexls",
		Message:  d.Message,
	}
}

func toWirePos(line, col int) protocol.Position {
	l := line - 1
	if l < 0 {
		l = 0
	}
	c := col - 1
	if c < 0 {
		c = 0
	}
	return protocol.Position{Line: uint32(l), Character: uint32(c)}
}

// publishDiagnostics sends a textDocument/publishDiagnostics notification
// for file, filtering all to just the ones attached to it. An empty slice
// is sent explicitly (never omitted) so the client clears stale markers —
// this is also how Close uses it to wipe a document's diagnostics entirely,
// per spec.md §7's "on document close, publish an empty diagnostic list".
//
// Grounded on buflsp/lsp.go's updateDiags: same notify-with-URI shape,
// reduced to Vex's single diagnostic source (a rebuild's Diagnostics) in
// place of buflsp's parse/lint/breaking-diagnostic priority chain.
func publishDiagnostics(ctx context.Context, conn jsonrpc2.Conn, file string, all []diag.Diagnostic) error {
	wire := make([]protocol.Diagnostic, 0, len(all))
	for _, d := range diag.ForFile(all, file) {
		wire = append(wire, toWireDiagnostic(d))
	}
	return conn.Notify(ctx, "textDocument/publishDiagnostics", &protocol.PublishDiagnosticsParams{
		URI:         pathToURI(file),
		Diagnostics: wire,
	})
}
