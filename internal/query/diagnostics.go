package query

import "github.com/vexlang/vexls/internal/diag"

// DiagnosticsForFile filters a rebuild's full diagnostic list down to the
// ones attached to file, for a publishDiagnostics notification. Severity
// and code stay exactly as diag.Bag produced them — the transport layer,
// not this package, maps diag.Severity onto the wire's numeric severity
// enum, per query's own protocol-agnostic design.
func DiagnosticsForFile(all []diag.Diagnostic, file string) []diag.Diagnostic {
	return diag.ForFile(all, file)
}
