package diag

import (
	"fmt"
	"strings"
)

// Format renders d with source context: a file:line:col header, the
// offending source line prefixed with its line number, a caret pointing at
// the column, and the message, optionally with ANSI color. Modeled on
// DWScript's CompilerError.Format. The `vexls parse` debug subcommand does
// not call it; it prints with the Diagnostic.Format method instead.
func Format(d Diagnostic, source string, color bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: %s:%d:%d: [%s]\n", d.Severity, d.File, d.Line, d.Column, d.Code)

	if line := sourceLine(source, d.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", d.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+d.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// FormatAll renders every diagnostic in diags, separated by blank lines.
func FormatAll(diags []Diagnostic, source string, color bool) string {
	var sb strings.Builder
	for i, d := range diags {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(Format(d, source, color))
	}
	return sb.String()
}
