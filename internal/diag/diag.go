// Package diag defines the four-severity diagnostic taxonomy shared by the
// lexer, parser, resolver, and query engine (spec.md §7). A Diagnostic is a
// plain value: producing one never stops the component that raised it —
// lexer, parser, and resolver all accumulate-and-continue.
package diag

import (
	"fmt"
	"strings"
)

// Severity classifies how serious a Diagnostic is.
type Severity int

const (
	Hint Severity = iota
	Warning
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Hint:
		return "hint"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Stable diagnostic codes. Every diagnostic the core itself produces uses
// one of these; the transport layer never invents new ones.
const (
	CodeUnexpectedToken      = "E101"
	CodeUnterminatedLiteral  = "E102"
	CodeUnknownIdentifier    = "E103"
	CodeDuplicateDeclaration = "E104"
	CodeTypeMismatch         = "E105"
	CodeInheritanceCycle     = "E106"
	CodeMissingModuleKind    = "E107"
	CodeUnresolvedImport     = "E108"
	CodeInvalidOverload      = "E109"
	CodeMisuseAsIs           = "E110"
	CodeAmbiguousCall        = "E111"
)

// Diagnostic is one reported problem, always attached to a specific
// file/line/column.
type Diagnostic struct {
	Code     string
	Severity Severity
	File     string
	Line     int
	Column   int
	Message  string
}

// Bag accumulates diagnostics produced across a single rebuild. Every
// component that can fail appends here instead of returning an error,
// matching spec.md §7's "accumulate, don't stop" propagation rule.
type Bag struct {
	items []Diagnostic
}

// Add appends one diagnostic.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// Addf appends a diagnostic built from its parts, for callers that don't
// already have a Diagnostic value handy.
func (b *Bag) Addf(code string, sev Severity, file string, line, col int, msg string) {
	b.Add(Diagnostic{Code: code, Severity: sev, File: file, Line: line, Column: col, Message: msg})
}

// All returns every diagnostic accumulated so far, in the order reported.
func (b *Bag) All() []Diagnostic { return b.items }

// Len reports how many diagnostics have been accumulated.
func (b *Bag) Len() int { return len(b.items) }

// Format renders a diagnostic the way the vexls parse debug
// subcommand prints it: a "file:line:column: severity code: message"
// header, the offending source line, and a caret under the column — the
// same source-line-plus-caret shape as the teacher's
// internal/errors.CompilerError.Format, reduced to the plain-text case
// (no ANSI color, no multi-line context) since these subcommands are
// piped output, not an interactive terminal session.
func (d Diagnostic) Format(source string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:%d:%d: %s %s: %s\n", d.File, d.Line, d.Column, d.Severity, d.Code, d.Message)

	line := sourceLine(source, d.Line)
	if line == "" {
		return strings.TrimSuffix(sb.String(), "\n")
	}
	sb.WriteString(line)
	sb.WriteString("\n")
	col := d.Column - 1
	if col < 0 {
		col = 0
	}
	sb.WriteString(strings.Repeat(" ", col))
	sb.WriteString("^")
	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// ForFile filters to only the diagnostics attached to the given file.
func ForFile(diags []Diagnostic, file string) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.File == file {
			out = append(out, d)
		}
	}
	return out
}
