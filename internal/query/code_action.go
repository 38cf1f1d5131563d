package query

import (
	"github.com/vexlang/vexls/internal/diag"
	"github.com/vexlang/vexls/internal/lexer"
)

// TextEdit replaces the text in Range with NewText, the same half-open
// [Start, End) convention as everywhere else in this package.
type TextEdit struct {
	Range   Range
	NewText string
}

// CodeAction is one quick fix offered for a diagnostic: a human-readable
// title and the edit (scoped to a single file, same as every diagnostic)
// that applies it.
type CodeAction struct {
	Title string
	File  string
	Edits []TextEdit
}

// CodeActions returns the quick fixes available for diagnostics whose
// range overlaps pos, in file. Only CodeMissingModuleKind currently has a
// mechanical fix: insert the missing kind keyword right where the parser
// expected one.
func CodeActions(diags []diag.Diagnostic, file string, pos lexer.Position) []CodeAction {
	var out []CodeAction
	for _, d := range diags {
		if d.File != file || d.Line != pos.Line {
			continue
		}
		if d.Code != diag.CodeMissingModuleKind {
			continue
		}
		insertAt := lexer.Position{Line: d.Line, Column: d.Column}
		for _, kind := range []struct{ word, title string }{
			{"exe", "Insert EXE module type"},
			{"dll", "Insert DLL module type"},
			{"lib", "Insert LIB module type"},
		} {
			out = append(out, CodeAction{
				Title: kind.title,
				File:  file,
				Edits: []TextEdit{{
					Range:   Range{Start: insertAt, End: insertAt},
					NewText: kind.word + " ",
				}},
			})
		}
	}
	return out
}
