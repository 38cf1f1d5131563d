package query

import (
	"errors"

	"github.com/vexlang/vexls/internal/resolver"
)

// WorkspaceEdit groups the TextEdits a rename produces by the file each
// belongs to.
type WorkspaceEdit struct {
	Changes map[string][]TextEdit
}

// Rename renames every occurrence (declaration plus every reference) of
// word's symbol to newName. Fails on a built-in target (no declaration
// site to anchor the rename at) or a syntactically invalid identifier, so
// the transport layer never has to reject a WorkspaceEdit after the fact.
func Rename(prog *resolver.Program, file string, word Word, newName string) (WorkspaceEdit, error) {
	if !isValidIdentifier(newName) {
		return WorkspaceEdit{}, errors.New("'" + newName + "' is not a valid identifier")
	}
	sym, ok := prog.UseAt(file, word.Start)
	if !ok {
		return WorkspaceEdit{}, errors.New("no symbol at the requested position")
	}
	if sym.File == "" {
		return WorkspaceEdit{}, errors.New("cannot rename a built-in")
	}

	locs := collectUsesOf(prog, sym, nil)
	edit := WorkspaceEdit{Changes: make(map[string][]TextEdit)}
	for _, loc := range locs {
		edit.Changes[loc.File] = append(edit.Changes[loc.File], TextEdit{
			Range:   loc.Range,
			NewText: newName,
		})
	}
	return edit, nil
}

func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
