// Package query answers every editor-facing question over a resolved
// program: word-at-position, completion, hover, navigation,
// references/highlights, document symbols, signature help, code actions,
// rename, folding/selection ranges, and semantic tokens.
//
// Every function here is read-only and takes a *resolver.Program (plus,
// where source text matters, the buffer text itself) — never a URI, never
// a 0-based position. Wire-level concerns (JSON-RPC framing, URI-to-path,
// 0-based-to-1-based position conversion, go.lsp.dev/protocol request/
// response shapes) live at the transport edge, per spec's "all conversions
// happen at the transport edge": this package only ever sees file paths
// and 1-based lexer.Position values, the same currency the resolver and
// AST already use, so it can be exercised directly from tests without a
// transport in the loop.
//
// No teacher precedent (go-dws has no LSP); every operation here is
// grounded feature-by-feature on bufbuild-buf's buflsp package, adapted
// from protobuf/CEL symbol sources to Vex's own *resolver.Program and
// *symbols.Symbol — see DESIGN.md's Query engine entry for the mapping.
package query

import (
	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/lexer"
)

// Range is a half-open [Start, End) span within one file, both ends
// 1-based like every other position in this module.
type Range struct {
	Start lexer.Position
	End   lexer.Position
}

// Location pins a Range to the file it belongs to.
type Location struct {
	File  string
	Range Range
}

// nameRange builds the [start, end) span covering exactly np's own text,
// using NamePos.End for the exclusive end column.
func nameRange(np ast.NamePos) Range {
	return Range{
		Start: np.P,
		End:   lexer.Position{Line: np.P.Line, Column: np.End(), Offset: np.P.Offset},
	}
}

// positionWithColumn returns p with its Column replaced, same Line.
func positionWithColumn(p lexer.Position, col int) lexer.Position {
	return lexer.Position{Line: p.Line, Column: col}
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
