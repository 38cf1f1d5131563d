package transport

import (
	"github.com/vexlang/vexls/internal/lexer"
	"github.com/vexlang/vexls/internal/query"
	"go.lsp.dev/protocol"
)

// toInternalPos converts a 0-based wire Position into a 1-based
// lexer.Position (spec.md §6: "all conversions happen at the transport
// edge"); diagnostics.go's toWirePos and convert.go's toFoldingRanges
// apply the same offset to their own position shapes.
func toInternalPos(p protocol.Position) lexer.Position {
	return lexer.Position{Line: int(p.Line) + 1, Column: int(p.Character) + 1}
}

// fromInternalPos is toInternalPos's inverse.
func fromInternalPos(p lexer.Position) protocol.Position {
	line := p.Line - 1
	if line < 0 {
		line = 0
	}
	col := p.Column - 1
	if col < 0 {
		col = 0
	}
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}

func fromInternalRange(r query.Range) protocol.Range {
	return protocol.Range{Start: fromInternalPos(r.Start), End: fromInternalPos(r.End)}
}

func fromInternalLocation(loc query.Location) protocol.Location {
	return protocol.Location{URI: pathToURI(loc.File), Range: fromInternalRange(loc.Range)}
}

func fromInternalLocations(locs []query.Location) []protocol.Location {
	out := make([]protocol.Location, len(locs))
	for i, loc := range locs {
		out[i] = fromInternalLocation(loc)
	}
	return out
}
