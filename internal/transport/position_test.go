package transport

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexlang/vexls/internal/lexer"
	"github.com/vexlang/vexls/internal/query"
	"go.lsp.dev/protocol"
)

func TestPositionConversionIsZeroBasedOnWire(t *testing.T) {
	internal := lexer.Position{Line: 1, Column: 1}
	wire := fromInternalPos(internal)
	require.Equal(t, protocol.Position{Line: 0, Character: 0}, wire)
	require.Equal(t, internal, toInternalPos(wire))
}

func TestPositionConversionRoundTrips(t *testing.T) {
	internal := lexer.Position{Line: 12, Column: 5}
	require.Equal(t, internal, toInternalPos(fromInternalPos(internal)))
}

func TestRangeAndLocationConversion(t *testing.T) {
	r := query.Range{
		Start: lexer.Position{Line: 3, Column: 1},
		End:   lexer.Position{Line: 3, Column: 8},
	}
	wireRange := fromInternalRange(r)
	require.Equal(t, uint32(2), wireRange.Start.Line)
	require.Equal(t, uint32(0), wireRange.Start.Character)
	require.Equal(t, uint32(7), wireRange.End.Character)

	loc := fromInternalLocation(query.Location{File: "/a/b.vx", Range: r})
	require.Equal(t, pathToURI("/a/b.vx"), loc.URI)
}
