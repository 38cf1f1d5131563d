package query

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/vexlang/vexls/internal/lexer"
)

// TestQuerySnapshots golden-tests the structured results of a handful of
// query operations over one fixture module, the same go-snaps style the
// teacher uses for its own fixture-driven tests (internal/interp/
// fixture_test.go's snaps.MatchSnapshot), scoped here to completion,
// hover, and semantic tokens — the query operations whose output is a
// sizable structured value rather than a single bool/string/location.
func TestQuerySnapshots(t *testing.T) {
	prog := newTestProgram(t, map[string]string{
		"Shapes": `module Shapes lib;
export type TShape = record
  X: Integer;
  Y: Integer;
end;

export method Area(Self: TShape): Integer;
begin
  return Self.X * Self.Y;
end;

export routine MakeShape(W: Integer; H: Integer): TShape;
var S: TShape;
begin
  S.X := W;
  S.Y := H;
  return S;
end;
`,
	})
	src := prog.sources["Shapes"]

	t.Run("completion_after_dot", func(t *testing.T) {
		items := Completion(prog.Program, "Shapes.vx", src, lexer.Position{Line: 9, Column: 15})
		snaps.MatchSnapshot(t, renderCompletionItems(items))
	})

	t.Run("hover_on_routine", func(t *testing.T) {
		word, ok := WordAt(src, lexer.Position{Line: 12, Column: 18})
		if !ok {
			t.Fatal("expected a word at the MakeShape declaration site")
		}
		text, ok := Hover(prog.Program, "Shapes.vx", word)
		if !ok {
			t.Fatal("expected hover text for MakeShape")
		}
		snaps.MatchSnapshot(t, text)
	})

	t.Run("semantic_tokens", func(t *testing.T) {
		tokens := SemanticTokens(prog.Program, "Shapes.vx")
		snaps.MatchSnapshot(t, renderTokens(tokens))
	})
}

func renderCompletionItems(items []CompletionItem) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("%d %s %s", it.Kind, it.Label, it.Detail)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

func renderTokens(tokens []Token) string {
	lines := make([]string, len(tokens))
	for i, tok := range tokens {
		lines[i] = fmt.Sprintf("%d:%d len=%d type=%d mods=%d", tok.Line, tok.Column, tok.Length, tok.Type, tok.Modifiers)
	}
	return strings.Join(lines, "\n")
}
