package query

import (
	"github.com/vexlang/vexls/internal/resolver"
	"github.com/vexlang/vexls/internal/symbols"
)

// TokenType is one entry of the fixed semantic-highlighting legend.
type TokenType int

const (
	TokenNamespace TokenType = iota
	TokenType_
	TokenParameter
	TokenVariable
	TokenProperty
	TokenFunction
	TokenEnumMember
)

// TokenModifier bits, combined with bitwise-or into Token.Modifiers.
type TokenModifier int

const (
	ModifierDeclaration TokenModifier = 1 << iota
	ModifierReadonly
	ModifierDefaultLibrary
)

// Token is one semantic-highlighting annotation before delta encoding:
// absolute line/column, the token's own rune length, its legend type, and
// its modifier bitmask.
type Token struct {
	Line      int
	Column    int
	Length    int
	Type      TokenType
	Modifiers TokenModifier
}

// SemanticTokens walks every recorded name-reference in file — which,
// thanks to the resolver's self-registration of every declaration site,
// already covers declarations and references alike — classifies each by
// its resolved symbol's kind, and returns them sorted by (line, column)
// ready for delta encoding (see EncodeTokenDeltas).
func SemanticTokens(prog *resolver.Program, file string) []Token {
	var out []Token
	for ref, sym := range prog.Uses {
		if ref.File != file {
			continue
		}
		tt, ok := tokenTypeForKind(sym.Kind)
		if !ok {
			continue
		}
		var mods TokenModifier
		if ref.Pos == sym.Pos {
			mods |= ModifierDeclaration
		}
		if sym.Kind == symbols.KindConst {
			mods |= ModifierReadonly
		}
		if sym.File == "" {
			mods |= ModifierDefaultLibrary
		}
		out = append(out, Token{
			Line: ref.Pos.Line, Column: ref.Pos.Column,
			Length: len([]rune(sym.Name)), Type: tt, Modifiers: mods,
		})
	}
	sortTokens(out)
	return out
}

func tokenTypeForKind(k symbols.Kind) (TokenType, bool) {
	switch k {
	case symbols.KindModule:
		return TokenNamespace, true
	case symbols.KindType:
		return TokenType_, true
	case symbols.KindParam:
		return TokenParameter, true
	case symbols.KindVar:
		return TokenVariable, true
	case symbols.KindField:
		return TokenProperty, true
	case symbols.KindRoutine, symbols.KindMethod:
		return TokenFunction, true
	case symbols.KindConst:
		return TokenEnumMember, true
	default:
		return 0, false
	}
}

func sortTokens(toks []Token) {
	for i := 1; i < len(toks); i++ {
		for j := i; j > 0 && tokenLess(toks[j], toks[j-1]); j-- {
			toks[j], toks[j-1] = toks[j-1], toks[j]
		}
	}
}

func tokenLess(a, b Token) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}

// EncodedToken is one delta-encoded tuple in the LSP semanticTokens/full
// wire format, 0-based like the rest of the wire: DeltaLine counts lines
// from the previous token (the first token counts from line 1), and
// DeltaStartChar is the column offset from the previous token when
// DeltaLine is 0, else the token's own 0-based column.
type EncodedToken struct {
	DeltaLine      int
	DeltaStartChar int
	Length         int
	Type           TokenType
	Modifiers      TokenModifier
}

// EncodeTokenDeltas delta-encodes an already (line, column)-sorted token
// list. Callers must sort first (SemanticTokens already does); encoding an
// unsorted list produces negative deltas, which is exactly the "single
// declaration-order pass is not sufficient" failure mode.
func EncodeTokenDeltas(toks []Token) []EncodedToken {
	out := make([]EncodedToken, len(toks))
	prevLine, prevCol := 1, 1
	for i, t := range toks {
		deltaLine := t.Line - prevLine
		deltaCol := t.Column - 1
		if deltaLine == 0 {
			deltaCol = t.Column - prevCol
		}
		out[i] = EncodedToken{
			DeltaLine: deltaLine, DeltaStartChar: deltaCol,
			Length: t.Length, Type: t.Type, Modifiers: t.Modifiers,
		}
		prevLine, prevCol = t.Line, t.Column
	}
	return out
}
