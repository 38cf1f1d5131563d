package query

import (
	"sort"

	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/lexer"
	"github.com/vexlang/vexls/internal/resolver"
	"github.com/vexlang/vexls/internal/symbols"
)

// DocumentSymbolKind classifies a DocumentSymbol for the editor's outline
// view, mirroring symbols.Kind but scoped to what top-level declarations
// can be.
type DocumentSymbolKind int

const (
	SymbolKindType DocumentSymbolKind = iota
	SymbolKindRoutine
	SymbolKindMethod
	SymbolKindVariable
	SymbolKindConstant
	SymbolKindTest
)

// DocumentSymbol is one entry in a file's outline: its own name range
// (SelectionRange) and the full span of its declaration (Range).
type DocumentSymbol struct {
	Name           string
	Kind           DocumentSymbolKind
	Range          Range
	SelectionRange Range
}

// DocumentSymbols enumerates file's module's top-level declarations in
// declaration order, each with both its enclosing range and its name's
// own selection range.
func DocumentSymbols(prog *resolver.Program, file string) []DocumentSymbol {
	mod := moduleForFile(prog, file)
	if mod == nil {
		return nil
	}
	m := mod.Loaded.Module

	var out []DocumentSymbol
	for _, c := range m.Consts {
		out = append(out, DocumentSymbol{
			Name: c.Name.Name, Kind: SymbolKindConstant,
			Range: Range{Start: c.P, End: lineEnd(c.Name)}, SelectionRange: nameRange(c.Name),
		})
	}
	for _, t := range m.Types {
		out = append(out, DocumentSymbol{
			Name: t.Name.Name, Kind: SymbolKindType,
			Range: Range{Start: t.P, End: lineEnd(t.Name)}, SelectionRange: nameRange(t.Name),
		})
	}
	for _, v := range m.Vars {
		out = append(out, DocumentSymbol{
			Name: v.Name.Name, Kind: SymbolKindVariable,
			Range: Range{Start: v.P, End: lineEnd(v.Name)}, SelectionRange: nameRange(v.Name),
		})
	}
	for _, r := range m.Routines {
		kind := SymbolKindRoutine
		if r.IsMethod {
			kind = SymbolKindMethod
		}
		end := r.EndLine
		if end == 0 {
			end = r.Name.P.Line
		}
		out = append(out, DocumentSymbol{
			Name: r.Name.Name, Kind: kind,
			Range:          Range{Start: r.P, End: lexer0(end)},
			SelectionRange: nameRange(r.Name),
		})
	}
	for _, t := range m.Tests {
		end := t.EndLine
		if end == 0 {
			end = t.Name.P.Line
		}
		out = append(out, DocumentSymbol{
			Name: t.Name.Name, Kind: SymbolKindTest,
			Range:          Range{Start: t.P, End: lexer0(end)},
			SelectionRange: nameRange(t.Name),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Range.Start, out[j].Range.Start
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return out
}

// moduleForFile finds the resolved module whose source file is file.
func moduleForFile(prog *resolver.Program, file string) *resolver.Module {
	for _, mod := range prog.Modules {
		if mod.Loaded.Path == file {
			return mod
		}
	}
	return nil
}

// lineEnd is a best-effort single-line range end for declarations
// (const/type/var) that carry no EndLine of their own: the declaring
// name's own line, one past its last column.
func lineEnd(name ast.NamePos) lexer.Position {
	return lexer.Position{Line: name.P.Line, Column: name.End()}
}

func lexer0(line int) lexer.Position {
	return lexer.Position{Line: line, Column: 1}
}

// KindFromSymbol maps a resolved symbols.Symbol to the completion/document
// symbol kind classification, for callers building listings directly from
// scope contents rather than AST declarations.
func KindFromSymbol(k symbols.Kind) DocumentSymbolKind {
	switch k {
	case symbols.KindType:
		return SymbolKindType
	case symbols.KindMethod:
		return SymbolKindMethod
	case symbols.KindRoutine:
		return SymbolKindRoutine
	case symbols.KindConst:
		return SymbolKindConstant
	case symbols.KindTest:
		return SymbolKindTest
	default:
		return SymbolKindVariable
	}
}
