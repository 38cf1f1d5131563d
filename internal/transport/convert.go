// Conversions from internal/query's plain-Go result types to go.lsp.dev/
// protocol's wire types. This is the one place in the whole module allowed
// to know both vocabularies at once — query stays protocol-agnostic
// (internal/query's own package doc), and everything upstream of dispatch.go
// only ever sees protocol types.
package transport

import (
	"github.com/vexlang/vexls/internal/query"
	"go.lsp.dev/protocol"
)

func toCompletionItemKind(k query.DocumentSymbolKind) protocol.CompletionItemKind {
	switch k {
	case query.SymbolKindType:
		return protocol.CompletionItemKindClass
	case query.SymbolKindRoutine:
		return protocol.CompletionItemKindFunction
	case query.SymbolKindMethod:
		return protocol.CompletionItemKindMethod
	case query.SymbolKindConstant:
		return protocol.CompletionItemKindConstant
	case query.SymbolKindTest:
		return protocol.CompletionItemKindFunction
	default:
		return protocol.CompletionItemKindVariable
	}
}

func toSymbolKind(k query.DocumentSymbolKind) protocol.SymbolKind {
	switch k {
	case query.SymbolKindType:
		return protocol.SymbolKindStruct
	case query.SymbolKindRoutine, query.SymbolKindTest:
		return protocol.SymbolKindFunction
	case query.SymbolKindMethod:
		return protocol.SymbolKindMethod
	case query.SymbolKindConstant:
		return protocol.SymbolKindConstant
	default:
		return protocol.SymbolKindVariable
	}
}

func toCompletionList(items []query.CompletionItem) *protocol.CompletionList {
	list := &protocol.CompletionList{Items: make([]protocol.CompletionItem, len(items))}
	for i, it := range items {
		list.Items[i] = protocol.CompletionItem{
			Label:  it.Label,
			Kind:   toCompletionItemKind(it.Kind),
			Detail: it.Detail,
		}
	}
	return list
}

func toHover(text string, rng *query.Range) *protocol.Hover {
	hover := &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.PlainText, Value: text},
	}
	if rng != nil {
		r := fromInternalRange(*rng)
		hover.Range = &r
	}
	return hover
}

func toDocumentSymbols(syms []query.DocumentSymbol) []protocol.DocumentSymbol {
	out := make([]protocol.DocumentSymbol, len(syms))
	for i, s := range syms {
		out[i] = protocol.DocumentSymbol{
			Name:           s.Name,
			Kind:           toSymbolKind(s.Kind),
			Range:          fromInternalRange(s.Range),
			SelectionRange: fromInternalRange(s.SelectionRange),
		}
	}
	return out
}

func toSignatureHelp(help query.SignatureHelp) *protocol.SignatureHelp {
	out := &protocol.SignatureHelp{
		ActiveSignature: uint32(help.ActiveSignature),
		ActiveParameter: uint32(help.ActiveParameter),
	}
	for _, s := range help.Signatures {
		info := protocol.SignatureInformation{Label: s.Label}
		for _, p := range s.Parameters {
			info.Parameters = append(info.Parameters, protocol.ParameterInformation{Label: p.Label})
		}
		out.Signatures = append(out.Signatures, info)
	}
	return out
}

func toCodeActions(actions []query.CodeAction) []protocol.CodeAction {
	out := make([]protocol.CodeAction, len(actions))
	for i, a := range actions {
		out[i] = protocol.CodeAction{
			Title: a.Title,
			Kind:  protocol.QuickFix,
			Edit:  toWorkspaceEdit(query.WorkspaceEdit{Changes: map[string][]query.TextEdit{a.File: a.Edits}}),
		}
	}
	return out
}

func toWorkspaceEdit(edit query.WorkspaceEdit) *protocol.WorkspaceEdit {
	changes := make(map[protocol.DocumentURI][]protocol.TextEdit, len(edit.Changes))
	for file, edits := range edit.Changes {
		wireEdits := make([]protocol.TextEdit, len(edits))
		for i, e := range edits {
			wireEdits[i] = protocol.TextEdit{Range: fromInternalRange(e.Range), NewText: e.NewText}
		}
		changes[pathToURI(file)] = wireEdits
	}
	return &protocol.WorkspaceEdit{Changes: changes}
}

func toFoldingRanges(ranges []query.FoldingRange) []protocol.FoldingRange {
	out := make([]protocol.FoldingRange, len(ranges))
	for i, r := range ranges {
		out[i] = protocol.FoldingRange{
			StartLine: uint32(r.StartLine - 1),
			EndLine:   uint32(r.EndLine - 1),
		}
	}
	return out
}

// selectionRangeWire mirrors protocol's (unexported-in-Server-interface, but
// still wire-valid) SelectionRange shape by hand, since this build of
// go.lsp.dev/protocol's Server interface has no SelectionRange method to
// type against — see dispatch.go's Request handling of
// "textDocument/selectionRange" for why this type exists at all.
type selectionRangeWire struct {
	Range  protocol.Range      `json:"range"`
	Parent *selectionRangeWire `json:"parent,omitempty"`
}

func toSelectionRange(sel query.SelectionRange) *selectionRangeWire {
	out := &selectionRangeWire{Range: fromInternalRange(sel.Range)}
	if sel.Parent != nil {
		out.Parent = toSelectionRange(*sel.Parent)
	}
	return out
}

// semanticTokensLegend is advertised on initialize and must stay in the same
// order as query.TokenType's iota values, since the wire encoding is a bare
// index into this list.
var semanticTokensLegend = protocol.SemanticTokensLegend{
	TokenTypes: []string{"namespace", "type", "parameter", "variable", "property", "function", "enumMember"},
	TokenModifiers: []string{"declaration", "readonly", "defaultLibrary"},
}

func toSemanticTokens(tokens []query.Token) *protocol.SemanticTokens {
	encoded := query.EncodeTokenDeltas(tokens)
	data := make([]uint32, 0, len(encoded)*5)
	for _, t := range encoded {
		data = append(data,
			uint32(t.DeltaLine), uint32(t.DeltaStartChar), uint32(t.Length),
			uint32(t.Type), uint32(t.Modifiers),
		)
	}
	return &protocol.SemanticTokens{Data: data}
}
