package query

import (
	"strings"

	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/lexer"
	"github.com/vexlang/vexls/internal/resolver"
	"github.com/vexlang/vexls/internal/symbols"
)

// CompletionItem is one candidate offered at a cursor position.
type CompletionItem struct {
	Label  string
	Kind   DocumentSymbolKind
	Detail string
}

// completionKeywords is the fixed list of reserved words always offered
// outside a dot context, independent of any resolved symbol.
var completionKeywords = []string{
	"module", "import", "export", "const", "var", "type", "record",
	"routine", "method", "begin", "end", "if", "then", "else", "while",
	"do", "for", "to", "downto", "step", "repeat", "until", "case", "of",
	"try", "except", "finally", "return", "new", "dispose", "as", "is",
	"inherited", "set", "array", "external", "deprecated", "test",
}

// Completion resolves the candidates available at pos in file. When pos
// sits right after "X.", candidates are narrowed to X's members: another
// module's exported symbols, or a record-typed value's fields and methods
// (walking the inheritance chain, most-derived first). Otherwise every
// symbol reachable from the enclosing scope is offered, alongside every
// reserved keyword and built-in type name.
func Completion(prog *resolver.Program, file, source string, pos lexer.Position) []CompletionItem {
	if qualifier, ok := dotQualifierBefore(source, pos); ok {
		return completeMember(prog, file, qualifier, pos)
	}
	return completeScope(prog, file, pos)
}

// dotQualifierBefore reports whether pos is immediately preceded by
// "Identifier." (skipping no whitespace, since completion after a dot
// fires as the dot is typed), returning that identifier.
func dotQualifierBefore(source string, pos lexer.Position) (string, bool) {
	idx := offsetForPosition(source, pos)
	if idx <= 0 {
		return "", false
	}
	runes := []rune(source)
	if runes[idx-1] != '.' {
		return "", false
	}
	end := idx - 1
	start := end
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	if start == end {
		return "", false
	}
	return string(runes[start:end]), true
}

func completeMember(prog *resolver.Program, file, qualifier string, pos lexer.Position) []CompletionItem {
	if mod, ok := prog.ModuleByName(qualifier); ok {
		var out []CompletionItem
		for _, sym := range mod.Scope.All() {
			if !sym.Exported {
				continue
			}
			out = append(out, CompletionItem{
				Label: sym.Name, Kind: KindFromSymbol(sym.Kind), Detail: RenderSignature(sym),
			})
		}
		return out
	}

	// The qualifier names neither a loaded module nor a resolvable value:
	// fall back to the keyword/built-in set rather than an empty list.
	qualSym, ok := qualifierSymbol(prog, file, qualifier, pos)
	if !ok {
		return keywordAndBuiltinItems()
	}
	recv := typeSymbolOf(prog, qualSym)
	if recv == nil {
		return keywordAndBuiltinItems()
	}
	var out []CompletionItem
	seen := make(map[string]bool)
	for t := recv; t != nil; t = t.Parent {
		for _, f := range t.Fields {
			if seen[strings.ToLower(f.Name)] {
				continue
			}
			seen[strings.ToLower(f.Name)] = true
			out = append(out, CompletionItem{Label: f.Name, Kind: SymbolKindVariable, Detail: RenderSignature(f)})
		}
		for _, m := range t.Methods {
			if seen[strings.ToLower(m.Name)] {
				continue
			}
			seen[strings.ToLower(m.Name)] = true
			out = append(out, CompletionItem{Label: m.Name, Kind: SymbolKindMethod, Detail: RenderSignature(m)})
		}
	}
	return out
}

// qualifierSymbol finds the symbol named qualifier visible at pos: first
// the enclosing routine's own params/locals (found directly off the AST,
// since routine-local scopes aren't retained past resolution), then the
// module scope.
func qualifierSymbol(prog *resolver.Program, file, qualifier string, pos lexer.Position) (*symbols.Symbol, bool) {
	mod := moduleForFile(prog, file)
	if mod == nil {
		return nil, false
	}
	for _, r := range mod.Loaded.Module.Routines {
		if !lineWithin(pos.Line, r.P.Line, r.EndLine) {
			continue
		}
		for _, p := range r.Params {
			if strings.EqualFold(p.Name.Name, qualifier) {
				return &symbols.Symbol{Name: p.Name.Name, Kind: symbols.KindParam, Type: p.Type, File: file}, true
			}
		}
		for _, v := range r.LocalVars {
			if strings.EqualFold(v.Name.Name, qualifier) {
				return &symbols.Symbol{Name: v.Name.Name, Kind: symbols.KindVar, Type: v.Type, File: file}, true
			}
		}
		break
	}
	return mod.Scope.Resolve(qualifier)
}

// typeSymbolOf returns the record-type symbol sym's value has: sym itself
// if sym already names a type, otherwise the type named by sym.Type.
func typeSymbolOf(prog *resolver.Program, sym *symbols.Symbol) *symbols.Symbol {
	if sym.Kind == symbols.KindType {
		return sym
	}
	named, ok := sym.Type.(*ast.NamedType)
	if !ok {
		return nil
	}
	mod := moduleForFile(prog, sym.File)
	if mod == nil {
		return nil
	}
	typeSym, ok := mod.Scope.Resolve(named.Name.Name)
	if !ok {
		return nil
	}
	return typeSym
}

// completeScope gathers every symbol reachable from the routine enclosing
// pos (its own params/locals, found directly off the AST rather than a
// retained scope), every module-level declaration, and the fixed keyword
// and builtin-type lists.
func completeScope(prog *resolver.Program, file string, pos lexer.Position) []CompletionItem {
	mod := moduleForFile(prog, file)
	if mod == nil {
		return nil
	}
	m := mod.Loaded.Module

	var out []CompletionItem
	for _, r := range m.Routines {
		if !lineWithin(pos.Line, r.P.Line, r.EndLine) {
			continue
		}
		for _, p := range r.Params {
			out = append(out, CompletionItem{Label: p.Name.Name, Kind: SymbolKindVariable, Detail: "param " + p.Name.Name + typeSuffix(p.Type)})
		}
		for _, c := range r.LocalConsts {
			out = append(out, CompletionItem{Label: c.Name.Name, Kind: SymbolKindConstant, Detail: "const " + c.Name.Name})
		}
		for _, v := range r.LocalVars {
			out = append(out, CompletionItem{Label: v.Name.Name, Kind: SymbolKindVariable, Detail: "var " + v.Name.Name + typeSuffix(v.Type)})
		}
		break
	}

	for _, sym := range mod.Scope.All() {
		out = append(out, CompletionItem{Label: sym.Name, Kind: KindFromSymbol(sym.Kind), Detail: RenderSignature(sym)})
	}

	out = append(out, keywordAndBuiltinItems()...)
	return out
}

// keywordAndBuiltinItems is the fixed reserved-word/built-in-type/boolean-
// constant set offered with no dot context and no other symbols resolved —
// on its own, this is also what a dot qualifier naming nothing resolvable
// falls back to.
func keywordAndBuiltinItems() []CompletionItem {
	var out []CompletionItem
	for _, kw := range completionKeywords {
		out = append(out, CompletionItem{Label: kw, Detail: builtinLexicon[kw]})
	}
	for name, detail := range builtinLexicon {
		switch {
		case strings.HasPrefix(detail, "built-in type"):
			out = append(out, CompletionItem{Label: name, Kind: SymbolKindType, Detail: detail})
		case strings.HasPrefix(detail, "built-in constant"):
			out = append(out, CompletionItem{Label: name, Kind: SymbolKindConstant, Detail: detail})
		}
	}
	return out
}
