package query

import (
	"strings"

	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/resolver"
	"github.com/vexlang/vexls/internal/symbols"
)

// builtinLexicon renders a fixed description for every keyword and
// built-in type name, used by Hover when the word under the cursor
// resolved to no symbol at all. A built-in type name used as a type
// reference does resolve, and is rendered from its symbol as "type Name".
var builtinLexicon = map[string]string{
	"module": "keyword: introduces a module's name and kind (exe/lib/dll)",
	"import": "keyword: makes another module's exported symbols reachable as Module.Name",
	"export": "keyword: marks the following declaration reachable from other modules",
	"const":  "keyword: introduces one or more constant declarations",
	"var":    "keyword: introduces one or more variable declarations",
	"type":   "keyword: introduces a type declaration",
	"record": "keyword: introduces a record type, optionally with a parent in parentheses",
	"routine": "keyword: introduces a free routine declaration",
	"method":  "keyword: introduces a method declaration bound to a receiver type",
	"begin":   "keyword: opens a statement block, closed by a matching 'end'",
	"end":     "keyword: closes a statement block",
	"if":      "keyword: conditional statement",
	"then":    "keyword: introduces the branch taken when the 'if' condition holds",
	"else":    "keyword: introduces the branch taken when a condition does not hold",
	"while":   "keyword: pre-tested loop",
	"do":      "keyword: introduces the body of a 'while' or 'for' loop",
	"for":     "keyword: counted loop over an integer range",
	"to":      "keyword: ascending bound in a 'for' loop",
	"downto":  "keyword: descending bound in a 'for' loop",
	"step":    "keyword: explicit stride in a 'for' loop",
	"repeat":  "keyword: post-tested loop, closed by 'until'",
	"until":   "keyword: closes a 'repeat' loop with its condition",
	"case":    "keyword: multi-branch selection over a value",
	"of":      "keyword: introduces a 'case' statement's branches",
	"try":     "keyword: introduces a block guarded by 'except'/'finally'",
	"except":  "keyword: introduces exception-handling branches",
	"finally": "keyword: introduces a block that always runs",
	"return":  "keyword: exits the current routine, optionally with a value",
	"new":     "keyword: allocates a new instance, optionally narrowed with 'as'",
	"dispose": "keyword: releases a previously allocated instance",
	"as":      "keyword: checked narrowing cast",
	"is":      "keyword: runtime type test",
	"inherited": "keyword: calls the overridden method on the receiver's parent type",
	"set":       "keyword: introduces a set type ('set of T')",
	"array":     "keyword: introduces an array type ('array of T' or 'array[Low..High] of T')",
	"external":  "keyword: marks a routine implemented outside this module",
	"deprecated": "keyword: marks a declaration discouraged for new use",
	"test":       "keyword: introduces a trailing test declaration",

	"Integer":  "built-in type: a signed 64-bit integer",
	"UInteger": "built-in type: an unsigned 64-bit integer",
	"Float":    "built-in type: a 64-bit floating-point number",
	"Boolean":  "built-in type: a boolean, 'true' or 'false'",
	"Char":     "built-in type: a single-byte character",
	"WideChar": "built-in type: a multi-byte character",
	"Pointer":  "built-in type: an untyped pointer",
	"String":   "built-in type: a character sequence",
	"Set":      "built-in type: a set of ordinal values",
	"true":     "built-in constant: the boolean value true",
	"false":    "built-in constant: the boolean value false",
}

// Hover renders a one-line signature for the symbol the given word
// resolves to, per spec: routines as "routine Name(p1: T1; p2: T2): R",
// vars/consts/fields as "kind Name: Type", types as "type Name". Falls
// back to the fixed keyword/built-in lexicon when word names nothing the
// resolver linked.
func Hover(prog *resolver.Program, file string, word Word) (string, bool) {
	if sym, ok := prog.UseAt(file, word.Start); ok {
		return RenderSignature(sym), true
	}
	if text, ok := builtinLexicon[word.Text]; ok {
		return text, true
	}
	return "", false
}

// RenderSignature renders sym's one-line signature for hover text and
// completion detail strings.
func RenderSignature(sym *symbols.Symbol) string {
	switch sym.Kind {
	case symbols.KindRoutine, symbols.KindMethod:
		return renderRoutineSignature(sym)
	case symbols.KindType:
		return "type " + sym.Name
	case symbols.KindModule:
		return "module " + sym.Name
	case symbols.KindVar, symbols.KindConst, symbols.KindField, symbols.KindParam, symbols.KindTest:
		return sym.Kind.String() + " " + sym.Name + typeSuffix(sym.Type)
	default:
		return sym.Name
	}
}

func renderRoutineSignature(sym *symbols.Symbol) string {
	r, ok := sym.Node.(*ast.RoutineDecl)
	if !ok {
		return "routine " + sym.Name
	}
	var b strings.Builder
	if r.IsMethod {
		b.WriteString("method ")
	} else {
		b.WriteString("routine ")
	}
	b.WriteString(sym.Name)
	b.WriteByte('(')
	params := r.Params
	if r.IsMethod && len(params) > 0 {
		params = params[1:]
	}
	for i, p := range params {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(p.Name.Name)
		b.WriteString(": ")
		b.WriteString(typeExprText(p.Type))
	}
	if r.Variadic {
		if len(params) > 0 {
			b.WriteString("; ")
		}
		b.WriteString("...")
	}
	b.WriteByte(')')
	if r.ReturnType != nil {
		b.WriteString(": ")
		b.WriteString(r.ReturnType.Name)
	}
	return b.String()
}

func typeSuffix(t ast.TypeExpr) string {
	if t == nil {
		return ""
	}
	return ": " + typeExprText(t)
}

// typeExprText renders a best-effort textual form of a type expression for
// signatures: the referenced name for a NamedType, a short tag otherwise.
func typeExprText(t ast.TypeExpr) string {
	switch t := t.(type) {
	case *ast.NamedType:
		return t.Name.Name
	case *ast.RecordType:
		return "record"
	case *ast.ArrayType:
		return "array of " + typeExprText(t.Elem)
	case *ast.SetType:
		return "set of " + typeExprText(t.Elem)
	case *ast.PointerType:
		return "^" + typeExprText(t.Elem)
	case *ast.RoutineType:
		return "routine"
	default:
		return ""
	}
}
