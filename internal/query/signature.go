package query

import (
	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/lexer"
	"github.com/vexlang/vexls/internal/resolver"
	"github.com/vexlang/vexls/internal/symbols"
)

// ParameterInformation is one parameter of a SignatureInformation: its
// label as it appears in the rendered signature, plus its own type text.
type ParameterInformation struct {
	Label string
	Type  string
}

// SignatureInformation is one candidate signature for a callee, rendered
// the same way Hover renders a routine symbol.
type SignatureInformation struct {
	Label      string
	Parameters []ParameterInformation
}

// SignatureHelp is the result of a signature-help request: every overload
// of the resolved callee, plus which one is the best match for the
// argument count seen so far and which parameter of it is active.
type SignatureHelp struct {
	Signatures      []SignatureInformation
	ActiveSignature int
	ActiveParameter int
}

// Signature resolves the callee under pos via RoutineNameBeforeParen and
// renders every sibling in its overload group as a candidate signature,
// picking the first overload whose parameter count can still accept
// ArgIndex as the active one (falling back to the last overload, the
// common convention for "too many arguments so far").
func Signature(prog *resolver.Program, file, source string, pos lexer.Position) (SignatureHelp, bool) {
	ctx, ok := RoutineNameBeforeParen(source, pos)
	if !ok {
		return SignatureHelp{}, false
	}
	sym, ok := prog.UseAt(file, ctx.Callee.Start)
	if !ok || !sym.IsCallable() {
		return SignatureHelp{}, false
	}

	group := sym.Overloads
	if len(group) == 0 {
		group = []*symbols.Symbol{sym}
	}

	help := SignatureHelp{ActiveParameter: ctx.ArgIndex}
	var decls []*ast.RoutineDecl
	active := -1
	for _, cand := range group {
		r, ok := cand.Node.(*ast.RoutineDecl)
		if !ok {
			continue
		}
		params := effectiveSignatureParams(r)
		info := SignatureInformation{Label: renderRoutineSignature(cand)}
		for _, p := range params {
			info.Parameters = append(info.Parameters, ParameterInformation{
				Label: p.Name.Name, Type: typeExprText(p.Type),
			})
		}
		if active < 0 && (ctx.ArgIndex < len(params) || r.Variadic) {
			active = len(help.Signatures)
		}
		help.Signatures = append(help.Signatures, info)
		decls = append(decls, r)
	}
	if len(help.Signatures) == 0 {
		return SignatureHelp{}, false
	}
	if active < 0 {
		active = len(help.Signatures) - 1
	}
	help.ActiveSignature = active
	if max := len(help.Signatures[active].Parameters) - 1; help.ActiveParameter > max && max >= 0 && !decls[active].Variadic {
		help.ActiveParameter = max
	}
	return help, true
}

// effectiveSignatureParams drops the receiver parameter from a method's
// parameter list, matching renderRoutineSignature and methods.go's own
// effectiveParams.
func effectiveSignatureParams(r *ast.RoutineDecl) []*ast.Param {
	params := r.Params
	if r.IsMethod && len(params) > 0 {
		params = params[1:]
	}
	return params
}
