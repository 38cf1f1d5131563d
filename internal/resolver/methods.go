package resolver

import (
	"strings"

	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/symbols"
)

// bindMethods appends every method symbol in mod to its receiver type's
// Methods list, in declaration order, after resolving the receiver type
// name. Must run after linkTypes, since it relies on record Parent links
// already being resolved (cycle participants already cut) for method
// dispatch to later walk a clean chain.
func (p *Program) bindMethods(mod *Module) {
	for _, r := range mod.Loaded.Module.Routines {
		if !r.IsMethod || r.ReceiverType == nil {
			continue
		}
		methodSym, ok := mod.Scope.ResolveLocal(r.Name.Name)
		if !ok {
			continue
		}
		if len(methodSym.Overloads) > 0 {
			for _, candidate := range methodSym.Overloads {
				if candidate.Node == r {
					methodSym = candidate
					break
				}
			}
		}

		recvSym := p.resolveTypeRef(mod, mod.Scope, *r.ReceiverType)
		if recvSym == nil {
			continue
		}
		methodSym.Receiver = recvSym
		recvSym.Methods = append(recvSym.Methods, methodSym)
	}
}

// effectiveParams returns sym's parameter list with the receiver parameter
// (Params[0] for a method) dropped, since call-site argument lists never
// include the receiver expression itself.
func effectiveParams(sym *symbols.Symbol) []*ast.Param {
	r, ok := sym.Node.(*ast.RoutineDecl)
	if !ok {
		return nil
	}
	if r.IsMethod && len(r.Params) > 0 {
		return r.Params[1:]
	}
	return r.Params
}

// selectOverload picks the best match among candidates (symbols sharing a
// name) for a call with len(argTypeNames) arguments of the given inferred
// type names (elements may be "" when inference gave up). Preference
// order, per spec's "most-derived overload whose parameter types match by
// exact name equality wins":
//
//  1. Unique candidate matching arity AND every parameter type name.
//  2. Unique candidate matching arity alone.
//  3. Otherwise ambiguous, and ambiguous is true so the caller can report
//     CodeAmbiguousCall: the first exact match is returned when several
//     candidates match exactly, else the first arity-matching candidate.
//
// candidates with no arity match at all are ignored; if none match arity,
// selectOverload falls back to candidates[0] with ambiguous false, since
// an arity mismatch is a different failure the type-mismatch diagnostic
// would cover, not this resolver's job to narrate further.
func selectOverload(candidates []*symbols.Symbol, argTypeNames []string) (sym *symbols.Symbol, ambiguous bool) {
	if len(candidates) == 0 {
		return nil, false
	}
	if len(candidates) == 1 {
		return candidates[0], false
	}

	var arityMatches []*symbols.Symbol
	for _, c := range candidates {
		if len(effectiveParams(c)) == len(argTypeNames) {
			arityMatches = append(arityMatches, c)
		}
	}
	if len(arityMatches) == 0 {
		return candidates[0], false
	}
	if len(arityMatches) == 1 {
		return arityMatches[0], false
	}

	var exactMatches []*symbols.Symbol
	for _, c := range arityMatches {
		if paramTypesMatch(effectiveParams(c), argTypeNames) {
			exactMatches = append(exactMatches, c)
		}
	}
	switch len(exactMatches) {
	case 1:
		return exactMatches[0], false
	case 0:
		return arityMatches[0], len(arityMatches) > 1
	default:
		return exactMatches[0], true
	}
}

func paramTypesMatch(params []*ast.Param, argTypeNames []string) bool {
	for i, param := range params {
		want := argTypeNames[i]
		if want == "" {
			continue
		}
		if !strings.EqualFold(typeExprName(param.Type), want) {
			return false
		}
	}
	return true
}

// lookupMethod finds the method named name reachable from recv, walking
// recv's own Methods first and only then its Parent chain — "most-derived
// overload wins" (Scenario A). Overload selection runs independently at
// each chain level: a match on recv's own type always beats a match
// further up the chain, even if the inherited candidate's signature fits
// the call better.
func lookupMethod(recv *symbols.Symbol, name string, argTypeNames []string) (*symbols.Symbol, bool) {
	for t := recv; t != nil; t = t.Parent {
		var candidates []*symbols.Symbol
		for _, m := range t.Methods {
			if strings.EqualFold(m.Name, name) {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		sym, ambiguous := selectOverload(candidates, argTypeNames)
		return sym, !ambiguous
	}
	return nil, false
}

// lookupField finds a field named name reachable from recv, walking
// recv's own Fields first and then its Parent chain — a derived record's
// field of the same name as a base field simply isn't possible since
// field names are unique within one record's own declaration; this walk
// exists purely to find inherited fields declared on a base type.
func lookupField(recv *symbols.Symbol, name string) (*symbols.Symbol, bool) {
	for t := recv; t != nil; t = t.Parent {
		for _, f := range t.Fields {
			if strings.EqualFold(f.Name, name) {
				return f, true
			}
		}
	}
	return nil, false
}
