package resolver

import (
	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/diag"
	"github.com/vexlang/vexls/internal/symbols"
)

// resolveTypeRef resolves ref against scope, recording the match in
// Program.Uses and reporting CodeUnknownIdentifier when nothing matches.
// Returns nil when unresolved so callers can skip any further work that
// depends on the target type.
func (p *Program) resolveTypeRef(mod *Module, scope *symbols.Scope, ref ast.NamePos) *symbols.Symbol {
	sym, ok := scope.Resolve(ref.Name)
	if !ok || sym.Kind != symbols.KindType {
		p.Bag.Addf(diag.CodeUnknownIdentifier, diag.Error, mod.Loaded.Path, ref.P.Line, ref.P.Column,
			"unknown type '"+ref.Name+"'")
		return nil
	}
	p.use(mod, ref.P, sym)
	return sym
}

// typeExprName returns a best-effort display/comparison name for t: the
// referenced name for a NamedType, or a fixed tag for each inline type
// form. Overload selection compares argument types by this name rather
// than deep structural equality, matching spec's "match by exact name
// equality" rule for the common case of named types while still letting
// inline array/set/pointer/routine types participate in arity-only
// matching.
func typeExprName(t ast.TypeExpr) string {
	switch t := t.(type) {
	case *ast.NamedType:
		return t.Name.Name
	case *ast.RecordType:
		return "record"
	case *ast.ArrayType:
		return "array"
	case *ast.SetType:
		return "set"
	case *ast.PointerType:
		return "pointer"
	case *ast.RoutineType:
		return "routine"
	default:
		return ""
	}
}

// linkTypes resolves every record type's parent link within mod, then
// breaks and diagnoses any inheritance cycle, then populates each record
// type's Fields symbols (resolving field type references along the way).
func (p *Program) linkTypes(mod *Module) {
	for _, t := range mod.Loaded.Module.Types {
		rec, ok := t.Type.(*ast.RecordType)
		if !ok || rec.Parent == nil {
			continue
		}
		sym, _ := mod.Scope.ResolveLocal(t.Name.Name)
		if sym == nil {
			continue
		}
		parentSym := p.resolveTypeRef(mod, mod.Scope, *rec.Parent)
		if parentSym != nil {
			sym.Parent = parentSym
		}
	}

	p.breakInheritanceCycles(mod)

	for _, t := range mod.Loaded.Module.Types {
		rec, ok := t.Type.(*ast.RecordType)
		if !ok {
			continue
		}
		sym, _ := mod.Scope.ResolveLocal(t.Name.Name)
		if sym == nil {
			continue
		}
		sym.Fields = sym.Fields[:0]
		for _, f := range rec.Fields {
			fieldSym := &symbols.Symbol{
				Name: f.Name.Name, Kind: symbols.KindField, Pos: f.Name.P,
				File: mod.Loaded.Path, Type: f.Type, Node: f,
			}
			sym.Fields = append(sym.Fields, fieldSym)
			p.use(mod, f.Name.P, fieldSym)
			if named, ok := f.Type.(*ast.NamedType); ok {
				p.resolveTypeRef(mod, mod.Scope, named.Name)
			}
		}
	}
}

// breakInheritanceCycles walks every record type's Parent chain, marking
// nodes as it goes; a chain that revisits a node still marked "in
// progress" is a cycle. Every participant in the cycle is diagnosed with
// CodeInheritanceCycle and has its Parent link cut, per spec's "neither
// participates in method binding; references ... still report its
// declaration and textual uses" — breaking the link leaves the symbol
// itself, and every reference to it, fully intact.
func (p *Program) breakInheritanceCycles(mod *Module) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[*symbols.Symbol]int)

	var walk func(sym *symbols.Symbol, path []*symbols.Symbol)
	walk = func(sym *symbols.Symbol, path []*symbols.Symbol) {
		if sym == nil || sym.Parent == nil {
			if sym != nil {
				state[sym] = done
			}
			return
		}
		switch state[sym] {
		case done:
			return
		case visiting:
			// Found the cycle: everything from sym's first occurrence in
			// path onward is a participant.
			start := 0
			for i, s := range path {
				if s == sym {
					start = i
					break
				}
			}
			for _, participant := range path[start:] {
				p.Bag.Addf(diag.CodeInheritanceCycle, diag.Error, mod.Loaded.Path,
					participant.Pos.Line, participant.Pos.Column,
					"type '"+participant.Name+"' participates in an inheritance cycle")
				participant.Parent = nil
			}
			return
		}
		state[sym] = visiting
		walk(sym.Parent, append(path, sym))
		if state[sym] != done {
			state[sym] = done
		}
	}

	for _, t := range mod.Loaded.Module.Types {
		if _, ok := t.Type.(*ast.RecordType); !ok {
			continue
		}
		sym, _ := mod.Scope.ResolveLocal(t.Name.Name)
		if sym != nil && state[sym] == unvisited {
			walk(sym, nil)
		}
	}
}
