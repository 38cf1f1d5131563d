package resolver

import (
	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/diag"
	"github.com/vexlang/vexls/internal/symbols"
)

// linkBodies resolves every remaining name reference in mod: routine and
// test bodies, local declarations' type/initializer expressions, and the
// module's own entry body. Must run after bindMethods so that call
// resolution on a receiver expression can walk a fully populated
// Methods/Parent chain.
func (p *Program) linkBodies(mod *Module) {
	m := mod.Loaded.Module

	for _, v := range m.Vars {
		if named, ok := v.Type.(*ast.NamedType); ok {
			p.resolveTypeRef(mod, mod.Scope, named.Name)
		}
	}
	for _, c := range m.Consts {
		if c.Type != nil {
			if named, ok := c.Type.(*ast.NamedType); ok {
				p.resolveTypeRef(mod, mod.Scope, named.Name)
			}
		}
		p.resolveExpr(mod, mod.Scope, c.Value)
	}

	for _, r := range m.Routines {
		p.linkRoutine(mod, r)
	}
	for _, t := range m.Tests {
		scope := symbols.NewEnclosedScope(mod.Scope)
		p.resolveBlock(mod, scope, t.Body)
	}
	if m.Body != nil {
		p.resolveBlock(mod, mod.Scope, m.Body)
	}
}

func (p *Program) linkRoutine(mod *Module, r *ast.RoutineDecl) {
	scope := symbols.NewEnclosedScope(mod.Scope)

	for _, param := range r.Params {
		paramSym := &symbols.Symbol{
			Name: param.Name.Name, Kind: symbols.KindParam, Pos: param.Name.P,
			File: mod.Loaded.Path, Type: param.Type, Node: param,
		}
		scope.Define(paramSym)
		p.use(mod, param.Name.P, paramSym)
		if named, ok := param.Type.(*ast.NamedType); ok {
			p.resolveTypeRef(mod, scope, named.Name)
		}
	}
	if r.ReturnType != nil {
		p.resolveTypeRef(mod, scope, *r.ReturnType)
	}
	for _, c := range r.LocalConsts {
		constSym := &symbols.Symbol{
			Name: c.Name.Name, Kind: symbols.KindConst, Pos: c.Name.P,
			File: mod.Loaded.Path, Type: c.Type, Node: c,
		}
		scope.Define(constSym)
		p.use(mod, c.Name.P, constSym)
		p.resolveExpr(mod, scope, c.Value)
	}
	for _, v := range r.LocalVars {
		varSym := &symbols.Symbol{
			Name: v.Name.Name, Kind: symbols.KindVar, Pos: v.Name.P,
			File: mod.Loaded.Path, Type: v.Type, Node: v,
		}
		scope.Define(varSym)
		p.use(mod, v.Name.P, varSym)
		if named, ok := v.Type.(*ast.NamedType); ok {
			p.resolveTypeRef(mod, scope, named.Name)
		}
	}

	p.resolveBlock(mod, scope, r.Body)
}

func (p *Program) resolveBlock(mod *Module, scope *symbols.Scope, b *ast.Block) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		p.resolveStmt(mod, scope, s)
	}
}

func (p *Program) resolveStmt(mod *Module, scope *symbols.Scope, s ast.Stmt) {
	switch s := s.(type) {
	case *ast.Block:
		p.resolveBlock(mod, scope, s)
	case *ast.AssignStmt:
		p.resolveExpr(mod, scope, s.Target)
		p.resolveExpr(mod, scope, s.Value)
	case *ast.ExprStmt:
		p.resolveExpr(mod, scope, s.Expr)
	case *ast.IfStmt:
		p.resolveExpr(mod, scope, s.Cond)
		p.resolveStmt(mod, scope, s.Then)
		if s.Else != nil {
			p.resolveStmt(mod, scope, s.Else)
		}
	case *ast.WhileStmt:
		p.resolveExpr(mod, scope, s.Cond)
		p.resolveStmt(mod, scope, s.Body)
	case *ast.ForStmt:
		p.resolveExpr(mod, scope, s.Start)
		p.resolveExpr(mod, scope, s.End)
		if s.Step != nil {
			p.resolveExpr(mod, scope, s.Step)
		}
		loopScope := symbols.NewEnclosedScope(scope)
		loopScope.Define(&symbols.Symbol{
			Name: s.LoopVar.Name, Kind: symbols.KindVar, Pos: s.LoopVar.P, File: mod.Loaded.Path,
		})
		p.use(mod, s.LoopVar.P, mustResolveLocal(loopScope, s.LoopVar.Name))
		p.resolveStmt(mod, loopScope, s.Body)
	case *ast.RepeatStmt:
		for _, stmt := range s.Stmts {
			p.resolveStmt(mod, scope, stmt)
		}
		p.resolveExpr(mod, scope, s.Cond)
	case *ast.CaseStmt:
		p.resolveExpr(mod, scope, s.Selector)
		for _, branch := range s.Branches {
			for _, v := range branch.Values {
				if v.Single != nil {
					p.resolveExpr(mod, scope, v.Single)
				} else {
					p.resolveExpr(mod, scope, v.RangeLow)
					p.resolveExpr(mod, scope, v.RangeHi)
				}
			}
			p.resolveStmt(mod, scope, branch.Body)
		}
		for _, stmt := range s.Else {
			p.resolveStmt(mod, scope, stmt)
		}
	case *ast.TryStmt:
		for _, stmt := range s.Stmts {
			p.resolveStmt(mod, scope, stmt)
		}
		for _, branch := range s.ExceptBranches {
			p.resolveTypeRef(mod, scope, branch.ExceptionType)
			branchScope := scope
			if branch.VarName != nil {
				branchScope = symbols.NewEnclosedScope(scope)
				branchScope.Define(&symbols.Symbol{
					Name: branch.VarName.Name, Kind: symbols.KindVar, Pos: branch.VarName.P, File: mod.Loaded.Path,
				})
				p.use(mod, branch.VarName.P, mustResolveLocal(branchScope, branch.VarName.Name))
			}
			for _, stmt := range branch.Body {
				p.resolveStmt(mod, branchScope, stmt)
			}
		}
		for _, stmt := range s.ExceptElse {
			p.resolveStmt(mod, scope, stmt)
		}
		for _, stmt := range s.Finally {
			p.resolveStmt(mod, scope, stmt)
		}
	case *ast.ReturnStmt:
		if s.Value != nil {
			p.resolveExpr(mod, scope, s.Value)
		}
	case *ast.NewStmt:
		p.resolveExpr(mod, scope, s.Target)
		if s.AsType != nil {
			p.resolveTypeRef(mod, scope, *s.AsType)
		}
	case *ast.DisposeStmt:
		p.resolveExpr(mod, scope, s.Target)
	case *ast.SetLengthStmt:
		p.resolveExpr(mod, scope, s.Target)
		p.resolveExpr(mod, scope, s.Length)
	}
}

// mustResolveLocal looks up a name this function itself just defined in
// scope; used where the definition and the name-reference recording are
// adjacent (for-loop variables, except-branch bindings) and a miss would
// mean a bug in this file, not a user error.
func mustResolveLocal(scope *symbols.Scope, name string) *symbols.Symbol {
	sym, _ := scope.ResolveLocal(name)
	return sym
}

// resolveExpr resolves every name reference within expr against scope and
// returns a best-effort type name for expr itself (see typeExprName),
// used by the caller to build argument-type lists for overload selection.
// An unresolved sub-expression yields "" rather than aborting the walk:
// every other branch of the tree still gets resolved.
func (p *Program) resolveExpr(mod *Module, scope *symbols.Scope, e ast.Expr) string {
	if e == nil {
		return ""
	}
	switch e := e.(type) {
	case *ast.Identifier:
		sym, ok := scope.Resolve(e.Name.Name)
		if !ok {
			p.Bag.Addf(diag.CodeUnknownIdentifier, diag.Error, mod.Loaded.Path, e.Name.P.Line, e.Name.P.Column,
				"unknown identifier '"+e.Name.Name+"'")
			return ""
		}
		p.use(mod, e.Name.P, sym)
		return symbolTypeName(sym)

	case *ast.QualifiedIdentifier:
		// A flat `X.Name` is ambiguous at parse time between a
		// module-qualified reference and field access on a local value
		// named X (see ast.CallExpr's doc comment on the same ambiguity
		// for calls) — this is where it's actually told apart, using the
		// set of module names known to this rebuild.
		if target, ok := p.ModuleByName(e.Module.Name); ok {
			p.use(mod, e.Module.P, target.Symbol)
			sym, ok := target.Scope.ResolveLocal(e.Name.Name)
			if !ok || !sym.Exported {
				p.Bag.Addf(diag.CodeUnknownIdentifier, diag.Error, mod.Loaded.Path, e.Name.P.Line, e.Name.P.Column,
					"unknown exported symbol '"+e.Name.Name+"' in module '"+e.Module.Name+"'")
				return ""
			}
			p.use(mod, e.Name.P, sym)
			return symbolTypeName(sym)
		}

		recvSym, ok := scope.Resolve(e.Module.Name)
		if !ok {
			p.Bag.Addf(diag.CodeUnknownIdentifier, diag.Error, mod.Loaded.Path, e.Module.P.Line, e.Module.P.Column,
				"unknown identifier '"+e.Module.Name+"'")
			return ""
		}
		p.use(mod, e.Module.P, recvSym)
		recvTypeSym := p.typeSymbolByName(mod, scope, symbolTypeName(recvSym))
		if recvTypeSym == nil {
			return ""
		}
		field, ok := lookupField(recvTypeSym, e.Name.Name)
		if !ok {
			p.Bag.Addf(diag.CodeUnknownIdentifier, diag.Error, mod.Loaded.Path, e.Name.P.Line, e.Name.P.Column,
				"unknown field '"+e.Name.Name+"' on type '"+recvTypeSym.Name+"'")
			return ""
		}
		p.use(mod, e.Name.P, field)
		return typeExprName(field.Type)

	case *ast.IntLiteral:
		return "Integer"
	case *ast.FloatLiteral:
		return "Float"
	case *ast.StringLiteral:
		return "String"
	case *ast.CharLiteral:
		return "Char"
	case *ast.BoolLiteral:
		return "Boolean"
	case *ast.NilLiteral:
		return "Pointer"

	case *ast.BinaryExpr:
		p.resolveExpr(mod, scope, e.Left)
		p.resolveExpr(mod, scope, e.Right)
		return ""
	case *ast.UnaryExpr:
		return p.resolveExpr(mod, scope, e.Operand)

	case *ast.CallExpr:
		return p.resolveCall(mod, scope, e)

	case *ast.FieldAccess:
		recvType := p.resolveExpr(mod, scope, e.Receiver)
		recvSym := p.typeSymbolByName(mod, scope, recvType)
		if recvSym == nil {
			return ""
		}
		field, ok := lookupField(recvSym, e.Field.Name)
		if !ok {
			p.Bag.Addf(diag.CodeUnknownIdentifier, diag.Error, mod.Loaded.Path, e.Field.P.Line, e.Field.P.Column,
				"unknown field '"+e.Field.Name+"' on type '"+recvSym.Name+"'")
			return ""
		}
		p.use(mod, e.Field.P, field)
		return typeExprName(field.Type)

	case *ast.IndexExpr:
		recvType := p.resolveExpr(mod, scope, e.Receiver)
		for _, idx := range e.Indices {
			p.resolveExpr(mod, scope, idx)
		}
		recvSym := p.typeSymbolByName(mod, scope, recvType)
		if recvSym != nil {
			if arr, ok := recvSym.Type.(*ast.ArrayType); ok {
				return typeExprName(arr.Elem)
			}
		}
		return ""

	case *ast.DerefExpr:
		recvType := p.resolveExpr(mod, scope, e.Operand)
		recvSym := p.typeSymbolByName(mod, scope, recvType)
		if recvSym != nil {
			if ptr, ok := recvSym.Type.(*ast.PointerType); ok {
				return typeExprName(ptr.Elem)
			}
		}
		return ""

	case *ast.RangeExpr:
		p.resolveExpr(mod, scope, e.Low)
		p.resolveExpr(mod, scope, e.High)
		return ""

	case *ast.SetLiteral:
		for _, el := range e.Elements {
			p.resolveExpr(mod, scope, el)
		}
		return "set"

	case *ast.CastExpr:
		p.resolveExpr(mod, scope, e.Operand)
		p.resolveTypeRef(mod, scope, e.Target)
		return e.Target.Name

	case *ast.TypeTestExpr:
		p.resolveExpr(mod, scope, e.Operand)
		p.resolveTypeRef(mod, scope, e.Target)
		return "Boolean"

	case *ast.InheritedCall:
		return p.resolveInheritedCall(mod, scope, e)
	}
	return ""
}

// typeSymbolByName resolves a type name (as produced by resolveExpr/
// typeExprName) back to its Symbol, used to walk into fields/methods.
// Inline-type tags ("record", "array", ...) and the empty string never
// resolve, since only named types carry a Symbol to walk into.
func (p *Program) typeSymbolByName(mod *Module, scope *symbols.Scope, name string) *symbols.Symbol {
	if name == "" {
		return nil
	}
	sym, ok := scope.Resolve(name)
	if !ok || sym.Kind != symbols.KindType {
		return nil
	}
	return sym
}

func symbolTypeName(sym *symbols.Symbol) string {
	if sym.Kind == symbols.KindType {
		return sym.Name
	}
	if sym.Type == nil {
		return ""
	}
	return typeExprName(sym.Type)
}

// resolveCall resolves a CallExpr's callee (qualified, receiver-based, or
// a bare scope lookup) and its arguments, then records the Uses entry for
// the selected overload's call-site name position.
func (p *Program) resolveCall(mod *Module, scope *symbols.Scope, call *ast.CallExpr) string {
	argTypeNames := make([]string, len(call.Args))
	for i, arg := range call.Args {
		argTypeNames[i] = p.resolveExpr(mod, scope, arg)
	}

	switch {
	case call.Qualifier != nil:
		// `X.Callee(...)` is ambiguous at parse time between a
		// module-qualified call and a method call on a local value named
		// X (see ast.CallExpr's doc comment) — resolved here by checking
		// whether X actually names a loaded module.
		if target, ok := p.ModuleByName(call.Qualifier.Name); ok {
			p.use(mod, call.Qualifier.P, target.Symbol)

			sym, ok := target.Scope.ResolveLocal(call.Callee.Name)
			if !ok || !sym.Exported {
				p.Bag.Addf(diag.CodeUnknownIdentifier, diag.Error, mod.Loaded.Path,
					call.Callee.P.Line, call.Callee.P.Column,
					"unknown exported routine '"+call.Callee.Name+"' in module '"+call.Qualifier.Name+"'")
				return ""
			}
			return p.bindCallOverload(mod, call, sym, argTypeNames)
		}

		recvSym, ok := scope.Resolve(call.Qualifier.Name)
		if !ok {
			p.Bag.Addf(diag.CodeUnknownIdentifier, diag.Error, mod.Loaded.Path,
				call.Qualifier.P.Line, call.Qualifier.P.Column, "unknown identifier '"+call.Qualifier.Name+"'")
			return ""
		}
		p.use(mod, call.Qualifier.P, recvSym)
		return p.resolveMethodCall(mod, scope, call, symbolTypeName(recvSym), argTypeNames)

	case call.Receiver != nil:
		recvType := p.resolveExpr(mod, scope, call.Receiver)
		return p.resolveMethodCall(mod, scope, call, recvType, argTypeNames)

	default:
		sym, ok := scope.Resolve(call.Callee.Name)
		if !ok {
			p.Bag.Addf(diag.CodeUnknownIdentifier, diag.Error, mod.Loaded.Path,
				call.Callee.P.Line, call.Callee.P.Column, "unknown identifier '"+call.Callee.Name+"'")
			return ""
		}
		return p.bindCallOverload(mod, call, sym, argTypeNames)
	}
}

// resolveMethodCall looks up call.Callee as a method on the type named
// recvTypeName, walking its inheritance chain (see lookupMethod), and
// records the Uses entry for whichever overload wins.
func (p *Program) resolveMethodCall(mod *Module, scope *symbols.Scope, call *ast.CallExpr, recvTypeName string, argTypeNames []string) string {
	recvSym := p.typeSymbolByName(mod, scope, recvTypeName)
	if recvSym == nil {
		return ""
	}
	method, ok := lookupMethod(recvSym, call.Callee.Name, argTypeNames)
	if !ok {
		p.Bag.Addf(diag.CodeUnknownIdentifier, diag.Error, mod.Loaded.Path,
			call.Callee.P.Line, call.Callee.P.Column,
			"unknown method '"+call.Callee.Name+"' on type '"+recvSym.Name+"'")
		return ""
	}
	p.use(mod, call.Callee.P, method)
	return symbolTypeName(method)
}

// bindCallOverload picks among sym and its Overloads (if any) the best
// match for argTypeNames, diagnoses CodeAmbiguousCall on a genuine tie,
// and records the Uses entry against the winner.
func (p *Program) bindCallOverload(mod *Module, call *ast.CallExpr, sym *symbols.Symbol, argTypeNames []string) string {
	candidates := []*symbols.Symbol{sym}
	if len(sym.Overloads) > 0 {
		candidates = sym.Overloads
	}
	winner, ambiguous := selectOverload(candidates, argTypeNames)
	if winner == nil {
		return ""
	}
	if ambiguous {
		p.Bag.Addf(diag.CodeAmbiguousCall, diag.Error, mod.Loaded.Path, call.Callee.P.Line, call.Callee.P.Column,
			"ambiguous call to overloaded '"+call.Callee.Name+"'")
	}
	p.use(mod, call.Callee.P, winner)
	return symbolTypeName(winner)
}

// resolveInheritedCall resolves `inherited Method(Args)`: Method is looked
// up starting at the enclosing method's receiver type's Parent, i.e. one
// level above where an ordinary call on Self would start.
func (p *Program) resolveInheritedCall(mod *Module, scope *symbols.Scope, call *ast.InheritedCall) string {
	argTypeNames := make([]string, len(call.Args))
	for i, arg := range call.Args {
		argTypeNames[i] = p.resolveExpr(mod, scope, arg)
	}

	selfSym, ok := scope.Resolve("Self")
	if !ok {
		return ""
	}
	recvSym := p.typeSymbolByName(mod, scope, symbolTypeName(selfSym))
	if recvSym == nil || recvSym.Parent == nil {
		return ""
	}
	method, ok := lookupMethod(recvSym.Parent, call.Method.Name, argTypeNames)
	if !ok {
		p.Bag.Addf(diag.CodeUnknownIdentifier, diag.Error, mod.Loaded.Path,
			call.Method.P.Line, call.Method.P.Column,
			"unknown inherited method '"+call.Method.Name+"'")
		return ""
	}
	p.use(mod, call.Method.P, method)
	return symbolTypeName(method)
}
