package resolver

import (
	"testing"

	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/diag"
	"github.com/vexlang/vexls/internal/lexer"
	"github.com/vexlang/vexls/internal/loader"
	"github.com/vexlang/vexls/internal/parser"
	"github.com/vexlang/vexls/internal/symbols"
)

// newProgram parses each of the given (moduleName, source) pairs, registers
// them in a fresh loader.Registry, and resolves them together. Parse
// diagnostics are reported as test failures since every fixture here is
// expected to be syntactically valid; resolver diagnostics are returned for
// the caller to inspect.
func newProgram(t *testing.T, sources map[string]string) *Program {
	t.Helper()
	reg := loader.NewRegistry()
	for name, src := range sources {
		mod, diags := parser.Parse(src, name+".vx")
		for _, d := range diags {
			t.Fatalf("unexpected parse diagnostic in %s: %s:%d:%d: %s", name, d.Code, d.Line, d.Column, d.Message)
		}
		if err := reg.Register(name, &loader.Loaded{Module: mod, Path: name + ".vx", Source: src}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	return Resolve(reg)
}

func diagnosticCodes(prog *Program) []string {
	var codes []string
	for _, d := range prog.Diagnostics() {
		codes = append(codes, d.Code)
	}
	return codes
}

func hasCode(prog *Program, code string) bool {
	for _, d := range prog.Diagnostics() {
		if d.Code == code {
			return true
		}
	}
	return false
}

// Scenario A: the most-derived method wins dispatch even though every
// Describe in the module shares one name-based overload group.
func TestResolveMostDerivedMethodWins(t *testing.T) {
	prog := newProgram(t, map[string]string{
		"Shapes": `module Shapes lib;
type TShape = record
  X: Integer;
end;
type TCircle = record(TShape)
  R: Integer;
end;

method Describe(var Self: TShape): String;
begin
  return 'shape';
end;

method Describe(var Self: TCircle): String;
begin
  return 'circle';
end;

routine Use();
var C: TCircle;
begin
  C.Describe();
end;
`,
	})
	if got := diagnosticCodes(prog); len(got) != 0 {
		t.Fatalf("expected no diagnostics, got %v", got)
	}

	mod := prog.Modules["shapes"]
	useRoutine := findRoutine(mod, "Use")
	call := findFirstCallExpr(t, useRoutine)

	method, ok := prog.UseAt("Shapes.vx", call.Callee.P)
	if !ok {
		t.Fatalf("expected Describe call-site to resolve")
	}
	if method.Receiver == nil || method.Receiver.Name != "TCircle" {
		t.Fatalf("expected Describe to bind to TCircle's own method, got receiver %+v", method.Receiver)
	}
}

// Scenario B: overload selection by argument type name; Integer arguments
// select the Integer overload with no diagnostics.
func TestResolveOverloadSelectionByArgumentTypes(t *testing.T) {
	prog := newProgram(t, map[string]string{
		"Ops": `module Ops lib;
routine Add(A, B: Integer): Integer;
begin
  return A + B;
end;

routine Add(A, B: Float): Float;
begin
  return A + B;
end;

routine UseInt();
var R: Integer;
begin
  R := Add(1, 2);
end;
`,
	})
	if got := diagnosticCodes(prog); len(got) != 0 {
		t.Fatalf("expected no diagnostics, got %v", got)
	}

	mod := prog.Modules["ops"]
	r := findRoutine(mod, "UseInt")
	call := findFirstCallExpr(t, r)
	winner, ok := prog.UseAt("Ops.vx", call.Callee.P)
	if !ok {
		t.Fatalf("expected Add call-site to resolve")
	}
	if len(effectiveParams(winner)) != 2 {
		t.Fatalf("expected binary Add overload, got %+v", winner)
	}
	intParam := effectiveParams(winner)[0]
	if typeExprName(intParam.Type) != "Integer" {
		t.Fatalf("expected Integer overload selected for Add(1, 2), got param type %v", intParam.Type)
	}
}

// Scenario F: inheritance cycles are diagnosed and every participant's
// Parent link is cut, while the symbols and their other references survive.
func TestResolveBreaksInheritanceCycles(t *testing.T) {
	prog := newProgram(t, map[string]string{
		"Cyclic": `module Cyclic lib;
type TA = record(TB)
  X: Integer;
end;
type TB = record(TA)
  Y: Integer;
end;

routine Use();
var A: TA;
begin
  A.X := 1;
end;
`,
	})
	if !hasCode(prog, diag.CodeInheritanceCycle) {
		t.Fatalf("expected a CodeInheritanceCycle diagnostic, got %v", diagnosticCodes(prog))
	}

	mod := prog.Modules["cyclic"]
	ta, ok := mod.Scope.ResolveLocal("TA")
	if !ok {
		t.Fatalf("expected TA symbol to still exist")
	}
	if ta.Parent != nil {
		t.Fatalf("expected TA's Parent link cut, got %+v", ta.Parent)
	}

	r := findRoutine(mod, "Use")
	assign := findFirstAssign(t, r)
	sym, ok := prog.UseAt("Cyclic.vx", varPosOf(t, assign))
	if !ok || sym.Name != "A" {
		t.Fatalf("expected the reference to var A in 'A.X := 1' to still resolve, got %+v ok=%v", sym, ok)
	}
}

// Cross-module qualified access only succeeds when the target is exported.
func TestResolveQualifiedAccessRespectsExport(t *testing.T) {
	sources := map[string]string{
		"A": `module A lib;
export routine Helper(): Integer;
begin
  return 1;
end;

routine Secret(): Integer;
begin
  return 2;
end;
`,
		"B": `module B lib;
import A;

routine UseHelper(): Integer;
begin
  return A.Helper();
end;

routine UseSecret(): Integer;
begin
  return A.Secret();
end;
`,
	}
	prog := newProgram(t, sources)

	modB := prog.Modules["b"]
	useHelper := findRoutine(modB, "UseHelper")
	helperCall := findFirstCallExpr(t, useHelper)
	if _, ok := prog.UseAt("B.vx", helperCall.Callee.P); !ok {
		t.Fatalf("expected A.Helper() to resolve since Helper is exported")
	}

	if !hasCode(prog, diag.CodeUnknownIdentifier) {
		t.Fatalf("expected CodeUnknownIdentifier for unexported A.Secret, got %v", diagnosticCodes(prog))
	}
}

// The X.Y / X.Y(...) syntax is ambiguous at parse time between a
// module-qualified reference and field/method access on a local receiver
// value; the resolver must disambiguate using the set of known module
// names rather than assuming every qualifier is a module.
func TestResolveQualifierDisambiguatesReceiverFromModule(t *testing.T) {
	prog := newProgram(t, map[string]string{
		"Shapes": `module Shapes lib;
type TShape = record
  X: Integer;
end;

method Describe(var Self: TShape): String;
begin
  return 'shape';
end;

routine Use();
var S: TShape;
begin
  S.X := 5;
  S.Describe();
end;
`,
	})
	if got := diagnosticCodes(prog); len(got) != 0 {
		t.Fatalf("expected no diagnostics, got %v", got)
	}

	mod := prog.Modules["shapes"]
	r := findRoutine(mod, "Use")
	call := findFirstCallExpr(t, r)
	method, ok := prog.UseAt("Shapes.vx", call.Callee.P)
	if !ok || method.Kind != symbols.KindMethod {
		t.Fatalf("expected S.Describe() to resolve to a method, got %+v ok=%v", method, ok)
	}
}

// findRoutine returns the routine or method named name declared directly
// in mod, returning nil if none matches.
func findRoutine(mod *Module, name string) *ast.RoutineDecl {
	for _, r := range mod.Loaded.Module.Routines {
		if r.Name.Name == name {
			return r
		}
	}
	return nil
}

// findFirstCallExpr returns the first CallExpr reachable as the whole of a
// top-level statement in r's body (an ExprStmt, AssignStmt's value, or
// ReturnStmt's value), failing the test if none is found. Sufficient for
// the single-statement and two-statement fixtures these tests use.
func findFirstCallExpr(t *testing.T, r *ast.RoutineDecl) *ast.CallExpr {
	t.Helper()
	for _, s := range r.Body.Stmts {
		var e ast.Expr
		switch s := s.(type) {
		case *ast.ExprStmt:
			e = s.Expr
		case *ast.AssignStmt:
			e = s.Value
		case *ast.ReturnStmt:
			e = s.Value
		}
		if call, ok := e.(*ast.CallExpr); ok {
			return call
		}
	}
	t.Fatalf("no CallExpr found in %s's body", r.Name.Name)
	return nil
}

// findFirstAssign returns the first AssignStmt in r's body.
func findFirstAssign(t *testing.T, r *ast.RoutineDecl) *ast.AssignStmt {
	t.Helper()
	for _, s := range r.Body.Stmts {
		if assign, ok := s.(*ast.AssignStmt); ok {
			return assign
		}
	}
	t.Fatalf("no AssignStmt found in %s's body", r.Name.Name)
	return nil
}

// varPosOf returns the qualifier identifier position of a flat dotted
// assignment target (e.g. the "A" in "A.X := 1", parsed as a single-level
// QualifiedIdentifier per parseNameRef's doc comment).
func varPosOf(t *testing.T, assign *ast.AssignStmt) lexer.Position {
	t.Helper()
	qi, ok := assign.Target.(*ast.QualifiedIdentifier)
	if !ok {
		t.Fatalf("expected assignment target to be a flat qualified identifier, got %T", assign.Target)
	}
	return qi.Module.P
}

// A cursor landing exactly on a declaration's own name (not a reference to
// it) must resolve the same way a reference does, so hover/rename/document
// highlights work uniformly regardless of which occurrence of a name the
// cursor sits on.
func TestResolveDeclarationSitesResolveToThemselves(t *testing.T) {
	prog := newProgram(t, map[string]string{
		"Shapes": `module Shapes lib;
type TShape = record
  X: Integer;
end;

routine Perimeter(Scale: Integer): Integer;
var Total: Integer;
begin
  Total := Scale;
  return Total;
end;
`,
	})
	if got := diagnosticCodes(prog); len(got) != 0 {
		t.Fatalf("expected no diagnostics, got %v", got)
	}

	mod := prog.Modules["shapes"]

	typeSym, _ := mod.Scope.ResolveLocal("TShape")
	if sym, ok := prog.UseAt("Shapes.vx", typeSym.Pos); !ok || sym != typeSym {
		t.Fatalf("expected TShape's own name position to resolve to itself")
	}
	if sym, ok := prog.UseAt("Shapes.vx", typeSym.Fields[0].Pos); !ok || sym != typeSym.Fields[0] {
		t.Fatalf("expected field X's own name position to resolve to itself")
	}

	r := findRoutine(mod, "Perimeter")
	if sym, ok := prog.UseAt("Shapes.vx", r.Name.P); !ok || sym.Node != r {
		t.Fatalf("expected Perimeter's own name position to resolve to its routine symbol")
	}
	if sym, ok := prog.UseAt("Shapes.vx", r.Params[0].Name.P); !ok || sym.Kind != symbols.KindParam {
		t.Fatalf("expected parameter Scale's own name position to resolve to itself")
	}
	if sym, ok := prog.UseAt("Shapes.vx", r.LocalVars[0].Name.P); !ok || sym.Kind != symbols.KindVar {
		t.Fatalf("expected local var Total's own name position to resolve to itself")
	}
}

func TestResolveReportsDuplicateDeclaration(t *testing.T) {
	prog := newProgram(t, map[string]string{
		"Dup": `module Dup lib;
const Limit = 10;
const Limit = 20;
`,
	})
	if !hasCode(prog, diag.CodeDuplicateDeclaration) {
		t.Fatalf("expected CodeDuplicateDeclaration, got %v", diagnosticCodes(prog))
	}
}

func TestResolveReportsUnknownIdentifier(t *testing.T) {
	prog := newProgram(t, map[string]string{
		"Bad": `module Bad lib;
routine Use();
begin
  Missing();
end;
`,
	})
	if !hasCode(prog, diag.CodeUnknownIdentifier) {
		t.Fatalf("expected CodeUnknownIdentifier, got %v", diagnosticCodes(prog))
	}
}
