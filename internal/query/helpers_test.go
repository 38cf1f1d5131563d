package query

import (
	"testing"

	"github.com/vexlang/vexls/internal/loader"
	"github.com/vexlang/vexls/internal/parser"
	"github.com/vexlang/vexls/internal/resolver"
)

// testProgram bundles a resolved *resolver.Program with the source text
// each module was parsed from, keyed by module name, so query tests can
// turn a line/column in a test fixture into a Word via WordAt without
// hand-tracking offsets.
type testProgram struct {
	*resolver.Program
	sources map[string]string
}

// newTestProgram parses and resolves each of the given (moduleName,
// source) pairs, failing the test on any parse diagnostic (every fixture
// here is expected to be syntactically valid).
func newTestProgram(t *testing.T, sources map[string]string) *testProgram {
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
	return &testProgram{Program: resolver.Resolve(reg), sources: sources}
}
