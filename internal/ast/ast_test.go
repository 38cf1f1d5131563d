package ast

import (
	"testing"

	"github.com/vexlang/vexls/internal/lexer"
)

func pos(line, col int) lexer.Position { return lexer.Position{Line: line, Column: col} }

func TestNamePos_End(t *testing.T) {
	n := NamePos{Name: "Describe", P: pos(1, 5)}
	if n.End() != 5+len("Describe") {
		t.Fatalf("expected end %d, got %d", 5+len("Describe"), n.End())
	}
}

func TestWalk_VisitsNestedNamePositions(t *testing.T) {
	module := &Module{
		P:    pos(1, 1),
		Name: NamePos{Name: "M", P: pos(1, 8)},
		Routines: []*RoutineDecl{
			{
				P:    pos(3, 1),
				Name: NamePos{Name: "Greet", P: pos(3, 9)},
				Body: &Block{
					P: pos(3, 20),
					Stmts: []Stmt{
						&ExprStmt{
							P: pos(4, 3),
							Expr: &CallExpr{
								P:      pos(4, 3),
								Callee: NamePos{Name: "Print", P: pos(4, 3)},
								Args: []Expr{
									&StringLiteral{P: pos(4, 9), Value: "hi"},
								},
							},
						},
					},
				},
			},
		},
	}

	var names []string
	Walk(module, func(n Node) bool {
		if np, ok := n.(NamePos); ok {
			names = append(names, np.Name)
		}
		return true
	})

	want := []string{"M", "Greet", "Print"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d: %v", len(want), len(names), names)
	}
	for i, w := range want {
		if names[i] != w {
			t.Errorf("name %d: expected %q, got %q", i, w, names[i])
		}
	}
}
