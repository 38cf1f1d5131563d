package query

import (
	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/resolver"
)

// FoldingRange is a collapsible region spanning [StartLine, EndLine],
// both 1-based and inclusive (folding collapses whole lines, unlike every
// other range in this package).
type FoldingRange struct {
	StartLine int
	EndLine   int
}

// FoldingRanges walks file's module emitting one range per routine/test
// body, record type, and every block-bearing control structure, the same
// collect-then-emit shape as a folding-range walk over any tree of nested
// spans: one entry per node whose start and end line differ.
func FoldingRanges(prog *resolver.Program, file string) []FoldingRange {
	mod := moduleForFile(prog, file)
	if mod == nil {
		return nil
	}
	m := mod.Loaded.Module

	var out []FoldingRange
	add := func(start, end int) {
		if end > start {
			out = append(out, FoldingRange{StartLine: start, EndLine: end})
		}
	}

	if m.EndLine > 0 {
		add(m.P.Line, m.EndLine)
	}
	for _, t := range m.Types {
		if rec, ok := t.Type.(*ast.RecordType); ok {
			add(rec.P.Line, rec.EndLine)
		}
	}
	for _, r := range m.Routines {
		add(r.P.Line, r.EndLine)
		if r.Body != nil {
			foldBlock(r.Body, add)
		}
	}
	for _, t := range m.Tests {
		add(t.P.Line, t.EndLine)
		if t.Body != nil {
			foldBlock(t.Body, add)
		}
	}
	return out
}

// foldBlock recurses into a block's statements, adding a folding range for
// every nested construct that carries its own end line.
func foldBlock(b *ast.Block, add func(start, end int)) {
	add(b.P.Line, b.EndLine)
	for _, s := range b.Stmts {
		foldStmt(s, add)
	}
}

func foldStmt(s ast.Stmt, add func(start, end int)) {
	switch s := s.(type) {
	case *ast.IfStmt:
		foldStmt(s.Then, add)
		if s.Else != nil {
			foldStmt(s.Else, add)
		}
	case *ast.WhileStmt:
		foldStmt(s.Body, add)
	case *ast.ForStmt:
		foldStmt(s.Body, add)
	case *ast.RepeatStmt:
		add(s.P.Line, s.EndLine)
		for _, inner := range s.Stmts {
			foldStmt(inner, add)
		}
	case *ast.CaseStmt:
		add(s.P.Line, s.EndLine)
		for _, branch := range s.Branches {
			foldStmt(branch.Body, add)
		}
		for _, inner := range s.Else {
			foldStmt(inner, add)
		}
	case *ast.TryStmt:
		add(s.P.Line, s.EndLine)
		for _, inner := range s.Stmts {
			foldStmt(inner, add)
		}
		for _, branch := range s.ExceptBranches {
			for _, inner := range branch.Body {
				foldStmt(inner, add)
			}
		}
		for _, inner := range s.ExceptElse {
			foldStmt(inner, add)
		}
		for _, inner := range s.Finally {
			foldStmt(inner, add)
		}
	case *ast.Block:
		foldBlock(s, add)
	}
}
