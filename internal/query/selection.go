package query

import (
	"github.com/vexlang/vexls/internal/ast"
	"github.com/vexlang/vexls/internal/lexer"
	"github.com/vexlang/vexls/internal/resolver"
)

// SelectionRange is one node in the shrink/expand-selection chain: Range is
// this node's own span, Parent (nil at the outermost node) is the next
// range outward. The chain is built outermost-first while walking down to
// pos, then returned innermost-first, matching the direction editors walk
// it when a user repeatedly presses "expand selection".
type SelectionRange struct {
	Range  Range
	Parent *SelectionRange
}

// Selection builds the enclosing-node chain for pos within file's module:
// module, then routine/test, then nested blocks and control-flow bodies,
// down to the innermost node whose span still contains pos. Returns false
// if pos falls outside the module entirely.
func Selection(prog *resolver.Program, file string, pos lexer.Position) (SelectionRange, bool) {
	mod := moduleForFile(prog, file)
	if mod == nil {
		return SelectionRange{}, false
	}
	m := mod.Loaded.Module
	if !lineWithin(pos.Line, m.P.Line, m.EndLine) {
		return SelectionRange{}, false
	}

	chain := &SelectionRange{Range: lineRange(m.P.Line, m.EndLine)}

	for _, r := range m.Routines {
		if !lineWithin(pos.Line, r.P.Line, r.EndLine) {
			continue
		}
		chain = &SelectionRange{Range: lineRange(r.P.Line, r.EndLine), Parent: chain}
		if r.Body != nil {
			chain = selectWithinBlock(r.Body, pos, chain)
		}
		break
	}
	for _, t := range m.Tests {
		if !lineWithin(pos.Line, t.P.Line, t.EndLine) {
			continue
		}
		chain = &SelectionRange{Range: lineRange(t.P.Line, t.EndLine), Parent: chain}
		if t.Body != nil {
			chain = selectWithinBlock(t.Body, pos, chain)
		}
		break
	}

	return *chain, true
}

func selectWithinBlock(b *ast.Block, pos lexer.Position, outer *SelectionRange) *SelectionRange {
	if !lineWithin(pos.Line, b.P.Line, b.EndLine) {
		return outer
	}
	chain := &SelectionRange{Range: lineRange(b.P.Line, b.EndLine), Parent: outer}
	for _, s := range b.Stmts {
		if inner, ok := selectWithinStmt(s, pos, chain); ok {
			return inner
		}
	}
	return chain
}

func selectWithinStmt(s ast.Stmt, pos lexer.Position, outer *SelectionRange) (*SelectionRange, bool) {
	switch s := s.(type) {
	case *ast.Block:
		if lineWithin(pos.Line, s.P.Line, s.EndLine) {
			return selectWithinBlock(s, pos, outer), true
		}
	case *ast.IfStmt:
		if then, ok := s.Then.(*ast.Block); ok && lineWithin(pos.Line, then.P.Line, then.EndLine) {
			return selectWithinBlock(then, pos, outer), true
		}
		if s.Else != nil {
			if els, ok := s.Else.(*ast.Block); ok && lineWithin(pos.Line, els.P.Line, els.EndLine) {
				return selectWithinBlock(els, pos, outer), true
			}
		}
	case *ast.WhileStmt:
		if body, ok := s.Body.(*ast.Block); ok && lineWithin(pos.Line, body.P.Line, body.EndLine) {
			return selectWithinBlock(body, pos, outer), true
		}
	case *ast.ForStmt:
		if body, ok := s.Body.(*ast.Block); ok && lineWithin(pos.Line, body.P.Line, body.EndLine) {
			return selectWithinBlock(body, pos, outer), true
		}
	case *ast.RepeatStmt:
		if lineWithin(pos.Line, s.P.Line, s.EndLine) {
			inner := &SelectionRange{Range: lineRange(s.P.Line, s.EndLine), Parent: outer}
			for _, stmt := range s.Stmts {
				if r, ok := selectWithinStmt(stmt, pos, inner); ok {
					return r, true
				}
			}
			return inner, true
		}
	case *ast.TryStmt:
		if lineWithin(pos.Line, s.P.Line, s.EndLine) {
			inner := &SelectionRange{Range: lineRange(s.P.Line, s.EndLine), Parent: outer}
			for _, stmt := range s.Stmts {
				if r, ok := selectWithinStmt(stmt, pos, inner); ok {
					return r, true
				}
			}
			for _, branch := range s.ExceptBranches {
				for _, stmt := range branch.Body {
					if r, ok := selectWithinStmt(stmt, pos, inner); ok {
						return r, true
					}
				}
			}
			for _, stmt := range s.Finally {
				if r, ok := selectWithinStmt(stmt, pos, inner); ok {
					return r, true
				}
			}
			return inner, true
		}
	}
	return nil, false
}

func lineWithin(line, start, end int) bool {
	if end == 0 {
		end = start
	}
	return line >= start && line <= end
}

func lineRange(start, end int) Range {
	if end == 0 {
		end = start
	}
	return Range{Start: lexer.Position{Line: start, Column: 1}, End: lexer.Position{Line: end, Column: 1}}
}
