package query

import (
	"strings"

	"github.com/vexlang/vexls/internal/lexer"
)

// Word is an identifier found in source text together with the position
// of its own first rune, suitable for feeding straight into
// resolver.Program.UseAt.
type Word struct {
	Text  string
	Start lexer.Position
}

// WordAt splits source at newlines and, starting from pos's column, scans
// backward and forward across [A-Za-z0-9_] to find the contiguous
// identifier the cursor sits on or immediately after. Returns false if pos
// lands outside any identifier.
func WordAt(source string, pos lexer.Position) (Word, bool) {
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return Word{}, false
	}
	runes := []rune(lines[pos.Line-1])
	idx := pos.Column - 1
	if idx < 0 {
		return Word{}, false
	}

	// A position can land either directly on an identifier rune or just
	// past its last rune (the common case for an editor cursor resting
	// after a completed word); try both before giving up.
	if idx >= len(runes) || !isWordRune(runes[idx]) {
		if idx > 0 && idx-1 < len(runes) && isWordRune(runes[idx-1]) {
			idx--
		} else {
			return Word{}, false
		}
	}

	start, end := idx, idx+1
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}

	return Word{
		Text:  string(runes[start:end]),
		Start: lexer.Position{Line: pos.Line, Column: start + 1},
	}, true
}

// CalleeContext is what RoutineNameBeforeParen finds by scanning leftward
// from a cursor sitting inside a call's argument list: the callee name, an
// optional module/receiver qualifier immediately before a '.', and the
// 0-based argument index implied by the comma count between the unmatched
// '(' and the cursor.
type CalleeContext struct {
	Qualifier string // "" when the callee isn't written as Qualifier.Callee(...)
	Callee    Word
	ArgIndex  int
}

// RoutineNameBeforeParen scans leftward from pos through source, tracking
// paren depth, until it finds an unmatched '('. The identifier immediately
// left of that paren (skipping whitespace) is the callee; an optional
// preceding '.' and identifier is captured as Qualifier. Returns false if
// the scan exhausts the source without finding an unmatched '(', i.e. pos
// isn't inside a call's argument list.
func RoutineNameBeforeParen(source string, pos lexer.Position) (CalleeContext, bool) {
	runes := []rune(source)
	idx := offsetForPosition(source, pos)
	if idx < 0 {
		return CalleeContext{}, false
	}

	depth := 0
	argIndex := 0
	parenIdx := -1
	for i := idx - 1; i >= 0; i-- {
		switch runes[i] {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				parenIdx = i
			} else {
				depth--
			}
		case ',':
			if depth == 0 {
				argIndex++
			}
		}
		if parenIdx >= 0 {
			break
		}
	}
	if parenIdx < 0 {
		return CalleeContext{}, false
	}

	nameEnd := parenIdx
	for nameEnd > 0 && isBlank(runes[nameEnd-1]) {
		nameEnd--
	}
	nameStart := nameEnd
	for nameStart > 0 && isWordRune(runes[nameStart-1]) {
		nameStart--
	}
	if nameStart == nameEnd {
		return CalleeContext{}, false
	}
	calleeLine, calleeCol := lineColAt(source, nameStart)
	callee := Word{Text: string(runes[nameStart:nameEnd]), Start: lexer.Position{Line: calleeLine, Column: calleeCol}}

	qualifier := ""
	if nameStart > 0 && runes[nameStart-1] == '.' {
		qEnd := nameStart - 1
		qStart := qEnd
		for qStart > 0 && isWordRune(runes[qStart-1]) {
			qStart--
		}
		if qStart < qEnd {
			qualifier = string(runes[qStart:qEnd])
		}
	}

	return CalleeContext{Qualifier: qualifier, Callee: callee, ArgIndex: argIndex}, true
}

func isBlank(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }

// offsetForPosition converts a 1-based (line, column) pair, both counted
// in runes, into a rune index into source. Returns -1 if pos falls outside
// source's bounds.
func offsetForPosition(source string, pos lexer.Position) int {
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return -1
	}
	offset := 0
	for i := 0; i < pos.Line-1; i++ {
		offset += len([]rune(lines[i])) + 1 // +1 for the newline consumed by Split
	}
	lineRunes := len([]rune(lines[pos.Line-1]))
	col := pos.Column - 1
	if col < 0 || col > lineRunes {
		return -1
	}
	return offset + col
}

// lineColAt converts a rune index back into a 1-based (line, column) pair.
func lineColAt(source string, idx int) (line, col int) {
	lines := strings.Split(source, "\n")
	remaining := idx
	for i, l := range lines {
		lineRunes := len([]rune(l))
		if remaining <= lineRunes {
			return i + 1, remaining + 1
		}
		remaining -= lineRunes + 1
	}
	return len(lines), 1
}
