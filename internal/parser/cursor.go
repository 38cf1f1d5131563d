package parser

import "github.com/vexlang/vexls/internal/lexer"

// cursor buffers tokens from a Lexer so the parser can look more than one
// token ahead without re-lexing, and can backtrack to a previously visited
// position via mark/reset. Modeled on DWScript's TokenCursor, simplified
// from its immutable value-returning style to an ordinary mutable cursor:
// Vex's closed AST has no speculative builder step that benefits from
// immutability, but the buffer-and-index mechanics are the same.
type cursor struct {
	lex *lexer.Lexer
	buf []lexer.Token
	pos int
}

func newCursor(lex *lexer.Lexer) *cursor {
	c := &cursor{lex: lex}
	c.buf = append(c.buf, lex.NextToken())
	return c
}

// current returns the token at the cursor's position without advancing.
func (c *cursor) current() lexer.Token {
	return c.buf[c.pos]
}

// peek returns the token n positions ahead of current (peek(0) ==
// current(), peek(1) is the next token), filling the buffer as needed.
func (c *cursor) peek(n int) lexer.Token {
	for c.pos+n >= len(c.buf) {
		if c.buf[len(c.buf)-1].Type == lexer.EOF {
			return c.buf[len(c.buf)-1]
		}
		c.buf = append(c.buf, c.lex.NextToken())
	}
	return c.buf[c.pos+n]
}

// advance consumes the current token and returns it.
func (c *cursor) advance() lexer.Token {
	tok := c.current()
	if tok.Type != lexer.EOF {
		c.pos++
		if c.pos >= len(c.buf) {
			c.buf = append(c.buf, c.lex.NextToken())
		}
	}
	return tok
}

// mark/reset support speculative lookahead, e.g. distinguishing a record
// field-list start from an empty `record end`.
func (c *cursor) mark() int { return c.pos }

func (c *cursor) reset(mark int) { c.pos = mark }
