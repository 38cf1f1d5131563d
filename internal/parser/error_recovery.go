package parser

import "github.com/vexlang/vexls/internal/lexer"

// Panic-mode recovery: on a parse error the parser records a diagnostic and
// skips tokens until it reaches one of a small set of "safe" synchronization
// points, rather than aborting the whole parse. Modeled on DWScript's
// SynchronizationSet design, collapsed from four overlapping sets into the
// three Vex's grammar actually needs: declaration starters (top level and
// routine bodies), statement starters, and block closers.

var declarationStarters = []lexer.TokenType{
	lexer.CONST, lexer.TYPE, lexer.VAR, lexer.ROUTINE, lexer.METHOD,
	lexer.EXPORT, lexer.TEST, lexer.BEGIN,
}

var statementStarters = []lexer.TokenType{
	lexer.IF, lexer.WHILE, lexer.FOR, lexer.REPEAT, lexer.CASE, lexer.TRY,
	lexer.RETURN, lexer.NEW, lexer.DISPOSE, lexer.SETLENGTH, lexer.BEGIN,
	lexer.IDENT,
}

var blockClosers = []lexer.TokenType{
	lexer.END, lexer.UNTIL, lexer.ELSE, lexer.EXCEPT, lexer.FINALLY, lexer.EOF,
}

func tokenIn(t lexer.TokenType, set []lexer.TokenType) bool {
	for _, s := range set {
		if t == s {
			return true
		}
	}
	return false
}

// synchronize advances the cursor until it reaches a token in any of the
// given sets, or EOF. It always makes progress (advances at least once) so
// callers can never loop forever on a single bad token.
func (p *Parser) synchronize(sets ...[]lexer.TokenType) {
	p.cur.advance()
	for {
		tok := p.cur.current().Type
		if tok == lexer.EOF {
			return
		}
		for _, set := range sets {
			if tokenIn(tok, set) {
				return
			}
		}
		p.cur.advance()
	}
}
