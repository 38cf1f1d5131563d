package lexer

import "testing"

func TestNextToken_Punctuators(t *testing.T) {
	input := `:= . .. ... ^ ( ) [ ] , ; : = <> < <= > >= + - * /`
	want := []TokenType{
		ASSIGN, DOT, RANGE, ELLIPSIS, CARET, LPAREN, RPAREN, LBRACKET, RBRACKET,
		COMMA, SEMICOLON, COLON, EQ, NEQ, LT, LE, GT, GE, PLUS, MINUS, STAR, SLASH, EOF,
	}

	l := New(input, "test.vex")
	for i, expected := range want {
		tok := l.NextToken()
		if tok.Type != expected {
			t.Fatalf("token %d: expected %s, got %s (%q)", i, expected, tok.Type, tok.Literal)
		}
	}
}

func TestNextToken_KeywordsCaseInsensitive(t *testing.T) {
	input := "Module MODULE module BEGIN End"
	want := []TokenType{MODULE, MODULE, MODULE, BEGIN, END}
	l := New(input, "test.vex")
	for i, expected := range want {
		tok := l.NextToken()
		if tok.Type != expected {
			t.Fatalf("token %d: expected %s, got %s", i, expected, tok.Type)
		}
	}
}

func TestNextToken_IdentifierPreservesCase(t *testing.T) {
	l := New("MyIdentifier", "test.vex")
	tok := l.NextToken()
	if tok.Type != IDENT || tok.Literal != "MyIdentifier" {
		t.Fatalf("expected IDENT(MyIdentifier), got %s(%q)", tok.Type, tok.Literal)
	}
}

func TestNextToken_Numbers(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"123", INT},
		{"0xFF", INT},
		{"0x1A2b", INT},
		{"123.45", FLOAT},
		{"1.5e10", FLOAT},
		{"1e-5", FLOAT},
	}
	for _, tt := range tests {
		l := New(tt.input, "test.vex")
		tok := l.NextToken()
		if tok.Type != tt.typ {
			t.Errorf("input %q: expected %s, got %s", tt.input, tt.typ, tok.Type)
		}
		if tok.Literal != tt.input {
			t.Errorf("input %q: expected literal %q, got %q", tt.input, tt.input, tok.Literal)
		}
	}
}

func TestNextToken_StringLiteral(t *testing.T) {
	l := New(`'hello, world'`, "test.vex")
	tok := l.NextToken()
	if tok.Type != STRING || tok.Literal != "hello, world" {
		t.Fatalf("expected STRING(hello, world), got %s(%q)", tok.Type, tok.Literal)
	}
}

func TestNextToken_StringLiteralDoubledQuote(t *testing.T) {
	l := New(`'it''s'`, "test.vex")
	tok := l.NextToken()
	if tok.Type != STRING || tok.Literal != "it's" {
		t.Fatalf("expected STRING(it's), got %s(%q)", tok.Type, tok.Literal)
	}
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := New(`'unterminated`, "test.vex")
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(l.Errors()))
	}
}

func TestNextToken_CharLiteralEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  rune
	}{
		{`#65`, 'A'},
		{`#$41`, 'A'},
		{`#\n`, '\n'},
		{`#\t`, '\t'},
		{`#\\`, '\\'},
	}
	for _, tt := range tests {
		l := New(tt.input, "test.vex")
		tok := l.NextToken()
		if tok.Type != CHAR {
			t.Errorf("input %q: expected CHAR, got %s", tt.input, tok.Type)
			continue
		}
		if []rune(tok.Literal)[0] != tt.want {
			t.Errorf("input %q: expected %q, got %q", tt.input, tt.want, tok.Literal)
		}
	}
}

func TestNextToken_SingleLineComment(t *testing.T) {
	l := New("var // comment\nx", "test.vex")
	first := l.NextToken()
	second := l.NextToken()
	if first.Type != VAR || second.Type != IDENT || second.Literal != "x" {
		t.Fatalf("comment not skipped correctly: %v %v", first, second)
	}
	if second.Pos.Line != 2 {
		t.Fatalf("expected line 2 after comment, got %d", second.Pos.Line)
	}
}

func TestNextToken_BlockComment(t *testing.T) {
	l := New("(* multi\nline *)x", "test.vex")
	tok := l.NextToken()
	if tok.Type != IDENT || tok.Literal != "x" {
		t.Fatalf("expected IDENT(x), got %s(%q)", tok.Type, tok.Literal)
	}
}

func TestNextToken_UnterminatedBlockComment(t *testing.T) {
	l := New("(* never closed", "test.vex")
	tok := l.NextToken()
	if tok.Type != EOF {
		t.Fatalf("expected EOF, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(l.Errors()))
	}
}

func TestNextToken_Positions(t *testing.T) {
	l := New("var x", "test.vex")
	first := l.NextToken()
	second := l.NextToken()
	if first.Pos.Line != 1 || first.Pos.Column != 1 {
		t.Fatalf("expected (1,1), got (%d,%d)", first.Pos.Line, first.Pos.Column)
	}
	if second.Pos.Column != 5 {
		t.Fatalf("expected column 5 for 'x', got %d", second.Pos.Column)
	}
}

func TestNextToken_UnicodeColumnsCountRunes(t *testing.T) {
	l := New("var Δ", "test.vex")
	l.NextToken() // var
	tok := l.NextToken()
	if tok.Literal != "Δ" {
		t.Fatalf("expected identifier Δ, got %q", tok.Literal)
	}
	if tok.Pos.Column != 5 {
		t.Fatalf("expected column 5 (rune count), got %d", tok.Pos.Column)
	}
}

func TestNextToken_UnknownPunctuator(t *testing.T) {
	l := New("@", "test.vex")
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(l.Errors()))
	}
}

func TestAllTokens_EndsInEOF(t *testing.T) {
	toks := New("var x := 1;", "test.vex").AllTokens()
	if toks[len(toks)-1].Type != EOF {
		t.Fatalf("expected last token EOF, got %s", toks[len(toks)-1].Type)
	}
}

func TestNew_StripsBOM(t *testing.T) {
	input := "\xEF\xBB\xBFvar"
	l := New(input, "test.vex")
	tok := l.NextToken()
	if tok.Type != VAR {
		t.Fatalf("expected VAR after BOM strip, got %s", tok.Type)
	}
}
