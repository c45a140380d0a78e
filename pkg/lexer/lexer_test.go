package lexer

import "testing"

func scan(t *testing.T, input string) []Token {
	t.Helper()

	l := New(input, 1)
	tokens, errs := l.ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	return tokens
}

func TestNextToken(t *testing.T) {
	input := `var x = 5;
var y = 10;

if (x > y) {
  print "x is greater";
} else {
  print "y is greater";
}
`

	tests := []struct {
		kind   Kind
		lexeme string
	}{
		// Only Identifier/StringLiteral/NumberLiteral tokens carry a lexeme.
		{Var, ""},
		{Identifier, "x"},
		{Equal, ""},
		{NumberLiteral, "5"},
		{Semicolon, ""},
		{Var, ""},
		{Identifier, "y"},
		{Equal, ""},
		{NumberLiteral, "10"},
		{Semicolon, ""},
		{If, ""},
		{LeftParen, ""},
		{Identifier, "x"},
		{Greater, ""},
		{Identifier, "y"},
		{RightParen, ""},
		{LeftBrace, ""},
		{Print, ""},
		{StringLiteral, "x is greater"},
		{Semicolon, ""},
		{RightBrace, ""},
		{Else, ""},
		{LeftBrace, ""},
		{Print, ""},
		{StringLiteral, "y is greater"},
		{Semicolon, ""},
		{RightBrace, ""},
		{Eof, ""},
	}

	tokens := scan(t, input)
	if len(tokens) != len(tests) {
		t.Fatalf("token count mismatch. got=%d want=%d (%v)", len(tokens), len(tests), tokens)
	}

	for i, tt := range tests {
		if tokens[i].Kind != tt.kind {
			t.Fatalf("tokens[%d] - kind wrong. expected=%s, got=%s", i, tt.kind, tokens[i].Kind)
		}
		if tokens[i].Lexeme != tt.lexeme {
			t.Fatalf("tokens[%d] - lexeme wrong. expected=%q, got=%q", i, tt.lexeme, tokens[i].Lexeme)
		}
	}
}

func TestOperators(t *testing.T) {
	input := "+-*/== != < > <= >= ="

	tests := []struct {
		kind   Kind
		lexeme string
	}{
		{Plus, "+"},
		{Minus, "-"},
		{Star, "*"},
		{Slash, "/"},
		{EqualEqual, "=="},
		{BangEqual, "!="},
		{Less, "<"},
		{Greater, ">"},
		{LessEqual, "<="},
		{GreaterEqual, ">="},
		{Equal, "="},
		{Eof, ""},
	}

	tokens := scan(t, input)
	if len(tokens) != len(tests) {
		t.Fatalf("token count mismatch. got=%d want=%d (%v)", len(tokens), len(tests), tokens)
	}

	for i, tt := range tests {
		if tokens[i].Kind != tt.kind {
			t.Fatalf("tokens[%d] - kind wrong. expected=%s, got=%s", i, tt.kind, tokens[i].Kind)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "123 3.14 0.5"

	tests := []string{"123", "3.14", "0.5"}

	tokens := scan(t, input)
	for i, want := range tests {
		if tokens[i].Kind != NumberLiteral {
			t.Fatalf("tokens[%d] - expected NumberLiteral, got %s", i, tokens[i].Kind)
		}
		if tokens[i].Lexeme != want {
			t.Fatalf("tokens[%d] - lexeme wrong. expected=%q, got=%q", i, want, tokens[i].Lexeme)
		}
	}
	if tokens[len(tests)].Kind != Eof {
		t.Fatalf("expected trailing Eof token")
	}
}

func TestDollarIsDigitAndIdentifierOverlap(t *testing.T) {
	// Open Question #1 preserved verbatim: '$' counts as both a digit and
	// an identifier-continuation character, exactly as in the original
	// scanner's is_digit/is_alpha.
	tokens := scan(t, `a$b`)
	if len(tokens) != 2 {
		t.Fatalf("expected a single identifier token plus Eof, got %v", tokens)
	}
	if tokens[0].Kind != Identifier || tokens[0].Lexeme != "a$b" {
		t.Fatalf("expected identifier 'a$b', got %+v", tokens[0])
	}
}

func TestStrings(t *testing.T) {
	input := `"hello world"`

	tokens := scan(t, input)
	if tokens[0].Kind != StringLiteral || tokens[0].Lexeme != "hello world" {
		t.Fatalf("unexpected token: %+v", tokens[0])
	}
}

func TestUnterminatedStringIsReported(t *testing.T) {
	l := New(`"unterminated`, 1)
	_, errs := l.ScanTokens()
	if len(errs) == 0 {
		t.Fatalf("expected an unterminated-string error")
	}
}

func TestKeywords(t *testing.T) {
	input := "and class else false for fun if nil or print return super this true var while"

	tests := []Kind{
		And, Class, Else, False, For, Fun, If, Nil, Or, Print, Return, Super, This, True, Var, While,
	}

	tokens := scan(t, input)
	for i, want := range tests {
		if tokens[i].Kind != want {
			t.Fatalf("tokens[%d] - kind wrong. expected=%s, got=%s", i, want, tokens[i].Kind)
		}
	}
}

func TestLineCommentsAreSkipped(t *testing.T) {
	input := "var x = 1; // trailing comment\nvar y = 2;"

	tokens := scan(t, input)
	// var x = 1 ; var y = 2 ; Eof
	if len(tokens) != 11 {
		t.Fatalf("expected comment to be skipped, got %d tokens: %v", len(tokens), tokens)
	}
}

func TestNestedBlockComments(t *testing.T) {
	input := "var x = /* outer /* inner */ still-outer */ 1;"

	tokens := scan(t, input)
	if tokens[0].Kind != Var || tokens[1].Kind != Identifier || tokens[2].Kind != Equal {
		t.Fatalf("unexpected tokens before comment: %v", tokens)
	}
	if tokens[3].Kind != NumberLiteral || tokens[3].Lexeme != "1" {
		t.Fatalf("expected nested block comment to be fully consumed, got %+v", tokens[3])
	}
}

func TestLineNumbersTrackedAcrossNewlines(t *testing.T) {
	input := "var x = 1;\nvar y = 2;\nprint y;"

	tokens := scan(t, input)

	var printTok Token
	for _, tok := range tokens {
		if tok.Kind == Print {
			printTok = tok
		}
	}
	if printTok.Line != 3 {
		t.Fatalf("expected print on line 3, got line %d", printTok.Line)
	}
}
