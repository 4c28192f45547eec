package syntax

import (
	"bufio"
	"strings"
	"testing"
)

// lexAll tokenizes src until EOF and returns the tokens excluding the final
// EOF token.
func lexAll(t *testing.T, src string) []*Token {
	t.Helper()

	l := NewLexer(bufio.NewReader(strings.NewReader(src)))

	var toks []*Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected lexer error: %s", err)
		}

		if tok.Kind == TOK_EOF {
			return toks
		}

		toks = append(toks, tok)
	}
}

func TestLexTokenKinds(t *testing.T) {
	type expectedToken struct {
		kind  int
		value string
	}

	tests := []struct {
		name     string
		src      string
		expected []expectedToken
	}{
		{
			name: "const decl",
			src:  "const A: int = 1;",
			expected: []expectedToken{
				{TOK_CONST, "const"},
				{TOK_IDENT, "A"},
				{TOK_COLON, ":"},
				{TOK_IDENT, "int"},
				{TOK_ASSIGN, "="},
				{TOK_INTLIT, "1"},
				{TOK_SEMI, ";"},
			},
		},
		{
			name: "qualified path",
			src:  "i32::MAX",
			expected: []expectedToken{
				{TOK_IDENT, "i32"},
				{TOK_COLONCOLON, "::"},
				{TOK_IDENT, "MAX"},
			},
		},
		{
			name: "fn signature",
			src:  "fn f(x: int) -> bool",
			expected: []expectedToken{
				{TOK_FN, "fn"},
				{TOK_IDENT, "f"},
				{TOK_LPAREN, "("},
				{TOK_IDENT, "x"},
				{TOK_COLON, ":"},
				{TOK_IDENT, "int"},
				{TOK_RPAREN, ")"},
				{TOK_ARROW, "->"},
				{TOK_IDENT, "bool"},
			},
		},
		{
			name: "comparison operators",
			src:  "a <= b != c",
			expected: []expectedToken{
				{TOK_IDENT, "a"},
				{TOK_LTEQ, "<="},
				{TOK_IDENT, "b"},
				{TOK_NEQ, "!="},
				{TOK_IDENT, "c"},
			},
		},
		{
			name: "keywords and booleans",
			src:  "static extern trait impl for let true false",
			expected: []expectedToken{
				{TOK_STATIC, "static"},
				{TOK_EXTERN, "extern"},
				{TOK_TRAIT, "trait"},
				{TOK_IMPL, "impl"},
				{TOK_FOR, "for"},
				{TOK_LET, "let"},
				{TOK_BOOLLIT, "true"},
				{TOK_BOOLLIT, "false"},
			},
		},
		{
			name: "division",
			src:  "a / b",
			expected: []expectedToken{
				{TOK_IDENT, "a"},
				{TOK_DIV, "/"},
				{TOK_IDENT, "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexAll(t, tt.src)

			if len(toks) != len(tt.expected) {
				t.Fatalf("expected %d tokens, got %d", len(tt.expected), len(toks))
			}

			for i, tok := range toks {
				if tok.Kind != tt.expected[i].kind {
					t.Errorf("token %d: expected kind %d, got %d", i, tt.expected[i].kind, tok.Kind)
				}

				if tok.Value != tt.expected[i].value {
					t.Errorf("token %d: expected value %q, got %q", i, tt.expected[i].value, tok.Value)
				}
			}
		})
	}
}

func TestLexIntLiterals(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"42", "42"},
		{"1_000_000", "1000000"},
		{"0xFF", "0xFF"},
		{"0b1010", "0b1010"},
		{"0o777", "0o777"},
		{"0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := lexAll(t, tt.src)

			if len(toks) != 1 || toks[0].Kind != TOK_INTLIT {
				t.Fatalf("expected a single int literal, got %v", toks)
			}

			if toks[0].Value != tt.expected {
				t.Errorf("expected value %q, got %q", tt.expected, toks[0].Value)
			}
		})
	}
}

func TestLexIncompleteIntLiteral(t *testing.T) {
	l := NewLexer(bufio.NewReader(strings.NewReader("0x")))

	if _, err := l.NextToken(); err == nil {
		t.Fatal("expected an error for an incomplete integer literal")
	}
}

func TestLexUnknownRune(t *testing.T) {
	l := NewLexer(bufio.NewReader(strings.NewReader("@")))

	if _, err := l.NextToken(); err == nil {
		t.Fatal("expected an error for an unknown rune")
	}
}

func TestLexComments(t *testing.T) {
	src := `// line comment
const /* block
comment */ A`

	toks := lexAll(t, src)

	if len(toks) != 2 || toks[0].Kind != TOK_CONST || toks[1].Kind != TOK_IDENT {
		t.Fatalf("comments were not skipped: %v", toks)
	}
}

func TestLexPositions(t *testing.T) {
	toks := lexAll(t, "const A;\n  B")

	spans := []struct {
		startLine, startCol, endLine, endCol int
	}{
		{0, 0, 0, 5},
		{0, 6, 0, 7},
		{0, 7, 0, 8},
		{1, 2, 1, 3},
	}

	if len(toks) != len(spans) {
		t.Fatalf("expected %d tokens, got %d", len(spans), len(toks))
	}

	for i, tok := range toks {
		want := spans[i]
		got := tok.Span

		if got.StartLine != want.startLine || got.StartCol != want.startCol ||
			got.EndLine != want.endLine || got.EndCol != want.endCol {

			t.Errorf("token %d (%q): expected span %v, got %+v", i, tok.Value, want, *got)
		}
	}
}
