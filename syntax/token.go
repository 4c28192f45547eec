package syntax

import "sable/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_STATIC = iota
	TOK_CONST
	TOK_EXTERN
	TOK_TRAIT
	TOK_IMPL
	TOK_FOR
	TOK_FN
	TOK_LET

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV
	TOK_MOD

	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_GT
	TOK_LTEQ
	TOK_GTEQ

	TOK_NOT
	TOK_ASSIGN

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_COMMA
	TOK_DOT
	TOK_SEMI
	TOK_COLON
	TOK_COLONCOLON
	TOK_ARROW

	TOK_IDENT
	TOK_INTLIT
	TOK_BOOLLIT

	TOK_EOF
)
