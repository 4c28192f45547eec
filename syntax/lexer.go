package syntax

import (
	"bufio"
	"io"

	"sable/report"
)

// Lexer is responsible for tokenizing a source file.
type Lexer struct {
	file    *bufio.Reader
	tokBuff []rune

	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer for the given source reader.
func NewLexer(file *bufio.Reader) *Lexer {
	return &Lexer{
		file: file,
		line: 0,
		col:  0,
	}
}

// NextToken retrieves the next token from the input file.  If the file has
// ended, this will be an EOF token.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '/':
			if tok, err := l.lexCommentOrDiv(); tok != nil || err != nil {
				return tok, err
			}
		default:
			if isDecimalDigit(c) {
				return l.lexIntLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			} else {
				return l.lexPunctOrOper()
			}
		}
	}

	l.mark()
	return &Token{Kind: TOK_EOF, Span: l.getSpan()}, nil
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	// Division operator is handled with comment logic.
	"%": TOK_MOD,

	"==": TOK_EQ,
	"!=": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,

	"!": TOK_NOT,
	"=": TOK_ASSIGN,

	"(":  TOK_LPAREN,
	")":  TOK_RPAREN,
	"{":  TOK_LBRACE,
	"}":  TOK_RBRACE,
	"[":  TOK_LBRACKET,
	"]":  TOK_RBRACKET,
	",":  TOK_COMMA,
	".":  TOK_DOT,
	";":  TOK_SEMI,
	":":  TOK_COLON,
	"::": TOK_COLONCOLON,
	"->": TOK_ARROW,
}

// lexPunctOrOper lexes a punctuation or operator symbol.
func (l *Lexer) lexPunctOrOper() (*Token, error) {
	l.mark()
	l.eat()

	kind, ok := symbolPatterns[string(l.tokBuff)]
	if !ok {
		return nil, report.Raise(l.getSpan(), "unknown rune")
	}

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if c == -1 {
			break
		}

		if _kind, ok := symbolPatterns[string(l.tokBuff)+string(c)]; ok {
			l.eat()
			kind = _kind
		} else {
			break
		}
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
var keywordPatterns = map[string]int{
	"static": TOK_STATIC,
	"const":  TOK_CONST,
	"extern": TOK_EXTERN,
	"trait":  TOK_TRAIT,
	"impl":   TOK_IMPL,
	"for":    TOK_FOR,
	"fn":     TOK_FN,
	"let":    TOK_LET,

	"true":  TOK_BOOLLIT,
	"false": TOK_BOOLLIT,
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isFirstIdentChar(c) && !isDecimalDigit(c) {
			break
		}

		l.eat()
	}

	var kind int
	if _kind, ok := keywordPatterns[string(l.tokBuff)]; ok {
		kind = _kind
	} else {
		kind = TOK_IDENT
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// lexIntLit lexes an integer literal.
func (l *Lexer) lexIntLit() (*Token, error) {
	l.mark()
	c, _ := l.eat()

	// Determine the base of the literal.
	base := 10
	mustHaveDigit := false
	if c == '0' {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch c {
		case 'x':
			base = 16
			l.eat()
			mustHaveDigit = true
		case 'o':
			base = 8
			l.eat()
			mustHaveDigit = true
		case 'b':
			base = 2
			l.eat()
			mustHaveDigit = true
		}
	}

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		} else if c == '_' {
			// Skip all _ that occur in the literal.
			l.skip()
			continue
		}

		var isDigit bool
		switch base {
		case 2:
			isDigit = c == '0' || c == '1'
		case 8:
			isDigit = '0' <= c && c <= '7'
		case 16:
			isDigit = isHexDigit(c)
		default:
			isDigit = isDecimalDigit(c)
		}

		if !isDigit {
			break
		}

		l.eat()
		mustHaveDigit = false
	}

	// Ensure that the literal is not malformed.
	if mustHaveDigit {
		return nil, report.Raise(l.getSpan(), "incomplete integer literal")
	}

	return l.makeToken(TOK_INTLIT), nil
}

// -----------------------------------------------------------------------------

// lexCommentOrDiv lexes either a comment or a division operator depending on
// what character follows the leading `/`.
func (l *Lexer) lexCommentOrDiv() (*Token, error) {
	l.mark()
	l.skip()

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	switch c {
	case '/':
		for ; err == nil && c != '\n' && c != -1; c, err = l.skip() {
		}
	case '*':
		for {
			c, err = l.skip()
			if err != nil || c == -1 {
				break
			}

			if c == '*' {
				c, err = l.skip()
				if err != nil || c == -1 || c == '/' {
					break
				}
			}
		}
	default:
		{
			tok := l.makeToken(TOK_DIV)
			tok.Value = "/"
			return tok, nil
		}
	}

	return nil, err
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line and column to its current position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := string(l.tokBuff)
	l.tokBuff = l.tokBuff[:0]

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token
// buffer.  If the lexer encounters an EOF, -1 is returned as the rune value.
func (l *Lexer) eat() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)
	l.tokBuff = append(l.tokBuff, c)

	return c, nil
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.  If the lexer encounters an EOF, -1 is returned as the rune
// value.
func (l *Lexer) skip() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)

	return c, nil
}

// peek returns the next rune in the file without moving the lexer forward or
// writing the rune to the token buffer.  If the lexer encounters an EOF, -1 is
// returned as the rune value.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	if err = l.file.UnreadRune(); err != nil {
		return 0, err
	}

	return c, nil
}

// updatePos updates the lexer's position based on the input character.
func (l *Lexer) updatePos(c rune) {
	switch c {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col += 4
	default:
		l.col++
	}
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isHexDigit returns whether c is a hexadecimal digit.
func isHexDigit(c rune) bool {
	return isDecimalDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// isFirstIdentChar returns whether c can start an identifier.
func isFirstIdentChar(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}
