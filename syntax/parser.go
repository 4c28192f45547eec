package syntax

import (
	"bufio"
	"io"

	"sable/ast"
	"sable/depm"
	"sable/report"
)

// Parser is responsible for converting a stream of tokens into an AST.  The
// parser is a recursive descent parser which bails out of the current file as
// soon as it encounters a syntax error.
type Parser struct {
	// ids generates unique node IDs for declarations and path expressions.
	ids *ast.IDGen

	// lexer is the lexer this parser reads tokens from.
	lexer *Lexer

	// tok is the token the parser is currently positioned on.
	tok *Token
}

// ParseFile parses a source file and stores its top level declarations into
// file.  Any syntax errors are reported to rep and leave the file's
// declaration list empty.
func ParseFile(rep *report.Reporter, ids *ast.IDGen, file *depm.SourceFile, r io.Reader) {
	defer rep.CatchErrors(file.Context)

	p := &Parser{
		ids:   ids,
		lexer: NewLexer(bufio.NewReader(r)),
	}

	p.next()
	file.Decls = p.parseFile()
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	tok, err := p.lexer.NextToken()
	if err != nil {
		panic(err)
	}

	p.tok = tok
}

// has returns whether the parser is currently positioned on a token of the
// given kind.
func (p *Parser) has(kind int) bool {
	return p.tok.Kind == kind
}

// want asserts that the parser is positioned on a token of the given kind,
// returns that token, and moves the parser forward one token.
func (p *Parser) want(kind int) *Token {
	if !p.has(kind) {
		p.reject()
	}

	tok := p.tok
	p.next()
	return tok
}

// reject raises an unexpected token error on the current token.
func (p *Parser) reject() {
	if p.tok.Kind == TOK_EOF {
		panic(report.Raise(p.tok.Span, "unexpected end of file"))
	}

	panic(report.Raise(p.tok.Span, "unexpected token: `%s`", p.tok.Value))
}

// rejectWithMsg raises a compile error with a custom message on the current
// token.
func (p *Parser) rejectWithMsg(msg string, args ...interface{}) {
	panic(report.Raise(p.tok.Span, msg, args...))
}
