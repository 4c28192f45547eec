package syntax

import (
	"sable/ast"
)

// binaryPrecs maps binary operator token kinds to their precedence level.
// Higher precedence binds tighter.
var binaryPrecs = map[int]int{
	TOK_EQ:   1,
	TOK_NEQ:  1,
	TOK_LT:   1,
	TOK_GT:   1,
	TOK_LTEQ: 1,
	TOK_GTEQ: 1,

	TOK_PLUS:  2,
	TOK_MINUS: 2,

	TOK_STAR: 3,
	TOK_DIV:  3,
	TOK_MOD:  3,
}

// parseExpr parses an expression.
//
// expr := bin_expr
func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinExpr(1)
}

// parseBinExpr parses a binary operator expression using precedence climbing.
// All binary operators are left associative.
func (p *Parser) parseBinExpr(minPrec int) ast.Expr {
	lhs := p.parseUnaryExpr()

	for {
		prec, ok := binaryPrecs[p.tok.Kind]
		if !ok || prec < minPrec {
			return lhs
		}

		opTok := p.tok
		p.next()

		rhs := p.parseBinExpr(prec + 1)

		lhs = &ast.BinaryOp{
			ASTBase: ast.NewASTBaseOver(lhs.Span(), rhs.Span()),
			OpKind:  opTok.Kind,
			Lhs:     lhs,
			Rhs:     rhs,
		}
	}
}

// parseUnaryExpr parses a unary operator expression.
//
// unary_expr := ('-' | '!') unary_expr | trailer_expr
func (p *Parser) parseUnaryExpr() ast.Expr {
	switch p.tok.Kind {
	case TOK_MINUS, TOK_NOT:
		opTok := p.tok
		p.next()

		operand := p.parseUnaryExpr()
		return &ast.UnaryOp{
			ASTBase: ast.NewASTBaseOver(opTok.Span, operand.Span()),
			OpKind:  opTok.Kind,
			Operand: operand,
		}
	default:
		return p.parseTrailerExpr()
	}
}

// parseTrailerExpr parses an atomic expression followed by any number of call,
// index, or field access suffixes.
//
// trailer_expr := atom_expr {'(' [expr {',' expr}] ')' | '[' expr ']' | '.' 'IDENT'}
func (p *Parser) parseTrailerExpr() ast.Expr {
	root := p.parseAtomExpr()

	for {
		switch p.tok.Kind {
		case TOK_LPAREN:
			p.next()

			var args []ast.Expr
			for !p.has(TOK_RPAREN) {
				if len(args) > 0 {
					p.want(TOK_COMMA)
				}

				args = append(args, p.parseExpr())
			}

			endTok := p.want(TOK_RPAREN)
			root = &ast.CallExpr{
				ASTBase: ast.NewASTBaseOver(root.Span(), endTok.Span),
				Fn:      root,
				Args:    args,
			}
		case TOK_LBRACKET:
			p.next()
			index := p.parseExpr()
			endTok := p.want(TOK_RBRACKET)

			root = &ast.IndexExpr{
				ASTBase: ast.NewASTBaseOver(root.Span(), endTok.Span),
				Root:    root,
				Index:   index,
			}
		case TOK_DOT:
			p.next()
			fieldTok := p.want(TOK_IDENT)

			root = &ast.FieldAccess{
				ASTBase: ast.NewASTBaseOver(root.Span(), fieldTok.Span),
				Root:    root,
				Field:   fieldTok.Value,
			}
		default:
			return root
		}
	}
}

// parseAtomExpr parses an atomic expression.
//
// atom_expr := 'INTLIT' | 'BOOLLIT' | path_expr | '(' expr ')' |
// '[' [expr {',' expr}] ']' | block_expr
// path_expr := 'IDENT' ['::' 'IDENT']
func (p *Parser) parseAtomExpr() ast.Expr {
	switch p.tok.Kind {
	case TOK_INTLIT:
		tok := p.want(TOK_INTLIT)
		return &ast.Literal{
			ASTBase: ast.NewASTBaseOn(tok.Span),
			Kind:    ast.LitInt,
			Value:   tok.Value,
		}
	case TOK_BOOLLIT:
		tok := p.want(TOK_BOOLLIT)
		return &ast.Literal{
			ASTBase: ast.NewASTBaseOn(tok.Span),
			Kind:    ast.LitBool,
			Value:   tok.Value,
		}
	case TOK_IDENT:
		firstTok := p.want(TOK_IDENT)
		segments := []string{firstTok.Value}
		endSpan := firstTok.Span

		if p.has(TOK_COLONCOLON) {
			p.next()
			lastTok := p.want(TOK_IDENT)
			segments = append(segments, lastTok.Value)
			endSpan = lastTok.Span
		}

		return &ast.PathExpr{
			ASTBase:  ast.NewASTBaseOver(firstTok.Span, endSpan),
			ID:       p.ids.Next(),
			Segments: segments,
		}
	case TOK_LPAREN:
		p.next()
		expr := p.parseExpr()
		p.want(TOK_RPAREN)
		return expr
	case TOK_LBRACKET:
		startTok := p.want(TOK_LBRACKET)

		var elems []ast.Expr
		for !p.has(TOK_RBRACKET) {
			if len(elems) > 0 {
				p.want(TOK_COMMA)
			}

			elems = append(elems, p.parseExpr())
		}

		endTok := p.want(TOK_RBRACKET)
		return &ast.ArrayLit{
			ASTBase: ast.NewASTBaseOver(startTok.Span, endTok.Span),
			Elems:   elems,
		}
	case TOK_LBRACE:
		return p.parseBlockExpr()
	default:
		p.reject()
		return nil
	}
}

// -----------------------------------------------------------------------------

// parseBlockExpr parses a braced block expression.
//
// block_expr := '{' {stmt} [expr] '}'
// stmt := const_decl | let_stmt | expr ';'
func (p *Parser) parseBlockExpr() *ast.BlockExpr {
	startTok := p.want(TOK_LBRACE)

	var stmts []ast.Stmt
	var tail ast.Expr

	for !p.has(TOK_RBRACE) {
		switch p.tok.Kind {
		case TOK_STATIC:
			stmts = append(stmts, p.declStmt(p.parseConstDecl(true)))
		case TOK_CONST:
			stmts = append(stmts, p.declStmt(p.parseConstDecl(false)))
		case TOK_LET:
			stmts = append(stmts, p.parseLetStmt())
		default:
			expr := p.parseExpr()

			// An expression not followed by a semicolon must be the tail
			// expression of the block.
			if p.has(TOK_SEMI) {
				endTok := p.want(TOK_SEMI)
				stmts = append(stmts, &ast.ExprStmt{
					ASTBase: ast.NewASTBaseOver(expr.Span(), endTok.Span),
					Expr:    expr,
				})
			} else {
				tail = expr
				if !p.has(TOK_RBRACE) {
					p.reject()
				}
			}
		}
	}

	endTok := p.want(TOK_RBRACE)

	return &ast.BlockExpr{
		ASTBase: ast.NewASTBaseOver(startTok.Span, endTok.Span),
		Stmts:   stmts,
		Tail:    tail,
	}
}

// declStmt wraps a nested constant declaration as a statement.
func (p *Parser) declStmt(decl ast.Decl) ast.Stmt {
	return &ast.DeclStmt{
		ASTBase: ast.NewASTBaseOn(decl.Span()),
		Decl:    decl,
	}
}

// parseLetStmt parses a let variable declaration.
//
// let_stmt := 'let' 'IDENT' [':' type_label] '=' expr ';'
func (p *Parser) parseLetStmt() ast.Stmt {
	startTok := p.want(TOK_LET)
	nameTok := p.want(TOK_IDENT)

	var typ ast.TypeExpr
	if p.has(TOK_COLON) {
		p.next()
		typ = p.parseTypeLabel()
	}

	p.want(TOK_ASSIGN)
	init := p.parseExpr()
	endTok := p.want(TOK_SEMI)

	return &ast.LetStmt{
		ASTBase: ast.NewASTBaseOver(startTok.Span, endTok.Span),
		Name:    nameTok.Value,
		Type:    typ,
		Init:    init,
	}
}
