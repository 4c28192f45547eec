package syntax

import (
	"sable/ast"
)

// parseFile parses the top level of a source file.
func (p *Parser) parseFile() []ast.Decl {
	var decls []ast.Decl

	for !p.has(TOK_EOF) {
		switch p.tok.Kind {
		case TOK_STATIC:
			decls = append(decls, p.parseConstDecl(true))
		case TOK_CONST:
			decls = append(decls, p.parseConstDecl(false))
		case TOK_EXTERN:
			decls = append(decls, p.parseExternDecl())
		case TOK_TRAIT:
			decls = append(decls, p.parseTraitDef())
		case TOK_IMPL:
			decls = append(decls, p.parseImplBlock())
		case TOK_FN:
			decls = append(decls, p.parseFuncDef())
		default:
			p.reject()
		}
	}

	return decls
}

// -----------------------------------------------------------------------------

// parseConstDecl parses a constant or static item.
//
// const_decl := ('const' | 'static') 'IDENT' ':' type_label '=' expr ';'
func (p *Parser) parseConstDecl(static bool) ast.Decl {
	startTok := p.tok
	p.next()

	nameTok := p.want(TOK_IDENT)
	p.want(TOK_COLON)
	typ := p.parseTypeLabel()
	p.want(TOK_ASSIGN)
	init := p.parseExpr()
	endTok := p.want(TOK_SEMI)

	base := ast.NewASTBaseOver(startTok.Span, endTok.Span)
	if static {
		return &ast.StaticDecl{
			ASTBase:  base,
			ID:       p.ids.Next(),
			Name:     nameTok.Value,
			NameSpan: nameTok.Span,
			Type:     typ,
			Init:     init,
		}
	}

	return &ast.ConstDecl{
		ASTBase:  base,
		ID:       p.ids.Next(),
		Name:     nameTok.Value,
		NameSpan: nameTok.Span,
		Type:     typ,
		Init:     init,
	}
}

// parseExternDecl parses an extern item declaration.
//
// extern_decl := 'extern' ('const' | 'static') 'IDENT' ':' type_label ';'
func (p *Parser) parseExternDecl() ast.Decl {
	startTok := p.want(TOK_EXTERN)

	var static bool
	switch p.tok.Kind {
	case TOK_STATIC:
		static = true
	case TOK_CONST:
	default:
		p.rejectWithMsg("expected `const` or `static` after `extern`")
	}
	p.next()

	nameTok := p.want(TOK_IDENT)
	p.want(TOK_COLON)
	typ := p.parseTypeLabel()
	endTok := p.want(TOK_SEMI)

	return &ast.ExternDecl{
		ASTBase:  ast.NewASTBaseOver(startTok.Span, endTok.Span),
		ID:       p.ids.Next(),
		Name:     nameTok.Value,
		NameSpan: nameTok.Span,
		Static:   static,
		Type:     typ,
	}
}

// -----------------------------------------------------------------------------

// parseTraitDef parses a trait definition.
//
// trait_def := 'trait' 'IDENT' '{' trait_member* '}'
// trait_member := 'const' 'IDENT' ':' type_label ['=' expr] ';'
func (p *Parser) parseTraitDef() ast.Decl {
	startTok := p.want(TOK_TRAIT)
	nameTok := p.want(TOK_IDENT)
	p.want(TOK_LBRACE)

	var members []*ast.AssocConst
	for !p.has(TOK_RBRACE) {
		members = append(members, p.parseAssocConst(false))
	}

	endTok := p.want(TOK_RBRACE)

	return &ast.TraitDef{
		ASTBase:  ast.NewASTBaseOver(startTok.Span, endTok.Span),
		ID:       p.ids.Next(),
		Name:     nameTok.Value,
		NameSpan: nameTok.Span,
		Members:  members,
	}
}

// parseImplBlock parses an impl block.
//
// impl_block := 'impl' 'IDENT' 'for' 'IDENT' '{' impl_member* '}'
// impl_member := 'const' 'IDENT' ':' type_label '=' expr ';'
func (p *Parser) parseImplBlock() ast.Decl {
	startTok := p.want(TOK_IMPL)
	traitTok := p.want(TOK_IDENT)
	p.want(TOK_FOR)
	targetTok := p.want(TOK_IDENT)
	p.want(TOK_LBRACE)

	var members []*ast.AssocConst
	for !p.has(TOK_RBRACE) {
		members = append(members, p.parseAssocConst(true))
	}

	endTok := p.want(TOK_RBRACE)

	return &ast.ImplBlock{
		ASTBase:    ast.NewASTBaseOver(startTok.Span, endTok.Span),
		ID:         p.ids.Next(),
		TraitName:  traitTok.Value,
		TargetName: targetTok.Value,
		TargetSpan: targetTok.Span,
		Members:    members,
	}
}

// parseAssocConst parses an associated constant member of a trait or impl.
// Impl members must carry an initializer; trait members may omit it.
func (p *Parser) parseAssocConst(initRequired bool) *ast.AssocConst {
	startTok := p.want(TOK_CONST)
	nameTok := p.want(TOK_IDENT)
	p.want(TOK_COLON)
	typ := p.parseTypeLabel()

	var init ast.Expr
	if p.has(TOK_ASSIGN) {
		p.next()
		init = p.parseExpr()
	} else if initRequired {
		p.rejectWithMsg("impl member must have an initializer")
	}

	endTok := p.want(TOK_SEMI)

	return &ast.AssocConst{
		ASTBase:  ast.NewASTBaseOver(startTok.Span, endTok.Span),
		ID:       p.ids.Next(),
		Name:     nameTok.Value,
		NameSpan: nameTok.Span,
		Type:     typ,
		Init:     init,
	}
}

// -----------------------------------------------------------------------------

// parseFuncDef parses a function definition.
//
// func_def := 'fn' 'IDENT' '(' [param {',' param}] ')' ['->' type_label] block_expr
// param := 'IDENT' ':' type_label
func (p *Parser) parseFuncDef() ast.Decl {
	startTok := p.want(TOK_FN)
	nameTok := p.want(TOK_IDENT)
	p.want(TOK_LPAREN)

	var params []ast.FuncParam
	for !p.has(TOK_RPAREN) {
		if len(params) > 0 {
			p.want(TOK_COMMA)
		}

		paramNameTok := p.want(TOK_IDENT)
		p.want(TOK_COLON)
		params = append(params, ast.FuncParam{
			Name: paramNameTok.Value,
			Type: p.parseTypeLabel(),
		})
	}

	p.want(TOK_RPAREN)

	var returnType ast.TypeExpr
	if p.has(TOK_ARROW) {
		p.next()
		returnType = p.parseTypeLabel()
	}

	body := p.parseBlockExpr()

	return &ast.FuncDef{
		ASTBase:    ast.NewASTBaseOver(startTok.Span, body.Span()),
		ID:         p.ids.Next(),
		Name:       nameTok.Value,
		NameSpan:   nameTok.Span,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}
}

// -----------------------------------------------------------------------------

// parseTypeLabel parses a type as written in source text.
//
// type_label := 'IDENT' | '[' type_label ';' expr ']'
func (p *Parser) parseTypeLabel() ast.TypeExpr {
	switch p.tok.Kind {
	case TOK_IDENT:
		nameTok := p.want(TOK_IDENT)
		return &ast.NamedType{
			ASTBase: ast.NewASTBaseOn(nameTok.Span),
			Name:    nameTok.Value,
		}
	case TOK_LBRACKET:
		startTok := p.want(TOK_LBRACKET)
		elem := p.parseTypeLabel()
		p.want(TOK_SEMI)
		length := p.parseExpr()
		endTok := p.want(TOK_RBRACKET)

		return &ast.ArrayType{
			ASTBase: ast.NewASTBaseOver(startTok.Span, endTok.Span),
			Elem:    elem,
			Len:     length,
		}
	default:
		p.rejectWithMsg("expected a type label")
		return nil
	}
}
