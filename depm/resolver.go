package depm

import (
	"sable/ast"
	"sable/report"
)

// Resolver is responsible for constant name resolution over a package: it
// collects every constant-bearing declaration into the declaration table and
// then maps every path expression that denotes one of them to its definition.
// The resolver is deliberately partial: path expressions that denote runtime
// values (parameters, let bindings, functions) are recorded with a non-const
// kind, and names it cannot resolve at all are simply absent from the map.
// Full semantic name resolution belongs to a later stage; this pass only needs
// the constant-reference graph.
type Resolver struct {
	rep *report.Reporter
	pkg *Package

	defs  DefMap
	decls DeclTable

	// globals maps each globally defined name to its definition.
	globals map[string]Def

	// traits maps each trait name to its associated constant members.
	traits map[string]map[string]Def

	// impls maps each impl target name to its associated constant members.
	impls map[string]map[string]Def

	// prelude is the set of foreign constant names provided by the session.
	// These resolve to non-local constant definitions.
	prelude map[string]struct{}

	// file is the source file currently being resolved.
	file *SourceFile

	// localScopes is the stack of local scopes used to look up symbols
	// declared inside function bodies and block expressions.
	localScopes []map[string]Def
}

// ResolvePackage resolves all constant references in the given package.  The
// prelude is the list of foreign constant names visible to the package.  It
// returns the resolution map and the declaration table; duplicate definitions
// are reported on the reporter.
func ResolvePackage(rep *report.Reporter, pkg *Package, prelude []string) (DefMap, DeclTable) {
	r := &Resolver{
		rep:     rep,
		pkg:     pkg,
		defs:    make(DefMap),
		decls:   make(DeclTable),
		globals: make(map[string]Def),
		traits:  make(map[string]map[string]Def),
		impls:   make(map[string]map[string]Def),
		prelude: make(map[string]struct{}),
	}

	for _, name := range prelude {
		r.prelude[name] = struct{}{}
	}

	// Collect all global definitions before resolving any references so that
	// declaration order between files never matters.
	for _, file := range pkg.Files {
		r.file = file
		for _, decl := range file.Decls {
			r.collectDecl(decl)
		}
	}

	for _, file := range pkg.Files {
		r.file = file
		for _, decl := range file.Decls {
			r.resolveDecl(decl)
		}
	}

	return r.defs, r.decls
}

// -----------------------------------------------------------------------------

// collectDecl registers the global definitions introduced by a top level
// declaration.
func (r *Resolver) collectDecl(decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.StaticDecl:
		r.defineGlobal(d.Name, d.NameSpan, Def{DeclID: d.ID, Kind: DefStatic, IsLocal: true})
		r.decls[d.ID] = DeclNode{Kind: NodeItem, Item: d, File: r.file}
	case *ast.ConstDecl:
		r.defineGlobal(d.Name, d.NameSpan, Def{DeclID: d.ID, Kind: DefConst, IsLocal: true})
		r.decls[d.ID] = DeclNode{Kind: NodeItem, Item: d, File: r.file}
	case *ast.ExternDecl:
		kind := DefConst
		if d.Static {
			kind = DefStatic
		}

		r.defineGlobal(d.Name, d.NameSpan, Def{DeclID: d.ID, Kind: kind, IsLocal: true})
		r.decls[d.ID] = DeclNode{Kind: NodeForeignItem, Foreign: d, File: r.file}
	case *ast.TraitDef:
		if _, ok := r.traits[d.Name]; ok {
			r.rep.ReportCompileError(r.file.Context, d.NameSpan, "trait defined multiple times: `%s`", d.Name)
			return
		}

		members := make(map[string]Def)
		r.traits[d.Name] = members

		for _, member := range d.Members {
			if _, ok := members[member.Name]; ok {
				r.rep.ReportCompileError(r.file.Context, member.NameSpan, "trait member defined multiple times: `%s`", member.Name)
				continue
			}

			members[member.Name] = Def{DeclID: member.ID, Kind: DefAssocConst, IsLocal: true}
			r.decls[member.ID] = DeclNode{Kind: NodeTraitMember, Member: member, File: r.file}
		}
	case *ast.ImplBlock:
		members, ok := r.impls[d.TargetName]
		if !ok {
			members = make(map[string]Def)
			r.impls[d.TargetName] = members
		}

		for _, member := range d.Members {
			if _, ok := members[member.Name]; ok {
				r.rep.ReportCompileError(r.file.Context, member.NameSpan, "impl member defined multiple times: `%s`", member.Name)
				continue
			}

			members[member.Name] = Def{DeclID: member.ID, Kind: DefAssocConst, IsLocal: true}
			r.decls[member.ID] = DeclNode{Kind: NodeImplMember, Member: member, File: r.file}
		}
	case *ast.FuncDef:
		// Functions occupy the global namespace but are never constant
		// definitions.
		r.defineGlobal(d.Name, d.NameSpan, Def{DeclID: d.ID, Kind: DefOther, IsLocal: true})
	}
}

// defineGlobal defines a global symbol.  If the symbol is already defined,
// then an error is reported.
func (r *Resolver) defineGlobal(name string, span *report.TextSpan, def Def) {
	if _, ok := r.globals[name]; ok {
		r.rep.ReportCompileError(r.file.Context, span, "symbol defined multiple times: `%s`", name)
		return
	}

	r.globals[name] = def
}

// -----------------------------------------------------------------------------

// resolveDecl resolves all references inside a declaration.
func (r *Resolver) resolveDecl(decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.StaticDecl:
		r.resolveType(d.Type)
		r.resolveExpr(d.Init)
	case *ast.ConstDecl:
		r.resolveType(d.Type)
		r.resolveExpr(d.Init)
	case *ast.ExternDecl:
		r.resolveType(d.Type)
	case *ast.TraitDef:
		for _, member := range d.Members {
			r.resolveType(member.Type)
			if member.Init != nil {
				r.resolveExpr(member.Init)
			}
		}
	case *ast.ImplBlock:
		for _, member := range d.Members {
			r.resolveType(member.Type)
			if member.Init != nil {
				r.resolveExpr(member.Init)
			}
		}
	case *ast.FuncDef:
		for _, param := range d.Params {
			r.resolveType(param.Type)
		}

		if d.ReturnType != nil {
			r.resolveType(d.ReturnType)
		}

		if d.Body != nil {
			// Parameters live in an enclosing scope of the body block.
			r.pushScope()
			for _, param := range d.Params {
				r.localScopes[len(r.localScopes)-1][param.Name] = Def{Kind: DefOther, IsLocal: true}
			}

			r.resolveExpr(d.Body)
			r.popScope()
		}
	}
}

// resolveExpr resolves all references inside an expression.
func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch v := expr.(type) {
	case *ast.Literal:
		// Nothing to resolve.
	case *ast.PathExpr:
		r.resolvePath(v)
	case *ast.UnaryOp:
		r.resolveExpr(v.Operand)
	case *ast.BinaryOp:
		r.resolveExpr(v.Lhs)
		r.resolveExpr(v.Rhs)
	case *ast.CallExpr:
		r.resolveExpr(v.Fn)
		for _, arg := range v.Args {
			r.resolveExpr(arg)
		}
	case *ast.FieldAccess:
		r.resolveExpr(v.Root)
	case *ast.IndexExpr:
		r.resolveExpr(v.Root)
		r.resolveExpr(v.Index)
	case *ast.ArrayLit:
		for _, elem := range v.Elems {
			r.resolveExpr(elem)
		}
	case *ast.BlockExpr:
		r.pushScope()

		for _, stmt := range v.Stmts {
			r.resolveStmt(stmt)
		}

		if v.Tail != nil {
			r.resolveExpr(v.Tail)
		}

		r.popScope()
	}
}

// resolveStmt resolves all references inside a statement.
func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.DeclStmt:
		// The nested declaration enters scope before its initializer is
		// resolved so that a direct self-reference resolves back to it.
		switch d := v.Decl.(type) {
		case *ast.StaticDecl:
			r.defineLocal(d.Name, d.NameSpan, Def{DeclID: d.ID, Kind: DefStatic, IsLocal: true})
			r.decls[d.ID] = DeclNode{Kind: NodeItem, Item: d, File: r.file}
		case *ast.ConstDecl:
			r.defineLocal(d.Name, d.NameSpan, Def{DeclID: d.ID, Kind: DefConst, IsLocal: true})
			r.decls[d.ID] = DeclNode{Kind: NodeItem, Item: d, File: r.file}
		}

		r.resolveDecl(v.Decl)
	case *ast.LetStmt:
		if v.Type != nil {
			r.resolveType(v.Type)
		}

		r.resolveExpr(v.Init)

		// The binding only enters scope after its own initializer.
		r.defineLocal(v.Name, v.Span(), Def{Kind: DefOther, IsLocal: true})
	case *ast.ExprStmt:
		r.resolveExpr(v.Expr)
	}
}

// resolveType resolves all references inside a type: namely, the length
// expressions of array types.
func (r *Resolver) resolveType(typ ast.TypeExpr) {
	switch v := typ.(type) {
	case *ast.NamedType:
		// Nothing to resolve.
	case *ast.ArrayType:
		r.resolveType(v.Elem)
		r.resolveExpr(v.Len)
	}
}

// -----------------------------------------------------------------------------

// resolvePath resolves a single path expression, recording an entry in the
// resolution map if it denotes a definition the middle end tracks.
func (r *Resolver) resolvePath(pe *ast.PathExpr) {
	if len(pe.Segments) == 2 {
		qualifier, name := pe.Segments[0], pe.Segments[1]

		if members, ok := r.traits[qualifier]; ok {
			if def, ok := members[name]; ok {
				r.defs[pe.ID] = def
			}

			return
		}

		if members, ok := r.impls[qualifier]; ok {
			if def, ok := members[name]; ok {
				r.defs[pe.ID] = def
			}
		}

		return
	}

	name := pe.Last()

	// Traverse local scopes in reverse order to implement shadowing.
	for i := len(r.localScopes) - 1; i > -1; i-- {
		if def, ok := r.localScopes[i][name]; ok {
			r.defs[pe.ID] = def
			return
		}
	}

	if def, ok := r.globals[name]; ok {
		r.defs[pe.ID] = def
		return
	}

	// Prelude names are constants defined outside the program being compiled.
	if _, ok := r.prelude[name]; ok {
		r.defs[pe.ID] = Def{Kind: DefConst, IsLocal: false}
	}
}

// defineLocal defines a local symbol in the current local scope.  If the
// symbol is already defined in that scope, then an error is reported.
func (r *Resolver) defineLocal(name string, span *report.TextSpan, def Def) {
	currScope := r.localScopes[len(r.localScopes)-1]

	if _, ok := currScope[name]; ok {
		r.rep.ReportCompileError(r.file.Context, span, "multiple symbols named `%s` defined in immediate local scope", name)
		return
	}

	currScope[name] = def
}

// pushScope pushes a new local scope onto the scope stack.
func (r *Resolver) pushScope() {
	r.localScopes = append(r.localScopes, make(map[string]Def))
}

// popScope removes the top local scope from the scope stack.
func (r *Resolver) popScope() {
	r.localScopes = r.localScopes[:len(r.localScopes)-1]
}
