package ast

// Inspect traverses the AST rooted at n in depth-first, left-to-right source
// order, calling f for each node it encounters.  If f returns false for a
// node, the children of that node are skipped; traversal of its siblings
// continues either way.  It is the generic structural walk used by every pass
// that does not care about most node shapes: the type switch below enumerates
// every node kind so that no shape is ever silently skipped.
func Inspect(n ASTNode, f func(ASTNode) bool) {
	if n == nil || !f(n) {
		return
	}

	switch v := n.(type) {
	case *StaticDecl:
		Inspect(v.Type, f)
		Inspect(v.Init, f)
	case *ConstDecl:
		Inspect(v.Type, f)
		Inspect(v.Init, f)
	case *ExternDecl:
		Inspect(v.Type, f)
	case *TraitDef:
		for _, member := range v.Members {
			Inspect(member, f)
		}
	case *ImplBlock:
		for _, member := range v.Members {
			Inspect(member, f)
		}
	case *AssocConst:
		Inspect(v.Type, f)
		if v.Init != nil {
			Inspect(v.Init, f)
		}
	case *FuncDef:
		for _, param := range v.Params {
			Inspect(param.Type, f)
		}
		if v.ReturnType != nil {
			Inspect(v.ReturnType, f)
		}
		if v.Body != nil {
			Inspect(v.Body, f)
		}
	case *DeclStmt:
		Inspect(v.Decl, f)
	case *LetStmt:
		if v.Type != nil {
			Inspect(v.Type, f)
		}
		Inspect(v.Init, f)
	case *ExprStmt:
		Inspect(v.Expr, f)
	case *UnaryOp:
		Inspect(v.Operand, f)
	case *BinaryOp:
		Inspect(v.Lhs, f)
		Inspect(v.Rhs, f)
	case *CallExpr:
		Inspect(v.Fn, f)
		for _, arg := range v.Args {
			Inspect(arg, f)
		}
	case *FieldAccess:
		Inspect(v.Root, f)
	case *IndexExpr:
		Inspect(v.Root, f)
		Inspect(v.Index, f)
	case *ArrayLit:
		for _, elem := range v.Elems {
			Inspect(elem, f)
		}
	case *BlockExpr:
		for _, stmt := range v.Stmts {
			Inspect(stmt, f)
		}
		if v.Tail != nil {
			Inspect(v.Tail, f)
		}
	case *ArrayType:
		Inspect(v.Elem, f)
		Inspect(v.Len, f)
	case *Literal, *PathExpr, *NamedType:
		// Leaves.
	}
}
