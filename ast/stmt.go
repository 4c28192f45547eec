package ast

// Stmt represents a statement inside a block.
type Stmt interface {
	ASTNode
}

// DeclStmt represents a constant or static declaration nested inside a
// function body or block expression.
type DeclStmt struct {
	ASTBase

	// The nested declaration.  This is always a *StaticDecl or a *ConstDecl.
	Decl Decl
}

// LetStmt represents a `let` variable declaration.  Let bindings are runtime
// values: they never participate in constant resolution.
type LetStmt struct {
	ASTBase

	// The name being bound.
	Name string

	// The declared type of the binding.  This may be nil if the type is to be
	// inferred.
	Type TypeExpr

	// The initializer expression.
	Init Expr
}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	ASTBase

	// The wrapped expression.
	Expr Expr
}
