package ast

// TypeExpr represents a type as written in source text.  Types are purely
// syntactic here: the middle end never computes with them, but array types
// carry length expressions which are constant expressions and must be walked
// like any other initializer sub-expression.
type TypeExpr interface {
	ASTNode
}

// NamedType represents a type denoted by name: a primitive or a user-defined
// type.
type NamedType struct {
	ASTBase

	// The name of the type.
	Name string
}

// ArrayType represents a fixed-length array type `[Elem; Len]`.
type ArrayType struct {
	ASTBase

	// The element type.
	Elem TypeExpr

	// The length expression.  This must be a constant expression.
	Len Expr
}
