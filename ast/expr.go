package ast

// Expr represents an expression, simple or complex.  All expression nodes
// implement the `Expr` interface.
type Expr interface {
	ASTNode
}

// Enumeration of literal kinds.
const (
	LitInt = iota
	LitBool
)

// Literal represents a literal value.
type Literal struct {
	ASTBase

	// The kind of the literal.  This must be one of the enumerated literal
	// kinds.
	Kind int

	// The string value of the literal as it appears in source text.
	Value string
}

// PathExpr represents an expression that denotes a name: either a plain
// identifier or a qualified name of the form `Qualifier::Name`.  Path
// expressions carry a node ID which the resolution map is keyed by.
type PathExpr struct {
	ASTBase

	// The node ID of the path expression.
	ID NodeID

	// The segments of the path in source order.  A plain identifier has one
	// segment; a qualified name has two.
	Segments []string
}

// Last returns the final segment of the path: the name being denoted.
func (pe *PathExpr) Last() string {
	return pe.Segments[len(pe.Segments)-1]
}

// -----------------------------------------------------------------------------

// UnaryOp represents a unary operator application.
type UnaryOp struct {
	ASTBase

	// The token kind of the operator.
	OpKind int

	// The operand expression.
	Operand Expr
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ASTBase

	// The token kind of the operator.
	OpKind int

	// The operand expressions.
	Lhs, Rhs Expr
}

// -----------------------------------------------------------------------------

// CallExpr represents a function call.
type CallExpr struct {
	ASTBase

	// The expression being called.
	Fn Expr

	// The argument expressions.
	Args []Expr
}

// FieldAccess represents a field access of the form `root.field`.
type FieldAccess struct {
	ASTBase

	// The expression whose field is accessed.
	Root Expr

	// The name of the field.
	Field string
}

// IndexExpr represents an index operation of the form `root[index]`.
type IndexExpr struct {
	ASTBase

	// The expression being indexed.
	Root Expr

	// The index expression.
	Index Expr
}

// ArrayLit represents an array literal.
type ArrayLit struct {
	ASTBase

	// The element expressions.
	Elems []Expr
}

// -----------------------------------------------------------------------------

// BlockExpr represents a braced block: a sequence of statements optionally
// followed by a tail expression which is the value of the block.  Blocks may
// contain nested constant declarations.
type BlockExpr struct {
	ASTBase

	// The statements of the block.
	Stmts []Stmt

	// The tail expression of the block.  This may be nil.
	Tail Expr
}
