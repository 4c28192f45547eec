package ast

import "sable/report"

// Decl represents a declaration: a named definition occurring either at the
// top level of a source file or nested inside a function body or block
// expression.
type Decl interface {
	ASTNode

	// DeclID returns the node ID of the declaration.
	DeclID() NodeID

	// DeclName returns the name the declaration defines.
	DeclName() string
}

// -----------------------------------------------------------------------------

// StaticDecl represents a `static` item: a named memory location whose
// initializer must be a compile-time constant expression.
type StaticDecl struct {
	ASTBase

	// The node ID of the declaration.
	ID NodeID

	// The name being defined.
	Name string

	// The span of the name token.
	NameSpan *report.TextSpan

	// The declared type of the static.
	Type TypeExpr

	// The initializer expression.
	Init Expr
}

func (sd *StaticDecl) DeclID() NodeID   { return sd.ID }
func (sd *StaticDecl) DeclName() string { return sd.Name }

// ConstDecl represents a `const` item: a named compile-time constant.
type ConstDecl struct {
	ASTBase

	// The node ID of the declaration.
	ID NodeID

	// The name being defined.
	Name string

	// The span of the name token.
	NameSpan *report.TextSpan

	// The declared type of the constant.
	Type TypeExpr

	// The initializer expression.
	Init Expr
}

func (cd *ConstDecl) DeclID() NodeID   { return cd.ID }
func (cd *ConstDecl) DeclName() string { return cd.Name }

// -----------------------------------------------------------------------------

// ExternDecl represents an `extern const` or `extern static` item: a constant
// or static declared here but defined outside the program being compiled.
// Extern items have no initializer; they are assumed to have been validated
// wherever they are defined.
type ExternDecl struct {
	ASTBase

	// The node ID of the declaration.
	ID NodeID

	// The name being declared.
	Name string

	// The span of the name token.
	NameSpan *report.TextSpan

	// Whether the item is a static as opposed to a constant.
	Static bool

	// The declared type of the item.
	Type TypeExpr
}

func (ed *ExternDecl) DeclID() NodeID   { return ed.ID }
func (ed *ExternDecl) DeclName() string { return ed.Name }

// -----------------------------------------------------------------------------

// TraitDef represents a trait definition.  Only associated constants are
// modeled: each member is an associated constant, optionally with a default
// initializer.
type TraitDef struct {
	ASTBase

	// The node ID of the trait itself.
	ID NodeID

	// The name of the trait.
	Name string

	// The span of the name token.
	NameSpan *report.TextSpan

	// The associated constant members of the trait.
	Members []*AssocConst
}

func (td *TraitDef) DeclID() NodeID   { return td.ID }
func (td *TraitDef) DeclName() string { return td.Name }

// AssocConst represents an associated constant: a constant member of a trait
// definition or an impl block.
type AssocConst struct {
	ASTBase

	// The node ID of the member.
	ID NodeID

	// The name of the member.
	Name string

	// The span of the name token.
	NameSpan *report.TextSpan

	// The declared type of the member.
	Type TypeExpr

	// The initializer expression.  For a trait member this is the default
	// value and may be nil; for an impl member it is always present.
	Init Expr
}

func (ac *AssocConst) DeclID() NodeID   { return ac.ID }
func (ac *AssocConst) DeclName() string { return ac.Name }

// ImplBlock represents an `impl TRAIT for TYPE` block defining the associated
// constants of the trait for the given type.
type ImplBlock struct {
	ASTBase

	// The node ID of the impl block itself.
	ID NodeID

	// The name of the trait being implemented.
	TraitName string

	// The name of the type the trait is implemented for.
	TargetName string

	// The span of the target name token.
	TargetSpan *report.TextSpan

	// The associated constant members of the impl.
	Members []*AssocConst
}

func (ib *ImplBlock) DeclID() NodeID   { return ib.ID }
func (ib *ImplBlock) DeclName() string { return ib.TargetName }

// -----------------------------------------------------------------------------

// FuncDef represents a function definition.  Function bodies are walked only
// to find the constant declarations nested inside them.
type FuncDef struct {
	ASTBase

	// The node ID of the function.
	ID NodeID

	// The name of the function.
	Name string

	// The span of the name token.
	NameSpan *report.TextSpan

	// The parameters of the function.
	Params []FuncParam

	// The return type of the function.  This is nil if the function returns
	// nothing.
	ReturnType TypeExpr

	// The body of the function.
	Body *BlockExpr
}

// FuncParam represents a single function parameter.
type FuncParam struct {
	Name string
	Type TypeExpr
}

func (fd *FuncDef) DeclID() NodeID   { return fd.ID }
func (fd *FuncDef) DeclName() string { return fd.Name }
