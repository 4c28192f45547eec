package depm

import "sable/ast"

// DefKind classifies the kind of definition a reference resolves to.
type DefKind int

// Enumeration of definition kinds.
const (
	DefOther      DefKind = iota // Anything that is not a constant definition.
	DefStatic                    // A static item.
	DefConst                     // A const item.
	DefAssocConst                // An associated constant of a trait or impl.
)

// Def is a single entry of the resolution map: the definition a reference
// expression denotes.
type Def struct {
	// The node ID of the declaration the reference resolves to.  This is zero
	// if the definition is not local to the program being compiled.
	DeclID ast.NodeID

	// The kind of the definition.
	Kind DefKind

	// Whether the definition is local to the program being compiled, as
	// opposed to imported from elsewhere.  Non-local definitions are assumed
	// to have been validated by their own program.
	IsLocal bool
}

// DefMap is the resolution map: it maps the node ID of each resolved path
// expression to the definition it denotes.  It is produced by the resolver and
// read-only to every later pass.  Path expressions that do not resolve to
// anything the middle end tracks are simply absent.
type DefMap map[ast.NodeID]Def

// -----------------------------------------------------------------------------

// DeclNodeKind distinguishes the shapes a declaration table entry can take.
type DeclNodeKind int

// Enumeration of declaration node kinds.
const (
	NodeOther       DeclNodeKind = iota // An unexpected, non-constant declaration.
	NodeItem                            // A plain const or static item.
	NodeTraitMember                     // An associated constant of a trait definition.
	NodeImplMember                      // An associated constant of an impl block.
	NodeForeignItem                     // An extern item defined outside the program.
)

func (k DeclNodeKind) String() string {
	switch k {
	case NodeItem:
		return "item"
	case NodeTraitMember:
		return "trait member"
	case NodeImplMember:
		return "impl member"
	case NodeForeignItem:
		return "foreign item"
	default:
		return "unknown declaration"
	}
}

// DeclNode is an entry of the declaration table: a tagged variant identifying
// the declaration a definition ID corresponds to.  Exactly one of the node
// pointers below is set, according to the kind.
type DeclNode struct {
	// The kind of the declaration node.
	Kind DeclNodeKind

	// The plain item, set for NodeItem.  This is always a *ast.StaticDecl or a
	// *ast.ConstDecl.
	Item ast.Decl

	// The associated constant, set for NodeTraitMember and NodeImplMember.
	Member *ast.AssocConst

	// The extern item, set for NodeForeignItem.
	Foreign *ast.ExternDecl

	// The source file containing the declaration.
	File *SourceFile
}

// DeclTable maps the node ID of every local constant-bearing declaration to
// its declaration node.  Like the resolution map, it is produced by the
// resolver and read-only to every later pass.
type DeclTable map[ast.NodeID]DeclNode
