package depm

import (
	"sable/ast"
	"sable/report"
)

/*
Constant Recursion Checking
---------------------------

A constant-bearing declaration (a static item, a const item, a trait
associated-constant default, or an impl associated constant) must be evaluable
without executing any runtime code.  If its initializer refers, directly or
through a chain of other constants, back to itself, evaluation cannot
terminate.  This pass rejects such programs before constant evaluation is ever
attempted.

The pass runs two cooperating walks.  The outer walk visits every declaration
in the package, including declarations nested inside function bodies and block
expressions, and launches a fresh recursion check rooted at each
constant-bearing declaration it finds.  The inner walk explores every
declaration transitively reachable from the root through constant references,
keeping the chain of declarations currently being entered on a stack.
Entering a declaration already on the stack is a cycle: it is reported at the
root's location and that branch of the exploration stops.  The stack entry is
popped once a declaration's walk completes, so the same declaration may
legally be reached again from a sibling branch.

Each root is checked independently against its own empty stack, so a cycle
through N constants is reported once per participating root.  Stack depth is
bounded by the number of declarations in the package, which guarantees
termination even for cyclic programs.
*/

// CheckConstRecursion checks every constant-bearing declaration in the package
// for a self-referential initializer.  Detected problems are reported on the
// reporter; the caller decides afterwards whether compilation proceeds.
func CheckConstRecursion(rep *report.Reporter, pkg *Package, defs DefMap, decls DeclTable) {
	for _, file := range pkg.Files {
		v := &constVisitor{
			rep:   rep,
			file:  file,
			defs:  defs,
			decls: decls,
		}

		for _, decl := range file.Decls {
			ast.Inspect(decl, v.visit)
		}
	}
}

// constVisitor is the outer walk: it discovers the declarations that serve as
// recursion check roots.
type constVisitor struct {
	rep   *report.Reporter
	file  *SourceFile
	defs  DefMap
	decls DeclTable
}

// visit launches a recursion check for each constant-bearing declaration.  It
// always returns true: the structural walk continues into the declaration's
// own initializer so that nested declarations are independently checked.
func (v *constVisitor) visit(n ast.ASTNode) bool {
	switch d := n.(type) {
	case *ast.StaticDecl:
		v.newChecker(d.Span()).enterItem(d)
	case *ast.ConstDecl:
		v.newChecker(d.Span()).enterItem(d)
	case *ast.AssocConst:
		// Trait members without a default have nothing to evaluate.
		if d.Init != nil {
			v.newChecker(d.Span()).enterMember(d)
		}
	}

	return true
}

// newChecker creates a recursion checker rooted at the given span.
func (v *constVisitor) newChecker(rootSpan *report.TextSpan) *recursionChecker {
	return &recursionChecker{
		rep:      v.rep,
		defs:     v.defs,
		decls:    v.decls,
		rootCtx:  v.file.Context,
		rootSpan: rootSpan,
		curCtx:   v.file.Context,
	}
}

// -----------------------------------------------------------------------------

// recursionChecker is the inner walk: starting from one root declaration, it
// follows every constant reference reachable from the root's initializer,
// re-entering the declarations it reaches, and reports a cycle whenever it
// would re-enter a declaration that is already being entered.
type recursionChecker struct {
	rep   *report.Reporter
	defs  DefMap
	decls DeclTable

	// rootCtx and rootSpan locate the root declaration of this check.  Every
	// cycle found during this checker's lifetime is reported there.
	rootCtx  *report.CompilationContext
	rootSpan *report.TextSpan

	// curCtx is the context of the file containing the declaration currently
	// being walked.  Reference-level diagnostics are reported against it.
	curCtx *report.CompilationContext

	// idStack is the chain of declarations currently being entered, from the
	// root to the innermost reference being followed.  No ID ever appears on
	// it twice.
	idStack []ast.NodeID
}

// withDeclPushed runs walk with the given declaration ID pushed onto the visit
// stack.  If the ID is already on the stack, the declaration chain has cycled:
// a recursive constant error is reported at the root and walk never runs.
func (c *recursionChecker) withDeclPushed(id ast.NodeID, walk func()) {
	for _, stacked := range c.idStack {
		if stacked == id {
			c.rep.ReportCompileError(c.rootCtx, c.rootSpan, "recursive constant")
			return
		}
	}

	c.idStack = append(c.idStack, id)
	defer func() {
		c.idStack = c.idStack[:len(c.idStack)-1]
	}()

	walk()
}

// enterItem enters a plain const or static item.
func (c *recursionChecker) enterItem(item ast.Decl) {
	c.withDeclPushed(item.DeclID(), func() {
		switch d := item.(type) {
		case *ast.StaticDecl:
			c.walk(d.Type)
			c.walk(d.Init)
		case *ast.ConstDecl:
			c.walk(d.Type)
			c.walk(d.Init)
		}
	})
}

// enterMember enters a trait or impl associated constant.
func (c *recursionChecker) enterMember(member *ast.AssocConst) {
	c.withDeclPushed(member.ID, func() {
		c.walk(member.Type)
		if member.Init != nil {
			c.walk(member.Init)
		}
	})
}

// walk structurally walks one body of the declaration being entered.
func (c *recursionChecker) walk(n ast.ASTNode) {
	ast.Inspect(n, c.visit)
}

// visit handles a single node of the structural walk.  Constant declarations
// nested inside the body being walked are entered against the same stack;
// path expressions are resolved and followed; every other shape is walked
// structurally.
func (c *recursionChecker) visit(n ast.ASTNode) bool {
	switch d := n.(type) {
	case *ast.StaticDecl:
		c.enterItem(d)
		return false
	case *ast.ConstDecl:
		c.enterItem(d)
		return false
	case *ast.PathExpr:
		c.followRef(d)
	}

	return true
}

// followRef follows a path expression to the declaration it denotes, if that
// declaration is a constant definition belonging to the program being
// compiled.
func (c *recursionChecker) followRef(pe *ast.PathExpr) {
	def, ok := c.defs[pe.ID]
	if !ok {
		return
	}

	switch def.Kind {
	case DefStatic, DefConst, DefAssocConst:
	default:
		return
	}

	// Definitions from outside the program are assumed to have been validated
	// by their own program and are never re-entered.
	if !def.IsLocal {
		return
	}

	node := c.decls[def.DeclID]
	switch node.Kind {
	case NodeItem:
		prevCtx := c.curCtx
		c.curCtx = node.File.Context
		c.enterItem(node.Item)
		c.curCtx = prevCtx
	case NodeTraitMember, NodeImplMember:
		prevCtx := c.curCtx
		c.curCtx = node.File.Context
		c.enterMember(node.Member)
		c.curCtx = prevCtx
	case NodeForeignItem:
		// Extern items carry no initializer to descend into.
	default:
		c.rep.ReportCompileError(c.curCtx, pe.Span(), "expected constant item, found %s", node.Kind)
	}
}
