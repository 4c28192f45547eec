package ast

import (
	"sync/atomic"

	"sable/report"
)

// NodeID uniquely identifies an AST node within one compilation.  Only nodes
// that participate in name resolution carry an ID: declarations and path
// expressions.  The resolution map and the declaration table are keyed by
// these IDs.
type NodeID uint64

// ASTNode is the abstract interface for all AST nodes.
type ASTNode interface {
	// The text span of the AST.
	Span() *report.TextSpan
}

// ASTBase is a utility base struct for all AST nodes.
type ASTBase struct {
	// The span over which the AST node occurs.
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

// NewASTBaseOver creates a new AST base spanning over two spans.
func NewASTBaseOver(start, end *report.TextSpan) ASTBase {
	return ASTBase{span: report.NewSpanOver(start, end)}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}

// -----------------------------------------------------------------------------

// IDGen hands out node IDs.  One generator is shared by all the parsers of a
// package so that IDs are unique package-wide even when files are parsed
// concurrently.  The zero NodeID is never handed out: it stands for "no node".
type IDGen struct {
	next uint64
}

// Next returns a fresh node ID.
func (g *IDGen) Next() NodeID {
	return NodeID(atomic.AddUint64(&g.next, 1))
}
