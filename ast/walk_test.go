package ast

import (
	"testing"

	"sable/report"
)

func span() *report.TextSpan { return &report.TextSpan{} }

func TestInspectOrder(t *testing.T) {
	// const A: [int; N] = B + C;
	decl := &ConstDecl{
		ASTBase:  NewASTBaseOn(span()),
		ID:       1,
		Name:     "A",
		NameSpan: span(),
		Type: &ArrayType{
			ASTBase: NewASTBaseOn(span()),
			Elem:    &NamedType{ASTBase: NewASTBaseOn(span()), Name: "int"},
			Len:     &PathExpr{ASTBase: NewASTBaseOn(span()), ID: 2, Segments: []string{"N"}},
		},
		Init: &BinaryOp{
			ASTBase: NewASTBaseOn(span()),
			Lhs:     &PathExpr{ASTBase: NewASTBaseOn(span()), ID: 3, Segments: []string{"B"}},
			Rhs:     &PathExpr{ASTBase: NewASTBaseOn(span()), ID: 4, Segments: []string{"C"}},
		},
	}

	var paths []string
	Inspect(decl, func(n ASTNode) bool {
		if pe, ok := n.(*PathExpr); ok {
			paths = append(paths, pe.Last())
		}

		return true
	})

	expected := []string{"N", "B", "C"}
	if len(paths) != len(expected) {
		t.Fatalf("expected paths %v, got %v", expected, paths)
	}

	for i, name := range expected {
		if paths[i] != name {
			t.Fatalf("expected paths %v, got %v", expected, paths)
		}
	}
}

func TestInspectSkipsChildren(t *testing.T) {
	// The outer block contains a declaration whose initializer must not be
	// visited when the callback prunes the declaration.
	block := &BlockExpr{
		ASTBase: NewASTBaseOn(span()),
		Stmts: []Stmt{
			&DeclStmt{
				ASTBase: NewASTBaseOn(span()),
				Decl: &ConstDecl{
					ASTBase:  NewASTBaseOn(span()),
					ID:       1,
					Name:     "C",
					NameSpan: span(),
					Type:     &NamedType{ASTBase: NewASTBaseOn(span()), Name: "int"},
					Init:     &PathExpr{ASTBase: NewASTBaseOn(span()), ID: 2, Segments: []string{"HIDDEN"}},
				},
			},
		},
		Tail: &PathExpr{ASTBase: NewASTBaseOn(span()), ID: 3, Segments: []string{"VISIBLE"}},
	}

	var paths []string
	Inspect(block, func(n ASTNode) bool {
		switch v := n.(type) {
		case *ConstDecl:
			return false
		case *PathExpr:
			paths = append(paths, v.Last())
		}

		return true
	})

	if len(paths) != 1 || paths[0] != "VISIBLE" {
		t.Errorf("pruned subtree was visited: %v", paths)
	}
}

func TestIDGenUnique(t *testing.T) {
	g := &IDGen{}

	seen := make(map[NodeID]bool)
	for i := 0; i < 100; i++ {
		id := g.Next()
		if id == 0 {
			t.Fatal("generator handed out the zero ID")
		}

		if seen[id] {
			t.Fatalf("ID %d handed out twice", id)
		}

		seen[id] = true
	}
}
