package syntax

import (
	"strings"
	"testing"

	"sable/ast"
	"sable/depm"
	"sable/report"
)

// parseSource parses a single source string into a source file.
func parseSource(t *testing.T, src string) (*report.Reporter, *depm.SourceFile) {
	t.Helper()

	rep := report.NewReporter(report.LogLevelSilent)
	file := &depm.SourceFile{
		Context: &report.CompilationContext{AbsPath: "/test/test.sb", ReprPath: "[test] test.sb"},
	}

	ParseFile(rep, &ast.IDGen{}, file, strings.NewReader(src))
	return rep, file
}

// mustParse parses a source string and fails the test on any syntax error.
func mustParse(t *testing.T, src string) *depm.SourceFile {
	t.Helper()

	rep, file := parseSource(t, src)
	if rep.AnyErrors() {
		t.Fatalf("unexpected parse error: %s", rep.Errors()[0].Message)
	}

	return file
}

// -----------------------------------------------------------------------------

func TestParseConstDecl(t *testing.T) {
	file := mustParse(t, `const A: int = 1;`)

	if len(file.Decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(file.Decls))
	}

	cd, ok := file.Decls[0].(*ast.ConstDecl)
	if !ok {
		t.Fatalf("expected a const declaration, got %T", file.Decls[0])
	}

	if cd.Name != "A" {
		t.Errorf("expected name A, got %s", cd.Name)
	}

	if nt, ok := cd.Type.(*ast.NamedType); !ok || nt.Name != "int" {
		t.Errorf("expected named type int, got %v", cd.Type)
	}

	if lit, ok := cd.Init.(*ast.Literal); !ok || lit.Kind != ast.LitInt || lit.Value != "1" {
		t.Errorf("expected int literal 1, got %v", cd.Init)
	}

	if cd.ID == 0 {
		t.Error("declaration was not assigned a node ID")
	}
}

func TestParseStaticDecl(t *testing.T) {
	file := mustParse(t, `static COUNT: int = N + 1;`)

	sd, ok := file.Decls[0].(*ast.StaticDecl)
	if !ok {
		t.Fatalf("expected a static declaration, got %T", file.Decls[0])
	}

	if sd.Name != "COUNT" {
		t.Errorf("expected name COUNT, got %s", sd.Name)
	}

	if _, ok := sd.Init.(*ast.BinaryOp); !ok {
		t.Errorf("expected a binary operation initializer, got %T", sd.Init)
	}
}

func TestParseExternDecls(t *testing.T) {
	file := mustParse(t, `
extern const LIMIT: int;
extern static COUNTER: int;
`)

	if len(file.Decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(file.Decls))
	}

	first := file.Decls[0].(*ast.ExternDecl)
	if first.Static || first.Name != "LIMIT" {
		t.Errorf("unexpected first extern: %+v", first)
	}

	second := file.Decls[1].(*ast.ExternDecl)
	if !second.Static || second.Name != "COUNTER" {
		t.Errorf("unexpected second extern: %+v", second)
	}
}

func TestParseTraitDef(t *testing.T) {
	file := mustParse(t, `
trait Bounded {
	const MIN: int;
	const MAX: int = 100;
}
`)

	td, ok := file.Decls[0].(*ast.TraitDef)
	if !ok {
		t.Fatalf("expected a trait definition, got %T", file.Decls[0])
	}

	if td.Name != "Bounded" || len(td.Members) != 2 {
		t.Fatalf("unexpected trait shape: %s with %d members", td.Name, len(td.Members))
	}

	if td.Members[0].Init != nil {
		t.Error("defaultless member has an initializer")
	}

	if td.Members[1].Init == nil {
		t.Error("defaulted member is missing its initializer")
	}
}

func TestParseImplBlock(t *testing.T) {
	file := mustParse(t, `
impl Bounded for i32 {
	const MIN: int = 0;
	const MAX: int = 2147483647;
}
`)

	ib, ok := file.Decls[0].(*ast.ImplBlock)
	if !ok {
		t.Fatalf("expected an impl block, got %T", file.Decls[0])
	}

	if ib.TraitName != "Bounded" || ib.TargetName != "i32" || len(ib.Members) != 2 {
		t.Errorf("unexpected impl shape: %s for %s with %d members", ib.TraitName, ib.TargetName, len(ib.Members))
	}
}

func TestImplMemberRequiresInitializer(t *testing.T) {
	rep, _ := parseSource(t, `impl T for i32 { const A: int; }`)

	if !rep.AnyErrors() {
		t.Fatal("expected an error for an impl member without an initializer")
	}
}

func TestParseFuncDef(t *testing.T) {
	file := mustParse(t, `
fn add(a: int, b: int) -> int {
	a + b
}
`)

	fd, ok := file.Decls[0].(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected a function definition, got %T", file.Decls[0])
	}

	if fd.Name != "add" || len(fd.Params) != 2 {
		t.Fatalf("unexpected function shape: %s with %d params", fd.Name, len(fd.Params))
	}

	if fd.ReturnType == nil {
		t.Error("return type was not parsed")
	}

	if fd.Body.Tail == nil {
		t.Error("tail expression was not parsed")
	}
}

func TestParseArrayType(t *testing.T) {
	file := mustParse(t, `const ARR: [int; N] = [1, 2, 3];`)

	cd := file.Decls[0].(*ast.ConstDecl)

	at, ok := cd.Type.(*ast.ArrayType)
	if !ok {
		t.Fatalf("expected an array type, got %T", cd.Type)
	}

	if _, ok := at.Len.(*ast.PathExpr); !ok {
		t.Errorf("expected a path length expression, got %T", at.Len)
	}

	if al, ok := cd.Init.(*ast.ArrayLit); !ok || len(al.Elems) != 3 {
		t.Errorf("expected a 3 element array literal, got %v", cd.Init)
	}
}

// -----------------------------------------------------------------------------

func TestParsePrecedence(t *testing.T) {
	file := mustParse(t, `const A: int = 1 + 2 * 3;`)

	top, ok := file.Decls[0].(*ast.ConstDecl).Init.(*ast.BinaryOp)
	if !ok || top.OpKind != TOK_PLUS {
		t.Fatalf("expected + at the top, got %v", file.Decls[0].(*ast.ConstDecl).Init)
	}

	if rhs, ok := top.Rhs.(*ast.BinaryOp); !ok || rhs.OpKind != TOK_STAR {
		t.Errorf("expected * on the right, got %v", top.Rhs)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	file := mustParse(t, `const A: int = 10 - 2 - 3;`)

	top := file.Decls[0].(*ast.ConstDecl).Init.(*ast.BinaryOp)
	if top.OpKind != TOK_MINUS {
		t.Fatalf("expected - at the top, got op kind %d", top.OpKind)
	}

	if lhs, ok := top.Lhs.(*ast.BinaryOp); !ok || lhs.OpKind != TOK_MINUS {
		t.Errorf("expected left associative grouping, got %v", top.Lhs)
	}
}

func TestParseQualifiedPath(t *testing.T) {
	file := mustParse(t, `const A: int = i32::MAX;`)

	pe, ok := file.Decls[0].(*ast.ConstDecl).Init.(*ast.PathExpr)
	if !ok {
		t.Fatalf("expected a path expression, got %T", file.Decls[0].(*ast.ConstDecl).Init)
	}

	if len(pe.Segments) != 2 || pe.Segments[0] != "i32" || pe.Last() != "MAX" {
		t.Errorf("unexpected path segments: %v", pe.Segments)
	}
}

func TestParseTrailers(t *testing.T) {
	file := mustParse(t, `const A: int = f(1, 2)[0].x;`)

	fa, ok := file.Decls[0].(*ast.ConstDecl).Init.(*ast.FieldAccess)
	if !ok {
		t.Fatalf("expected a field access at the top, got %T", file.Decls[0].(*ast.ConstDecl).Init)
	}

	ie, ok := fa.Root.(*ast.IndexExpr)
	if !ok {
		t.Fatalf("expected an index under the field access, got %T", fa.Root)
	}

	if ce, ok := ie.Root.(*ast.CallExpr); !ok || len(ce.Args) != 2 {
		t.Errorf("expected a 2 argument call under the index, got %v", ie.Root)
	}
}

func TestParseNestedBlockDecls(t *testing.T) {
	file := mustParse(t, `
fn f() -> int {
	const C: int = 1;
	let x: int = C;
	x;
	{
		static S: int = 2;
		S
	}
}
`)

	body := file.Decls[0].(*ast.FuncDef).Body

	if len(body.Stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(body.Stmts))
	}

	if ds, ok := body.Stmts[0].(*ast.DeclStmt); !ok {
		t.Errorf("expected a declaration statement, got %T", body.Stmts[0])
	} else if _, ok := ds.Decl.(*ast.ConstDecl); !ok {
		t.Errorf("expected a nested const declaration, got %T", ds.Decl)
	}

	if _, ok := body.Stmts[1].(*ast.LetStmt); !ok {
		t.Errorf("expected a let statement, got %T", body.Stmts[1])
	}

	inner, ok := body.Tail.(*ast.BlockExpr)
	if !ok {
		t.Fatalf("expected a block tail expression, got %T", body.Tail)
	}

	if ds, ok := inner.Stmts[0].(*ast.DeclStmt); !ok {
		t.Errorf("expected a nested declaration statement, got %T", inner.Stmts[0])
	} else if _, ok := ds.Decl.(*ast.StaticDecl); !ok {
		t.Errorf("expected a nested static declaration, got %T", ds.Decl)
	}
}

// -----------------------------------------------------------------------------

func TestParseErrorRecorded(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing semicolon", `const A: int = 1`},
		{"missing type", `const A = 1;`},
		{"missing initializer", `const A: int;`},
		{"stray token", `const A: int = 1; )`},
		{"unclosed brace", `fn f() { 1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, _ := parseSource(t, tt.src)

			if !rep.AnyErrors() {
				t.Fatal("expected a syntax error")
			}
		})
	}
}

func TestParseUniqueNodeIDs(t *testing.T) {
	file := mustParse(t, `
const A: int = B;
const B: int = A;
static S: int = A + B;
`)

	seen := make(map[ast.NodeID]bool)
	for _, decl := range file.Decls {
		ast.Inspect(decl, func(n ast.ASTNode) bool {
			var id ast.NodeID
			switch v := n.(type) {
			case ast.Decl:
				id = v.DeclID()
			case *ast.PathExpr:
				id = v.ID
			default:
				return true
			}

			if id == 0 {
				t.Errorf("node %T was not assigned an ID", n)
			} else if seen[id] {
				t.Errorf("node ID %d assigned twice", id)
			}

			seen[id] = true
			return true
		})
	}
}
