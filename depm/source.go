package depm

import (
	"sable/ast"
	"sable/report"
)

// SourceFile represents a Sable source file.
type SourceFile struct {
	// Context is the compilation context of the file used for error reporting.
	Context *report.CompilationContext

	// Parent is the parent package to the file.
	Parent *Package

	// FileNumber identifies the file within its parent package.
	FileNumber int

	// Decls is the list of top level declarations that make up this source
	// file.
	Decls []ast.Decl
}

// Package represents a Sable source package: the unit of compilation.  All
// files of a package share one namespace of constant definitions.
type Package struct {
	// Name is the package name.
	Name string

	// AbsPath is the absolute path to the package directory.
	AbsPath string

	// Files is a list of all the Sable source files that belong to this
	// package.
	Files []*SourceFile
}
