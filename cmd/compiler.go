package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"sable/ast"
	"sable/common"
	"sable/depm"
	"sable/report"
	"sable/syntax"
)

// Compiler represents the global state of the compiler.
type Compiler struct {
	// rootAbsPath is the absolute path to the compilation root.
	rootAbsPath string

	// rep is the diagnostics collector shared by all compilation phases.
	rep *report.Reporter

	// ids is the node ID generator shared by all the parsers.
	ids *ast.IDGen

	// mod is the module being compiled.
	mod *depm.Module

	// pkg is the root package of the module being compiled.
	pkg *depm.Package
}

// NewCompiler creates a new compiler for the module rooted at rootPath.
func NewCompiler(rootPath string, logLevel int) *Compiler {
	rep := report.NewReporter(logLevel)

	// Calculate the absolute path to the compilation root.
	rootAbsPath, err := filepath.Abs(rootPath)
	if err != nil {
		rep.ReportFatal("error calculating absolute path: %s", err.Error())
		return nil
	}

	return &Compiler{
		rootAbsPath: rootAbsPath,
		rep:         rep,
		ids:         &ast.IDGen{},
	}
}

// RunCompiler creates a compiler from the command line arguments and runs it.
// It returns the exit code of the process.
func RunCompiler() int {
	rootPath, logLevel := parseArgs(os.Args[1:])
	return NewCompiler(rootPath, logLevel).Execute()
}

// Execute runs all the phases of the compiler and returns the exit code of
// the process.  Individual phases record their diagnostics on the reporter
// and keep going; the single terminal check after the analysis phases have
// run decides whether compilation is aborted.
func (c *Compiler) Execute() int {
	// Load the root module.
	mod, ok := depm.LoadModule(c.rep, c.rootAbsPath)
	if !ok {
		c.rep.Finish()
		return 1
	}
	c.mod = mod

	// Initialize (parse) the root package.
	pkg, ok := c.initPackage(c.rootAbsPath)
	if !ok {
		c.rep.Finish()
		return 1
	}
	c.pkg = pkg

	// Resolve the constant definitions of the package.
	defs, decls := depm.ResolvePackage(c.rep, pkg, mod.Prelude)

	// Check for recursive constants.
	depm.CheckConstRecursion(c.rep, pkg, defs, decls)

	c.rep.Finish()

	if c.rep.AnyErrors() {
		return 1
	}

	return 0
}

// -----------------------------------------------------------------------------

// initPackage initializes the package with the given absolute path: its
// source files are located and parsed.
func (c *Compiler) initPackage(pkgAbsPath string) (*depm.Package, bool) {
	pkg := &depm.Package{
		Name:    filepath.Base(pkgAbsPath),
		AbsPath: pkgAbsPath,
	}

	// Validate the package name.
	if !depm.IsValidIdentifier(pkg.Name) {
		c.rep.ReportFatal("%s is not a valid package name", pkg.Name)
	}

	// Open the directory.
	finfos, err := ioutil.ReadDir(pkg.AbsPath)
	if err != nil {
		c.rep.ReportFatal("failed to read directory of package %s: %s", pkg.Name, err)
	}

	// Parse all the source files in the package concurrently.
	wg := &sync.WaitGroup{}
	for _, finfo := range finfos {
		// We only want to try to load source files.
		if finfo.IsDir() || filepath.Ext(finfo.Name()) != common.SableFileExt {
			continue
		}

		// Create the Sable source file.
		sbFile := &depm.SourceFile{
			Context: &report.CompilationContext{
				AbsPath:  filepath.Join(pkg.AbsPath, finfo.Name()),
				ReprPath: fmt.Sprintf("[%s] %s", pkg.Name, finfo.Name()),
			},
			Parent:     pkg,
			FileNumber: len(pkg.Files),
		}

		// Add it to its parent package.
		pkg.Files = append(pkg.Files, sbFile)

		// Parse the file concurrently.
		wg.Add(1)
		go func(sbFile *depm.SourceFile) {
			defer wg.Done()

			f, err := os.Open(sbFile.Context.AbsPath)
			if err != nil {
				c.rep.ReportStdError(sbFile.Context, err)
				return
			}
			defer f.Close()

			syntax.ParseFile(c.rep, c.ids, sbFile, f)
		}(sbFile)
	}

	// Wait for parsing to finish.
	wg.Wait()

	// Make sure the package is non-empty.
	if len(pkg.Files) == 0 {
		c.rep.ReportFatal("package must contain source files")
	}

	return pkg, !c.rep.AnyErrors()
}
