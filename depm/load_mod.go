package depm

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"unicode"

	"github.com/pelletier/go-toml"

	"sable/common"
	"sable/report"
)

// tomlModule represents a Sable module as it is encoded in TOML.
type tomlModule struct {
	Name         string   `toml:"name"`
	SableVersion string   `toml:"sable-version"`
	Prelude      []string `toml:"prelude"`
}

// Module represents a loaded Sable module.
type Module struct {
	// Name is the module name.
	Name string

	// AbsPath is the absolute path to the root of the module.
	AbsPath string

	// Prelude is the list of foreign constant names visible to every package
	// of the module.  These are constants defined outside the program being
	// compiled and assumed already validated.
	Prelude []string
}

// LoadModule loads and validates a module.  `abspath` is the absolute path to
// the module directory.  This function returns the deserialized module and a
// success boolean.
func LoadModule(rep *report.Reporter, abspath string) (*Module, bool) {
	f, err := os.Open(filepath.Join(abspath, common.SableModuleFileName))
	if err != nil {
		rep.ReportFatal("unable to open module file at `%s`: %s", abspath, err.Error())
		return nil, false
	}
	defer f.Close()

	// unmarshal the contents
	buff, err := ioutil.ReadAll(f)
	if err != nil {
		rep.ReportFatal("error reading module file at `%s`: %s", abspath, err.Error())
		return nil, false
	}

	tomlMod := &tomlModule{}
	if err := toml.Unmarshal(buff, tomlMod); err != nil {
		rep.ReportFatal("error parsing module file at `%s`: %s", abspath, err.Error())
		return nil, false
	}

	mod := &Module{
		// The module root is the directory enclosing the module file.
		AbsPath: abspath,
		Name:    tomlMod.Name,
		Prelude: tomlMod.Prelude,
	}

	if !validateModule(rep, mod, tomlMod) {
		return nil, false
	}

	return mod, true
}

// validateModule checks that the top level module contents are valid.
func validateModule(rep *report.Reporter, mod *Module, tomlMod *tomlModule) bool {
	if tomlMod.Name == "" {
		rep.ReportModuleError(fmt.Sprintf("<module at `%s`>", mod.AbsPath), "missing module name")
		return false
	}

	if !IsValidIdentifier(tomlMod.Name) {
		rep.ReportModuleError(fmt.Sprintf("<module at `%s`>", mod.AbsPath), "module name must be a valid identifier")
		return false
	}

	for _, name := range tomlMod.Prelude {
		if !IsValidIdentifier(name) {
			rep.ReportModuleError(tomlMod.Name, "prelude name `%s` must be a valid identifier", name)
			return false
		}
	}

	if tomlMod.SableVersion != common.SableVersion {
		rep.ReportModuleWarning(tomlMod.Name, "version of module `%s` (v%s) does not match current sable version (v%s)",
			tomlMod.Name,
			tomlMod.SableVersion,
			common.SableVersion,
		)
	}

	return true
}

// IsValidIdentifier returns whether the given name is a valid Sable
// identifier.
func IsValidIdentifier(name string) bool {
	if len(name) == 0 {
		return false
	}

	for i, c := range name {
		if i == 0 {
			if unicode.IsLetter(c) || c == '_' {
				continue
			}
		} else if unicode.IsLetter(c) || '0' <= c && c <= '9' || c == '_' {
			continue
		}

		return false
	}

	return true
}
